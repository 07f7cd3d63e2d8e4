package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/adept/internal/profile"
	"github.com/abhisek/adept/internal/store"
)

// ErrSessionNotFound is returned for unknown or evicted session IDs.
var ErrSessionNotFound = errors.New("session not found")

// persistTimeout bounds background persistence writes.
const persistTimeout = 5 * time.Second

// entry pairs a session state with its own mutex. The manager holds the
// map lock only long enough to find the entry; all state mutation happens
// under the entry lock, so sessions never contend with each other.
type entry struct {
	mu    sync.Mutex
	state *State
}

// Manager owns all active sessions. It hands out state clones, serializes
// mutation per session, and persists profiles and events in the background.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	profiles store.ProfileRepo // nil disables profile persistence
	events   store.EventRepo   // nil disables event logging

	now func() time.Time
}

// NewManager creates a Manager. Either repo may be nil, in which case the
// corresponding persistence is skipped and sessions live purely in memory.
func NewManager(profiles store.ProfileRepo, events store.EventRepo) *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		profiles: profiles,
		events:   events,
		now:      time.Now,
	}
}

// Create starts a new session for userID. If a persisted profile exists for
// the user it is restored; otherwise the session starts with a fresh one.
func (m *Manager) Create(ctx context.Context, userID string) (*State, error) {
	if userID == "" {
		return nil, fmt.Errorf("create session: empty user ID")
	}

	p := profile.New()
	if m.profiles != nil {
		saved, err := m.profiles.Latest(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("restore profile: %w", err)
		}
		if saved != nil {
			p = saved
		}
	}

	now := m.now()
	st := &State{
		ID:         uuid.NewString(),
		UserID:     userID,
		Phase:      PhaseWelcome,
		Profile:    p,
		StartedAt:  now,
		LastActive: now,
	}

	m.mu.Lock()
	m.sessions[st.ID] = &entry{state: st}
	m.mu.Unlock()

	m.logSessionEvent(store.SessionEventData{
		SessionID: st.ID,
		UserID:    userID,
		Action:    "start",
		Phase:     string(PhaseWelcome),
	})

	return st.clone(), nil
}

// Get returns a clone of the session state.
func (m *Manager) Get(id string) (*State, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone(), nil
}

// UpdateProfile replaces the session's profile with updated. It returns
// true when the learning style changed, in which case the session's
// adaptation count is incremented. The new profile is persisted in the
// background; persistence failures are logged, never surfaced.
func (m *Manager) UpdateProfile(id string, updated *profile.Profile) (bool, error) {
	if updated == nil {
		return false, fmt.Errorf("update profile: nil profile")
	}
	e, err := m.lookup(id)
	if err != nil {
		return false, err
	}

	e.mu.Lock()
	styleChanged := e.state.Profile.Style != updated.Style
	e.state.Profile = updated.Clone()
	if styleChanged {
		e.state.AdaptationCount++
	}
	m.touch(e.state)
	userID := e.state.UserID
	snapshot := e.state.Profile.Clone()
	e.mu.Unlock()

	m.persistProfile(userID, snapshot)
	return styleChanged, nil
}

// SyncProfile replaces the session's profile without touching the
// adaptation count. Used during the diagnostic, where style movement
// reflects votes still being tallied, not an adaptation.
func (m *Manager) SyncProfile(id string, updated *profile.Profile) error {
	if updated == nil {
		return fmt.Errorf("sync profile: nil profile")
	}
	e, err := m.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.state.Profile = updated.Clone()
	m.touch(e.state)
	userID := e.state.UserID
	snapshot := e.state.Profile.Clone()
	e.mu.Unlock()

	m.persistProfile(userID, snapshot)
	return nil
}

// SetPhase moves the session to the given phase.
func (m *Manager) SetPhase(id string, phase Phase) error {
	if !ValidPhase(string(phase)) {
		return fmt.Errorf("set phase: unknown phase %q", phase)
	}
	e, err := m.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.state.Phase = phase
	m.touch(e.state)
	data := store.SessionEventData{
		SessionID: e.state.ID,
		UserID:    e.state.UserID,
		Action:    "phase",
		Phase:     string(phase),
		Topic:     e.state.Topic,
	}
	e.mu.Unlock()

	m.logSessionEvent(data)
	return nil
}

// SetTopic sets the session's current topic and records it in the
// profile's explored set (no duplicates).
func (m *Manager) SetTopic(id, topic string) error {
	if topic == "" {
		return fmt.Errorf("set topic: empty topic")
	}
	e, err := m.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Topic = topic
	if !containsString(e.state.Profile.TopicsExplored, topic) {
		e.state.Profile.TopicsExplored = append(e.state.Profile.TopicsExplored, topic)
	}
	m.touch(e.state)
	return nil
}

// RecordInteraction bumps the interaction counter and activity time for
// turns that mutate nothing else, such as free-text input.
func (m *Manager) RecordInteraction(id string) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	m.touch(e.state)
	return nil
}

// RecordDiagnostic marks a diagnostic question as served.
func (m *Manager) RecordDiagnostic(id, questionID string) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !containsString(e.state.DiagnosticHistory, questionID) {
		e.state.DiagnosticHistory = append(e.state.DiagnosticHistory, questionID)
	}
	m.touch(e.state)
	return nil
}

// RecordExplanation marks a concept as explained this session.
func (m *Manager) RecordExplanation(id, concept string) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.ExplanationsGiven = append(e.state.ExplanationsGiven, concept)
	m.touch(e.state)
	return nil
}

// RecordContent marks a generated content item (question, flashcard).
func (m *Manager) RecordContent(id, contentID string) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.ContentGenerated = append(e.state.ContentGenerated, contentID)
	m.touch(e.state)
	return nil
}

// Delete ends the session, persisting the final profile and an end event.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	st := e.state
	data := store.SessionEventData{
		SessionID:         st.ID,
		UserID:            st.UserID,
		Action:            "end",
		Phase:             string(st.Phase),
		Topic:             st.Topic,
		TotalInteractions: st.TotalInteractions,
		AdaptationCount:   st.AdaptationCount,
		DurationSecs:      int(m.now().Sub(st.StartedAt).Seconds()),
	}
	userID := st.UserID
	snapshot := st.Profile.Clone()
	e.mu.Unlock()

	m.persistProfile(userID, snapshot)
	m.logSessionEvent(data)
	return nil
}

// EvictIdle removes sessions idle longer than maxIdle, persisting each as
// if it had been deleted. Returns the number of sessions evicted.
func (m *Manager) EvictIdle(maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)

	m.mu.RLock()
	var stale []string
	for id, e := range m.sessions {
		e.mu.Lock()
		if e.state.LastActive.Before(cutoff) {
			stale = append(stale, id)
		}
		e.mu.Unlock()
	}
	m.mu.RUnlock()

	evicted := 0
	for _, id := range stale {
		if err := m.Delete(id); err == nil {
			evicted++
		}
	}
	return evicted
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// touch marks st as mutated: every state change routed through the
// manager counts as one interaction. Caller holds the entry lock.
func (m *Manager) touch(st *State) {
	st.TotalInteractions++
	st.LastActive = m.now()
}

func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

// persistProfile saves the profile in the background. A failed save loses
// at most one snapshot generation; the next save carries the full state,
// so failures are logged and swallowed.
func (m *Manager) persistProfile(userID string, p *profile.Profile) {
	if m.profiles == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := m.profiles.Save(ctx, userID, p); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to persist profile for %s: %v\n", userID, err)
		}
	}()
}

// logSessionEvent appends a session event in the background.
func (m *Manager) logSessionEvent(data store.SessionEventData) {
	if m.events == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := m.events.AppendSessionEvent(ctx, data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log session event: %v\n", err)
		}
	}()
}
