package session

import (
	"time"

	"github.com/abhisek/adept/internal/profile"
)

// Phase represents the current phase of a tutoring session.
type Phase string

const (
	PhaseWelcome    Phase = "welcome"    // Greeting, topic not yet chosen
	PhaseDiagnostic Phase = "diagnostic" // Serving diagnostic questions
	PhaseLearning   Phase = "learning"   // Explanations and questions
	PhasePractice   Phase = "practice"   // Generated practice problems
	PhaseReview     Phase = "review"     // Summary and wrap-up
)

// ValidPhase reports whether s names a known session phase.
func ValidPhase(s string) bool {
	switch Phase(s) {
	case PhaseWelcome, PhaseDiagnostic, PhaseLearning, PhasePractice, PhaseReview:
		return true
	}
	return false
}

// State tracks the runtime state of one active session. All mutation goes
// through the Manager, which serializes access per session.
type State struct {
	// ID is the session UUID.
	ID string

	// UserID is the learner the session belongs to.
	UserID string

	// Topic is the current topic, empty until the learner picks one.
	Topic string

	// Phase is the current session phase.
	Phase Phase

	// Profile is the learner's live profile. The Manager owns it; callers
	// receive clones and submit changes through UpdateProfile.
	Profile *profile.Profile

	// DiagnosticHistory records diagnostic question IDs already served,
	// so a resumed diagnostic never repeats a question.
	DiagnosticHistory []string

	// ExplanationsGiven records concepts already explained this session.
	ExplanationsGiven []string

	// ContentGenerated records IDs of practice content produced this session.
	ContentGenerated []string

	// TotalInteractions counts learner inputs routed through the orchestrator.
	TotalInteractions int

	// AdaptationCount counts profile adaptations during this session.
	// Only learning-style changes count; pace and confidence drift freely.
	AdaptationCount int

	// StartedAt is when the session began.
	StartedAt time.Time

	// LastActive is the time of the most recent interaction.
	LastActive time.Time
}

// clone returns a deep copy safe to hand outside the manager's lock.
func (s *State) clone() *State {
	c := *s
	c.Profile = s.Profile.Clone()
	c.DiagnosticHistory = append([]string(nil), s.DiagnosticHistory...)
	c.ExplanationsGiven = append([]string(nil), s.ExplanationsGiven...)
	c.ContentGenerated = append([]string(nil), s.ContentGenerated...)
	return &c
}

// containsString reports membership in a small slice. Session history
// slices stay short enough that linear scans beat building sets.
func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
