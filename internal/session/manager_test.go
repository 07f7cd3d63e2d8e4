package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/adept/internal/profile"
)

func newTestManager() *Manager {
	return NewManager(nil, nil)
}

func TestCreateDefaults(t *testing.T) {
	m := newTestManager()
	st, err := m.Create(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if st.ID == "" {
		t.Error("empty session ID")
	}
	if st.Phase != PhaseWelcome {
		t.Errorf("phase = %s, want welcome", st.Phase)
	}
	if st.Profile == nil || st.Profile.Style != profile.StyleConceptual {
		t.Error("new session missing default profile")
	}
	if st.TotalInteractions != 0 || st.AdaptationCount != 0 {
		t.Error("counters not zeroed")
	}

	if _, err := m.Create(context.Background(), ""); err == nil {
		t.Error("empty user ID accepted")
	}
}

func TestGetReturnsClone(t *testing.T) {
	m := newTestManager()
	st, _ := m.Create(context.Background(), "u1")

	got, err := m.Get(st.ID)
	if err != nil {
		t.Fatal(err)
	}
	// Mutating the returned state must not touch the stored session.
	got.Profile.Style = profile.StyleVisual
	got.Phase = PhaseReview

	again, _ := m.Get(st.ID)
	if again.Profile.Style != profile.StyleConceptual || again.Phase != PhaseWelcome {
		t.Error("Get returned an aliased state")
	}
}

func TestGetUnknownID(t *testing.T) {
	m := newTestManager()
	if _, err := m.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestUpdateProfileCountsStyleChangesOnly(t *testing.T) {
	m := newTestManager()
	st, _ := m.Create(context.Background(), "u1")

	// Pace change only: no adaptation counted.
	p := st.Profile.Clone()
	p.Pace = profile.PaceFast
	changed, err := m.UpdateProfile(st.ID, p)
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("pace change reported as style change")
	}

	// Style change: adaptation counted.
	p = p.Clone()
	p.Style = profile.StyleVisual
	changed, err = m.UpdateProfile(st.ID, p)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("style change not reported")
	}

	got, _ := m.Get(st.ID)
	if got.AdaptationCount != 1 {
		t.Errorf("adaptation count = %d, want 1", got.AdaptationCount)
	}
	if got.Profile.Style != profile.StyleVisual || got.Profile.Pace != profile.PaceFast {
		t.Error("profile not replaced")
	}
}

func TestSyncProfileNeverCountsAdaptations(t *testing.T) {
	m := newTestManager()
	st, _ := m.Create(context.Background(), "u1")

	// A style change through Sync reflects vote tallies, not an
	// adaptation, so the count must stay put.
	p := st.Profile.Clone()
	p.Style = profile.StyleExamFocused
	p.RecordAnswer(true, 12)
	if err := m.SyncProfile(st.ID, p); err != nil {
		t.Fatal(err)
	}

	got, _ := m.Get(st.ID)
	if got.AdaptationCount != 0 {
		t.Errorf("adaptation count = %d, want 0", got.AdaptationCount)
	}
	if got.Profile.Style != profile.StyleExamFocused || got.Profile.TotalAnswers != 1 {
		t.Error("profile not replaced")
	}
}

func TestSetPhaseValidation(t *testing.T) {
	m := newTestManager()
	st, _ := m.Create(context.Background(), "u1")

	if err := m.SetPhase(st.ID, PhaseDiagnostic); err != nil {
		t.Fatal(err)
	}
	got, _ := m.Get(st.ID)
	if got.Phase != PhaseDiagnostic {
		t.Errorf("phase = %s", got.Phase)
	}

	if err := m.SetPhase(st.ID, Phase("limbo")); err == nil {
		t.Error("unknown phase accepted")
	}
}

func TestSetTopicSetSemantics(t *testing.T) {
	m := newTestManager()
	st, _ := m.Create(context.Background(), "u1")

	for _, topic := range []string{"algorithms", "operating_systems", "algorithms"} {
		if err := m.SetTopic(st.ID, topic); err != nil {
			t.Fatal(err)
		}
	}

	got, _ := m.Get(st.ID)
	if got.Topic != "algorithms" {
		t.Errorf("topic = %s", got.Topic)
	}
	if len(got.Profile.TopicsExplored) != 2 {
		t.Errorf("topics explored = %v, want 2 unique", got.Profile.TopicsExplored)
	}
}

func TestRecordHistories(t *testing.T) {
	m := newTestManager()
	st, _ := m.Create(context.Background(), "u1")

	m.RecordDiagnostic(st.ID, "os_1")
	m.RecordDiagnostic(st.ID, "os_1") // duplicate ignored
	m.RecordDiagnostic(st.ID, "os_2")
	m.RecordExplanation(st.ID, "deadlock")
	m.RecordContent(st.ID, "mcq-1")
	m.RecordInteraction(st.ID)
	m.RecordInteraction(st.ID)

	got, _ := m.Get(st.ID)
	if len(got.DiagnosticHistory) != 2 {
		t.Errorf("diagnostic history = %v", got.DiagnosticHistory)
	}
	if len(got.ExplanationsGiven) != 1 || len(got.ContentGenerated) != 1 {
		t.Error("explanation/content history not recorded")
	}
	// Every routed call counts, including the deduplicated one.
	if got.TotalInteractions != 7 {
		t.Errorf("interactions = %d, want 7", got.TotalInteractions)
	}
}

func TestMutatingCallsCountInteractions(t *testing.T) {
	m := newTestManager()
	st, _ := m.Create(context.Background(), "u1")

	if err := m.SetTopic(st.ID, "algorithms"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetPhase(st.ID, PhaseDiagnostic); err != nil {
		t.Fatal(err)
	}
	p := st.Profile.Clone()
	p.Pace = profile.PaceFast
	if _, err := m.UpdateProfile(st.ID, p); err != nil {
		t.Fatal(err)
	}
	p = p.Clone()
	p.RecordAnswer(true, 10)
	if err := m.SyncProfile(st.ID, p); err != nil {
		t.Fatal(err)
	}

	got, _ := m.Get(st.ID)
	if got.TotalInteractions != 4 {
		t.Errorf("interactions = %d, want 4", got.TotalInteractions)
	}
}

func TestDelete(t *testing.T) {
	m := newTestManager()
	st, _ := m.Create(context.Background(), "u1")

	if err := m.Delete(st.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Get(st.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Error("deleted session still reachable")
	}
	if err := m.Delete(st.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Error("double delete not reported")
	}
}

func TestEvictIdle(t *testing.T) {
	m := newTestManager()
	base := time.Now()
	m.now = func() time.Time { return base }

	old, _ := m.Create(context.Background(), "u1")

	m.now = func() time.Time { return base.Add(45 * time.Minute) }
	fresh, _ := m.Create(context.Background(), "u2")

	n := m.EvictIdle(30 * time.Minute)
	if n != 1 {
		t.Fatalf("evicted = %d, want 1", n)
	}
	if _, err := m.Get(old.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Error("idle session survived eviction")
	}
	if _, err := m.Get(fresh.ID); err != nil {
		t.Error("fresh session evicted")
	}
}

func TestConcurrentSessionsIndependent(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	a, _ := m.Create(ctx, "u1")
	b, _ := m.Create(ctx, "u2")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			m.RecordInteraction(a.ID)
		}()
		go func() {
			defer wg.Done()
			m.RecordInteraction(b.ID)
		}()
	}
	wg.Wait()

	ga, _ := m.Get(a.ID)
	gb, _ := m.Get(b.ID)
	if ga.TotalInteractions != 50 || gb.TotalInteractions != 50 {
		t.Errorf("interactions = %d/%d, want 50/50", ga.TotalInteractions, gb.TotalInteractions)
	}
}
