package learn

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adept/internal/adapt"
	"github.com/abhisek/adept/internal/content"
	"github.com/abhisek/adept/internal/diagnostic"
	"github.com/abhisek/adept/internal/profile"
	"github.com/abhisek/adept/internal/screen"
	sess "github.com/abhisek/adept/internal/session"
	"github.com/abhisek/adept/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
	adaptations   []store.AdaptationEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAdaptation(_ context.Context, data store.AdaptationEventData) error {
	m.adaptations = append(m.adaptations, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) TopicAccuracy(_ context.Context, _ string) ([]store.TopicStats, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentAdaptations(_ context.Context, _ string, _ store.QueryOpts) ([]store.AdaptationEventData, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testLearnScreen() (*LearnScreen, *mockEventRepo) {
	events := &mockEventRepo{}
	l := New(Deps{
		UserID:     "u1",
		Sessions:   sess.NewManager(nil, nil),
		Events:     events,
		Diagnostic: diagnostic.NewEngine(),
		Adapt:      adapt.NewEngine(nil, adapt.DefaultConfig()),
	})
	return l, events
}

// startDiagnostic moves the screen past the topic prompt into the first
// diagnostic question, without going through the async command.
func startDiagnostic(t *testing.T, l *LearnScreen, topic string) {
	t.Helper()
	st, err := l.deps.Sessions.Create(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if err := l.deps.Sessions.SetTopic(st.ID, topic); err != nil {
		t.Fatal(err)
	}
	if err := l.deps.Sessions.SetPhase(st.ID, sess.PhaseDiagnostic); err != nil {
		t.Fatal(err)
	}
	st, err = l.deps.Sessions.Get(st.ID)
	if err != nil {
		t.Fatal(err)
	}
	l.topic = topic
	var scr screen.Screen
	scr, _ = l.Update(sessionReadyMsg{State: st, Questions: l.deps.Diagnostic.Questions(topic)})
	l = scr.(*LearnScreen)
	// A fresh profile gets the one-time intent question first.
	if l.stage == stageIntent {
		scr, _ = l.Update(keyPress('2'))
		l = scr.(*LearnScreen)
	}
	if l.stage != stageDiagQuestion {
		t.Fatalf("stage = %d, want diagnostic question", l.stage)
	}
}

func TestIntentAskedOnceAndWrittenThrough(t *testing.T) {
	l, _ := testLearnScreen()
	st, err := l.deps.Sessions.Create(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	l.topic = "algorithms"

	var scr screen.Screen
	scr, _ = l.Update(sessionReadyMsg{State: st, Questions: l.deps.Diagnostic.Questions("algorithms")})
	l = scr.(*LearnScreen)
	if l.stage != stageIntent {
		t.Fatalf("stage = %d, want intent prompt for a fresh profile", l.stage)
	}

	// Option 3 is interview prep.
	scr, _ = l.Update(keyPress('3'))
	l = scr.(*LearnScreen)
	if l.stage != stageDiagQuestion {
		t.Fatalf("stage = %d, want diagnostic after intent", l.stage)
	}
	if l.prof.Intent != profile.IntentInterview || !l.prof.IntentSet {
		t.Errorf("intent = %s (set=%t), want interview, set", l.prof.Intent, l.prof.IntentSet)
	}

	// The choice must flow through the session manager, not just the
	// screen's local copy.
	got, err := l.deps.Sessions.Get(l.st.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Profile.Intent != profile.IntentInterview || !got.Profile.IntentSet {
		t.Error("intent not written through the session manager")
	}
}

func TestIntentSkippedWhenAlreadySet(t *testing.T) {
	l, _ := testLearnScreen()
	st, err := l.deps.Sessions.Create(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}

	p := st.Profile.Clone()
	p.SetIntent(profile.IntentRevision)
	if err := l.deps.Sessions.SyncProfile(st.ID, p); err != nil {
		t.Fatal(err)
	}
	st, _ = l.deps.Sessions.Get(st.ID)
	l.topic = "algorithms"

	var scr screen.Screen
	scr, _ = l.Update(sessionReadyMsg{State: st, Questions: l.deps.Diagnostic.Questions("algorithms")})
	l = scr.(*LearnScreen)
	if l.stage != stageDiagQuestion {
		t.Errorf("stage = %d, want diagnostic; intent is asked only once", l.stage)
	}
}

func TestTitleFollowsTopic(t *testing.T) {
	l, _ := testLearnScreen()
	if l.Title() != "Learn" {
		t.Errorf("Title = %q, want Learn", l.Title())
	}
	l.topic = "algorithms"
	if l.Title() != "Learn: algorithms" {
		t.Errorf("Title = %q", l.Title())
	}
}

func TestTopicPromptRequiresInput(t *testing.T) {
	l, _ := testLearnScreen()
	_, cmd := l.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("empty topic should not start a session")
	}
	if l.stage != stageTopic {
		t.Errorf("stage = %d, want topic prompt", l.stage)
	}
}

func TestDiagnosticAnswerFlow(t *testing.T) {
	l, events := testLearnScreen()
	startDiagnostic(t, l, "algorithms")

	// Answer the first question with shortcut key 2.
	var scr screen.Screen
	scr, _ = l.Update(keyPress('2'))
	l = scr.(*LearnScreen)
	if l.stage != stageDiagConfidence {
		t.Fatalf("stage = %d, want confidence prompt", l.stage)
	}

	// Rate confidence 4.
	scr, _ = l.Update(keyPress('4'))
	l = scr.(*LearnScreen)
	if l.stage != stageDiagFeedback {
		t.Fatalf("stage = %d, want feedback", l.stage)
	}

	if len(events.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(events.answerEvents))
	}
	ev := events.answerEvents[0]
	if ev.SelectedIndex != 1 || ev.ConfidenceRating != 4 || ev.UserID != "u1" {
		t.Errorf("answer event = %+v", ev)
	}
}

func TestConfidenceSkip(t *testing.T) {
	l, events := testLearnScreen()
	startDiagnostic(t, l, "algorithms")

	var scr screen.Screen
	scr, _ = l.Update(keyPress('1'))
	l = scr.(*LearnScreen)
	scr, _ = l.Update(specialKey(tea.KeyEnter))
	l = scr.(*LearnScreen)

	if l.stage != stageDiagFeedback {
		t.Fatalf("stage = %d, want feedback", l.stage)
	}
	if events.answerEvents[0].ConfidenceRating != 0 {
		t.Errorf("confidence = %d, want 0 (skipped)", events.answerEvents[0].ConfidenceRating)
	}
}

func TestDiagnosticDoesNotCountAdaptations(t *testing.T) {
	l, _ := testLearnScreen()
	startDiagnostic(t, l, "algorithms")

	// Answer every question; votes may flip the style, but the session
	// must not record a teaching adaptation for it.
	for i := 0; i < len(l.diagQs); i++ {
		var scr screen.Screen
		scr, _ = l.Update(keyPress('1'))
		l = scr.(*LearnScreen)
		scr, _ = l.Update(keyPress('3'))
		l = scr.(*LearnScreen)
		if l.stage == stageDiagFeedback {
			scr, _ = l.Update(keyPress(' '))
			l = scr.(*LearnScreen)
		}
	}

	st, err := l.deps.Sessions.Get(l.st.ID)
	if err != nil {
		t.Fatal(err)
	}
	if st.AdaptationCount != 0 {
		t.Errorf("adaptation count = %d, want 0 during diagnostic", st.AdaptationCount)
	}
	if st.Phase != sess.PhaseLearning {
		t.Errorf("phase = %s, want learning after diagnostic", st.Phase)
	}
}

func TestWeakConceptTargetsExplanation(t *testing.T) {
	l, _ := testLearnScreen()
	startDiagnostic(t, l, "algorithms")

	q := l.currentDiagQuestion()
	wrong := (q.CorrectIndex + 1) % len(q.Options)

	var scr screen.Screen
	scr, _ = l.Update(keyPress(rune('1' + wrong)))
	l = scr.(*LearnScreen)
	scr, _ = l.Update(keyPress('3'))
	l = scr.(*LearnScreen)

	if l.weakConcept != q.ConceptTested {
		t.Errorf("weakConcept = %q, want %q", l.weakConcept, q.ConceptTested)
	}
	if l.concept() != q.ConceptTested {
		t.Errorf("concept() = %q, want the missed concept", l.concept())
	}
}

func TestQuitConfirmFlow(t *testing.T) {
	l, _ := testLearnScreen()
	startDiagnostic(t, l, "algorithms")

	handled, _ := l.OnEsc()
	if !handled || l.stage != stageQuitConfirm {
		t.Fatal("Esc mid-session should show quit confirm")
	}

	// N returns to the question.
	var scr screen.Screen
	scr, _ = l.Update(keyPress('n'))
	l = scr.(*LearnScreen)
	if l.stage != stageDiagQuestion {
		t.Errorf("stage = %d, want question restored", l.stage)
	}

	// Y ends the session.
	l.OnEsc()
	scr, cmd := l.Update(keyPress('y'))
	l = scr.(*LearnScreen)
	if cmd == nil {
		t.Error("expected pop command after confirming quit")
	}
	if l.st != nil {
		t.Error("session not ended")
	}
}

func TestPracticeAnswerRecordsProfile(t *testing.T) {
	l, events := testLearnScreen()
	startDiagnostic(t, l, "algorithms")

	l.practiceQs = []content.MCQ{
		{ID: "p1", Question: "Big-O of binary search?", Options: []string{"O(n)", "O(log n)", "O(1)", "O(n log n)"},
			CorrectIndex: 1, Difficulty: diagnostic.DifficultyMedium, Topic: "algorithms"},
	}
	l.stage = stagePracticeQuestion
	l.questionStart = time.Now()
	l.selected = 0

	var scr screen.Screen
	scr, _ = l.Update(keyPress('2'))
	l = scr.(*LearnScreen)

	if !l.lastGrade.Correct {
		t.Error("expected correct grade")
	}
	if l.practiceCorrect != 1 {
		t.Errorf("practiceCorrect = %d, want 1", l.practiceCorrect)
	}
	if l.prof.TotalAnswers != 1 || l.prof.CorrectAnswers != 1 {
		t.Errorf("profile answers = %d/%d", l.prof.CorrectAnswers, l.prof.TotalAnswers)
	}

	found := false
	for _, ev := range events.answerEvents {
		if ev.QuestionID == "p1" && ev.Correct {
			found = true
		}
	}
	if !found {
		t.Error("practice answer event not logged")
	}
}

func TestPracticeAnswerClearsDiagnosticVotes(t *testing.T) {
	l, _ := testLearnScreen()
	startDiagnostic(t, l, "algorithms")
	l.lastResult = diagnostic.Result{Correct: false, StyleVoted: "visual"}

	l.practiceQs = []content.MCQ{
		{ID: "p1", Question: "q", Options: []string{"a", "b"}, CorrectIndex: 0,
			Difficulty: diagnostic.DifficultyEasy, Topic: "algorithms"},
	}
	l.stage = stagePracticeQuestion
	l.questionStart = time.Now()

	var scr screen.Screen
	scr, _ = l.Update(keyPress('1'))
	l = scr.(*LearnScreen)

	if l.lastResult.StyleVoted != "" {
		t.Error("stale diagnostic vote carried into practice event")
	}
}

func TestAdaptationMsgLogsAndSwapsProfile(t *testing.T) {
	l, events := testLearnScreen()
	startDiagnostic(t, l, "algorithms")

	updated := l.prof.Clone()
	updated.Pace = profile.PaceSlow

	var scr screen.Screen
	scr, _ = l.Update(adaptationMsg{
		Updated: updated,
		Changes: []adapt.Change{{Field: "pace", From: "medium", To: "slow", Reason: "slow responses"}},
		Trigger: adapt.TriggerSlowResponse,
		Source:  "rule",
		Note:    "Slowing the pace down.",
	})
	l = scr.(*LearnScreen)

	if l.stage != stagePracticeFeedback {
		t.Errorf("stage = %d, want practice feedback", l.stage)
	}
	if l.prof.Pace != profile.PaceSlow {
		t.Error("profile not swapped")
	}
	if len(events.adaptations) != 1 {
		t.Fatalf("adaptation events = %d, want 1", len(events.adaptations))
	}
	if events.adaptations[0].Field != "pace" || events.adaptations[0].Source != "rule" {
		t.Errorf("adaptation event = %+v", events.adaptations[0])
	}
}

func TestAssessmentAppliesStruggleProfile(t *testing.T) {
	l, events := testLearnScreen()
	startDiagnostic(t, l, "algorithms")

	before := l.prof.Clone()
	updated := before.Clone()
	updated.Confidence = profile.ConfidenceLow
	updated.Depth = profile.DepthIntuitionFirst

	var scr screen.Screen
	scr, _ = l.Update(assessmentMsg{
		A: adapt.Assessment{
			Classification: adapt.ClassIncorrect,
			Feedback:       "Close, but recursion needs a base case.",
			Misconception:  "thinks recursion always terminates",
			ProfileChanged: true,
		},
		Before:  before,
		Updated: updated,
	})
	l = scr.(*LearnScreen)

	if l.stage != stageFollowUpFeedback {
		t.Errorf("stage = %d, want follow-up feedback", l.stage)
	}
	if l.prof.Confidence != profile.ConfidenceLow {
		t.Error("profile not updated after assessment")
	}
	if len(events.adaptations) == 0 {
		t.Fatal("expected adaptation events for profile change")
	}
	if events.adaptations[0].Trigger != string(adapt.TriggerWrongExplained) {
		t.Errorf("trigger = %s", events.adaptations[0].Trigger)
	}
}

func TestDiffChangesFieldByField(t *testing.T) {
	before := profile.New()
	after := before.Clone()
	after.Style = profile.StyleVisual
	after.Confidence = profile.ConfidenceLow

	changes := diffChanges(before, after, adapt.Outcome{Reasoning: "llm said so"})
	if len(changes) != 2 {
		t.Fatalf("changes = %d, want 2", len(changes))
	}
	fields := map[string]bool{}
	for _, c := range changes {
		fields[c.Field] = true
		if c.Reason != "llm said so" {
			t.Errorf("reason = %q", c.Reason)
		}
	}
	if !fields["learning_style"] || !fields["confidence"] {
		t.Errorf("fields = %v", fields)
	}
}

func TestViewNeverEmpty(t *testing.T) {
	l, _ := testLearnScreen()
	stages := []stage{stageTopic, stageIntent, stageLoading, stageError, stageQuitConfirm, stageReview}
	l.loadingMsg = "working"
	l.errMsg = "boom"
	l.summaryText = "done"
	for _, st := range stages {
		l.stage = st
		if l.View(80, 24) == "" {
			t.Errorf("empty view for stage %d", st)
		}
	}
}
