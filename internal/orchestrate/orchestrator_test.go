package orchestrate

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/adept/internal/adapt"
	"github.com/abhisek/adept/internal/llm"
	"github.com/abhisek/adept/internal/profile"
	"github.com/abhisek/adept/internal/session"
)

func testState(phase session.Phase) *session.State {
	return &session.State{
		ID:      "s1",
		UserID:  "u1",
		Phase:   phase,
		Profile: profile.New(),
	}
}

func TestDecideExplicitActions(t *testing.T) {
	o := New(nil, DefaultConfig())
	st := testState(session.PhaseLearning)

	cases := []struct {
		action  string
		wantCap Capability
		wantAct string
	}{
		{"diagnose", CapDiagnostic, "start_diagnostic"},
		{"explain", CapTutor, "explain"},
		{"practice", CapContent, "generate_practice"},
		{"accessibility", CapAccess, "transform"},
		{"adapt", CapDiagnostic, "update_profile"},
		{"dance", CapTutor, "explain"}, // unknown action defaults to tutor
	}
	for _, tc := range cases {
		d := o.Decide(context.Background(), st, "", tc.action)
		if d.Capability != tc.wantCap || d.Action != tc.wantAct {
			t.Errorf("Decide(%q) = %s/%s, want %s/%s", tc.action, d.Capability, d.Action, tc.wantCap, tc.wantAct)
		}
		if d.Message == "" {
			t.Errorf("Decide(%q) has no transition message", tc.action)
		}
	}
}

func TestDecideLLMRouting(t *testing.T) {
	resp := json.RawMessage(`{"next_capability":"content","action":"generate_practice","reasoning":"learner asked for practice"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	o := New(mock, DefaultConfig())

	d := o.Decide(context.Background(), testState(session.PhaseLearning), "give me some questions", "auto")
	if d.Capability != CapContent || d.Action != "generate_practice" {
		t.Errorf("decision = %s/%s", d.Capability, d.Action)
	}
	if d.Reasoning != "learner asked for practice" {
		t.Errorf("reasoning = %q", d.Reasoning)
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM calls = %d", mock.CallCount())
	}
}

func TestDecideFallsBackOnBadLLM(t *testing.T) {
	cases := []llm.MockResponse{
		{Err: &llm.ErrProviderUnavailable{}},
		{Content: json.RawMessage(`garbage`)},
		{Content: json.RawMessage(`{"next_capability":"oracle","action":"x","reasoning":"y"}`)},
	}
	for _, canned := range cases {
		mock := llm.NewMockProvider(canned)
		o := New(mock, DefaultConfig())

		d := o.Decide(context.Background(), testState(session.PhaseWelcome), "hi", "auto")
		if d.Capability != CapDiagnostic || d.Action != "start_diagnostic" {
			t.Errorf("fallback decision = %s/%s, want diagnostic/start_diagnostic", d.Capability, d.Action)
		}
	}
}

func TestFallbackDecisionTree(t *testing.T) {
	o := New(nil, DefaultConfig())

	cases := []struct {
		phase   session.Phase
		wantCap Capability
		wantAct string
	}{
		{session.PhaseWelcome, CapDiagnostic, "start_diagnostic"},
		{session.PhaseDiagnostic, CapDiagnostic, "continue_diagnostic"},
		{session.PhaseLearning, CapTutor, "explain"},
		{session.PhasePractice, CapContent, "generate_practice"},
		{session.PhaseReview, CapTutor, "explain"},
	}
	for _, tc := range cases {
		d := o.Decide(context.Background(), testState(tc.phase), "", "auto")
		if d.Capability != tc.wantCap || d.Action != tc.wantAct {
			t.Errorf("phase %s = %s/%s, want %s/%s", tc.phase, d.Capability, d.Action, tc.wantCap, tc.wantAct)
		}
	}
}

func TestFallbackLearningPhaseStruggling(t *testing.T) {
	o := New(nil, DefaultConfig())
	st := testState(session.PhaseLearning)
	st.Profile.TotalAnswers = 4
	st.Profile.CorrectAnswers = 1

	d := o.Decide(context.Background(), st, "", "auto")
	if d.Capability != CapDiagnostic || d.Action != "update_profile" {
		t.Errorf("struggling learner routed to %s/%s", d.Capability, d.Action)
	}
}

func TestDispatch(t *testing.T) {
	o := New(nil, DefaultConfig())
	st := testState(session.PhasePractice)

	var gotDecision Decision
	o.Register(CapContent, HandlerFunc(func(_ context.Context, d Decision, _ *session.State, _ string) (*Result, error) {
		gotDecision = d
		return &Result{Text: "5 questions ready"}, nil
	}))

	d, res, err := o.Dispatch(context.Background(), st, "", "auto")
	if err != nil {
		t.Fatal(err)
	}
	if d.Capability != CapContent || res.Text != "5 questions ready" {
		t.Errorf("dispatch = %s, %q", d.Capability, res.Text)
	}
	if gotDecision.Action != "generate_practice" {
		t.Errorf("handler saw action %q", gotDecision.Action)
	}

	// Unregistered capability surfaces an error.
	_, _, err = o.Dispatch(context.Background(), st, "", "explain")
	if err == nil {
		t.Error("missing handler not reported")
	}

	// Handler errors propagate.
	o.Register(CapTutor, HandlerFunc(func(context.Context, Decision, *session.State, string) (*Result, error) {
		return nil, errors.New("boom")
	}))
	_, _, err = o.Dispatch(context.Background(), st, "", "explain")
	if err == nil {
		t.Error("handler error swallowed")
	}
}

func TestDetermineAdaptationTrigger(t *testing.T) {
	// Clause 1: wrong answer on an explained concept.
	st := testState(session.PhaseLearning)
	st.ExplanationsGiven = []string{"deadlock"}
	if trig, ok := DetermineAdaptationTrigger(st, false, 10); !ok || trig != adapt.TriggerWrongExplained {
		t.Errorf("clause 1 = %s/%v", trig, ok)
	}
	// Wrong answer with no explanations yet does not fire clause 1.
	st = testState(session.PhaseLearning)
	if _, ok := DetermineAdaptationTrigger(st, false, 10); ok {
		t.Error("clause 1 fired without explanations")
	}

	// Clause 2: slow response, even when correct.
	st = testState(session.PhaseLearning)
	if trig, ok := DetermineAdaptationTrigger(st, true, 61); !ok || trig != adapt.TriggerSlowResponse {
		t.Errorf("clause 2 = %s/%v", trig, ok)
	}
	if _, ok := DetermineAdaptationTrigger(st, true, 60); ok {
		t.Error("clause 2 fired at exactly the threshold")
	}

	// Clause 3: low confidence.
	st = testState(session.PhaseLearning)
	st.Profile.Confidence = profile.ConfidenceLow
	if trig, ok := DetermineAdaptationTrigger(st, true, 5); !ok || trig != adapt.TriggerLowConfidence {
		t.Errorf("clause 3 = %s/%v", trig, ok)
	}

	// Clause 4: sustained low accuracy.
	st = testState(session.PhaseLearning)
	st.Profile.TotalAnswers = 3
	st.Profile.CorrectAnswers = 1
	if trig, ok := DetermineAdaptationTrigger(st, true, 5); !ok || trig != adapt.TriggerLowAccuracy {
		t.Errorf("clause 4 = %s/%v", trig, ok)
	}
	// Under the answer floor the clause stays silent.
	st.Profile.TotalAnswers = 2
	st.Profile.CorrectAnswers = 0
	if _, ok := DetermineAdaptationTrigger(st, true, 5); ok {
		t.Error("clause 4 fired under the answer floor")
	}

	// Healthy learner: no trigger.
	st = testState(session.PhaseLearning)
	st.Profile.TotalAnswers = 10
	st.Profile.CorrectAnswers = 9
	if _, ok := DetermineAdaptationTrigger(st, true, 5); ok {
		t.Error("trigger fired for a healthy learner")
	}
}

func TestSessionSummaryFallback(t *testing.T) {
	o := New(nil, DefaultConfig())
	st := testState(session.PhaseReview)
	st.Topic = "algorithms"
	st.TotalInteractions = 8
	st.Profile.TotalAnswers = 4
	st.Profile.CorrectAnswers = 3

	got := o.SessionSummary(context.Background(), st)
	if got == "" {
		t.Fatal("empty summary")
	}

	// LLM failure also lands on the factual fallback.
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	o = New(mock, DefaultConfig())
	if got := o.SessionSummary(context.Background(), st); got == "" {
		t.Error("empty summary on provider failure")
	}
}

func TestSessionSummaryLLM(t *testing.T) {
	resp := json.RawMessage(`{"summary":"Great work on algorithms today!"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	o := New(mock, DefaultConfig())

	st := testState(session.PhaseReview)
	if got := o.SessionSummary(context.Background(), st); got != "Great work on algorithms today!" {
		t.Errorf("summary = %q", got)
	}
}
