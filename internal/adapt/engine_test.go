package adapt

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/adept/internal/diagnostic"
	"github.com/abhisek/adept/internal/llm"
	"github.com/abhisek/adept/internal/profile"
)

func TestApply_WrongHardStepsConfidenceDown(t *testing.T) {
	e := NewEngine(nil, DefaultConfig())

	cases := []struct {
		from, want profile.Confidence
	}{
		{profile.ConfidenceHigh, profile.ConfidenceMedium},
		{profile.ConfidenceMedium, profile.ConfidenceLow},
		{profile.ConfidenceLow, profile.ConfidenceLow},
	}
	for _, tc := range cases {
		p := profile.New()
		p.Confidence = tc.from
		out := e.Apply(p, Event{Correct: false, Difficulty: diagnostic.DifficultyHard})
		if p.Confidence != tc.want {
			t.Errorf("confidence %s → %s, want %s", tc.from, p.Confidence, tc.want)
		}
		if out.StyleChanged {
			t.Error("confidence step reported as style change")
		}
	}

	// Wrong on an easy question leaves confidence alone.
	p := profile.New()
	p.Confidence = profile.ConfidenceHigh
	e.Apply(p, Event{Correct: false, Difficulty: diagnostic.DifficultyEasy})
	if p.Confidence != profile.ConfidenceHigh {
		t.Errorf("easy wrong answer changed confidence to %s", p.Confidence)
	}
}

func TestApply_LowAccuracyForcesIntuitionFirst(t *testing.T) {
	e := NewEngine(nil, DefaultConfig())
	p := profile.New()
	p.Depth = profile.DepthFormulaFirst
	p.TotalAnswers = 4
	p.CorrectAnswers = 1

	out := e.Apply(p, Event{Correct: true})
	if p.Depth != profile.DepthIntuitionFirst {
		t.Errorf("depth = %s, want intuition-first", p.Depth)
	}
	if len(out.Changes) != 1 || out.Changes[0].Field != "depth" {
		t.Errorf("changes = %+v", out.Changes)
	}

	// Below the answer floor the rule must not fire.
	p = profile.New()
	p.Depth = profile.DepthFormulaFirst
	p.TotalAnswers = 2
	p.CorrectAnswers = 0
	e.Apply(p, Event{Correct: true})
	if p.Depth != profile.DepthFormulaFirst {
		t.Error("low-accuracy rule fired under the answer floor")
	}
}

func TestApply_HighAccuracyStepsPaceAndConfidence(t *testing.T) {
	e := NewEngine(nil, DefaultConfig())
	p := profile.New()
	p.Pace = profile.PaceSlow
	p.Confidence = profile.ConfidenceLow
	p.TotalAnswers = 5
	p.CorrectAnswers = 4

	e.Apply(p, Event{Correct: true})
	if p.Pace != profile.PaceMedium {
		t.Errorf("pace = %s, want medium", p.Pace)
	}
	if p.Confidence != profile.ConfidenceMedium {
		t.Errorf("confidence = %s, want medium", p.Confidence)
	}

	// No auto-step above medium.
	e.Apply(p, Event{Correct: true})
	if p.Pace != profile.PaceMedium {
		t.Errorf("pace auto-stepped past medium: %s", p.Pace)
	}
}

func TestApply_NeverChangesStyle(t *testing.T) {
	e := NewEngine(nil, DefaultConfig())
	p := profile.New()
	p.TotalAnswers = 10
	p.CorrectAnswers = 1

	out := e.Apply(p, Event{Correct: false, Difficulty: diagnostic.DifficultyHard})
	if out.StyleChanged {
		t.Error("rule-based path reported a style change")
	}
}

func TestSuggest_AppliesWholesale(t *testing.T) {
	resp := json.RawMessage(`{"learning_style":"visual","pace":"fast","confidence":"high","depth_preference":"formula-first","reasoning":"learner asked for diagrams"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	e := NewEngine(mock, DefaultConfig())

	p := profile.New()
	p.TotalAnswers = 3
	p.CorrectAnswers = 2
	p.AddVote(profile.StyleConceptual, profile.DepthIntuitionFirst)

	updated, out, err := e.Suggest(context.Background(), p, TriggerLowAccuracy, "three wrong in a row")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Style != profile.StyleVisual || updated.Pace != profile.PaceFast {
		t.Errorf("suggestion not applied: %s/%s", updated.Style, updated.Pace)
	}
	if !out.StyleChanged {
		t.Error("style change not reported")
	}
	// Counters and votes carry over.
	if updated.TotalAnswers != 3 || updated.StyleVotes[profile.StyleConceptual] != 1 {
		t.Error("suggestion dropped accumulated state")
	}
	// Input profile untouched.
	if p.Style != profile.StyleConceptual {
		t.Errorf("input profile mutated: %s", p.Style)
	}
}

func TestSuggest_FailsClosedOnInvalidEnum(t *testing.T) {
	resp := json.RawMessage(`{"learning_style":"bogus","pace":"fast","confidence":"high","depth_preference":"formula-first","reasoning":"x"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	e := NewEngine(mock, DefaultConfig())

	p := profile.New()
	updated, out, err := e.Suggest(context.Background(), p, TriggerUserRequest, "")
	if err == nil {
		t.Fatal("invalid enum accepted")
	}
	if updated != p {
		t.Error("fail-closed path returned a different profile")
	}
	if out.StyleChanged {
		t.Error("fail-closed path reported a style change")
	}
	if p.Style != profile.StyleConceptual || p.Pace != profile.PaceMedium {
		t.Error("fail-closed path partially applied the suggestion")
	}
}

func TestSuggest_FailsClosedOnMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	e := NewEngine(mock, DefaultConfig())

	p := profile.New()
	updated, _, err := e.Suggest(context.Background(), p, TriggerUserRequest, "")
	if err == nil {
		t.Fatal("malformed JSON accepted")
	}
	if updated != p {
		t.Error("malformed JSON produced a new profile")
	}
}

func TestSuggest_FailsClosedOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	e := NewEngine(mock, DefaultConfig())

	p := profile.New()
	updated, _, err := e.Suggest(context.Background(), p, TriggerSlowResponse, "")
	if err == nil {
		t.Fatal("provider error swallowed")
	}
	if updated != p {
		t.Error("provider error produced a new profile")
	}
}

func TestCheckMisconceptions_IncorrectAppliesStruggleRules(t *testing.T) {
	resp := json.RawMessage(`{"classification":"incorrect","misconception":"believes a deadlock resolves itself","feedback":"Close - let's look at circular wait again."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	e := NewEngine(mock, DefaultConfig())

	p := profile.New()
	p.Confidence = profile.ConfidenceHigh
	p.Depth = profile.DepthFormulaFirst

	a := e.CheckMisconceptions(context.Background(), "operating_systems", "deadlock", "it fixes itself eventually", p)
	if a.Classification != ClassIncorrect {
		t.Errorf("classification = %s", a.Classification)
	}
	if !a.ProfileChanged {
		t.Error("profile change not reported")
	}
	if p.Confidence != profile.ConfidenceMedium {
		t.Errorf("confidence = %s, want medium", p.Confidence)
	}
	if p.Depth != profile.DepthIntuitionFirst {
		t.Errorf("depth = %s, want intuition-first", p.Depth)
	}
	if len(p.Misconceptions) != 1 || p.Misconceptions[0].Topic != "operating_systems" {
		t.Errorf("misconceptions = %+v", p.Misconceptions)
	}
}

func TestCheckMisconceptions_CorrectLeavesProfileAlone(t *testing.T) {
	resp := json.RawMessage(`{"classification":"correct","misconception":"","feedback":"Nailed it."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	e := NewEngine(mock, DefaultConfig())

	p := profile.New()
	p.Confidence = profile.ConfidenceHigh
	a := e.CheckMisconceptions(context.Background(), "algorithms", "binary search", "halve the range each step", p)
	if a.ProfileChanged {
		t.Error("correct answer changed the profile")
	}
	if p.Confidence != profile.ConfidenceHigh || len(p.Misconceptions) != 0 {
		t.Error("correct answer mutated the profile")
	}
}

func TestCheckMisconceptions_MalformedClassifierFallsBack(t *testing.T) {
	cases := []llm.MockResponse{
		{Content: json.RawMessage(`{"classification":"confused"}`)},
		{Content: json.RawMessage(`garbage`)},
		{Err: &llm.ErrProviderUnavailable{}},
	}
	for _, canned := range cases {
		mock := llm.NewMockProvider(canned)
		e := NewEngine(mock, DefaultConfig())

		p := profile.New()
		a := e.CheckMisconceptions(context.Background(), "algorithms", "recursion", "", p)
		if a.Classification != ClassNotAttempted {
			t.Errorf("fallback classification = %s, want not_attempted", a.Classification)
		}
		if a.Feedback == "" {
			t.Error("fallback produced empty feedback")
		}
		// not_attempted counts as incorrect for the profile.
		if !a.ProfileChanged || p.Depth != profile.DepthIntuitionFirst {
			t.Error("not_attempted fallback skipped the struggle rules")
		}
	}
}
