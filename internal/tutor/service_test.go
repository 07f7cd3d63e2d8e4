package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/adept/internal/llm"
	"github.com/abhisek/adept/internal/profile"
)

func TestSelectStylePrimary(t *testing.T) {
	cases := []struct {
		style profile.Style
		want  TeachingStyle
	}{
		{profile.StyleConceptual, StyleStoryAnalogy},
		{profile.StyleVisual, StyleVisualMental},
		{profile.StyleExamFocused, StyleExamSmart},
	}
	for _, tc := range cases {
		p := profile.New()
		p.Style = tc.style
		if got := SelectStyle(p, false, ""); got != tc.want {
			t.Errorf("SelectStyle(%s) = %s, want %s", tc.style, got, tc.want)
		}
	}
}

func TestSelectStyleReExplain(t *testing.T) {
	// Low confidence always falls back to step-by-step.
	p := profile.New()
	p.Confidence = profile.ConfidenceLow
	if got := SelectStyle(p, true, StyleStoryAnalogy); got != StyleStepByStep {
		t.Errorf("low confidence re-explain = %s, want step_by_step", got)
	}
	// Unless step-by-step was the style that just failed.
	if got := SelectStyle(p, true, StyleStepByStep); got == StyleStepByStep {
		t.Error("re-explain repeated the failed style")
	}

	// Formula-first learners get the definition-led style.
	p = profile.New()
	p.Depth = profile.DepthFormulaFirst
	if got := SelectStyle(p, true, StyleStoryAnalogy); got != StyleExamSmart {
		t.Errorf("formula-first re-explain = %s, want exam_smart", got)
	}

	// The re-explanation never repeats the previous style.
	for _, prev := range []TeachingStyle{StyleStoryAnalogy, StyleStepByStep, StyleExamSmart, StyleVisualMental} {
		for _, conf := range []profile.Confidence{profile.ConfidenceLow, profile.ConfidenceMedium, profile.ConfidenceHigh} {
			p := profile.New()
			p.Confidence = conf
			if got := SelectStyle(p, true, prev); got == prev {
				t.Errorf("re-explain repeated %s (confidence %s)", prev, conf)
			}
		}
	}
}

func TestAnalogyFor(t *testing.T) {
	if a := AnalogyFor("Deadlock detection", profile.StyleConceptual); a == "" {
		t.Error("no analogy for deadlock")
	}
	// Visual learners get the visual framing.
	c := AnalogyFor("stack", profile.StyleConceptual)
	v := AnalogyFor("stack", profile.StyleVisual)
	if c == v {
		t.Error("visual and conceptual framings identical")
	}
	if a := AnalogyFor("quantum chromodynamics", profile.StyleConceptual); a != "" {
		t.Errorf("unexpected analogy: %q", a)
	}
}

func TestExplain(t *testing.T) {
	resp := json.RawMessage(`{"content":"A mutex is like a single bathroom key...","key_takeaways":["One holder at a time","Waiters block","Release promptly"],"follow_up_question":"What happens if the key is never returned?"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := NewService(mock, DefaultConfig())

	p := profile.New()
	p.Style = profile.StyleVisual
	exp, err := svc.Explain(context.Background(), ExplainInput{
		Topic:   "operating_systems",
		Concept: "mutex",
		Profile: p,
	})
	if err != nil {
		t.Fatal(err)
	}
	if exp.StyleUsed != StyleVisualMental {
		t.Errorf("style = %s, want visual_mental", exp.StyleUsed)
	}
	if len(exp.KeyTakeaways) != 3 || exp.FollowUpQuestion == "" {
		t.Errorf("takeaways/follow-up missing: %+v", exp)
	}
	if exp.Adapted {
		t.Error("first explanation marked adapted")
	}

	// The prompt carries the profile and style instructions.
	req := mock.Calls[0]
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "LEARNER PROFILE") {
		t.Error("prompt missing profile context")
	}
	if !strings.Contains(msg, string(StyleVisualMental)) {
		t.Error("prompt missing teaching style")
	}
	if req.Schema != ExplanationSchema {
		t.Error("request missing explanation schema")
	}
}

func TestExplainReExplanation(t *testing.T) {
	resp := json.RawMessage(`{"content":"Step 1: ...","key_takeaways":["a","b","c"],"follow_up_question":"q?"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := NewService(mock, DefaultConfig())

	p := profile.New()
	p.Confidence = profile.ConfidenceLow
	exp, err := svc.Explain(context.Background(), ExplainInput{
		Topic:         "algorithms",
		Concept:       "recursion",
		Profile:       p,
		ReExplain:     true,
		PreviousStyle: StyleStoryAnalogy,
	})
	if err != nil {
		t.Fatal(err)
	}
	if exp.StyleUsed != StyleStepByStep {
		t.Errorf("style = %s, want step_by_step", exp.StyleUsed)
	}
	if !exp.Adapted {
		t.Error("re-explanation not marked adapted")
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "RE-EXPLANATION") {
		t.Error("prompt missing re-explanation notice")
	}
}

func TestExplainErrors(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Explain(context.Background(), ExplainInput{Topic: "t", Profile: profile.New()}); err == nil {
		t.Error("malformed response accepted")
	}
	if _, err := svc.Explain(context.Background(), ExplainInput{Topic: "t"}); err == nil {
		t.Error("nil profile accepted")
	}
}
