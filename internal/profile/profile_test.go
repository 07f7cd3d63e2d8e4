package profile

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	p := New()
	if p.Style != StyleConceptual {
		t.Errorf("Style = %s, want conceptual", p.Style)
	}
	if p.Pace != PaceMedium || p.Confidence != ConfidenceMedium {
		t.Errorf("Pace/Confidence = %s/%s, want medium/medium", p.Pace, p.Confidence)
	}
	if got := p.AccuracyRate(); got != 0.0 {
		t.Errorf("AccuracyRate with no answers = %f, want 0", got)
	}
	if len(p.StyleVotes) != 3 || len(p.DepthVotes) != 2 {
		t.Errorf("vote tallies not seeded: %v %v", p.StyleVotes, p.DepthVotes)
	}
}

func TestRecordAnswer_CountersAndMean(t *testing.T) {
	p := New()
	p.RecordAnswer(true, 10)
	p.RecordAnswer(false, 20)
	p.RecordAnswer(true, 30)

	if p.TotalAnswers != 3 || p.CorrectAnswers != 2 {
		t.Errorf("counters = %d/%d, want 2/3", p.CorrectAnswers, p.TotalAnswers)
	}
	if p.CorrectAnswers > p.TotalAnswers {
		t.Error("invariant violated: correct > total")
	}
	if got, want := p.AccuracyRate(), 2.0/3.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("AccuracyRate = %f, want %f", got, want)
	}
	if got := p.AvgResponseSecs; math.Abs(got-20.0) > 1e-9 {
		t.Errorf("AvgResponseSecs = %f, want 20", got)
	}
}

func TestAddVote_MonotoneAndClosedDomain(t *testing.T) {
	p := New()
	p.AddVote(StyleVisual, DepthIntuitionFirst)
	p.AddVote(StyleVisual, "")
	p.AddVote(Style("bogus"), Depth("bogus"))

	if p.StyleVotes[StyleVisual] != 2 {
		t.Errorf("visual votes = %d, want 2", p.StyleVotes[StyleVisual])
	}
	if p.DepthVotes[DepthIntuitionFirst] != 1 {
		t.Errorf("intuition votes = %d, want 1", p.DepthVotes[DepthIntuitionFirst])
	}
	if len(p.StyleVotes) != 3 || len(p.DepthVotes) != 2 {
		t.Errorf("vote domain grew: %v %v", p.StyleVotes, p.DepthVotes)
	}
}

func TestFinalizeVotes_ArgmaxAndIdempotence(t *testing.T) {
	p := New()
	p.AddVote(StyleExamFocused, DepthFormulaFirst)
	p.AddVote(StyleExamFocused, DepthFormulaFirst)
	p.AddVote(StyleVisual, DepthIntuitionFirst)

	p.FinalizeVotes()
	if p.Style != StyleExamFocused {
		t.Errorf("Style = %s, want exam-focused", p.Style)
	}
	if p.Depth != DepthFormulaFirst {
		t.Errorf("Depth = %s, want formula-first", p.Depth)
	}

	// Second call with no new votes must not change anything.
	p.FinalizeVotes()
	if p.Style != StyleExamFocused || p.Depth != DepthFormulaFirst {
		t.Errorf("finalize not idempotent: %s/%s", p.Style, p.Depth)
	}
}

func TestFinalizeVotes_NoVotesLeavesPrior(t *testing.T) {
	p := New()
	p.Style = StyleVisual
	p.Depth = DepthFormulaFirst
	p.FinalizeVotes()
	if p.Style != StyleVisual || p.Depth != DepthFormulaFirst {
		t.Errorf("empty tallies overwrote prior values: %s/%s", p.Style, p.Depth)
	}
}

func TestFinalizeVotes_TieBreaksByPriority(t *testing.T) {
	p := New()
	p.AddVote(StyleVisual, "")
	p.AddVote(StyleExamFocused, "")
	p.FinalizeVotes()
	// conceptual > visual > exam-focused; conceptual has no votes, so
	// the tie between visual and exam-focused resolves to visual.
	if p.Style != StyleVisual {
		t.Errorf("tie-break Style = %s, want visual", p.Style)
	}
}

func TestClone_Independence(t *testing.T) {
	p := New()
	p.AddVote(StyleConceptual, DepthIntuitionFirst)
	p.TopicsExplored = append(p.TopicsExplored, "algorithms")
	p.AddMisconception("algorithms", "thinks quicksort is stable", "medium", time.Now())

	c := p.Clone()
	c.AddVote(StyleConceptual, DepthIntuitionFirst)
	c.TopicsExplored = append(c.TopicsExplored, "operating systems")
	c.Style = StyleExamFocused

	if p.StyleVotes[StyleConceptual] != 1 {
		t.Errorf("clone mutation leaked into original votes: %v", p.StyleVotes)
	}
	if len(p.TopicsExplored) != 1 {
		t.Errorf("clone mutation leaked into original topics: %v", p.TopicsExplored)
	}
	if p.Style != StyleConceptual {
		t.Errorf("clone mutation leaked into original style: %s", p.Style)
	}
}

func TestStepConfidence(t *testing.T) {
	cases := []struct {
		in       Confidence
		down, up Confidence
	}{
		{ConfidenceHigh, ConfidenceMedium, ConfidenceHigh},
		{ConfidenceMedium, ConfidenceLow, ConfidenceHigh},
		{ConfidenceLow, ConfidenceLow, ConfidenceMedium},
	}
	for _, tc := range cases {
		if got := StepConfidenceDown(tc.in); got != tc.down {
			t.Errorf("StepConfidenceDown(%s) = %s, want %s", tc.in, got, tc.down)
		}
		if got := StepConfidenceUp(tc.in); got != tc.up {
			t.Errorf("StepConfidenceUp(%s) = %s, want %s", tc.in, got, tc.up)
		}
	}
}

func TestValidators(t *testing.T) {
	if !ValidStyle("visual") || ValidStyle("bogus") {
		t.Error("ValidStyle misclassifies")
	}
	if !ValidPace("slow") || ValidPace("") {
		t.Error("ValidPace misclassifies")
	}
	if !ValidConfidence("high") || ValidConfidence("extreme") {
		t.Error("ValidConfidence misclassifies")
	}
	if !ValidDepth("intuition-first") || ValidDepth("depth-first") {
		t.Error("ValidDepth misclassifies")
	}
	if !ValidIntent("interview") || ValidIntent("fun") {
		t.Error("ValidIntent misclassifies")
	}
}

func TestSetIntentMarksExplicitChoice(t *testing.T) {
	p := New()
	if p.IntentSet {
		t.Error("fresh profile should not have intent marked as set")
	}
	p.SetIntent(IntentExam)
	if p.Intent != IntentExam || !p.IntentSet {
		t.Errorf("intent = %s (set=%t), want exam, set", p.Intent, p.IntentSet)
	}
	if c := p.Clone(); c.Intent != IntentExam || !c.IntentSet {
		t.Error("clone dropped the explicit intent")
	}
}

func TestPromptContext_MentionsCoreFields(t *testing.T) {
	p := New()
	p.Style = StyleVisual
	p.TopicsExplored = []string{"data structures"}
	ctx := p.PromptContext()
	for _, want := range []string{"visual", "data structures", "Accuracy"} {
		if !strings.Contains(ctx, want) {
			t.Errorf("PromptContext missing %q:\n%s", want, ctx)
		}
	}
}
