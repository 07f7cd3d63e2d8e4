package diagnostic

import (
	"testing"

	"github.com/abhisek/adept/internal/profile"
)

func bankQuestion(t *testing.T, id string) Question {
	t.Helper()
	q, ok := Lookup(id)
	if !ok {
		t.Fatalf("question %q not in bank", id)
	}
	return q
}

func TestNormalizeTopic(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Operating Systems", "operating_systems"},
		{"os", "operating_systems"},
		{"deadlock", "operating_systems"},
		{"Data Structures", "data_structures"},
		{"DS", "data_structures"},
		{"algo", "algorithms"},
		{"CS: Sorting", "algorithms"},
		{"quantum basket weaving", "algorithms"}, // unknown → default
		{"", "algorithms"},
	}
	for _, tc := range cases {
		if got := NormalizeTopic(tc.in); got != tc.want {
			t.Errorf("NormalizeTopic(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestQuestions_TotalResolution(t *testing.T) {
	qs := Questions("no such topic")
	if len(qs) == 0 {
		t.Fatal("unknown topic returned empty bank")
	}
	if qs[0].Topic != "Algorithms" {
		t.Errorf("fallback bank topic = %q, want Algorithms", qs[0].Topic)
	}
}

func TestProcessAnswer_CorrectnessAndCounters(t *testing.T) {
	e := NewEngine()
	p := profile.New()
	q := bankQuestion(t, "os_1")

	res, err := e.ProcessAnswer(Answer{QuestionID: "os_1", SelectedIndex: 1, TimeTakenSecs: 20}, q, p)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Correct {
		t.Error("expected correct answer")
	}
	if p.TotalAnswers != 1 || p.CorrectAnswers != 1 {
		t.Errorf("counters = %d/%d, want 1/1", p.CorrectAnswers, p.TotalAnswers)
	}
	if p.AvgResponseSecs != 20 {
		t.Errorf("AvgResponseSecs = %f, want 20", p.AvgResponseSecs)
	}

	res, err = e.ProcessAnswer(Answer{QuestionID: "os_1", SelectedIndex: 0, TimeTakenSecs: 40}, q, p)
	if err != nil {
		t.Fatal(err)
	}
	if res.Correct {
		t.Error("expected incorrect answer")
	}
	if p.TotalAnswers != 2 || p.CorrectAnswers != 1 {
		t.Errorf("counters = %d/%d, want 1/2", p.CorrectAnswers, p.TotalAnswers)
	}
	if p.AvgResponseSecs != 30 {
		t.Errorf("AvgResponseSecs = %f, want 30", p.AvgResponseSecs)
	}
}

func TestProcessAnswer_MetaQuestionVotes(t *testing.T) {
	e := NewEngine()
	p := profile.New()
	q := bankQuestion(t, "os_2") // style-detection question

	// Option 0 is the "traffic signal" analogy.
	_, err := e.ProcessAnswer(Answer{QuestionID: "os_2", SelectedIndex: 0, TimeTakenSecs: 10}, q, p)
	if err != nil {
		t.Fatal(err)
	}
	if p.StyleVotes[profile.StyleConceptual] != 1 {
		t.Errorf("conceptual votes = %d, want 1", p.StyleVotes[profile.StyleConceptual])
	}
	if p.DepthVotes[profile.DepthIntuitionFirst] != 1 {
		t.Errorf("intuition votes = %d, want 1", p.DepthVotes[profile.DepthIntuitionFirst])
	}
	// Live narration follows the latest vote before finalization.
	if p.Style != profile.StyleConceptual || p.Depth != profile.DepthIntuitionFirst {
		t.Errorf("live style/depth = %s/%s", p.Style, p.Depth)
	}
}

func TestProcessAnswer_KeywordClassification(t *testing.T) {
	e := NewEngine()
	p := profile.New()
	q := bankQuestion(t, "os_2")

	// Option 2 mentions a flowchart: keyword match beats the index
	// fallback, but depth still follows the index table.
	_, err := e.ProcessAnswer(Answer{QuestionID: "os_2", SelectedIndex: 2, TimeTakenSecs: 10}, q, p)
	if err != nil {
		t.Fatal(err)
	}
	if p.StyleVotes[profile.StyleVisual] != 1 {
		t.Errorf("visual votes = %d, want 1: %v", p.StyleVotes[profile.StyleVisual], p.StyleVotes)
	}
	if p.DepthVotes[profile.DepthFormulaFirst] != 1 {
		t.Errorf("formula votes = %d, want 1", p.DepthVotes[profile.DepthFormulaFirst])
	}
}

func TestProcessAnswer_PaceLastWriteWins(t *testing.T) {
	e := NewEngine()
	q := bankQuestion(t, "algo_5")

	// A1 (10s) then A2 (50s): final pace slow.
	p := profile.New()
	if _, err := e.ProcessAnswer(Answer{QuestionID: "algo_5", SelectedIndex: 1, TimeTakenSecs: 10}, q, p); err != nil {
		t.Fatal(err)
	}
	if _, err := e.ProcessAnswer(Answer{QuestionID: "algo_5", SelectedIndex: 1, TimeTakenSecs: 50}, q, p); err != nil {
		t.Fatal(err)
	}
	if p.Pace != profile.PaceSlow {
		t.Errorf("pace after 10s,50s = %s, want slow", p.Pace)
	}

	// Reversed order: final pace medium. Order sensitivity is by design.
	p = profile.New()
	if _, err := e.ProcessAnswer(Answer{QuestionID: "algo_5", SelectedIndex: 1, TimeTakenSecs: 50}, q, p); err != nil {
		t.Fatal(err)
	}
	if _, err := e.ProcessAnswer(Answer{QuestionID: "algo_5", SelectedIndex: 1, TimeTakenSecs: 10}, q, p); err != nil {
		t.Fatal(err)
	}
	if p.Pace != profile.PaceFast {
		t.Errorf("pace after 50s,10s = %s, want fast", p.Pace)
	}
}

func TestProcessAnswer_ConfidenceRating(t *testing.T) {
	e := NewEngine()
	q := bankQuestion(t, "ds_1")

	cases := []struct {
		rating int
		want   profile.Confidence
	}{
		{1, profile.ConfidenceLow},
		{2, profile.ConfidenceLow},
		{3, profile.ConfidenceMedium},
		{4, profile.ConfidenceHigh},
		{5, profile.ConfidenceHigh},
	}
	for _, tc := range cases {
		p := profile.New()
		_, err := e.ProcessAnswer(Answer{QuestionID: "ds_1", SelectedIndex: 1, TimeTakenSecs: 20, ConfidenceRating: tc.rating}, q, p)
		if err != nil {
			t.Fatal(err)
		}
		if p.Confidence != tc.want {
			t.Errorf("rating %d → confidence %s, want %s", tc.rating, p.Confidence, tc.want)
		}
	}

	// Absent rating leaves confidence untouched.
	p := profile.New()
	p.Confidence = profile.ConfidenceHigh
	if _, err := e.ProcessAnswer(Answer{QuestionID: "ds_1", SelectedIndex: 1, TimeTakenSecs: 20}, q, p); err != nil {
		t.Fatal(err)
	}
	if p.Confidence != profile.ConfidenceHigh {
		t.Errorf("absent rating changed confidence to %s", p.Confidence)
	}
}

func TestProcessAnswer_VoteMonotonicity(t *testing.T) {
	e := NewEngine()
	p := profile.New()
	meta := bankQuestion(t, "os_4")

	prev := map[profile.Style]int{}
	for i := 0; i < 4; i++ {
		_, err := e.ProcessAnswer(Answer{QuestionID: "os_4", SelectedIndex: i, TimeTakenSecs: 5}, meta, p)
		if err != nil {
			t.Fatal(err)
		}
		for s, n := range p.StyleVotes {
			if n < prev[s] {
				t.Errorf("style vote for %s decreased: %d → %d", s, prev[s], n)
			}
			prev[s] = n
		}
	}
}

func TestProcessAnswer_Preconditions(t *testing.T) {
	e := NewEngine()
	p := profile.New()
	q := bankQuestion(t, "os_1")

	if _, err := e.ProcessAnswer(Answer{QuestionID: "ds_1", SelectedIndex: 0}, q, p); err == nil {
		t.Error("mismatched question id accepted")
	}
	if _, err := e.ProcessAnswer(Answer{QuestionID: "os_1", SelectedIndex: 7}, q, p); err == nil {
		t.Error("out-of-range index accepted")
	}
	if p.TotalAnswers != 0 {
		t.Errorf("rejected answers still mutated the profile: %d", p.TotalAnswers)
	}
}

func TestFinalize_UsesAggregateNotLatest(t *testing.T) {
	e := NewEngine()
	p := profile.New()
	meta := bankQuestion(t, "os_4")

	// Two exam-focused votes, then one visual vote last.
	for _, idx := range []int{3, 2, 1} {
		if _, err := e.ProcessAnswer(Answer{QuestionID: "os_4", SelectedIndex: idx, TimeTakenSecs: 5}, meta, p); err != nil {
			t.Fatal(err)
		}
	}
	if p.Style != profile.StyleVisual {
		t.Errorf("live style = %s, want visual (latest vote)", p.Style)
	}

	e.Finalize(p)
	if p.Style != profile.StyleExamFocused {
		t.Errorf("finalized style = %s, want exam-focused (argmax)", p.Style)
	}
}
