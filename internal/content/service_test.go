package content

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/adept/internal/diagnostic"
	"github.com/abhisek/adept/internal/llm"
	"github.com/abhisek/adept/internal/profile"
)

func TestDifficultyMix(t *testing.T) {
	cases := []struct {
		conf profile.Confidence
		want string
	}{
		{profile.ConfidenceLow, "3 easy, 2 medium, 0 hard"},
		{profile.ConfidenceMedium, "2 easy, 2 medium, 1 hard"},
		{profile.ConfidenceHigh, "1 easy, 2 medium, 2 hard"},
	}
	for _, tc := range cases {
		if got := difficultyMix(tc.conf); got != tc.want {
			t.Errorf("difficultyMix(%s) = %q, want %q", tc.conf, got, tc.want)
		}
	}
}

func TestGenerateMCQs(t *testing.T) {
	resp := json.RawMessage(`{"questions":[
		{"question":"Which traversal visits the root first?","options":["Pre-order","In-order","Post-order","Level-order"],"correct_answer":0,"explanation":"Pre-order is root, left, right.","difficulty":"easy"},
		{"question":"Bad entry","options":["only","three","options"],"correct_answer":0,"explanation":"x","difficulty":"easy"},
		{"question":"Unknown difficulty","options":["a","b","c","d"],"correct_answer":2,"explanation":"y","difficulty":"impossible"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := NewService(mock, DefaultConfig())

	p := profile.New()
	p.Confidence = profile.ConfidenceLow
	mcqs, err := svc.GenerateMCQs(context.Background(), "data_structures", p)
	if err != nil {
		t.Fatal(err)
	}
	// Malformed entry dropped, unknown difficulty coerced.
	if len(mcqs) != 2 {
		t.Fatalf("mcqs = %d, want 2", len(mcqs))
	}
	if mcqs[0].ID == "" || mcqs[0].Topic != "data_structures" {
		t.Errorf("mcq not stamped: %+v", mcqs[0])
	}
	if mcqs[1].Difficulty != diagnostic.DifficultyMedium {
		t.Errorf("unknown difficulty = %s, want medium", mcqs[1].Difficulty)
	}

	// Low confidence drives the easy-heavy mix into the prompt.
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "3 easy, 2 medium, 0 hard") {
		t.Error("prompt missing difficulty distribution")
	}
}

func TestGenerateMCQsAllMalformed(t *testing.T) {
	resp := json.RawMessage(`{"questions":[{"question":"q","options":["a"],"correct_answer":9,"explanation":"e","difficulty":"easy"}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GenerateMCQs(context.Background(), "t", profile.New()); err == nil {
		t.Error("all-malformed batch accepted")
	}
}

func TestGrade(t *testing.T) {
	q := MCQ{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Explanation: "because"}

	r := Grade(q, 2)
	if !r.Correct || r.Explanation != "because" {
		t.Errorf("grade correct = %+v", r)
	}
	r = Grade(q, 0)
	if r.Correct || r.CorrectIndex != 2 || r.SelectedIndex != 0 {
		t.Errorf("grade wrong = %+v", r)
	}
}

func TestGenerateFlashcards(t *testing.T) {
	resp := json.RawMessage(`{"flashcards":[
		{"front":"What is a hash collision?","back":"Two keys mapping to the same bucket, e.g. ..."},
		{"front":"What is load factor?","back":"Entries divided by buckets."}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := NewService(mock, DefaultConfig())

	p := profile.New()
	p.Style = profile.StyleExamFocused
	cards, err := svc.GenerateFlashcards(context.Background(), "data_structures", p)
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 2 || cards[0].Topic != "data_structures" {
		t.Errorf("cards = %+v", cards)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "exams") {
		t.Error("prompt missing exam-focused style hint")
	}
}

func TestGenerateSummaryPace(t *testing.T) {
	resp := json.RawMessage(`{"summary":"An OS schedules processes...","key_points":["a","b","c"]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := NewService(mock, DefaultConfig())

	p := profile.New()
	p.Pace = profile.PaceFast
	sum, err := svc.GenerateSummary(context.Background(), "operating_systems", p)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Text == "" || len(sum.KeyPoints) != 3 {
		t.Errorf("summary = %+v", sum)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "concise (75-100 words)") {
		t.Error("fast pace not reflected in prompt")
	}
}

func TestGenerateErrorsSurface(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GenerateMCQs(context.Background(), "t", profile.New()); err == nil {
		t.Error("provider error swallowed")
	}
}
