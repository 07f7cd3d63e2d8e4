package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/adept/internal/diagnostic"
	"github.com/abhisek/adept/internal/llm"
	"github.com/abhisek/adept/internal/profile"
)

const contentSystemPrompt = `You are a CS content generator for an adaptive tutoring system.

Your output requirements:
- Questions test UNDERSTANDING, not just recall
- Wrong options (distractors) must be plausible
- Flashcards carry one key concept per card
- Calibrate difficulty to the learner profile you are given`

// Service generates practice content conditioned on the learner profile.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a content generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// difficultyMix returns the MCQ difficulty distribution for the learner's
// confidence level.
func difficultyMix(c profile.Confidence) string {
	switch c {
	case profile.ConfidenceLow:
		return "3 easy, 2 medium, 0 hard"
	case profile.ConfidenceHigh:
		return "1 easy, 2 medium, 2 hard"
	default:
		return "2 easy, 2 medium, 1 hard"
	}
}

type mcqOutput struct {
	Questions []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
		Difficulty    string   `json:"difficulty"`
	} `json:"questions"`
}

// GenerateMCQs generates a batch of multiple-choice questions for the topic,
// with the difficulty mix keyed to the learner's confidence.
func (s *Service) GenerateMCQs(ctx context.Context, topic string, p *profile.Profile) ([]MCQ, error) {
	ctx = llm.WithPurpose(ctx, "content-gen")

	userMsg := fmt.Sprintf(`Generate %d multiple-choice questions on: %s

%s

DIFFICULTY DISTRIBUTION: %s

Each question has 4 options. Include practical/application questions.`,
		s.cfg.MCQCount, topic, p.PromptContext(), difficultyMix(p.Confidence))

	req := llm.Request{
		System:      contentSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      MCQSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("mcq generation: %w", err)
	}

	var out mcqOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse mcq response: %w", err)
	}
	if len(out.Questions) == 0 {
		return nil, fmt.Errorf("mcq generation: empty batch")
	}

	mcqs := make([]MCQ, 0, len(out.Questions))
	for _, q := range out.Questions {
		if len(q.Options) != 4 || q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			continue // drop malformed entries rather than failing the batch
		}
		diff := diagnostic.Difficulty(q.Difficulty)
		if diff != diagnostic.DifficultyEasy && diff != diagnostic.DifficultyMedium && diff != diagnostic.DifficultyHard {
			diff = diagnostic.DifficultyMedium
		}
		mcqs = append(mcqs, MCQ{
			ID:           uuid.NewString(),
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectAnswer,
			Explanation:  q.Explanation,
			Difficulty:   diff,
			Topic:        topic,
		})
	}
	if len(mcqs) == 0 {
		return nil, fmt.Errorf("mcq generation: no well-formed questions in batch")
	}
	return mcqs, nil
}

type flashcardOutput struct {
	Flashcards []struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	} `json:"flashcards"`
}

// flashcardHint tailors flashcard backs to the learner's style.
func flashcardHint(style profile.Style) string {
	switch style {
	case profile.StyleConceptual:
		return "Include a real-world analogy on the back of each card."
	case profile.StyleExamFocused:
		return "Focus on definitions and key terms that appear in exams."
	default:
		return "Include visual/structural descriptions where helpful."
	}
}

// GenerateFlashcards generates revision flashcards for the topic.
func (s *Service) GenerateFlashcards(ctx context.Context, topic string, p *profile.Profile) ([]Flashcard, error) {
	ctx = llm.WithPurpose(ctx, "content-gen")

	userMsg := fmt.Sprintf(`Generate %d flashcards for: %s

LEARNER STYLE: %s
STYLE HINT: %s

Front: clear question or prompt. Back: concise answer with example.`,
		s.cfg.FlashcardCount, topic, p.Style, flashcardHint(p.Style))

	req := llm.Request{
		System:      contentSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      FlashcardSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("flashcard generation: %w", err)
	}

	var out flashcardOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse flashcard response: %w", err)
	}
	if len(out.Flashcards) == 0 {
		return nil, fmt.Errorf("flashcard generation: empty batch")
	}

	cards := make([]Flashcard, 0, len(out.Flashcards))
	for _, f := range out.Flashcards {
		cards = append(cards, Flashcard{Front: f.Front, Back: f.Back, Topic: topic})
	}
	return cards, nil
}

type summaryOutput struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
}

// summaryLength keys summary size to the learner's pace.
func summaryLength(pace profile.Pace) string {
	switch pace {
	case profile.PaceSlow:
		return "detailed (150-200 words)"
	case profile.PaceFast:
		return "concise (75-100 words)"
	default:
		return "moderate (100-150 words)"
	}
}

// GenerateSummary generates a pace-adjusted summary of the topic.
func (s *Service) GenerateSummary(ctx context.Context, topic string, p *profile.Profile) (*Summary, error) {
	ctx = llm.WithPurpose(ctx, "content-gen")

	userMsg := fmt.Sprintf(`Generate a summary of: %s

LEARNER PACE: %s
LENGTH: %s

Start with a one-line definition, cover the core concept, include one
practical example.`, topic, p.Pace, summaryLength(p.Pace))

	req := llm.Request{
		System:      contentSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      SummarySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("summary generation: %w", err)
	}

	var out summaryOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse summary response: %w", err)
	}

	return &Summary{Topic: topic, Text: out.Summary, KeyPoints: out.KeyPoints}, nil
}
