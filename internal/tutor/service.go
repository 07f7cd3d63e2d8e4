package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/adept/internal/llm"
	"github.com/abhisek/adept/internal/profile"
)

const tutorSystemPrompt = `You are an adaptive computer science tutor.

Your teaching philosophy:
- Every learner is unique - adapt explanations to THEIR style
- The learner profile determines HOW to explain, never WHAT
- Make complex concepts accessible through relatable examples
- Be encouraging and patient

The same concept must be explained differently for different profiles.
Always end with a follow-up question to check understanding.`

// Service generates profile-conditioned explanations.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// ExplainInput describes one explanation request.
type ExplainInput struct {
	Topic   string
	Concept string
	Profile *profile.Profile

	// ReExplain marks this as a second attempt after the first
	// explanation did not land. PreviousStyle is the style that failed.
	ReExplain     bool
	PreviousStyle TeachingStyle
}

type explanationOutput struct {
	Content          string   `json:"content"`
	KeyTakeaways     []string `json:"key_takeaways"`
	FollowUpQuestion string   `json:"follow_up_question"`
}

// Explain generates an explanation tailored to the learner's profile.
func (s *Service) Explain(ctx context.Context, input ExplainInput) (*Explanation, error) {
	if input.Profile == nil {
		return nil, fmt.Errorf("explain: nil profile")
	}
	ctx = llm.WithPurpose(ctx, "explanation")

	style := SelectStyle(input.Profile, input.ReExplain, input.PreviousStyle)

	req := llm.Request{
		System: tutorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainMessage(input, style)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	concept := input.Concept
	if concept == "" {
		concept = input.Topic
	}

	return &Explanation{
		Topic:            input.Topic,
		Concept:          concept,
		StyleUsed:        style,
		Content:          out.Content,
		Analogy:          AnalogyFor(concept, input.Profile.Style),
		KeyTakeaways:     out.KeyTakeaways,
		FollowUpQuestion: out.FollowUpQuestion,
		Adapted:          input.ReExplain,
	}, nil
}

// buildExplainMessage assembles the user message for an explanation request.
func buildExplainMessage(input ExplainInput, style TeachingStyle) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Explain this CS topic.\n\nTOPIC: %s\n", input.Topic)
	if input.Concept != "" && input.Concept != input.Topic {
		fmt.Fprintf(&b, "CONCEPT: %s\n", input.Concept)
	}

	b.WriteString("\n")
	b.WriteString(input.Profile.PromptContext())
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "TEACHING STYLE TO USE: %s\n", style)
	b.WriteString(styleInstructions[style])
	b.WriteString("\n")

	if input.ReExplain {
		b.WriteString("\nIMPORTANT: this is a RE-EXPLANATION. The previous approach did not work.\n")
		b.WriteString("Use a completely different approach this time. Be extra patient and break things down more simply.\n")
	}

	switch input.Profile.Pace {
	case profile.PaceSlow:
		b.WriteString("\nPace: slow - take your time, be detailed.\n")
	case profile.PaceFast:
		b.WriteString("\nPace: fast - be concise.\n")
	}
	if input.Profile.Confidence == profile.ConfidenceLow {
		b.WriteString("Confidence: low - be extra encouraging and supportive.\n")
	}

	return b.String()
}
