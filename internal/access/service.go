package access

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/adept/internal/llm"
)

// Mode selects an accessibility transformation.
type Mode string

const (
	ModeDyslexia     Mode = "dyslexia"
	ModeScreenReader Mode = "screen_reader"
	ModeSimplified   Mode = "simplified"
)

// ValidMode reports whether s names a known transformation mode.
func ValidMode(s string) bool {
	switch Mode(s) {
	case ModeDyslexia, ModeScreenReader, ModeSimplified:
		return true
	}
	return false
}

// Result is one transformed rendition of the input content.
type Result struct {
	Mode    Mode
	Content string

	// Fallback is true when the transformation failed and Content is the
	// original text, lightly simplified by rules instead of the LLM.
	Fallback bool
}

// Config controls generation parameters for transformations.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns transformation defaults. Low temperature: the
// task is rewriting, not composing.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1500,
		Temperature: 0.4,
	}
}

const accessSystemPrompt = `You transform educational text for accessibility.

Hard rules for every transformation:
- PLAIN TEXT ONLY: no markdown, no asterisks, no underscores
- Use CAPITAL LETTERS when emphasis is needed
- Keep every piece of educational content intact`

// modeRules are the per-mode transformation instructions.
var modeRules = map[Mode]string{
	ModeDyslexia: `Transform this text to be DYSLEXIA-FRIENDLY:
- Simple, common words only
- Maximum 12-15 words per sentence, one idea per sentence
- Short paragraphs (2-3 sentences max), extra line breaks between them
- Direct, active voice
- Write out abbreviations`,

	ModeScreenReader: `Transform this text for SCREEN READER users:
- Add section markers: SECTION - Name ... END OF SECTION
- Numbered lists instead of bullets
- Spell out symbols (say "equals" instead of "=")
- Verbal descriptions for any visual concepts
- Start with a brief summary, define acronyms on first use
- Explicit transitions ("Next...", "Finally...")`,

	ModeSimplified: `Create a SIMPLIFIED version of this text:
- Only the most common English words where possible
- Define any technical term immediately
- Very short sentences (8-10 words ideal)
- One concept per paragraph, main point first
- Concrete everyday examples; no passive voice, idioms, or metaphors`,
}

// TransformSchema defines the JSON schema for transformed content.
var TransformSchema = &llm.Schema{
	Name:        "accessible-content",
	Description: "An accessibility-transformed rendition of educational text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{
				"type":        "string",
				"description": "The transformed plain text",
			},
		},
		"required":             []any{"content"},
		"additionalProperties": false,
	},
}

// Service transforms explanations and content for accessibility needs.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an accessibility service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type transformOutput struct {
	Content string `json:"content"`
}

// Transform rewrites content for the given mode. It fails soft: when the
// provider is missing or errors, the learner still gets readable text via
// rule-based simplification, flagged as a fallback.
func (s *Service) Transform(ctx context.Context, content string, mode Mode) Result {
	if !ValidMode(string(mode)) || content == "" {
		return Result{Mode: mode, Content: QuickSimplify(content), Fallback: true}
	}
	if s.provider == nil {
		return Result{Mode: mode, Content: QuickSimplify(content), Fallback: true}
	}

	ctx = llm.WithPurpose(ctx, "accessibility")

	userMsg := fmt.Sprintf("%s\n\nORIGINAL TEXT:\n%s", modeRules[mode], content)
	req := llm.Request{
		System:      accessSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      TransformSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Result{Mode: mode, Content: QuickSimplify(content), Fallback: true}
	}

	var out transformOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil || out.Content == "" {
		return Result{Mode: mode, Content: QuickSimplify(content), Fallback: true}
	}

	return Result{Mode: mode, Content: out.Content}
}

// TransformAll produces every mode's rendition of the content.
func (s *Service) TransformAll(ctx context.Context, content string) map[Mode]Result {
	out := make(map[Mode]Result, 3)
	for _, mode := range []Mode{ModeDyslexia, ModeScreenReader, ModeSimplified} {
		out[mode] = s.Transform(ctx, content, mode)
	}
	return out
}
