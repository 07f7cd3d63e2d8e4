package adapt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/adept/internal/llm"
	"github.com/abhisek/adept/internal/profile"
)

type suggestionOutput struct {
	LearningStyle   string `json:"learning_style"`
	Pace            string `json:"pace"`
	Confidence      string `json:"confidence"`
	DepthPreference string `json:"depth_preference"`
	Reasoning       string `json:"reasoning"`
}

const suggestionSystemPrompt = `You are the cognitive-profiling component of an adaptive tutor. Given a learner profile and a performance trigger, suggest how the teaching approach should change.

Instructions:
- Only suggest values from the allowed enumerations.
- Change the learning style only when the current one is clearly not working.
- Keep reasoning to one or two sentences.`

// Suggest asks the text generator for a wholesale profile adjustment.
// On success the returned profile is a clone of p with style, pace,
// confidence and depth replaced by the suggestion; counters, votes,
// topics and misconceptions carry over untouched. On any failure
// (provider error, malformed JSON, invalid enum value) it fails
// closed: the original profile is returned unmodified along with the
// error.
func (e *Engine) Suggest(ctx context.Context, p *profile.Profile, trigger Trigger, detail string) (*profile.Profile, Outcome, error) {
	if e.provider == nil {
		return p, Outcome{}, fmt.Errorf("no text generator configured")
	}

	ctx = llm.WithPurpose(ctx, "profile-suggestion")

	userMsg := fmt.Sprintf(`%s
TRIGGER FOR UPDATE: %s
DETAIL: %s

Suggest the profile settings that will serve this learner best now.`, p.PromptContext(), trigger, detail)

	req := llm.Request{
		System: suggestionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      SuggestionSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return p, Outcome{}, fmt.Errorf("profile suggestion: %w", err)
	}

	var out suggestionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return p, Outcome{}, fmt.Errorf("parse profile suggestion: %w", err)
	}

	// Validate every enum before touching anything: a partially valid
	// suggestion must not produce a partially applied profile.
	if !profile.ValidStyle(out.LearningStyle) {
		return p, Outcome{}, fmt.Errorf("suggestion has invalid learning style %q", out.LearningStyle)
	}
	if !profile.ValidPace(out.Pace) {
		return p, Outcome{}, fmt.Errorf("suggestion has invalid pace %q", out.Pace)
	}
	if !profile.ValidConfidence(out.Confidence) {
		return p, Outcome{}, fmt.Errorf("suggestion has invalid confidence %q", out.Confidence)
	}
	if !profile.ValidDepth(out.DepthPreference) {
		return p, Outcome{}, fmt.Errorf("suggestion has invalid depth preference %q", out.DepthPreference)
	}

	updated := p.Clone()
	updated.Style = profile.Style(out.LearningStyle)
	updated.Pace = profile.Pace(out.Pace)
	updated.Confidence = profile.Confidence(out.Confidence)
	updated.Depth = profile.Depth(out.DepthPreference)

	outcome := Outcome{
		StyleChanged: updated.Style != p.Style,
		Reasoning:    out.Reasoning,
	}
	return updated, outcome, nil
}
