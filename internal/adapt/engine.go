package adapt

import (
	"fmt"
	"time"

	"github.com/abhisek/adept/internal/diagnostic"
	"github.com/abhisek/adept/internal/llm"
	"github.com/abhisek/adept/internal/profile"
)

// Thresholds for the rule-based policy.
const (
	minAnswersForRules = 3
	lowAccuracy        = 0.5
	highAccuracy       = 0.8
)

// Config holds LLM call settings for the advisory paths.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}

// Engine decides whether and how to mutate a learner profile outside
// the diagnostic flow. The rule-based path is the reliability-critical
// one and works without a provider; the LLM paths are advisory.
type Engine struct {
	provider llm.Provider
	cfg      Config
	now      func() time.Time
}

// NewEngine creates an adaptation engine. provider may be nil, in
// which case only the rule-based path is available.
func NewEngine(provider llm.Provider, cfg Config) *Engine {
	return &Engine{
		provider: provider,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Apply runs the deterministic adaptation rules against the profile
// for one performance event. The profile is mutated in place; the
// returned Outcome lists every change. Reproducible without any LLM
// call.
func (e *Engine) Apply(p *profile.Profile, ev Event) Outcome {
	var out Outcome
	prevStyle := p.Style

	if !ev.Correct && ev.Difficulty == diagnostic.DifficultyHard {
		from := p.Confidence
		p.Confidence = profile.StepConfidenceDown(p.Confidence)
		if p.Confidence != from {
			out.Changes = append(out.Changes, Change{
				Field:  "confidence",
				From:   string(from),
				To:     string(p.Confidence),
				Reason: "missed a hard question",
			})
		}
	}

	if p.TotalAnswers >= minAnswersForRules {
		acc := p.AccuracyRate()
		switch {
		case acc < lowAccuracy:
			if p.Depth != profile.DepthIntuitionFirst {
				out.Changes = append(out.Changes, Change{
					Field:  "depth",
					From:   string(p.Depth),
					To:     string(profile.DepthIntuitionFirst),
					Reason: "accuracy below 50%, leading with intuition",
				})
				p.Depth = profile.DepthIntuitionFirst
			}
		case acc >= highAccuracy:
			if p.Pace == profile.PaceSlow {
				out.Changes = append(out.Changes, Change{
					Field:  "pace",
					From:   string(profile.PaceSlow),
					To:     string(profile.PaceMedium),
					Reason: "accuracy at 80%+, picking up the pace",
				})
				p.Pace = profile.PaceMedium
			}
			if p.Confidence == profile.ConfidenceLow {
				out.Changes = append(out.Changes, Change{
					Field:  "confidence",
					From:   string(profile.ConfidenceLow),
					To:     string(profile.ConfidenceMedium),
					Reason: "strong recent accuracy",
				})
				p.Confidence = profile.ConfidenceMedium
			}
		}
	}

	out.StyleChanged = p.Style != prevStyle
	return out
}

// AdaptationMessage renders the learner-facing note shown when the
// teaching style changes.
func AdaptationMessage(from, to profile.Style) string {
	desc := map[profile.Style]string{
		profile.StyleConceptual:  "stories and real-world analogies",
		profile.StyleVisual:      "visual diagrams and step-by-step breakdowns",
		profile.StyleExamFocused: "definitions, key terms, and exam patterns",
	}
	return fmt.Sprintf("I noticed %s might not be clicking for you. Let me try %s instead!", desc[from], desc[to])
}
