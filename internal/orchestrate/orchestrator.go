package orchestrate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/adept/internal/adapt"
	"github.com/abhisek/adept/internal/llm"
	"github.com/abhisek/adept/internal/profile"
	"github.com/abhisek/adept/internal/session"
)

const routingSystemPrompt = `You are the orchestrator of an adaptive learning system.

You coordinate four capabilities:
1. diagnostic - runs cognitive diagnostics, builds and updates learner profiles
2. tutor - provides adaptive explanations
3. content - generates practice content (MCQs, flashcards, summaries)
4. access - makes content accessible (dyslexia-friendly, screen-reader)

Decision criteria:
- New user or topic: start with a diagnostic
- Learner wants an explanation: tutor
- Learner wants practice: content
- Accessibility needed: access
- Learner struggling: update the profile via diagnostic, then re-explain`

// slowAnswerThreshold is the response time that signals a struggling
// learner regardless of correctness.
const slowAnswerThreshold = 60.0 // seconds

// lowAccuracyThreshold with minAnswersForTrigger gates the accuracy clause.
const (
	lowAccuracyThreshold = 0.4
	minAnswersForTrigger = 3
)

// Config controls LLM routing parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns routing defaults. Routing is a small structured
// decision, so the budget is tight and the temperature is zero.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0,
	}
}

// Orchestrator routes learner requests to capabilities. Routing works
// with or without an LLM: the rule-based decision tree always stands
// behind the model.
type Orchestrator struct {
	provider llm.Provider // nil disables LLM routing
	cfg      Config
	handlers map[Capability]Handler
}

// New creates an Orchestrator. provider may be nil, in which case every
// routing decision comes from the fallback tree.
func New(provider llm.Provider, cfg Config) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		cfg:      cfg,
		handlers: make(map[Capability]Handler),
	}
}

// Register attaches a handler for a capability. Registering twice
// replaces the previous handler.
func (o *Orchestrator) Register(cap Capability, h Handler) {
	o.handlers[cap] = h
}

// explicitRoutes maps user-requested actions to capability decisions.
var explicitRoutes = map[string]Decision{
	"diagnose":      {Capability: CapDiagnostic, Action: "start_diagnostic"},
	"explain":       {Capability: CapTutor, Action: "explain"},
	"practice":      {Capability: CapContent, Action: "generate_practice"},
	"accessibility": {Capability: CapAccess, Action: "transform"},
	"adapt":         {Capability: CapDiagnostic, Action: "update_profile"},
}

// Decide picks the next capability. An explicit action short-circuits
// routing; "auto" (or empty) consults the LLM and falls back to the
// phase-based decision tree on any failure.
func (o *Orchestrator) Decide(ctx context.Context, st *session.State, userInput, action string) Decision {
	if action != "" && action != "auto" {
		d, ok := explicitRoutes[action]
		if !ok {
			d = Decision{Capability: CapTutor, Action: "explain"}
		}
		d.Reasoning = fmt.Sprintf("explicit %s action requested", action)
		d.Message = transitionMessage(d)
		return d
	}

	if o.provider != nil {
		if d, err := o.routeWithLLM(ctx, st, userInput); err == nil {
			return d
		}
	}
	return o.fallbackDecision(st)
}

type routingOutput struct {
	NextCapability string `json:"next_capability"`
	Action         string `json:"action"`
	Reasoning      string `json:"reasoning"`
}

func (o *Orchestrator) routeWithLLM(ctx context.Context, st *session.State, userInput string) (Decision, error) {
	ctx = llm.WithPurpose(ctx, "routing")

	topic := st.Topic
	if topic == "" {
		topic = "not selected"
	}
	userMsg := fmt.Sprintf(`Analyze this learning session and decide the next action.

SESSION STATE:
- Phase: %s
- Topic: %s
- Interactions: %d
- Adaptations made: %d

%s

USER INPUT: %q

Which capability should handle this request?`,
		st.Phase, topic, st.TotalInteractions, st.AdaptationCount,
		st.Profile.PromptContext(), userInput)

	req := llm.Request{
		System:      routingSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      RoutingSchema,
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
	}

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return Decision{}, fmt.Errorf("routing: %w", err)
	}

	var out routingOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Decision{}, fmt.Errorf("parse routing response: %w", err)
	}
	if !ValidCapability(out.NextCapability) {
		return Decision{}, fmt.Errorf("routing: unknown capability %q", out.NextCapability)
	}

	d := Decision{
		Capability: Capability(out.NextCapability),
		Action:     out.Action,
		Reasoning:  out.Reasoning,
	}
	d.Message = transitionMessage(d)
	return d, nil
}

// fallbackDecision is the rule-based decision tree keyed on session
// phase. It always yields a usable decision.
func (o *Orchestrator) fallbackDecision(st *session.State) Decision {
	var d Decision
	switch st.Phase {
	case session.PhaseWelcome:
		d = Decision{
			Capability: CapDiagnostic,
			Action:     "start_diagnostic",
			Reasoning:  "new session - starting with cognitive diagnostic",
		}
	case session.PhaseDiagnostic:
		d = Decision{
			Capability: CapDiagnostic,
			Action:     "continue_diagnostic",
			Reasoning:  "continuing diagnostic to build learner profile",
		}
	case session.PhaseLearning:
		if st.Profile.AccuracyRate() < 0.5 {
			d = Decision{
				Capability: CapDiagnostic,
				Action:     "update_profile",
				Reasoning:  "low accuracy detected - updating learner profile",
			}
		} else {
			d = Decision{
				Capability: CapTutor,
				Action:     "explain",
				Reasoning:  "providing explanation based on learner profile",
			}
		}
	case session.PhasePractice:
		d = Decision{
			Capability: CapContent,
			Action:     "generate_practice",
			Reasoning:  "generating practice content",
		}
	default:
		d = Decision{
			Capability: CapTutor,
			Action:     "explain",
			Reasoning:  "default routing to tutor",
		}
	}
	d.Message = transitionMessage(d)
	return d
}

// Dispatch routes the request and runs the chosen capability's handler.
func (o *Orchestrator) Dispatch(ctx context.Context, st *session.State, userInput, action string) (Decision, *Result, error) {
	d := o.Decide(ctx, st, userInput, action)
	h, ok := o.handlers[d.Capability]
	if !ok {
		return d, nil, fmt.Errorf("no handler registered for capability %q", d.Capability)
	}
	res, err := h.Execute(ctx, d, st, userInput)
	if err != nil {
		return d, nil, fmt.Errorf("%s handler: %w", d.Capability, err)
	}
	return d, res, nil
}

// DetermineAdaptationTrigger decides whether the latest answer should
// trigger a teaching adaptation, and which signal fired. Clauses are
// checked in order; the first match wins.
func DetermineAdaptationTrigger(st *session.State, answerCorrect bool, timeTakenSecs float64) (adapt.Trigger, bool) {
	// Wrong answer on a concept that has already been explained.
	if !answerCorrect && len(st.ExplanationsGiven) > 0 {
		return adapt.TriggerWrongExplained, true
	}

	// Very slow response, struggling regardless of correctness.
	if timeTakenSecs > slowAnswerThreshold {
		return adapt.TriggerSlowResponse, true
	}

	// Learner already at low confidence.
	if st.Profile.Confidence == profile.ConfidenceLow {
		return adapt.TriggerLowConfidence, true
	}

	// Sustained low accuracy once there is enough signal.
	if st.Profile.TotalAnswers >= minAnswersForTrigger &&
		st.Profile.AccuracyRate() < lowAccuracyThreshold {
		return adapt.TriggerLowAccuracy, true
	}

	return "", false
}

// transitionMessage returns the user-facing line shown while routing.
func transitionMessage(d Decision) string {
	switch d.Capability {
	case CapDiagnostic:
		switch d.Action {
		case "start_diagnostic":
			return "Let me understand how you learn best. Starting a quick diagnostic..."
		case "continue_diagnostic":
			return "Continuing to understand your learning style..."
		case "update_profile":
			return "I noticed you might prefer a different approach. Let me adjust..."
		}
	case CapTutor:
		if d.Action == "re_explain" {
			return "Let me try explaining this differently..."
		}
		return "Let me explain this concept in a way that works for you..."
	case CapContent:
		return "Creating practice questions tailored to your level..."
	case CapAccess:
		return "Making this content more accessible for you..."
	}
	return fmt.Sprintf("Routing to %s...", d.Capability)
}

type summaryOutput struct {
	Summary string `json:"summary"`
}

// SessionSummary generates an encouraging end-of-session summary. When
// the LLM is unavailable a plain factual line is returned instead.
func (o *Orchestrator) SessionSummary(ctx context.Context, st *session.State) string {
	fallback := fmt.Sprintf(
		"Session on %s: %d interactions, %d teaching adaptations, %.0f%% accuracy. Well done!",
		st.Topic, st.TotalInteractions, st.AdaptationCount, st.Profile.AccuracyRate()*100)

	if o.provider == nil {
		return fallback
	}

	ctx = llm.WithPurpose(ctx, "session-summary")
	userMsg := fmt.Sprintf(`Generate a brief, encouraging summary of this learning session.

SESSION DATA:
- Topic: %s
- Total interactions: %d
- Teaching adaptations: %d
- Learner accuracy: %.0f%%
- Learning style: %s

Keep it under 100 words, warm and motivational.`,
		st.Topic, st.TotalInteractions, st.AdaptationCount,
		st.Profile.AccuracyRate()*100, st.Profile.Style)

	req := llm.Request{
		System:      routingSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      SummarySchema,
		MaxTokens:   512,
		Temperature: 0.8,
	}

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return fallback
	}
	var out summaryOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil || out.Summary == "" {
		return fallback
	}
	return out.Summary
}
