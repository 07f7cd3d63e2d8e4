package adapt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/adept/internal/llm"
	"github.com/abhisek/adept/internal/profile"
)

const classifySystemPrompt = `You evaluate a learner's free-text explanation of a concept.

Classify the response:
- not_attempted: empty, "I don't know", or a refusal
- off_topic: talks about something unrelated
- incorrect: attempts the concept but gets it wrong
- partial: some correct ideas with gaps
- correct: captures the concept

When classification is incorrect or partial, describe the specific misunderstanding in one sentence. Always include short, encouraging feedback.`

const fallbackFeedback = "No worries - let's work through this together, one step at a time."

type classificationOutput struct {
	Classification string `json:"classification"`
	Misconception  string `json:"misconception"`
	Feedback       string `json:"feedback"`
}

// CheckMisconceptions evaluates a learner's free-text explanation in
// two stages: classify the text, then apply the struggle rules when it
// comes back incorrect. Malformed classifier output degrades to
// not_attempted with generic encouragement; this path never fails the
// turn. The profile is mutated only after a usable classification is
// in hand.
func (e *Engine) CheckMisconceptions(ctx context.Context, topic, concept, learnerText string, p *profile.Profile) Assessment {
	cls, misconception, feedback := e.classify(ctx, concept, learnerText)

	// Unattempted and off-topic answers count as incorrect for the
	// profile: both mean the concept did not land.
	effective := cls
	if cls == ClassNotAttempted || cls == ClassOffTopic {
		effective = ClassIncorrect
	}

	a := Assessment{
		Classification: cls,
		Feedback:       feedback,
		Misconception:  misconception,
	}

	if effective == ClassIncorrect {
		p.Confidence = profile.StepConfidenceDown(p.Confidence)
		p.Depth = profile.DepthIntuitionFirst
		desc := misconception
		if desc == "" {
			desc = fmt.Sprintf("struggled to explain %s", concept)
		}
		p.AddMisconception(topic, desc, "medium", e.now())
		a.ProfileChanged = true
	}

	return a
}

// classify runs the LLM classification stage, degrading to
// not_attempted on any failure.
func (e *Engine) classify(ctx context.Context, concept, learnerText string) (Classification, string, string) {
	if e.provider == nil {
		return ClassNotAttempted, "", fallbackFeedback
	}

	ctx = llm.WithPurpose(ctx, "answer-classification")

	userMsg := fmt.Sprintf("Concept: %s\n\nLearner's explanation:\n%s", concept, learnerText)

	req := llm.Request{
		System: classifySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ClassificationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return ClassNotAttempted, "", fallbackFeedback
	}

	var out classificationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return ClassNotAttempted, "", fallbackFeedback
	}
	if !validClassification(out.Classification) {
		return ClassNotAttempted, "", fallbackFeedback
	}

	feedback := out.Feedback
	if feedback == "" {
		feedback = fallbackFeedback
	}
	return Classification(out.Classification), out.Misconception, feedback
}
