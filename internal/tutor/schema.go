package tutor

import "github.com/abhisek/adept/internal/llm"

// ExplanationSchema defines the JSON schema for adaptive explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "explanation",
	Description: "A profile-conditioned explanation of a CS concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{
				"type":        "string",
				"description": "The full explanation, written in the requested teaching style",
			},
			"key_takeaways": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    3,
				"maxItems":    3,
				"description": "Exactly 3 one-sentence takeaways",
			},
			"follow_up_question": map[string]any{
				"type":        "string",
				"description": "One question to check the learner's understanding",
			},
		},
		"required":             []any{"content", "key_takeaways", "follow_up_question"},
		"additionalProperties": false,
	},
}
