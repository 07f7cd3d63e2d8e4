package adapt

import "github.com/abhisek/adept/internal/llm"

// SuggestionSchema defines the JSON shape for LLM profile suggestions.
var SuggestionSchema = &llm.Schema{
	Name:        "profile-suggestion",
	Description: "Suggested learner profile adjustments based on performance signals",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"learning_style": map[string]any{
				"type": "string",
				"enum": []any{"conceptual", "visual", "exam-focused"},
			},
			"pace": map[string]any{
				"type": "string",
				"enum": []any{"slow", "medium", "fast"},
			},
			"confidence": map[string]any{
				"type": "string",
				"enum": []any{"low", "medium", "high"},
			},
			"depth_preference": map[string]any{
				"type": "string",
				"enum": []any{"intuition-first", "formula-first"},
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Brief explanation of why these settings fit the learner",
			},
		},
		"required":             []any{"learning_style", "pace", "confidence", "depth_preference", "reasoning"},
		"additionalProperties": false,
	},
}

// ClassificationSchema defines the JSON shape for free-text answer
// classification.
var ClassificationSchema = &llm.Schema{
	Name:        "answer-classification",
	Description: "Classification of a learner's free-text explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"classification": map[string]any{
				"type": "string",
				"enum": []any{"not_attempted", "off_topic", "incorrect", "partial", "correct"},
			},
			"misconception": map[string]any{
				"type":        "string",
				"description": "One-sentence description of the misunderstanding, empty when none detected",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Short encouraging feedback for the learner",
			},
		},
		"required":             []any{"classification", "misconception", "feedback"},
		"additionalProperties": false,
	},
}
