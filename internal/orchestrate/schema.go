package orchestrate

import "github.com/abhisek/adept/internal/llm"

// RoutingSchema defines the JSON schema for routing decisions.
var RoutingSchema = &llm.Schema{
	Name:        "routing-decision",
	Description: "Which capability should handle the learner's next request",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"next_capability": map[string]any{
				"type": "string",
				"enum": []any{"diagnostic", "tutor", "content", "access"},
			},
			"action": map[string]any{
				"type":        "string",
				"description": "Specific action for the capability",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Why this routing decision",
			},
		},
		"required":             []any{"next_capability", "action", "reasoning"},
		"additionalProperties": false,
	},
}

// SummarySchema defines the JSON schema for session summaries.
var SummarySchema = &llm.Schema{
	Name:        "session-summary",
	Description: "A brief, encouraging end-of-session summary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Under 100 words, warm and motivational",
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}
