package content

import "github.com/abhisek/adept/internal/llm"

// MCQSchema defines the JSON schema for a batch of multiple-choice questions.
var MCQSchema = &llm.Schema{
	Name:        "mcq-batch",
	Description: "A batch of multiple-choice questions with explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text, testing understanding not recall",
						},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 4,
							"maxItems": 4,
						},
						"correct_answer": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Brief explanation of the correct answer",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
					},
					"required":             []any{"question", "options", "correct_answer", "explanation", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// FlashcardSchema defines the JSON schema for a batch of flashcards.
var FlashcardSchema = &llm.Schema{
	Name:        "flashcard-batch",
	Description: "A batch of front/back revision flashcards",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"flashcards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front": map[string]any{
							"type":        "string",
							"description": "Question or concept prompt",
						},
						"back": map[string]any{
							"type":        "string",
							"description": "Concise answer with a brief example",
						},
					},
					"required":             []any{"front", "back"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"flashcards"},
		"additionalProperties": false,
	},
}

// SummarySchema defines the JSON schema for a topic summary.
var SummarySchema = &llm.Schema{
	Name:        "topic-summary",
	Description: "A pace-adjusted summary of a CS topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "The summary, starting with a one-line definition",
			},
			"key_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    3,
				"maxItems":    5,
				"description": "3-5 key points",
			},
		},
		"required":             []any{"summary", "key_points"},
		"additionalProperties": false,
	},
}
