package quizgen

import "github.com/nourlabs/coach/internal/llm"

// BatchSchema is the JSON schema a provider must satisfy when asked to
// generate an MCQ batch. It mirrors the wire form consumed by
// ValidateBatch; schema validation happens at the provider boundary and
// the batch validator re-checks semantics afterwards.
var BatchSchema = &llm.Schema{
	Name:        "mcq-batch",
	Description: "A batch of French multiple-choice questions with one correct answer each",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status": map[string]any{
				"type": "string",
				"enum": []any{"ok"},
			},
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Stable identifier for the question",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question stem, in French, without revealing the answer",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly 4 distinct options",
						},
						"answer_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Index of the correct option",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"bloom": map[string]any{
							"type": "string",
							"enum": []any{"rappel", "compréhension", "application", "analyse"},
						},
						"rationale": map[string]any{
							"type":        "string",
							"description": "Short justification quoting the source",
						},
						"citations": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []any{"id", "question", "options", "answer_index", "difficulty", "bloom", "rationale", "citations"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"status", "items"},
		"additionalProperties": false,
	},
}
