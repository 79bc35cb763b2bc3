package sheets

import "github.com/nourlabs/coach/internal/llm"

// BatchSchema constrains a provider asked to generate revision sheets.
// It mirrors the wire Batch; ValidateBatch re-checks the semantic rules
// the schema cannot express.
var BatchSchema = &llm.Schema{
	Name:        "sheets-3views",
	Description: "Revision sheets in three sizes: bullets, paragraphs and a developed text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status": map[string]any{
				"type": "string",
				"enum": []any{"ok"},
			},
			"sheets": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Theme title",
						},
						"short_version": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"type": map[string]any{
									"type": "string",
									"enum": []any{"bullet_points"},
								},
								"content": map[string]any{
									"type":     "array",
									"items":    map[string]any{"type": "string"},
									"minItems": 1,
									"maxItems": 5,
								},
							},
							"required":             []any{"type", "content"},
							"additionalProperties": false,
						},
						"medium_version": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"type": map[string]any{
									"type": "string",
									"enum": []any{"paragraphs"},
								},
								"content": map[string]any{
									"type":     "array",
									"items":    map[string]any{"type": "string"},
									"minItems": 1,
									"maxItems": 2,
								},
							},
							"required":             []any{"type", "content"},
							"additionalProperties": false,
						},
						"long_version": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"type": map[string]any{
									"type": "string",
									"enum": []any{"developed"},
								},
								"content": map[string]any{
									"type":        "string",
									"description": "Developed text, at least 100 characters",
								},
							},
							"required":             []any{"type", "content"},
							"additionalProperties": false,
						},
						"citations": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []any{"title", "short_version", "medium_version", "long_version", "citations"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"status", "sheets"},
		"additionalProperties": false,
	},
}
