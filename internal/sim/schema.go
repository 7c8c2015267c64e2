package sim

// packSchema defines the JSON schema for custom scenario packs.
var packSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"scenarios": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"title": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"description": map[string]any{
						"type": "string",
					},
					"est_minutes": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
					"steps": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"question": map[string]any{
									"type":      "string",
									"minLength": 1,
								},
								"choices": map[string]any{
									"type":     "array",
									"minItems": 2,
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"text": map[string]any{
												"type":      "string",
												"minLength": 1,
											},
											"scores": map[string]any{
												"type": "object",
												"properties": map[string]any{
													"frugality":  scoreValueSchema,
													"safety":     scoreValueSchema,
													"time":       scoreValueSchema,
													"initiative": scoreValueSchema,
												},
												"required":             []any{"frugality", "safety", "time", "initiative"},
												"additionalProperties": false,
											},
										},
										"required":             []any{"text", "scores"},
										"additionalProperties": false,
									},
								},
							},
							"required":             []any{"question", "choices"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "title", "steps"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"scenarios"},
	"additionalProperties": false,
}

var scoreValueSchema = map[string]any{
	"type":    "integer",
	"minimum": 0,
	"maximum": 100,
}
