package coach

import "github.com/abhisek/stratiz/internal/llm"

// FeedbackSchema is the JSON schema the provider must answer with.
var FeedbackSchema = &llm.Schema{
	Name:        "coach-feedback",
	Description: "Short structured feedback on a strategy exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{
				"type": "string",
				"enum": []any{string(VerdictStrong), string(VerdictPartial), string(VerdictWeak)},
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 things the learner did well (under 15 words each)",
			},
			"gaps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 things missing or inconsistent (under 15 words each)",
			},
			"next_step": map[string]any{
				"type":        "string",
				"description": "One concrete improvement to try next",
			},
		},
		"required":             []any{"verdict", "strengths", "gaps", "next_step"},
		"additionalProperties": false,
	},
}
