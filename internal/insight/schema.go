package insight

import "github.com/prepwise/satprep/internal/llm"

// ReportSchema defines the JSON schema for LLM weakness report responses.
var ReportSchema = &llm.Schema{
	Name:        "weakness-report",
	Description: "Structured analysis of a learner's weakest SAT skills",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two to three sentences on where the learner stands and what to do next",
			},
			"skills": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"skill_id": map[string]any{
							"type":        "string",
							"description": "The skill ID from the provided list",
						},
						"diagnosis": map[string]any{
							"type":        "string",
							"description": "One sentence on what is going wrong with this skill",
						},
						"priority": map[string]any{
							"type": "string",
							"enum": []any{"critical", "high", "medium", "low"},
						},
					},
					"required":             []any{"skill_id", "diagnosis", "priority"},
					"additionalProperties": false,
				},
			},
			"focus_order": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Skill IDs in recommended study order, most urgent first",
			},
			"estimated_score_impact": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     400,
				"description": "Projected SAT point gain from closing these weaknesses",
			},
		},
		"required":             []any{"summary", "skills", "focus_order", "estimated_score_impact"},
		"additionalProperties": false,
	},
}
