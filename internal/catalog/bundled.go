package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed bundled_questions.json
var bundledJSON []byte

// Bundled returns the starter question bank shipped with the binary. It
// covers the root skills of both subjects so a fresh install can practice
// before importing a full bank.
func Bundled() ([]Question, error) {
	return ParseQuestions(bundledJSON)
}

// ParseQuestions decodes a question bank from its JSON import format.
func ParseQuestions(data []byte) ([]Question, error) {
	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	for i, q := range questions {
		if q.ID == "" || q.Skill == "" || q.Prompt == "" {
			return nil, fmt.Errorf("question %d: id, skill, and prompt are required", i)
		}
		switch q.Answer {
		case "A", "B", "C", "D":
		default:
			return nil, fmt.Errorf("question %q: answer must be A-D, got %q", q.ID, q.Answer)
		}
	}
	return questions, nil
}
