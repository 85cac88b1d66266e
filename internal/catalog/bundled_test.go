package catalog

import (
	"testing"

	"github.com/prepwise/satprep/internal/skillgraph"
)

func TestBundledBankValid(t *testing.T) {
	questions, err := Bundled()
	if err != nil {
		t.Fatalf("bundled bank: %v", err)
	}
	if len(questions) == 0 {
		t.Fatal("bundled bank is empty")
	}

	g := skillgraph.Default()
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			t.Errorf("duplicate question ID %q", q.ID)
		}
		seen[q.ID] = true

		skill, err := g.Skill(q.Skill)
		if err != nil {
			t.Errorf("question %q references unknown skill %q", q.ID, q.Skill)
			continue
		}
		if skill.Subject != q.Subject {
			t.Errorf("question %q: subject %q does not match skill subject %q", q.ID, q.Subject, skill.Subject)
		}
		if skill.Domain != q.Domain {
			t.Errorf("question %q: domain %q does not match skill domain %q", q.ID, q.Domain, skill.Domain)
		}
		switch q.Difficulty {
		case skillgraph.DifficultyEasy, skillgraph.DifficultyMedium, skillgraph.DifficultyHard:
		default:
			t.Errorf("question %q: bad difficulty %q", q.ID, q.Difficulty)
		}
	}
}

func TestBundledCoversRootSkills(t *testing.T) {
	questions, err := Bundled()
	if err != nil {
		t.Fatalf("bundled bank: %v", err)
	}

	covered := make(map[string]bool)
	for _, q := range questions {
		covered[q.Skill] = true
	}

	// A fresh learner can only practice root skills, so the starter bank
	// must cover every root of both subjects.
	for _, root := range skillgraph.Default().Roots() {
		if !covered[root.ID] {
			t.Errorf("no bundled questions for root skill %q", root.ID)
		}
	}
}

func TestParseQuestionsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `{`},
		{"missing id", `[{"skill":"linear-equations","prompt":"p","answer":"A"}]`},
		{"missing skill", `[{"id":"q1","prompt":"p","answer":"A"}]`},
		{"bad answer", `[{"id":"q1","skill":"linear-equations","prompt":"p","answer":"E"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseQuestions([]byte(tt.json)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
