package catalog

import (
	"context"
	"sort"

	"github.com/prepwise/satprep/internal/skillgraph"
)

// MemSource is an in-memory Source. Used by tests and as a staging area
// when importing a question bank file.
type MemSource struct {
	questions []Question
}

// NewMemSource creates a MemSource over the given questions.
func NewMemSource(questions []Question) *MemSource {
	return &MemSource{questions: questions}
}

func (m *MemSource) SkillDomains(_ context.Context, subject skillgraph.Subject) ([]SkillDomain, error) {
	seen := make(map[SkillDomain]bool)
	var result []SkillDomain
	for _, q := range m.questions {
		if q.Subject != subject {
			continue
		}
		sd := SkillDomain{Skill: q.Skill, Domain: q.Domain}
		if !seen[sd] {
			seen[sd] = true
			result = append(result, sd)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Skill != result[j].Skill {
			return result[i].Skill < result[j].Skill
		}
		return result[i].Domain < result[j].Domain
	})
	return result, nil
}

func (m *MemSource) Questions(_ context.Context, q Query) ([]Question, error) {
	var result []Question
	for _, question := range m.questions {
		if q.Matches(question) {
			result = append(result, question)
		}
		if q.Limit > 0 && len(result) == q.Limit {
			break
		}
	}
	return result, nil
}
