// Package catalog defines the question catalog boundary: the core engine
// consumes questions and skill/domain listings through the Source interface
// without knowing whether they come from the local store or an import file.
package catalog

import (
	"context"

	"github.com/prepwise/satprep/internal/skillgraph"
)

// Question is a single practice question record.
type Question struct {
	ID         string                `json:"id"`
	Subject    skillgraph.Subject    `json:"subject"`
	Skill      string                `json:"skill"`
	Domain     string                `json:"domain"`
	Difficulty skillgraph.Difficulty `json:"difficulty"`
	Prompt     string                `json:"prompt"`
	OptionA    string                `json:"option_a"`
	OptionB    string                `json:"option_b"`
	OptionC    string                `json:"option_c"`
	OptionD    string                `json:"option_d"`
	Answer     string                `json:"answer"` // "A".."D"
	Rationale  string                `json:"rationale"`
}

// Query selects a batch of questions from a source.
// Zero-valued fields match everything.
type Query struct {
	Subject    skillgraph.Subject
	Skill      string
	Domain     string
	Difficulty skillgraph.Difficulty
	Limit      int
}

// SkillDomain is a distinct (skill, domain) pair available for practice.
type SkillDomain struct {
	Skill  string
	Domain string
}

// Source supplies questions and skill/domain listings.
type Source interface {
	// SkillDomains returns the distinct (skill, domain) pairs available
	// for the given subject.
	SkillDomains(ctx context.Context, subject skillgraph.Subject) ([]SkillDomain, error)

	// Questions returns up to Limit questions matching the query.
	Questions(ctx context.Context, q Query) ([]Question, error)
}

// Matches reports whether the question satisfies the query filters.
func (q Query) Matches(question Question) bool {
	if q.Subject != "" && question.Subject != q.Subject {
		return false
	}
	if q.Skill != "" && question.Skill != q.Skill {
		return false
	}
	if q.Domain != "" && question.Domain != q.Domain {
		return false
	}
	if q.Difficulty != "" && question.Difficulty != q.Difficulty {
		return false
	}
	return true
}
