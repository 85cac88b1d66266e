package store

import (
	"context"
	"fmt"

	"github.com/prepwise/satprep/ent"
	"github.com/prepwise/satprep/ent/question"
	"github.com/prepwise/satprep/internal/catalog"
	"github.com/prepwise/satprep/internal/skillgraph"
)

// QuestionRepo serves the question bank. It implements catalog.Source.
type QuestionRepo struct {
	client *ent.Client
}

func (r *QuestionRepo) SkillDomains(ctx context.Context, subject skillgraph.Subject) ([]catalog.SkillDomain, error) {
	var rows []struct {
		Skill  string `json:"skill"`
		Domain string `json:"domain"`
	}
	err := r.client.Question.Query().
		Where(question.Subject(string(subject))).
		GroupBy(question.FieldSkill, question.FieldDomain).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query skill domains: %w", err)
	}

	result := make([]catalog.SkillDomain, len(rows))
	for i, row := range rows {
		result[i] = catalog.SkillDomain{Skill: row.Skill, Domain: row.Domain}
	}
	return result, nil
}

func (r *QuestionRepo) Questions(ctx context.Context, q catalog.Query) ([]catalog.Question, error) {
	query := r.client.Question.Query()
	if q.Subject != "" {
		query = query.Where(question.Subject(string(q.Subject)))
	}
	if q.Skill != "" {
		query = query.Where(question.Skill(q.Skill))
	}
	if q.Domain != "" {
		query = query.Where(question.Domain(q.Domain))
	}
	if q.Difficulty != "" {
		query = query.Where(question.Difficulty(string(q.Difficulty)))
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	result := make([]catalog.Question, len(rows))
	for i, row := range rows {
		result[i] = catalog.Question{
			ID:         row.Qid,
			Subject:    skillgraph.Subject(row.Subject),
			Skill:      row.Skill,
			Domain:     row.Domain,
			Difficulty: skillgraph.Difficulty(row.Difficulty),
			Prompt:     row.Prompt,
			OptionA:    row.OptionA,
			OptionB:    row.OptionB,
			OptionC:    row.OptionC,
			OptionD:    row.OptionD,
			Answer:     row.Answer,
			Rationale:  row.Rationale,
		}
	}
	return result, nil
}

// Import bulk-inserts questions, skipping rows whose external ID already
// exists in the bank. Returns the number of rows inserted.
func (r *QuestionRepo) Import(ctx context.Context, questions []catalog.Question) (int, error) {
	inserted := 0
	for _, q := range questions {
		exists, err := r.client.Question.Query().
			Where(question.Qid(q.ID)).
			Exist(ctx)
		if err != nil {
			return inserted, fmt.Errorf("check question %q: %w", q.ID, err)
		}
		if exists {
			continue
		}

		_, err = r.client.Question.Create().
			SetQid(q.ID).
			SetSubject(string(q.Subject)).
			SetSkill(q.Skill).
			SetDomain(q.Domain).
			SetDifficulty(string(q.Difficulty)).
			SetPrompt(q.Prompt).
			SetOptionA(q.OptionA).
			SetOptionB(q.OptionB).
			SetOptionC(q.OptionC).
			SetOptionD(q.OptionD).
			SetAnswer(q.Answer).
			SetRationale(q.Rationale).
			Save(ctx)
		if err != nil {
			return inserted, fmt.Errorf("insert question %q: %w", q.ID, err)
		}
		inserted++
	}
	return inserted, nil
}

var _ catalog.Source = (*QuestionRepo)(nil)
