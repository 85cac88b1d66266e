// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepwise/satprep/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQid sets the "qid" field.
func (_c *QuestionCreate) SetQid(v string) *QuestionCreate {
	_c.mutation.SetQid(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *QuestionCreate) SetSubject(v string) *QuestionCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *QuestionCreate) SetSkill(v string) *QuestionCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *QuestionCreate) SetDomain(v string) *QuestionCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionCreate) SetDifficulty(v string) *QuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *QuestionCreate) SetPrompt(v string) *QuestionCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetOptionA sets the "option_a" field.
func (_c *QuestionCreate) SetOptionA(v string) *QuestionCreate {
	_c.mutation.SetOptionA(v)
	return _c
}

// SetOptionB sets the "option_b" field.
func (_c *QuestionCreate) SetOptionB(v string) *QuestionCreate {
	_c.mutation.SetOptionB(v)
	return _c
}

// SetOptionC sets the "option_c" field.
func (_c *QuestionCreate) SetOptionC(v string) *QuestionCreate {
	_c.mutation.SetOptionC(v)
	return _c
}

// SetOptionD sets the "option_d" field.
func (_c *QuestionCreate) SetOptionD(v string) *QuestionCreate {
	_c.mutation.SetOptionD(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *QuestionCreate) SetAnswer(v string) *QuestionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *QuestionCreate) SetRationale(v string) *QuestionCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableRationale(v *string) *QuestionCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Qid(); !ok {
		return &ValidationError{Name: "qid", err: errors.New(`ent: missing required field "Question.qid"`)}
	}
	if v, ok := _c.mutation.Qid(); ok {
		if err := question.QidValidator(v); err != nil {
			return &ValidationError{Name: "qid", err: fmt.Errorf(`ent: validator failed for field "Question.qid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Question.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := question.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Question.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "Question.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := question.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "Question.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Question.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := question.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Question.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Question.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionA(); !ok {
		return &ValidationError{Name: "option_a", err: errors.New(`ent: missing required field "Question.option_a"`)}
	}
	if v, ok := _c.mutation.OptionA(); ok {
		if err := question.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "Question.option_a": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionB(); !ok {
		return &ValidationError{Name: "option_b", err: errors.New(`ent: missing required field "Question.option_b"`)}
	}
	if v, ok := _c.mutation.OptionB(); ok {
		if err := question.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "Question.option_b": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionC(); !ok {
		return &ValidationError{Name: "option_c", err: errors.New(`ent: missing required field "Question.option_c"`)}
	}
	if v, ok := _c.mutation.OptionC(); ok {
		if err := question.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "Question.option_c": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionD(); !ok {
		return &ValidationError{Name: "option_d", err: errors.New(`ent: missing required field "Question.option_d"`)}
	}
	if v, ok := _c.mutation.OptionD(); ok {
		if err := question.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "Question.option_d": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Question.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := question.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Question.answer": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Qid(); ok {
		_spec.SetField(question.FieldQid, field.TypeString, value)
		_node.Qid = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(question.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(question.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.OptionA(); ok {
		_spec.SetField(question.FieldOptionA, field.TypeString, value)
		_node.OptionA = value
	}
	if value, ok := _c.mutation.OptionB(); ok {
		_spec.SetField(question.FieldOptionB, field.TypeString, value)
		_node.OptionB = value
	}
	if value, ok := _c.mutation.OptionC(); ok {
		_spec.SetField(question.FieldOptionC, field.TypeString, value)
		_node.OptionC = value
	}
	if value, ok := _c.mutation.OptionD(); ok {
		_spec.SetField(question.FieldOptionD, field.TypeString, value)
		_node.OptionD = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(question.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.Create().
//		SetQid(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetQid(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertOne {
	_c.conflict = opts
	return &QuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflictColumns(columns ...string) *QuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertOne{
		create: _c,
	}
}

type (
	// QuestionUpsertOne is the builder for "upsert"-ing
	//  one Question node.
	QuestionUpsertOne struct {
		create *QuestionCreate
	}

	// QuestionUpsert is the "OnConflict" setter.
	QuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetQid sets the "qid" field.
func (u *QuestionUpsert) SetQid(v string) *QuestionUpsert {
	u.Set(question.FieldQid, v)
	return u
}

// UpdateQid sets the "qid" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateQid() *QuestionUpsert {
	u.SetExcluded(question.FieldQid)
	return u
}

// SetSubject sets the "subject" field.
func (u *QuestionUpsert) SetSubject(v string) *QuestionUpsert {
	u.Set(question.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateSubject() *QuestionUpsert {
	u.SetExcluded(question.FieldSubject)
	return u
}

// SetSkill sets the "skill" field.
func (u *QuestionUpsert) SetSkill(v string) *QuestionUpsert {
	u.Set(question.FieldSkill, v)
	return u
}

// UpdateSkill sets the "skill" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateSkill() *QuestionUpsert {
	u.SetExcluded(question.FieldSkill)
	return u
}

// SetDomain sets the "domain" field.
func (u *QuestionUpsert) SetDomain(v string) *QuestionUpsert {
	u.Set(question.FieldDomain, v)
	return u
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateDomain() *QuestionUpsert {
	u.SetExcluded(question.FieldDomain)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsert) SetDifficulty(v string) *QuestionUpsert {
	u.Set(question.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateDifficulty() *QuestionUpsert {
	u.SetExcluded(question.FieldDifficulty)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *QuestionUpsert) SetPrompt(v string) *QuestionUpsert {
	u.Set(question.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *QuestionUpsert) UpdatePrompt() *QuestionUpsert {
	u.SetExcluded(question.FieldPrompt)
	return u
}

// SetOptionA sets the "option_a" field.
func (u *QuestionUpsert) SetOptionA(v string) *QuestionUpsert {
	u.Set(question.FieldOptionA, v)
	return u
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateOptionA() *QuestionUpsert {
	u.SetExcluded(question.FieldOptionA)
	return u
}

// SetOptionB sets the "option_b" field.
func (u *QuestionUpsert) SetOptionB(v string) *QuestionUpsert {
	u.Set(question.FieldOptionB, v)
	return u
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateOptionB() *QuestionUpsert {
	u.SetExcluded(question.FieldOptionB)
	return u
}

// SetOptionC sets the "option_c" field.
func (u *QuestionUpsert) SetOptionC(v string) *QuestionUpsert {
	u.Set(question.FieldOptionC, v)
	return u
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateOptionC() *QuestionUpsert {
	u.SetExcluded(question.FieldOptionC)
	return u
}

// SetOptionD sets the "option_d" field.
func (u *QuestionUpsert) SetOptionD(v string) *QuestionUpsert {
	u.Set(question.FieldOptionD, v)
	return u
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateOptionD() *QuestionUpsert {
	u.SetExcluded(question.FieldOptionD)
	return u
}

// SetAnswer sets the "answer" field.
func (u *QuestionUpsert) SetAnswer(v string) *QuestionUpsert {
	u.Set(question.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateAnswer() *QuestionUpsert {
	u.SetExcluded(question.FieldAnswer)
	return u
}

// SetRationale sets the "rationale" field.
func (u *QuestionUpsert) SetRationale(v string) *QuestionUpsert {
	u.Set(question.FieldRationale, v)
	return u
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateRationale() *QuestionUpsert {
	u.SetExcluded(question.FieldRationale)
	return u
}

// ClearRationale clears the value of the "rationale" field.
func (u *QuestionUpsert) ClearRationale() *QuestionUpsert {
	u.SetNull(question.FieldRationale)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionUpsertOne) UpdateNewValues() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionUpsertOne) Ignore() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertOne) DoNothing() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreate.OnConflict
// documentation for more info.
func (u *QuestionUpsertOne) Update(set func(*QuestionUpsert)) *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQid sets the "qid" field.
func (u *QuestionUpsertOne) SetQid(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQid(v)
	})
}

// UpdateQid sets the "qid" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateQid() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQid()
	})
}

// SetSubject sets the "subject" field.
func (u *QuestionUpsertOne) SetSubject(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateSubject() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSubject()
	})
}

// SetSkill sets the "skill" field.
func (u *QuestionUpsertOne) SetSkill(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSkill(v)
	})
}

// UpdateSkill sets the "skill" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateSkill() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSkill()
	})
}

// SetDomain sets the "domain" field.
func (u *QuestionUpsertOne) SetDomain(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateDomain() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDomain()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsertOne) SetDifficulty(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateDifficulty() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficulty()
	})
}

// SetPrompt sets the "prompt" field.
func (u *QuestionUpsertOne) SetPrompt(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdatePrompt() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePrompt()
	})
}

// SetOptionA sets the "option_a" field.
func (u *QuestionUpsertOne) SetOptionA(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOptionA(v)
	})
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateOptionA() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOptionA()
	})
}

// SetOptionB sets the "option_b" field.
func (u *QuestionUpsertOne) SetOptionB(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOptionB(v)
	})
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateOptionB() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOptionB()
	})
}

// SetOptionC sets the "option_c" field.
func (u *QuestionUpsertOne) SetOptionC(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOptionC(v)
	})
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateOptionC() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOptionC()
	})
}

// SetOptionD sets the "option_d" field.
func (u *QuestionUpsertOne) SetOptionD(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOptionD(v)
	})
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateOptionD() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOptionD()
	})
}

// SetAnswer sets the "answer" field.
func (u *QuestionUpsertOne) SetAnswer(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateAnswer() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateAnswer()
	})
}

// SetRationale sets the "rationale" field.
func (u *QuestionUpsertOne) SetRationale(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetRationale(v)
	})
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateRationale() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateRationale()
	})
}

// ClearRationale clears the value of the "rationale" field.
func (u *QuestionUpsertOne) ClearRationale() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearRationale()
	})
}

// Exec executes the query.
func (u *QuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetQid(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertBulk {
	_c.conflict = opts
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflictColumns(columns ...string) *QuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// QuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of Question nodes.
type QuestionUpsertBulk struct {
	create *QuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionUpsertBulk) UpdateNewValues() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionUpsertBulk) Ignore() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertBulk) DoNothing() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionUpsertBulk) Update(set func(*QuestionUpsert)) *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQid sets the "qid" field.
func (u *QuestionUpsertBulk) SetQid(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQid(v)
	})
}

// UpdateQid sets the "qid" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateQid() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQid()
	})
}

// SetSubject sets the "subject" field.
func (u *QuestionUpsertBulk) SetSubject(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateSubject() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSubject()
	})
}

// SetSkill sets the "skill" field.
func (u *QuestionUpsertBulk) SetSkill(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSkill(v)
	})
}

// UpdateSkill sets the "skill" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateSkill() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSkill()
	})
}

// SetDomain sets the "domain" field.
func (u *QuestionUpsertBulk) SetDomain(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateDomain() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDomain()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsertBulk) SetDifficulty(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateDifficulty() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficulty()
	})
}

// SetPrompt sets the "prompt" field.
func (u *QuestionUpsertBulk) SetPrompt(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdatePrompt() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePrompt()
	})
}

// SetOptionA sets the "option_a" field.
func (u *QuestionUpsertBulk) SetOptionA(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOptionA(v)
	})
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateOptionA() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOptionA()
	})
}

// SetOptionB sets the "option_b" field.
func (u *QuestionUpsertBulk) SetOptionB(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOptionB(v)
	})
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateOptionB() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOptionB()
	})
}

// SetOptionC sets the "option_c" field.
func (u *QuestionUpsertBulk) SetOptionC(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOptionC(v)
	})
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateOptionC() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOptionC()
	})
}

// SetOptionD sets the "option_d" field.
func (u *QuestionUpsertBulk) SetOptionD(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOptionD(v)
	})
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateOptionD() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOptionD()
	})
}

// SetAnswer sets the "answer" field.
func (u *QuestionUpsertBulk) SetAnswer(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateAnswer() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateAnswer()
	})
}

// SetRationale sets the "rationale" field.
func (u *QuestionUpsertBulk) SetRationale(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetRationale(v)
	})
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateRationale() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateRationale()
	})
}

// ClearRationale clears the value of the "rationale" field.
func (u *QuestionUpsertBulk) ClearRationale() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearRationale()
	})
}

// Exec executes the query.
func (u *QuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
