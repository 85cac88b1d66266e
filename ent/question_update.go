// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepwise/satprep/ent/predicate"
	"github.com/prepwise/satprep/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQid sets the "qid" field.
func (_u *QuestionUpdate) SetQid(v string) *QuestionUpdate {
	_u.mutation.SetQid(v)
	return _u
}

// SetNillableQid sets the "qid" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQid(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQid(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuestionUpdate) SetSubject(v string) *QuestionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSubject(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *QuestionUpdate) SetSkill(v string) *QuestionUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSkill(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *QuestionUpdate) SetDomain(v string) *QuestionUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDomain(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdate) SetDifficulty(v string) *QuestionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDifficulty(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionUpdate) SetPrompt(v string) *QuestionUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePrompt(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *QuestionUpdate) SetOptionA(v string) *QuestionUpdate {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOptionA(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *QuestionUpdate) SetOptionB(v string) *QuestionUpdate {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOptionB(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *QuestionUpdate) SetOptionC(v string) *QuestionUpdate {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOptionC(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *QuestionUpdate) SetOptionD(v string) *QuestionUpdate {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOptionD(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionUpdate) SetAnswer(v string) *QuestionUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *QuestionUpdate) SetRationale(v string) *QuestionUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableRationale(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *QuestionUpdate) ClearRationale() *QuestionUpdate {
	_u.mutation.ClearRationale()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.Qid(); ok {
		if err := question.QidValidator(v); err != nil {
			return &ValidationError{Name: "qid", err: fmt.Errorf(`ent: validator failed for field "Question.qid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := question.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Question.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := question.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "Question.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := question.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Question.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionA(); ok {
		if err := question.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "Question.option_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionB(); ok {
		if err := question.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "Question.option_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionC(); ok {
		if err := question.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "Question.option_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionD(); ok {
		if err := question.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "Question.option_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := question.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Question.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Qid(); ok {
		_spec.SetField(question.FieldQid, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(question.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(question.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(question.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(question.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(question.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(question.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(question.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(question.FieldRationale, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetQid sets the "qid" field.
func (_u *QuestionUpdateOne) SetQid(v string) *QuestionUpdateOne {
	_u.mutation.SetQid(v)
	return _u
}

// SetNillableQid sets the "qid" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQid(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQid(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuestionUpdateOne) SetSubject(v string) *QuestionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSubject(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *QuestionUpdateOne) SetSkill(v string) *QuestionUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSkill(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *QuestionUpdateOne) SetDomain(v string) *QuestionUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDomain(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdateOne) SetDifficulty(v string) *QuestionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDifficulty(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionUpdateOne) SetPrompt(v string) *QuestionUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePrompt(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *QuestionUpdateOne) SetOptionA(v string) *QuestionUpdateOne {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOptionA(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *QuestionUpdateOne) SetOptionB(v string) *QuestionUpdateOne {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOptionB(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *QuestionUpdateOne) SetOptionC(v string) *QuestionUpdateOne {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOptionC(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *QuestionUpdateOne) SetOptionD(v string) *QuestionUpdateOne {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOptionD(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionUpdateOne) SetAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *QuestionUpdateOne) SetRationale(v string) *QuestionUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableRationale(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *QuestionUpdateOne) ClearRationale() *QuestionUpdateOne {
	_u.mutation.ClearRationale()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Qid(); ok {
		if err := question.QidValidator(v); err != nil {
			return &ValidationError{Name: "qid", err: fmt.Errorf(`ent: validator failed for field "Question.qid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := question.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Question.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := question.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "Question.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := question.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Question.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionA(); ok {
		if err := question.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "Question.option_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionB(); ok {
		if err := question.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "Question.option_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionC(); ok {
		if err := question.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "Question.option_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionD(); ok {
		if err := question.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "Question.option_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := question.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Question.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Qid(); ok {
		_spec.SetField(question.FieldQid, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(question.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(question.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(question.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(question.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(question.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(question.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(question.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(question.FieldRationale, field.TypeString)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
