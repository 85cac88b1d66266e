// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepwise/satprep/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AttemptEventCreate) SetUserID(v string) *AttemptEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *AttemptEventCreate) SetSkillID(v string) *AttemptEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *AttemptEventCreate) SetSubject(v string) *AttemptEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AttemptEventCreate) SetDifficulty(v string) *AttemptEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptEventCreate) SetCorrect(v bool) *AttemptEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *AttemptEventCreate) SetTimeMs(v int) *AttemptEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// SetExpectedAccuracy sets the "expected_accuracy" field.
func (_c *AttemptEventCreate) SetExpectedAccuracy(v float64) *AttemptEventCreate {
	_c.mutation.SetExpectedAccuracy(v)
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AttemptEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "AttemptEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := attemptevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "AttemptEvent.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := attemptevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "AttemptEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := attemptevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "AttemptEvent.time_ms"`)}
	}
	if _, ok := _c.mutation.ExpectedAccuracy(); !ok {
		return &ValidationError{Name: "expected_accuracy", err: errors.New(`ent: missing required field "AttemptEvent.expected_accuracy"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(attemptevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(attemptevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	if value, ok := _c.mutation.ExpectedAccuracy(); ok {
		_spec.SetField(attemptevent.FieldExpectedAccuracy, field.TypeFloat64, value)
		_node.ExpectedAccuracy = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptEventCreate) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertOne {
	_c.conflict = opts
	return &AttemptEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptEventCreate) OnConflictColumns(columns ...string) *AttemptEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertOne{
		create: _c,
	}
}

type (
	// AttemptEventUpsertOne is the builder for "upsert"-ing
	//  one AttemptEvent node.
	AttemptEventUpsertOne struct {
		create *AttemptEventCreate
	}

	// AttemptEventUpsert is the "OnConflict" setter.
	AttemptEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AttemptEventUpsert) SetUserID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateUserID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldUserID)
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *AttemptEventUpsert) SetSkillID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldSkillID, v)
	return u
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateSkillID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldSkillID)
	return u
}

// SetSubject sets the "subject" field.
func (u *AttemptEventUpsert) SetSubject(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateSubject() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldSubject)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *AttemptEventUpsert) SetDifficulty(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateDifficulty() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldDifficulty)
	return u
}

// SetCorrect sets the "correct" field.
func (u *AttemptEventUpsert) SetCorrect(v bool) *AttemptEventUpsert {
	u.Set(attemptevent.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateCorrect() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldCorrect)
	return u
}

// SetTimeMs sets the "time_ms" field.
func (u *AttemptEventUpsert) SetTimeMs(v int) *AttemptEventUpsert {
	u.Set(attemptevent.FieldTimeMs, v)
	return u
}

// UpdateTimeMs sets the "time_ms" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateTimeMs() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldTimeMs)
	return u
}

// AddTimeMs adds v to the "time_ms" field.
func (u *AttemptEventUpsert) AddTimeMs(v int) *AttemptEventUpsert {
	u.Add(attemptevent.FieldTimeMs, v)
	return u
}

// SetExpectedAccuracy sets the "expected_accuracy" field.
func (u *AttemptEventUpsert) SetExpectedAccuracy(v float64) *AttemptEventUpsert {
	u.Set(attemptevent.FieldExpectedAccuracy, v)
	return u
}

// UpdateExpectedAccuracy sets the "expected_accuracy" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateExpectedAccuracy() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldExpectedAccuracy)
	return u
}

// AddExpectedAccuracy adds v to the "expected_accuracy" field.
func (u *AttemptEventUpsert) AddExpectedAccuracy(v float64) *AttemptEventUpsert {
	u.Add(attemptevent.FieldExpectedAccuracy, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertOne) UpdateNewValues() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(attemptevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(attemptevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AttemptEventUpsertOne) Ignore() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertOne) DoNothing() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreate.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertOne) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AttemptEventUpsertOne) SetUserID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateUserID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateUserID()
	})
}

// SetSkillID sets the "skill_id" field.
func (u *AttemptEventUpsertOne) SetSkillID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateSkillID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSkillID()
	})
}

// SetSubject sets the "subject" field.
func (u *AttemptEventUpsertOne) SetSubject(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateSubject() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSubject()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *AttemptEventUpsertOne) SetDifficulty(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateDifficulty() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateDifficulty()
	})
}

// SetCorrect sets the "correct" field.
func (u *AttemptEventUpsertOne) SetCorrect(v bool) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateCorrect() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetTimeMs sets the "time_ms" field.
func (u *AttemptEventUpsertOne) SetTimeMs(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTimeMs(v)
	})
}

// AddTimeMs adds v to the "time_ms" field.
func (u *AttemptEventUpsertOne) AddTimeMs(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddTimeMs(v)
	})
}

// UpdateTimeMs sets the "time_ms" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateTimeMs() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTimeMs()
	})
}

// SetExpectedAccuracy sets the "expected_accuracy" field.
func (u *AttemptEventUpsertOne) SetExpectedAccuracy(v float64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetExpectedAccuracy(v)
	})
}

// AddExpectedAccuracy adds v to the "expected_accuracy" field.
func (u *AttemptEventUpsertOne) AddExpectedAccuracy(v float64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddExpectedAccuracy(v)
	})
}

// UpdateExpectedAccuracy sets the "expected_accuracy" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateExpectedAccuracy() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateExpectedAccuracy()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AttemptEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AttemptEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertBulk {
	_c.conflict = opts
	return &AttemptEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptEventCreateBulk) OnConflictColumns(columns ...string) *AttemptEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertBulk{
		create: _c,
	}
}

// AttemptEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AttemptEvent nodes.
type AttemptEventUpsertBulk struct {
	create *AttemptEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) UpdateNewValues() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(attemptevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(attemptevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) Ignore() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertBulk) DoNothing() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreateBulk.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertBulk) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AttemptEventUpsertBulk) SetUserID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateUserID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateUserID()
	})
}

// SetSkillID sets the "skill_id" field.
func (u *AttemptEventUpsertBulk) SetSkillID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateSkillID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSkillID()
	})
}

// SetSubject sets the "subject" field.
func (u *AttemptEventUpsertBulk) SetSubject(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateSubject() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSubject()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *AttemptEventUpsertBulk) SetDifficulty(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateDifficulty() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateDifficulty()
	})
}

// SetCorrect sets the "correct" field.
func (u *AttemptEventUpsertBulk) SetCorrect(v bool) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateCorrect() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetTimeMs sets the "time_ms" field.
func (u *AttemptEventUpsertBulk) SetTimeMs(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTimeMs(v)
	})
}

// AddTimeMs adds v to the "time_ms" field.
func (u *AttemptEventUpsertBulk) AddTimeMs(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddTimeMs(v)
	})
}

// UpdateTimeMs sets the "time_ms" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateTimeMs() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTimeMs()
	})
}

// SetExpectedAccuracy sets the "expected_accuracy" field.
func (u *AttemptEventUpsertBulk) SetExpectedAccuracy(v float64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetExpectedAccuracy(v)
	})
}

// AddExpectedAccuracy adds v to the "expected_accuracy" field.
func (u *AttemptEventUpsertBulk) AddExpectedAccuracy(v float64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddExpectedAccuracy(v)
	})
}

// UpdateExpectedAccuracy sets the "expected_accuracy" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateExpectedAccuracy() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateExpectedAccuracy()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AttemptEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
