// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathspiral/mathspiral/ent/attempt"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptCreate) SetSequence(v int64) *AttemptCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptCreate) SetTimestamp(v time.Time) *AttemptCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableTimestamp(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptCreate) SetSessionID(v string) *AttemptCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *AttemptCreate) SetSkillID(v string) *AttemptCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetGroupNumber sets the "group_number" field.
func (_c *AttemptCreate) SetGroupNumber(v int) *AttemptCreate {
	_c.mutation.SetGroupNumber(v)
	return _c
}

// SetSeqInSession sets the "seq_in_session" field.
func (_c *AttemptCreate) SetSeqInSession(v int) *AttemptCreate {
	_c.mutation.SetSeqInSession(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *AttemptCreate) SetPrompt(v string) *AttemptCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *AttemptCreate) SetCorrectAnswer(v string) *AttemptCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetGivenAnswer sets the "given_answer" field.
func (_c *AttemptCreate) SetGivenAnswer(v string) *AttemptCreate {
	_c.mutation.SetGivenAnswer(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptCreate) SetCorrect(v bool) *AttemptCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *AttemptCreate) SetResponseTimeMs(v int) *AttemptCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AttemptCreate) SetDifficulty(v int) *AttemptCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetVisualLevel sets the "visual_level" field.
func (_c *AttemptCreate) SetVisualLevel(v int) *AttemptCreate {
	_c.mutation.SetVisualLevel(v)
	return _c
}

// SetFactKey sets the "fact_key" field.
func (_c *AttemptCreate) SetFactKey(v string) *AttemptCreate {
	_c.mutation.SetFactKey(v)
	return _c
}

// SetNillableFactKey sets the "fact_key" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableFactKey(v *string) *AttemptCreate {
	if v != nil {
		_c.SetFactKey(*v)
	}
	return _c
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attempt.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Attempt.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Attempt.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Attempt.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := attempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "Attempt.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := attempt.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GroupNumber(); !ok {
		return &ValidationError{Name: "group_number", err: errors.New(`ent: missing required field "Attempt.group_number"`)}
	}
	if _, ok := _c.mutation.SeqInSession(); !ok {
		return &ValidationError{Name: "seq_in_session", err: errors.New(`ent: missing required field "Attempt.seq_in_session"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Attempt.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := attempt.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Attempt.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "Attempt.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := attempt.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Attempt.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GivenAnswer(); !ok {
		return &ValidationError{Name: "given_answer", err: errors.New(`ent: missing required field "Attempt.given_answer"`)}
	}
	if v, ok := _c.mutation.GivenAnswer(); ok {
		if err := attempt.GivenAnswerValidator(v); err != nil {
			return &ValidationError{Name: "given_answer", err: fmt.Errorf(`ent: validator failed for field "Attempt.given_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "Attempt.correct"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "Attempt.response_time_ms"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Attempt.difficulty"`)}
	}
	if _, ok := _c.mutation.VisualLevel(); !ok {
		return &ValidationError{Name: "visual_level", err: errors.New(`ent: missing required field "Attempt.visual_level"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attempt.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attempt.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attempt.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(attempt.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.GroupNumber(); ok {
		_spec.SetField(attempt.FieldGroupNumber, field.TypeInt, value)
		_node.GroupNumber = value
	}
	if value, ok := _c.mutation.SeqInSession(); ok {
		_spec.SetField(attempt.FieldSeqInSession, field.TypeInt, value)
		_node.SeqInSession = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(attempt.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(attempt.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.GivenAnswer(); ok {
		_spec.SetField(attempt.FieldGivenAnswer, field.TypeString, value)
		_node.GivenAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attempt.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attempt.FieldResponseTimeMs, field.TypeInt, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(attempt.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.VisualLevel(); ok {
		_spec.SetField(attempt.FieldVisualLevel, field.TypeInt, value)
		_node.VisualLevel = value
	}
	if value, ok := _c.mutation.FactKey(); ok {
		_spec.SetField(attempt.FieldFactKey, field.TypeString, value)
		_node.FactKey = value
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
