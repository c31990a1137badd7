// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathspiral/mathspiral/ent/practicesession"
)

// PracticeSessionCreate is the builder for creating a PracticeSession entity.
type PracticeSessionCreate struct {
	config
	mutation *PracticeSessionMutation
	hooks    []Hook
}

// SetSkillID sets the "skill_id" field.
func (_c *PracticeSessionCreate) SetSkillID(v string) *PracticeSessionCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PracticeSessionCreate) SetStatus(v string) *PracticeSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableStatus(v *string) *PracticeSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PracticeSessionCreate) SetStartedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableStartedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PracticeSessionCreate) SetCompletedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableCompletedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetStartDifficulty sets the "start_difficulty" field.
func (_c *PracticeSessionCreate) SetStartDifficulty(v int) *PracticeSessionCreate {
	_c.mutation.SetStartDifficulty(v)
	return _c
}

// SetStartVisualLevel sets the "start_visual_level" field.
func (_c *PracticeSessionCreate) SetStartVisualLevel(v int) *PracticeSessionCreate {
	_c.mutation.SetStartVisualLevel(v)
	return _c
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (_c *PracticeSessionCreate) SetFinalDifficulty(v int) *PracticeSessionCreate {
	_c.mutation.SetFinalDifficulty(v)
	return _c
}

// SetNillableFinalDifficulty sets the "final_difficulty" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableFinalDifficulty(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetFinalDifficulty(*v)
	}
	return _c
}

// SetFinalVisualLevel sets the "final_visual_level" field.
func (_c *PracticeSessionCreate) SetFinalVisualLevel(v int) *PracticeSessionCreate {
	_c.mutation.SetFinalVisualLevel(v)
	return _c
}

// SetNillableFinalVisualLevel sets the "final_visual_level" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableFinalVisualLevel(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetFinalVisualLevel(*v)
	}
	return _c
}

// SetTotalProblems sets the "total_problems" field.
func (_c *PracticeSessionCreate) SetTotalProblems(v int) *PracticeSessionCreate {
	_c.mutation.SetTotalProblems(v)
	return _c
}

// SetNillableTotalProblems sets the "total_problems" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableTotalProblems(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetTotalProblems(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *PracticeSessionCreate) SetCorrectCount(v int) *PracticeSessionCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableCorrectCount(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetAvgResponseMs sets the "avg_response_ms" field.
func (_c *PracticeSessionCreate) SetAvgResponseMs(v int) *PracticeSessionCreate {
	_c.mutation.SetAvgResponseMs(v)
	return _c
}

// SetNillableAvgResponseMs sets the "avg_response_ms" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableAvgResponseMs(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetAvgResponseMs(*v)
	}
	return _c
}

// SetMaxDifficulty sets the "max_difficulty" field.
func (_c *PracticeSessionCreate) SetMaxDifficulty(v int) *PracticeSessionCreate {
	_c.mutation.SetMaxDifficulty(v)
	return _c
}

// SetNillableMaxDifficulty sets the "max_difficulty" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableMaxDifficulty(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetMaxDifficulty(*v)
	}
	return _c
}

// SetTopTierCompleted sets the "top_tier_completed" field.
func (_c *PracticeSessionCreate) SetTopTierCompleted(v bool) *PracticeSessionCreate {
	_c.mutation.SetTopTierCompleted(v)
	return _c
}

// SetNillableTopTierCompleted sets the "top_tier_completed" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableTopTierCompleted(v *bool) *PracticeSessionCreate {
	if v != nil {
		_c.SetTopTierCompleted(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *PracticeSessionCreate) SetDurationSecs(v int) *PracticeSessionCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableDurationSecs(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PracticeSessionCreate) SetID(v string) *PracticeSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_c *PracticeSessionCreate) Mutation() *PracticeSessionMutation {
	return _c.mutation
}

// Save creates the PracticeSession in the database.
func (_c *PracticeSessionCreate) Save(ctx context.Context) (*PracticeSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeSessionCreate) SaveX(ctx context.Context) *PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := practicesession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := practicesession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.FinalDifficulty(); !ok {
		v := practicesession.DefaultFinalDifficulty
		_c.mutation.SetFinalDifficulty(v)
	}
	if _, ok := _c.mutation.FinalVisualLevel(); !ok {
		v := practicesession.DefaultFinalVisualLevel
		_c.mutation.SetFinalVisualLevel(v)
	}
	if _, ok := _c.mutation.TotalProblems(); !ok {
		v := practicesession.DefaultTotalProblems
		_c.mutation.SetTotalProblems(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := practicesession.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.AvgResponseMs(); !ok {
		v := practicesession.DefaultAvgResponseMs
		_c.mutation.SetAvgResponseMs(v)
	}
	if _, ok := _c.mutation.MaxDifficulty(); !ok {
		v := practicesession.DefaultMaxDifficulty
		_c.mutation.SetMaxDifficulty(v)
	}
	if _, ok := _c.mutation.TopTierCompleted(); !ok {
		v := practicesession.DefaultTopTierCompleted
		_c.mutation.SetTopTierCompleted(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := practicesession.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeSessionCreate) check() error {
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "PracticeSession.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := practicesession.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PracticeSession.status"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "PracticeSession.started_at"`)}
	}
	if _, ok := _c.mutation.StartDifficulty(); !ok {
		return &ValidationError{Name: "start_difficulty", err: errors.New(`ent: missing required field "PracticeSession.start_difficulty"`)}
	}
	if _, ok := _c.mutation.StartVisualLevel(); !ok {
		return &ValidationError{Name: "start_visual_level", err: errors.New(`ent: missing required field "PracticeSession.start_visual_level"`)}
	}
	if _, ok := _c.mutation.FinalDifficulty(); !ok {
		return &ValidationError{Name: "final_difficulty", err: errors.New(`ent: missing required field "PracticeSession.final_difficulty"`)}
	}
	if _, ok := _c.mutation.FinalVisualLevel(); !ok {
		return &ValidationError{Name: "final_visual_level", err: errors.New(`ent: missing required field "PracticeSession.final_visual_level"`)}
	}
	if _, ok := _c.mutation.TotalProblems(); !ok {
		return &ValidationError{Name: "total_problems", err: errors.New(`ent: missing required field "PracticeSession.total_problems"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "PracticeSession.correct_count"`)}
	}
	if _, ok := _c.mutation.AvgResponseMs(); !ok {
		return &ValidationError{Name: "avg_response_ms", err: errors.New(`ent: missing required field "PracticeSession.avg_response_ms"`)}
	}
	if _, ok := _c.mutation.MaxDifficulty(); !ok {
		return &ValidationError{Name: "max_difficulty", err: errors.New(`ent: missing required field "PracticeSession.max_difficulty"`)}
	}
	if _, ok := _c.mutation.TopTierCompleted(); !ok {
		return &ValidationError{Name: "top_tier_completed", err: errors.New(`ent: missing required field "PracticeSession.top_tier_completed"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "PracticeSession.duration_secs"`)}
	}
	return nil
}

func (_c *PracticeSessionCreate) sqlSave(ctx context.Context) (*PracticeSession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PracticeSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PracticeSessionCreate) createSpec() (*PracticeSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicesession.Table, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(practicesession.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(practicesession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(practicesession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(practicesession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if value, ok := _c.mutation.StartDifficulty(); ok {
		_spec.SetField(practicesession.FieldStartDifficulty, field.TypeInt, value)
		_node.StartDifficulty = value
	}
	if value, ok := _c.mutation.StartVisualLevel(); ok {
		_spec.SetField(practicesession.FieldStartVisualLevel, field.TypeInt, value)
		_node.StartVisualLevel = value
	}
	if value, ok := _c.mutation.FinalDifficulty(); ok {
		_spec.SetField(practicesession.FieldFinalDifficulty, field.TypeInt, value)
		_node.FinalDifficulty = value
	}
	if value, ok := _c.mutation.FinalVisualLevel(); ok {
		_spec.SetField(practicesession.FieldFinalVisualLevel, field.TypeInt, value)
		_node.FinalVisualLevel = value
	}
	if value, ok := _c.mutation.TotalProblems(); ok {
		_spec.SetField(practicesession.FieldTotalProblems, field.TypeInt, value)
		_node.TotalProblems = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(practicesession.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.AvgResponseMs(); ok {
		_spec.SetField(practicesession.FieldAvgResponseMs, field.TypeInt, value)
		_node.AvgResponseMs = value
	}
	if value, ok := _c.mutation.MaxDifficulty(); ok {
		_spec.SetField(practicesession.FieldMaxDifficulty, field.TypeInt, value)
		_node.MaxDifficulty = value
	}
	if value, ok := _c.mutation.TopTierCompleted(); ok {
		_spec.SetField(practicesession.FieldTopTierCompleted, field.TypeBool, value)
		_node.TopTierCompleted = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(practicesession.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// PracticeSessionCreateBulk is the builder for creating many PracticeSession entities in bulk.
type PracticeSessionCreateBulk struct {
	config
	err      error
	builders []*PracticeSessionCreate
}

// Save creates the PracticeSession entities in the database.
func (_c *PracticeSessionCreateBulk) Save(ctx context.Context) ([]*PracticeSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeSessionMutation)
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
func (_c *PracticeSessionCreateBulk) SaveX(ctx context.Context) []*PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
