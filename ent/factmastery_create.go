// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathspiral/mathspiral/ent/factmastery"
)

// FactMasteryCreate is the builder for creating a FactMastery entity.
type FactMasteryCreate struct {
	config
	mutation *FactMasteryMutation
	hooks    []Hook
}

// SetSkillID sets the "skill_id" field.
func (_c *FactMasteryCreate) SetSkillID(v string) *FactMasteryCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetFactKey sets the "fact_key" field.
func (_c *FactMasteryCreate) SetFactKey(v string) *FactMasteryCreate {
	_c.mutation.SetFactKey(v)
	return _c
}

// SetTimesSeen sets the "times_seen" field.
func (_c *FactMasteryCreate) SetTimesSeen(v int) *FactMasteryCreate {
	_c.mutation.SetTimesSeen(v)
	return _c
}

// SetNillableTimesSeen sets the "times_seen" field if the given value is not nil.
func (_c *FactMasteryCreate) SetNillableTimesSeen(v *int) *FactMasteryCreate {
	if v != nil {
		_c.SetTimesSeen(*v)
	}
	return _c
}

// SetTimesCorrect sets the "times_correct" field.
func (_c *FactMasteryCreate) SetTimesCorrect(v int) *FactMasteryCreate {
	_c.mutation.SetTimesCorrect(v)
	return _c
}

// SetNillableTimesCorrect sets the "times_correct" field if the given value is not nil.
func (_c *FactMasteryCreate) SetNillableTimesCorrect(v *int) *FactMasteryCreate {
	if v != nil {
		_c.SetTimesCorrect(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *FactMasteryCreate) SetLastSeen(v time.Time) *FactMasteryCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *FactMasteryCreate) SetNillableLastSeen(v *time.Time) *FactMasteryCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// Mutation returns the FactMasteryMutation object of the builder.
func (_c *FactMasteryCreate) Mutation() *FactMasteryMutation {
	return _c.mutation
}

// Save creates the FactMastery in the database.
func (_c *FactMasteryCreate) Save(ctx context.Context) (*FactMastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FactMasteryCreate) SaveX(ctx context.Context) *FactMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FactMasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FactMasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FactMasteryCreate) defaults() {
	if _, ok := _c.mutation.TimesSeen(); !ok {
		v := factmastery.DefaultTimesSeen
		_c.mutation.SetTimesSeen(v)
	}
	if _, ok := _c.mutation.TimesCorrect(); !ok {
		v := factmastery.DefaultTimesCorrect
		_c.mutation.SetTimesCorrect(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := factmastery.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FactMasteryCreate) check() error {
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "FactMastery.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := factmastery.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "FactMastery.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FactKey(); !ok {
		return &ValidationError{Name: "fact_key", err: errors.New(`ent: missing required field "FactMastery.fact_key"`)}
	}
	if v, ok := _c.mutation.FactKey(); ok {
		if err := factmastery.FactKeyValidator(v); err != nil {
			return &ValidationError{Name: "fact_key", err: fmt.Errorf(`ent: validator failed for field "FactMastery.fact_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimesSeen(); !ok {
		return &ValidationError{Name: "times_seen", err: errors.New(`ent: missing required field "FactMastery.times_seen"`)}
	}
	if _, ok := _c.mutation.TimesCorrect(); !ok {
		return &ValidationError{Name: "times_correct", err: errors.New(`ent: missing required field "FactMastery.times_correct"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "FactMastery.last_seen"`)}
	}
	return nil
}

func (_c *FactMasteryCreate) sqlSave(ctx context.Context) (*FactMastery, error) {
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

func (_c *FactMasteryCreate) createSpec() (*FactMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &FactMastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(factmastery.Table, sqlgraph.NewFieldSpec(factmastery.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(factmastery.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.FactKey(); ok {
		_spec.SetField(factmastery.FieldFactKey, field.TypeString, value)
		_node.FactKey = value
	}
	if value, ok := _c.mutation.TimesSeen(); ok {
		_spec.SetField(factmastery.FieldTimesSeen, field.TypeInt, value)
		_node.TimesSeen = value
	}
	if value, ok := _c.mutation.TimesCorrect(); ok {
		_spec.SetField(factmastery.FieldTimesCorrect, field.TypeInt, value)
		_node.TimesCorrect = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(factmastery.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// FactMasteryCreateBulk is the builder for creating many FactMastery entities in bulk.
type FactMasteryCreateBulk struct {
	config
	err      error
	builders []*FactMasteryCreate
}

// Save creates the FactMastery entities in the database.
func (_c *FactMasteryCreateBulk) Save(ctx context.Context) ([]*FactMastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FactMastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FactMasteryMutation)
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
func (_c *FactMasteryCreateBulk) SaveX(ctx context.Context) []*FactMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FactMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FactMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
