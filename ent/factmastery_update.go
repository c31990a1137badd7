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
	"github.com/mathspiral/mathspiral/ent/factmastery"
	"github.com/mathspiral/mathspiral/ent/predicate"
)

// FactMasteryUpdate is the builder for updating FactMastery entities.
type FactMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *FactMasteryMutation
}

// Where appends a list predicates to the FactMasteryUpdate builder.
func (_u *FactMasteryUpdate) Where(ps ...predicate.FactMastery) *FactMasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *FactMasteryUpdate) SetSkillID(v string) *FactMasteryUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *FactMasteryUpdate) SetNillableSkillID(v *string) *FactMasteryUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetFactKey sets the "fact_key" field.
func (_u *FactMasteryUpdate) SetFactKey(v string) *FactMasteryUpdate {
	_u.mutation.SetFactKey(v)
	return _u
}

// SetNillableFactKey sets the "fact_key" field if the given value is not nil.
func (_u *FactMasteryUpdate) SetNillableFactKey(v *string) *FactMasteryUpdate {
	if v != nil {
		_u.SetFactKey(*v)
	}
	return _u
}

// SetTimesSeen sets the "times_seen" field.
func (_u *FactMasteryUpdate) SetTimesSeen(v int) *FactMasteryUpdate {
	_u.mutation.ResetTimesSeen()
	_u.mutation.SetTimesSeen(v)
	return _u
}

// SetNillableTimesSeen sets the "times_seen" field if the given value is not nil.
func (_u *FactMasteryUpdate) SetNillableTimesSeen(v *int) *FactMasteryUpdate {
	if v != nil {
		_u.SetTimesSeen(*v)
	}
	return _u
}

// AddTimesSeen adds value to the "times_seen" field.
func (_u *FactMasteryUpdate) AddTimesSeen(v int) *FactMasteryUpdate {
	_u.mutation.AddTimesSeen(v)
	return _u
}

// SetTimesCorrect sets the "times_correct" field.
func (_u *FactMasteryUpdate) SetTimesCorrect(v int) *FactMasteryUpdate {
	_u.mutation.ResetTimesCorrect()
	_u.mutation.SetTimesCorrect(v)
	return _u
}

// SetNillableTimesCorrect sets the "times_correct" field if the given value is not nil.
func (_u *FactMasteryUpdate) SetNillableTimesCorrect(v *int) *FactMasteryUpdate {
	if v != nil {
		_u.SetTimesCorrect(*v)
	}
	return _u
}

// AddTimesCorrect adds value to the "times_correct" field.
func (_u *FactMasteryUpdate) AddTimesCorrect(v int) *FactMasteryUpdate {
	_u.mutation.AddTimesCorrect(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *FactMasteryUpdate) SetLastSeen(v time.Time) *FactMasteryUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// Mutation returns the FactMasteryMutation object of the builder.
func (_u *FactMasteryUpdate) Mutation() *FactMasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FactMasteryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FactMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FactMasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FactMasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FactMasteryUpdate) defaults() {
	if _, ok := _u.mutation.LastSeen(); !ok {
		v := factmastery.UpdateDefaultLastSeen()
		_u.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FactMasteryUpdate) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := factmastery.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "FactMastery.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FactKey(); ok {
		if err := factmastery.FactKeyValidator(v); err != nil {
			return &ValidationError{Name: "fact_key", err: fmt.Errorf(`ent: validator failed for field "FactMastery.fact_key": %w`, err)}
		}
	}
	return nil
}

func (_u *FactMasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(factmastery.Table, factmastery.Columns, sqlgraph.NewFieldSpec(factmastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(factmastery.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FactKey(); ok {
		_spec.SetField(factmastery.FieldFactKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimesSeen(); ok {
		_spec.SetField(factmastery.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesSeen(); ok {
		_spec.AddField(factmastery.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesCorrect(); ok {
		_spec.SetField(factmastery.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesCorrect(); ok {
		_spec.AddField(factmastery.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(factmastery.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{factmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FactMasteryUpdateOne is the builder for updating a single FactMastery entity.
type FactMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FactMasteryMutation
}

// SetSkillID sets the "skill_id" field.
func (_u *FactMasteryUpdateOne) SetSkillID(v string) *FactMasteryUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *FactMasteryUpdateOne) SetNillableSkillID(v *string) *FactMasteryUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetFactKey sets the "fact_key" field.
func (_u *FactMasteryUpdateOne) SetFactKey(v string) *FactMasteryUpdateOne {
	_u.mutation.SetFactKey(v)
	return _u
}

// SetNillableFactKey sets the "fact_key" field if the given value is not nil.
func (_u *FactMasteryUpdateOne) SetNillableFactKey(v *string) *FactMasteryUpdateOne {
	if v != nil {
		_u.SetFactKey(*v)
	}
	return _u
}

// SetTimesSeen sets the "times_seen" field.
func (_u *FactMasteryUpdateOne) SetTimesSeen(v int) *FactMasteryUpdateOne {
	_u.mutation.ResetTimesSeen()
	_u.mutation.SetTimesSeen(v)
	return _u
}

// SetNillableTimesSeen sets the "times_seen" field if the given value is not nil.
func (_u *FactMasteryUpdateOne) SetNillableTimesSeen(v *int) *FactMasteryUpdateOne {
	if v != nil {
		_u.SetTimesSeen(*v)
	}
	return _u
}

// AddTimesSeen adds value to the "times_seen" field.
func (_u *FactMasteryUpdateOne) AddTimesSeen(v int) *FactMasteryUpdateOne {
	_u.mutation.AddTimesSeen(v)
	return _u
}

// SetTimesCorrect sets the "times_correct" field.
func (_u *FactMasteryUpdateOne) SetTimesCorrect(v int) *FactMasteryUpdateOne {
	_u.mutation.ResetTimesCorrect()
	_u.mutation.SetTimesCorrect(v)
	return _u
}

// SetNillableTimesCorrect sets the "times_correct" field if the given value is not nil.
func (_u *FactMasteryUpdateOne) SetNillableTimesCorrect(v *int) *FactMasteryUpdateOne {
	if v != nil {
		_u.SetTimesCorrect(*v)
	}
	return _u
}

// AddTimesCorrect adds value to the "times_correct" field.
func (_u *FactMasteryUpdateOne) AddTimesCorrect(v int) *FactMasteryUpdateOne {
	_u.mutation.AddTimesCorrect(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *FactMasteryUpdateOne) SetLastSeen(v time.Time) *FactMasteryUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// Mutation returns the FactMasteryMutation object of the builder.
func (_u *FactMasteryUpdateOne) Mutation() *FactMasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the FactMasteryUpdate builder.
func (_u *FactMasteryUpdateOne) Where(ps ...predicate.FactMastery) *FactMasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FactMasteryUpdateOne) Select(field string, fields ...string) *FactMasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FactMastery entity.
func (_u *FactMasteryUpdateOne) Save(ctx context.Context) (*FactMastery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FactMasteryUpdateOne) SaveX(ctx context.Context) *FactMastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FactMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FactMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FactMasteryUpdateOne) defaults() {
	if _, ok := _u.mutation.LastSeen(); !ok {
		v := factmastery.UpdateDefaultLastSeen()
		_u.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FactMasteryUpdateOne) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := factmastery.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "FactMastery.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FactKey(); ok {
		if err := factmastery.FactKeyValidator(v); err != nil {
			return &ValidationError{Name: "fact_key", err: fmt.Errorf(`ent: validator failed for field "FactMastery.fact_key": %w`, err)}
		}
	}
	return nil
}

func (_u *FactMasteryUpdateOne) sqlSave(ctx context.Context) (_node *FactMastery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(factmastery.Table, factmastery.Columns, sqlgraph.NewFieldSpec(factmastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FactMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, factmastery.FieldID)
		for _, f := range fields {
			if !factmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != factmastery.FieldID {
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
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(factmastery.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FactKey(); ok {
		_spec.SetField(factmastery.FieldFactKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimesSeen(); ok {
		_spec.SetField(factmastery.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesSeen(); ok {
		_spec.AddField(factmastery.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesCorrect(); ok {
		_spec.SetField(factmastery.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesCorrect(); ok {
		_spec.AddField(factmastery.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(factmastery.FieldLastSeen, field.TypeTime, value)
	}
	_node = &FactMastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{factmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
