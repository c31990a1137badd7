// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathspiral/mathspiral/ent/adaptationevent"
	"github.com/mathspiral/mathspiral/ent/predicate"
)

// AdaptationEventUpdate is the builder for updating AdaptationEvent entities.
type AdaptationEventUpdate struct {
	config
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdate) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AdaptationEventUpdate) SetSessionID(v string) *AdaptationEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableSessionID(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *AdaptationEventUpdate) SetSkillID(v string) *AdaptationEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableSkillID(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetGroupNumber sets the "group_number" field.
func (_u *AdaptationEventUpdate) SetGroupNumber(v int) *AdaptationEventUpdate {
	_u.mutation.ResetGroupNumber()
	_u.mutation.SetGroupNumber(v)
	return _u
}

// SetNillableGroupNumber sets the "group_number" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableGroupNumber(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetGroupNumber(*v)
	}
	return _u
}

// AddGroupNumber adds value to the "group_number" field.
func (_u *AdaptationEventUpdate) AddGroupNumber(v int) *AdaptationEventUpdate {
	_u.mutation.AddGroupNumber(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AdaptationEventUpdate) SetOutcome(v string) *AdaptationEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableOutcome(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AdaptationEventUpdate) SetReason(v string) *AdaptationEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableReason(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetFromDifficulty sets the "from_difficulty" field.
func (_u *AdaptationEventUpdate) SetFromDifficulty(v int) *AdaptationEventUpdate {
	_u.mutation.ResetFromDifficulty()
	_u.mutation.SetFromDifficulty(v)
	return _u
}

// SetNillableFromDifficulty sets the "from_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableFromDifficulty(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetFromDifficulty(*v)
	}
	return _u
}

// AddFromDifficulty adds value to the "from_difficulty" field.
func (_u *AdaptationEventUpdate) AddFromDifficulty(v int) *AdaptationEventUpdate {
	_u.mutation.AddFromDifficulty(v)
	return _u
}

// SetFromVisualLevel sets the "from_visual_level" field.
func (_u *AdaptationEventUpdate) SetFromVisualLevel(v int) *AdaptationEventUpdate {
	_u.mutation.ResetFromVisualLevel()
	_u.mutation.SetFromVisualLevel(v)
	return _u
}

// SetNillableFromVisualLevel sets the "from_visual_level" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableFromVisualLevel(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetFromVisualLevel(*v)
	}
	return _u
}

// AddFromVisualLevel adds value to the "from_visual_level" field.
func (_u *AdaptationEventUpdate) AddFromVisualLevel(v int) *AdaptationEventUpdate {
	_u.mutation.AddFromVisualLevel(v)
	return _u
}

// SetToDifficulty sets the "to_difficulty" field.
func (_u *AdaptationEventUpdate) SetToDifficulty(v int) *AdaptationEventUpdate {
	_u.mutation.ResetToDifficulty()
	_u.mutation.SetToDifficulty(v)
	return _u
}

// SetNillableToDifficulty sets the "to_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableToDifficulty(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetToDifficulty(*v)
	}
	return _u
}

// AddToDifficulty adds value to the "to_difficulty" field.
func (_u *AdaptationEventUpdate) AddToDifficulty(v int) *AdaptationEventUpdate {
	_u.mutation.AddToDifficulty(v)
	return _u
}

// SetToVisualLevel sets the "to_visual_level" field.
func (_u *AdaptationEventUpdate) SetToVisualLevel(v int) *AdaptationEventUpdate {
	_u.mutation.ResetToVisualLevel()
	_u.mutation.SetToVisualLevel(v)
	return _u
}

// SetNillableToVisualLevel sets the "to_visual_level" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableToVisualLevel(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetToVisualLevel(*v)
	}
	return _u
}

// AddToVisualLevel adds value to the "to_visual_level" field.
func (_u *AdaptationEventUpdate) AddToVisualLevel(v int) *AdaptationEventUpdate {
	_u.mutation.AddToVisualLevel(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *AdaptationEventUpdate) SetCorrectCount(v int) *AdaptationEventUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableCorrectCount(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *AdaptationEventUpdate) AddCorrectCount(v int) *AdaptationEventUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetGroupSize sets the "group_size" field.
func (_u *AdaptationEventUpdate) SetGroupSize(v int) *AdaptationEventUpdate {
	_u.mutation.ResetGroupSize()
	_u.mutation.SetGroupSize(v)
	return _u
}

// SetNillableGroupSize sets the "group_size" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableGroupSize(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetGroupSize(*v)
	}
	return _u
}

// AddGroupSize adds value to the "group_size" field.
func (_u *AdaptationEventUpdate) AddGroupSize(v int) *AdaptationEventUpdate {
	_u.mutation.AddGroupSize(v)
	return _u
}

// SetAvgResponseMs sets the "avg_response_ms" field.
func (_u *AdaptationEventUpdate) SetAvgResponseMs(v int) *AdaptationEventUpdate {
	_u.mutation.ResetAvgResponseMs()
	_u.mutation.SetAvgResponseMs(v)
	return _u
}

// SetNillableAvgResponseMs sets the "avg_response_ms" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableAvgResponseMs(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetAvgResponseMs(*v)
	}
	return _u
}

// AddAvgResponseMs adds value to the "avg_response_ms" field.
func (_u *AdaptationEventUpdate) AddAvgResponseMs(v int) *AdaptationEventUpdate {
	_u.mutation.AddAvgResponseMs(v)
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdate) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdaptationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdaptationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := adaptationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := adaptationevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := adaptationevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(adaptationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(adaptationevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupNumber(); ok {
		_spec.SetField(adaptationevent.FieldGroupNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGroupNumber(); ok {
		_spec.AddField(adaptationevent.FieldGroupNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(adaptationevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldFromDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldFromDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FromVisualLevel(); ok {
		_spec.SetField(adaptationevent.FieldFromVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromVisualLevel(); ok {
		_spec.AddField(adaptationevent.FieldFromVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldToDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldToDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToVisualLevel(); ok {
		_spec.SetField(adaptationevent.FieldToVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToVisualLevel(); ok {
		_spec.AddField(adaptationevent.FieldToVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(adaptationevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(adaptationevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GroupSize(); ok {
		_spec.SetField(adaptationevent.FieldGroupSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGroupSize(); ok {
		_spec.AddField(adaptationevent.FieldGroupSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgResponseMs(); ok {
		_spec.SetField(adaptationevent.FieldAvgResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseMs(); ok {
		_spec.AddField(adaptationevent.FieldAvgResponseMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdaptationEventUpdateOne is the builder for updating a single AdaptationEvent entity.
type AdaptationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AdaptationEventUpdateOne) SetSessionID(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableSessionID(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *AdaptationEventUpdateOne) SetSkillID(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableSkillID(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetGroupNumber sets the "group_number" field.
func (_u *AdaptationEventUpdateOne) SetGroupNumber(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetGroupNumber()
	_u.mutation.SetGroupNumber(v)
	return _u
}

// SetNillableGroupNumber sets the "group_number" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableGroupNumber(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetGroupNumber(*v)
	}
	return _u
}

// AddGroupNumber adds value to the "group_number" field.
func (_u *AdaptationEventUpdateOne) AddGroupNumber(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddGroupNumber(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AdaptationEventUpdateOne) SetOutcome(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableOutcome(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AdaptationEventUpdateOne) SetReason(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableReason(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetFromDifficulty sets the "from_difficulty" field.
func (_u *AdaptationEventUpdateOne) SetFromDifficulty(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetFromDifficulty()
	_u.mutation.SetFromDifficulty(v)
	return _u
}

// SetNillableFromDifficulty sets the "from_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableFromDifficulty(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetFromDifficulty(*v)
	}
	return _u
}

// AddFromDifficulty adds value to the "from_difficulty" field.
func (_u *AdaptationEventUpdateOne) AddFromDifficulty(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddFromDifficulty(v)
	return _u
}

// SetFromVisualLevel sets the "from_visual_level" field.
func (_u *AdaptationEventUpdateOne) SetFromVisualLevel(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetFromVisualLevel()
	_u.mutation.SetFromVisualLevel(v)
	return _u
}

// SetNillableFromVisualLevel sets the "from_visual_level" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableFromVisualLevel(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetFromVisualLevel(*v)
	}
	return _u
}

// AddFromVisualLevel adds value to the "from_visual_level" field.
func (_u *AdaptationEventUpdateOne) AddFromVisualLevel(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddFromVisualLevel(v)
	return _u
}

// SetToDifficulty sets the "to_difficulty" field.
func (_u *AdaptationEventUpdateOne) SetToDifficulty(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetToDifficulty()
	_u.mutation.SetToDifficulty(v)
	return _u
}

// SetNillableToDifficulty sets the "to_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableToDifficulty(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetToDifficulty(*v)
	}
	return _u
}

// AddToDifficulty adds value to the "to_difficulty" field.
func (_u *AdaptationEventUpdateOne) AddToDifficulty(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddToDifficulty(v)
	return _u
}

// SetToVisualLevel sets the "to_visual_level" field.
func (_u *AdaptationEventUpdateOne) SetToVisualLevel(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetToVisualLevel()
	_u.mutation.SetToVisualLevel(v)
	return _u
}

// SetNillableToVisualLevel sets the "to_visual_level" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableToVisualLevel(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetToVisualLevel(*v)
	}
	return _u
}

// AddToVisualLevel adds value to the "to_visual_level" field.
func (_u *AdaptationEventUpdateOne) AddToVisualLevel(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddToVisualLevel(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *AdaptationEventUpdateOne) SetCorrectCount(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableCorrectCount(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *AdaptationEventUpdateOne) AddCorrectCount(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetGroupSize sets the "group_size" field.
func (_u *AdaptationEventUpdateOne) SetGroupSize(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetGroupSize()
	_u.mutation.SetGroupSize(v)
	return _u
}

// SetNillableGroupSize sets the "group_size" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableGroupSize(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetGroupSize(*v)
	}
	return _u
}

// AddGroupSize adds value to the "group_size" field.
func (_u *AdaptationEventUpdateOne) AddGroupSize(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddGroupSize(v)
	return _u
}

// SetAvgResponseMs sets the "avg_response_ms" field.
func (_u *AdaptationEventUpdateOne) SetAvgResponseMs(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetAvgResponseMs()
	_u.mutation.SetAvgResponseMs(v)
	return _u
}

// SetNillableAvgResponseMs sets the "avg_response_ms" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableAvgResponseMs(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetAvgResponseMs(*v)
	}
	return _u
}

// AddAvgResponseMs adds value to the "avg_response_ms" field.
func (_u *AdaptationEventUpdateOne) AddAvgResponseMs(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddAvgResponseMs(v)
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdateOne) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdateOne) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdaptationEventUpdateOne) Select(field string, fields ...string) *AdaptationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdaptationEvent entity.
func (_u *AdaptationEventUpdateOne) Save(ctx context.Context) (*AdaptationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) SaveX(ctx context.Context) *AdaptationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdaptationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := adaptationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := adaptationevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := adaptationevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdateOne) sqlSave(ctx context.Context) (_node *AdaptationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdaptationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adaptationevent.FieldID)
		for _, f := range fields {
			if !adaptationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adaptationevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(adaptationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(adaptationevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupNumber(); ok {
		_spec.SetField(adaptationevent.FieldGroupNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGroupNumber(); ok {
		_spec.AddField(adaptationevent.FieldGroupNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(adaptationevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldFromDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldFromDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FromVisualLevel(); ok {
		_spec.SetField(adaptationevent.FieldFromVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromVisualLevel(); ok {
		_spec.AddField(adaptationevent.FieldFromVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldToDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldToDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToVisualLevel(); ok {
		_spec.SetField(adaptationevent.FieldToVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToVisualLevel(); ok {
		_spec.AddField(adaptationevent.FieldToVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(adaptationevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(adaptationevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GroupSize(); ok {
		_spec.SetField(adaptationevent.FieldGroupSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGroupSize(); ok {
		_spec.AddField(adaptationevent.FieldGroupSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgResponseMs(); ok {
		_spec.SetField(adaptationevent.FieldAvgResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseMs(); ok {
		_spec.AddField(adaptationevent.FieldAvgResponseMs, field.TypeInt, value)
	}
	_node = &AdaptationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
