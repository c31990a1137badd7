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
	"github.com/mathspiral/mathspiral/ent/practicesession"
	"github.com/mathspiral/mathspiral/ent/predicate"
)

// PracticeSessionUpdate is the builder for updating PracticeSession entities.
type PracticeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdate) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *PracticeSessionUpdate) SetSkillID(v string) *PracticeSessionUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableSkillID(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PracticeSessionUpdate) SetStatus(v string) *PracticeSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableStatus(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PracticeSessionUpdate) SetCompletedAt(v time.Time) *PracticeSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableCompletedAt(v *time.Time) *PracticeSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PracticeSessionUpdate) ClearCompletedAt() *PracticeSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStartDifficulty sets the "start_difficulty" field.
func (_u *PracticeSessionUpdate) SetStartDifficulty(v int) *PracticeSessionUpdate {
	_u.mutation.ResetStartDifficulty()
	_u.mutation.SetStartDifficulty(v)
	return _u
}

// SetNillableStartDifficulty sets the "start_difficulty" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableStartDifficulty(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetStartDifficulty(*v)
	}
	return _u
}

// AddStartDifficulty adds value to the "start_difficulty" field.
func (_u *PracticeSessionUpdate) AddStartDifficulty(v int) *PracticeSessionUpdate {
	_u.mutation.AddStartDifficulty(v)
	return _u
}

// SetStartVisualLevel sets the "start_visual_level" field.
func (_u *PracticeSessionUpdate) SetStartVisualLevel(v int) *PracticeSessionUpdate {
	_u.mutation.ResetStartVisualLevel()
	_u.mutation.SetStartVisualLevel(v)
	return _u
}

// SetNillableStartVisualLevel sets the "start_visual_level" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableStartVisualLevel(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetStartVisualLevel(*v)
	}
	return _u
}

// AddStartVisualLevel adds value to the "start_visual_level" field.
func (_u *PracticeSessionUpdate) AddStartVisualLevel(v int) *PracticeSessionUpdate {
	_u.mutation.AddStartVisualLevel(v)
	return _u
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (_u *PracticeSessionUpdate) SetFinalDifficulty(v int) *PracticeSessionUpdate {
	_u.mutation.ResetFinalDifficulty()
	_u.mutation.SetFinalDifficulty(v)
	return _u
}

// SetNillableFinalDifficulty sets the "final_difficulty" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableFinalDifficulty(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetFinalDifficulty(*v)
	}
	return _u
}

// AddFinalDifficulty adds value to the "final_difficulty" field.
func (_u *PracticeSessionUpdate) AddFinalDifficulty(v int) *PracticeSessionUpdate {
	_u.mutation.AddFinalDifficulty(v)
	return _u
}

// SetFinalVisualLevel sets the "final_visual_level" field.
func (_u *PracticeSessionUpdate) SetFinalVisualLevel(v int) *PracticeSessionUpdate {
	_u.mutation.ResetFinalVisualLevel()
	_u.mutation.SetFinalVisualLevel(v)
	return _u
}

// SetNillableFinalVisualLevel sets the "final_visual_level" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableFinalVisualLevel(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetFinalVisualLevel(*v)
	}
	return _u
}

// AddFinalVisualLevel adds value to the "final_visual_level" field.
func (_u *PracticeSessionUpdate) AddFinalVisualLevel(v int) *PracticeSessionUpdate {
	_u.mutation.AddFinalVisualLevel(v)
	return _u
}

// SetTotalProblems sets the "total_problems" field.
func (_u *PracticeSessionUpdate) SetTotalProblems(v int) *PracticeSessionUpdate {
	_u.mutation.ResetTotalProblems()
	_u.mutation.SetTotalProblems(v)
	return _u
}

// SetNillableTotalProblems sets the "total_problems" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableTotalProblems(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetTotalProblems(*v)
	}
	return _u
}

// AddTotalProblems adds value to the "total_problems" field.
func (_u *PracticeSessionUpdate) AddTotalProblems(v int) *PracticeSessionUpdate {
	_u.mutation.AddTotalProblems(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *PracticeSessionUpdate) SetCorrectCount(v int) *PracticeSessionUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableCorrectCount(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *PracticeSessionUpdate) AddCorrectCount(v int) *PracticeSessionUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetAvgResponseMs sets the "avg_response_ms" field.
func (_u *PracticeSessionUpdate) SetAvgResponseMs(v int) *PracticeSessionUpdate {
	_u.mutation.ResetAvgResponseMs()
	_u.mutation.SetAvgResponseMs(v)
	return _u
}

// SetNillableAvgResponseMs sets the "avg_response_ms" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableAvgResponseMs(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetAvgResponseMs(*v)
	}
	return _u
}

// AddAvgResponseMs adds value to the "avg_response_ms" field.
func (_u *PracticeSessionUpdate) AddAvgResponseMs(v int) *PracticeSessionUpdate {
	_u.mutation.AddAvgResponseMs(v)
	return _u
}

// SetMaxDifficulty sets the "max_difficulty" field.
func (_u *PracticeSessionUpdate) SetMaxDifficulty(v int) *PracticeSessionUpdate {
	_u.mutation.ResetMaxDifficulty()
	_u.mutation.SetMaxDifficulty(v)
	return _u
}

// SetNillableMaxDifficulty sets the "max_difficulty" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableMaxDifficulty(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetMaxDifficulty(*v)
	}
	return _u
}

// AddMaxDifficulty adds value to the "max_difficulty" field.
func (_u *PracticeSessionUpdate) AddMaxDifficulty(v int) *PracticeSessionUpdate {
	_u.mutation.AddMaxDifficulty(v)
	return _u
}

// SetTopTierCompleted sets the "top_tier_completed" field.
func (_u *PracticeSessionUpdate) SetTopTierCompleted(v bool) *PracticeSessionUpdate {
	_u.mutation.SetTopTierCompleted(v)
	return _u
}

// SetNillableTopTierCompleted sets the "top_tier_completed" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableTopTierCompleted(v *bool) *PracticeSessionUpdate {
	if v != nil {
		_u.SetTopTierCompleted(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *PracticeSessionUpdate) SetDurationSecs(v int) *PracticeSessionUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableDurationSecs(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *PracticeSessionUpdate) AddDurationSecs(v int) *PracticeSessionUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdate) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdate) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := practicesession.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.skill_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(practicesession.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(practicesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(practicesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(practicesession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartDifficulty(); ok {
		_spec.SetField(practicesession.FieldStartDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartDifficulty(); ok {
		_spec.AddField(practicesession.FieldStartDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartVisualLevel(); ok {
		_spec.SetField(practicesession.FieldStartVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartVisualLevel(); ok {
		_spec.AddField(practicesession.FieldStartVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalDifficulty(); ok {
		_spec.SetField(practicesession.FieldFinalDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalDifficulty(); ok {
		_spec.AddField(practicesession.FieldFinalDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalVisualLevel(); ok {
		_spec.SetField(practicesession.FieldFinalVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalVisualLevel(); ok {
		_spec.AddField(practicesession.FieldFinalVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalProblems(); ok {
		_spec.SetField(practicesession.FieldTotalProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalProblems(); ok {
		_spec.AddField(practicesession.FieldTotalProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(practicesession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(practicesession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgResponseMs(); ok {
		_spec.SetField(practicesession.FieldAvgResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseMs(); ok {
		_spec.AddField(practicesession.FieldAvgResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDifficulty(); ok {
		_spec.SetField(practicesession.FieldMaxDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDifficulty(); ok {
		_spec.AddField(practicesession.FieldMaxDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopTierCompleted(); ok {
		_spec.SetField(practicesession.FieldTopTierCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(practicesession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(practicesession.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeSessionUpdateOne is the builder for updating a single PracticeSession entity.
type PracticeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// SetSkillID sets the "skill_id" field.
func (_u *PracticeSessionUpdateOne) SetSkillID(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableSkillID(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PracticeSessionUpdateOne) SetStatus(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableStatus(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PracticeSessionUpdateOne) SetCompletedAt(v time.Time) *PracticeSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PracticeSessionUpdateOne) ClearCompletedAt() *PracticeSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStartDifficulty sets the "start_difficulty" field.
func (_u *PracticeSessionUpdateOne) SetStartDifficulty(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetStartDifficulty()
	_u.mutation.SetStartDifficulty(v)
	return _u
}

// SetNillableStartDifficulty sets the "start_difficulty" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableStartDifficulty(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetStartDifficulty(*v)
	}
	return _u
}

// AddStartDifficulty adds value to the "start_difficulty" field.
func (_u *PracticeSessionUpdateOne) AddStartDifficulty(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddStartDifficulty(v)
	return _u
}

// SetStartVisualLevel sets the "start_visual_level" field.
func (_u *PracticeSessionUpdateOne) SetStartVisualLevel(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetStartVisualLevel()
	_u.mutation.SetStartVisualLevel(v)
	return _u
}

// SetNillableStartVisualLevel sets the "start_visual_level" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableStartVisualLevel(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetStartVisualLevel(*v)
	}
	return _u
}

// AddStartVisualLevel adds value to the "start_visual_level" field.
func (_u *PracticeSessionUpdateOne) AddStartVisualLevel(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddStartVisualLevel(v)
	return _u
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (_u *PracticeSessionUpdateOne) SetFinalDifficulty(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetFinalDifficulty()
	_u.mutation.SetFinalDifficulty(v)
	return _u
}

// SetNillableFinalDifficulty sets the "final_difficulty" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableFinalDifficulty(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetFinalDifficulty(*v)
	}
	return _u
}

// AddFinalDifficulty adds value to the "final_difficulty" field.
func (_u *PracticeSessionUpdateOne) AddFinalDifficulty(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddFinalDifficulty(v)
	return _u
}

// SetFinalVisualLevel sets the "final_visual_level" field.
func (_u *PracticeSessionUpdateOne) SetFinalVisualLevel(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetFinalVisualLevel()
	_u.mutation.SetFinalVisualLevel(v)
	return _u
}

// SetNillableFinalVisualLevel sets the "final_visual_level" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableFinalVisualLevel(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetFinalVisualLevel(*v)
	}
	return _u
}

// AddFinalVisualLevel adds value to the "final_visual_level" field.
func (_u *PracticeSessionUpdateOne) AddFinalVisualLevel(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddFinalVisualLevel(v)
	return _u
}

// SetTotalProblems sets the "total_problems" field.
func (_u *PracticeSessionUpdateOne) SetTotalProblems(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetTotalProblems()
	_u.mutation.SetTotalProblems(v)
	return _u
}

// SetNillableTotalProblems sets the "total_problems" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableTotalProblems(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetTotalProblems(*v)
	}
	return _u
}

// AddTotalProblems adds value to the "total_problems" field.
func (_u *PracticeSessionUpdateOne) AddTotalProblems(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddTotalProblems(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *PracticeSessionUpdateOne) SetCorrectCount(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableCorrectCount(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *PracticeSessionUpdateOne) AddCorrectCount(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetAvgResponseMs sets the "avg_response_ms" field.
func (_u *PracticeSessionUpdateOne) SetAvgResponseMs(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetAvgResponseMs()
	_u.mutation.SetAvgResponseMs(v)
	return _u
}

// SetNillableAvgResponseMs sets the "avg_response_ms" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableAvgResponseMs(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetAvgResponseMs(*v)
	}
	return _u
}

// AddAvgResponseMs adds value to the "avg_response_ms" field.
func (_u *PracticeSessionUpdateOne) AddAvgResponseMs(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddAvgResponseMs(v)
	return _u
}

// SetMaxDifficulty sets the "max_difficulty" field.
func (_u *PracticeSessionUpdateOne) SetMaxDifficulty(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetMaxDifficulty()
	_u.mutation.SetMaxDifficulty(v)
	return _u
}

// SetNillableMaxDifficulty sets the "max_difficulty" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableMaxDifficulty(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetMaxDifficulty(*v)
	}
	return _u
}

// AddMaxDifficulty adds value to the "max_difficulty" field.
func (_u *PracticeSessionUpdateOne) AddMaxDifficulty(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddMaxDifficulty(v)
	return _u
}

// SetTopTierCompleted sets the "top_tier_completed" field.
func (_u *PracticeSessionUpdateOne) SetTopTierCompleted(v bool) *PracticeSessionUpdateOne {
	_u.mutation.SetTopTierCompleted(v)
	return _u
}

// SetNillableTopTierCompleted sets the "top_tier_completed" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableTopTierCompleted(v *bool) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetTopTierCompleted(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *PracticeSessionUpdateOne) SetDurationSecs(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableDurationSecs(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *PracticeSessionUpdateOne) AddDurationSecs(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdateOne) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdateOne) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeSessionUpdateOne) Select(field string, fields ...string) *PracticeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeSession entity.
func (_u *PracticeSessionUpdateOne) Save(ctx context.Context) (*PracticeSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) SaveX(ctx context.Context) *PracticeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdateOne) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := practicesession.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.skill_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesession.FieldID)
		for _, f := range fields {
			if !practicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesession.FieldID {
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
		_spec.SetField(practicesession.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(practicesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(practicesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(practicesession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartDifficulty(); ok {
		_spec.SetField(practicesession.FieldStartDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartDifficulty(); ok {
		_spec.AddField(practicesession.FieldStartDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartVisualLevel(); ok {
		_spec.SetField(practicesession.FieldStartVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartVisualLevel(); ok {
		_spec.AddField(practicesession.FieldStartVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalDifficulty(); ok {
		_spec.SetField(practicesession.FieldFinalDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalDifficulty(); ok {
		_spec.AddField(practicesession.FieldFinalDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalVisualLevel(); ok {
		_spec.SetField(practicesession.FieldFinalVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalVisualLevel(); ok {
		_spec.AddField(practicesession.FieldFinalVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalProblems(); ok {
		_spec.SetField(practicesession.FieldTotalProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalProblems(); ok {
		_spec.AddField(practicesession.FieldTotalProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(practicesession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(practicesession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgResponseMs(); ok {
		_spec.SetField(practicesession.FieldAvgResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseMs(); ok {
		_spec.AddField(practicesession.FieldAvgResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDifficulty(); ok {
		_spec.SetField(practicesession.FieldMaxDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDifficulty(); ok {
		_spec.AddField(practicesession.FieldMaxDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopTierCompleted(); ok {
		_spec.SetField(practicesession.FieldTopTierCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(practicesession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(practicesession.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &PracticeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
