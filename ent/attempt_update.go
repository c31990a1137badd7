// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathspiral/mathspiral/ent/attempt"
	"github.com/mathspiral/mathspiral/ent/predicate"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptUpdate) SetSessionID(v string) *AttemptUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSessionID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *AttemptUpdate) SetSkillID(v string) *AttemptUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSkillID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetGroupNumber sets the "group_number" field.
func (_u *AttemptUpdate) SetGroupNumber(v int) *AttemptUpdate {
	_u.mutation.ResetGroupNumber()
	_u.mutation.SetGroupNumber(v)
	return _u
}

// SetNillableGroupNumber sets the "group_number" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableGroupNumber(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetGroupNumber(*v)
	}
	return _u
}

// AddGroupNumber adds value to the "group_number" field.
func (_u *AttemptUpdate) AddGroupNumber(v int) *AttemptUpdate {
	_u.mutation.AddGroupNumber(v)
	return _u
}

// SetSeqInSession sets the "seq_in_session" field.
func (_u *AttemptUpdate) SetSeqInSession(v int) *AttemptUpdate {
	_u.mutation.ResetSeqInSession()
	_u.mutation.SetSeqInSession(v)
	return _u
}

// SetNillableSeqInSession sets the "seq_in_session" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSeqInSession(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetSeqInSession(*v)
	}
	return _u
}

// AddSeqInSession adds value to the "seq_in_session" field.
func (_u *AttemptUpdate) AddSeqInSession(v int) *AttemptUpdate {
	_u.mutation.AddSeqInSession(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AttemptUpdate) SetPrompt(v string) *AttemptUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillablePrompt(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AttemptUpdate) SetCorrectAnswer(v string) *AttemptUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCorrectAnswer(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetGivenAnswer sets the "given_answer" field.
func (_u *AttemptUpdate) SetGivenAnswer(v string) *AttemptUpdate {
	_u.mutation.SetGivenAnswer(v)
	return _u
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableGivenAnswer(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetGivenAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptUpdate) SetCorrect(v bool) *AttemptUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCorrect(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AttemptUpdate) SetResponseTimeMs(v int) *AttemptUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableResponseTimeMs(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AttemptUpdate) AddResponseTimeMs(v int) *AttemptUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptUpdate) SetDifficulty(v int) *AttemptUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableDifficulty(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AttemptUpdate) AddDifficulty(v int) *AttemptUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetVisualLevel sets the "visual_level" field.
func (_u *AttemptUpdate) SetVisualLevel(v int) *AttemptUpdate {
	_u.mutation.ResetVisualLevel()
	_u.mutation.SetVisualLevel(v)
	return _u
}

// SetNillableVisualLevel sets the "visual_level" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableVisualLevel(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetVisualLevel(*v)
	}
	return _u
}

// AddVisualLevel adds value to the "visual_level" field.
func (_u *AttemptUpdate) AddVisualLevel(v int) *AttemptUpdate {
	_u.mutation.AddVisualLevel(v)
	return _u
}

// SetFactKey sets the "fact_key" field.
func (_u *AttemptUpdate) SetFactKey(v string) *AttemptUpdate {
	_u.mutation.SetFactKey(v)
	return _u
}

// SetNillableFactKey sets the "fact_key" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableFactKey(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetFactKey(*v)
	}
	return _u
}

// ClearFactKey clears the value of the "fact_key" field.
func (_u *AttemptUpdate) ClearFactKey() *AttemptUpdate {
	_u.mutation.ClearFactKey()
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := attempt.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := attempt.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Attempt.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := attempt.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Attempt.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GivenAnswer(); ok {
		if err := attempt.GivenAnswerValidator(v); err != nil {
			return &ValidationError{Name: "given_answer", err: fmt.Errorf(`ent: validator failed for field "Attempt.given_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(attempt.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupNumber(); ok {
		_spec.SetField(attempt.FieldGroupNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGroupNumber(); ok {
		_spec.AddField(attempt.FieldGroupNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeqInSession(); ok {
		_spec.SetField(attempt.FieldSeqInSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeqInSession(); ok {
		_spec.AddField(attempt.FieldSeqInSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(attempt.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(attempt.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.GivenAnswer(); ok {
		_spec.SetField(attempt.FieldGivenAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attempt.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attempt.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(attempt.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attempt.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(attempt.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VisualLevel(); ok {
		_spec.SetField(attempt.FieldVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVisualLevel(); ok {
		_spec.AddField(attempt.FieldVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FactKey(); ok {
		_spec.SetField(attempt.FieldFactKey, field.TypeString, value)
	}
	if _u.mutation.FactKeyCleared() {
		_spec.ClearField(attempt.FieldFactKey, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptUpdateOne) SetSessionID(v string) *AttemptUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSessionID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *AttemptUpdateOne) SetSkillID(v string) *AttemptUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSkillID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetGroupNumber sets the "group_number" field.
func (_u *AttemptUpdateOne) SetGroupNumber(v int) *AttemptUpdateOne {
	_u.mutation.ResetGroupNumber()
	_u.mutation.SetGroupNumber(v)
	return _u
}

// SetNillableGroupNumber sets the "group_number" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableGroupNumber(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetGroupNumber(*v)
	}
	return _u
}

// AddGroupNumber adds value to the "group_number" field.
func (_u *AttemptUpdateOne) AddGroupNumber(v int) *AttemptUpdateOne {
	_u.mutation.AddGroupNumber(v)
	return _u
}

// SetSeqInSession sets the "seq_in_session" field.
func (_u *AttemptUpdateOne) SetSeqInSession(v int) *AttemptUpdateOne {
	_u.mutation.ResetSeqInSession()
	_u.mutation.SetSeqInSession(v)
	return _u
}

// SetNillableSeqInSession sets the "seq_in_session" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSeqInSession(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetSeqInSession(*v)
	}
	return _u
}

// AddSeqInSession adds value to the "seq_in_session" field.
func (_u *AttemptUpdateOne) AddSeqInSession(v int) *AttemptUpdateOne {
	_u.mutation.AddSeqInSession(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AttemptUpdateOne) SetPrompt(v string) *AttemptUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillablePrompt(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AttemptUpdateOne) SetCorrectAnswer(v string) *AttemptUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCorrectAnswer(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetGivenAnswer sets the "given_answer" field.
func (_u *AttemptUpdateOne) SetGivenAnswer(v string) *AttemptUpdateOne {
	_u.mutation.SetGivenAnswer(v)
	return _u
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableGivenAnswer(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetGivenAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptUpdateOne) SetCorrect(v bool) *AttemptUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCorrect(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AttemptUpdateOne) SetResponseTimeMs(v int) *AttemptUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableResponseTimeMs(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AttemptUpdateOne) AddResponseTimeMs(v int) *AttemptUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptUpdateOne) SetDifficulty(v int) *AttemptUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableDifficulty(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AttemptUpdateOne) AddDifficulty(v int) *AttemptUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetVisualLevel sets the "visual_level" field.
func (_u *AttemptUpdateOne) SetVisualLevel(v int) *AttemptUpdateOne {
	_u.mutation.ResetVisualLevel()
	_u.mutation.SetVisualLevel(v)
	return _u
}

// SetNillableVisualLevel sets the "visual_level" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableVisualLevel(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetVisualLevel(*v)
	}
	return _u
}

// AddVisualLevel adds value to the "visual_level" field.
func (_u *AttemptUpdateOne) AddVisualLevel(v int) *AttemptUpdateOne {
	_u.mutation.AddVisualLevel(v)
	return _u
}

// SetFactKey sets the "fact_key" field.
func (_u *AttemptUpdateOne) SetFactKey(v string) *AttemptUpdateOne {
	_u.mutation.SetFactKey(v)
	return _u
}

// SetNillableFactKey sets the "fact_key" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableFactKey(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetFactKey(*v)
	}
	return _u
}

// ClearFactKey clears the value of the "fact_key" field.
func (_u *AttemptUpdateOne) ClearFactKey() *AttemptUpdateOne {
	_u.mutation.ClearFactKey()
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := attempt.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := attempt.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Attempt.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := attempt.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Attempt.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GivenAnswer(); ok {
		if err := attempt.GivenAnswerValidator(v); err != nil {
			return &ValidationError{Name: "given_answer", err: fmt.Errorf(`ent: validator failed for field "Attempt.given_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
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
		_spec.SetField(attempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(attempt.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupNumber(); ok {
		_spec.SetField(attempt.FieldGroupNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGroupNumber(); ok {
		_spec.AddField(attempt.FieldGroupNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeqInSession(); ok {
		_spec.SetField(attempt.FieldSeqInSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeqInSession(); ok {
		_spec.AddField(attempt.FieldSeqInSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(attempt.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(attempt.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.GivenAnswer(); ok {
		_spec.SetField(attempt.FieldGivenAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attempt.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attempt.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(attempt.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attempt.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(attempt.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VisualLevel(); ok {
		_spec.SetField(attempt.FieldVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVisualLevel(); ok {
		_spec.AddField(attempt.FieldVisualLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FactKey(); ok {
		_spec.SetField(attempt.FieldFactKey, field.TypeString, value)
	}
	if _u.mutation.FactKeyCleared() {
		_spec.ClearField(attempt.FieldFactKey, field.TypeString)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
