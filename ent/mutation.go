// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mathspiral/mathspiral/ent/adaptationevent"
	"github.com/mathspiral/mathspiral/ent/attempt"
	"github.com/mathspiral/mathspiral/ent/factmastery"
	"github.com/mathspiral/mathspiral/ent/practicesession"
	"github.com/mathspiral/mathspiral/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdaptationEvent = "AdaptationEvent"
	TypeAttempt         = "Attempt"
	TypeFactMastery     = "FactMastery"
	TypePracticeSession = "PracticeSession"
)

// AdaptationEventMutation represents an operation that mutates the AdaptationEvent nodes in the graph.
type AdaptationEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	sequence             *int64
	addsequence          *int64
	timestamp            *time.Time
	session_id           *string
	skill_id             *string
	group_number         *int
	addgroup_number      *int
	outcome              *string
	reason               *string
	from_difficulty      *int
	addfrom_difficulty   *int
	from_visual_level    *int
	addfrom_visual_level *int
	to_difficulty        *int
	addto_difficulty     *int
	to_visual_level      *int
	addto_visual_level   *int
	correct_count        *int
	addcorrect_count     *int
	group_size           *int
	addgroup_size        *int
	avg_response_ms      *int
	addavg_response_ms   *int
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*AdaptationEvent, error)
	predicates           []predicate.AdaptationEvent
}

var _ ent.Mutation = (*AdaptationEventMutation)(nil)

// adaptationeventOption allows management of the mutation configuration using functional options.
type adaptationeventOption func(*AdaptationEventMutation)

// newAdaptationEventMutation creates new mutation for the AdaptationEvent entity.
func newAdaptationEventMutation(c config, op Op, opts ...adaptationeventOption) *AdaptationEventMutation {
	m := &AdaptationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAdaptationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdaptationEventID sets the ID field of the mutation.
func withAdaptationEventID(id int) adaptationeventOption {
	return func(m *AdaptationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AdaptationEvent
		)
		m.oldValue = func(ctx context.Context) (*AdaptationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdaptationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdaptationEvent sets the old AdaptationEvent of the mutation.
func withAdaptationEvent(node *AdaptationEvent) adaptationeventOption {
	return func(m *AdaptationEventMutation) {
		m.oldValue = func(context.Context) (*AdaptationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdaptationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdaptationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdaptationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdaptationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdaptationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AdaptationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AdaptationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AdaptationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AdaptationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AdaptationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AdaptationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AdaptationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AdaptationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *AdaptationEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AdaptationEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AdaptationEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *AdaptationEventMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *AdaptationEventMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *AdaptationEventMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetGroupNumber sets the "group_number" field.
func (m *AdaptationEventMutation) SetGroupNumber(i int) {
	m.group_number = &i
	m.addgroup_number = nil
}

// GroupNumber returns the value of the "group_number" field in the mutation.
func (m *AdaptationEventMutation) GroupNumber() (r int, exists bool) {
	v := m.group_number
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupNumber returns the old "group_number" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldGroupNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupNumber: %w", err)
	}
	return oldValue.GroupNumber, nil
}

// AddGroupNumber adds i to the "group_number" field.
func (m *AdaptationEventMutation) AddGroupNumber(i int) {
	if m.addgroup_number != nil {
		*m.addgroup_number += i
	} else {
		m.addgroup_number = &i
	}
}

// AddedGroupNumber returns the value that was added to the "group_number" field in this mutation.
func (m *AdaptationEventMutation) AddedGroupNumber() (r int, exists bool) {
	v := m.addgroup_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetGroupNumber resets all changes to the "group_number" field.
func (m *AdaptationEventMutation) ResetGroupNumber() {
	m.group_number = nil
	m.addgroup_number = nil
}

// SetOutcome sets the "outcome" field.
func (m *AdaptationEventMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *AdaptationEventMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *AdaptationEventMutation) ResetOutcome() {
	m.outcome = nil
}

// SetReason sets the "reason" field.
func (m *AdaptationEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AdaptationEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *AdaptationEventMutation) ResetReason() {
	m.reason = nil
}

// SetFromDifficulty sets the "from_difficulty" field.
func (m *AdaptationEventMutation) SetFromDifficulty(i int) {
	m.from_difficulty = &i
	m.addfrom_difficulty = nil
}

// FromDifficulty returns the value of the "from_difficulty" field in the mutation.
func (m *AdaptationEventMutation) FromDifficulty() (r int, exists bool) {
	v := m.from_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldFromDifficulty returns the old "from_difficulty" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldFromDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromDifficulty: %w", err)
	}
	return oldValue.FromDifficulty, nil
}

// AddFromDifficulty adds i to the "from_difficulty" field.
func (m *AdaptationEventMutation) AddFromDifficulty(i int) {
	if m.addfrom_difficulty != nil {
		*m.addfrom_difficulty += i
	} else {
		m.addfrom_difficulty = &i
	}
}

// AddedFromDifficulty returns the value that was added to the "from_difficulty" field in this mutation.
func (m *AdaptationEventMutation) AddedFromDifficulty() (r int, exists bool) {
	v := m.addfrom_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetFromDifficulty resets all changes to the "from_difficulty" field.
func (m *AdaptationEventMutation) ResetFromDifficulty() {
	m.from_difficulty = nil
	m.addfrom_difficulty = nil
}

// SetFromVisualLevel sets the "from_visual_level" field.
func (m *AdaptationEventMutation) SetFromVisualLevel(i int) {
	m.from_visual_level = &i
	m.addfrom_visual_level = nil
}

// FromVisualLevel returns the value of the "from_visual_level" field in the mutation.
func (m *AdaptationEventMutation) FromVisualLevel() (r int, exists bool) {
	v := m.from_visual_level
	if v == nil {
		return
	}
	return *v, true
}

// OldFromVisualLevel returns the old "from_visual_level" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldFromVisualLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromVisualLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromVisualLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromVisualLevel: %w", err)
	}
	return oldValue.FromVisualLevel, nil
}

// AddFromVisualLevel adds i to the "from_visual_level" field.
func (m *AdaptationEventMutation) AddFromVisualLevel(i int) {
	if m.addfrom_visual_level != nil {
		*m.addfrom_visual_level += i
	} else {
		m.addfrom_visual_level = &i
	}
}

// AddedFromVisualLevel returns the value that was added to the "from_visual_level" field in this mutation.
func (m *AdaptationEventMutation) AddedFromVisualLevel() (r int, exists bool) {
	v := m.addfrom_visual_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetFromVisualLevel resets all changes to the "from_visual_level" field.
func (m *AdaptationEventMutation) ResetFromVisualLevel() {
	m.from_visual_level = nil
	m.addfrom_visual_level = nil
}

// SetToDifficulty sets the "to_difficulty" field.
func (m *AdaptationEventMutation) SetToDifficulty(i int) {
	m.to_difficulty = &i
	m.addto_difficulty = nil
}

// ToDifficulty returns the value of the "to_difficulty" field in the mutation.
func (m *AdaptationEventMutation) ToDifficulty() (r int, exists bool) {
	v := m.to_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldToDifficulty returns the old "to_difficulty" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldToDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToDifficulty: %w", err)
	}
	return oldValue.ToDifficulty, nil
}

// AddToDifficulty adds i to the "to_difficulty" field.
func (m *AdaptationEventMutation) AddToDifficulty(i int) {
	if m.addto_difficulty != nil {
		*m.addto_difficulty += i
	} else {
		m.addto_difficulty = &i
	}
}

// AddedToDifficulty returns the value that was added to the "to_difficulty" field in this mutation.
func (m *AdaptationEventMutation) AddedToDifficulty() (r int, exists bool) {
	v := m.addto_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetToDifficulty resets all changes to the "to_difficulty" field.
func (m *AdaptationEventMutation) ResetToDifficulty() {
	m.to_difficulty = nil
	m.addto_difficulty = nil
}

// SetToVisualLevel sets the "to_visual_level" field.
func (m *AdaptationEventMutation) SetToVisualLevel(i int) {
	m.to_visual_level = &i
	m.addto_visual_level = nil
}

// ToVisualLevel returns the value of the "to_visual_level" field in the mutation.
func (m *AdaptationEventMutation) ToVisualLevel() (r int, exists bool) {
	v := m.to_visual_level
	if v == nil {
		return
	}
	return *v, true
}

// OldToVisualLevel returns the old "to_visual_level" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldToVisualLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToVisualLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToVisualLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToVisualLevel: %w", err)
	}
	return oldValue.ToVisualLevel, nil
}

// AddToVisualLevel adds i to the "to_visual_level" field.
func (m *AdaptationEventMutation) AddToVisualLevel(i int) {
	if m.addto_visual_level != nil {
		*m.addto_visual_level += i
	} else {
		m.addto_visual_level = &i
	}
}

// AddedToVisualLevel returns the value that was added to the "to_visual_level" field in this mutation.
func (m *AdaptationEventMutation) AddedToVisualLevel() (r int, exists bool) {
	v := m.addto_visual_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetToVisualLevel resets all changes to the "to_visual_level" field.
func (m *AdaptationEventMutation) ResetToVisualLevel() {
	m.to_visual_level = nil
	m.addto_visual_level = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *AdaptationEventMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *AdaptationEventMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *AdaptationEventMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *AdaptationEventMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *AdaptationEventMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetGroupSize sets the "group_size" field.
func (m *AdaptationEventMutation) SetGroupSize(i int) {
	m.group_size = &i
	m.addgroup_size = nil
}

// GroupSize returns the value of the "group_size" field in the mutation.
func (m *AdaptationEventMutation) GroupSize() (r int, exists bool) {
	v := m.group_size
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupSize returns the old "group_size" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldGroupSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupSize: %w", err)
	}
	return oldValue.GroupSize, nil
}

// AddGroupSize adds i to the "group_size" field.
func (m *AdaptationEventMutation) AddGroupSize(i int) {
	if m.addgroup_size != nil {
		*m.addgroup_size += i
	} else {
		m.addgroup_size = &i
	}
}

// AddedGroupSize returns the value that was added to the "group_size" field in this mutation.
func (m *AdaptationEventMutation) AddedGroupSize() (r int, exists bool) {
	v := m.addgroup_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetGroupSize resets all changes to the "group_size" field.
func (m *AdaptationEventMutation) ResetGroupSize() {
	m.group_size = nil
	m.addgroup_size = nil
}

// SetAvgResponseMs sets the "avg_response_ms" field.
func (m *AdaptationEventMutation) SetAvgResponseMs(i int) {
	m.avg_response_ms = &i
	m.addavg_response_ms = nil
}

// AvgResponseMs returns the value of the "avg_response_ms" field in the mutation.
func (m *AdaptationEventMutation) AvgResponseMs() (r int, exists bool) {
	v := m.avg_response_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgResponseMs returns the old "avg_response_ms" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldAvgResponseMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgResponseMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgResponseMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgResponseMs: %w", err)
	}
	return oldValue.AvgResponseMs, nil
}

// AddAvgResponseMs adds i to the "avg_response_ms" field.
func (m *AdaptationEventMutation) AddAvgResponseMs(i int) {
	if m.addavg_response_ms != nil {
		*m.addavg_response_ms += i
	} else {
		m.addavg_response_ms = &i
	}
}

// AddedAvgResponseMs returns the value that was added to the "avg_response_ms" field in this mutation.
func (m *AdaptationEventMutation) AddedAvgResponseMs() (r int, exists bool) {
	v := m.addavg_response_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgResponseMs resets all changes to the "avg_response_ms" field.
func (m *AdaptationEventMutation) ResetAvgResponseMs() {
	m.avg_response_ms = nil
	m.addavg_response_ms = nil
}

// Where appends a list predicates to the AdaptationEventMutation builder.
func (m *AdaptationEventMutation) Where(ps ...predicate.AdaptationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdaptationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdaptationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdaptationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdaptationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdaptationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdaptationEvent).
func (m *AdaptationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdaptationEventMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.sequence != nil {
		fields = append(fields, adaptationevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, adaptationevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, adaptationevent.FieldSessionID)
	}
	if m.skill_id != nil {
		fields = append(fields, adaptationevent.FieldSkillID)
	}
	if m.group_number != nil {
		fields = append(fields, adaptationevent.FieldGroupNumber)
	}
	if m.outcome != nil {
		fields = append(fields, adaptationevent.FieldOutcome)
	}
	if m.reason != nil {
		fields = append(fields, adaptationevent.FieldReason)
	}
	if m.from_difficulty != nil {
		fields = append(fields, adaptationevent.FieldFromDifficulty)
	}
	if m.from_visual_level != nil {
		fields = append(fields, adaptationevent.FieldFromVisualLevel)
	}
	if m.to_difficulty != nil {
		fields = append(fields, adaptationevent.FieldToDifficulty)
	}
	if m.to_visual_level != nil {
		fields = append(fields, adaptationevent.FieldToVisualLevel)
	}
	if m.correct_count != nil {
		fields = append(fields, adaptationevent.FieldCorrectCount)
	}
	if m.group_size != nil {
		fields = append(fields, adaptationevent.FieldGroupSize)
	}
	if m.avg_response_ms != nil {
		fields = append(fields, adaptationevent.FieldAvgResponseMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdaptationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adaptationevent.FieldSequence:
		return m.Sequence()
	case adaptationevent.FieldTimestamp:
		return m.Timestamp()
	case adaptationevent.FieldSessionID:
		return m.SessionID()
	case adaptationevent.FieldSkillID:
		return m.SkillID()
	case adaptationevent.FieldGroupNumber:
		return m.GroupNumber()
	case adaptationevent.FieldOutcome:
		return m.Outcome()
	case adaptationevent.FieldReason:
		return m.Reason()
	case adaptationevent.FieldFromDifficulty:
		return m.FromDifficulty()
	case adaptationevent.FieldFromVisualLevel:
		return m.FromVisualLevel()
	case adaptationevent.FieldToDifficulty:
		return m.ToDifficulty()
	case adaptationevent.FieldToVisualLevel:
		return m.ToVisualLevel()
	case adaptationevent.FieldCorrectCount:
		return m.CorrectCount()
	case adaptationevent.FieldGroupSize:
		return m.GroupSize()
	case adaptationevent.FieldAvgResponseMs:
		return m.AvgResponseMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdaptationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adaptationevent.FieldSequence:
		return m.OldSequence(ctx)
	case adaptationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case adaptationevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case adaptationevent.FieldSkillID:
		return m.OldSkillID(ctx)
	case adaptationevent.FieldGroupNumber:
		return m.OldGroupNumber(ctx)
	case adaptationevent.FieldOutcome:
		return m.OldOutcome(ctx)
	case adaptationevent.FieldReason:
		return m.OldReason(ctx)
	case adaptationevent.FieldFromDifficulty:
		return m.OldFromDifficulty(ctx)
	case adaptationevent.FieldFromVisualLevel:
		return m.OldFromVisualLevel(ctx)
	case adaptationevent.FieldToDifficulty:
		return m.OldToDifficulty(ctx)
	case adaptationevent.FieldToVisualLevel:
		return m.OldToVisualLevel(ctx)
	case adaptationevent.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case adaptationevent.FieldGroupSize:
		return m.OldGroupSize(ctx)
	case adaptationevent.FieldAvgResponseMs:
		return m.OldAvgResponseMs(ctx)
	}
	return nil, fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdaptationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adaptationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case adaptationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case adaptationevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case adaptationevent.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case adaptationevent.FieldGroupNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupNumber(v)
		return nil
	case adaptationevent.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case adaptationevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case adaptationevent.FieldFromDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromDifficulty(v)
		return nil
	case adaptationevent.FieldFromVisualLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromVisualLevel(v)
		return nil
	case adaptationevent.FieldToDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToDifficulty(v)
		return nil
	case adaptationevent.FieldToVisualLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToVisualLevel(v)
		return nil
	case adaptationevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case adaptationevent.FieldGroupSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupSize(v)
		return nil
	case adaptationevent.FieldAvgResponseMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgResponseMs(v)
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdaptationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, adaptationevent.FieldSequence)
	}
	if m.addgroup_number != nil {
		fields = append(fields, adaptationevent.FieldGroupNumber)
	}
	if m.addfrom_difficulty != nil {
		fields = append(fields, adaptationevent.FieldFromDifficulty)
	}
	if m.addfrom_visual_level != nil {
		fields = append(fields, adaptationevent.FieldFromVisualLevel)
	}
	if m.addto_difficulty != nil {
		fields = append(fields, adaptationevent.FieldToDifficulty)
	}
	if m.addto_visual_level != nil {
		fields = append(fields, adaptationevent.FieldToVisualLevel)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, adaptationevent.FieldCorrectCount)
	}
	if m.addgroup_size != nil {
		fields = append(fields, adaptationevent.FieldGroupSize)
	}
	if m.addavg_response_ms != nil {
		fields = append(fields, adaptationevent.FieldAvgResponseMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdaptationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case adaptationevent.FieldSequence:
		return m.AddedSequence()
	case adaptationevent.FieldGroupNumber:
		return m.AddedGroupNumber()
	case adaptationevent.FieldFromDifficulty:
		return m.AddedFromDifficulty()
	case adaptationevent.FieldFromVisualLevel:
		return m.AddedFromVisualLevel()
	case adaptationevent.FieldToDifficulty:
		return m.AddedToDifficulty()
	case adaptationevent.FieldToVisualLevel:
		return m.AddedToVisualLevel()
	case adaptationevent.FieldCorrectCount:
		return m.AddedCorrectCount()
	case adaptationevent.FieldGroupSize:
		return m.AddedGroupSize()
	case adaptationevent.FieldAvgResponseMs:
		return m.AddedAvgResponseMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdaptationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case adaptationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case adaptationevent.FieldGroupNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGroupNumber(v)
		return nil
	case adaptationevent.FieldFromDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFromDifficulty(v)
		return nil
	case adaptationevent.FieldFromVisualLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFromVisualLevel(v)
		return nil
	case adaptationevent.FieldToDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToDifficulty(v)
		return nil
	case adaptationevent.FieldToVisualLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToVisualLevel(v)
		return nil
	case adaptationevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case adaptationevent.FieldGroupSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGroupSize(v)
		return nil
	case adaptationevent.FieldAvgResponseMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgResponseMs(v)
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdaptationEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdaptationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdaptationEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AdaptationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdaptationEventMutation) ResetField(name string) error {
	switch name {
	case adaptationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case adaptationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case adaptationevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case adaptationevent.FieldSkillID:
		m.ResetSkillID()
		return nil
	case adaptationevent.FieldGroupNumber:
		m.ResetGroupNumber()
		return nil
	case adaptationevent.FieldOutcome:
		m.ResetOutcome()
		return nil
	case adaptationevent.FieldReason:
		m.ResetReason()
		return nil
	case adaptationevent.FieldFromDifficulty:
		m.ResetFromDifficulty()
		return nil
	case adaptationevent.FieldFromVisualLevel:
		m.ResetFromVisualLevel()
		return nil
	case adaptationevent.FieldToDifficulty:
		m.ResetToDifficulty()
		return nil
	case adaptationevent.FieldToVisualLevel:
		m.ResetToVisualLevel()
		return nil
	case adaptationevent.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case adaptationevent.FieldGroupSize:
		m.ResetGroupSize()
		return nil
	case adaptationevent.FieldAvgResponseMs:
		m.ResetAvgResponseMs()
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdaptationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdaptationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdaptationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdaptationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdaptationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdaptationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdaptationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdaptationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdaptationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdaptationEvent edge %s", name)
}

// AttemptMutation represents an operation that mutates the Attempt nodes in the graph.
type AttemptMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	timestamp           *time.Time
	session_id          *string
	skill_id            *string
	group_number        *int
	addgroup_number     *int
	seq_in_session      *int
	addseq_in_session   *int
	prompt              *string
	correct_answer      *string
	given_answer        *string
	correct             *bool
	response_time_ms    *int
	addresponse_time_ms *int
	difficulty          *int
	adddifficulty       *int
	visual_level        *int
	addvisual_level     *int
	fact_key            *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Attempt, error)
	predicates          []predicate.Attempt
}

var _ ent.Mutation = (*AttemptMutation)(nil)

// attemptOption allows management of the mutation configuration using functional options.
type attemptOption func(*AttemptMutation)

// newAttemptMutation creates new mutation for the Attempt entity.
func newAttemptMutation(c config, op Op, opts ...attemptOption) *AttemptMutation {
	m := &AttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptID sets the ID field of the mutation.
func withAttemptID(id int) attemptOption {
	return func(m *AttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *Attempt
		)
		m.oldValue = func(ctx context.Context) (*Attempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttempt sets the old Attempt of the mutation.
func withAttempt(node *Attempt) attemptOption {
	return func(m *AttemptMutation) {
		m.oldValue = func(context.Context) (*Attempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttemptMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttemptMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttemptMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttemptMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttemptMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttemptMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *AttemptMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AttemptMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AttemptMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *AttemptMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *AttemptMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *AttemptMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetGroupNumber sets the "group_number" field.
func (m *AttemptMutation) SetGroupNumber(i int) {
	m.group_number = &i
	m.addgroup_number = nil
}

// GroupNumber returns the value of the "group_number" field in the mutation.
func (m *AttemptMutation) GroupNumber() (r int, exists bool) {
	v := m.group_number
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupNumber returns the old "group_number" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldGroupNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupNumber: %w", err)
	}
	return oldValue.GroupNumber, nil
}

// AddGroupNumber adds i to the "group_number" field.
func (m *AttemptMutation) AddGroupNumber(i int) {
	if m.addgroup_number != nil {
		*m.addgroup_number += i
	} else {
		m.addgroup_number = &i
	}
}

// AddedGroupNumber returns the value that was added to the "group_number" field in this mutation.
func (m *AttemptMutation) AddedGroupNumber() (r int, exists bool) {
	v := m.addgroup_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetGroupNumber resets all changes to the "group_number" field.
func (m *AttemptMutation) ResetGroupNumber() {
	m.group_number = nil
	m.addgroup_number = nil
}

// SetSeqInSession sets the "seq_in_session" field.
func (m *AttemptMutation) SetSeqInSession(i int) {
	m.seq_in_session = &i
	m.addseq_in_session = nil
}

// SeqInSession returns the value of the "seq_in_session" field in the mutation.
func (m *AttemptMutation) SeqInSession() (r int, exists bool) {
	v := m.seq_in_session
	if v == nil {
		return
	}
	return *v, true
}

// OldSeqInSession returns the old "seq_in_session" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSeqInSession(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeqInSession is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeqInSession requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeqInSession: %w", err)
	}
	return oldValue.SeqInSession, nil
}

// AddSeqInSession adds i to the "seq_in_session" field.
func (m *AttemptMutation) AddSeqInSession(i int) {
	if m.addseq_in_session != nil {
		*m.addseq_in_session += i
	} else {
		m.addseq_in_session = &i
	}
}

// AddedSeqInSession returns the value that was added to the "seq_in_session" field in this mutation.
func (m *AttemptMutation) AddedSeqInSession() (r int, exists bool) {
	v := m.addseq_in_session
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeqInSession resets all changes to the "seq_in_session" field.
func (m *AttemptMutation) ResetSeqInSession() {
	m.seq_in_session = nil
	m.addseq_in_session = nil
}

// SetPrompt sets the "prompt" field.
func (m *AttemptMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *AttemptMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *AttemptMutation) ResetPrompt() {
	m.prompt = nil
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *AttemptMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *AttemptMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *AttemptMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
}

// SetGivenAnswer sets the "given_answer" field.
func (m *AttemptMutation) SetGivenAnswer(s string) {
	m.given_answer = &s
}

// GivenAnswer returns the value of the "given_answer" field in the mutation.
func (m *AttemptMutation) GivenAnswer() (r string, exists bool) {
	v := m.given_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldGivenAnswer returns the old "given_answer" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldGivenAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGivenAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGivenAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGivenAnswer: %w", err)
	}
	return oldValue.GivenAnswer, nil
}

// ResetGivenAnswer resets all changes to the "given_answer" field.
func (m *AttemptMutation) ResetGivenAnswer() {
	m.given_answer = nil
}

// SetCorrect sets the "correct" field.
func (m *AttemptMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AttemptMutation) ResetCorrect() {
	m.correct = nil
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *AttemptMutation) SetResponseTimeMs(i int) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *AttemptMutation) ResponseTimeMs() (r int, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldResponseTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *AttemptMutation) AddResponseTimeMs(i int) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *AttemptMutation) AddedResponseTimeMs() (r int, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *AttemptMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *AttemptMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *AttemptMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *AttemptMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *AttemptMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *AttemptMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetVisualLevel sets the "visual_level" field.
func (m *AttemptMutation) SetVisualLevel(i int) {
	m.visual_level = &i
	m.addvisual_level = nil
}

// VisualLevel returns the value of the "visual_level" field in the mutation.
func (m *AttemptMutation) VisualLevel() (r int, exists bool) {
	v := m.visual_level
	if v == nil {
		return
	}
	return *v, true
}

// OldVisualLevel returns the old "visual_level" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldVisualLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisualLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisualLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisualLevel: %w", err)
	}
	return oldValue.VisualLevel, nil
}

// AddVisualLevel adds i to the "visual_level" field.
func (m *AttemptMutation) AddVisualLevel(i int) {
	if m.addvisual_level != nil {
		*m.addvisual_level += i
	} else {
		m.addvisual_level = &i
	}
}

// AddedVisualLevel returns the value that was added to the "visual_level" field in this mutation.
func (m *AttemptMutation) AddedVisualLevel() (r int, exists bool) {
	v := m.addvisual_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetVisualLevel resets all changes to the "visual_level" field.
func (m *AttemptMutation) ResetVisualLevel() {
	m.visual_level = nil
	m.addvisual_level = nil
}

// SetFactKey sets the "fact_key" field.
func (m *AttemptMutation) SetFactKey(s string) {
	m.fact_key = &s
}

// FactKey returns the value of the "fact_key" field in the mutation.
func (m *AttemptMutation) FactKey() (r string, exists bool) {
	v := m.fact_key
	if v == nil {
		return
	}
	return *v, true
}

// OldFactKey returns the old "fact_key" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldFactKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactKey: %w", err)
	}
	return oldValue.FactKey, nil
}

// ClearFactKey clears the value of the "fact_key" field.
func (m *AttemptMutation) ClearFactKey() {
	m.fact_key = nil
	m.clearedFields[attempt.FieldFactKey] = struct{}{}
}

// FactKeyCleared returns if the "fact_key" field was cleared in this mutation.
func (m *AttemptMutation) FactKeyCleared() bool {
	_, ok := m.clearedFields[attempt.FieldFactKey]
	return ok
}

// ResetFactKey resets all changes to the "fact_key" field.
func (m *AttemptMutation) ResetFactKey() {
	m.fact_key = nil
	delete(m.clearedFields, attempt.FieldFactKey)
}

// Where appends a list predicates to the AttemptMutation builder.
func (m *AttemptMutation) Where(ps ...predicate.Attempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attempt).
func (m *AttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.sequence != nil {
		fields = append(fields, attempt.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attempt.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, attempt.FieldSessionID)
	}
	if m.skill_id != nil {
		fields = append(fields, attempt.FieldSkillID)
	}
	if m.group_number != nil {
		fields = append(fields, attempt.FieldGroupNumber)
	}
	if m.seq_in_session != nil {
		fields = append(fields, attempt.FieldSeqInSession)
	}
	if m.prompt != nil {
		fields = append(fields, attempt.FieldPrompt)
	}
	if m.correct_answer != nil {
		fields = append(fields, attempt.FieldCorrectAnswer)
	}
	if m.given_answer != nil {
		fields = append(fields, attempt.FieldGivenAnswer)
	}
	if m.correct != nil {
		fields = append(fields, attempt.FieldCorrect)
	}
	if m.response_time_ms != nil {
		fields = append(fields, attempt.FieldResponseTimeMs)
	}
	if m.difficulty != nil {
		fields = append(fields, attempt.FieldDifficulty)
	}
	if m.visual_level != nil {
		fields = append(fields, attempt.FieldVisualLevel)
	}
	if m.fact_key != nil {
		fields = append(fields, attempt.FieldFactKey)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldSequence:
		return m.Sequence()
	case attempt.FieldTimestamp:
		return m.Timestamp()
	case attempt.FieldSessionID:
		return m.SessionID()
	case attempt.FieldSkillID:
		return m.SkillID()
	case attempt.FieldGroupNumber:
		return m.GroupNumber()
	case attempt.FieldSeqInSession:
		return m.SeqInSession()
	case attempt.FieldPrompt:
		return m.Prompt()
	case attempt.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case attempt.FieldGivenAnswer:
		return m.GivenAnswer()
	case attempt.FieldCorrect:
		return m.Correct()
	case attempt.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case attempt.FieldDifficulty:
		return m.Difficulty()
	case attempt.FieldVisualLevel:
		return m.VisualLevel()
	case attempt.FieldFactKey:
		return m.FactKey()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attempt.FieldSequence:
		return m.OldSequence(ctx)
	case attempt.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attempt.FieldSessionID:
		return m.OldSessionID(ctx)
	case attempt.FieldSkillID:
		return m.OldSkillID(ctx)
	case attempt.FieldGroupNumber:
		return m.OldGroupNumber(ctx)
	case attempt.FieldSeqInSession:
		return m.OldSeqInSession(ctx)
	case attempt.FieldPrompt:
		return m.OldPrompt(ctx)
	case attempt.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case attempt.FieldGivenAnswer:
		return m.OldGivenAnswer(ctx)
	case attempt.FieldCorrect:
		return m.OldCorrect(ctx)
	case attempt.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case attempt.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case attempt.FieldVisualLevel:
		return m.OldVisualLevel(ctx)
	case attempt.FieldFactKey:
		return m.OldFactKey(ctx)
	}
	return nil, fmt.Errorf("unknown Attempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attempt.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attempt.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case attempt.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case attempt.FieldGroupNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupNumber(v)
		return nil
	case attempt.FieldSeqInSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeqInSession(v)
		return nil
	case attempt.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case attempt.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case attempt.FieldGivenAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGivenAnswer(v)
		return nil
	case attempt.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case attempt.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case attempt.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case attempt.FieldVisualLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisualLevel(v)
		return nil
	case attempt.FieldFactKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactKey(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attempt.FieldSequence)
	}
	if m.addgroup_number != nil {
		fields = append(fields, attempt.FieldGroupNumber)
	}
	if m.addseq_in_session != nil {
		fields = append(fields, attempt.FieldSeqInSession)
	}
	if m.addresponse_time_ms != nil {
		fields = append(fields, attempt.FieldResponseTimeMs)
	}
	if m.adddifficulty != nil {
		fields = append(fields, attempt.FieldDifficulty)
	}
	if m.addvisual_level != nil {
		fields = append(fields, attempt.FieldVisualLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldSequence:
		return m.AddedSequence()
	case attempt.FieldGroupNumber:
		return m.AddedGroupNumber()
	case attempt.FieldSeqInSession:
		return m.AddedSeqInSession()
	case attempt.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	case attempt.FieldDifficulty:
		return m.AddedDifficulty()
	case attempt.FieldVisualLevel:
		return m.AddedVisualLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case attempt.FieldGroupNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGroupNumber(v)
		return nil
	case attempt.FieldSeqInSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeqInSession(v)
		return nil
	case attempt.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	case attempt.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case attempt.FieldVisualLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVisualLevel(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attempt.FieldFactKey) {
		fields = append(fields, attempt.FieldFactKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptMutation) ClearField(name string) error {
	switch name {
	case attempt.FieldFactKey:
		m.ClearFactKey()
		return nil
	}
	return fmt.Errorf("unknown Attempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptMutation) ResetField(name string) error {
	switch name {
	case attempt.FieldSequence:
		m.ResetSequence()
		return nil
	case attempt.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attempt.FieldSessionID:
		m.ResetSessionID()
		return nil
	case attempt.FieldSkillID:
		m.ResetSkillID()
		return nil
	case attempt.FieldGroupNumber:
		m.ResetGroupNumber()
		return nil
	case attempt.FieldSeqInSession:
		m.ResetSeqInSession()
		return nil
	case attempt.FieldPrompt:
		m.ResetPrompt()
		return nil
	case attempt.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case attempt.FieldGivenAnswer:
		m.ResetGivenAnswer()
		return nil
	case attempt.FieldCorrect:
		m.ResetCorrect()
		return nil
	case attempt.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case attempt.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case attempt.FieldVisualLevel:
		m.ResetVisualLevel()
		return nil
	case attempt.FieldFactKey:
		m.ResetFactKey()
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Attempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Attempt edge %s", name)
}

// FactMasteryMutation represents an operation that mutates the FactMastery nodes in the graph.
type FactMasteryMutation struct {
	config
	op               Op
	typ              string
	id               *int
	skill_id         *string
	fact_key         *string
	times_seen       *int
	addtimes_seen    *int
	times_correct    *int
	addtimes_correct *int
	last_seen        *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*FactMastery, error)
	predicates       []predicate.FactMastery
}

var _ ent.Mutation = (*FactMasteryMutation)(nil)

// factmasteryOption allows management of the mutation configuration using functional options.
type factmasteryOption func(*FactMasteryMutation)

// newFactMasteryMutation creates new mutation for the FactMastery entity.
func newFactMasteryMutation(c config, op Op, opts ...factmasteryOption) *FactMasteryMutation {
	m := &FactMasteryMutation{
		config:        c,
		op:            op,
		typ:           TypeFactMastery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFactMasteryID sets the ID field of the mutation.
func withFactMasteryID(id int) factmasteryOption {
	return func(m *FactMasteryMutation) {
		var (
			err   error
			once  sync.Once
			value *FactMastery
		)
		m.oldValue = func(ctx context.Context) (*FactMastery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FactMastery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFactMastery sets the old FactMastery of the mutation.
func withFactMastery(node *FactMastery) factmasteryOption {
	return func(m *FactMasteryMutation) {
		m.oldValue = func(context.Context) (*FactMastery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FactMasteryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FactMasteryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FactMasteryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FactMasteryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FactMastery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSkillID sets the "skill_id" field.
func (m *FactMasteryMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *FactMasteryMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the FactMastery entity.
// If the FactMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMasteryMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *FactMasteryMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetFactKey sets the "fact_key" field.
func (m *FactMasteryMutation) SetFactKey(s string) {
	m.fact_key = &s
}

// FactKey returns the value of the "fact_key" field in the mutation.
func (m *FactMasteryMutation) FactKey() (r string, exists bool) {
	v := m.fact_key
	if v == nil {
		return
	}
	return *v, true
}

// OldFactKey returns the old "fact_key" field's value of the FactMastery entity.
// If the FactMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMasteryMutation) OldFactKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactKey: %w", err)
	}
	return oldValue.FactKey, nil
}

// ResetFactKey resets all changes to the "fact_key" field.
func (m *FactMasteryMutation) ResetFactKey() {
	m.fact_key = nil
}

// SetTimesSeen sets the "times_seen" field.
func (m *FactMasteryMutation) SetTimesSeen(i int) {
	m.times_seen = &i
	m.addtimes_seen = nil
}

// TimesSeen returns the value of the "times_seen" field in the mutation.
func (m *FactMasteryMutation) TimesSeen() (r int, exists bool) {
	v := m.times_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesSeen returns the old "times_seen" field's value of the FactMastery entity.
// If the FactMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMasteryMutation) OldTimesSeen(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesSeen: %w", err)
	}
	return oldValue.TimesSeen, nil
}

// AddTimesSeen adds i to the "times_seen" field.
func (m *FactMasteryMutation) AddTimesSeen(i int) {
	if m.addtimes_seen != nil {
		*m.addtimes_seen += i
	} else {
		m.addtimes_seen = &i
	}
}

// AddedTimesSeen returns the value that was added to the "times_seen" field in this mutation.
func (m *FactMasteryMutation) AddedTimesSeen() (r int, exists bool) {
	v := m.addtimes_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesSeen resets all changes to the "times_seen" field.
func (m *FactMasteryMutation) ResetTimesSeen() {
	m.times_seen = nil
	m.addtimes_seen = nil
}

// SetTimesCorrect sets the "times_correct" field.
func (m *FactMasteryMutation) SetTimesCorrect(i int) {
	m.times_correct = &i
	m.addtimes_correct = nil
}

// TimesCorrect returns the value of the "times_correct" field in the mutation.
func (m *FactMasteryMutation) TimesCorrect() (r int, exists bool) {
	v := m.times_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesCorrect returns the old "times_correct" field's value of the FactMastery entity.
// If the FactMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMasteryMutation) OldTimesCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesCorrect: %w", err)
	}
	return oldValue.TimesCorrect, nil
}

// AddTimesCorrect adds i to the "times_correct" field.
func (m *FactMasteryMutation) AddTimesCorrect(i int) {
	if m.addtimes_correct != nil {
		*m.addtimes_correct += i
	} else {
		m.addtimes_correct = &i
	}
}

// AddedTimesCorrect returns the value that was added to the "times_correct" field in this mutation.
func (m *FactMasteryMutation) AddedTimesCorrect() (r int, exists bool) {
	v := m.addtimes_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesCorrect resets all changes to the "times_correct" field.
func (m *FactMasteryMutation) ResetTimesCorrect() {
	m.times_correct = nil
	m.addtimes_correct = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *FactMasteryMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *FactMasteryMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the FactMastery entity.
// If the FactMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMasteryMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *FactMasteryMutation) ResetLastSeen() {
	m.last_seen = nil
}

// Where appends a list predicates to the FactMasteryMutation builder.
func (m *FactMasteryMutation) Where(ps ...predicate.FactMastery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FactMasteryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FactMasteryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FactMastery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FactMasteryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FactMasteryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FactMastery).
func (m *FactMasteryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FactMasteryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.skill_id != nil {
		fields = append(fields, factmastery.FieldSkillID)
	}
	if m.fact_key != nil {
		fields = append(fields, factmastery.FieldFactKey)
	}
	if m.times_seen != nil {
		fields = append(fields, factmastery.FieldTimesSeen)
	}
	if m.times_correct != nil {
		fields = append(fields, factmastery.FieldTimesCorrect)
	}
	if m.last_seen != nil {
		fields = append(fields, factmastery.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FactMasteryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case factmastery.FieldSkillID:
		return m.SkillID()
	case factmastery.FieldFactKey:
		return m.FactKey()
	case factmastery.FieldTimesSeen:
		return m.TimesSeen()
	case factmastery.FieldTimesCorrect:
		return m.TimesCorrect()
	case factmastery.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FactMasteryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case factmastery.FieldSkillID:
		return m.OldSkillID(ctx)
	case factmastery.FieldFactKey:
		return m.OldFactKey(ctx)
	case factmastery.FieldTimesSeen:
		return m.OldTimesSeen(ctx)
	case factmastery.FieldTimesCorrect:
		return m.OldTimesCorrect(ctx)
	case factmastery.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown FactMastery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FactMasteryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case factmastery.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case factmastery.FieldFactKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactKey(v)
		return nil
	case factmastery.FieldTimesSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesSeen(v)
		return nil
	case factmastery.FieldTimesCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesCorrect(v)
		return nil
	case factmastery.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown FactMastery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FactMasteryMutation) AddedFields() []string {
	var fields []string
	if m.addtimes_seen != nil {
		fields = append(fields, factmastery.FieldTimesSeen)
	}
	if m.addtimes_correct != nil {
		fields = append(fields, factmastery.FieldTimesCorrect)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FactMasteryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case factmastery.FieldTimesSeen:
		return m.AddedTimesSeen()
	case factmastery.FieldTimesCorrect:
		return m.AddedTimesCorrect()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FactMasteryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case factmastery.FieldTimesSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesSeen(v)
		return nil
	case factmastery.FieldTimesCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown FactMastery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FactMasteryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FactMasteryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FactMasteryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FactMastery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FactMasteryMutation) ResetField(name string) error {
	switch name {
	case factmastery.FieldSkillID:
		m.ResetSkillID()
		return nil
	case factmastery.FieldFactKey:
		m.ResetFactKey()
		return nil
	case factmastery.FieldTimesSeen:
		m.ResetTimesSeen()
		return nil
	case factmastery.FieldTimesCorrect:
		m.ResetTimesCorrect()
		return nil
	case factmastery.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown FactMastery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FactMasteryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FactMasteryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FactMasteryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FactMasteryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FactMasteryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FactMasteryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FactMasteryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FactMastery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FactMasteryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FactMastery edge %s", name)
}

// PracticeSessionMutation represents an operation that mutates the PracticeSession nodes in the graph.
type PracticeSessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	skill_id              *string
	status                *string
	started_at            *time.Time
	completed_at          *time.Time
	start_difficulty      *int
	addstart_difficulty   *int
	start_visual_level    *int
	addstart_visual_level *int
	final_difficulty      *int
	addfinal_difficulty   *int
	final_visual_level    *int
	addfinal_visual_level *int
	total_problems        *int
	addtotal_problems     *int
	correct_count         *int
	addcorrect_count      *int
	avg_response_ms       *int
	addavg_response_ms    *int
	max_difficulty        *int
	addmax_difficulty     *int
	top_tier_completed    *bool
	duration_secs         *int
	addduration_secs      *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*PracticeSession, error)
	predicates            []predicate.PracticeSession
}

var _ ent.Mutation = (*PracticeSessionMutation)(nil)

// practicesessionOption allows management of the mutation configuration using functional options.
type practicesessionOption func(*PracticeSessionMutation)

// newPracticeSessionMutation creates new mutation for the PracticeSession entity.
func newPracticeSessionMutation(c config, op Op, opts ...practicesessionOption) *PracticeSessionMutation {
	m := &PracticeSessionMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeSessionID sets the ID field of the mutation.
func withPracticeSessionID(id string) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeSession
		)
		m.oldValue = func(ctx context.Context) (*PracticeSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeSession sets the old PracticeSession of the mutation.
func withPracticeSession(node *PracticeSession) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		m.oldValue = func(context.Context) (*PracticeSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PracticeSession entities.
func (m *PracticeSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSkillID sets the "skill_id" field.
func (m *PracticeSessionMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *PracticeSessionMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *PracticeSessionMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetStatus sets the "status" field.
func (m *PracticeSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PracticeSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PracticeSessionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PracticeSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PracticeSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PracticeSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PracticeSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PracticeSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PracticeSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[practicesession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PracticeSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PracticeSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, practicesession.FieldCompletedAt)
}

// SetStartDifficulty sets the "start_difficulty" field.
func (m *PracticeSessionMutation) SetStartDifficulty(i int) {
	m.start_difficulty = &i
	m.addstart_difficulty = nil
}

// StartDifficulty returns the value of the "start_difficulty" field in the mutation.
func (m *PracticeSessionMutation) StartDifficulty() (r int, exists bool) {
	v := m.start_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDifficulty returns the old "start_difficulty" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldStartDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDifficulty: %w", err)
	}
	return oldValue.StartDifficulty, nil
}

// AddStartDifficulty adds i to the "start_difficulty" field.
func (m *PracticeSessionMutation) AddStartDifficulty(i int) {
	if m.addstart_difficulty != nil {
		*m.addstart_difficulty += i
	} else {
		m.addstart_difficulty = &i
	}
}

// AddedStartDifficulty returns the value that was added to the "start_difficulty" field in this mutation.
func (m *PracticeSessionMutation) AddedStartDifficulty() (r int, exists bool) {
	v := m.addstart_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartDifficulty resets all changes to the "start_difficulty" field.
func (m *PracticeSessionMutation) ResetStartDifficulty() {
	m.start_difficulty = nil
	m.addstart_difficulty = nil
}

// SetStartVisualLevel sets the "start_visual_level" field.
func (m *PracticeSessionMutation) SetStartVisualLevel(i int) {
	m.start_visual_level = &i
	m.addstart_visual_level = nil
}

// StartVisualLevel returns the value of the "start_visual_level" field in the mutation.
func (m *PracticeSessionMutation) StartVisualLevel() (r int, exists bool) {
	v := m.start_visual_level
	if v == nil {
		return
	}
	return *v, true
}

// OldStartVisualLevel returns the old "start_visual_level" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldStartVisualLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartVisualLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartVisualLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartVisualLevel: %w", err)
	}
	return oldValue.StartVisualLevel, nil
}

// AddStartVisualLevel adds i to the "start_visual_level" field.
func (m *PracticeSessionMutation) AddStartVisualLevel(i int) {
	if m.addstart_visual_level != nil {
		*m.addstart_visual_level += i
	} else {
		m.addstart_visual_level = &i
	}
}

// AddedStartVisualLevel returns the value that was added to the "start_visual_level" field in this mutation.
func (m *PracticeSessionMutation) AddedStartVisualLevel() (r int, exists bool) {
	v := m.addstart_visual_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartVisualLevel resets all changes to the "start_visual_level" field.
func (m *PracticeSessionMutation) ResetStartVisualLevel() {
	m.start_visual_level = nil
	m.addstart_visual_level = nil
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (m *PracticeSessionMutation) SetFinalDifficulty(i int) {
	m.final_difficulty = &i
	m.addfinal_difficulty = nil
}

// FinalDifficulty returns the value of the "final_difficulty" field in the mutation.
func (m *PracticeSessionMutation) FinalDifficulty() (r int, exists bool) {
	v := m.final_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalDifficulty returns the old "final_difficulty" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldFinalDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalDifficulty: %w", err)
	}
	return oldValue.FinalDifficulty, nil
}

// AddFinalDifficulty adds i to the "final_difficulty" field.
func (m *PracticeSessionMutation) AddFinalDifficulty(i int) {
	if m.addfinal_difficulty != nil {
		*m.addfinal_difficulty += i
	} else {
		m.addfinal_difficulty = &i
	}
}

// AddedFinalDifficulty returns the value that was added to the "final_difficulty" field in this mutation.
func (m *PracticeSessionMutation) AddedFinalDifficulty() (r int, exists bool) {
	v := m.addfinal_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetFinalDifficulty resets all changes to the "final_difficulty" field.
func (m *PracticeSessionMutation) ResetFinalDifficulty() {
	m.final_difficulty = nil
	m.addfinal_difficulty = nil
}

// SetFinalVisualLevel sets the "final_visual_level" field.
func (m *PracticeSessionMutation) SetFinalVisualLevel(i int) {
	m.final_visual_level = &i
	m.addfinal_visual_level = nil
}

// FinalVisualLevel returns the value of the "final_visual_level" field in the mutation.
func (m *PracticeSessionMutation) FinalVisualLevel() (r int, exists bool) {
	v := m.final_visual_level
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalVisualLevel returns the old "final_visual_level" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldFinalVisualLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalVisualLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalVisualLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalVisualLevel: %w", err)
	}
	return oldValue.FinalVisualLevel, nil
}

// AddFinalVisualLevel adds i to the "final_visual_level" field.
func (m *PracticeSessionMutation) AddFinalVisualLevel(i int) {
	if m.addfinal_visual_level != nil {
		*m.addfinal_visual_level += i
	} else {
		m.addfinal_visual_level = &i
	}
}

// AddedFinalVisualLevel returns the value that was added to the "final_visual_level" field in this mutation.
func (m *PracticeSessionMutation) AddedFinalVisualLevel() (r int, exists bool) {
	v := m.addfinal_visual_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetFinalVisualLevel resets all changes to the "final_visual_level" field.
func (m *PracticeSessionMutation) ResetFinalVisualLevel() {
	m.final_visual_level = nil
	m.addfinal_visual_level = nil
}

// SetTotalProblems sets the "total_problems" field.
func (m *PracticeSessionMutation) SetTotalProblems(i int) {
	m.total_problems = &i
	m.addtotal_problems = nil
}

// TotalProblems returns the value of the "total_problems" field in the mutation.
func (m *PracticeSessionMutation) TotalProblems() (r int, exists bool) {
	v := m.total_problems
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalProblems returns the old "total_problems" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTotalProblems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalProblems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalProblems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalProblems: %w", err)
	}
	return oldValue.TotalProblems, nil
}

// AddTotalProblems adds i to the "total_problems" field.
func (m *PracticeSessionMutation) AddTotalProblems(i int) {
	if m.addtotal_problems != nil {
		*m.addtotal_problems += i
	} else {
		m.addtotal_problems = &i
	}
}

// AddedTotalProblems returns the value that was added to the "total_problems" field in this mutation.
func (m *PracticeSessionMutation) AddedTotalProblems() (r int, exists bool) {
	v := m.addtotal_problems
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalProblems resets all changes to the "total_problems" field.
func (m *PracticeSessionMutation) ResetTotalProblems() {
	m.total_problems = nil
	m.addtotal_problems = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *PracticeSessionMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *PracticeSessionMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *PracticeSessionMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *PracticeSessionMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *PracticeSessionMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetAvgResponseMs sets the "avg_response_ms" field.
func (m *PracticeSessionMutation) SetAvgResponseMs(i int) {
	m.avg_response_ms = &i
	m.addavg_response_ms = nil
}

// AvgResponseMs returns the value of the "avg_response_ms" field in the mutation.
func (m *PracticeSessionMutation) AvgResponseMs() (r int, exists bool) {
	v := m.avg_response_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgResponseMs returns the old "avg_response_ms" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldAvgResponseMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgResponseMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgResponseMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgResponseMs: %w", err)
	}
	return oldValue.AvgResponseMs, nil
}

// AddAvgResponseMs adds i to the "avg_response_ms" field.
func (m *PracticeSessionMutation) AddAvgResponseMs(i int) {
	if m.addavg_response_ms != nil {
		*m.addavg_response_ms += i
	} else {
		m.addavg_response_ms = &i
	}
}

// AddedAvgResponseMs returns the value that was added to the "avg_response_ms" field in this mutation.
func (m *PracticeSessionMutation) AddedAvgResponseMs() (r int, exists bool) {
	v := m.addavg_response_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgResponseMs resets all changes to the "avg_response_ms" field.
func (m *PracticeSessionMutation) ResetAvgResponseMs() {
	m.avg_response_ms = nil
	m.addavg_response_ms = nil
}

// SetMaxDifficulty sets the "max_difficulty" field.
func (m *PracticeSessionMutation) SetMaxDifficulty(i int) {
	m.max_difficulty = &i
	m.addmax_difficulty = nil
}

// MaxDifficulty returns the value of the "max_difficulty" field in the mutation.
func (m *PracticeSessionMutation) MaxDifficulty() (r int, exists bool) {
	v := m.max_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDifficulty returns the old "max_difficulty" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldMaxDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDifficulty: %w", err)
	}
	return oldValue.MaxDifficulty, nil
}

// AddMaxDifficulty adds i to the "max_difficulty" field.
func (m *PracticeSessionMutation) AddMaxDifficulty(i int) {
	if m.addmax_difficulty != nil {
		*m.addmax_difficulty += i
	} else {
		m.addmax_difficulty = &i
	}
}

// AddedMaxDifficulty returns the value that was added to the "max_difficulty" field in this mutation.
func (m *PracticeSessionMutation) AddedMaxDifficulty() (r int, exists bool) {
	v := m.addmax_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDifficulty resets all changes to the "max_difficulty" field.
func (m *PracticeSessionMutation) ResetMaxDifficulty() {
	m.max_difficulty = nil
	m.addmax_difficulty = nil
}

// SetTopTierCompleted sets the "top_tier_completed" field.
func (m *PracticeSessionMutation) SetTopTierCompleted(b bool) {
	m.top_tier_completed = &b
}

// TopTierCompleted returns the value of the "top_tier_completed" field in the mutation.
func (m *PracticeSessionMutation) TopTierCompleted() (r bool, exists bool) {
	v := m.top_tier_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldTopTierCompleted returns the old "top_tier_completed" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTopTierCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopTierCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopTierCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopTierCompleted: %w", err)
	}
	return oldValue.TopTierCompleted, nil
}

// ResetTopTierCompleted resets all changes to the "top_tier_completed" field.
func (m *PracticeSessionMutation) ResetTopTierCompleted() {
	m.top_tier_completed = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *PracticeSessionMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *PracticeSessionMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *PracticeSessionMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *PracticeSessionMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *PracticeSessionMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// Where appends a list predicates to the PracticeSessionMutation builder.
func (m *PracticeSessionMutation) Where(ps ...predicate.PracticeSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeSession).
func (m *PracticeSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeSessionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.skill_id != nil {
		fields = append(fields, practicesession.FieldSkillID)
	}
	if m.status != nil {
		fields = append(fields, practicesession.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, practicesession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, practicesession.FieldCompletedAt)
	}
	if m.start_difficulty != nil {
		fields = append(fields, practicesession.FieldStartDifficulty)
	}
	if m.start_visual_level != nil {
		fields = append(fields, practicesession.FieldStartVisualLevel)
	}
	if m.final_difficulty != nil {
		fields = append(fields, practicesession.FieldFinalDifficulty)
	}
	if m.final_visual_level != nil {
		fields = append(fields, practicesession.FieldFinalVisualLevel)
	}
	if m.total_problems != nil {
		fields = append(fields, practicesession.FieldTotalProblems)
	}
	if m.correct_count != nil {
		fields = append(fields, practicesession.FieldCorrectCount)
	}
	if m.avg_response_ms != nil {
		fields = append(fields, practicesession.FieldAvgResponseMs)
	}
	if m.max_difficulty != nil {
		fields = append(fields, practicesession.FieldMaxDifficulty)
	}
	if m.top_tier_completed != nil {
		fields = append(fields, practicesession.FieldTopTierCompleted)
	}
	if m.duration_secs != nil {
		fields = append(fields, practicesession.FieldDurationSecs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldSkillID:
		return m.SkillID()
	case practicesession.FieldStatus:
		return m.Status()
	case practicesession.FieldStartedAt:
		return m.StartedAt()
	case practicesession.FieldCompletedAt:
		return m.CompletedAt()
	case practicesession.FieldStartDifficulty:
		return m.StartDifficulty()
	case practicesession.FieldStartVisualLevel:
		return m.StartVisualLevel()
	case practicesession.FieldFinalDifficulty:
		return m.FinalDifficulty()
	case practicesession.FieldFinalVisualLevel:
		return m.FinalVisualLevel()
	case practicesession.FieldTotalProblems:
		return m.TotalProblems()
	case practicesession.FieldCorrectCount:
		return m.CorrectCount()
	case practicesession.FieldAvgResponseMs:
		return m.AvgResponseMs()
	case practicesession.FieldMaxDifficulty:
		return m.MaxDifficulty()
	case practicesession.FieldTopTierCompleted:
		return m.TopTierCompleted()
	case practicesession.FieldDurationSecs:
		return m.DurationSecs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practicesession.FieldSkillID:
		return m.OldSkillID(ctx)
	case practicesession.FieldStatus:
		return m.OldStatus(ctx)
	case practicesession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case practicesession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case practicesession.FieldStartDifficulty:
		return m.OldStartDifficulty(ctx)
	case practicesession.FieldStartVisualLevel:
		return m.OldStartVisualLevel(ctx)
	case practicesession.FieldFinalDifficulty:
		return m.OldFinalDifficulty(ctx)
	case practicesession.FieldFinalVisualLevel:
		return m.OldFinalVisualLevel(ctx)
	case practicesession.FieldTotalProblems:
		return m.OldTotalProblems(ctx)
	case practicesession.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case practicesession.FieldAvgResponseMs:
		return m.OldAvgResponseMs(ctx)
	case practicesession.FieldMaxDifficulty:
		return m.OldMaxDifficulty(ctx)
	case practicesession.FieldTopTierCompleted:
		return m.OldTopTierCompleted(ctx)
	case practicesession.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case practicesession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case practicesession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case practicesession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case practicesession.FieldStartDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDifficulty(v)
		return nil
	case practicesession.FieldStartVisualLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartVisualLevel(v)
		return nil
	case practicesession.FieldFinalDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalDifficulty(v)
		return nil
	case practicesession.FieldFinalVisualLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalVisualLevel(v)
		return nil
	case practicesession.FieldTotalProblems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalProblems(v)
		return nil
	case practicesession.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case practicesession.FieldAvgResponseMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgResponseMs(v)
		return nil
	case practicesession.FieldMaxDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDifficulty(v)
		return nil
	case practicesession.FieldTopTierCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopTierCompleted(v)
		return nil
	case practicesession.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeSessionMutation) AddedFields() []string {
	var fields []string
	if m.addstart_difficulty != nil {
		fields = append(fields, practicesession.FieldStartDifficulty)
	}
	if m.addstart_visual_level != nil {
		fields = append(fields, practicesession.FieldStartVisualLevel)
	}
	if m.addfinal_difficulty != nil {
		fields = append(fields, practicesession.FieldFinalDifficulty)
	}
	if m.addfinal_visual_level != nil {
		fields = append(fields, practicesession.FieldFinalVisualLevel)
	}
	if m.addtotal_problems != nil {
		fields = append(fields, practicesession.FieldTotalProblems)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, practicesession.FieldCorrectCount)
	}
	if m.addavg_response_ms != nil {
		fields = append(fields, practicesession.FieldAvgResponseMs)
	}
	if m.addmax_difficulty != nil {
		fields = append(fields, practicesession.FieldMaxDifficulty)
	}
	if m.addduration_secs != nil {
		fields = append(fields, practicesession.FieldDurationSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldStartDifficulty:
		return m.AddedStartDifficulty()
	case practicesession.FieldStartVisualLevel:
		return m.AddedStartVisualLevel()
	case practicesession.FieldFinalDifficulty:
		return m.AddedFinalDifficulty()
	case practicesession.FieldFinalVisualLevel:
		return m.AddedFinalVisualLevel()
	case practicesession.FieldTotalProblems:
		return m.AddedTotalProblems()
	case practicesession.FieldCorrectCount:
		return m.AddedCorrectCount()
	case practicesession.FieldAvgResponseMs:
		return m.AddedAvgResponseMs()
	case practicesession.FieldMaxDifficulty:
		return m.AddedMaxDifficulty()
	case practicesession.FieldDurationSecs:
		return m.AddedDurationSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldStartDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartDifficulty(v)
		return nil
	case practicesession.FieldStartVisualLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartVisualLevel(v)
		return nil
	case practicesession.FieldFinalDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalDifficulty(v)
		return nil
	case practicesession.FieldFinalVisualLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalVisualLevel(v)
		return nil
	case practicesession.FieldTotalProblems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalProblems(v)
		return nil
	case practicesession.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case practicesession.FieldAvgResponseMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgResponseMs(v)
		return nil
	case practicesession.FieldMaxDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDifficulty(v)
		return nil
	case practicesession.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(practicesession.FieldCompletedAt) {
		fields = append(fields, practicesession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ClearField(name string) error {
	switch name {
	case practicesession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ResetField(name string) error {
	switch name {
	case practicesession.FieldSkillID:
		m.ResetSkillID()
		return nil
	case practicesession.FieldStatus:
		m.ResetStatus()
		return nil
	case practicesession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case practicesession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case practicesession.FieldStartDifficulty:
		m.ResetStartDifficulty()
		return nil
	case practicesession.FieldStartVisualLevel:
		m.ResetStartVisualLevel()
		return nil
	case practicesession.FieldFinalDifficulty:
		m.ResetFinalDifficulty()
		return nil
	case practicesession.FieldFinalVisualLevel:
		m.ResetFinalVisualLevel()
		return nil
	case practicesession.FieldTotalProblems:
		m.ResetTotalProblems()
		return nil
	case practicesession.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case practicesession.FieldAvgResponseMs:
		m.ResetAvgResponseMs()
		return nil
	case practicesession.FieldMaxDifficulty:
		m.ResetMaxDifficulty()
		return nil
	case practicesession.FieldTopTierCompleted:
		m.ResetTopTierCompleted()
		return nil
	case practicesession.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession edge %s", name)
}
