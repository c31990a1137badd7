// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mathspiral/mathspiral/ent/adaptationevent"
)

// AdaptationEvent is the model entity for the AdaptationEvent schema.
type AdaptationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to PracticeSession
	SessionID string `json:"session_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// 1-based adaptation group the event belongs to
	GroupNumber int `json:"group_number,omitempty"`
	// perfect, strong, accurate_slow, mixed, or struggling
	Outcome string `json:"outcome,omitempty"`
	// Human-readable explanation of the adjustment
	Reason string `json:"reason,omitempty"`
	// FromDifficulty holds the value of the "from_difficulty" field.
	FromDifficulty int `json:"from_difficulty,omitempty"`
	// FromVisualLevel holds the value of the "from_visual_level" field.
	FromVisualLevel int `json:"from_visual_level,omitempty"`
	// ToDifficulty holds the value of the "to_difficulty" field.
	ToDifficulty int `json:"to_difficulty,omitempty"`
	// ToVisualLevel holds the value of the "to_visual_level" field.
	ToVisualLevel int `json:"to_visual_level,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// GroupSize holds the value of the "group_size" field.
	GroupSize int `json:"group_size,omitempty"`
	// AvgResponseMs holds the value of the "avg_response_ms" field.
	AvgResponseMs int `json:"avg_response_ms,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdaptationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldID, adaptationevent.FieldSequence, adaptationevent.FieldGroupNumber, adaptationevent.FieldFromDifficulty, adaptationevent.FieldFromVisualLevel, adaptationevent.FieldToDifficulty, adaptationevent.FieldToVisualLevel, adaptationevent.FieldCorrectCount, adaptationevent.FieldGroupSize, adaptationevent.FieldAvgResponseMs:
			values[i] = new(sql.NullInt64)
		case adaptationevent.FieldSessionID, adaptationevent.FieldSkillID, adaptationevent.FieldOutcome, adaptationevent.FieldReason:
			values[i] = new(sql.NullString)
		case adaptationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdaptationEvent fields.
func (_m *AdaptationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case adaptationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case adaptationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case adaptationevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case adaptationevent.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case adaptationevent.FieldGroupNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field group_number", values[i])
			} else if value.Valid {
				_m.GroupNumber = int(value.Int64)
			}
		case adaptationevent.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case adaptationevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case adaptationevent.FieldFromDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field from_difficulty", values[i])
			} else if value.Valid {
				_m.FromDifficulty = int(value.Int64)
			}
		case adaptationevent.FieldFromVisualLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field from_visual_level", values[i])
			} else if value.Valid {
				_m.FromVisualLevel = int(value.Int64)
			}
		case adaptationevent.FieldToDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field to_difficulty", values[i])
			} else if value.Valid {
				_m.ToDifficulty = int(value.Int64)
			}
		case adaptationevent.FieldToVisualLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field to_visual_level", values[i])
			} else if value.Valid {
				_m.ToVisualLevel = int(value.Int64)
			}
		case adaptationevent.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case adaptationevent.FieldGroupSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field group_size", values[i])
			} else if value.Valid {
				_m.GroupSize = int(value.Int64)
			}
		case adaptationevent.FieldAvgResponseMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_response_ms", values[i])
			} else if value.Valid {
				_m.AvgResponseMs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdaptationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AdaptationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdaptationEvent.
// Note that you need to call AdaptationEvent.Unwrap() before calling this method if this AdaptationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdaptationEvent) Update() *AdaptationEventUpdateOne {
	return NewAdaptationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdaptationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdaptationEvent) Unwrap() *AdaptationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdaptationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdaptationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AdaptationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("group_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.GroupNumber))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("from_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromDifficulty))
	builder.WriteString(", ")
	builder.WriteString("from_visual_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromVisualLevel))
	builder.WriteString(", ")
	builder.WriteString("to_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToDifficulty))
	builder.WriteString(", ")
	builder.WriteString("to_visual_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToVisualLevel))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("group_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.GroupSize))
	builder.WriteString(", ")
	builder.WriteString("avg_response_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgResponseMs))
	builder.WriteByte(')')
	return builder.String()
}

// AdaptationEvents is a parsable slice of AdaptationEvent.
type AdaptationEvents []*AdaptationEvent
