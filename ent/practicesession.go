// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mathspiral/mathspiral/ent/practicesession"
)

// PracticeSession is the model entity for the PracticeSession schema.
type PracticeSession struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned at start
	ID string `json:"id,omitempty"`
	// Catalog slug of the practiced skill
	SkillID string `json:"skill_id,omitempty"`
	// active, completed, or abandoned
	Status string `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// Difficulty the session opened with
	StartDifficulty int `json:"start_difficulty,omitempty"`
	// Visual support level the session opened with
	StartVisualLevel int `json:"start_visual_level,omitempty"`
	// Difficulty at completion, 0 while open
	FinalDifficulty int `json:"final_difficulty,omitempty"`
	// Visual support level at completion, 0 while open
	FinalVisualLevel int `json:"final_visual_level,omitempty"`
	// TotalProblems holds the value of the "total_problems" field.
	TotalProblems int `json:"total_problems,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// AvgResponseMs holds the value of the "avg_response_ms" field.
	AvgResponseMs int `json:"avg_response_ms,omitempty"`
	// Highest difficulty reached during the session
	MaxDifficulty int `json:"max_difficulty,omitempty"`
	// A full group was answered at the top difficulty
	TopTierCompleted bool `json:"top_tier_completed,omitempty"`
	// DurationSecs holds the value of the "duration_secs" field.
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldTopTierCompleted:
			values[i] = new(sql.NullBool)
		case practicesession.FieldStartDifficulty, practicesession.FieldStartVisualLevel, practicesession.FieldFinalDifficulty, practicesession.FieldFinalVisualLevel, practicesession.FieldTotalProblems, practicesession.FieldCorrectCount, practicesession.FieldAvgResponseMs, practicesession.FieldMaxDifficulty, practicesession.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case practicesession.FieldID, practicesession.FieldSkillID, practicesession.FieldStatus:
			values[i] = new(sql.NullString)
		case practicesession.FieldStartedAt, practicesession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeSession fields.
func (_m *PracticeSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case practicesession.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case practicesession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case practicesession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case practicesession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		case practicesession.FieldStartDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_difficulty", values[i])
			} else if value.Valid {
				_m.StartDifficulty = int(value.Int64)
			}
		case practicesession.FieldStartVisualLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_visual_level", values[i])
			} else if value.Valid {
				_m.StartVisualLevel = int(value.Int64)
			}
		case practicesession.FieldFinalDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field final_difficulty", values[i])
			} else if value.Valid {
				_m.FinalDifficulty = int(value.Int64)
			}
		case practicesession.FieldFinalVisualLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field final_visual_level", values[i])
			} else if value.Valid {
				_m.FinalVisualLevel = int(value.Int64)
			}
		case practicesession.FieldTotalProblems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_problems", values[i])
			} else if value.Valid {
				_m.TotalProblems = int(value.Int64)
			}
		case practicesession.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case practicesession.FieldAvgResponseMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_response_ms", values[i])
			} else if value.Valid {
				_m.AvgResponseMs = int(value.Int64)
			}
		case practicesession.FieldMaxDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_difficulty", values[i])
			} else if value.Valid {
				_m.MaxDifficulty = int(value.Int64)
			}
		case practicesession.FieldTopTierCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field top_tier_completed", values[i])
			} else if value.Valid {
				_m.TopTierCompleted = value.Bool
			}
		case practicesession.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeSession.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeSession.
// Note that you need to call PracticeSession.Unwrap() before calling this method if this PracticeSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeSession) Update() *PracticeSessionUpdateOne {
	return NewPracticeSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeSession) Unwrap() *PracticeSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeSession) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("start_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartDifficulty))
	builder.WriteString(", ")
	builder.WriteString("start_visual_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartVisualLevel))
	builder.WriteString(", ")
	builder.WriteString("final_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalDifficulty))
	builder.WriteString(", ")
	builder.WriteString("final_visual_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalVisualLevel))
	builder.WriteString(", ")
	builder.WriteString("total_problems=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalProblems))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("avg_response_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgResponseMs))
	builder.WriteString(", ")
	builder.WriteString("max_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxDifficulty))
	builder.WriteString(", ")
	builder.WriteString("top_tier_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopTierCompleted))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeSessions is a parsable slice of PracticeSession.
type PracticeSessions []*PracticeSession
