// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mathspiral/mathspiral/ent/factmastery"
)

// FactMastery is the model entity for the FactMastery schema.
type FactMastery struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// Canonical fact label, smaller operand first, e.g. 3x7
	FactKey string `json:"fact_key,omitempty"`
	// TimesSeen holds the value of the "times_seen" field.
	TimesSeen int `json:"times_seen,omitempty"`
	// TimesCorrect holds the value of the "times_correct" field.
	TimesCorrect int `json:"times_correct,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen     time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FactMastery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case factmastery.FieldID, factmastery.FieldTimesSeen, factmastery.FieldTimesCorrect:
			values[i] = new(sql.NullInt64)
		case factmastery.FieldSkillID, factmastery.FieldFactKey:
			values[i] = new(sql.NullString)
		case factmastery.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FactMastery fields.
func (_m *FactMastery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case factmastery.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case factmastery.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case factmastery.FieldFactKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fact_key", values[i])
			} else if value.Valid {
				_m.FactKey = value.String
			}
		case factmastery.FieldTimesSeen:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_seen", values[i])
			} else if value.Valid {
				_m.TimesSeen = int(value.Int64)
			}
		case factmastery.FieldTimesCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_correct", values[i])
			} else if value.Valid {
				_m.TimesCorrect = int(value.Int64)
			}
		case factmastery.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FactMastery.
// This includes values selected through modifiers, order, etc.
func (_m *FactMastery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FactMastery.
// Note that you need to call FactMastery.Unwrap() before calling this method if this FactMastery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FactMastery) Update() *FactMasteryUpdateOne {
	return NewFactMasteryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FactMastery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FactMastery) Unwrap() *FactMastery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FactMastery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FactMastery) String() string {
	var builder strings.Builder
	builder.WriteString("FactMastery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("fact_key=")
	builder.WriteString(_m.FactKey)
	builder.WriteString(", ")
	builder.WriteString("times_seen=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesSeen))
	builder.WriteString(", ")
	builder.WriteString("times_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesCorrect))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FactMasteries is a parsable slice of FactMastery.
type FactMasteries []*FactMastery
