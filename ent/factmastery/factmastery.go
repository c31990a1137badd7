// Code generated by ent, DO NOT EDIT.

package factmastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the factmastery type in the database.
	Label = "fact_mastery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldFactKey holds the string denoting the fact_key field in the database.
	FieldFactKey = "fact_key"
	// FieldTimesSeen holds the string denoting the times_seen field in the database.
	FieldTimesSeen = "times_seen"
	// FieldTimesCorrect holds the string denoting the times_correct field in the database.
	FieldTimesCorrect = "times_correct"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the factmastery in the database.
	Table = "fact_masteries"
)

// Columns holds all SQL columns for factmastery fields.
var Columns = []string{
	FieldID,
	FieldSkillID,
	FieldFactKey,
	FieldTimesSeen,
	FieldTimesCorrect,
	FieldLastSeen,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// FactKeyValidator is a validator for the "fact_key" field. It is called by the builders before save.
	FactKeyValidator func(string) error
	// DefaultTimesSeen holds the default value on creation for the "times_seen" field.
	DefaultTimesSeen int
	// DefaultTimesCorrect holds the default value on creation for the "times_correct" field.
	DefaultTimesCorrect int
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
	// UpdateDefaultLastSeen holds the default value on update for the "last_seen" field.
	UpdateDefaultLastSeen func() time.Time
)

// OrderOption defines the ordering options for the FactMastery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByFactKey orders the results by the fact_key field.
func ByFactKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFactKey, opts...).ToFunc()
}

// ByTimesSeen orders the results by the times_seen field.
func ByTimesSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesSeen, opts...).ToFunc()
}

// ByTimesCorrect orders the results by the times_correct field.
func ByTimesCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesCorrect, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}
