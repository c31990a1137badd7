// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the adaptationevent type in the database.
	Label = "adaptation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldGroupNumber holds the string denoting the group_number field in the database.
	FieldGroupNumber = "group_number"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldFromDifficulty holds the string denoting the from_difficulty field in the database.
	FieldFromDifficulty = "from_difficulty"
	// FieldFromVisualLevel holds the string denoting the from_visual_level field in the database.
	FieldFromVisualLevel = "from_visual_level"
	// FieldToDifficulty holds the string denoting the to_difficulty field in the database.
	FieldToDifficulty = "to_difficulty"
	// FieldToVisualLevel holds the string denoting the to_visual_level field in the database.
	FieldToVisualLevel = "to_visual_level"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldGroupSize holds the string denoting the group_size field in the database.
	FieldGroupSize = "group_size"
	// FieldAvgResponseMs holds the string denoting the avg_response_ms field in the database.
	FieldAvgResponseMs = "avg_response_ms"
	// Table holds the table name of the adaptationevent in the database.
	Table = "adaptation_events"
)

// Columns holds all SQL columns for adaptationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldSkillID,
	FieldGroupNumber,
	FieldOutcome,
	FieldReason,
	FieldFromDifficulty,
	FieldFromVisualLevel,
	FieldToDifficulty,
	FieldToVisualLevel,
	FieldCorrectCount,
	FieldGroupSize,
	FieldAvgResponseMs,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	OutcomeValidator func(string) error
)

// OrderOption defines the ordering options for the AdaptationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByGroupNumber orders the results by the group_number field.
func ByGroupNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupNumber, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByFromDifficulty orders the results by the from_difficulty field.
func ByFromDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromDifficulty, opts...).ToFunc()
}

// ByFromVisualLevel orders the results by the from_visual_level field.
func ByFromVisualLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromVisualLevel, opts...).ToFunc()
}

// ByToDifficulty orders the results by the to_difficulty field.
func ByToDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToDifficulty, opts...).ToFunc()
}

// ByToVisualLevel orders the results by the to_visual_level field.
func ByToVisualLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToVisualLevel, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByGroupSize orders the results by the group_size field.
func ByGroupSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupSize, opts...).ToFunc()
}

// ByAvgResponseMs orders the results by the avg_response_ms field.
func ByAvgResponseMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgResponseMs, opts...).ToFunc()
}
