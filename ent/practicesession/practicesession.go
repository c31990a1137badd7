// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practicesession type in the database.
	Label = "practice_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldStartDifficulty holds the string denoting the start_difficulty field in the database.
	FieldStartDifficulty = "start_difficulty"
	// FieldStartVisualLevel holds the string denoting the start_visual_level field in the database.
	FieldStartVisualLevel = "start_visual_level"
	// FieldFinalDifficulty holds the string denoting the final_difficulty field in the database.
	FieldFinalDifficulty = "final_difficulty"
	// FieldFinalVisualLevel holds the string denoting the final_visual_level field in the database.
	FieldFinalVisualLevel = "final_visual_level"
	// FieldTotalProblems holds the string denoting the total_problems field in the database.
	FieldTotalProblems = "total_problems"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldAvgResponseMs holds the string denoting the avg_response_ms field in the database.
	FieldAvgResponseMs = "avg_response_ms"
	// FieldMaxDifficulty holds the string denoting the max_difficulty field in the database.
	FieldMaxDifficulty = "max_difficulty"
	// FieldTopTierCompleted holds the string denoting the top_tier_completed field in the database.
	FieldTopTierCompleted = "top_tier_completed"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the practicesession in the database.
	Table = "practice_sessions"
)

// Columns holds all SQL columns for practicesession fields.
var Columns = []string{
	FieldID,
	FieldSkillID,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldStartDifficulty,
	FieldStartVisualLevel,
	FieldFinalDifficulty,
	FieldFinalVisualLevel,
	FieldTotalProblems,
	FieldCorrectCount,
	FieldAvgResponseMs,
	FieldMaxDifficulty,
	FieldTopTierCompleted,
	FieldDurationSecs,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultFinalDifficulty holds the default value on creation for the "final_difficulty" field.
	DefaultFinalDifficulty int
	// DefaultFinalVisualLevel holds the default value on creation for the "final_visual_level" field.
	DefaultFinalVisualLevel int
	// DefaultTotalProblems holds the default value on creation for the "total_problems" field.
	DefaultTotalProblems int
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// DefaultAvgResponseMs holds the default value on creation for the "avg_response_ms" field.
	DefaultAvgResponseMs int
	// DefaultMaxDifficulty holds the default value on creation for the "max_difficulty" field.
	DefaultMaxDifficulty int
	// DefaultTopTierCompleted holds the default value on creation for the "top_tier_completed" field.
	DefaultTopTierCompleted bool
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the PracticeSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByStartDifficulty orders the results by the start_difficulty field.
func ByStartDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDifficulty, opts...).ToFunc()
}

// ByStartVisualLevel orders the results by the start_visual_level field.
func ByStartVisualLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartVisualLevel, opts...).ToFunc()
}

// ByFinalDifficulty orders the results by the final_difficulty field.
func ByFinalDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalDifficulty, opts...).ToFunc()
}

// ByFinalVisualLevel orders the results by the final_visual_level field.
func ByFinalVisualLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalVisualLevel, opts...).ToFunc()
}

// ByTotalProblems orders the results by the total_problems field.
func ByTotalProblems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalProblems, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByAvgResponseMs orders the results by the avg_response_ms field.
func ByAvgResponseMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgResponseMs, opts...).ToFunc()
}

// ByMaxDifficulty orders the results by the max_difficulty field.
func ByMaxDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDifficulty, opts...).ToFunc()
}

// ByTopTierCompleted orders the results by the top_tier_completed field.
func ByTopTierCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopTierCompleted, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
