// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdaptationEventsColumns holds the columns for the "adaptation_events" table.
	AdaptationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "group_number", Type: field.TypeInt},
		{Name: "outcome", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "from_difficulty", Type: field.TypeInt},
		{Name: "from_visual_level", Type: field.TypeInt},
		{Name: "to_difficulty", Type: field.TypeInt},
		{Name: "to_visual_level", Type: field.TypeInt},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "group_size", Type: field.TypeInt},
		{Name: "avg_response_ms", Type: field.TypeInt},
	}
	// AdaptationEventsTable holds the schema information for the "adaptation_events" table.
	AdaptationEventsTable = &schema.Table{
		Name:       "adaptation_events",
		Columns:    AdaptationEventsColumns,
		PrimaryKey: []*schema.Column{AdaptationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adaptationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[1]},
			},
			{
				Name:    "adaptationevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[3]},
			},
			{
				Name:    "adaptationevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[4]},
			},
		},
	}
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "group_number", Type: field.TypeInt},
		{Name: "seq_in_session", Type: field.TypeInt},
		{Name: "prompt", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "given_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "response_time_ms", Type: field.TypeInt},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "visual_level", Type: field.TypeInt},
		{Name: "fact_key", Type: field.TypeString, Nullable: true},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
			{
				Name:    "attempt_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[3]},
			},
			{
				Name:    "attempt_skill_id_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[4], AttemptsColumns[10]},
			},
		},
	}
	// FactMasteriesColumns holds the columns for the "fact_masteries" table.
	FactMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "fact_key", Type: field.TypeString},
		{Name: "times_seen", Type: field.TypeInt, Default: 0},
		{Name: "times_correct", Type: field.TypeInt, Default: 0},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// FactMasteriesTable holds the schema information for the "fact_masteries" table.
	FactMasteriesTable = &schema.Table{
		Name:       "fact_masteries",
		Columns:    FactMasteriesColumns,
		PrimaryKey: []*schema.Column{FactMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "factmastery_skill_id_fact_key",
				Unique:  true,
				Columns: []*schema.Column{FactMasteriesColumns[1], FactMasteriesColumns[2]},
			},
		},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "start_difficulty", Type: field.TypeInt},
		{Name: "start_visual_level", Type: field.TypeInt},
		{Name: "final_difficulty", Type: field.TypeInt, Default: 0},
		{Name: "final_visual_level", Type: field.TypeInt, Default: 0},
		{Name: "total_problems", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "avg_response_ms", Type: field.TypeInt, Default: 0},
		{Name: "max_difficulty", Type: field.TypeInt, Default: 0},
		{Name: "top_tier_completed", Type: field.TypeBool, Default: false},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_skill_id_status",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[1], PracticeSessionsColumns[2]},
			},
			{
				Name:    "practicesession_completed_at",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdaptationEventsTable,
		AttemptsTable,
		FactMasteriesTable,
		PracticeSessionsTable,
	}
)

func init() {
}
