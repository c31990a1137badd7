package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeSession is one practice run on a skill, from start through
// completion or abandonment.
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID assigned at start"),
		field.String("skill_id").
			NotEmpty().
			Comment("Catalog slug of the practiced skill"),
		field.String("status").
			Default("active").
			Comment("active, completed, or abandoned"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional(),
		field.Int("start_difficulty").
			Comment("Difficulty the session opened with"),
		field.Int("start_visual_level").
			Comment("Visual support level the session opened with"),
		field.Int("final_difficulty").
			Default(0).
			Comment("Difficulty at completion, 0 while open"),
		field.Int("final_visual_level").
			Default(0).
			Comment("Visual support level at completion, 0 while open"),
		field.Int("total_problems").
			Default(0),
		field.Int("correct_count").
			Default(0),
		field.Int("avg_response_ms").
			Default(0),
		field.Int("max_difficulty").
			Default(0).
			Comment("Highest difficulty reached during the session"),
		field.Bool("top_tier_completed").
			Default(false).
			Comment("A full group was answered at the top difficulty"),
		field.Int("duration_secs").
			Default(0),
	}
}

func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id", "status"),
		index.Fields("completed_at"),
	}
}
