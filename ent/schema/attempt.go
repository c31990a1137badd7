package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records a single answered problem within a session.
type Attempt struct {
	ent.Schema
}

func (Attempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("seq_in_session").
			Comment("1-based position within the session"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.String("correct_answer").
			NotEmpty(),
		field.String("given_answer").
			NotEmpty().
			Comment("What the student entered"),
		field.Bool("correct"),
		field.Int("response_time_ms"),
		field.Int("difficulty").
			Comment("Difficulty the problem was generated at"),
		field.Int("visual_level").
			Comment("Visual support level the problem was generated at"),
		field.String("fact_key").
			Optional().
			Comment("Canonical fact label for fact drills, e.g. 3x7"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id", "correct"),
	}
}
