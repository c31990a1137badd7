package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdaptationEvent records one group-boundary difficulty adjustment.
type AdaptationEvent struct {
	ent.Schema
}

func (AdaptationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AdaptationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("outcome").
			NotEmpty().
			Comment("perfect, strong, accurate_slow, mixed, or struggling"),
		field.String("reason").
			Comment("Human-readable explanation of the adjustment"),
		field.Int("from_difficulty"),
		field.Int("from_visual_level"),
		field.Int("to_difficulty"),
		field.Int("to_visual_level"),
		field.Int("correct_count"),
		field.Int("group_size"),
		field.Int("avg_response_ms"),
	}
}

func (AdaptationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
	}
}
