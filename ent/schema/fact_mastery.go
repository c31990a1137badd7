package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FactMastery accumulates per-fact exposure counts for fact-drill
// skills. One row per (skill, fact) pair, upserted on every answer.
type FactMastery struct {
	ent.Schema
}

func (FactMastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").
			NotEmpty(),
		field.String("fact_key").
			NotEmpty().
			Comment("Canonical fact label, smaller operand first, e.g. 3x7"),
		field.Int("times_seen").
			Default(0),
		field.Int("times_correct").
			Default(0),
		field.Time("last_seen").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (FactMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id", "fact_key").
			Unique(),
	}
}
