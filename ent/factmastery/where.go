// Code generated by ent, DO NOT EDIT.

package factmastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mathspiral/mathspiral/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldLTE(FieldID, id))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEQ(FieldSkillID, v))
}

// FactKey applies equality check predicate on the "fact_key" field. It's identical to FactKeyEQ.
func FactKey(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEQ(FieldFactKey, v))
}

// TimesSeen applies equality check predicate on the "times_seen" field. It's identical to TimesSeenEQ.
func TimesSeen(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEQ(FieldTimesSeen, v))
}

// TimesCorrect applies equality check predicate on the "times_correct" field. It's identical to TimesCorrectEQ.
func TimesCorrect(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEQ(FieldTimesCorrect, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEQ(FieldLastSeen, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldContainsFold(FieldSkillID, v))
}

// FactKeyEQ applies the EQ predicate on the "fact_key" field.
func FactKeyEQ(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEQ(FieldFactKey, v))
}

// FactKeyNEQ applies the NEQ predicate on the "fact_key" field.
func FactKeyNEQ(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldNEQ(FieldFactKey, v))
}

// FactKeyIn applies the In predicate on the "fact_key" field.
func FactKeyIn(vs ...string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldIn(FieldFactKey, vs...))
}

// FactKeyNotIn applies the NotIn predicate on the "fact_key" field.
func FactKeyNotIn(vs ...string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldNotIn(FieldFactKey, vs...))
}

// FactKeyGT applies the GT predicate on the "fact_key" field.
func FactKeyGT(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldGT(FieldFactKey, v))
}

// FactKeyGTE applies the GTE predicate on the "fact_key" field.
func FactKeyGTE(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldGTE(FieldFactKey, v))
}

// FactKeyLT applies the LT predicate on the "fact_key" field.
func FactKeyLT(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldLT(FieldFactKey, v))
}

// FactKeyLTE applies the LTE predicate on the "fact_key" field.
func FactKeyLTE(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldLTE(FieldFactKey, v))
}

// FactKeyContains applies the Contains predicate on the "fact_key" field.
func FactKeyContains(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldContains(FieldFactKey, v))
}

// FactKeyHasPrefix applies the HasPrefix predicate on the "fact_key" field.
func FactKeyHasPrefix(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldHasPrefix(FieldFactKey, v))
}

// FactKeyHasSuffix applies the HasSuffix predicate on the "fact_key" field.
func FactKeyHasSuffix(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldHasSuffix(FieldFactKey, v))
}

// FactKeyEqualFold applies the EqualFold predicate on the "fact_key" field.
func FactKeyEqualFold(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEqualFold(FieldFactKey, v))
}

// FactKeyContainsFold applies the ContainsFold predicate on the "fact_key" field.
func FactKeyContainsFold(v string) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldContainsFold(FieldFactKey, v))
}

// TimesSeenEQ applies the EQ predicate on the "times_seen" field.
func TimesSeenEQ(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEQ(FieldTimesSeen, v))
}

// TimesSeenNEQ applies the NEQ predicate on the "times_seen" field.
func TimesSeenNEQ(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldNEQ(FieldTimesSeen, v))
}

// TimesSeenIn applies the In predicate on the "times_seen" field.
func TimesSeenIn(vs ...int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldIn(FieldTimesSeen, vs...))
}

// TimesSeenNotIn applies the NotIn predicate on the "times_seen" field.
func TimesSeenNotIn(vs ...int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldNotIn(FieldTimesSeen, vs...))
}

// TimesSeenGT applies the GT predicate on the "times_seen" field.
func TimesSeenGT(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldGT(FieldTimesSeen, v))
}

// TimesSeenGTE applies the GTE predicate on the "times_seen" field.
func TimesSeenGTE(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldGTE(FieldTimesSeen, v))
}

// TimesSeenLT applies the LT predicate on the "times_seen" field.
func TimesSeenLT(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldLT(FieldTimesSeen, v))
}

// TimesSeenLTE applies the LTE predicate on the "times_seen" field.
func TimesSeenLTE(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldLTE(FieldTimesSeen, v))
}

// TimesCorrectEQ applies the EQ predicate on the "times_correct" field.
func TimesCorrectEQ(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEQ(FieldTimesCorrect, v))
}

// TimesCorrectNEQ applies the NEQ predicate on the "times_correct" field.
func TimesCorrectNEQ(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldNEQ(FieldTimesCorrect, v))
}

// TimesCorrectIn applies the In predicate on the "times_correct" field.
func TimesCorrectIn(vs ...int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldIn(FieldTimesCorrect, vs...))
}

// TimesCorrectNotIn applies the NotIn predicate on the "times_correct" field.
func TimesCorrectNotIn(vs ...int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldNotIn(FieldTimesCorrect, vs...))
}

// TimesCorrectGT applies the GT predicate on the "times_correct" field.
func TimesCorrectGT(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldGT(FieldTimesCorrect, v))
}

// TimesCorrectGTE applies the GTE predicate on the "times_correct" field.
func TimesCorrectGTE(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldGTE(FieldTimesCorrect, v))
}

// TimesCorrectLT applies the LT predicate on the "times_correct" field.
func TimesCorrectLT(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldLT(FieldTimesCorrect, v))
}

// TimesCorrectLTE applies the LTE predicate on the "times_correct" field.
func TimesCorrectLTE(v int) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldLTE(FieldTimesCorrect, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.FactMastery {
	return predicate.FactMastery(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FactMastery) predicate.FactMastery {
	return predicate.FactMastery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FactMastery) predicate.FactMastery {
	return predicate.FactMastery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FactMastery) predicate.FactMastery {
	return predicate.FactMastery(sql.NotPredicates(p))
}
