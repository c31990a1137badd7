// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mathspiral/mathspiral/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSessionID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSkillID, v))
}

// GroupNumber applies equality check predicate on the "group_number" field. It's identical to GroupNumberEQ.
func GroupNumber(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldGroupNumber, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldOutcome, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldReason, v))
}

// FromDifficulty applies equality check predicate on the "from_difficulty" field. It's identical to FromDifficultyEQ.
func FromDifficulty(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldFromDifficulty, v))
}

// FromVisualLevel applies equality check predicate on the "from_visual_level" field. It's identical to FromVisualLevelEQ.
func FromVisualLevel(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldFromVisualLevel, v))
}

// ToDifficulty applies equality check predicate on the "to_difficulty" field. It's identical to ToDifficultyEQ.
func ToDifficulty(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldToDifficulty, v))
}

// ToVisualLevel applies equality check predicate on the "to_visual_level" field. It's identical to ToVisualLevelEQ.
func ToVisualLevel(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldToVisualLevel, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// GroupSize applies equality check predicate on the "group_size" field. It's identical to GroupSizeEQ.
func GroupSize(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldGroupSize, v))
}

// AvgResponseMs applies equality check predicate on the "avg_response_ms" field. It's identical to AvgResponseMsEQ.
func AvgResponseMs(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldAvgResponseMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// GroupNumberEQ applies the EQ predicate on the "group_number" field.
func GroupNumberEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldGroupNumber, v))
}

// GroupNumberNEQ applies the NEQ predicate on the "group_number" field.
func GroupNumberNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldGroupNumber, v))
}

// GroupNumberIn applies the In predicate on the "group_number" field.
func GroupNumberIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldGroupNumber, vs...))
}

// GroupNumberNotIn applies the NotIn predicate on the "group_number" field.
func GroupNumberNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldGroupNumber, vs...))
}

// GroupNumberGT applies the GT predicate on the "group_number" field.
func GroupNumberGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldGroupNumber, v))
}

// GroupNumberGTE applies the GTE predicate on the "group_number" field.
func GroupNumberGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldGroupNumber, v))
}

// GroupNumberLT applies the LT predicate on the "group_number" field.
func GroupNumberLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldGroupNumber, v))
}

// GroupNumberLTE applies the LTE predicate on the "group_number" field.
func GroupNumberLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldGroupNumber, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldReason, v))
}

// FromDifficultyEQ applies the EQ predicate on the "from_difficulty" field.
func FromDifficultyEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldFromDifficulty, v))
}

// FromDifficultyNEQ applies the NEQ predicate on the "from_difficulty" field.
func FromDifficultyNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldFromDifficulty, v))
}

// FromDifficultyIn applies the In predicate on the "from_difficulty" field.
func FromDifficultyIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldFromDifficulty, vs...))
}

// FromDifficultyNotIn applies the NotIn predicate on the "from_difficulty" field.
func FromDifficultyNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldFromDifficulty, vs...))
}

// FromDifficultyGT applies the GT predicate on the "from_difficulty" field.
func FromDifficultyGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldFromDifficulty, v))
}

// FromDifficultyGTE applies the GTE predicate on the "from_difficulty" field.
func FromDifficultyGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldFromDifficulty, v))
}

// FromDifficultyLT applies the LT predicate on the "from_difficulty" field.
func FromDifficultyLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldFromDifficulty, v))
}

// FromDifficultyLTE applies the LTE predicate on the "from_difficulty" field.
func FromDifficultyLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldFromDifficulty, v))
}

// FromVisualLevelEQ applies the EQ predicate on the "from_visual_level" field.
func FromVisualLevelEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldFromVisualLevel, v))
}

// FromVisualLevelNEQ applies the NEQ predicate on the "from_visual_level" field.
func FromVisualLevelNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldFromVisualLevel, v))
}

// FromVisualLevelIn applies the In predicate on the "from_visual_level" field.
func FromVisualLevelIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldFromVisualLevel, vs...))
}

// FromVisualLevelNotIn applies the NotIn predicate on the "from_visual_level" field.
func FromVisualLevelNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldFromVisualLevel, vs...))
}

// FromVisualLevelGT applies the GT predicate on the "from_visual_level" field.
func FromVisualLevelGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldFromVisualLevel, v))
}

// FromVisualLevelGTE applies the GTE predicate on the "from_visual_level" field.
func FromVisualLevelGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldFromVisualLevel, v))
}

// FromVisualLevelLT applies the LT predicate on the "from_visual_level" field.
func FromVisualLevelLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldFromVisualLevel, v))
}

// FromVisualLevelLTE applies the LTE predicate on the "from_visual_level" field.
func FromVisualLevelLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldFromVisualLevel, v))
}

// ToDifficultyEQ applies the EQ predicate on the "to_difficulty" field.
func ToDifficultyEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldToDifficulty, v))
}

// ToDifficultyNEQ applies the NEQ predicate on the "to_difficulty" field.
func ToDifficultyNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldToDifficulty, v))
}

// ToDifficultyIn applies the In predicate on the "to_difficulty" field.
func ToDifficultyIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldToDifficulty, vs...))
}

// ToDifficultyNotIn applies the NotIn predicate on the "to_difficulty" field.
func ToDifficultyNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldToDifficulty, vs...))
}

// ToDifficultyGT applies the GT predicate on the "to_difficulty" field.
func ToDifficultyGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldToDifficulty, v))
}

// ToDifficultyGTE applies the GTE predicate on the "to_difficulty" field.
func ToDifficultyGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldToDifficulty, v))
}

// ToDifficultyLT applies the LT predicate on the "to_difficulty" field.
func ToDifficultyLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldToDifficulty, v))
}

// ToDifficultyLTE applies the LTE predicate on the "to_difficulty" field.
func ToDifficultyLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldToDifficulty, v))
}

// ToVisualLevelEQ applies the EQ predicate on the "to_visual_level" field.
func ToVisualLevelEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldToVisualLevel, v))
}

// ToVisualLevelNEQ applies the NEQ predicate on the "to_visual_level" field.
func ToVisualLevelNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldToVisualLevel, v))
}

// ToVisualLevelIn applies the In predicate on the "to_visual_level" field.
func ToVisualLevelIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldToVisualLevel, vs...))
}

// ToVisualLevelNotIn applies the NotIn predicate on the "to_visual_level" field.
func ToVisualLevelNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldToVisualLevel, vs...))
}

// ToVisualLevelGT applies the GT predicate on the "to_visual_level" field.
func ToVisualLevelGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldToVisualLevel, v))
}

// ToVisualLevelGTE applies the GTE predicate on the "to_visual_level" field.
func ToVisualLevelGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldToVisualLevel, v))
}

// ToVisualLevelLT applies the LT predicate on the "to_visual_level" field.
func ToVisualLevelLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldToVisualLevel, v))
}

// ToVisualLevelLTE applies the LTE predicate on the "to_visual_level" field.
func ToVisualLevelLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldToVisualLevel, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldCorrectCount, v))
}

// GroupSizeEQ applies the EQ predicate on the "group_size" field.
func GroupSizeEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldGroupSize, v))
}

// GroupSizeNEQ applies the NEQ predicate on the "group_size" field.
func GroupSizeNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldGroupSize, v))
}

// GroupSizeIn applies the In predicate on the "group_size" field.
func GroupSizeIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldGroupSize, vs...))
}

// GroupSizeNotIn applies the NotIn predicate on the "group_size" field.
func GroupSizeNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldGroupSize, vs...))
}

// GroupSizeGT applies the GT predicate on the "group_size" field.
func GroupSizeGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldGroupSize, v))
}

// GroupSizeGTE applies the GTE predicate on the "group_size" field.
func GroupSizeGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldGroupSize, v))
}

// GroupSizeLT applies the LT predicate on the "group_size" field.
func GroupSizeLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldGroupSize, v))
}

// GroupSizeLTE applies the LTE predicate on the "group_size" field.
func GroupSizeLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldGroupSize, v))
}

// AvgResponseMsEQ applies the EQ predicate on the "avg_response_ms" field.
func AvgResponseMsEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldAvgResponseMs, v))
}

// AvgResponseMsNEQ applies the NEQ predicate on the "avg_response_ms" field.
func AvgResponseMsNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldAvgResponseMs, v))
}

// AvgResponseMsIn applies the In predicate on the "avg_response_ms" field.
func AvgResponseMsIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldAvgResponseMs, vs...))
}

// AvgResponseMsNotIn applies the NotIn predicate on the "avg_response_ms" field.
func AvgResponseMsNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldAvgResponseMs, vs...))
}

// AvgResponseMsGT applies the GT predicate on the "avg_response_ms" field.
func AvgResponseMsGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldAvgResponseMs, v))
}

// AvgResponseMsGTE applies the GTE predicate on the "avg_response_ms" field.
func AvgResponseMsGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldAvgResponseMs, v))
}

// AvgResponseMsLT applies the LT predicate on the "avg_response_ms" field.
func AvgResponseMsLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldAvgResponseMs, v))
}

// AvgResponseMsLTE applies the LTE predicate on the "avg_response_ms" field.
func AvgResponseMsLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldAvgResponseMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.NotPredicates(p))
}
