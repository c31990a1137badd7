// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mathspiral/mathspiral/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSessionID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSkillID, v))
}

// GroupNumber applies equality check predicate on the "group_number" field. It's identical to GroupNumberEQ.
func GroupNumber(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldGroupNumber, v))
}

// SeqInSession applies equality check predicate on the "seq_in_session" field. It's identical to SeqInSessionEQ.
func SeqInSession(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSeqInSession, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldPrompt, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCorrectAnswer, v))
}

// GivenAnswer applies equality check predicate on the "given_answer" field. It's identical to GivenAnswerEQ.
func GivenAnswer(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldGivenAnswer, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCorrect, v))
}

// ResponseTimeMs applies equality check predicate on the "response_time_ms" field. It's identical to ResponseTimeMsEQ.
func ResponseTimeMs(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldResponseTimeMs, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldDifficulty, v))
}

// VisualLevel applies equality check predicate on the "visual_level" field. It's identical to VisualLevelEQ.
func VisualLevel(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldVisualLevel, v))
}

// FactKey applies equality check predicate on the "fact_key" field. It's identical to FactKeyEQ.
func FactKey(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFactKey, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldSessionID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldSkillID, v))
}

// GroupNumberEQ applies the EQ predicate on the "group_number" field.
func GroupNumberEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldGroupNumber, v))
}

// GroupNumberNEQ applies the NEQ predicate on the "group_number" field.
func GroupNumberNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldGroupNumber, v))
}

// GroupNumberIn applies the In predicate on the "group_number" field.
func GroupNumberIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldGroupNumber, vs...))
}

// GroupNumberNotIn applies the NotIn predicate on the "group_number" field.
func GroupNumberNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldGroupNumber, vs...))
}

// GroupNumberGT applies the GT predicate on the "group_number" field.
func GroupNumberGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldGroupNumber, v))
}

// GroupNumberGTE applies the GTE predicate on the "group_number" field.
func GroupNumberGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldGroupNumber, v))
}

// GroupNumberLT applies the LT predicate on the "group_number" field.
func GroupNumberLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldGroupNumber, v))
}

// GroupNumberLTE applies the LTE predicate on the "group_number" field.
func GroupNumberLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldGroupNumber, v))
}

// SeqInSessionEQ applies the EQ predicate on the "seq_in_session" field.
func SeqInSessionEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSeqInSession, v))
}

// SeqInSessionNEQ applies the NEQ predicate on the "seq_in_session" field.
func SeqInSessionNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSeqInSession, v))
}

// SeqInSessionIn applies the In predicate on the "seq_in_session" field.
func SeqInSessionIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSeqInSession, vs...))
}

// SeqInSessionNotIn applies the NotIn predicate on the "seq_in_session" field.
func SeqInSessionNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSeqInSession, vs...))
}

// SeqInSessionGT applies the GT predicate on the "seq_in_session" field.
func SeqInSessionGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSeqInSession, v))
}

// SeqInSessionGTE applies the GTE predicate on the "seq_in_session" field.
func SeqInSessionGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSeqInSession, v))
}

// SeqInSessionLT applies the LT predicate on the "seq_in_session" field.
func SeqInSessionLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSeqInSession, v))
}

// SeqInSessionLTE applies the LTE predicate on the "seq_in_session" field.
func SeqInSessionLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSeqInSession, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldPrompt, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// GivenAnswerEQ applies the EQ predicate on the "given_answer" field.
func GivenAnswerEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldGivenAnswer, v))
}

// GivenAnswerNEQ applies the NEQ predicate on the "given_answer" field.
func GivenAnswerNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldGivenAnswer, v))
}

// GivenAnswerIn applies the In predicate on the "given_answer" field.
func GivenAnswerIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldGivenAnswer, vs...))
}

// GivenAnswerNotIn applies the NotIn predicate on the "given_answer" field.
func GivenAnswerNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldGivenAnswer, vs...))
}

// GivenAnswerGT applies the GT predicate on the "given_answer" field.
func GivenAnswerGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldGivenAnswer, v))
}

// GivenAnswerGTE applies the GTE predicate on the "given_answer" field.
func GivenAnswerGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldGivenAnswer, v))
}

// GivenAnswerLT applies the LT predicate on the "given_answer" field.
func GivenAnswerLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldGivenAnswer, v))
}

// GivenAnswerLTE applies the LTE predicate on the "given_answer" field.
func GivenAnswerLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldGivenAnswer, v))
}

// GivenAnswerContains applies the Contains predicate on the "given_answer" field.
func GivenAnswerContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldGivenAnswer, v))
}

// GivenAnswerHasPrefix applies the HasPrefix predicate on the "given_answer" field.
func GivenAnswerHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldGivenAnswer, v))
}

// GivenAnswerHasSuffix applies the HasSuffix predicate on the "given_answer" field.
func GivenAnswerHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldGivenAnswer, v))
}

// GivenAnswerEqualFold applies the EqualFold predicate on the "given_answer" field.
func GivenAnswerEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldGivenAnswer, v))
}

// GivenAnswerContainsFold applies the ContainsFold predicate on the "given_answer" field.
func GivenAnswerContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldGivenAnswer, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCorrect, v))
}

// ResponseTimeMsEQ applies the EQ predicate on the "response_time_ms" field.
func ResponseTimeMsEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsNEQ applies the NEQ predicate on the "response_time_ms" field.
func ResponseTimeMsNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsIn applies the In predicate on the "response_time_ms" field.
func ResponseTimeMsIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsNotIn applies the NotIn predicate on the "response_time_ms" field.
func ResponseTimeMsNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsGT applies the GT predicate on the "response_time_ms" field.
func ResponseTimeMsGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldResponseTimeMs, v))
}

// ResponseTimeMsGTE applies the GTE predicate on the "response_time_ms" field.
func ResponseTimeMsGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsLT applies the LT predicate on the "response_time_ms" field.
func ResponseTimeMsLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldResponseTimeMs, v))
}

// ResponseTimeMsLTE applies the LTE predicate on the "response_time_ms" field.
func ResponseTimeMsLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldResponseTimeMs, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldDifficulty, v))
}

// VisualLevelEQ applies the EQ predicate on the "visual_level" field.
func VisualLevelEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldVisualLevel, v))
}

// VisualLevelNEQ applies the NEQ predicate on the "visual_level" field.
func VisualLevelNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldVisualLevel, v))
}

// VisualLevelIn applies the In predicate on the "visual_level" field.
func VisualLevelIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldVisualLevel, vs...))
}

// VisualLevelNotIn applies the NotIn predicate on the "visual_level" field.
func VisualLevelNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldVisualLevel, vs...))
}

// VisualLevelGT applies the GT predicate on the "visual_level" field.
func VisualLevelGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldVisualLevel, v))
}

// VisualLevelGTE applies the GTE predicate on the "visual_level" field.
func VisualLevelGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldVisualLevel, v))
}

// VisualLevelLT applies the LT predicate on the "visual_level" field.
func VisualLevelLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldVisualLevel, v))
}

// VisualLevelLTE applies the LTE predicate on the "visual_level" field.
func VisualLevelLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldVisualLevel, v))
}

// FactKeyEQ applies the EQ predicate on the "fact_key" field.
func FactKeyEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFactKey, v))
}

// FactKeyNEQ applies the NEQ predicate on the "fact_key" field.
func FactKeyNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldFactKey, v))
}

// FactKeyIn applies the In predicate on the "fact_key" field.
func FactKeyIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldFactKey, vs...))
}

// FactKeyNotIn applies the NotIn predicate on the "fact_key" field.
func FactKeyNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldFactKey, vs...))
}

// FactKeyGT applies the GT predicate on the "fact_key" field.
func FactKeyGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldFactKey, v))
}

// FactKeyGTE applies the GTE predicate on the "fact_key" field.
func FactKeyGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldFactKey, v))
}

// FactKeyLT applies the LT predicate on the "fact_key" field.
func FactKeyLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldFactKey, v))
}

// FactKeyLTE applies the LTE predicate on the "fact_key" field.
func FactKeyLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldFactKey, v))
}

// FactKeyContains applies the Contains predicate on the "fact_key" field.
func FactKeyContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldFactKey, v))
}

// FactKeyHasPrefix applies the HasPrefix predicate on the "fact_key" field.
func FactKeyHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldFactKey, v))
}

// FactKeyHasSuffix applies the HasSuffix predicate on the "fact_key" field.
func FactKeyHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldFactKey, v))
}

// FactKeyIsNil applies the IsNil predicate on the "fact_key" field.
func FactKeyIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldFactKey))
}

// FactKeyNotNil applies the NotNil predicate on the "fact_key" field.
func FactKeyNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldFactKey))
}

// FactKeyEqualFold applies the EqualFold predicate on the "fact_key" field.
func FactKeyEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldFactKey, v))
}

// FactKeyContainsFold applies the ContainsFold predicate on the "fact_key" field.
func FactKeyContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldFactKey, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.NotPredicates(p))
}
