// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mathspiral/mathspiral/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldID, id))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSkillID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStatus, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCompletedAt, v))
}

// StartDifficulty applies equality check predicate on the "start_difficulty" field. It's identical to StartDifficultyEQ.
func StartDifficulty(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStartDifficulty, v))
}

// StartVisualLevel applies equality check predicate on the "start_visual_level" field. It's identical to StartVisualLevelEQ.
func StartVisualLevel(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStartVisualLevel, v))
}

// FinalDifficulty applies equality check predicate on the "final_difficulty" field. It's identical to FinalDifficultyEQ.
func FinalDifficulty(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldFinalDifficulty, v))
}

// FinalVisualLevel applies equality check predicate on the "final_visual_level" field. It's identical to FinalVisualLevelEQ.
func FinalVisualLevel(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldFinalVisualLevel, v))
}

// TotalProblems applies equality check predicate on the "total_problems" field. It's identical to TotalProblemsEQ.
func TotalProblems(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTotalProblems, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCorrectCount, v))
}

// AvgResponseMs applies equality check predicate on the "avg_response_ms" field. It's identical to AvgResponseMsEQ.
func AvgResponseMs(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldAvgResponseMs, v))
}

// MaxDifficulty applies equality check predicate on the "max_difficulty" field. It's identical to MaxDifficultyEQ.
func MaxDifficulty(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldMaxDifficulty, v))
}

// TopTierCompleted applies equality check predicate on the "top_tier_completed" field. It's identical to TopTierCompletedEQ.
func TopTierCompleted(v bool) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTopTierCompleted, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldDurationSecs, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldSkillID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldStatus, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldCompletedAt))
}

// StartDifficultyEQ applies the EQ predicate on the "start_difficulty" field.
func StartDifficultyEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStartDifficulty, v))
}

// StartDifficultyNEQ applies the NEQ predicate on the "start_difficulty" field.
func StartDifficultyNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldStartDifficulty, v))
}

// StartDifficultyIn applies the In predicate on the "start_difficulty" field.
func StartDifficultyIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldStartDifficulty, vs...))
}

// StartDifficultyNotIn applies the NotIn predicate on the "start_difficulty" field.
func StartDifficultyNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldStartDifficulty, vs...))
}

// StartDifficultyGT applies the GT predicate on the "start_difficulty" field.
func StartDifficultyGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldStartDifficulty, v))
}

// StartDifficultyGTE applies the GTE predicate on the "start_difficulty" field.
func StartDifficultyGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldStartDifficulty, v))
}

// StartDifficultyLT applies the LT predicate on the "start_difficulty" field.
func StartDifficultyLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldStartDifficulty, v))
}

// StartDifficultyLTE applies the LTE predicate on the "start_difficulty" field.
func StartDifficultyLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldStartDifficulty, v))
}

// StartVisualLevelEQ applies the EQ predicate on the "start_visual_level" field.
func StartVisualLevelEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStartVisualLevel, v))
}

// StartVisualLevelNEQ applies the NEQ predicate on the "start_visual_level" field.
func StartVisualLevelNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldStartVisualLevel, v))
}

// StartVisualLevelIn applies the In predicate on the "start_visual_level" field.
func StartVisualLevelIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldStartVisualLevel, vs...))
}

// StartVisualLevelNotIn applies the NotIn predicate on the "start_visual_level" field.
func StartVisualLevelNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldStartVisualLevel, vs...))
}

// StartVisualLevelGT applies the GT predicate on the "start_visual_level" field.
func StartVisualLevelGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldStartVisualLevel, v))
}

// StartVisualLevelGTE applies the GTE predicate on the "start_visual_level" field.
func StartVisualLevelGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldStartVisualLevel, v))
}

// StartVisualLevelLT applies the LT predicate on the "start_visual_level" field.
func StartVisualLevelLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldStartVisualLevel, v))
}

// StartVisualLevelLTE applies the LTE predicate on the "start_visual_level" field.
func StartVisualLevelLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldStartVisualLevel, v))
}

// FinalDifficultyEQ applies the EQ predicate on the "final_difficulty" field.
func FinalDifficultyEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldFinalDifficulty, v))
}

// FinalDifficultyNEQ applies the NEQ predicate on the "final_difficulty" field.
func FinalDifficultyNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldFinalDifficulty, v))
}

// FinalDifficultyIn applies the In predicate on the "final_difficulty" field.
func FinalDifficultyIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldFinalDifficulty, vs...))
}

// FinalDifficultyNotIn applies the NotIn predicate on the "final_difficulty" field.
func FinalDifficultyNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldFinalDifficulty, vs...))
}

// FinalDifficultyGT applies the GT predicate on the "final_difficulty" field.
func FinalDifficultyGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldFinalDifficulty, v))
}

// FinalDifficultyGTE applies the GTE predicate on the "final_difficulty" field.
func FinalDifficultyGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldFinalDifficulty, v))
}

// FinalDifficultyLT applies the LT predicate on the "final_difficulty" field.
func FinalDifficultyLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldFinalDifficulty, v))
}

// FinalDifficultyLTE applies the LTE predicate on the "final_difficulty" field.
func FinalDifficultyLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldFinalDifficulty, v))
}

// FinalVisualLevelEQ applies the EQ predicate on the "final_visual_level" field.
func FinalVisualLevelEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldFinalVisualLevel, v))
}

// FinalVisualLevelNEQ applies the NEQ predicate on the "final_visual_level" field.
func FinalVisualLevelNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldFinalVisualLevel, v))
}

// FinalVisualLevelIn applies the In predicate on the "final_visual_level" field.
func FinalVisualLevelIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldFinalVisualLevel, vs...))
}

// FinalVisualLevelNotIn applies the NotIn predicate on the "final_visual_level" field.
func FinalVisualLevelNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldFinalVisualLevel, vs...))
}

// FinalVisualLevelGT applies the GT predicate on the "final_visual_level" field.
func FinalVisualLevelGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldFinalVisualLevel, v))
}

// FinalVisualLevelGTE applies the GTE predicate on the "final_visual_level" field.
func FinalVisualLevelGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldFinalVisualLevel, v))
}

// FinalVisualLevelLT applies the LT predicate on the "final_visual_level" field.
func FinalVisualLevelLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldFinalVisualLevel, v))
}

// FinalVisualLevelLTE applies the LTE predicate on the "final_visual_level" field.
func FinalVisualLevelLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldFinalVisualLevel, v))
}

// TotalProblemsEQ applies the EQ predicate on the "total_problems" field.
func TotalProblemsEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTotalProblems, v))
}

// TotalProblemsNEQ applies the NEQ predicate on the "total_problems" field.
func TotalProblemsNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTotalProblems, v))
}

// TotalProblemsIn applies the In predicate on the "total_problems" field.
func TotalProblemsIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTotalProblems, vs...))
}

// TotalProblemsNotIn applies the NotIn predicate on the "total_problems" field.
func TotalProblemsNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTotalProblems, vs...))
}

// TotalProblemsGT applies the GT predicate on the "total_problems" field.
func TotalProblemsGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTotalProblems, v))
}

// TotalProblemsGTE applies the GTE predicate on the "total_problems" field.
func TotalProblemsGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTotalProblems, v))
}

// TotalProblemsLT applies the LT predicate on the "total_problems" field.
func TotalProblemsLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTotalProblems, v))
}

// TotalProblemsLTE applies the LTE predicate on the "total_problems" field.
func TotalProblemsLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTotalProblems, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCorrectCount, v))
}

// AvgResponseMsEQ applies the EQ predicate on the "avg_response_ms" field.
func AvgResponseMsEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldAvgResponseMs, v))
}

// AvgResponseMsNEQ applies the NEQ predicate on the "avg_response_ms" field.
func AvgResponseMsNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldAvgResponseMs, v))
}

// AvgResponseMsIn applies the In predicate on the "avg_response_ms" field.
func AvgResponseMsIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldAvgResponseMs, vs...))
}

// AvgResponseMsNotIn applies the NotIn predicate on the "avg_response_ms" field.
func AvgResponseMsNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldAvgResponseMs, vs...))
}

// AvgResponseMsGT applies the GT predicate on the "avg_response_ms" field.
func AvgResponseMsGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldAvgResponseMs, v))
}

// AvgResponseMsGTE applies the GTE predicate on the "avg_response_ms" field.
func AvgResponseMsGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldAvgResponseMs, v))
}

// AvgResponseMsLT applies the LT predicate on the "avg_response_ms" field.
func AvgResponseMsLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldAvgResponseMs, v))
}

// AvgResponseMsLTE applies the LTE predicate on the "avg_response_ms" field.
func AvgResponseMsLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldAvgResponseMs, v))
}

// MaxDifficultyEQ applies the EQ predicate on the "max_difficulty" field.
func MaxDifficultyEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldMaxDifficulty, v))
}

// MaxDifficultyNEQ applies the NEQ predicate on the "max_difficulty" field.
func MaxDifficultyNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldMaxDifficulty, v))
}

// MaxDifficultyIn applies the In predicate on the "max_difficulty" field.
func MaxDifficultyIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldMaxDifficulty, vs...))
}

// MaxDifficultyNotIn applies the NotIn predicate on the "max_difficulty" field.
func MaxDifficultyNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldMaxDifficulty, vs...))
}

// MaxDifficultyGT applies the GT predicate on the "max_difficulty" field.
func MaxDifficultyGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldMaxDifficulty, v))
}

// MaxDifficultyGTE applies the GTE predicate on the "max_difficulty" field.
func MaxDifficultyGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldMaxDifficulty, v))
}

// MaxDifficultyLT applies the LT predicate on the "max_difficulty" field.
func MaxDifficultyLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldMaxDifficulty, v))
}

// MaxDifficultyLTE applies the LTE predicate on the "max_difficulty" field.
func MaxDifficultyLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldMaxDifficulty, v))
}

// TopTierCompletedEQ applies the EQ predicate on the "top_tier_completed" field.
func TopTierCompletedEQ(v bool) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTopTierCompleted, v))
}

// TopTierCompletedNEQ applies the NEQ predicate on the "top_tier_completed" field.
func TopTierCompletedNEQ(v bool) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTopTierCompleted, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.NotPredicates(p))
}
