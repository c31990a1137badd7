// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mathspiral/mathspiral/ent/adaptationevent"
	"github.com/mathspiral/mathspiral/ent/attempt"
	"github.com/mathspiral/mathspiral/ent/factmastery"
	"github.com/mathspiral/mathspiral/ent/practicesession"
	"github.com/mathspiral/mathspiral/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adaptationeventMixin := schema.AdaptationEvent{}.Mixin()
	adaptationeventMixinFields0 := adaptationeventMixin[0].Fields()
	_ = adaptationeventMixinFields0
	adaptationeventFields := schema.AdaptationEvent{}.Fields()
	_ = adaptationeventFields
	// adaptationeventDescTimestamp is the schema descriptor for timestamp field.
	adaptationeventDescTimestamp := adaptationeventMixinFields0[1].Descriptor()
	// adaptationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	adaptationevent.DefaultTimestamp = adaptationeventDescTimestamp.Default.(func() time.Time)
	// adaptationeventDescSessionID is the schema descriptor for session_id field.
	adaptationeventDescSessionID := adaptationeventMixinFields0[2].Descriptor()
	// adaptationevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	adaptationevent.SessionIDValidator = adaptationeventDescSessionID.Validators[0].(func(string) error)
	// adaptationeventDescSkillID is the schema descriptor for skill_id field.
	adaptationeventDescSkillID := adaptationeventMixinFields0[3].Descriptor()
	// adaptationevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	adaptationevent.SkillIDValidator = adaptationeventDescSkillID.Validators[0].(func(string) error)
	// adaptationeventDescOutcome is the schema descriptor for outcome field.
	adaptationeventDescOutcome := adaptationeventFields[0].Descriptor()
	// adaptationevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	adaptationevent.OutcomeValidator = adaptationeventDescOutcome.Validators[0].(func(string) error)
	attemptMixin := schema.Attempt{}.Mixin()
	attemptMixinFields0 := attemptMixin[0].Fields()
	_ = attemptMixinFields0
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescTimestamp is the schema descriptor for timestamp field.
	attemptDescTimestamp := attemptMixinFields0[1].Descriptor()
	// attempt.DefaultTimestamp holds the default value on creation for the timestamp field.
	attempt.DefaultTimestamp = attemptDescTimestamp.Default.(func() time.Time)
	// attemptDescSessionID is the schema descriptor for session_id field.
	attemptDescSessionID := attemptMixinFields0[2].Descriptor()
	// attempt.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attempt.SessionIDValidator = attemptDescSessionID.Validators[0].(func(string) error)
	// attemptDescSkillID is the schema descriptor for skill_id field.
	attemptDescSkillID := attemptMixinFields0[3].Descriptor()
	// attempt.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	attempt.SkillIDValidator = attemptDescSkillID.Validators[0].(func(string) error)
	// attemptDescPrompt is the schema descriptor for prompt field.
	attemptDescPrompt := attemptFields[1].Descriptor()
	// attempt.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	attempt.PromptValidator = attemptDescPrompt.Validators[0].(func(string) error)
	// attemptDescCorrectAnswer is the schema descriptor for correct_answer field.
	attemptDescCorrectAnswer := attemptFields[2].Descriptor()
	// attempt.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	attempt.CorrectAnswerValidator = attemptDescCorrectAnswer.Validators[0].(func(string) error)
	// attemptDescGivenAnswer is the schema descriptor for given_answer field.
	attemptDescGivenAnswer := attemptFields[3].Descriptor()
	// attempt.GivenAnswerValidator is a validator for the "given_answer" field. It is called by the builders before save.
	attempt.GivenAnswerValidator = attemptDescGivenAnswer.Validators[0].(func(string) error)
	factmasteryFields := schema.FactMastery{}.Fields()
	_ = factmasteryFields
	// factmasteryDescSkillID is the schema descriptor for skill_id field.
	factmasteryDescSkillID := factmasteryFields[0].Descriptor()
	// factmastery.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	factmastery.SkillIDValidator = factmasteryDescSkillID.Validators[0].(func(string) error)
	// factmasteryDescFactKey is the schema descriptor for fact_key field.
	factmasteryDescFactKey := factmasteryFields[1].Descriptor()
	// factmastery.FactKeyValidator is a validator for the "fact_key" field. It is called by the builders before save.
	factmastery.FactKeyValidator = factmasteryDescFactKey.Validators[0].(func(string) error)
	// factmasteryDescTimesSeen is the schema descriptor for times_seen field.
	factmasteryDescTimesSeen := factmasteryFields[2].Descriptor()
	// factmastery.DefaultTimesSeen holds the default value on creation for the times_seen field.
	factmastery.DefaultTimesSeen = factmasteryDescTimesSeen.Default.(int)
	// factmasteryDescTimesCorrect is the schema descriptor for times_correct field.
	factmasteryDescTimesCorrect := factmasteryFields[3].Descriptor()
	// factmastery.DefaultTimesCorrect holds the default value on creation for the times_correct field.
	factmastery.DefaultTimesCorrect = factmasteryDescTimesCorrect.Default.(int)
	// factmasteryDescLastSeen is the schema descriptor for last_seen field.
	factmasteryDescLastSeen := factmasteryFields[4].Descriptor()
	// factmastery.DefaultLastSeen holds the default value on creation for the last_seen field.
	factmastery.DefaultLastSeen = factmasteryDescLastSeen.Default.(func() time.Time)
	// factmastery.UpdateDefaultLastSeen holds the default value on update for the last_seen field.
	factmastery.UpdateDefaultLastSeen = factmasteryDescLastSeen.UpdateDefault.(func() time.Time)
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescSkillID is the schema descriptor for skill_id field.
	practicesessionDescSkillID := practicesessionFields[1].Descriptor()
	// practicesession.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	practicesession.SkillIDValidator = practicesessionDescSkillID.Validators[0].(func(string) error)
	// practicesessionDescStatus is the schema descriptor for status field.
	practicesessionDescStatus := practicesessionFields[2].Descriptor()
	// practicesession.DefaultStatus holds the default value on creation for the status field.
	practicesession.DefaultStatus = practicesessionDescStatus.Default.(string)
	// practicesessionDescStartedAt is the schema descriptor for started_at field.
	practicesessionDescStartedAt := practicesessionFields[3].Descriptor()
	// practicesession.DefaultStartedAt holds the default value on creation for the started_at field.
	practicesession.DefaultStartedAt = practicesessionDescStartedAt.Default.(func() time.Time)
	// practicesessionDescFinalDifficulty is the schema descriptor for final_difficulty field.
	practicesessionDescFinalDifficulty := practicesessionFields[7].Descriptor()
	// practicesession.DefaultFinalDifficulty holds the default value on creation for the final_difficulty field.
	practicesession.DefaultFinalDifficulty = practicesessionDescFinalDifficulty.Default.(int)
	// practicesessionDescFinalVisualLevel is the schema descriptor for final_visual_level field.
	practicesessionDescFinalVisualLevel := practicesessionFields[8].Descriptor()
	// practicesession.DefaultFinalVisualLevel holds the default value on creation for the final_visual_level field.
	practicesession.DefaultFinalVisualLevel = practicesessionDescFinalVisualLevel.Default.(int)
	// practicesessionDescTotalProblems is the schema descriptor for total_problems field.
	practicesessionDescTotalProblems := practicesessionFields[9].Descriptor()
	// practicesession.DefaultTotalProblems holds the default value on creation for the total_problems field.
	practicesession.DefaultTotalProblems = practicesessionDescTotalProblems.Default.(int)
	// practicesessionDescCorrectCount is the schema descriptor for correct_count field.
	practicesessionDescCorrectCount := practicesessionFields[10].Descriptor()
	// practicesession.DefaultCorrectCount holds the default value on creation for the correct_count field.
	practicesession.DefaultCorrectCount = practicesessionDescCorrectCount.Default.(int)
	// practicesessionDescAvgResponseMs is the schema descriptor for avg_response_ms field.
	practicesessionDescAvgResponseMs := practicesessionFields[11].Descriptor()
	// practicesession.DefaultAvgResponseMs holds the default value on creation for the avg_response_ms field.
	practicesession.DefaultAvgResponseMs = practicesessionDescAvgResponseMs.Default.(int)
	// practicesessionDescMaxDifficulty is the schema descriptor for max_difficulty field.
	practicesessionDescMaxDifficulty := practicesessionFields[12].Descriptor()
	// practicesession.DefaultMaxDifficulty holds the default value on creation for the max_difficulty field.
	practicesession.DefaultMaxDifficulty = practicesessionDescMaxDifficulty.Default.(int)
	// practicesessionDescTopTierCompleted is the schema descriptor for top_tier_completed field.
	practicesessionDescTopTierCompleted := practicesessionFields[13].Descriptor()
	// practicesession.DefaultTopTierCompleted holds the default value on creation for the top_tier_completed field.
	practicesession.DefaultTopTierCompleted = practicesessionDescTopTierCompleted.Default.(bool)
	// practicesessionDescDurationSecs is the schema descriptor for duration_secs field.
	practicesessionDescDurationSecs := practicesessionFields[14].Descriptor()
	// practicesession.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	practicesession.DefaultDurationSecs = practicesessionDescDurationSecs.Default.(int)
}
