// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prepwise/satprep/ent/attemptevent"
	"github.com/prepwise/satprep/ent/llmrequestevent"
	"github.com/prepwise/satprep/ent/question"
	"github.com/prepwise/satprep/ent/schema"
	"github.com/prepwise/satprep/ent/snapshot"
	"github.com/prepwise/satprep/ent/studyplan"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventFields[0].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescSkillID is the schema descriptor for skill_id field.
	attempteventDescSkillID := attempteventFields[1].Descriptor()
	// attemptevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	attemptevent.SkillIDValidator = attempteventDescSkillID.Validators[0].(func(string) error)
	// attempteventDescSubject is the schema descriptor for subject field.
	attempteventDescSubject := attempteventFields[2].Descriptor()
	// attemptevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	attemptevent.SubjectValidator = attempteventDescSubject.Validators[0].(func(string) error)
	// attempteventDescDifficulty is the schema descriptor for difficulty field.
	attempteventDescDifficulty := attempteventFields[3].Descriptor()
	// attemptevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	attemptevent.DifficultyValidator = attempteventDescDifficulty.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQid is the schema descriptor for qid field.
	questionDescQid := questionFields[0].Descriptor()
	// question.QidValidator is a validator for the "qid" field. It is called by the builders before save.
	question.QidValidator = questionDescQid.Validators[0].(func(string) error)
	// questionDescSubject is the schema descriptor for subject field.
	questionDescSubject := questionFields[1].Descriptor()
	// question.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	question.SubjectValidator = questionDescSubject.Validators[0].(func(string) error)
	// questionDescSkill is the schema descriptor for skill field.
	questionDescSkill := questionFields[2].Descriptor()
	// question.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	question.SkillValidator = questionDescSkill.Validators[0].(func(string) error)
	// questionDescDomain is the schema descriptor for domain field.
	questionDescDomain := questionFields[3].Descriptor()
	// question.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	question.DomainValidator = questionDescDomain.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[4].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(string) error)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[5].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	// questionDescOptionA is the schema descriptor for option_a field.
	questionDescOptionA := questionFields[6].Descriptor()
	// question.OptionAValidator is a validator for the "option_a" field. It is called by the builders before save.
	question.OptionAValidator = questionDescOptionA.Validators[0].(func(string) error)
	// questionDescOptionB is the schema descriptor for option_b field.
	questionDescOptionB := questionFields[7].Descriptor()
	// question.OptionBValidator is a validator for the "option_b" field. It is called by the builders before save.
	question.OptionBValidator = questionDescOptionB.Validators[0].(func(string) error)
	// questionDescOptionC is the schema descriptor for option_c field.
	questionDescOptionC := questionFields[8].Descriptor()
	// question.OptionCValidator is a validator for the "option_c" field. It is called by the builders before save.
	question.OptionCValidator = questionDescOptionC.Validators[0].(func(string) error)
	// questionDescOptionD is the schema descriptor for option_d field.
	questionDescOptionD := questionFields[9].Descriptor()
	// question.OptionDValidator is a validator for the "option_d" field. It is called by the builders before save.
	question.OptionDValidator = questionDescOptionD.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[10].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescUserID is the schema descriptor for user_id field.
	snapshotDescUserID := snapshotFields[0].Descriptor()
	// snapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	snapshot.UserIDValidator = snapshotDescUserID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	studyplanFields := schema.StudyPlan{}.Fields()
	_ = studyplanFields
	// studyplanDescUserID is the schema descriptor for user_id field.
	studyplanDescUserID := studyplanFields[0].Descriptor()
	// studyplan.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	studyplan.UserIDValidator = studyplanDescUserID.Validators[0].(func(string) error)
	// studyplanDescUpdatedAt is the schema descriptor for updated_at field.
	studyplanDescUpdatedAt := studyplanFields[2].Descriptor()
	// studyplan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studyplan.DefaultUpdatedAt = studyplanDescUpdatedAt.Default.(func() time.Time)
	// studyplan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studyplan.UpdateDefaultUpdatedAt = studyplanDescUpdatedAt.UpdateDefault.(func() time.Time)
}
