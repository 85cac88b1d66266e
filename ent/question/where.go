// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"github.com/prepwise/satprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// Qid applies equality check predicate on the "qid" field. It's identical to QidEQ.
func Qid(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQid, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubject, v))
}

// Skill applies equality check predicate on the "skill" field. It's identical to SkillEQ.
func Skill(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSkill, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDomain, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// OptionA applies equality check predicate on the "option_a" field. It's identical to OptionAEQ.
func OptionA(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionA, v))
}

// OptionB applies equality check predicate on the "option_b" field. It's identical to OptionBEQ.
func OptionB(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionB, v))
}

// OptionC applies equality check predicate on the "option_c" field. It's identical to OptionCEQ.
func OptionC(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionC, v))
}

// OptionD applies equality check predicate on the "option_d" field. It's identical to OptionDEQ.
func OptionD(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionD, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAnswer, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldRationale, v))
}

// QidEQ applies the EQ predicate on the "qid" field.
func QidEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQid, v))
}

// QidNEQ applies the NEQ predicate on the "qid" field.
func QidNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQid, v))
}

// QidIn applies the In predicate on the "qid" field.
func QidIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQid, vs...))
}

// QidNotIn applies the NotIn predicate on the "qid" field.
func QidNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQid, vs...))
}

// QidGT applies the GT predicate on the "qid" field.
func QidGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQid, v))
}

// QidGTE applies the GTE predicate on the "qid" field.
func QidGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQid, v))
}

// QidLT applies the LT predicate on the "qid" field.
func QidLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQid, v))
}

// QidLTE applies the LTE predicate on the "qid" field.
func QidLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQid, v))
}

// QidContains applies the Contains predicate on the "qid" field.
func QidContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQid, v))
}

// QidHasPrefix applies the HasPrefix predicate on the "qid" field.
func QidHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQid, v))
}

// QidHasSuffix applies the HasSuffix predicate on the "qid" field.
func QidHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQid, v))
}

// QidEqualFold applies the EqualFold predicate on the "qid" field.
func QidEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQid, v))
}

// QidContainsFold applies the ContainsFold predicate on the "qid" field.
func QidContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQid, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSubject, v))
}

// SkillEQ applies the EQ predicate on the "skill" field.
func SkillEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSkill, v))
}

// SkillNEQ applies the NEQ predicate on the "skill" field.
func SkillNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSkill, v))
}

// SkillIn applies the In predicate on the "skill" field.
func SkillIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSkill, vs...))
}

// SkillNotIn applies the NotIn predicate on the "skill" field.
func SkillNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSkill, vs...))
}

// SkillGT applies the GT predicate on the "skill" field.
func SkillGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSkill, v))
}

// SkillGTE applies the GTE predicate on the "skill" field.
func SkillGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSkill, v))
}

// SkillLT applies the LT predicate on the "skill" field.
func SkillLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSkill, v))
}

// SkillLTE applies the LTE predicate on the "skill" field.
func SkillLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSkill, v))
}

// SkillContains applies the Contains predicate on the "skill" field.
func SkillContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSkill, v))
}

// SkillHasPrefix applies the HasPrefix predicate on the "skill" field.
func SkillHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSkill, v))
}

// SkillHasSuffix applies the HasSuffix predicate on the "skill" field.
func SkillHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSkill, v))
}

// SkillEqualFold applies the EqualFold predicate on the "skill" field.
func SkillEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSkill, v))
}

// SkillContainsFold applies the ContainsFold predicate on the "skill" field.
func SkillContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSkill, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldDomain, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldDifficulty, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPrompt, v))
}

// OptionAEQ applies the EQ predicate on the "option_a" field.
func OptionAEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionA, v))
}

// OptionANEQ applies the NEQ predicate on the "option_a" field.
func OptionANEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOptionA, v))
}

// OptionAIn applies the In predicate on the "option_a" field.
func OptionAIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOptionA, vs...))
}

// OptionANotIn applies the NotIn predicate on the "option_a" field.
func OptionANotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOptionA, vs...))
}

// OptionAGT applies the GT predicate on the "option_a" field.
func OptionAGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOptionA, v))
}

// OptionAGTE applies the GTE predicate on the "option_a" field.
func OptionAGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOptionA, v))
}

// OptionALT applies the LT predicate on the "option_a" field.
func OptionALT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOptionA, v))
}

// OptionALTE applies the LTE predicate on the "option_a" field.
func OptionALTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOptionA, v))
}

// OptionAContains applies the Contains predicate on the "option_a" field.
func OptionAContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOptionA, v))
}

// OptionAHasPrefix applies the HasPrefix predicate on the "option_a" field.
func OptionAHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOptionA, v))
}

// OptionAHasSuffix applies the HasSuffix predicate on the "option_a" field.
func OptionAHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOptionA, v))
}

// OptionAEqualFold applies the EqualFold predicate on the "option_a" field.
func OptionAEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOptionA, v))
}

// OptionAContainsFold applies the ContainsFold predicate on the "option_a" field.
func OptionAContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOptionA, v))
}

// OptionBEQ applies the EQ predicate on the "option_b" field.
func OptionBEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionB, v))
}

// OptionBNEQ applies the NEQ predicate on the "option_b" field.
func OptionBNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOptionB, v))
}

// OptionBIn applies the In predicate on the "option_b" field.
func OptionBIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOptionB, vs...))
}

// OptionBNotIn applies the NotIn predicate on the "option_b" field.
func OptionBNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOptionB, vs...))
}

// OptionBGT applies the GT predicate on the "option_b" field.
func OptionBGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOptionB, v))
}

// OptionBGTE applies the GTE predicate on the "option_b" field.
func OptionBGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOptionB, v))
}

// OptionBLT applies the LT predicate on the "option_b" field.
func OptionBLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOptionB, v))
}

// OptionBLTE applies the LTE predicate on the "option_b" field.
func OptionBLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOptionB, v))
}

// OptionBContains applies the Contains predicate on the "option_b" field.
func OptionBContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOptionB, v))
}

// OptionBHasPrefix applies the HasPrefix predicate on the "option_b" field.
func OptionBHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOptionB, v))
}

// OptionBHasSuffix applies the HasSuffix predicate on the "option_b" field.
func OptionBHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOptionB, v))
}

// OptionBEqualFold applies the EqualFold predicate on the "option_b" field.
func OptionBEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOptionB, v))
}

// OptionBContainsFold applies the ContainsFold predicate on the "option_b" field.
func OptionBContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOptionB, v))
}

// OptionCEQ applies the EQ predicate on the "option_c" field.
func OptionCEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionC, v))
}

// OptionCNEQ applies the NEQ predicate on the "option_c" field.
func OptionCNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOptionC, v))
}

// OptionCIn applies the In predicate on the "option_c" field.
func OptionCIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOptionC, vs...))
}

// OptionCNotIn applies the NotIn predicate on the "option_c" field.
func OptionCNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOptionC, vs...))
}

// OptionCGT applies the GT predicate on the "option_c" field.
func OptionCGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOptionC, v))
}

// OptionCGTE applies the GTE predicate on the "option_c" field.
func OptionCGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOptionC, v))
}

// OptionCLT applies the LT predicate on the "option_c" field.
func OptionCLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOptionC, v))
}

// OptionCLTE applies the LTE predicate on the "option_c" field.
func OptionCLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOptionC, v))
}

// OptionCContains applies the Contains predicate on the "option_c" field.
func OptionCContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOptionC, v))
}

// OptionCHasPrefix applies the HasPrefix predicate on the "option_c" field.
func OptionCHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOptionC, v))
}

// OptionCHasSuffix applies the HasSuffix predicate on the "option_c" field.
func OptionCHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOptionC, v))
}

// OptionCEqualFold applies the EqualFold predicate on the "option_c" field.
func OptionCEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOptionC, v))
}

// OptionCContainsFold applies the ContainsFold predicate on the "option_c" field.
func OptionCContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOptionC, v))
}

// OptionDEQ applies the EQ predicate on the "option_d" field.
func OptionDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionD, v))
}

// OptionDNEQ applies the NEQ predicate on the "option_d" field.
func OptionDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOptionD, v))
}

// OptionDIn applies the In predicate on the "option_d" field.
func OptionDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOptionD, vs...))
}

// OptionDNotIn applies the NotIn predicate on the "option_d" field.
func OptionDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOptionD, vs...))
}

// OptionDGT applies the GT predicate on the "option_d" field.
func OptionDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOptionD, v))
}

// OptionDGTE applies the GTE predicate on the "option_d" field.
func OptionDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOptionD, v))
}

// OptionDLT applies the LT predicate on the "option_d" field.
func OptionDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOptionD, v))
}

// OptionDLTE applies the LTE predicate on the "option_d" field.
func OptionDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOptionD, v))
}

// OptionDContains applies the Contains predicate on the "option_d" field.
func OptionDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOptionD, v))
}

// OptionDHasPrefix applies the HasPrefix predicate on the "option_d" field.
func OptionDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOptionD, v))
}

// OptionDHasSuffix applies the HasSuffix predicate on the "option_d" field.
func OptionDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOptionD, v))
}

// OptionDEqualFold applies the EqualFold predicate on the "option_d" field.
func OptionDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOptionD, v))
}

// OptionDContainsFold applies the ContainsFold predicate on the "option_d" field.
func OptionDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOptionD, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldAnswer, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleIsNil applies the IsNil predicate on the "rationale" field.
func RationaleIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldRationale))
}

// RationaleNotNil applies the NotNil predicate on the "rationale" field.
func RationaleNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldRationale))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldRationale, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
