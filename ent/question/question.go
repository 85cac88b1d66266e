// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQid holds the string denoting the qid field in the database.
	FieldQid = "qid"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldSkill holds the string denoting the skill field in the database.
	FieldSkill = "skill"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldOptionA holds the string denoting the option_a field in the database.
	FieldOptionA = "option_a"
	// FieldOptionB holds the string denoting the option_b field in the database.
	FieldOptionB = "option_b"
	// FieldOptionC holds the string denoting the option_c field in the database.
	FieldOptionC = "option_c"
	// FieldOptionD holds the string denoting the option_d field in the database.
	FieldOptionD = "option_d"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldQid,
	FieldSubject,
	FieldSkill,
	FieldDomain,
	FieldDifficulty,
	FieldPrompt,
	FieldOptionA,
	FieldOptionB,
	FieldOptionC,
	FieldOptionD,
	FieldAnswer,
	FieldRationale,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// QidValidator is a validator for the "qid" field. It is called by the builders before save.
	QidValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	SkillValidator func(string) error
	// DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	DomainValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// OptionAValidator is a validator for the "option_a" field. It is called by the builders before save.
	OptionAValidator func(string) error
	// OptionBValidator is a validator for the "option_b" field. It is called by the builders before save.
	OptionBValidator func(string) error
	// OptionCValidator is a validator for the "option_c" field. It is called by the builders before save.
	OptionCValidator func(string) error
	// OptionDValidator is a validator for the "option_d" field. It is called by the builders before save.
	OptionDValidator func(string) error
	// AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	AnswerValidator func(string) error
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQid orders the results by the qid field.
func ByQid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQid, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// BySkill orders the results by the skill field.
func BySkill(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkill, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByOptionA orders the results by the option_a field.
func ByOptionA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionA, opts...).ToFunc()
}

// ByOptionB orders the results by the option_b field.
func ByOptionB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionB, opts...).ToFunc()
}

// ByOptionC orders the results by the option_c field.
func ByOptionC(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionC, opts...).ToFunc()
}

// ByOptionD orders the results by the option_d field.
func ByOptionD(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionD, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}
