package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single answered practice question.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Learner this attempt belongs to"),
		field.String("skill_id").
			NotEmpty().
			Comment("Catalog skill the question targeted"),
		field.String("subject").
			NotEmpty().
			Comment("math or reading-writing"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds spent on the question"),
		field.Float("expected_accuracy").
			Comment("ELO expectation computed before the answer was known"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("skill_id"),
		index.Fields("user_id", "skill_id"),
	}
}
