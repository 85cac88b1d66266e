package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one row of the practice question bank.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("qid").
			Unique().
			NotEmpty().
			Comment("Stable external question ID"),
		field.String("subject").
			NotEmpty(),
		field.String("skill").
			NotEmpty().
			Comment("Catalog skill ID"),
		field.String("domain").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty(),
		field.Text("prompt").
			NotEmpty(),
		field.Text("option_a").NotEmpty(),
		field.Text("option_b").NotEmpty(),
		field.Text("option_c").NotEmpty(),
		field.Text("option_d").NotEmpty(),
		field.String("answer").
			NotEmpty().
			Comment("Correct option letter, A-D"),
		field.Text("rationale").
			Optional(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
		index.Fields("skill", "difficulty"),
	}
}
