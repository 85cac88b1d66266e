package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyPlan holds the single current study plan per learner as a JSON
// blob. Regeneration replaces the row wholesale; there is no plan history.
type StudyPlan struct {
	ent.Schema
}

func (StudyPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty(),
		field.Bytes("data").
			Comment("Serialized studyplan.Plan"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (StudyPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
