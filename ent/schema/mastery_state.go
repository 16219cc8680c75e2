package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryState holds the Bayesian mastery estimate for one (user, concept)
// pair. Rows are created lazily on the first update and never deleted.
type MasteryState struct {
	ent.Schema
}

func (MasteryState) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.Float("p_known").
			Min(0).
			Max(1).
			Comment("Probability the learner has mastered the concept"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (MasteryState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "concept_id").Unique(),
	}
}
