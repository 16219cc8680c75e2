package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttempt records the full outcome of one quiz submission: raw score,
// the difficulty decision, the updated mastery estimate, the behavior
// archetype and the synthesized recommendation.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("Caller-assigned UUID for the attempt"),
		field.String("user_id").NotEmpty(),
		field.String("topic_id").NotEmpty(),
		field.Float("score").Min(0).Max(100),
		field.Float("avg_time").Min(0),
		field.String("new_difficulty").NotEmpty(),
		field.String("speed_label").NotEmpty(),
		field.Float("mastery").Min(0).Max(1),
		field.String("behavior_cluster").NotEmpty(),
		field.String("action").NotEmpty(),
		field.String("message").NotEmpty(),
		field.String("next_difficulty").NotEmpty(),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "topic_id"),
	}
}
