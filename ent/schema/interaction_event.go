package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InteractionEvent records one batch of video-watching telemetry for a
// learner. The log is append-only; events are never mutated or deleted.
type InteractionEvent struct {
	ent.Schema
}

func (InteractionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InteractionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("video_id").NotEmpty(),
		field.Int("pause_count").Min(0),
		field.Int("rewatch_count").Min(0),
		field.Float("skip_ratio").Min(0).Max(1),
		field.Float("watch_percentage").Min(0).Max(100),
	}
}

func (InteractionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "video_id"),
	}
}
