package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClusterArtifact stores one trained behavior-cluster model as an opaque
// versioned blob. Retraining inserts a new row; the latest row wins.
// Old artifacts are kept for audit.
type ClusterArtifact struct {
	ent.Schema
}

func (ClusterArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("version").
			NotEmpty().
			Unique().
			Comment("UUID assigned at training time"),
		field.Int("sample_count").
			Min(0).
			Comment("Number of interaction records the model was fit on"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized model: centroids, labels, feature names"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ClusterArtifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
