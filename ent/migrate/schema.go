// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClusterArtifactsColumns holds the columns for the "cluster_artifacts" table.
	ClusterArtifactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "version", Type: field.TypeString, Unique: true},
		{Name: "sample_count", Type: field.TypeInt},
		{Name: "data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ClusterArtifactsTable holds the schema information for the "cluster_artifacts" table.
	ClusterArtifactsTable = &schema.Table{
		Name:       "cluster_artifacts",
		Columns:    ClusterArtifactsColumns,
		PrimaryKey: []*schema.Column{ClusterArtifactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clusterartifact_created_at",
				Unique:  false,
				Columns: []*schema.Column{ClusterArtifactsColumns[4]},
			},
		},
	}
	// InteractionEventsColumns holds the columns for the "interaction_events" table.
	InteractionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "video_id", Type: field.TypeString},
		{Name: "pause_count", Type: field.TypeInt},
		{Name: "rewatch_count", Type: field.TypeInt},
		{Name: "skip_ratio", Type: field.TypeFloat64},
		{Name: "watch_percentage", Type: field.TypeFloat64},
	}
	// InteractionEventsTable holds the schema information for the "interaction_events" table.
	InteractionEventsTable = &schema.Table{
		Name:       "interaction_events",
		Columns:    InteractionEventsColumns,
		PrimaryKey: []*schema.Column{InteractionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interactionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[1]},
			},
			{
				Name:    "interactionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[2]},
			},
			{
				Name:    "interactionevent_user_id_video_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[3], InteractionEventsColumns[4]},
			},
		},
	}
	// MasteryStatesColumns holds the columns for the "mastery_states" table.
	MasteryStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "p_known", Type: field.TypeFloat64},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteryStatesTable holds the schema information for the "mastery_states" table.
	MasteryStatesTable = &schema.Table{
		Name:       "mastery_states",
		Columns:    MasteryStatesColumns,
		PrimaryKey: []*schema.Column{MasteryStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masterystate_user_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryStatesColumns[1], MasteryStatesColumns[2]},
			},
		},
	}
	// QuizAttemptsColumns holds the columns for the "quiz_attempts" table.
	QuizAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "avg_time", Type: field.TypeFloat64},
		{Name: "new_difficulty", Type: field.TypeString},
		{Name: "speed_label", Type: field.TypeString},
		{Name: "mastery", Type: field.TypeFloat64},
		{Name: "behavior_cluster", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "message", Type: field.TypeString},
		{Name: "next_difficulty", Type: field.TypeString},
	}
	// QuizAttemptsTable holds the schema information for the "quiz_attempts" table.
	QuizAttemptsTable = &schema.Table{
		Name:       "quiz_attempts",
		Columns:    QuizAttemptsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattempt_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[1]},
			},
			{
				Name:    "quizattempt_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[2]},
			},
			{
				Name:    "quizattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[4]},
			},
			{
				Name:    "quizattempt_user_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[4], QuizAttemptsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClusterArtifactsTable,
		InteractionEventsTable,
		MasteryStatesTable,
		QuizAttemptsTable,
	}
)

func init() {
}
