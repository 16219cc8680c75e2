// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ClusterArtifact is the predicate function for clusterartifact builders.
type ClusterArtifact func(*sql.Selector)

// InteractionEvent is the predicate function for interactionevent builders.
type InteractionEvent func(*sql.Selector)

// MasteryState is the predicate function for masterystate builders.
type MasteryState func(*sql.Selector)

// QuizAttempt is the predicate function for quizattempt builders.
type QuizAttempt func(*sql.Selector)
