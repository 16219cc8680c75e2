// Code generated by ent, DO NOT EDIT.

package quizattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizattempt type in the database.
	Label = "quiz_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldAvgTime holds the string denoting the avg_time field in the database.
	FieldAvgTime = "avg_time"
	// FieldNewDifficulty holds the string denoting the new_difficulty field in the database.
	FieldNewDifficulty = "new_difficulty"
	// FieldSpeedLabel holds the string denoting the speed_label field in the database.
	FieldSpeedLabel = "speed_label"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// FieldBehaviorCluster holds the string denoting the behavior_cluster field in the database.
	FieldBehaviorCluster = "behavior_cluster"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldNextDifficulty holds the string denoting the next_difficulty field in the database.
	FieldNextDifficulty = "next_difficulty"
	// Table holds the table name of the quizattempt in the database.
	Table = "quiz_attempts"
)

// Columns holds all SQL columns for quizattempt fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptID,
	FieldUserID,
	FieldTopicID,
	FieldScore,
	FieldAvgTime,
	FieldNewDifficulty,
	FieldSpeedLabel,
	FieldMastery,
	FieldBehaviorCluster,
	FieldAction,
	FieldMessage,
	FieldNextDifficulty,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(float64) error
	// AvgTimeValidator is a validator for the "avg_time" field. It is called by the builders before save.
	AvgTimeValidator func(float64) error
	// NewDifficultyValidator is a validator for the "new_difficulty" field. It is called by the builders before save.
	NewDifficultyValidator func(string) error
	// SpeedLabelValidator is a validator for the "speed_label" field. It is called by the builders before save.
	SpeedLabelValidator func(string) error
	// MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	MasteryValidator func(float64) error
	// BehaviorClusterValidator is a validator for the "behavior_cluster" field. It is called by the builders before save.
	BehaviorClusterValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// MessageValidator is a validator for the "message" field. It is called by the builders before save.
	MessageValidator func(string) error
	// NextDifficultyValidator is a validator for the "next_difficulty" field. It is called by the builders before save.
	NextDifficultyValidator func(string) error
)

// OrderOption defines the ordering options for the QuizAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByAvgTime orders the results by the avg_time field.
func ByAvgTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgTime, opts...).ToFunc()
}

// ByNewDifficulty orders the results by the new_difficulty field.
func ByNewDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewDifficulty, opts...).ToFunc()
}

// BySpeedLabel orders the results by the speed_label field.
func BySpeedLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeedLabel, opts...).ToFunc()
}

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}

// ByBehaviorCluster orders the results by the behavior_cluster field.
func ByBehaviorCluster(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBehaviorCluster, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByNextDifficulty orders the results by the next_difficulty field.
func ByNextDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextDifficulty, opts...).ToFunc()
}
