// Code generated by ent, DO NOT EDIT.

package interactionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interactionevent type in the database.
	Label = "interaction_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldVideoID holds the string denoting the video_id field in the database.
	FieldVideoID = "video_id"
	// FieldPauseCount holds the string denoting the pause_count field in the database.
	FieldPauseCount = "pause_count"
	// FieldRewatchCount holds the string denoting the rewatch_count field in the database.
	FieldRewatchCount = "rewatch_count"
	// FieldSkipRatio holds the string denoting the skip_ratio field in the database.
	FieldSkipRatio = "skip_ratio"
	// FieldWatchPercentage holds the string denoting the watch_percentage field in the database.
	FieldWatchPercentage = "watch_percentage"
	// Table holds the table name of the interactionevent in the database.
	Table = "interaction_events"
)

// Columns holds all SQL columns for interactionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldVideoID,
	FieldPauseCount,
	FieldRewatchCount,
	FieldSkipRatio,
	FieldWatchPercentage,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// VideoIDValidator is a validator for the "video_id" field. It is called by the builders before save.
	VideoIDValidator func(string) error
	// PauseCountValidator is a validator for the "pause_count" field. It is called by the builders before save.
	PauseCountValidator func(int) error
	// RewatchCountValidator is a validator for the "rewatch_count" field. It is called by the builders before save.
	RewatchCountValidator func(int) error
	// SkipRatioValidator is a validator for the "skip_ratio" field. It is called by the builders before save.
	SkipRatioValidator func(float64) error
	// WatchPercentageValidator is a validator for the "watch_percentage" field. It is called by the builders before save.
	WatchPercentageValidator func(float64) error
)

// OrderOption defines the ordering options for the InteractionEvent queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByVideoID orders the results by the video_id field.
func ByVideoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoID, opts...).ToFunc()
}

// ByPauseCount orders the results by the pause_count field.
func ByPauseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPauseCount, opts...).ToFunc()
}

// ByRewatchCount orders the results by the rewatch_count field.
func ByRewatchCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRewatchCount, opts...).ToFunc()
}

// BySkipRatio orders the results by the skip_ratio field.
func BySkipRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipRatio, opts...).ToFunc()
}

// ByWatchPercentage orders the results by the watch_percentage field.
func ByWatchPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWatchPercentage, opts...).ToFunc()
}
