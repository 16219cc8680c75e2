// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edubox/adapt/ent/interactionevent"
)

// InteractionEvent is the model entity for the InteractionEvent schema.
type InteractionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// VideoID holds the value of the "video_id" field.
	VideoID string `json:"video_id,omitempty"`
	// PauseCount holds the value of the "pause_count" field.
	PauseCount int `json:"pause_count,omitempty"`
	// RewatchCount holds the value of the "rewatch_count" field.
	RewatchCount int `json:"rewatch_count,omitempty"`
	// SkipRatio holds the value of the "skip_ratio" field.
	SkipRatio float64 `json:"skip_ratio,omitempty"`
	// WatchPercentage holds the value of the "watch_percentage" field.
	WatchPercentage float64 `json:"watch_percentage,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InteractionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interactionevent.FieldSkipRatio, interactionevent.FieldWatchPercentage:
			values[i] = new(sql.NullFloat64)
		case interactionevent.FieldID, interactionevent.FieldSequence, interactionevent.FieldPauseCount, interactionevent.FieldRewatchCount:
			values[i] = new(sql.NullInt64)
		case interactionevent.FieldUserID, interactionevent.FieldVideoID:
			values[i] = new(sql.NullString)
		case interactionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InteractionEvent fields.
func (_m *InteractionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interactionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interactionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case interactionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case interactionevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case interactionevent.FieldVideoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_id", values[i])
			} else if value.Valid {
				_m.VideoID = value.String
			}
		case interactionevent.FieldPauseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pause_count", values[i])
			} else if value.Valid {
				_m.PauseCount = int(value.Int64)
			}
		case interactionevent.FieldRewatchCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rewatch_count", values[i])
			} else if value.Valid {
				_m.RewatchCount = int(value.Int64)
			}
		case interactionevent.FieldSkipRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field skip_ratio", values[i])
			} else if value.Valid {
				_m.SkipRatio = value.Float64
			}
		case interactionevent.FieldWatchPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field watch_percentage", values[i])
			} else if value.Valid {
				_m.WatchPercentage = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InteractionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *InteractionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InteractionEvent.
// Note that you need to call InteractionEvent.Unwrap() before calling this method if this InteractionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InteractionEvent) Update() *InteractionEventUpdateOne {
	return NewInteractionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InteractionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InteractionEvent) Unwrap() *InteractionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InteractionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InteractionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("InteractionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("video_id=")
	builder.WriteString(_m.VideoID)
	builder.WriteString(", ")
	builder.WriteString("pause_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PauseCount))
	builder.WriteString(", ")
	builder.WriteString("rewatch_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RewatchCount))
	builder.WriteString(", ")
	builder.WriteString("skip_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipRatio))
	builder.WriteString(", ")
	builder.WriteString("watch_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.WatchPercentage))
	builder.WriteByte(')')
	return builder.String()
}

// InteractionEvents is a parsable slice of InteractionEvent.
type InteractionEvents []*InteractionEvent
