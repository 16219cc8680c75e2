// Code generated by ent, DO NOT EDIT.

package interactionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/edubox/adapt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldUserID, v))
}

// VideoID applies equality check predicate on the "video_id" field. It's identical to VideoIDEQ.
func VideoID(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldVideoID, v))
}

// PauseCount applies equality check predicate on the "pause_count" field. It's identical to PauseCountEQ.
func PauseCount(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldPauseCount, v))
}

// RewatchCount applies equality check predicate on the "rewatch_count" field. It's identical to RewatchCountEQ.
func RewatchCount(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldRewatchCount, v))
}

// SkipRatio applies equality check predicate on the "skip_ratio" field. It's identical to SkipRatioEQ.
func SkipRatio(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldSkipRatio, v))
}

// WatchPercentage applies equality check predicate on the "watch_percentage" field. It's identical to WatchPercentageEQ.
func WatchPercentage(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldWatchPercentage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldUserID, v))
}

// VideoIDEQ applies the EQ predicate on the "video_id" field.
func VideoIDEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldVideoID, v))
}

// VideoIDNEQ applies the NEQ predicate on the "video_id" field.
func VideoIDNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldVideoID, v))
}

// VideoIDIn applies the In predicate on the "video_id" field.
func VideoIDIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldVideoID, vs...))
}

// VideoIDNotIn applies the NotIn predicate on the "video_id" field.
func VideoIDNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldVideoID, vs...))
}

// VideoIDGT applies the GT predicate on the "video_id" field.
func VideoIDGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldVideoID, v))
}

// VideoIDGTE applies the GTE predicate on the "video_id" field.
func VideoIDGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldVideoID, v))
}

// VideoIDLT applies the LT predicate on the "video_id" field.
func VideoIDLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldVideoID, v))
}

// VideoIDLTE applies the LTE predicate on the "video_id" field.
func VideoIDLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldVideoID, v))
}

// VideoIDContains applies the Contains predicate on the "video_id" field.
func VideoIDContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldVideoID, v))
}

// VideoIDHasPrefix applies the HasPrefix predicate on the "video_id" field.
func VideoIDHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldVideoID, v))
}

// VideoIDHasSuffix applies the HasSuffix predicate on the "video_id" field.
func VideoIDHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldVideoID, v))
}

// VideoIDEqualFold applies the EqualFold predicate on the "video_id" field.
func VideoIDEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldVideoID, v))
}

// VideoIDContainsFold applies the ContainsFold predicate on the "video_id" field.
func VideoIDContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldVideoID, v))
}

// PauseCountEQ applies the EQ predicate on the "pause_count" field.
func PauseCountEQ(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldPauseCount, v))
}

// PauseCountNEQ applies the NEQ predicate on the "pause_count" field.
func PauseCountNEQ(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldPauseCount, v))
}

// PauseCountIn applies the In predicate on the "pause_count" field.
func PauseCountIn(vs ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldPauseCount, vs...))
}

// PauseCountNotIn applies the NotIn predicate on the "pause_count" field.
func PauseCountNotIn(vs ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldPauseCount, vs...))
}

// PauseCountGT applies the GT predicate on the "pause_count" field.
func PauseCountGT(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldPauseCount, v))
}

// PauseCountGTE applies the GTE predicate on the "pause_count" field.
func PauseCountGTE(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldPauseCount, v))
}

// PauseCountLT applies the LT predicate on the "pause_count" field.
func PauseCountLT(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldPauseCount, v))
}

// PauseCountLTE applies the LTE predicate on the "pause_count" field.
func PauseCountLTE(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldPauseCount, v))
}

// RewatchCountEQ applies the EQ predicate on the "rewatch_count" field.
func RewatchCountEQ(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldRewatchCount, v))
}

// RewatchCountNEQ applies the NEQ predicate on the "rewatch_count" field.
func RewatchCountNEQ(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldRewatchCount, v))
}

// RewatchCountIn applies the In predicate on the "rewatch_count" field.
func RewatchCountIn(vs ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldRewatchCount, vs...))
}

// RewatchCountNotIn applies the NotIn predicate on the "rewatch_count" field.
func RewatchCountNotIn(vs ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldRewatchCount, vs...))
}

// RewatchCountGT applies the GT predicate on the "rewatch_count" field.
func RewatchCountGT(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldRewatchCount, v))
}

// RewatchCountGTE applies the GTE predicate on the "rewatch_count" field.
func RewatchCountGTE(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldRewatchCount, v))
}

// RewatchCountLT applies the LT predicate on the "rewatch_count" field.
func RewatchCountLT(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldRewatchCount, v))
}

// RewatchCountLTE applies the LTE predicate on the "rewatch_count" field.
func RewatchCountLTE(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldRewatchCount, v))
}

// SkipRatioEQ applies the EQ predicate on the "skip_ratio" field.
func SkipRatioEQ(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldSkipRatio, v))
}

// SkipRatioNEQ applies the NEQ predicate on the "skip_ratio" field.
func SkipRatioNEQ(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldSkipRatio, v))
}

// SkipRatioIn applies the In predicate on the "skip_ratio" field.
func SkipRatioIn(vs ...float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldSkipRatio, vs...))
}

// SkipRatioNotIn applies the NotIn predicate on the "skip_ratio" field.
func SkipRatioNotIn(vs ...float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldSkipRatio, vs...))
}

// SkipRatioGT applies the GT predicate on the "skip_ratio" field.
func SkipRatioGT(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldSkipRatio, v))
}

// SkipRatioGTE applies the GTE predicate on the "skip_ratio" field.
func SkipRatioGTE(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldSkipRatio, v))
}

// SkipRatioLT applies the LT predicate on the "skip_ratio" field.
func SkipRatioLT(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldSkipRatio, v))
}

// SkipRatioLTE applies the LTE predicate on the "skip_ratio" field.
func SkipRatioLTE(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldSkipRatio, v))
}

// WatchPercentageEQ applies the EQ predicate on the "watch_percentage" field.
func WatchPercentageEQ(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldWatchPercentage, v))
}

// WatchPercentageNEQ applies the NEQ predicate on the "watch_percentage" field.
func WatchPercentageNEQ(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldWatchPercentage, v))
}

// WatchPercentageIn applies the In predicate on the "watch_percentage" field.
func WatchPercentageIn(vs ...float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldWatchPercentage, vs...))
}

// WatchPercentageNotIn applies the NotIn predicate on the "watch_percentage" field.
func WatchPercentageNotIn(vs ...float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldWatchPercentage, vs...))
}

// WatchPercentageGT applies the GT predicate on the "watch_percentage" field.
func WatchPercentageGT(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldWatchPercentage, v))
}

// WatchPercentageGTE applies the GTE predicate on the "watch_percentage" field.
func WatchPercentageGTE(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldWatchPercentage, v))
}

// WatchPercentageLT applies the LT predicate on the "watch_percentage" field.
func WatchPercentageLT(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldWatchPercentage, v))
}

// WatchPercentageLTE applies the LTE predicate on the "watch_percentage" field.
func WatchPercentageLTE(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldWatchPercentage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InteractionEvent) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InteractionEvent) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InteractionEvent) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.NotPredicates(p))
}
