// Code generated by ent, DO NOT EDIT.

package quizattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/edubox/adapt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldAttemptID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldUserID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldTopicID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldScore, v))
}

// AvgTime applies equality check predicate on the "avg_time" field. It's identical to AvgTimeEQ.
func AvgTime(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldAvgTime, v))
}

// NewDifficulty applies equality check predicate on the "new_difficulty" field. It's identical to NewDifficultyEQ.
func NewDifficulty(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldNewDifficulty, v))
}

// SpeedLabel applies equality check predicate on the "speed_label" field. It's identical to SpeedLabelEQ.
func SpeedLabel(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldSpeedLabel, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldMastery, v))
}

// BehaviorCluster applies equality check predicate on the "behavior_cluster" field. It's identical to BehaviorClusterEQ.
func BehaviorCluster(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldBehaviorCluster, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldAction, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldMessage, v))
}

// NextDifficulty applies equality check predicate on the "next_difficulty" field. It's identical to NextDifficultyEQ.
func NextDifficulty(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldNextDifficulty, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldAttemptID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldUserID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldTopicID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldScore, v))
}

// AvgTimeEQ applies the EQ predicate on the "avg_time" field.
func AvgTimeEQ(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldAvgTime, v))
}

// AvgTimeNEQ applies the NEQ predicate on the "avg_time" field.
func AvgTimeNEQ(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldAvgTime, v))
}

// AvgTimeIn applies the In predicate on the "avg_time" field.
func AvgTimeIn(vs ...float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldAvgTime, vs...))
}

// AvgTimeNotIn applies the NotIn predicate on the "avg_time" field.
func AvgTimeNotIn(vs ...float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldAvgTime, vs...))
}

// AvgTimeGT applies the GT predicate on the "avg_time" field.
func AvgTimeGT(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldAvgTime, v))
}

// AvgTimeGTE applies the GTE predicate on the "avg_time" field.
func AvgTimeGTE(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldAvgTime, v))
}

// AvgTimeLT applies the LT predicate on the "avg_time" field.
func AvgTimeLT(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldAvgTime, v))
}

// AvgTimeLTE applies the LTE predicate on the "avg_time" field.
func AvgTimeLTE(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldAvgTime, v))
}

// NewDifficultyEQ applies the EQ predicate on the "new_difficulty" field.
func NewDifficultyEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldNewDifficulty, v))
}

// NewDifficultyNEQ applies the NEQ predicate on the "new_difficulty" field.
func NewDifficultyNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldNewDifficulty, v))
}

// NewDifficultyIn applies the In predicate on the "new_difficulty" field.
func NewDifficultyIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldNewDifficulty, vs...))
}

// NewDifficultyNotIn applies the NotIn predicate on the "new_difficulty" field.
func NewDifficultyNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldNewDifficulty, vs...))
}

// NewDifficultyGT applies the GT predicate on the "new_difficulty" field.
func NewDifficultyGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldNewDifficulty, v))
}

// NewDifficultyGTE applies the GTE predicate on the "new_difficulty" field.
func NewDifficultyGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldNewDifficulty, v))
}

// NewDifficultyLT applies the LT predicate on the "new_difficulty" field.
func NewDifficultyLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldNewDifficulty, v))
}

// NewDifficultyLTE applies the LTE predicate on the "new_difficulty" field.
func NewDifficultyLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldNewDifficulty, v))
}

// NewDifficultyContains applies the Contains predicate on the "new_difficulty" field.
func NewDifficultyContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldNewDifficulty, v))
}

// NewDifficultyHasPrefix applies the HasPrefix predicate on the "new_difficulty" field.
func NewDifficultyHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldNewDifficulty, v))
}

// NewDifficultyHasSuffix applies the HasSuffix predicate on the "new_difficulty" field.
func NewDifficultyHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldNewDifficulty, v))
}

// NewDifficultyEqualFold applies the EqualFold predicate on the "new_difficulty" field.
func NewDifficultyEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldNewDifficulty, v))
}

// NewDifficultyContainsFold applies the ContainsFold predicate on the "new_difficulty" field.
func NewDifficultyContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldNewDifficulty, v))
}

// SpeedLabelEQ applies the EQ predicate on the "speed_label" field.
func SpeedLabelEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldSpeedLabel, v))
}

// SpeedLabelNEQ applies the NEQ predicate on the "speed_label" field.
func SpeedLabelNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldSpeedLabel, v))
}

// SpeedLabelIn applies the In predicate on the "speed_label" field.
func SpeedLabelIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldSpeedLabel, vs...))
}

// SpeedLabelNotIn applies the NotIn predicate on the "speed_label" field.
func SpeedLabelNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldSpeedLabel, vs...))
}

// SpeedLabelGT applies the GT predicate on the "speed_label" field.
func SpeedLabelGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldSpeedLabel, v))
}

// SpeedLabelGTE applies the GTE predicate on the "speed_label" field.
func SpeedLabelGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldSpeedLabel, v))
}

// SpeedLabelLT applies the LT predicate on the "speed_label" field.
func SpeedLabelLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldSpeedLabel, v))
}

// SpeedLabelLTE applies the LTE predicate on the "speed_label" field.
func SpeedLabelLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldSpeedLabel, v))
}

// SpeedLabelContains applies the Contains predicate on the "speed_label" field.
func SpeedLabelContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldSpeedLabel, v))
}

// SpeedLabelHasPrefix applies the HasPrefix predicate on the "speed_label" field.
func SpeedLabelHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldSpeedLabel, v))
}

// SpeedLabelHasSuffix applies the HasSuffix predicate on the "speed_label" field.
func SpeedLabelHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldSpeedLabel, v))
}

// SpeedLabelEqualFold applies the EqualFold predicate on the "speed_label" field.
func SpeedLabelEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldSpeedLabel, v))
}

// SpeedLabelContainsFold applies the ContainsFold predicate on the "speed_label" field.
func SpeedLabelContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldSpeedLabel, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldMastery, v))
}

// BehaviorClusterEQ applies the EQ predicate on the "behavior_cluster" field.
func BehaviorClusterEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldBehaviorCluster, v))
}

// BehaviorClusterNEQ applies the NEQ predicate on the "behavior_cluster" field.
func BehaviorClusterNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldBehaviorCluster, v))
}

// BehaviorClusterIn applies the In predicate on the "behavior_cluster" field.
func BehaviorClusterIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldBehaviorCluster, vs...))
}

// BehaviorClusterNotIn applies the NotIn predicate on the "behavior_cluster" field.
func BehaviorClusterNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldBehaviorCluster, vs...))
}

// BehaviorClusterGT applies the GT predicate on the "behavior_cluster" field.
func BehaviorClusterGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldBehaviorCluster, v))
}

// BehaviorClusterGTE applies the GTE predicate on the "behavior_cluster" field.
func BehaviorClusterGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldBehaviorCluster, v))
}

// BehaviorClusterLT applies the LT predicate on the "behavior_cluster" field.
func BehaviorClusterLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldBehaviorCluster, v))
}

// BehaviorClusterLTE applies the LTE predicate on the "behavior_cluster" field.
func BehaviorClusterLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldBehaviorCluster, v))
}

// BehaviorClusterContains applies the Contains predicate on the "behavior_cluster" field.
func BehaviorClusterContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldBehaviorCluster, v))
}

// BehaviorClusterHasPrefix applies the HasPrefix predicate on the "behavior_cluster" field.
func BehaviorClusterHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldBehaviorCluster, v))
}

// BehaviorClusterHasSuffix applies the HasSuffix predicate on the "behavior_cluster" field.
func BehaviorClusterHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldBehaviorCluster, v))
}

// BehaviorClusterEqualFold applies the EqualFold predicate on the "behavior_cluster" field.
func BehaviorClusterEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldBehaviorCluster, v))
}

// BehaviorClusterContainsFold applies the ContainsFold predicate on the "behavior_cluster" field.
func BehaviorClusterContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldBehaviorCluster, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldAction, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldMessage, v))
}

// NextDifficultyEQ applies the EQ predicate on the "next_difficulty" field.
func NextDifficultyEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldNextDifficulty, v))
}

// NextDifficultyNEQ applies the NEQ predicate on the "next_difficulty" field.
func NextDifficultyNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldNextDifficulty, v))
}

// NextDifficultyIn applies the In predicate on the "next_difficulty" field.
func NextDifficultyIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldNextDifficulty, vs...))
}

// NextDifficultyNotIn applies the NotIn predicate on the "next_difficulty" field.
func NextDifficultyNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldNextDifficulty, vs...))
}

// NextDifficultyGT applies the GT predicate on the "next_difficulty" field.
func NextDifficultyGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldNextDifficulty, v))
}

// NextDifficultyGTE applies the GTE predicate on the "next_difficulty" field.
func NextDifficultyGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldNextDifficulty, v))
}

// NextDifficultyLT applies the LT predicate on the "next_difficulty" field.
func NextDifficultyLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldNextDifficulty, v))
}

// NextDifficultyLTE applies the LTE predicate on the "next_difficulty" field.
func NextDifficultyLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldNextDifficulty, v))
}

// NextDifficultyContains applies the Contains predicate on the "next_difficulty" field.
func NextDifficultyContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldNextDifficulty, v))
}

// NextDifficultyHasPrefix applies the HasPrefix predicate on the "next_difficulty" field.
func NextDifficultyHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldNextDifficulty, v))
}

// NextDifficultyHasSuffix applies the HasSuffix predicate on the "next_difficulty" field.
func NextDifficultyHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldNextDifficulty, v))
}

// NextDifficultyEqualFold applies the EqualFold predicate on the "next_difficulty" field.
func NextDifficultyEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldNextDifficulty, v))
}

// NextDifficultyContainsFold applies the ContainsFold predicate on the "next_difficulty" field.
func NextDifficultyContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldNextDifficulty, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizAttempt) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizAttempt) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizAttempt) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.NotPredicates(p))
}
