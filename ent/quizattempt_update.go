// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edubox/adapt/ent/predicate"
	"github.com/edubox/adapt/ent/quizattempt"
)

// QuizAttemptUpdate is the builder for updating QuizAttempt entities.
type QuizAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdate) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizAttemptUpdate) SetAttemptID(v string) *QuizAttemptUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableAttemptID(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizAttemptUpdate) SetUserID(v string) *QuizAttemptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableUserID(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *QuizAttemptUpdate) SetTopicID(v string) *QuizAttemptUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableTopicID(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptUpdate) SetScore(v float64) *QuizAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableScore(v *float64) *QuizAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptUpdate) AddScore(v float64) *QuizAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAvgTime sets the "avg_time" field.
func (_u *QuizAttemptUpdate) SetAvgTime(v float64) *QuizAttemptUpdate {
	_u.mutation.ResetAvgTime()
	_u.mutation.SetAvgTime(v)
	return _u
}

// SetNillableAvgTime sets the "avg_time" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableAvgTime(v *float64) *QuizAttemptUpdate {
	if v != nil {
		_u.SetAvgTime(*v)
	}
	return _u
}

// AddAvgTime adds value to the "avg_time" field.
func (_u *QuizAttemptUpdate) AddAvgTime(v float64) *QuizAttemptUpdate {
	_u.mutation.AddAvgTime(v)
	return _u
}

// SetNewDifficulty sets the "new_difficulty" field.
func (_u *QuizAttemptUpdate) SetNewDifficulty(v string) *QuizAttemptUpdate {
	_u.mutation.SetNewDifficulty(v)
	return _u
}

// SetNillableNewDifficulty sets the "new_difficulty" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableNewDifficulty(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetNewDifficulty(*v)
	}
	return _u
}

// SetSpeedLabel sets the "speed_label" field.
func (_u *QuizAttemptUpdate) SetSpeedLabel(v string) *QuizAttemptUpdate {
	_u.mutation.SetSpeedLabel(v)
	return _u
}

// SetNillableSpeedLabel sets the "speed_label" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableSpeedLabel(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetSpeedLabel(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *QuizAttemptUpdate) SetMastery(v float64) *QuizAttemptUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableMastery(v *float64) *QuizAttemptUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *QuizAttemptUpdate) AddMastery(v float64) *QuizAttemptUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// SetBehaviorCluster sets the "behavior_cluster" field.
func (_u *QuizAttemptUpdate) SetBehaviorCluster(v string) *QuizAttemptUpdate {
	_u.mutation.SetBehaviorCluster(v)
	return _u
}

// SetNillableBehaviorCluster sets the "behavior_cluster" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableBehaviorCluster(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetBehaviorCluster(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *QuizAttemptUpdate) SetAction(v string) *QuizAttemptUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableAction(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *QuizAttemptUpdate) SetMessage(v string) *QuizAttemptUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableMessage(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetNextDifficulty sets the "next_difficulty" field.
func (_u *QuizAttemptUpdate) SetNextDifficulty(v string) *QuizAttemptUpdate {
	_u.mutation.SetNextDifficulty(v)
	return _u
}

// SetNillableNextDifficulty sets the "next_difficulty" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableNextDifficulty(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetNextDifficulty(*v)
	}
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdate) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := quizattempt.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := quizattempt.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := quizattempt.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AvgTime(); ok {
		if err := quizattempt.AvgTimeValidator(v); err != nil {
			return &ValidationError{Name: "avg_time", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.avg_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewDifficulty(); ok {
		if err := quizattempt.NewDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "new_difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.new_difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpeedLabel(); ok {
		if err := quizattempt.SpeedLabelValidator(v); err != nil {
			return &ValidationError{Name: "speed_label", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.speed_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mastery(); ok {
		if err := quizattempt.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.mastery": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BehaviorCluster(); ok {
		if err := quizattempt.BehaviorClusterValidator(v); err != nil {
			return &ValidationError{Name: "behavior_cluster", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.behavior_cluster": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := quizattempt.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := quizattempt.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NextDifficulty(); ok {
		if err := quizattempt.NextDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "next_difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.next_difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(quizattempt.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(quizattempt.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgTime(); ok {
		_spec.SetField(quizattempt.FieldAvgTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTime(); ok {
		_spec.AddField(quizattempt.FieldAvgTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NewDifficulty(); ok {
		_spec.SetField(quizattempt.FieldNewDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpeedLabel(); ok {
		_spec.SetField(quizattempt.FieldSpeedLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(quizattempt.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(quizattempt.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BehaviorCluster(); ok {
		_spec.SetField(quizattempt.FieldBehaviorCluster, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(quizattempt.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(quizattempt.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextDifficulty(); ok {
		_spec.SetField(quizattempt.FieldNextDifficulty, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAttemptUpdateOne is the builder for updating a single QuizAttempt entity.
type QuizAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizAttemptUpdateOne) SetAttemptID(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableAttemptID(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizAttemptUpdateOne) SetUserID(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableUserID(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *QuizAttemptUpdateOne) SetTopicID(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableTopicID(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptUpdateOne) SetScore(v float64) *QuizAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableScore(v *float64) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptUpdateOne) AddScore(v float64) *QuizAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAvgTime sets the "avg_time" field.
func (_u *QuizAttemptUpdateOne) SetAvgTime(v float64) *QuizAttemptUpdateOne {
	_u.mutation.ResetAvgTime()
	_u.mutation.SetAvgTime(v)
	return _u
}

// SetNillableAvgTime sets the "avg_time" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableAvgTime(v *float64) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetAvgTime(*v)
	}
	return _u
}

// AddAvgTime adds value to the "avg_time" field.
func (_u *QuizAttemptUpdateOne) AddAvgTime(v float64) *QuizAttemptUpdateOne {
	_u.mutation.AddAvgTime(v)
	return _u
}

// SetNewDifficulty sets the "new_difficulty" field.
func (_u *QuizAttemptUpdateOne) SetNewDifficulty(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetNewDifficulty(v)
	return _u
}

// SetNillableNewDifficulty sets the "new_difficulty" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableNewDifficulty(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetNewDifficulty(*v)
	}
	return _u
}

// SetSpeedLabel sets the "speed_label" field.
func (_u *QuizAttemptUpdateOne) SetSpeedLabel(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetSpeedLabel(v)
	return _u
}

// SetNillableSpeedLabel sets the "speed_label" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableSpeedLabel(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetSpeedLabel(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *QuizAttemptUpdateOne) SetMastery(v float64) *QuizAttemptUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableMastery(v *float64) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *QuizAttemptUpdateOne) AddMastery(v float64) *QuizAttemptUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// SetBehaviorCluster sets the "behavior_cluster" field.
func (_u *QuizAttemptUpdateOne) SetBehaviorCluster(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetBehaviorCluster(v)
	return _u
}

// SetNillableBehaviorCluster sets the "behavior_cluster" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableBehaviorCluster(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetBehaviorCluster(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *QuizAttemptUpdateOne) SetAction(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableAction(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *QuizAttemptUpdateOne) SetMessage(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableMessage(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetNextDifficulty sets the "next_difficulty" field.
func (_u *QuizAttemptUpdateOne) SetNextDifficulty(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetNextDifficulty(v)
	return _u
}

// SetNillableNextDifficulty sets the "next_difficulty" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableNextDifficulty(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetNextDifficulty(*v)
	}
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdateOne) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdateOne) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAttemptUpdateOne) Select(field string, fields ...string) *QuizAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAttempt entity.
func (_u *QuizAttemptUpdateOne) Save(ctx context.Context) (*QuizAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) SaveX(ctx context.Context) *QuizAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := quizattempt.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := quizattempt.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := quizattempt.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AvgTime(); ok {
		if err := quizattempt.AvgTimeValidator(v); err != nil {
			return &ValidationError{Name: "avg_time", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.avg_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewDifficulty(); ok {
		if err := quizattempt.NewDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "new_difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.new_difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpeedLabel(); ok {
		if err := quizattempt.SpeedLabelValidator(v); err != nil {
			return &ValidationError{Name: "speed_label", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.speed_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mastery(); ok {
		if err := quizattempt.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.mastery": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BehaviorCluster(); ok {
		if err := quizattempt.BehaviorClusterValidator(v); err != nil {
			return &ValidationError{Name: "behavior_cluster", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.behavior_cluster": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := quizattempt.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := quizattempt.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NextDifficulty(); ok {
		if err := quizattempt.NextDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "next_difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.next_difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptUpdateOne) sqlSave(ctx context.Context) (_node *QuizAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizattempt.FieldID)
		for _, f := range fields {
			if !quizattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(quizattempt.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(quizattempt.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgTime(); ok {
		_spec.SetField(quizattempt.FieldAvgTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTime(); ok {
		_spec.AddField(quizattempt.FieldAvgTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NewDifficulty(); ok {
		_spec.SetField(quizattempt.FieldNewDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpeedLabel(); ok {
		_spec.SetField(quizattempt.FieldSpeedLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(quizattempt.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(quizattempt.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BehaviorCluster(); ok {
		_spec.SetField(quizattempt.FieldBehaviorCluster, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(quizattempt.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(quizattempt.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextDifficulty(); ok {
		_spec.SetField(quizattempt.FieldNextDifficulty, field.TypeString, value)
	}
	_node = &QuizAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
