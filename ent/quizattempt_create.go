// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edubox/adapt/ent/quizattempt"
)

// QuizAttemptCreate is the builder for creating a QuizAttempt entity.
type QuizAttemptCreate struct {
	config
	mutation *QuizAttemptMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizAttemptCreate) SetSequence(v int64) *QuizAttemptCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizAttemptCreate) SetTimestamp(v time.Time) *QuizAttemptCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableTimestamp(v *time.Time) *QuizAttemptCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *QuizAttemptCreate) SetAttemptID(v string) *QuizAttemptCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *QuizAttemptCreate) SetUserID(v string) *QuizAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *QuizAttemptCreate) SetTopicID(v string) *QuizAttemptCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizAttemptCreate) SetScore(v float64) *QuizAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetAvgTime sets the "avg_time" field.
func (_c *QuizAttemptCreate) SetAvgTime(v float64) *QuizAttemptCreate {
	_c.mutation.SetAvgTime(v)
	return _c
}

// SetNewDifficulty sets the "new_difficulty" field.
func (_c *QuizAttemptCreate) SetNewDifficulty(v string) *QuizAttemptCreate {
	_c.mutation.SetNewDifficulty(v)
	return _c
}

// SetSpeedLabel sets the "speed_label" field.
func (_c *QuizAttemptCreate) SetSpeedLabel(v string) *QuizAttemptCreate {
	_c.mutation.SetSpeedLabel(v)
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *QuizAttemptCreate) SetMastery(v float64) *QuizAttemptCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetBehaviorCluster sets the "behavior_cluster" field.
func (_c *QuizAttemptCreate) SetBehaviorCluster(v string) *QuizAttemptCreate {
	_c.mutation.SetBehaviorCluster(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *QuizAttemptCreate) SetAction(v string) *QuizAttemptCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *QuizAttemptCreate) SetMessage(v string) *QuizAttemptCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNextDifficulty sets the "next_difficulty" field.
func (_c *QuizAttemptCreate) SetNextDifficulty(v string) *QuizAttemptCreate {
	_c.mutation.SetNextDifficulty(v)
	return _c
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_c *QuizAttemptCreate) Mutation() *QuizAttemptMutation {
	return _c.mutation
}

// Save creates the QuizAttempt in the database.
func (_c *QuizAttemptCreate) Save(ctx context.Context) (*QuizAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizAttemptCreate) SaveX(ctx context.Context) *QuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizAttemptCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizattempt.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizAttemptCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizAttempt.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizAttempt.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "QuizAttempt.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := quizattempt.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuizAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := quizattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "QuizAttempt.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := quizattempt.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizAttempt.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := quizattempt.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AvgTime(); !ok {
		return &ValidationError{Name: "avg_time", err: errors.New(`ent: missing required field "QuizAttempt.avg_time"`)}
	}
	if v, ok := _c.mutation.AvgTime(); ok {
		if err := quizattempt.AvgTimeValidator(v); err != nil {
			return &ValidationError{Name: "avg_time", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.avg_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NewDifficulty(); !ok {
		return &ValidationError{Name: "new_difficulty", err: errors.New(`ent: missing required field "QuizAttempt.new_difficulty"`)}
	}
	if v, ok := _c.mutation.NewDifficulty(); ok {
		if err := quizattempt.NewDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "new_difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.new_difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SpeedLabel(); !ok {
		return &ValidationError{Name: "speed_label", err: errors.New(`ent: missing required field "QuizAttempt.speed_label"`)}
	}
	if v, ok := _c.mutation.SpeedLabel(); ok {
		if err := quizattempt.SpeedLabelValidator(v); err != nil {
			return &ValidationError{Name: "speed_label", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.speed_label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "QuizAttempt.mastery"`)}
	}
	if v, ok := _c.mutation.Mastery(); ok {
		if err := quizattempt.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.mastery": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BehaviorCluster(); !ok {
		return &ValidationError{Name: "behavior_cluster", err: errors.New(`ent: missing required field "QuizAttempt.behavior_cluster"`)}
	}
	if v, ok := _c.mutation.BehaviorCluster(); ok {
		if err := quizattempt.BehaviorClusterValidator(v); err != nil {
			return &ValidationError{Name: "behavior_cluster", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.behavior_cluster": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "QuizAttempt.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := quizattempt.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "QuizAttempt.message"`)}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := quizattempt.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextDifficulty(); !ok {
		return &ValidationError{Name: "next_difficulty", err: errors.New(`ent: missing required field "QuizAttempt.next_difficulty"`)}
	}
	if v, ok := _c.mutation.NextDifficulty(); ok {
		if err := quizattempt.NextDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "next_difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.next_difficulty": %w`, err)}
		}
	}
	return nil
}

func (_c *QuizAttemptCreate) sqlSave(ctx context.Context) (*QuizAttempt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizAttemptCreate) createSpec() (*QuizAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizattempt.Table, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizattempt.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizattempt.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(quizattempt.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quizattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(quizattempt.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.AvgTime(); ok {
		_spec.SetField(quizattempt.FieldAvgTime, field.TypeFloat64, value)
		_node.AvgTime = value
	}
	if value, ok := _c.mutation.NewDifficulty(); ok {
		_spec.SetField(quizattempt.FieldNewDifficulty, field.TypeString, value)
		_node.NewDifficulty = value
	}
	if value, ok := _c.mutation.SpeedLabel(); ok {
		_spec.SetField(quizattempt.FieldSpeedLabel, field.TypeString, value)
		_node.SpeedLabel = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(quizattempt.FieldMastery, field.TypeFloat64, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.BehaviorCluster(); ok {
		_spec.SetField(quizattempt.FieldBehaviorCluster, field.TypeString, value)
		_node.BehaviorCluster = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(quizattempt.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(quizattempt.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.NextDifficulty(); ok {
		_spec.SetField(quizattempt.FieldNextDifficulty, field.TypeString, value)
		_node.NextDifficulty = value
	}
	return _node, _spec
}

// QuizAttemptCreateBulk is the builder for creating many QuizAttempt entities in bulk.
type QuizAttemptCreateBulk struct {
	config
	err      error
	builders []*QuizAttemptCreate
}

// Save creates the QuizAttempt entities in the database.
func (_c *QuizAttemptCreateBulk) Save(ctx context.Context) ([]*QuizAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAttemptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizAttemptCreateBulk) SaveX(ctx context.Context) []*QuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
