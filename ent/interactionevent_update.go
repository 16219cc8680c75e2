// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edubox/adapt/ent/interactionevent"
	"github.com/edubox/adapt/ent/predicate"
)

// InteractionEventUpdate is the builder for updating InteractionEvent entities.
type InteractionEventUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionEventMutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdate) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InteractionEventUpdate) SetUserID(v string) *InteractionEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableUserID(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetVideoID sets the "video_id" field.
func (_u *InteractionEventUpdate) SetVideoID(v string) *InteractionEventUpdate {
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableVideoID(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// SetPauseCount sets the "pause_count" field.
func (_u *InteractionEventUpdate) SetPauseCount(v int) *InteractionEventUpdate {
	_u.mutation.ResetPauseCount()
	_u.mutation.SetPauseCount(v)
	return _u
}

// SetNillablePauseCount sets the "pause_count" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillablePauseCount(v *int) *InteractionEventUpdate {
	if v != nil {
		_u.SetPauseCount(*v)
	}
	return _u
}

// AddPauseCount adds value to the "pause_count" field.
func (_u *InteractionEventUpdate) AddPauseCount(v int) *InteractionEventUpdate {
	_u.mutation.AddPauseCount(v)
	return _u
}

// SetRewatchCount sets the "rewatch_count" field.
func (_u *InteractionEventUpdate) SetRewatchCount(v int) *InteractionEventUpdate {
	_u.mutation.ResetRewatchCount()
	_u.mutation.SetRewatchCount(v)
	return _u
}

// SetNillableRewatchCount sets the "rewatch_count" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableRewatchCount(v *int) *InteractionEventUpdate {
	if v != nil {
		_u.SetRewatchCount(*v)
	}
	return _u
}

// AddRewatchCount adds value to the "rewatch_count" field.
func (_u *InteractionEventUpdate) AddRewatchCount(v int) *InteractionEventUpdate {
	_u.mutation.AddRewatchCount(v)
	return _u
}

// SetSkipRatio sets the "skip_ratio" field.
func (_u *InteractionEventUpdate) SetSkipRatio(v float64) *InteractionEventUpdate {
	_u.mutation.ResetSkipRatio()
	_u.mutation.SetSkipRatio(v)
	return _u
}

// SetNillableSkipRatio sets the "skip_ratio" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableSkipRatio(v *float64) *InteractionEventUpdate {
	if v != nil {
		_u.SetSkipRatio(*v)
	}
	return _u
}

// AddSkipRatio adds value to the "skip_ratio" field.
func (_u *InteractionEventUpdate) AddSkipRatio(v float64) *InteractionEventUpdate {
	_u.mutation.AddSkipRatio(v)
	return _u
}

// SetWatchPercentage sets the "watch_percentage" field.
func (_u *InteractionEventUpdate) SetWatchPercentage(v float64) *InteractionEventUpdate {
	_u.mutation.ResetWatchPercentage()
	_u.mutation.SetWatchPercentage(v)
	return _u
}

// SetNillableWatchPercentage sets the "watch_percentage" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableWatchPercentage(v *float64) *InteractionEventUpdate {
	if v != nil {
		_u.SetWatchPercentage(*v)
	}
	return _u
}

// AddWatchPercentage adds value to the "watch_percentage" field.
func (_u *InteractionEventUpdate) AddWatchPercentage(v float64) *InteractionEventUpdate {
	_u.mutation.AddWatchPercentage(v)
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdate) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interactionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VideoID(); ok {
		if err := interactionevent.VideoIDValidator(v); err != nil {
			return &ValidationError{Name: "video_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.video_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PauseCount(); ok {
		if err := interactionevent.PauseCountValidator(v); err != nil {
			return &ValidationError{Name: "pause_count", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.pause_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RewatchCount(); ok {
		if err := interactionevent.RewatchCountValidator(v); err != nil {
			return &ValidationError{Name: "rewatch_count", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.rewatch_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkipRatio(); ok {
		if err := interactionevent.SkipRatioValidator(v); err != nil {
			return &ValidationError{Name: "skip_ratio", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.skip_ratio": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WatchPercentage(); ok {
		if err := interactionevent.WatchPercentageValidator(v); err != nil {
			return &ValidationError{Name: "watch_percentage", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.watch_percentage": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interactionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(interactionevent.FieldVideoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PauseCount(); ok {
		_spec.SetField(interactionevent.FieldPauseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPauseCount(); ok {
		_spec.AddField(interactionevent.FieldPauseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RewatchCount(); ok {
		_spec.SetField(interactionevent.FieldRewatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRewatchCount(); ok {
		_spec.AddField(interactionevent.FieldRewatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkipRatio(); ok {
		_spec.SetField(interactionevent.FieldSkipRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSkipRatio(); ok {
		_spec.AddField(interactionevent.FieldSkipRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WatchPercentage(); ok {
		_spec.SetField(interactionevent.FieldWatchPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWatchPercentage(); ok {
		_spec.AddField(interactionevent.FieldWatchPercentage, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionEventUpdateOne is the builder for updating a single InteractionEvent entity.
type InteractionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *InteractionEventUpdateOne) SetUserID(v string) *InteractionEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableUserID(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetVideoID sets the "video_id" field.
func (_u *InteractionEventUpdateOne) SetVideoID(v string) *InteractionEventUpdateOne {
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableVideoID(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// SetPauseCount sets the "pause_count" field.
func (_u *InteractionEventUpdateOne) SetPauseCount(v int) *InteractionEventUpdateOne {
	_u.mutation.ResetPauseCount()
	_u.mutation.SetPauseCount(v)
	return _u
}

// SetNillablePauseCount sets the "pause_count" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillablePauseCount(v *int) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetPauseCount(*v)
	}
	return _u
}

// AddPauseCount adds value to the "pause_count" field.
func (_u *InteractionEventUpdateOne) AddPauseCount(v int) *InteractionEventUpdateOne {
	_u.mutation.AddPauseCount(v)
	return _u
}

// SetRewatchCount sets the "rewatch_count" field.
func (_u *InteractionEventUpdateOne) SetRewatchCount(v int) *InteractionEventUpdateOne {
	_u.mutation.ResetRewatchCount()
	_u.mutation.SetRewatchCount(v)
	return _u
}

// SetNillableRewatchCount sets the "rewatch_count" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableRewatchCount(v *int) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetRewatchCount(*v)
	}
	return _u
}

// AddRewatchCount adds value to the "rewatch_count" field.
func (_u *InteractionEventUpdateOne) AddRewatchCount(v int) *InteractionEventUpdateOne {
	_u.mutation.AddRewatchCount(v)
	return _u
}

// SetSkipRatio sets the "skip_ratio" field.
func (_u *InteractionEventUpdateOne) SetSkipRatio(v float64) *InteractionEventUpdateOne {
	_u.mutation.ResetSkipRatio()
	_u.mutation.SetSkipRatio(v)
	return _u
}

// SetNillableSkipRatio sets the "skip_ratio" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableSkipRatio(v *float64) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetSkipRatio(*v)
	}
	return _u
}

// AddSkipRatio adds value to the "skip_ratio" field.
func (_u *InteractionEventUpdateOne) AddSkipRatio(v float64) *InteractionEventUpdateOne {
	_u.mutation.AddSkipRatio(v)
	return _u
}

// SetWatchPercentage sets the "watch_percentage" field.
func (_u *InteractionEventUpdateOne) SetWatchPercentage(v float64) *InteractionEventUpdateOne {
	_u.mutation.ResetWatchPercentage()
	_u.mutation.SetWatchPercentage(v)
	return _u
}

// SetNillableWatchPercentage sets the "watch_percentage" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableWatchPercentage(v *float64) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetWatchPercentage(*v)
	}
	return _u
}

// AddWatchPercentage adds value to the "watch_percentage" field.
func (_u *InteractionEventUpdateOne) AddWatchPercentage(v float64) *InteractionEventUpdateOne {
	_u.mutation.AddWatchPercentage(v)
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdateOne) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdateOne) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionEventUpdateOne) Select(field string, fields ...string) *InteractionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InteractionEvent entity.
func (_u *InteractionEventUpdateOne) Save(ctx context.Context) (*InteractionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) SaveX(ctx context.Context) *InteractionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interactionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VideoID(); ok {
		if err := interactionevent.VideoIDValidator(v); err != nil {
			return &ValidationError{Name: "video_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.video_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PauseCount(); ok {
		if err := interactionevent.PauseCountValidator(v); err != nil {
			return &ValidationError{Name: "pause_count", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.pause_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RewatchCount(); ok {
		if err := interactionevent.RewatchCountValidator(v); err != nil {
			return &ValidationError{Name: "rewatch_count", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.rewatch_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkipRatio(); ok {
		if err := interactionevent.SkipRatioValidator(v); err != nil {
			return &ValidationError{Name: "skip_ratio", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.skip_ratio": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WatchPercentage(); ok {
		if err := interactionevent.WatchPercentageValidator(v); err != nil {
			return &ValidationError{Name: "watch_percentage", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.watch_percentage": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdateOne) sqlSave(ctx context.Context) (_node *InteractionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InteractionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interactionevent.FieldID)
		for _, f := range fields {
			if !interactionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interactionevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interactionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(interactionevent.FieldVideoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PauseCount(); ok {
		_spec.SetField(interactionevent.FieldPauseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPauseCount(); ok {
		_spec.AddField(interactionevent.FieldPauseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RewatchCount(); ok {
		_spec.SetField(interactionevent.FieldRewatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRewatchCount(); ok {
		_spec.AddField(interactionevent.FieldRewatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkipRatio(); ok {
		_spec.SetField(interactionevent.FieldSkipRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSkipRatio(); ok {
		_spec.AddField(interactionevent.FieldSkipRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WatchPercentage(); ok {
		_spec.SetField(interactionevent.FieldWatchPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWatchPercentage(); ok {
		_spec.AddField(interactionevent.FieldWatchPercentage, field.TypeFloat64, value)
	}
	_node = &InteractionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
