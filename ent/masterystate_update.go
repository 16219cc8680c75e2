// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edubox/adapt/ent/masterystate"
	"github.com/edubox/adapt/ent/predicate"
)

// MasteryStateUpdate is the builder for updating MasteryState entities.
type MasteryStateUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryStateMutation
}

// Where appends a list predicates to the MasteryStateUpdate builder.
func (_u *MasteryStateUpdate) Where(ps ...predicate.MasteryState) *MasteryStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MasteryStateUpdate) SetUserID(v string) *MasteryStateUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableUserID(v *string) *MasteryStateUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryStateUpdate) SetConceptID(v string) *MasteryStateUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableConceptID(v *string) *MasteryStateUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPKnown sets the "p_known" field.
func (_u *MasteryStateUpdate) SetPKnown(v float64) *MasteryStateUpdate {
	_u.mutation.ResetPKnown()
	_u.mutation.SetPKnown(v)
	return _u
}

// SetNillablePKnown sets the "p_known" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillablePKnown(v *float64) *MasteryStateUpdate {
	if v != nil {
		_u.SetPKnown(*v)
	}
	return _u
}

// AddPKnown adds value to the "p_known" field.
func (_u *MasteryStateUpdate) AddPKnown(v float64) *MasteryStateUpdate {
	_u.mutation.AddPKnown(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryStateUpdate) SetUpdatedAt(v time.Time) *MasteryStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryStateMutation object of the builder.
func (_u *MasteryStateUpdate) Mutation() *MasteryStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := masterystate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryStateUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := masterystate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masterystate.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PKnown(); ok {
		if err := masterystate.PKnownValidator(v); err != nil {
			return &ValidationError{Name: "p_known", err: fmt.Errorf(`ent: validator failed for field "MasteryState.p_known": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masterystate.Table, masterystate.Columns, sqlgraph.NewFieldSpec(masterystate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(masterystate.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masterystate.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PKnown(); ok {
		_spec.SetField(masterystate.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPKnown(); ok {
		_spec.AddField(masterystate.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(masterystate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masterystate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryStateUpdateOne is the builder for updating a single MasteryState entity.
type MasteryStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryStateMutation
}

// SetUserID sets the "user_id" field.
func (_u *MasteryStateUpdateOne) SetUserID(v string) *MasteryStateUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableUserID(v *string) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryStateUpdateOne) SetConceptID(v string) *MasteryStateUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableConceptID(v *string) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPKnown sets the "p_known" field.
func (_u *MasteryStateUpdateOne) SetPKnown(v float64) *MasteryStateUpdateOne {
	_u.mutation.ResetPKnown()
	_u.mutation.SetPKnown(v)
	return _u
}

// SetNillablePKnown sets the "p_known" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillablePKnown(v *float64) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetPKnown(*v)
	}
	return _u
}

// AddPKnown adds value to the "p_known" field.
func (_u *MasteryStateUpdateOne) AddPKnown(v float64) *MasteryStateUpdateOne {
	_u.mutation.AddPKnown(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryStateUpdateOne) SetUpdatedAt(v time.Time) *MasteryStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryStateMutation object of the builder.
func (_u *MasteryStateUpdateOne) Mutation() *MasteryStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryStateUpdate builder.
func (_u *MasteryStateUpdateOne) Where(ps ...predicate.MasteryState) *MasteryStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryStateUpdateOne) Select(field string, fields ...string) *MasteryStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryState entity.
func (_u *MasteryStateUpdateOne) Save(ctx context.Context) (*MasteryState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryStateUpdateOne) SaveX(ctx context.Context) *MasteryState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := masterystate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryStateUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := masterystate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masterystate.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PKnown(); ok {
		if err := masterystate.PKnownValidator(v); err != nil {
			return &ValidationError{Name: "p_known", err: fmt.Errorf(`ent: validator failed for field "MasteryState.p_known": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryStateUpdateOne) sqlSave(ctx context.Context) (_node *MasteryState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masterystate.Table, masterystate.Columns, sqlgraph.NewFieldSpec(masterystate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masterystate.FieldID)
		for _, f := range fields {
			if !masterystate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masterystate.FieldID {
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
		_spec.SetField(masterystate.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masterystate.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PKnown(); ok {
		_spec.SetField(masterystate.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPKnown(); ok {
		_spec.AddField(masterystate.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(masterystate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MasteryState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masterystate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
