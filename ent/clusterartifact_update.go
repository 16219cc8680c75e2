// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edubox/adapt/ent/clusterartifact"
	"github.com/edubox/adapt/ent/predicate"
)

// ClusterArtifactUpdate is the builder for updating ClusterArtifact entities.
type ClusterArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *ClusterArtifactMutation
}

// Where appends a list predicates to the ClusterArtifactUpdate builder.
func (_u *ClusterArtifactUpdate) Where(ps ...predicate.ClusterArtifact) *ClusterArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ClusterArtifactUpdate) SetVersion(v string) *ClusterArtifactUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ClusterArtifactUpdate) SetNillableVersion(v *string) *ClusterArtifactUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *ClusterArtifactUpdate) SetSampleCount(v int) *ClusterArtifactUpdate {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *ClusterArtifactUpdate) SetNillableSampleCount(v *int) *ClusterArtifactUpdate {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *ClusterArtifactUpdate) AddSampleCount(v int) *ClusterArtifactUpdate {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetData sets the "data" field.
func (_u *ClusterArtifactUpdate) SetData(v map[string]interface{}) *ClusterArtifactUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ClusterArtifactMutation object of the builder.
func (_u *ClusterArtifactUpdate) Mutation() *ClusterArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClusterArtifactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClusterArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClusterArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClusterArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClusterArtifactUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := clusterartifact.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ClusterArtifact.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SampleCount(); ok {
		if err := clusterartifact.SampleCountValidator(v); err != nil {
			return &ValidationError{Name: "sample_count", err: fmt.Errorf(`ent: validator failed for field "ClusterArtifact.sample_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ClusterArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clusterartifact.Table, clusterartifact.Columns, sqlgraph.NewFieldSpec(clusterartifact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(clusterartifact.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(clusterartifact.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(clusterartifact.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(clusterartifact.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clusterartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClusterArtifactUpdateOne is the builder for updating a single ClusterArtifact entity.
type ClusterArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClusterArtifactMutation
}

// SetVersion sets the "version" field.
func (_u *ClusterArtifactUpdateOne) SetVersion(v string) *ClusterArtifactUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ClusterArtifactUpdateOne) SetNillableVersion(v *string) *ClusterArtifactUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *ClusterArtifactUpdateOne) SetSampleCount(v int) *ClusterArtifactUpdateOne {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *ClusterArtifactUpdateOne) SetNillableSampleCount(v *int) *ClusterArtifactUpdateOne {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *ClusterArtifactUpdateOne) AddSampleCount(v int) *ClusterArtifactUpdateOne {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetData sets the "data" field.
func (_u *ClusterArtifactUpdateOne) SetData(v map[string]interface{}) *ClusterArtifactUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ClusterArtifactMutation object of the builder.
func (_u *ClusterArtifactUpdateOne) Mutation() *ClusterArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClusterArtifactUpdate builder.
func (_u *ClusterArtifactUpdateOne) Where(ps ...predicate.ClusterArtifact) *ClusterArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClusterArtifactUpdateOne) Select(field string, fields ...string) *ClusterArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClusterArtifact entity.
func (_u *ClusterArtifactUpdateOne) Save(ctx context.Context) (*ClusterArtifact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClusterArtifactUpdateOne) SaveX(ctx context.Context) *ClusterArtifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClusterArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClusterArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClusterArtifactUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := clusterartifact.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ClusterArtifact.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SampleCount(); ok {
		if err := clusterartifact.SampleCountValidator(v); err != nil {
			return &ValidationError{Name: "sample_count", err: fmt.Errorf(`ent: validator failed for field "ClusterArtifact.sample_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ClusterArtifactUpdateOne) sqlSave(ctx context.Context) (_node *ClusterArtifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clusterartifact.Table, clusterartifact.Columns, sqlgraph.NewFieldSpec(clusterartifact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClusterArtifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clusterartifact.FieldID)
		for _, f := range fields {
			if !clusterartifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clusterartifact.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(clusterartifact.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(clusterartifact.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(clusterartifact.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(clusterartifact.FieldData, field.TypeJSON, value)
	}
	_node = &ClusterArtifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clusterartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
