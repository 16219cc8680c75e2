// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edubox/adapt/ent/clusterartifact"
)

// ClusterArtifactCreate is the builder for creating a ClusterArtifact entity.
type ClusterArtifactCreate struct {
	config
	mutation *ClusterArtifactMutation
	hooks    []Hook
}

// SetVersion sets the "version" field.
func (_c *ClusterArtifactCreate) SetVersion(v string) *ClusterArtifactCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetSampleCount sets the "sample_count" field.
func (_c *ClusterArtifactCreate) SetSampleCount(v int) *ClusterArtifactCreate {
	_c.mutation.SetSampleCount(v)
	return _c
}

// SetData sets the "data" field.
func (_c *ClusterArtifactCreate) SetData(v map[string]interface{}) *ClusterArtifactCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClusterArtifactCreate) SetCreatedAt(v time.Time) *ClusterArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClusterArtifactCreate) SetNillableCreatedAt(v *time.Time) *ClusterArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ClusterArtifactMutation object of the builder.
func (_c *ClusterArtifactCreate) Mutation() *ClusterArtifactMutation {
	return _c.mutation
}

// Save creates the ClusterArtifact in the database.
func (_c *ClusterArtifactCreate) Save(ctx context.Context) (*ClusterArtifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClusterArtifactCreate) SaveX(ctx context.Context) *ClusterArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClusterArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClusterArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClusterArtifactCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clusterartifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClusterArtifactCreate) check() error {
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ClusterArtifact.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := clusterartifact.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ClusterArtifact.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		return &ValidationError{Name: "sample_count", err: errors.New(`ent: missing required field "ClusterArtifact.sample_count"`)}
	}
	if v, ok := _c.mutation.SampleCount(); ok {
		if err := clusterartifact.SampleCountValidator(v); err != nil {
			return &ValidationError{Name: "sample_count", err: fmt.Errorf(`ent: validator failed for field "ClusterArtifact.sample_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "ClusterArtifact.data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClusterArtifact.created_at"`)}
	}
	return nil
}

func (_c *ClusterArtifactCreate) sqlSave(ctx context.Context) (*ClusterArtifact, error) {
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

func (_c *ClusterArtifactCreate) createSpec() (*ClusterArtifact, *sqlgraph.CreateSpec) {
	var (
		_node = &ClusterArtifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clusterartifact.Table, sqlgraph.NewFieldSpec(clusterartifact.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(clusterartifact.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.SampleCount(); ok {
		_spec.SetField(clusterartifact.FieldSampleCount, field.TypeInt, value)
		_node.SampleCount = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(clusterartifact.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clusterartifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ClusterArtifactCreateBulk is the builder for creating many ClusterArtifact entities in bulk.
type ClusterArtifactCreateBulk struct {
	config
	err      error
	builders []*ClusterArtifactCreate
}

// Save creates the ClusterArtifact entities in the database.
func (_c *ClusterArtifactCreateBulk) Save(ctx context.Context) ([]*ClusterArtifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClusterArtifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClusterArtifactMutation)
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
func (_c *ClusterArtifactCreateBulk) SaveX(ctx context.Context) []*ClusterArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClusterArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClusterArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
