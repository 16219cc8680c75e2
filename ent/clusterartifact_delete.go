// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edubox/adapt/ent/clusterartifact"
	"github.com/edubox/adapt/ent/predicate"
)

// ClusterArtifactDelete is the builder for deleting a ClusterArtifact entity.
type ClusterArtifactDelete struct {
	config
	hooks    []Hook
	mutation *ClusterArtifactMutation
}

// Where appends a list predicates to the ClusterArtifactDelete builder.
func (_d *ClusterArtifactDelete) Where(ps ...predicate.ClusterArtifact) *ClusterArtifactDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ClusterArtifactDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClusterArtifactDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ClusterArtifactDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(clusterartifact.Table, sqlgraph.NewFieldSpec(clusterartifact.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ClusterArtifactDeleteOne is the builder for deleting a single ClusterArtifact entity.
type ClusterArtifactDeleteOne struct {
	_d *ClusterArtifactDelete
}

// Where appends a list predicates to the ClusterArtifactDelete builder.
func (_d *ClusterArtifactDeleteOne) Where(ps ...predicate.ClusterArtifact) *ClusterArtifactDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ClusterArtifactDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{clusterartifact.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClusterArtifactDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
