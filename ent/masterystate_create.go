// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edubox/adapt/ent/masterystate"
)

// MasteryStateCreate is the builder for creating a MasteryState entity.
type MasteryStateCreate struct {
	config
	mutation *MasteryStateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *MasteryStateCreate) SetUserID(v string) *MasteryStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *MasteryStateCreate) SetConceptID(v string) *MasteryStateCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetPKnown sets the "p_known" field.
func (_c *MasteryStateCreate) SetPKnown(v float64) *MasteryStateCreate {
	_c.mutation.SetPKnown(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MasteryStateCreate) SetUpdatedAt(v time.Time) *MasteryStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MasteryStateCreate) SetNillableUpdatedAt(v *time.Time) *MasteryStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MasteryStateMutation object of the builder.
func (_c *MasteryStateCreate) Mutation() *MasteryStateMutation {
	return _c.mutation
}

// Save creates the MasteryState in the database.
func (_c *MasteryStateCreate) Save(ctx context.Context) (*MasteryState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryStateCreate) SaveX(ctx context.Context) *MasteryState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryStateCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := masterystate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryStateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MasteryState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := masterystate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "MasteryState.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := masterystate.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PKnown(); !ok {
		return &ValidationError{Name: "p_known", err: errors.New(`ent: missing required field "MasteryState.p_known"`)}
	}
	if v, ok := _c.mutation.PKnown(); ok {
		if err := masterystate.PKnownValidator(v); err != nil {
			return &ValidationError{Name: "p_known", err: fmt.Errorf(`ent: validator failed for field "MasteryState.p_known": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MasteryState.updated_at"`)}
	}
	return nil
}

func (_c *MasteryStateCreate) sqlSave(ctx context.Context) (*MasteryState, error) {
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

func (_c *MasteryStateCreate) createSpec() (*MasteryState, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masterystate.Table, sqlgraph.NewFieldSpec(masterystate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(masterystate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(masterystate.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.PKnown(); ok {
		_spec.SetField(masterystate.FieldPKnown, field.TypeFloat64, value)
		_node.PKnown = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(masterystate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MasteryStateCreateBulk is the builder for creating many MasteryState entities in bulk.
type MasteryStateCreateBulk struct {
	config
	err      error
	builders []*MasteryStateCreate
}

// Save creates the MasteryState entities in the database.
func (_c *MasteryStateCreateBulk) Save(ctx context.Context) ([]*MasteryState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryStateMutation)
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
func (_c *MasteryStateCreateBulk) SaveX(ctx context.Context) []*MasteryState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
