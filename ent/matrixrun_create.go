// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/matrun/matrun/ent/matrixrun"
)

// MatrixRunCreate is the builder for creating a MatrixRun entity.
type MatrixRunCreate struct {
	config
	mutation *MatrixRunMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *MatrixRunCreate) SetRunID(v string) *MatrixRunCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetProject sets the "project" field.
func (_c *MatrixRunCreate) SetProject(v string) *MatrixRunCreate {
	_c.mutation.SetProject(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *MatrixRunCreate) SetStartedAt(v time.Time) *MatrixRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *MatrixRunCreate) SetFinishedAt(v time.Time) *MatrixRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *MatrixRunCreate) SetPassed(v int) *MatrixRunCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *MatrixRunCreate) SetNillablePassed(v *int) *MatrixRunCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *MatrixRunCreate) SetFailed(v int) *MatrixRunCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *MatrixRunCreate) SetNillableFailed(v *int) *MatrixRunCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetErrored sets the "errored" field.
func (_c *MatrixRunCreate) SetErrored(v int) *MatrixRunCreate {
	_c.mutation.SetErrored(v)
	return _c
}

// SetNillableErrored sets the "errored" field if the given value is not nil.
func (_c *MatrixRunCreate) SetNillableErrored(v *int) *MatrixRunCreate {
	if v != nil {
		_c.SetErrored(*v)
	}
	return _c
}

// Mutation returns the MatrixRunMutation object of the builder.
func (_c *MatrixRunCreate) Mutation() *MatrixRunMutation {
	return _c.mutation
}

// Save creates the MatrixRun in the database.
func (_c *MatrixRunCreate) Save(ctx context.Context) (*MatrixRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatrixRunCreate) SaveX(ctx context.Context) *MatrixRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatrixRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatrixRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MatrixRunCreate) defaults() {
	if _, ok := _c.mutation.Passed(); !ok {
		v := matrixrun.DefaultPassed
		_c.mutation.SetPassed(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := matrixrun.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.Errored(); !ok {
		v := matrixrun.DefaultErrored
		_c.mutation.SetErrored(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatrixRunCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "MatrixRun.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := matrixrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "MatrixRun.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Project(); !ok {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required field "MatrixRun.project"`)}
	}
	if v, ok := _c.mutation.Project(); ok {
		if err := matrixrun.ProjectValidator(v); err != nil {
			return &ValidationError{Name: "project", err: fmt.Errorf(`ent: validator failed for field "MatrixRun.project": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "MatrixRun.started_at"`)}
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		return &ValidationError{Name: "finished_at", err: errors.New(`ent: missing required field "MatrixRun.finished_at"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "MatrixRun.passed"`)}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "MatrixRun.failed"`)}
	}
	if _, ok := _c.mutation.Errored(); !ok {
		return &ValidationError{Name: "errored", err: errors.New(`ent: missing required field "MatrixRun.errored"`)}
	}
	return nil
}

func (_c *MatrixRunCreate) sqlSave(ctx context.Context) (*MatrixRun, error) {
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

func (_c *MatrixRunCreate) createSpec() (*MatrixRun, *sqlgraph.CreateSpec) {
	var (
		_node = &MatrixRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(matrixrun.Table, sqlgraph.NewFieldSpec(matrixrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(matrixrun.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Project(); ok {
		_spec.SetField(matrixrun.FieldProject, field.TypeString, value)
		_node.Project = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(matrixrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(matrixrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(matrixrun.FieldPassed, field.TypeInt, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(matrixrun.FieldFailed, field.TypeInt, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.Errored(); ok {
		_spec.SetField(matrixrun.FieldErrored, field.TypeInt, value)
		_node.Errored = value
	}
	return _node, _spec
}

// MatrixRunCreateBulk is the builder for creating many MatrixRun entities in bulk.
type MatrixRunCreateBulk struct {
	config
	err      error
	builders []*MatrixRunCreate
}

// Save creates the MatrixRun entities in the database.
func (_c *MatrixRunCreateBulk) Save(ctx context.Context) ([]*MatrixRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MatrixRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatrixRunMutation)
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
func (_c *MatrixRunCreateBulk) SaveX(ctx context.Context) []*MatrixRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatrixRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatrixRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
