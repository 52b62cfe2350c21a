// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/matrun/matrun/ent/gaterun"
	"github.com/matrun/matrun/internal/report"
)

// GateRunCreate is the builder for creating a GateRun entity.
type GateRunCreate struct {
	config
	mutation *GateRunMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *GateRunCreate) SetRunID(v string) *GateRunCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetGate sets the "gate" field.
func (_c *GateRunCreate) SetGate(v string) *GateRunCreate {
	_c.mutation.SetGate(v)
	return _c
}

// SetProject sets the "project" field.
func (_c *GateRunCreate) SetProject(v string) *GateRunCreate {
	_c.mutation.SetProject(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *GateRunCreate) SetStartedAt(v time.Time) *GateRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *GateRunCreate) SetFinishedAt(v time.Time) *GateRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *GateRunCreate) SetPassed(v bool) *GateRunCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *GateRunCreate) SetNillablePassed(v *bool) *GateRunCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *GateRunCreate) SetSteps(v []report.GateStep) *GateRunCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// Mutation returns the GateRunMutation object of the builder.
func (_c *GateRunCreate) Mutation() *GateRunMutation {
	return _c.mutation
}

// Save creates the GateRun in the database.
func (_c *GateRunCreate) Save(ctx context.Context) (*GateRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GateRunCreate) SaveX(ctx context.Context) *GateRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GateRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GateRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GateRunCreate) defaults() {
	if _, ok := _c.mutation.Passed(); !ok {
		v := gaterun.DefaultPassed
		_c.mutation.SetPassed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GateRunCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "GateRun.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := gaterun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "GateRun.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Gate(); !ok {
		return &ValidationError{Name: "gate", err: errors.New(`ent: missing required field "GateRun.gate"`)}
	}
	if v, ok := _c.mutation.Gate(); ok {
		if err := gaterun.GateValidator(v); err != nil {
			return &ValidationError{Name: "gate", err: fmt.Errorf(`ent: validator failed for field "GateRun.gate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Project(); !ok {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required field "GateRun.project"`)}
	}
	if v, ok := _c.mutation.Project(); ok {
		if err := gaterun.ProjectValidator(v); err != nil {
			return &ValidationError{Name: "project", err: fmt.Errorf(`ent: validator failed for field "GateRun.project": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "GateRun.started_at"`)}
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		return &ValidationError{Name: "finished_at", err: errors.New(`ent: missing required field "GateRun.finished_at"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "GateRun.passed"`)}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "GateRun.steps"`)}
	}
	return nil
}

func (_c *GateRunCreate) sqlSave(ctx context.Context) (*GateRun, error) {
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

func (_c *GateRunCreate) createSpec() (*GateRun, *sqlgraph.CreateSpec) {
	var (
		_node = &GateRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gaterun.Table, sqlgraph.NewFieldSpec(gaterun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(gaterun.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Gate(); ok {
		_spec.SetField(gaterun.FieldGate, field.TypeString, value)
		_node.Gate = value
	}
	if value, ok := _c.mutation.Project(); ok {
		_spec.SetField(gaterun.FieldProject, field.TypeString, value)
		_node.Project = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(gaterun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(gaterun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(gaterun.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(gaterun.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	return _node, _spec
}

// GateRunCreateBulk is the builder for creating many GateRun entities in bulk.
type GateRunCreateBulk struct {
	config
	err      error
	builders []*GateRunCreate
}

// Save creates the GateRun entities in the database.
func (_c *GateRunCreateBulk) Save(ctx context.Context) ([]*GateRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GateRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GateRunMutation)
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
func (_c *GateRunCreateBulk) SaveX(ctx context.Context) []*GateRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GateRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GateRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
