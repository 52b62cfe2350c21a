// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/matrun/matrun/ent/envreport"
	"github.com/matrun/matrun/internal/report"
)

// EnvReportCreate is the builder for creating a EnvReport entity.
type EnvReportCreate struct {
	config
	mutation *EnvReportMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *EnvReportCreate) SetRunID(v string) *EnvReportCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetEnv sets the "env" field.
func (_c *EnvReportCreate) SetEnv(v string) *EnvReportCreate {
	_c.mutation.SetEnv(v)
	return _c
}

// SetRuntime sets the "runtime" field.
func (_c *EnvReportCreate) SetRuntime(v string) *EnvReportCreate {
	_c.mutation.SetRuntime(v)
	return _c
}

// SetFramework sets the "framework" field.
func (_c *EnvReportCreate) SetFramework(v string) *EnvReportCreate {
	_c.mutation.SetFramework(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EnvReportCreate) SetStatus(v string) *EnvReportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *EnvReportCreate) SetStage(v string) *EnvReportCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetExitCode sets the "exit_code" field.
func (_c *EnvReportCreate) SetExitCode(v int) *EnvReportCreate {
	_c.mutation.SetExitCode(v)
	return _c
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_c *EnvReportCreate) SetNillableExitCode(v *int) *EnvReportCreate {
	if v != nil {
		_c.SetExitCode(*v)
	}
	return _c
}

// SetCoveragePercent sets the "coverage_percent" field.
func (_c *EnvReportCreate) SetCoveragePercent(v float64) *EnvReportCreate {
	_c.mutation.SetCoveragePercent(v)
	return _c
}

// SetNillableCoveragePercent sets the "coverage_percent" field if the given value is not nil.
func (_c *EnvReportCreate) SetNillableCoveragePercent(v *float64) *EnvReportCreate {
	if v != nil {
		_c.SetCoveragePercent(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *EnvReportCreate) SetDurationMs(v int64) *EnvReportCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *EnvReportCreate) SetNillableDurationMs(v *int64) *EnvReportCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetReport sets the "report" field.
func (_c *EnvReportCreate) SetReport(v report.EnvReport) *EnvReportCreate {
	_c.mutation.SetReport(v)
	return _c
}

// Mutation returns the EnvReportMutation object of the builder.
func (_c *EnvReportCreate) Mutation() *EnvReportMutation {
	return _c.mutation
}

// Save creates the EnvReport in the database.
func (_c *EnvReportCreate) Save(ctx context.Context) (*EnvReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnvReportCreate) SaveX(ctx context.Context) *EnvReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnvReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnvReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnvReportCreate) defaults() {
	if _, ok := _c.mutation.ExitCode(); !ok {
		v := envreport.DefaultExitCode
		_c.mutation.SetExitCode(v)
	}
	if _, ok := _c.mutation.CoveragePercent(); !ok {
		v := envreport.DefaultCoveragePercent
		_c.mutation.SetCoveragePercent(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := envreport.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnvReportCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "EnvReport.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := envreport.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "EnvReport.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Env(); !ok {
		return &ValidationError{Name: "env", err: errors.New(`ent: missing required field "EnvReport.env"`)}
	}
	if v, ok := _c.mutation.Env(); ok {
		if err := envreport.EnvValidator(v); err != nil {
			return &ValidationError{Name: "env", err: fmt.Errorf(`ent: validator failed for field "EnvReport.env": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Runtime(); !ok {
		return &ValidationError{Name: "runtime", err: errors.New(`ent: missing required field "EnvReport.runtime"`)}
	}
	if _, ok := _c.mutation.Framework(); !ok {
		return &ValidationError{Name: "framework", err: errors.New(`ent: missing required field "EnvReport.framework"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EnvReport.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := envreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EnvReport.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "EnvReport.stage"`)}
	}
	if _, ok := _c.mutation.ExitCode(); !ok {
		return &ValidationError{Name: "exit_code", err: errors.New(`ent: missing required field "EnvReport.exit_code"`)}
	}
	if _, ok := _c.mutation.CoveragePercent(); !ok {
		return &ValidationError{Name: "coverage_percent", err: errors.New(`ent: missing required field "EnvReport.coverage_percent"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "EnvReport.duration_ms"`)}
	}
	if _, ok := _c.mutation.Report(); !ok {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required field "EnvReport.report"`)}
	}
	return nil
}

func (_c *EnvReportCreate) sqlSave(ctx context.Context) (*EnvReport, error) {
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

func (_c *EnvReportCreate) createSpec() (*EnvReport, *sqlgraph.CreateSpec) {
	var (
		_node = &EnvReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(envreport.Table, sqlgraph.NewFieldSpec(envreport.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(envreport.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Env(); ok {
		_spec.SetField(envreport.FieldEnv, field.TypeString, value)
		_node.Env = value
	}
	if value, ok := _c.mutation.Runtime(); ok {
		_spec.SetField(envreport.FieldRuntime, field.TypeString, value)
		_node.Runtime = value
	}
	if value, ok := _c.mutation.Framework(); ok {
		_spec.SetField(envreport.FieldFramework, field.TypeString, value)
		_node.Framework = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(envreport.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(envreport.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.ExitCode(); ok {
		_spec.SetField(envreport.FieldExitCode, field.TypeInt, value)
		_node.ExitCode = value
	}
	if value, ok := _c.mutation.CoveragePercent(); ok {
		_spec.SetField(envreport.FieldCoveragePercent, field.TypeFloat64, value)
		_node.CoveragePercent = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(envreport.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Report(); ok {
		_spec.SetField(envreport.FieldReport, field.TypeJSON, value)
		_node.Report = value
	}
	return _node, _spec
}

// EnvReportCreateBulk is the builder for creating many EnvReport entities in bulk.
type EnvReportCreateBulk struct {
	config
	err      error
	builders []*EnvReportCreate
}

// Save creates the EnvReport entities in the database.
func (_c *EnvReportCreateBulk) Save(ctx context.Context) ([]*EnvReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EnvReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnvReportMutation)
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
func (_c *EnvReportCreateBulk) SaveX(ctx context.Context) []*EnvReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnvReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnvReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
