// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/matrun/matrun/ent/envreport"
	"github.com/matrun/matrun/ent/predicate"
	"github.com/matrun/matrun/internal/report"
)

// EnvReportUpdate is the builder for updating EnvReport entities.
type EnvReportUpdate struct {
	config
	hooks    []Hook
	mutation *EnvReportMutation
}

// Where appends a list predicates to the EnvReportUpdate builder.
func (_u *EnvReportUpdate) Where(ps ...predicate.EnvReport) *EnvReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnv sets the "env" field.
func (_u *EnvReportUpdate) SetEnv(v string) *EnvReportUpdate {
	_u.mutation.SetEnv(v)
	return _u
}

// SetNillableEnv sets the "env" field if the given value is not nil.
func (_u *EnvReportUpdate) SetNillableEnv(v *string) *EnvReportUpdate {
	if v != nil {
		_u.SetEnv(*v)
	}
	return _u
}

// SetRuntime sets the "runtime" field.
func (_u *EnvReportUpdate) SetRuntime(v string) *EnvReportUpdate {
	_u.mutation.SetRuntime(v)
	return _u
}

// SetNillableRuntime sets the "runtime" field if the given value is not nil.
func (_u *EnvReportUpdate) SetNillableRuntime(v *string) *EnvReportUpdate {
	if v != nil {
		_u.SetRuntime(*v)
	}
	return _u
}

// SetFramework sets the "framework" field.
func (_u *EnvReportUpdate) SetFramework(v string) *EnvReportUpdate {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *EnvReportUpdate) SetNillableFramework(v *string) *EnvReportUpdate {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnvReportUpdate) SetStatus(v string) *EnvReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnvReportUpdate) SetNillableStatus(v *string) *EnvReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *EnvReportUpdate) SetStage(v string) *EnvReportUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *EnvReportUpdate) SetNillableStage(v *string) *EnvReportUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *EnvReportUpdate) SetExitCode(v int) *EnvReportUpdate {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *EnvReportUpdate) SetNillableExitCode(v *int) *EnvReportUpdate {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *EnvReportUpdate) AddExitCode(v int) *EnvReportUpdate {
	_u.mutation.AddExitCode(v)
	return _u
}

// SetCoveragePercent sets the "coverage_percent" field.
func (_u *EnvReportUpdate) SetCoveragePercent(v float64) *EnvReportUpdate {
	_u.mutation.ResetCoveragePercent()
	_u.mutation.SetCoveragePercent(v)
	return _u
}

// SetNillableCoveragePercent sets the "coverage_percent" field if the given value is not nil.
func (_u *EnvReportUpdate) SetNillableCoveragePercent(v *float64) *EnvReportUpdate {
	if v != nil {
		_u.SetCoveragePercent(*v)
	}
	return _u
}

// AddCoveragePercent adds value to the "coverage_percent" field.
func (_u *EnvReportUpdate) AddCoveragePercent(v float64) *EnvReportUpdate {
	_u.mutation.AddCoveragePercent(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *EnvReportUpdate) SetDurationMs(v int64) *EnvReportUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *EnvReportUpdate) SetNillableDurationMs(v *int64) *EnvReportUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *EnvReportUpdate) AddDurationMs(v int64) *EnvReportUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetReport sets the "report" field.
func (_u *EnvReportUpdate) SetReport(v report.EnvReport) *EnvReportUpdate {
	_u.mutation.SetReport(v)
	return _u
}

// SetNillableReport sets the "report" field if the given value is not nil.
func (_u *EnvReportUpdate) SetNillableReport(v *report.EnvReport) *EnvReportUpdate {
	if v != nil {
		_u.SetReport(*v)
	}
	return _u
}

// Mutation returns the EnvReportMutation object of the builder.
func (_u *EnvReportUpdate) Mutation() *EnvReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnvReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnvReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnvReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnvReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnvReportUpdate) check() error {
	if v, ok := _u.mutation.Env(); ok {
		if err := envreport.EnvValidator(v); err != nil {
			return &ValidationError{Name: "env", err: fmt.Errorf(`ent: validator failed for field "EnvReport.env": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := envreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EnvReport.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EnvReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(envreport.Table, envreport.Columns, sqlgraph.NewFieldSpec(envreport.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Env(); ok {
		_spec.SetField(envreport.FieldEnv, field.TypeString, value)
	}
	if value, ok := _u.mutation.Runtime(); ok {
		_spec.SetField(envreport.FieldRuntime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(envreport.FieldFramework, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(envreport.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(envreport.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(envreport.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(envreport.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CoveragePercent(); ok {
		_spec.SetField(envreport.FieldCoveragePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoveragePercent(); ok {
		_spec.AddField(envreport.FieldCoveragePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(envreport.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(envreport.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(envreport.FieldReport, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{envreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnvReportUpdateOne is the builder for updating a single EnvReport entity.
type EnvReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnvReportMutation
}

// SetEnv sets the "env" field.
func (_u *EnvReportUpdateOne) SetEnv(v string) *EnvReportUpdateOne {
	_u.mutation.SetEnv(v)
	return _u
}

// SetNillableEnv sets the "env" field if the given value is not nil.
func (_u *EnvReportUpdateOne) SetNillableEnv(v *string) *EnvReportUpdateOne {
	if v != nil {
		_u.SetEnv(*v)
	}
	return _u
}

// SetRuntime sets the "runtime" field.
func (_u *EnvReportUpdateOne) SetRuntime(v string) *EnvReportUpdateOne {
	_u.mutation.SetRuntime(v)
	return _u
}

// SetNillableRuntime sets the "runtime" field if the given value is not nil.
func (_u *EnvReportUpdateOne) SetNillableRuntime(v *string) *EnvReportUpdateOne {
	if v != nil {
		_u.SetRuntime(*v)
	}
	return _u
}

// SetFramework sets the "framework" field.
func (_u *EnvReportUpdateOne) SetFramework(v string) *EnvReportUpdateOne {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *EnvReportUpdateOne) SetNillableFramework(v *string) *EnvReportUpdateOne {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnvReportUpdateOne) SetStatus(v string) *EnvReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnvReportUpdateOne) SetNillableStatus(v *string) *EnvReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *EnvReportUpdateOne) SetStage(v string) *EnvReportUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *EnvReportUpdateOne) SetNillableStage(v *string) *EnvReportUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *EnvReportUpdateOne) SetExitCode(v int) *EnvReportUpdateOne {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *EnvReportUpdateOne) SetNillableExitCode(v *int) *EnvReportUpdateOne {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *EnvReportUpdateOne) AddExitCode(v int) *EnvReportUpdateOne {
	_u.mutation.AddExitCode(v)
	return _u
}

// SetCoveragePercent sets the "coverage_percent" field.
func (_u *EnvReportUpdateOne) SetCoveragePercent(v float64) *EnvReportUpdateOne {
	_u.mutation.ResetCoveragePercent()
	_u.mutation.SetCoveragePercent(v)
	return _u
}

// SetNillableCoveragePercent sets the "coverage_percent" field if the given value is not nil.
func (_u *EnvReportUpdateOne) SetNillableCoveragePercent(v *float64) *EnvReportUpdateOne {
	if v != nil {
		_u.SetCoveragePercent(*v)
	}
	return _u
}

// AddCoveragePercent adds value to the "coverage_percent" field.
func (_u *EnvReportUpdateOne) AddCoveragePercent(v float64) *EnvReportUpdateOne {
	_u.mutation.AddCoveragePercent(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *EnvReportUpdateOne) SetDurationMs(v int64) *EnvReportUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *EnvReportUpdateOne) SetNillableDurationMs(v *int64) *EnvReportUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *EnvReportUpdateOne) AddDurationMs(v int64) *EnvReportUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetReport sets the "report" field.
func (_u *EnvReportUpdateOne) SetReport(v report.EnvReport) *EnvReportUpdateOne {
	_u.mutation.SetReport(v)
	return _u
}

// SetNillableReport sets the "report" field if the given value is not nil.
func (_u *EnvReportUpdateOne) SetNillableReport(v *report.EnvReport) *EnvReportUpdateOne {
	if v != nil {
		_u.SetReport(*v)
	}
	return _u
}

// Mutation returns the EnvReportMutation object of the builder.
func (_u *EnvReportUpdateOne) Mutation() *EnvReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the EnvReportUpdate builder.
func (_u *EnvReportUpdateOne) Where(ps ...predicate.EnvReport) *EnvReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnvReportUpdateOne) Select(field string, fields ...string) *EnvReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EnvReport entity.
func (_u *EnvReportUpdateOne) Save(ctx context.Context) (*EnvReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnvReportUpdateOne) SaveX(ctx context.Context) *EnvReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnvReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnvReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnvReportUpdateOne) check() error {
	if v, ok := _u.mutation.Env(); ok {
		if err := envreport.EnvValidator(v); err != nil {
			return &ValidationError{Name: "env", err: fmt.Errorf(`ent: validator failed for field "EnvReport.env": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := envreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EnvReport.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EnvReportUpdateOne) sqlSave(ctx context.Context) (_node *EnvReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(envreport.Table, envreport.Columns, sqlgraph.NewFieldSpec(envreport.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EnvReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, envreport.FieldID)
		for _, f := range fields {
			if !envreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != envreport.FieldID {
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
	if value, ok := _u.mutation.Env(); ok {
		_spec.SetField(envreport.FieldEnv, field.TypeString, value)
	}
	if value, ok := _u.mutation.Runtime(); ok {
		_spec.SetField(envreport.FieldRuntime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(envreport.FieldFramework, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(envreport.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(envreport.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(envreport.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(envreport.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CoveragePercent(); ok {
		_spec.SetField(envreport.FieldCoveragePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoveragePercent(); ok {
		_spec.AddField(envreport.FieldCoveragePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(envreport.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(envreport.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(envreport.FieldReport, field.TypeJSON, value)
	}
	_node = &EnvReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{envreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
