// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/matrun/matrun/ent/gaterun"
	"github.com/matrun/matrun/ent/predicate"
	"github.com/matrun/matrun/internal/report"
)

// GateRunUpdate is the builder for updating GateRun entities.
type GateRunUpdate struct {
	config
	hooks    []Hook
	mutation *GateRunMutation
}

// Where appends a list predicates to the GateRunUpdate builder.
func (_u *GateRunUpdate) Where(ps ...predicate.GateRun) *GateRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGate sets the "gate" field.
func (_u *GateRunUpdate) SetGate(v string) *GateRunUpdate {
	_u.mutation.SetGate(v)
	return _u
}

// SetNillableGate sets the "gate" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableGate(v *string) *GateRunUpdate {
	if v != nil {
		_u.SetGate(*v)
	}
	return _u
}

// SetProject sets the "project" field.
func (_u *GateRunUpdate) SetProject(v string) *GateRunUpdate {
	_u.mutation.SetProject(v)
	return _u
}

// SetNillableProject sets the "project" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableProject(v *string) *GateRunUpdate {
	if v != nil {
		_u.SetProject(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GateRunUpdate) SetStartedAt(v time.Time) *GateRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableStartedAt(v *time.Time) *GateRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *GateRunUpdate) SetFinishedAt(v time.Time) *GateRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillableFinishedAt(v *time.Time) *GateRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *GateRunUpdate) SetPassed(v bool) *GateRunUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *GateRunUpdate) SetNillablePassed(v *bool) *GateRunUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *GateRunUpdate) SetSteps(v []report.GateStep) *GateRunUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *GateRunUpdate) AppendSteps(v []report.GateStep) *GateRunUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// Mutation returns the GateRunMutation object of the builder.
func (_u *GateRunUpdate) Mutation() *GateRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GateRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GateRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GateRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GateRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GateRunUpdate) check() error {
	if v, ok := _u.mutation.Gate(); ok {
		if err := gaterun.GateValidator(v); err != nil {
			return &ValidationError{Name: "gate", err: fmt.Errorf(`ent: validator failed for field "GateRun.gate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Project(); ok {
		if err := gaterun.ProjectValidator(v); err != nil {
			return &ValidationError{Name: "project", err: fmt.Errorf(`ent: validator failed for field "GateRun.project": %w`, err)}
		}
	}
	return nil
}

func (_u *GateRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gaterun.Table, gaterun.Columns, sqlgraph.NewFieldSpec(gaterun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Gate(); ok {
		_spec.SetField(gaterun.FieldGate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Project(); ok {
		_spec.SetField(gaterun.FieldProject, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(gaterun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(gaterun.FieldFinishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(gaterun.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(gaterun.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gaterun.FieldSteps, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gaterun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GateRunUpdateOne is the builder for updating a single GateRun entity.
type GateRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GateRunMutation
}

// SetGate sets the "gate" field.
func (_u *GateRunUpdateOne) SetGate(v string) *GateRunUpdateOne {
	_u.mutation.SetGate(v)
	return _u
}

// SetNillableGate sets the "gate" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableGate(v *string) *GateRunUpdateOne {
	if v != nil {
		_u.SetGate(*v)
	}
	return _u
}

// SetProject sets the "project" field.
func (_u *GateRunUpdateOne) SetProject(v string) *GateRunUpdateOne {
	_u.mutation.SetProject(v)
	return _u
}

// SetNillableProject sets the "project" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableProject(v *string) *GateRunUpdateOne {
	if v != nil {
		_u.SetProject(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GateRunUpdateOne) SetStartedAt(v time.Time) *GateRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableStartedAt(v *time.Time) *GateRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *GateRunUpdateOne) SetFinishedAt(v time.Time) *GateRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillableFinishedAt(v *time.Time) *GateRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *GateRunUpdateOne) SetPassed(v bool) *GateRunUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *GateRunUpdateOne) SetNillablePassed(v *bool) *GateRunUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *GateRunUpdateOne) SetSteps(v []report.GateStep) *GateRunUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *GateRunUpdateOne) AppendSteps(v []report.GateStep) *GateRunUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// Mutation returns the GateRunMutation object of the builder.
func (_u *GateRunUpdateOne) Mutation() *GateRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the GateRunUpdate builder.
func (_u *GateRunUpdateOne) Where(ps ...predicate.GateRun) *GateRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GateRunUpdateOne) Select(field string, fields ...string) *GateRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GateRun entity.
func (_u *GateRunUpdateOne) Save(ctx context.Context) (*GateRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GateRunUpdateOne) SaveX(ctx context.Context) *GateRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GateRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GateRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GateRunUpdateOne) check() error {
	if v, ok := _u.mutation.Gate(); ok {
		if err := gaterun.GateValidator(v); err != nil {
			return &ValidationError{Name: "gate", err: fmt.Errorf(`ent: validator failed for field "GateRun.gate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Project(); ok {
		if err := gaterun.ProjectValidator(v); err != nil {
			return &ValidationError{Name: "project", err: fmt.Errorf(`ent: validator failed for field "GateRun.project": %w`, err)}
		}
	}
	return nil
}

func (_u *GateRunUpdateOne) sqlSave(ctx context.Context) (_node *GateRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gaterun.Table, gaterun.Columns, sqlgraph.NewFieldSpec(gaterun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GateRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gaterun.FieldID)
		for _, f := range fields {
			if !gaterun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gaterun.FieldID {
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
	if value, ok := _u.mutation.Gate(); ok {
		_spec.SetField(gaterun.FieldGate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Project(); ok {
		_spec.SetField(gaterun.FieldProject, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(gaterun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(gaterun.FieldFinishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(gaterun.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(gaterun.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gaterun.FieldSteps, value)
		})
	}
	_node = &GateRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gaterun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
