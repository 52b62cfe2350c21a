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
	"github.com/matrun/matrun/ent/matrixrun"
	"github.com/matrun/matrun/ent/predicate"
)

// MatrixRunUpdate is the builder for updating MatrixRun entities.
type MatrixRunUpdate struct {
	config
	hooks    []Hook
	mutation *MatrixRunMutation
}

// Where appends a list predicates to the MatrixRunUpdate builder.
func (_u *MatrixRunUpdate) Where(ps ...predicate.MatrixRun) *MatrixRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProject sets the "project" field.
func (_u *MatrixRunUpdate) SetProject(v string) *MatrixRunUpdate {
	_u.mutation.SetProject(v)
	return _u
}

// SetNillableProject sets the "project" field if the given value is not nil.
func (_u *MatrixRunUpdate) SetNillableProject(v *string) *MatrixRunUpdate {
	if v != nil {
		_u.SetProject(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MatrixRunUpdate) SetStartedAt(v time.Time) *MatrixRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MatrixRunUpdate) SetNillableStartedAt(v *time.Time) *MatrixRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *MatrixRunUpdate) SetFinishedAt(v time.Time) *MatrixRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *MatrixRunUpdate) SetNillableFinishedAt(v *time.Time) *MatrixRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *MatrixRunUpdate) SetPassed(v int) *MatrixRunUpdate {
	_u.mutation.ResetPassed()
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *MatrixRunUpdate) SetNillablePassed(v *int) *MatrixRunUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// AddPassed adds value to the "passed" field.
func (_u *MatrixRunUpdate) AddPassed(v int) *MatrixRunUpdate {
	_u.mutation.AddPassed(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *MatrixRunUpdate) SetFailed(v int) *MatrixRunUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *MatrixRunUpdate) SetNillableFailed(v *int) *MatrixRunUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *MatrixRunUpdate) AddFailed(v int) *MatrixRunUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrored sets the "errored" field.
func (_u *MatrixRunUpdate) SetErrored(v int) *MatrixRunUpdate {
	_u.mutation.ResetErrored()
	_u.mutation.SetErrored(v)
	return _u
}

// SetNillableErrored sets the "errored" field if the given value is not nil.
func (_u *MatrixRunUpdate) SetNillableErrored(v *int) *MatrixRunUpdate {
	if v != nil {
		_u.SetErrored(*v)
	}
	return _u
}

// AddErrored adds value to the "errored" field.
func (_u *MatrixRunUpdate) AddErrored(v int) *MatrixRunUpdate {
	_u.mutation.AddErrored(v)
	return _u
}

// Mutation returns the MatrixRunMutation object of the builder.
func (_u *MatrixRunUpdate) Mutation() *MatrixRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatrixRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatrixRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatrixRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatrixRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatrixRunUpdate) check() error {
	if v, ok := _u.mutation.Project(); ok {
		if err := matrixrun.ProjectValidator(v); err != nil {
			return &ValidationError{Name: "project", err: fmt.Errorf(`ent: validator failed for field "MatrixRun.project": %w`, err)}
		}
	}
	return nil
}

func (_u *MatrixRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matrixrun.Table, matrixrun.Columns, sqlgraph.NewFieldSpec(matrixrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Project(); ok {
		_spec.SetField(matrixrun.FieldProject, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(matrixrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(matrixrun.FieldFinishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(matrixrun.FieldPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassed(); ok {
		_spec.AddField(matrixrun.FieldPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(matrixrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(matrixrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errored(); ok {
		_spec.SetField(matrixrun.FieldErrored, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrored(); ok {
		_spec.AddField(matrixrun.FieldErrored, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matrixrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatrixRunUpdateOne is the builder for updating a single MatrixRun entity.
type MatrixRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatrixRunMutation
}

// SetProject sets the "project" field.
func (_u *MatrixRunUpdateOne) SetProject(v string) *MatrixRunUpdateOne {
	_u.mutation.SetProject(v)
	return _u
}

// SetNillableProject sets the "project" field if the given value is not nil.
func (_u *MatrixRunUpdateOne) SetNillableProject(v *string) *MatrixRunUpdateOne {
	if v != nil {
		_u.SetProject(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MatrixRunUpdateOne) SetStartedAt(v time.Time) *MatrixRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MatrixRunUpdateOne) SetNillableStartedAt(v *time.Time) *MatrixRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *MatrixRunUpdateOne) SetFinishedAt(v time.Time) *MatrixRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *MatrixRunUpdateOne) SetNillableFinishedAt(v *time.Time) *MatrixRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *MatrixRunUpdateOne) SetPassed(v int) *MatrixRunUpdateOne {
	_u.mutation.ResetPassed()
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *MatrixRunUpdateOne) SetNillablePassed(v *int) *MatrixRunUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// AddPassed adds value to the "passed" field.
func (_u *MatrixRunUpdateOne) AddPassed(v int) *MatrixRunUpdateOne {
	_u.mutation.AddPassed(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *MatrixRunUpdateOne) SetFailed(v int) *MatrixRunUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *MatrixRunUpdateOne) SetNillableFailed(v *int) *MatrixRunUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *MatrixRunUpdateOne) AddFailed(v int) *MatrixRunUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrored sets the "errored" field.
func (_u *MatrixRunUpdateOne) SetErrored(v int) *MatrixRunUpdateOne {
	_u.mutation.ResetErrored()
	_u.mutation.SetErrored(v)
	return _u
}

// SetNillableErrored sets the "errored" field if the given value is not nil.
func (_u *MatrixRunUpdateOne) SetNillableErrored(v *int) *MatrixRunUpdateOne {
	if v != nil {
		_u.SetErrored(*v)
	}
	return _u
}

// AddErrored adds value to the "errored" field.
func (_u *MatrixRunUpdateOne) AddErrored(v int) *MatrixRunUpdateOne {
	_u.mutation.AddErrored(v)
	return _u
}

// Mutation returns the MatrixRunMutation object of the builder.
func (_u *MatrixRunUpdateOne) Mutation() *MatrixRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the MatrixRunUpdate builder.
func (_u *MatrixRunUpdateOne) Where(ps ...predicate.MatrixRun) *MatrixRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatrixRunUpdateOne) Select(field string, fields ...string) *MatrixRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MatrixRun entity.
func (_u *MatrixRunUpdateOne) Save(ctx context.Context) (*MatrixRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatrixRunUpdateOne) SaveX(ctx context.Context) *MatrixRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatrixRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatrixRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatrixRunUpdateOne) check() error {
	if v, ok := _u.mutation.Project(); ok {
		if err := matrixrun.ProjectValidator(v); err != nil {
			return &ValidationError{Name: "project", err: fmt.Errorf(`ent: validator failed for field "MatrixRun.project": %w`, err)}
		}
	}
	return nil
}

func (_u *MatrixRunUpdateOne) sqlSave(ctx context.Context) (_node *MatrixRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matrixrun.Table, matrixrun.Columns, sqlgraph.NewFieldSpec(matrixrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MatrixRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matrixrun.FieldID)
		for _, f := range fields {
			if !matrixrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != matrixrun.FieldID {
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
	if value, ok := _u.mutation.Project(); ok {
		_spec.SetField(matrixrun.FieldProject, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(matrixrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(matrixrun.FieldFinishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(matrixrun.FieldPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassed(); ok {
		_spec.AddField(matrixrun.FieldPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(matrixrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(matrixrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errored(); ok {
		_spec.SetField(matrixrun.FieldErrored, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrored(); ok {
		_spec.AddField(matrixrun.FieldErrored, field.TypeInt, value)
	}
	_node = &MatrixRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matrixrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
