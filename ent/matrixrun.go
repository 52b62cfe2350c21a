// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/matrun/matrun/ent/matrixrun"
)

// MatrixRun is the model entity for the MatrixRun schema.
type MatrixRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the run
	RunID string `json:"run_id,omitempty"`
	// Project name from the config
	Project string `json:"project,omitempty"`
	// When the run began
	StartedAt time.Time `json:"started_at,omitempty"`
	// When the last environment finished
	FinishedAt time.Time `json:"finished_at,omitempty"`
	// Environments that passed
	Passed int `json:"passed,omitempty"`
	// Environments with test failures
	Failed int `json:"failed,omitempty"`
	// Environments that could not run
	Errored      int `json:"errored,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MatrixRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case matrixrun.FieldID, matrixrun.FieldPassed, matrixrun.FieldFailed, matrixrun.FieldErrored:
			values[i] = new(sql.NullInt64)
		case matrixrun.FieldRunID, matrixrun.FieldProject:
			values[i] = new(sql.NullString)
		case matrixrun.FieldStartedAt, matrixrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MatrixRun fields.
func (_m *MatrixRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case matrixrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case matrixrun.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case matrixrun.FieldProject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project", values[i])
			} else if value.Valid {
				_m.Project = value.String
			}
		case matrixrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case matrixrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = value.Time
			}
		case matrixrun.FieldPassed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = int(value.Int64)
			}
		case matrixrun.FieldFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed", values[i])
			} else if value.Valid {
				_m.Failed = int(value.Int64)
			}
		case matrixrun.FieldErrored:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field errored", values[i])
			} else if value.Valid {
				_m.Errored = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MatrixRun.
// This includes values selected through modifiers, order, etc.
func (_m *MatrixRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MatrixRun.
// Note that you need to call MatrixRun.Unwrap() before calling this method if this MatrixRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MatrixRun) Update() *MatrixRunUpdateOne {
	return NewMatrixRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MatrixRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MatrixRun) Unwrap() *MatrixRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MatrixRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MatrixRun) String() string {
	var builder strings.Builder
	builder.WriteString("MatrixRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("project=")
	builder.WriteString(_m.Project)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("finished_at=")
	builder.WriteString(_m.FinishedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failed))
	builder.WriteString(", ")
	builder.WriteString("errored=")
	builder.WriteString(fmt.Sprintf("%v", _m.Errored))
	builder.WriteByte(')')
	return builder.String()
}

// MatrixRuns is a parsable slice of MatrixRun.
type MatrixRuns []*MatrixRun
