// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/matrun/matrun/ent/gaterun"
	"github.com/matrun/matrun/internal/report"
)

// GateRun is the model entity for the GateRun schema.
type GateRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the run
	RunID string `json:"run_id,omitempty"`
	// quality or docs
	Gate string `json:"gate,omitempty"`
	// Project name from the config
	Project string `json:"project,omitempty"`
	// When the gate began
	StartedAt time.Time `json:"started_at,omitempty"`
	// When the gate finished
	FinishedAt time.Time `json:"finished_at,omitempty"`
	// Whether every executed step passed
	Passed bool `json:"passed,omitempty"`
	// Step results in execution order
	Steps        []report.GateStep `json:"steps,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GateRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gaterun.FieldSteps:
			values[i] = new([]byte)
		case gaterun.FieldPassed:
			values[i] = new(sql.NullBool)
		case gaterun.FieldID:
			values[i] = new(sql.NullInt64)
		case gaterun.FieldRunID, gaterun.FieldGate, gaterun.FieldProject:
			values[i] = new(sql.NullString)
		case gaterun.FieldStartedAt, gaterun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GateRun fields.
func (_m *GateRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gaterun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gaterun.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case gaterun.FieldGate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gate", values[i])
			} else if value.Valid {
				_m.Gate = value.String
			}
		case gaterun.FieldProject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project", values[i])
			} else if value.Valid {
				_m.Project = value.String
			}
		case gaterun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case gaterun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = value.Time
			}
		case gaterun.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case gaterun.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GateRun.
// This includes values selected through modifiers, order, etc.
func (_m *GateRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GateRun.
// Note that you need to call GateRun.Unwrap() before calling this method if this GateRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GateRun) Update() *GateRunUpdateOne {
	return NewGateRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GateRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GateRun) Unwrap() *GateRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GateRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GateRun) String() string {
	var builder strings.Builder
	builder.WriteString("GateRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("gate=")
	builder.WriteString(_m.Gate)
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
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteByte(')')
	return builder.String()
}

// GateRuns is a parsable slice of GateRun.
type GateRuns []*GateRun
