// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/matrun/matrun/ent/envreport"
	"github.com/matrun/matrun/internal/report"
)

// EnvReport is the model entity for the EnvReport schema.
type EnvReport struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the owning matrix run
	RunID string `json:"run_id,omitempty"`
	// Environment name, e.g. go1.24-chi-v5.1
	Env string `json:"env,omitempty"`
	// Runtime axis value
	Runtime string `json:"runtime,omitempty"`
	// Framework axis value, empty without a framework
	Framework string `json:"framework,omitempty"`
	// passed, failed or error
	Status string `json:"status,omitempty"`
	// Stage the run stopped at
	Stage string `json:"stage,omitempty"`
	// Test command exit code
	ExitCode int `json:"exit_code,omitempty"`
	// Statement coverage of the run
	CoveragePercent float64 `json:"coverage_percent,omitempty"`
	// Wall-clock duration
	DurationMs int64 `json:"duration_ms,omitempty"`
	// Full run report
	Report       report.EnvReport `json:"report,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EnvReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case envreport.FieldReport:
			values[i] = new([]byte)
		case envreport.FieldCoveragePercent:
			values[i] = new(sql.NullFloat64)
		case envreport.FieldID, envreport.FieldExitCode, envreport.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case envreport.FieldRunID, envreport.FieldEnv, envreport.FieldRuntime, envreport.FieldFramework, envreport.FieldStatus, envreport.FieldStage:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EnvReport fields.
func (_m *EnvReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case envreport.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case envreport.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case envreport.FieldEnv:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field env", values[i])
			} else if value.Valid {
				_m.Env = value.String
			}
		case envreport.FieldRuntime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field runtime", values[i])
			} else if value.Valid {
				_m.Runtime = value.String
			}
		case envreport.FieldFramework:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field framework", values[i])
			} else if value.Valid {
				_m.Framework = value.String
			}
		case envreport.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case envreport.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case envreport.FieldExitCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exit_code", values[i])
			} else if value.Valid {
				_m.ExitCode = int(value.Int64)
			}
		case envreport.FieldCoveragePercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coverage_percent", values[i])
			} else if value.Valid {
				_m.CoveragePercent = value.Float64
			}
		case envreport.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case envreport.FieldReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Report); err != nil {
					return fmt.Errorf("unmarshal field report: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EnvReport.
// This includes values selected through modifiers, order, etc.
func (_m *EnvReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EnvReport.
// Note that you need to call EnvReport.Unwrap() before calling this method if this EnvReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EnvReport) Update() *EnvReportUpdateOne {
	return NewEnvReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EnvReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EnvReport) Unwrap() *EnvReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EnvReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EnvReport) String() string {
	var builder strings.Builder
	builder.WriteString("EnvReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("env=")
	builder.WriteString(_m.Env)
	builder.WriteString(", ")
	builder.WriteString("runtime=")
	builder.WriteString(_m.Runtime)
	builder.WriteString(", ")
	builder.WriteString("framework=")
	builder.WriteString(_m.Framework)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("exit_code=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExitCode))
	builder.WriteString(", ")
	builder.WriteString("coverage_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoveragePercent))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("report=")
	builder.WriteString(fmt.Sprintf("%v", _m.Report))
	builder.WriteByte(')')
	return builder.String()
}

// EnvReports is a parsable slice of EnvReport.
type EnvReports []*EnvReport
