// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EnvReportsColumns holds the columns for the "env_reports" table.
	EnvReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "env", Type: field.TypeString},
		{Name: "runtime", Type: field.TypeString},
		{Name: "framework", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "exit_code", Type: field.TypeInt, Default: 0},
		{Name: "coverage_percent", Type: field.TypeFloat64, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "report", Type: field.TypeJSON},
	}
	// EnvReportsTable holds the schema information for the "env_reports" table.
	EnvReportsTable = &schema.Table{
		Name:       "env_reports",
		Columns:    EnvReportsColumns,
		PrimaryKey: []*schema.Column{EnvReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "envreport_run_id_env",
				Unique:  true,
				Columns: []*schema.Column{EnvReportsColumns[1], EnvReportsColumns[2]},
			},
			{
				Name:    "envreport_status",
				Unique:  false,
				Columns: []*schema.Column{EnvReportsColumns[5]},
			},
		},
	}
	// GateRunsColumns holds the columns for the "gate_runs" table.
	GateRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "gate", Type: field.TypeString},
		{Name: "project", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime},
		{Name: "passed", Type: field.TypeBool, Default: false},
		{Name: "steps", Type: field.TypeJSON},
	}
	// GateRunsTable holds the schema information for the "gate_runs" table.
	GateRunsTable = &schema.Table{
		Name:       "gate_runs",
		Columns:    GateRunsColumns,
		PrimaryKey: []*schema.Column{GateRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gaterun_gate",
				Unique:  false,
				Columns: []*schema.Column{GateRunsColumns[2]},
			},
			{
				Name:    "gaterun_started_at",
				Unique:  false,
				Columns: []*schema.Column{GateRunsColumns[4]},
			},
		},
	}
	// MatrixRunsColumns holds the columns for the "matrix_runs" table.
	MatrixRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "project", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime},
		{Name: "passed", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "errored", Type: field.TypeInt, Default: 0},
	}
	// MatrixRunsTable holds the schema information for the "matrix_runs" table.
	MatrixRunsTable = &schema.Table{
		Name:       "matrix_runs",
		Columns:    MatrixRunsColumns,
		PrimaryKey: []*schema.Column{MatrixRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "matrixrun_started_at",
				Unique:  false,
				Columns: []*schema.Column{MatrixRunsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EnvReportsTable,
		GateRunsTable,
		MatrixRunsTable,
	}
)

func init() {
}
