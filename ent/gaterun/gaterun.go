// Code generated by ent, DO NOT EDIT.

package gaterun

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gaterun type in the database.
	Label = "gate_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldGate holds the string denoting the gate field in the database.
	FieldGate = "gate"
	// FieldProject holds the string denoting the project field in the database.
	FieldProject = "project"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// Table holds the table name of the gaterun in the database.
	Table = "gate_runs"
)

// Columns holds all SQL columns for gaterun fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldGate,
	FieldProject,
	FieldStartedAt,
	FieldFinishedAt,
	FieldPassed,
	FieldSteps,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	RunIDValidator func(string) error
	// GateValidator is a validator for the "gate" field. It is called by the builders before save.
	GateValidator func(string) error
	// ProjectValidator is a validator for the "project" field. It is called by the builders before save.
	ProjectValidator func(string) error
	// DefaultPassed holds the default value on creation for the "passed" field.
	DefaultPassed bool
)

// OrderOption defines the ordering options for the GateRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByGate orders the results by the gate field.
func ByGate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGate, opts...).ToFunc()
}

// ByProject orders the results by the project field.
func ByProject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProject, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}
