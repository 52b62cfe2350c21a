// Code generated by ent, DO NOT EDIT.

package matrixrun

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the matrixrun type in the database.
	Label = "matrix_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldProject holds the string denoting the project field in the database.
	FieldProject = "project"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldFailed holds the string denoting the failed field in the database.
	FieldFailed = "failed"
	// FieldErrored holds the string denoting the errored field in the database.
	FieldErrored = "errored"
	// Table holds the table name of the matrixrun in the database.
	Table = "matrix_runs"
)

// Columns holds all SQL columns for matrixrun fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldProject,
	FieldStartedAt,
	FieldFinishedAt,
	FieldPassed,
	FieldFailed,
	FieldErrored,
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
	// ProjectValidator is a validator for the "project" field. It is called by the builders before save.
	ProjectValidator func(string) error
	// DefaultPassed holds the default value on creation for the "passed" field.
	DefaultPassed int
	// DefaultFailed holds the default value on creation for the "failed" field.
	DefaultFailed int
	// DefaultErrored holds the default value on creation for the "errored" field.
	DefaultErrored int
)

// OrderOption defines the ordering options for the MatrixRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
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

// ByFailed orders the results by the failed field.
func ByFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailed, opts...).ToFunc()
}

// ByErrored orders the results by the errored field.
func ByErrored(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrored, opts...).ToFunc()
}
