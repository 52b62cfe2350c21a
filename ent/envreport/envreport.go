// Code generated by ent, DO NOT EDIT.

package envreport

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the envreport type in the database.
	Label = "env_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldEnv holds the string denoting the env field in the database.
	FieldEnv = "env"
	// FieldRuntime holds the string denoting the runtime field in the database.
	FieldRuntime = "runtime"
	// FieldFramework holds the string denoting the framework field in the database.
	FieldFramework = "framework"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldExitCode holds the string denoting the exit_code field in the database.
	FieldExitCode = "exit_code"
	// FieldCoveragePercent holds the string denoting the coverage_percent field in the database.
	FieldCoveragePercent = "coverage_percent"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldReport holds the string denoting the report field in the database.
	FieldReport = "report"
	// Table holds the table name of the envreport in the database.
	Table = "env_reports"
)

// Columns holds all SQL columns for envreport fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldEnv,
	FieldRuntime,
	FieldFramework,
	FieldStatus,
	FieldStage,
	FieldExitCode,
	FieldCoveragePercent,
	FieldDurationMs,
	FieldReport,
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
	// EnvValidator is a validator for the "env" field. It is called by the builders before save.
	EnvValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultExitCode holds the default value on creation for the "exit_code" field.
	DefaultExitCode int
	// DefaultCoveragePercent holds the default value on creation for the "coverage_percent" field.
	DefaultCoveragePercent float64
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
)

// OrderOption defines the ordering options for the EnvReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByEnv orders the results by the env field.
func ByEnv(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnv, opts...).ToFunc()
}

// ByRuntime orders the results by the runtime field.
func ByRuntime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuntime, opts...).ToFunc()
}

// ByFramework orders the results by the framework field.
func ByFramework(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFramework, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByExitCode orders the results by the exit_code field.
func ByExitCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExitCode, opts...).ToFunc()
}

// ByCoveragePercent orders the results by the coverage_percent field.
func ByCoveragePercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoveragePercent, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}
