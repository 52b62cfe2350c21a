// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/matrun/matrun/ent/envreport"
	"github.com/matrun/matrun/ent/gaterun"
	"github.com/matrun/matrun/ent/matrixrun"
	"github.com/matrun/matrun/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	envreportFields := schema.EnvReport{}.Fields()
	_ = envreportFields
	// envreportDescRunID is the schema descriptor for run_id field.
	envreportDescRunID := envreportFields[0].Descriptor()
	// envreport.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	envreport.RunIDValidator = envreportDescRunID.Validators[0].(func(string) error)
	// envreportDescEnv is the schema descriptor for env field.
	envreportDescEnv := envreportFields[1].Descriptor()
	// envreport.EnvValidator is a validator for the "env" field. It is called by the builders before save.
	envreport.EnvValidator = envreportDescEnv.Validators[0].(func(string) error)
	// envreportDescStatus is the schema descriptor for status field.
	envreportDescStatus := envreportFields[4].Descriptor()
	// envreport.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	envreport.StatusValidator = envreportDescStatus.Validators[0].(func(string) error)
	// envreportDescExitCode is the schema descriptor for exit_code field.
	envreportDescExitCode := envreportFields[6].Descriptor()
	// envreport.DefaultExitCode holds the default value on creation for the exit_code field.
	envreport.DefaultExitCode = envreportDescExitCode.Default.(int)
	// envreportDescCoveragePercent is the schema descriptor for coverage_percent field.
	envreportDescCoveragePercent := envreportFields[7].Descriptor()
	// envreport.DefaultCoveragePercent holds the default value on creation for the coverage_percent field.
	envreport.DefaultCoveragePercent = envreportDescCoveragePercent.Default.(float64)
	// envreportDescDurationMs is the schema descriptor for duration_ms field.
	envreportDescDurationMs := envreportFields[8].Descriptor()
	// envreport.DefaultDurationMs holds the default value on creation for the duration_ms field.
	envreport.DefaultDurationMs = envreportDescDurationMs.Default.(int64)
	gaterunFields := schema.GateRun{}.Fields()
	_ = gaterunFields
	// gaterunDescRunID is the schema descriptor for run_id field.
	gaterunDescRunID := gaterunFields[0].Descriptor()
	// gaterun.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	gaterun.RunIDValidator = gaterunDescRunID.Validators[0].(func(string) error)
	// gaterunDescGate is the schema descriptor for gate field.
	gaterunDescGate := gaterunFields[1].Descriptor()
	// gaterun.GateValidator is a validator for the "gate" field. It is called by the builders before save.
	gaterun.GateValidator = gaterunDescGate.Validators[0].(func(string) error)
	// gaterunDescProject is the schema descriptor for project field.
	gaterunDescProject := gaterunFields[2].Descriptor()
	// gaterun.ProjectValidator is a validator for the "project" field. It is called by the builders before save.
	gaterun.ProjectValidator = gaterunDescProject.Validators[0].(func(string) error)
	// gaterunDescPassed is the schema descriptor for passed field.
	gaterunDescPassed := gaterunFields[5].Descriptor()
	// gaterun.DefaultPassed holds the default value on creation for the passed field.
	gaterun.DefaultPassed = gaterunDescPassed.Default.(bool)
	matrixrunFields := schema.MatrixRun{}.Fields()
	_ = matrixrunFields
	// matrixrunDescRunID is the schema descriptor for run_id field.
	matrixrunDescRunID := matrixrunFields[0].Descriptor()
	// matrixrun.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	matrixrun.RunIDValidator = matrixrunDescRunID.Validators[0].(func(string) error)
	// matrixrunDescProject is the schema descriptor for project field.
	matrixrunDescProject := matrixrunFields[1].Descriptor()
	// matrixrun.ProjectValidator is a validator for the "project" field. It is called by the builders before save.
	matrixrun.ProjectValidator = matrixrunDescProject.Validators[0].(func(string) error)
	// matrixrunDescPassed is the schema descriptor for passed field.
	matrixrunDescPassed := matrixrunFields[4].Descriptor()
	// matrixrun.DefaultPassed holds the default value on creation for the passed field.
	matrixrun.DefaultPassed = matrixrunDescPassed.Default.(int)
	// matrixrunDescFailed is the schema descriptor for failed field.
	matrixrunDescFailed := matrixrunFields[5].Descriptor()
	// matrixrun.DefaultFailed holds the default value on creation for the failed field.
	matrixrun.DefaultFailed = matrixrunDescFailed.Default.(int)
	// matrixrunDescErrored is the schema descriptor for errored field.
	matrixrunDescErrored := matrixrunFields[6].Descriptor()
	// matrixrun.DefaultErrored holds the default value on creation for the errored field.
	matrixrun.DefaultErrored = matrixrunDescErrored.Default.(int)
}
