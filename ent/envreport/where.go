// Code generated by ent, DO NOT EDIT.

package envreport

import (
	"entgo.io/ent/dialect/sql"
	"github.com/matrun/matrun/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldRunID, v))
}

// Env applies equality check predicate on the "env" field. It's identical to EnvEQ.
func Env(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldEnv, v))
}

// Runtime applies equality check predicate on the "runtime" field. It's identical to RuntimeEQ.
func Runtime(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldRuntime, v))
}

// Framework applies equality check predicate on the "framework" field. It's identical to FrameworkEQ.
func Framework(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldFramework, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldStatus, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldStage, v))
}

// ExitCode applies equality check predicate on the "exit_code" field. It's identical to ExitCodeEQ.
func ExitCode(v int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldExitCode, v))
}

// CoveragePercent applies equality check predicate on the "coverage_percent" field. It's identical to CoveragePercentEQ.
func CoveragePercent(v float64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldCoveragePercent, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldDurationMs, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldContainsFold(FieldRunID, v))
}

// EnvEQ applies the EQ predicate on the "env" field.
func EnvEQ(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldEnv, v))
}

// EnvNEQ applies the NEQ predicate on the "env" field.
func EnvNEQ(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNEQ(FieldEnv, v))
}

// EnvIn applies the In predicate on the "env" field.
func EnvIn(vs ...string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldIn(FieldEnv, vs...))
}

// EnvNotIn applies the NotIn predicate on the "env" field.
func EnvNotIn(vs ...string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNotIn(FieldEnv, vs...))
}

// EnvGT applies the GT predicate on the "env" field.
func EnvGT(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGT(FieldEnv, v))
}

// EnvGTE applies the GTE predicate on the "env" field.
func EnvGTE(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGTE(FieldEnv, v))
}

// EnvLT applies the LT predicate on the "env" field.
func EnvLT(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLT(FieldEnv, v))
}

// EnvLTE applies the LTE predicate on the "env" field.
func EnvLTE(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLTE(FieldEnv, v))
}

// EnvContains applies the Contains predicate on the "env" field.
func EnvContains(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldContains(FieldEnv, v))
}

// EnvHasPrefix applies the HasPrefix predicate on the "env" field.
func EnvHasPrefix(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldHasPrefix(FieldEnv, v))
}

// EnvHasSuffix applies the HasSuffix predicate on the "env" field.
func EnvHasSuffix(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldHasSuffix(FieldEnv, v))
}

// EnvEqualFold applies the EqualFold predicate on the "env" field.
func EnvEqualFold(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEqualFold(FieldEnv, v))
}

// EnvContainsFold applies the ContainsFold predicate on the "env" field.
func EnvContainsFold(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldContainsFold(FieldEnv, v))
}

// RuntimeEQ applies the EQ predicate on the "runtime" field.
func RuntimeEQ(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldRuntime, v))
}

// RuntimeNEQ applies the NEQ predicate on the "runtime" field.
func RuntimeNEQ(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNEQ(FieldRuntime, v))
}

// RuntimeIn applies the In predicate on the "runtime" field.
func RuntimeIn(vs ...string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldIn(FieldRuntime, vs...))
}

// RuntimeNotIn applies the NotIn predicate on the "runtime" field.
func RuntimeNotIn(vs ...string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNotIn(FieldRuntime, vs...))
}

// RuntimeGT applies the GT predicate on the "runtime" field.
func RuntimeGT(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGT(FieldRuntime, v))
}

// RuntimeGTE applies the GTE predicate on the "runtime" field.
func RuntimeGTE(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGTE(FieldRuntime, v))
}

// RuntimeLT applies the LT predicate on the "runtime" field.
func RuntimeLT(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLT(FieldRuntime, v))
}

// RuntimeLTE applies the LTE predicate on the "runtime" field.
func RuntimeLTE(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLTE(FieldRuntime, v))
}

// RuntimeContains applies the Contains predicate on the "runtime" field.
func RuntimeContains(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldContains(FieldRuntime, v))
}

// RuntimeHasPrefix applies the HasPrefix predicate on the "runtime" field.
func RuntimeHasPrefix(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldHasPrefix(FieldRuntime, v))
}

// RuntimeHasSuffix applies the HasSuffix predicate on the "runtime" field.
func RuntimeHasSuffix(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldHasSuffix(FieldRuntime, v))
}

// RuntimeEqualFold applies the EqualFold predicate on the "runtime" field.
func RuntimeEqualFold(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEqualFold(FieldRuntime, v))
}

// RuntimeContainsFold applies the ContainsFold predicate on the "runtime" field.
func RuntimeContainsFold(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldContainsFold(FieldRuntime, v))
}

// FrameworkEQ applies the EQ predicate on the "framework" field.
func FrameworkEQ(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldFramework, v))
}

// FrameworkNEQ applies the NEQ predicate on the "framework" field.
func FrameworkNEQ(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNEQ(FieldFramework, v))
}

// FrameworkIn applies the In predicate on the "framework" field.
func FrameworkIn(vs ...string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldIn(FieldFramework, vs...))
}

// FrameworkNotIn applies the NotIn predicate on the "framework" field.
func FrameworkNotIn(vs ...string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNotIn(FieldFramework, vs...))
}

// FrameworkGT applies the GT predicate on the "framework" field.
func FrameworkGT(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGT(FieldFramework, v))
}

// FrameworkGTE applies the GTE predicate on the "framework" field.
func FrameworkGTE(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGTE(FieldFramework, v))
}

// FrameworkLT applies the LT predicate on the "framework" field.
func FrameworkLT(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLT(FieldFramework, v))
}

// FrameworkLTE applies the LTE predicate on the "framework" field.
func FrameworkLTE(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLTE(FieldFramework, v))
}

// FrameworkContains applies the Contains predicate on the "framework" field.
func FrameworkContains(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldContains(FieldFramework, v))
}

// FrameworkHasPrefix applies the HasPrefix predicate on the "framework" field.
func FrameworkHasPrefix(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldHasPrefix(FieldFramework, v))
}

// FrameworkHasSuffix applies the HasSuffix predicate on the "framework" field.
func FrameworkHasSuffix(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldHasSuffix(FieldFramework, v))
}

// FrameworkEqualFold applies the EqualFold predicate on the "framework" field.
func FrameworkEqualFold(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEqualFold(FieldFramework, v))
}

// FrameworkContainsFold applies the ContainsFold predicate on the "framework" field.
func FrameworkContainsFold(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldContainsFold(FieldFramework, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldContainsFold(FieldStatus, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldContainsFold(FieldStage, v))
}

// ExitCodeEQ applies the EQ predicate on the "exit_code" field.
func ExitCodeEQ(v int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldExitCode, v))
}

// ExitCodeNEQ applies the NEQ predicate on the "exit_code" field.
func ExitCodeNEQ(v int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNEQ(FieldExitCode, v))
}

// ExitCodeIn applies the In predicate on the "exit_code" field.
func ExitCodeIn(vs ...int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldIn(FieldExitCode, vs...))
}

// ExitCodeNotIn applies the NotIn predicate on the "exit_code" field.
func ExitCodeNotIn(vs ...int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNotIn(FieldExitCode, vs...))
}

// ExitCodeGT applies the GT predicate on the "exit_code" field.
func ExitCodeGT(v int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGT(FieldExitCode, v))
}

// ExitCodeGTE applies the GTE predicate on the "exit_code" field.
func ExitCodeGTE(v int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGTE(FieldExitCode, v))
}

// ExitCodeLT applies the LT predicate on the "exit_code" field.
func ExitCodeLT(v int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLT(FieldExitCode, v))
}

// ExitCodeLTE applies the LTE predicate on the "exit_code" field.
func ExitCodeLTE(v int) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLTE(FieldExitCode, v))
}

// CoveragePercentEQ applies the EQ predicate on the "coverage_percent" field.
func CoveragePercentEQ(v float64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldCoveragePercent, v))
}

// CoveragePercentNEQ applies the NEQ predicate on the "coverage_percent" field.
func CoveragePercentNEQ(v float64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNEQ(FieldCoveragePercent, v))
}

// CoveragePercentIn applies the In predicate on the "coverage_percent" field.
func CoveragePercentIn(vs ...float64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldIn(FieldCoveragePercent, vs...))
}

// CoveragePercentNotIn applies the NotIn predicate on the "coverage_percent" field.
func CoveragePercentNotIn(vs ...float64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNotIn(FieldCoveragePercent, vs...))
}

// CoveragePercentGT applies the GT predicate on the "coverage_percent" field.
func CoveragePercentGT(v float64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGT(FieldCoveragePercent, v))
}

// CoveragePercentGTE applies the GTE predicate on the "coverage_percent" field.
func CoveragePercentGTE(v float64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGTE(FieldCoveragePercent, v))
}

// CoveragePercentLT applies the LT predicate on the "coverage_percent" field.
func CoveragePercentLT(v float64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLT(FieldCoveragePercent, v))
}

// CoveragePercentLTE applies the LTE predicate on the "coverage_percent" field.
func CoveragePercentLTE(v float64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLTE(FieldCoveragePercent, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.EnvReport {
	return predicate.EnvReport(sql.FieldLTE(FieldDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EnvReport) predicate.EnvReport {
	return predicate.EnvReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EnvReport) predicate.EnvReport {
	return predicate.EnvReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EnvReport) predicate.EnvReport {
	return predicate.EnvReport(sql.NotPredicates(p))
}
