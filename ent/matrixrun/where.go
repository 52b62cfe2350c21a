// Code generated by ent, DO NOT EDIT.

package matrixrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/matrun/matrun/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldRunID, v))
}

// Project applies equality check predicate on the "project" field. It's identical to ProjectEQ.
func Project(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldProject, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldFinishedAt, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldPassed, v))
}

// Failed applies equality check predicate on the "failed" field. It's identical to FailedEQ.
func Failed(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldFailed, v))
}

// Errored applies equality check predicate on the "errored" field. It's identical to ErroredEQ.
func Errored(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldErrored, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldContainsFold(FieldRunID, v))
}

// ProjectEQ applies the EQ predicate on the "project" field.
func ProjectEQ(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldProject, v))
}

// ProjectNEQ applies the NEQ predicate on the "project" field.
func ProjectNEQ(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNEQ(FieldProject, v))
}

// ProjectIn applies the In predicate on the "project" field.
func ProjectIn(vs ...string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldIn(FieldProject, vs...))
}

// ProjectNotIn applies the NotIn predicate on the "project" field.
func ProjectNotIn(vs ...string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNotIn(FieldProject, vs...))
}

// ProjectGT applies the GT predicate on the "project" field.
func ProjectGT(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGT(FieldProject, v))
}

// ProjectGTE applies the GTE predicate on the "project" field.
func ProjectGTE(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGTE(FieldProject, v))
}

// ProjectLT applies the LT predicate on the "project" field.
func ProjectLT(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLT(FieldProject, v))
}

// ProjectLTE applies the LTE predicate on the "project" field.
func ProjectLTE(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLTE(FieldProject, v))
}

// ProjectContains applies the Contains predicate on the "project" field.
func ProjectContains(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldContains(FieldProject, v))
}

// ProjectHasPrefix applies the HasPrefix predicate on the "project" field.
func ProjectHasPrefix(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldHasPrefix(FieldProject, v))
}

// ProjectHasSuffix applies the HasSuffix predicate on the "project" field.
func ProjectHasSuffix(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldHasSuffix(FieldProject, v))
}

// ProjectEqualFold applies the EqualFold predicate on the "project" field.
func ProjectEqualFold(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEqualFold(FieldProject, v))
}

// ProjectContainsFold applies the ContainsFold predicate on the "project" field.
func ProjectContainsFold(v string) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldContainsFold(FieldProject, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLTE(FieldFinishedAt, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNEQ(FieldPassed, v))
}

// PassedIn applies the In predicate on the "passed" field.
func PassedIn(vs ...int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldIn(FieldPassed, vs...))
}

// PassedNotIn applies the NotIn predicate on the "passed" field.
func PassedNotIn(vs ...int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNotIn(FieldPassed, vs...))
}

// PassedGT applies the GT predicate on the "passed" field.
func PassedGT(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGT(FieldPassed, v))
}

// PassedGTE applies the GTE predicate on the "passed" field.
func PassedGTE(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGTE(FieldPassed, v))
}

// PassedLT applies the LT predicate on the "passed" field.
func PassedLT(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLT(FieldPassed, v))
}

// PassedLTE applies the LTE predicate on the "passed" field.
func PassedLTE(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLTE(FieldPassed, v))
}

// FailedEQ applies the EQ predicate on the "failed" field.
func FailedEQ(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldFailed, v))
}

// FailedNEQ applies the NEQ predicate on the "failed" field.
func FailedNEQ(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNEQ(FieldFailed, v))
}

// FailedIn applies the In predicate on the "failed" field.
func FailedIn(vs ...int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldIn(FieldFailed, vs...))
}

// FailedNotIn applies the NotIn predicate on the "failed" field.
func FailedNotIn(vs ...int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNotIn(FieldFailed, vs...))
}

// FailedGT applies the GT predicate on the "failed" field.
func FailedGT(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGT(FieldFailed, v))
}

// FailedGTE applies the GTE predicate on the "failed" field.
func FailedGTE(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGTE(FieldFailed, v))
}

// FailedLT applies the LT predicate on the "failed" field.
func FailedLT(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLT(FieldFailed, v))
}

// FailedLTE applies the LTE predicate on the "failed" field.
func FailedLTE(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLTE(FieldFailed, v))
}

// ErroredEQ applies the EQ predicate on the "errored" field.
func ErroredEQ(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldEQ(FieldErrored, v))
}

// ErroredNEQ applies the NEQ predicate on the "errored" field.
func ErroredNEQ(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNEQ(FieldErrored, v))
}

// ErroredIn applies the In predicate on the "errored" field.
func ErroredIn(vs ...int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldIn(FieldErrored, vs...))
}

// ErroredNotIn applies the NotIn predicate on the "errored" field.
func ErroredNotIn(vs ...int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldNotIn(FieldErrored, vs...))
}

// ErroredGT applies the GT predicate on the "errored" field.
func ErroredGT(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGT(FieldErrored, v))
}

// ErroredGTE applies the GTE predicate on the "errored" field.
func ErroredGTE(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldGTE(FieldErrored, v))
}

// ErroredLT applies the LT predicate on the "errored" field.
func ErroredLT(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLT(FieldErrored, v))
}

// ErroredLTE applies the LTE predicate on the "errored" field.
func ErroredLTE(v int) predicate.MatrixRun {
	return predicate.MatrixRun(sql.FieldLTE(FieldErrored, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MatrixRun) predicate.MatrixRun {
	return predicate.MatrixRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MatrixRun) predicate.MatrixRun {
	return predicate.MatrixRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MatrixRun) predicate.MatrixRun {
	return predicate.MatrixRun(sql.NotPredicates(p))
}
