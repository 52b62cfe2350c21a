// Code generated by ent, DO NOT EDIT.

package gaterun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/matrun/matrun/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldRunID, v))
}

// Gate applies equality check predicate on the "gate" field. It's identical to GateEQ.
func Gate(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldGate, v))
}

// Project applies equality check predicate on the "project" field. It's identical to ProjectEQ.
func Project(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldProject, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldFinishedAt, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldPassed, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContainsFold(FieldRunID, v))
}

// GateEQ applies the EQ predicate on the "gate" field.
func GateEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldGate, v))
}

// GateNEQ applies the NEQ predicate on the "gate" field.
func GateNEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldGate, v))
}

// GateIn applies the In predicate on the "gate" field.
func GateIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldGate, vs...))
}

// GateNotIn applies the NotIn predicate on the "gate" field.
func GateNotIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldGate, vs...))
}

// GateGT applies the GT predicate on the "gate" field.
func GateGT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldGate, v))
}

// GateGTE applies the GTE predicate on the "gate" field.
func GateGTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldGate, v))
}

// GateLT applies the LT predicate on the "gate" field.
func GateLT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldGate, v))
}

// GateLTE applies the LTE predicate on the "gate" field.
func GateLTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldGate, v))
}

// GateContains applies the Contains predicate on the "gate" field.
func GateContains(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContains(FieldGate, v))
}

// GateHasPrefix applies the HasPrefix predicate on the "gate" field.
func GateHasPrefix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasPrefix(FieldGate, v))
}

// GateHasSuffix applies the HasSuffix predicate on the "gate" field.
func GateHasSuffix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasSuffix(FieldGate, v))
}

// GateEqualFold applies the EqualFold predicate on the "gate" field.
func GateEqualFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEqualFold(FieldGate, v))
}

// GateContainsFold applies the ContainsFold predicate on the "gate" field.
func GateContainsFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContainsFold(FieldGate, v))
}

// ProjectEQ applies the EQ predicate on the "project" field.
func ProjectEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldProject, v))
}

// ProjectNEQ applies the NEQ predicate on the "project" field.
func ProjectNEQ(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldProject, v))
}

// ProjectIn applies the In predicate on the "project" field.
func ProjectIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldProject, vs...))
}

// ProjectNotIn applies the NotIn predicate on the "project" field.
func ProjectNotIn(vs ...string) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldProject, vs...))
}

// ProjectGT applies the GT predicate on the "project" field.
func ProjectGT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldProject, v))
}

// ProjectGTE applies the GTE predicate on the "project" field.
func ProjectGTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldProject, v))
}

// ProjectLT applies the LT predicate on the "project" field.
func ProjectLT(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldProject, v))
}

// ProjectLTE applies the LTE predicate on the "project" field.
func ProjectLTE(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldProject, v))
}

// ProjectContains applies the Contains predicate on the "project" field.
func ProjectContains(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContains(FieldProject, v))
}

// ProjectHasPrefix applies the HasPrefix predicate on the "project" field.
func ProjectHasPrefix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasPrefix(FieldProject, v))
}

// ProjectHasSuffix applies the HasSuffix predicate on the "project" field.
func ProjectHasSuffix(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldHasSuffix(FieldProject, v))
}

// ProjectEqualFold applies the EqualFold predicate on the "project" field.
func ProjectEqualFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldEqualFold(FieldProject, v))
}

// ProjectContainsFold applies the ContainsFold predicate on the "project" field.
func ProjectContainsFold(v string) predicate.GateRun {
	return predicate.GateRun(sql.FieldContainsFold(FieldProject, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.GateRun {
	return predicate.GateRun(sql.FieldLTE(FieldFinishedAt, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.GateRun {
	return predicate.GateRun(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.GateRun {
	return predicate.GateRun(sql.FieldNEQ(FieldPassed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GateRun) predicate.GateRun {
	return predicate.GateRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GateRun) predicate.GateRun {
	return predicate.GateRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GateRun) predicate.GateRun {
	return predicate.GateRun(sql.NotPredicates(p))
}
