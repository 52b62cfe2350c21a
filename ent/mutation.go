// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/matrun/matrun/ent/envreport"
	"github.com/matrun/matrun/ent/gaterun"
	"github.com/matrun/matrun/ent/matrixrun"
	"github.com/matrun/matrun/ent/predicate"
	"github.com/matrun/matrun/internal/report"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEnvReport = "EnvReport"
	TypeGateRun   = "GateRun"
	TypeMatrixRun = "MatrixRun"
)

// EnvReportMutation represents an operation that mutates the EnvReport nodes in the graph.
type EnvReportMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	run_id              *string
	env                 *string
	runtime             *string
	framework           *string
	status              *string
	stage               *string
	exit_code           *int
	addexit_code        *int
	coverage_percent    *float64
	addcoverage_percent *float64
	duration_ms         *int64
	addduration_ms      *int64
	report              *report.EnvReport
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*EnvReport, error)
	predicates          []predicate.EnvReport
}

var _ ent.Mutation = (*EnvReportMutation)(nil)

// envreportOption allows management of the mutation configuration using functional options.
type envreportOption func(*EnvReportMutation)

// newEnvReportMutation creates new mutation for the EnvReport entity.
func newEnvReportMutation(c config, op Op, opts ...envreportOption) *EnvReportMutation {
	m := &EnvReportMutation{
		config:        c,
		op:            op,
		typ:           TypeEnvReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnvReportID sets the ID field of the mutation.
func withEnvReportID(id int) envreportOption {
	return func(m *EnvReportMutation) {
		var (
			err   error
			once  sync.Once
			value *EnvReport
		)
		m.oldValue = func(ctx context.Context) (*EnvReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EnvReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnvReport sets the old EnvReport of the mutation.
func withEnvReport(node *EnvReport) envreportOption {
	return func(m *EnvReportMutation) {
		m.oldValue = func(context.Context) (*EnvReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnvReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnvReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnvReportMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnvReportMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EnvReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *EnvReportMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *EnvReportMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the EnvReport entity.
// If the EnvReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvReportMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *EnvReportMutation) ResetRunID() {
	m.run_id = nil
}

// SetEnv sets the "env" field.
func (m *EnvReportMutation) SetEnv(s string) {
	m.env = &s
}

// Env returns the value of the "env" field in the mutation.
func (m *EnvReportMutation) Env() (r string, exists bool) {
	v := m.env
	if v == nil {
		return
	}
	return *v, true
}

// OldEnv returns the old "env" field's value of the EnvReport entity.
// If the EnvReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvReportMutation) OldEnv(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnv is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnv requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnv: %w", err)
	}
	return oldValue.Env, nil
}

// ResetEnv resets all changes to the "env" field.
func (m *EnvReportMutation) ResetEnv() {
	m.env = nil
}

// SetRuntime sets the "runtime" field.
func (m *EnvReportMutation) SetRuntime(s string) {
	m.runtime = &s
}

// Runtime returns the value of the "runtime" field in the mutation.
func (m *EnvReportMutation) Runtime() (r string, exists bool) {
	v := m.runtime
	if v == nil {
		return
	}
	return *v, true
}

// OldRuntime returns the old "runtime" field's value of the EnvReport entity.
// If the EnvReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvReportMutation) OldRuntime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuntime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuntime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuntime: %w", err)
	}
	return oldValue.Runtime, nil
}

// ResetRuntime resets all changes to the "runtime" field.
func (m *EnvReportMutation) ResetRuntime() {
	m.runtime = nil
}

// SetFramework sets the "framework" field.
func (m *EnvReportMutation) SetFramework(s string) {
	m.framework = &s
}

// Framework returns the value of the "framework" field in the mutation.
func (m *EnvReportMutation) Framework() (r string, exists bool) {
	v := m.framework
	if v == nil {
		return
	}
	return *v, true
}

// OldFramework returns the old "framework" field's value of the EnvReport entity.
// If the EnvReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvReportMutation) OldFramework(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFramework is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFramework requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFramework: %w", err)
	}
	return oldValue.Framework, nil
}

// ResetFramework resets all changes to the "framework" field.
func (m *EnvReportMutation) ResetFramework() {
	m.framework = nil
}

// SetStatus sets the "status" field.
func (m *EnvReportMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *EnvReportMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EnvReport entity.
// If the EnvReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvReportMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EnvReportMutation) ResetStatus() {
	m.status = nil
}

// SetStage sets the "stage" field.
func (m *EnvReportMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *EnvReportMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the EnvReport entity.
// If the EnvReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvReportMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *EnvReportMutation) ResetStage() {
	m.stage = nil
}

// SetExitCode sets the "exit_code" field.
func (m *EnvReportMutation) SetExitCode(i int) {
	m.exit_code = &i
	m.addexit_code = nil
}

// ExitCode returns the value of the "exit_code" field in the mutation.
func (m *EnvReportMutation) ExitCode() (r int, exists bool) {
	v := m.exit_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExitCode returns the old "exit_code" field's value of the EnvReport entity.
// If the EnvReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvReportMutation) OldExitCode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExitCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExitCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExitCode: %w", err)
	}
	return oldValue.ExitCode, nil
}

// AddExitCode adds i to the "exit_code" field.
func (m *EnvReportMutation) AddExitCode(i int) {
	if m.addexit_code != nil {
		*m.addexit_code += i
	} else {
		m.addexit_code = &i
	}
}

// AddedExitCode returns the value that was added to the "exit_code" field in this mutation.
func (m *EnvReportMutation) AddedExitCode() (r int, exists bool) {
	v := m.addexit_code
	if v == nil {
		return
	}
	return *v, true
}

// ResetExitCode resets all changes to the "exit_code" field.
func (m *EnvReportMutation) ResetExitCode() {
	m.exit_code = nil
	m.addexit_code = nil
}

// SetCoveragePercent sets the "coverage_percent" field.
func (m *EnvReportMutation) SetCoveragePercent(f float64) {
	m.coverage_percent = &f
	m.addcoverage_percent = nil
}

// CoveragePercent returns the value of the "coverage_percent" field in the mutation.
func (m *EnvReportMutation) CoveragePercent() (r float64, exists bool) {
	v := m.coverage_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldCoveragePercent returns the old "coverage_percent" field's value of the EnvReport entity.
// If the EnvReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvReportMutation) OldCoveragePercent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoveragePercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoveragePercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoveragePercent: %w", err)
	}
	return oldValue.CoveragePercent, nil
}

// AddCoveragePercent adds f to the "coverage_percent" field.
func (m *EnvReportMutation) AddCoveragePercent(f float64) {
	if m.addcoverage_percent != nil {
		*m.addcoverage_percent += f
	} else {
		m.addcoverage_percent = &f
	}
}

// AddedCoveragePercent returns the value that was added to the "coverage_percent" field in this mutation.
func (m *EnvReportMutation) AddedCoveragePercent() (r float64, exists bool) {
	v := m.addcoverage_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoveragePercent resets all changes to the "coverage_percent" field.
func (m *EnvReportMutation) ResetCoveragePercent() {
	m.coverage_percent = nil
	m.addcoverage_percent = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *EnvReportMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *EnvReportMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the EnvReport entity.
// If the EnvReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvReportMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *EnvReportMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *EnvReportMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *EnvReportMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetReport sets the "report" field.
func (m *EnvReportMutation) SetReport(rr report.EnvReport) {
	m.report = &rr
}

// Report returns the value of the "report" field in the mutation.
func (m *EnvReportMutation) Report() (r report.EnvReport, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReport returns the old "report" field's value of the EnvReport entity.
// If the EnvReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvReportMutation) OldReport(ctx context.Context) (v report.EnvReport, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReport: %w", err)
	}
	return oldValue.Report, nil
}

// ResetReport resets all changes to the "report" field.
func (m *EnvReportMutation) ResetReport() {
	m.report = nil
}

// Where appends a list predicates to the EnvReportMutation builder.
func (m *EnvReportMutation) Where(ps ...predicate.EnvReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnvReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnvReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EnvReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnvReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnvReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EnvReport).
func (m *EnvReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnvReportMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.run_id != nil {
		fields = append(fields, envreport.FieldRunID)
	}
	if m.env != nil {
		fields = append(fields, envreport.FieldEnv)
	}
	if m.runtime != nil {
		fields = append(fields, envreport.FieldRuntime)
	}
	if m.framework != nil {
		fields = append(fields, envreport.FieldFramework)
	}
	if m.status != nil {
		fields = append(fields, envreport.FieldStatus)
	}
	if m.stage != nil {
		fields = append(fields, envreport.FieldStage)
	}
	if m.exit_code != nil {
		fields = append(fields, envreport.FieldExitCode)
	}
	if m.coverage_percent != nil {
		fields = append(fields, envreport.FieldCoveragePercent)
	}
	if m.duration_ms != nil {
		fields = append(fields, envreport.FieldDurationMs)
	}
	if m.report != nil {
		fields = append(fields, envreport.FieldReport)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnvReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case envreport.FieldRunID:
		return m.RunID()
	case envreport.FieldEnv:
		return m.Env()
	case envreport.FieldRuntime:
		return m.Runtime()
	case envreport.FieldFramework:
		return m.Framework()
	case envreport.FieldStatus:
		return m.Status()
	case envreport.FieldStage:
		return m.Stage()
	case envreport.FieldExitCode:
		return m.ExitCode()
	case envreport.FieldCoveragePercent:
		return m.CoveragePercent()
	case envreport.FieldDurationMs:
		return m.DurationMs()
	case envreport.FieldReport:
		return m.Report()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnvReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case envreport.FieldRunID:
		return m.OldRunID(ctx)
	case envreport.FieldEnv:
		return m.OldEnv(ctx)
	case envreport.FieldRuntime:
		return m.OldRuntime(ctx)
	case envreport.FieldFramework:
		return m.OldFramework(ctx)
	case envreport.FieldStatus:
		return m.OldStatus(ctx)
	case envreport.FieldStage:
		return m.OldStage(ctx)
	case envreport.FieldExitCode:
		return m.OldExitCode(ctx)
	case envreport.FieldCoveragePercent:
		return m.OldCoveragePercent(ctx)
	case envreport.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case envreport.FieldReport:
		return m.OldReport(ctx)
	}
	return nil, fmt.Errorf("unknown EnvReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case envreport.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case envreport.FieldEnv:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnv(v)
		return nil
	case envreport.FieldRuntime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuntime(v)
		return nil
	case envreport.FieldFramework:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFramework(v)
		return nil
	case envreport.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case envreport.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case envreport.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExitCode(v)
		return nil
	case envreport.FieldCoveragePercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoveragePercent(v)
		return nil
	case envreport.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case envreport.FieldReport:
		v, ok := value.(report.EnvReport)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReport(v)
		return nil
	}
	return fmt.Errorf("unknown EnvReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnvReportMutation) AddedFields() []string {
	var fields []string
	if m.addexit_code != nil {
		fields = append(fields, envreport.FieldExitCode)
	}
	if m.addcoverage_percent != nil {
		fields = append(fields, envreport.FieldCoveragePercent)
	}
	if m.addduration_ms != nil {
		fields = append(fields, envreport.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnvReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case envreport.FieldExitCode:
		return m.AddedExitCode()
	case envreport.FieldCoveragePercent:
		return m.AddedCoveragePercent()
	case envreport.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case envreport.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExitCode(v)
		return nil
	case envreport.FieldCoveragePercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoveragePercent(v)
		return nil
	case envreport.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown EnvReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnvReportMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnvReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnvReportMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EnvReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnvReportMutation) ResetField(name string) error {
	switch name {
	case envreport.FieldRunID:
		m.ResetRunID()
		return nil
	case envreport.FieldEnv:
		m.ResetEnv()
		return nil
	case envreport.FieldRuntime:
		m.ResetRuntime()
		return nil
	case envreport.FieldFramework:
		m.ResetFramework()
		return nil
	case envreport.FieldStatus:
		m.ResetStatus()
		return nil
	case envreport.FieldStage:
		m.ResetStage()
		return nil
	case envreport.FieldExitCode:
		m.ResetExitCode()
		return nil
	case envreport.FieldCoveragePercent:
		m.ResetCoveragePercent()
		return nil
	case envreport.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case envreport.FieldReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown EnvReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnvReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnvReportMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnvReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnvReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnvReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnvReportMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnvReportMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EnvReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnvReportMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EnvReport edge %s", name)
}

// GateRunMutation represents an operation that mutates the GateRun nodes in the graph.
type GateRunMutation struct {
	config
	op            Op
	typ           string
	id            *int
	run_id        *string
	gate          *string
	project       *string
	started_at    *time.Time
	finished_at   *time.Time
	passed        *bool
	steps         *[]report.GateStep
	appendsteps   []report.GateStep
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GateRun, error)
	predicates    []predicate.GateRun
}

var _ ent.Mutation = (*GateRunMutation)(nil)

// gaterunOption allows management of the mutation configuration using functional options.
type gaterunOption func(*GateRunMutation)

// newGateRunMutation creates new mutation for the GateRun entity.
func newGateRunMutation(c config, op Op, opts ...gaterunOption) *GateRunMutation {
	m := &GateRunMutation{
		config:        c,
		op:            op,
		typ:           TypeGateRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGateRunID sets the ID field of the mutation.
func withGateRunID(id int) gaterunOption {
	return func(m *GateRunMutation) {
		var (
			err   error
			once  sync.Once
			value *GateRun
		)
		m.oldValue = func(ctx context.Context) (*GateRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GateRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGateRun sets the old GateRun of the mutation.
func withGateRun(node *GateRun) gaterunOption {
	return func(m *GateRunMutation) {
		m.oldValue = func(context.Context) (*GateRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GateRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GateRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GateRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GateRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GateRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *GateRunMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *GateRunMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *GateRunMutation) ResetRunID() {
	m.run_id = nil
}

// SetGate sets the "gate" field.
func (m *GateRunMutation) SetGate(s string) {
	m.gate = &s
}

// Gate returns the value of the "gate" field in the mutation.
func (m *GateRunMutation) Gate() (r string, exists bool) {
	v := m.gate
	if v == nil {
		return
	}
	return *v, true
}

// OldGate returns the old "gate" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldGate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGate: %w", err)
	}
	return oldValue.Gate, nil
}

// ResetGate resets all changes to the "gate" field.
func (m *GateRunMutation) ResetGate() {
	m.gate = nil
}

// SetProject sets the "project" field.
func (m *GateRunMutation) SetProject(s string) {
	m.project = &s
}

// Project returns the value of the "project" field in the mutation.
func (m *GateRunMutation) Project() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProject returns the old "project" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldProject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProject: %w", err)
	}
	return oldValue.Project, nil
}

// ResetProject resets all changes to the "project" field.
func (m *GateRunMutation) ResetProject() {
	m.project = nil
}

// SetStartedAt sets the "started_at" field.
func (m *GateRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *GateRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *GateRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *GateRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *GateRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldFinishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *GateRunMutation) ResetFinishedAt() {
	m.finished_at = nil
}

// SetPassed sets the "passed" field.
func (m *GateRunMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *GateRunMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *GateRunMutation) ResetPassed() {
	m.passed = nil
}

// SetSteps sets the "steps" field.
func (m *GateRunMutation) SetSteps(rs []report.GateStep) {
	m.steps = &rs
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *GateRunMutation) Steps() (r []report.GateStep, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the GateRun entity.
// If the GateRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateRunMutation) OldSteps(ctx context.Context) (v []report.GateStep, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds rs to the "steps" field.
func (m *GateRunMutation) AppendSteps(rs []report.GateStep) {
	m.appendsteps = append(m.appendsteps, rs...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *GateRunMutation) AppendedSteps() ([]report.GateStep, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ResetSteps resets all changes to the "steps" field.
func (m *GateRunMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
}

// Where appends a list predicates to the GateRunMutation builder.
func (m *GateRunMutation) Where(ps ...predicate.GateRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GateRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GateRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GateRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GateRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GateRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GateRun).
func (m *GateRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GateRunMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run_id != nil {
		fields = append(fields, gaterun.FieldRunID)
	}
	if m.gate != nil {
		fields = append(fields, gaterun.FieldGate)
	}
	if m.project != nil {
		fields = append(fields, gaterun.FieldProject)
	}
	if m.started_at != nil {
		fields = append(fields, gaterun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, gaterun.FieldFinishedAt)
	}
	if m.passed != nil {
		fields = append(fields, gaterun.FieldPassed)
	}
	if m.steps != nil {
		fields = append(fields, gaterun.FieldSteps)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GateRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gaterun.FieldRunID:
		return m.RunID()
	case gaterun.FieldGate:
		return m.Gate()
	case gaterun.FieldProject:
		return m.Project()
	case gaterun.FieldStartedAt:
		return m.StartedAt()
	case gaterun.FieldFinishedAt:
		return m.FinishedAt()
	case gaterun.FieldPassed:
		return m.Passed()
	case gaterun.FieldSteps:
		return m.Steps()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GateRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gaterun.FieldRunID:
		return m.OldRunID(ctx)
	case gaterun.FieldGate:
		return m.OldGate(ctx)
	case gaterun.FieldProject:
		return m.OldProject(ctx)
	case gaterun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case gaterun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case gaterun.FieldPassed:
		return m.OldPassed(ctx)
	case gaterun.FieldSteps:
		return m.OldSteps(ctx)
	}
	return nil, fmt.Errorf("unknown GateRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GateRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gaterun.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case gaterun.FieldGate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGate(v)
		return nil
	case gaterun.FieldProject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProject(v)
		return nil
	case gaterun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case gaterun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case gaterun.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case gaterun.FieldSteps:
		v, ok := value.([]report.GateStep)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	}
	return fmt.Errorf("unknown GateRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GateRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GateRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GateRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GateRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GateRunMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GateRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GateRunMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GateRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GateRunMutation) ResetField(name string) error {
	switch name {
	case gaterun.FieldRunID:
		m.ResetRunID()
		return nil
	case gaterun.FieldGate:
		m.ResetGate()
		return nil
	case gaterun.FieldProject:
		m.ResetProject()
		return nil
	case gaterun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case gaterun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case gaterun.FieldPassed:
		m.ResetPassed()
		return nil
	case gaterun.FieldSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown GateRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GateRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GateRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GateRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GateRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GateRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GateRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GateRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GateRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GateRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GateRun edge %s", name)
}

// MatrixRunMutation represents an operation that mutates the MatrixRun nodes in the graph.
type MatrixRunMutation struct {
	config
	op            Op
	typ           string
	id            *int
	run_id        *string
	project       *string
	started_at    *time.Time
	finished_at   *time.Time
	passed        *int
	addpassed     *int
	failed        *int
	addfailed     *int
	errored       *int
	adderrored    *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MatrixRun, error)
	predicates    []predicate.MatrixRun
}

var _ ent.Mutation = (*MatrixRunMutation)(nil)

// matrixrunOption allows management of the mutation configuration using functional options.
type matrixrunOption func(*MatrixRunMutation)

// newMatrixRunMutation creates new mutation for the MatrixRun entity.
func newMatrixRunMutation(c config, op Op, opts ...matrixrunOption) *MatrixRunMutation {
	m := &MatrixRunMutation{
		config:        c,
		op:            op,
		typ:           TypeMatrixRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatrixRunID sets the ID field of the mutation.
func withMatrixRunID(id int) matrixrunOption {
	return func(m *MatrixRunMutation) {
		var (
			err   error
			once  sync.Once
			value *MatrixRun
		)
		m.oldValue = func(ctx context.Context) (*MatrixRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MatrixRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatrixRun sets the old MatrixRun of the mutation.
func withMatrixRun(node *MatrixRun) matrixrunOption {
	return func(m *MatrixRunMutation) {
		m.oldValue = func(context.Context) (*MatrixRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatrixRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatrixRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatrixRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatrixRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MatrixRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *MatrixRunMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *MatrixRunMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the MatrixRun entity.
// If the MatrixRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixRunMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *MatrixRunMutation) ResetRunID() {
	m.run_id = nil
}

// SetProject sets the "project" field.
func (m *MatrixRunMutation) SetProject(s string) {
	m.project = &s
}

// Project returns the value of the "project" field in the mutation.
func (m *MatrixRunMutation) Project() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProject returns the old "project" field's value of the MatrixRun entity.
// If the MatrixRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixRunMutation) OldProject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProject: %w", err)
	}
	return oldValue.Project, nil
}

// ResetProject resets all changes to the "project" field.
func (m *MatrixRunMutation) ResetProject() {
	m.project = nil
}

// SetStartedAt sets the "started_at" field.
func (m *MatrixRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *MatrixRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the MatrixRun entity.
// If the MatrixRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *MatrixRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *MatrixRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *MatrixRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the MatrixRun entity.
// If the MatrixRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixRunMutation) OldFinishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *MatrixRunMutation) ResetFinishedAt() {
	m.finished_at = nil
}

// SetPassed sets the "passed" field.
func (m *MatrixRunMutation) SetPassed(i int) {
	m.passed = &i
	m.addpassed = nil
}

// Passed returns the value of the "passed" field in the mutation.
func (m *MatrixRunMutation) Passed() (r int, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the MatrixRun entity.
// If the MatrixRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixRunMutation) OldPassed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// AddPassed adds i to the "passed" field.
func (m *MatrixRunMutation) AddPassed(i int) {
	if m.addpassed != nil {
		*m.addpassed += i
	} else {
		m.addpassed = &i
	}
}

// AddedPassed returns the value that was added to the "passed" field in this mutation.
func (m *MatrixRunMutation) AddedPassed() (r int, exists bool) {
	v := m.addpassed
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassed resets all changes to the "passed" field.
func (m *MatrixRunMutation) ResetPassed() {
	m.passed = nil
	m.addpassed = nil
}

// SetFailed sets the "failed" field.
func (m *MatrixRunMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *MatrixRunMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the MatrixRun entity.
// If the MatrixRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixRunMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *MatrixRunMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *MatrixRunMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *MatrixRunMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetErrored sets the "errored" field.
func (m *MatrixRunMutation) SetErrored(i int) {
	m.errored = &i
	m.adderrored = nil
}

// Errored returns the value of the "errored" field in the mutation.
func (m *MatrixRunMutation) Errored() (r int, exists bool) {
	v := m.errored
	if v == nil {
		return
	}
	return *v, true
}

// OldErrored returns the old "errored" field's value of the MatrixRun entity.
// If the MatrixRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixRunMutation) OldErrored(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrored is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrored requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrored: %w", err)
	}
	return oldValue.Errored, nil
}

// AddErrored adds i to the "errored" field.
func (m *MatrixRunMutation) AddErrored(i int) {
	if m.adderrored != nil {
		*m.adderrored += i
	} else {
		m.adderrored = &i
	}
}

// AddedErrored returns the value that was added to the "errored" field in this mutation.
func (m *MatrixRunMutation) AddedErrored() (r int, exists bool) {
	v := m.adderrored
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrored resets all changes to the "errored" field.
func (m *MatrixRunMutation) ResetErrored() {
	m.errored = nil
	m.adderrored = nil
}

// Where appends a list predicates to the MatrixRunMutation builder.
func (m *MatrixRunMutation) Where(ps ...predicate.MatrixRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatrixRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatrixRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MatrixRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatrixRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatrixRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MatrixRun).
func (m *MatrixRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatrixRunMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run_id != nil {
		fields = append(fields, matrixrun.FieldRunID)
	}
	if m.project != nil {
		fields = append(fields, matrixrun.FieldProject)
	}
	if m.started_at != nil {
		fields = append(fields, matrixrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, matrixrun.FieldFinishedAt)
	}
	if m.passed != nil {
		fields = append(fields, matrixrun.FieldPassed)
	}
	if m.failed != nil {
		fields = append(fields, matrixrun.FieldFailed)
	}
	if m.errored != nil {
		fields = append(fields, matrixrun.FieldErrored)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatrixRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case matrixrun.FieldRunID:
		return m.RunID()
	case matrixrun.FieldProject:
		return m.Project()
	case matrixrun.FieldStartedAt:
		return m.StartedAt()
	case matrixrun.FieldFinishedAt:
		return m.FinishedAt()
	case matrixrun.FieldPassed:
		return m.Passed()
	case matrixrun.FieldFailed:
		return m.Failed()
	case matrixrun.FieldErrored:
		return m.Errored()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatrixRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case matrixrun.FieldRunID:
		return m.OldRunID(ctx)
	case matrixrun.FieldProject:
		return m.OldProject(ctx)
	case matrixrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case matrixrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case matrixrun.FieldPassed:
		return m.OldPassed(ctx)
	case matrixrun.FieldFailed:
		return m.OldFailed(ctx)
	case matrixrun.FieldErrored:
		return m.OldErrored(ctx)
	}
	return nil, fmt.Errorf("unknown MatrixRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatrixRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case matrixrun.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case matrixrun.FieldProject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProject(v)
		return nil
	case matrixrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case matrixrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case matrixrun.FieldPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case matrixrun.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case matrixrun.FieldErrored:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrored(v)
		return nil
	}
	return fmt.Errorf("unknown MatrixRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatrixRunMutation) AddedFields() []string {
	var fields []string
	if m.addpassed != nil {
		fields = append(fields, matrixrun.FieldPassed)
	}
	if m.addfailed != nil {
		fields = append(fields, matrixrun.FieldFailed)
	}
	if m.adderrored != nil {
		fields = append(fields, matrixrun.FieldErrored)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatrixRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case matrixrun.FieldPassed:
		return m.AddedPassed()
	case matrixrun.FieldFailed:
		return m.AddedFailed()
	case matrixrun.FieldErrored:
		return m.AddedErrored()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatrixRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case matrixrun.FieldPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassed(v)
		return nil
	case matrixrun.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	case matrixrun.FieldErrored:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrored(v)
		return nil
	}
	return fmt.Errorf("unknown MatrixRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatrixRunMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatrixRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatrixRunMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MatrixRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatrixRunMutation) ResetField(name string) error {
	switch name {
	case matrixrun.FieldRunID:
		m.ResetRunID()
		return nil
	case matrixrun.FieldProject:
		m.ResetProject()
		return nil
	case matrixrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case matrixrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case matrixrun.FieldPassed:
		m.ResetPassed()
		return nil
	case matrixrun.FieldFailed:
		m.ResetFailed()
		return nil
	case matrixrun.FieldErrored:
		m.ResetErrored()
		return nil
	}
	return fmt.Errorf("unknown MatrixRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatrixRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatrixRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatrixRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatrixRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatrixRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatrixRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatrixRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MatrixRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatrixRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MatrixRun edge %s", name)
}
