package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/matrun/matrun/internal/report"
)

// EnvReport is the run report of one environment within a matrix
// run. Queryable outcome fields are split out; the full report,
// lockfile and coverage included, is kept as JSON.
type EnvReport struct {
	ent.Schema
}

func (EnvReport) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Immutable().
			NotEmpty().
			Comment("UUID of the owning matrix run"),
		field.String("env").
			NotEmpty().
			Comment("Environment name, e.g. go1.24-chi-v5.1"),
		field.String("runtime").
			Comment("Runtime axis value"),
		field.String("framework").
			Comment("Framework axis value, empty without a framework"),
		field.String("status").
			NotEmpty().
			Comment("passed, failed or error"),
		field.String("stage").
			Comment("Stage the run stopped at"),
		field.Int("exit_code").
			Default(0).
			Comment("Test command exit code"),
		field.Float("coverage_percent").
			Default(0).
			Comment("Statement coverage of the run"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Wall-clock duration"),
		field.JSON("report", report.EnvReport{}).
			Comment("Full run report"),
	}
}

func (EnvReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "env").
			Unique(),
		index.Fields("status"),
	}
}
