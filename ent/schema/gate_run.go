package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/matrun/matrun/internal/report"
)

// GateRun records one quality or docs gate invocation with its
// ordered step results.
type GateRun struct {
	ent.Schema
}

func (GateRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("UUID of the run"),
		field.String("gate").
			NotEmpty().
			Comment("quality or docs"),
		field.String("project").
			NotEmpty().
			Comment("Project name from the config"),
		field.Time("started_at").
			Comment("When the gate began"),
		field.Time("finished_at").
			Comment("When the gate finished"),
		field.Bool("passed").
			Default(false).
			Comment("Whether every executed step passed"),
		field.JSON("steps", []report.GateStep{}).
			Comment("Step results in execution order"),
	}
}

func (GateRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("gate"),
		index.Fields("started_at"),
	}
}
