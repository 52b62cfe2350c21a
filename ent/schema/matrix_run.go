package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MatrixRun records one matrix invocation. The per-environment
// reports live in EnvReport rows keyed by run_id.
type MatrixRun struct {
	ent.Schema
}

func (MatrixRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("UUID of the run"),
		field.String("project").
			NotEmpty().
			Comment("Project name from the config"),
		field.Time("started_at").
			Comment("When the run began"),
		field.Time("finished_at").
			Comment("When the last environment finished"),
		field.Int("passed").
			Default(0).
			Comment("Environments that passed"),
		field.Int("failed").
			Default(0).
			Comment("Environments with test failures"),
		field.Int("errored").
			Default(0).
			Comment("Environments that could not run"),
	}
}

func (MatrixRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
	}
}
