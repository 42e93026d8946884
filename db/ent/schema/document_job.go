package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/readlee/doc-extractor/constants"
	"github.com/readlee/doc-extractor/db/ent/schema/utils"

	"github.com/google/uuid"
)

type DocumentJob struct{ ent.Schema }

func (DocumentJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_jobs"},
	}
}

func (DocumentJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_id", uuid.UUID{}),
		field.String("job_type").NotEmpty().
			Validate(utils.EnumValidator(constants.JobTypes...)),
		field.String("status").
			Default(string(constants.JobStatusPending)),
		field.Int("attempts").NonNegative().Default(0),
		field.Int("max_attempts").Positive().Default(3),
		field.String("locked_by").Optional().Nillable(),
		field.Time("locked_at").Optional().Nillable(),
		field.String("last_error").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (DocumentJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("jobs").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (DocumentJob) Indexes() []ent.Index {
	return []ent.Index{
		// claim scan: oldest eligible first
		index.Fields("status", "created_at"),
		index.Fields("document_id"),
		// at most one active job per (document, job_type)
		index.Fields("document_id", "job_type").
			Unique().
			Annotations(entsql.IndexWhere("status IN ('pending', 'processing')")),
	}
}
