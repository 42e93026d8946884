package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/readlee/doc-extractor/constants"
	"github.com/readlee/doc-extractor/db/ent/schema/utils"

	"github.com/google/uuid"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("status").
			Default(string(constants.DocumentStatusUploading)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		// key of the source blob in object storage
		field.String("storage_key").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative().Default(0),
		// optional fingerprint for dedup; not a correctness dependency
		field.String("content_hash").Optional().Nillable(),
		field.Int("page_count").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.JSON("metadata", json.RawMessage{}).Optional(),
		// append-only map: version key -> immutable extraction result
		field.JSON("ocr_versions", json.RawMessage{}).Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		// map: derived representation name -> {source version key, content}
		field.JSON("derived_content", json.RawMessage{}).Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("deleted_at").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY jobs (audit trail, never pruned by the pipeline)
		edge.To("jobs", DocumentJob.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("content_hash"),
		index.Fields("created_at"),
	}
}
