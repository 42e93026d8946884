// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "uploading"},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt, Default: 0},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "ocr_versions", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "derived_content", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
			{
				Name:    "document_content_hash",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
			{
				Name:    "document_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[12]},
			},
		},
	}
	// DocumentJobsColumns holds the columns for the "document_jobs" table.
	DocumentJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "locked_by", Type: field.TypeString, Nullable: true},
		{Name: "locked_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// DocumentJobsTable holds the schema information for the "document_jobs" table.
	DocumentJobsTable = &schema.Table{
		Name:       "document_jobs",
		Columns:    DocumentJobsColumns,
		PrimaryKey: []*schema.Column{DocumentJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_jobs_documents_jobs",
				Columns:    []*schema.Column{DocumentJobsColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentJobsColumns[2], DocumentJobsColumns[8]},
			},
			{
				Name:    "documentjob_document_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentJobsColumns[10]},
			},
			{
				Name:    "documentjob_document_id_job_type",
				Unique:  true,
				Columns: []*schema.Column{DocumentJobsColumns[10], DocumentJobsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'processing')",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		DocumentJobsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	DocumentJobsTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentJobsTable.Annotation = &entsql.Annotation{
		Table: "document_jobs",
	}
}
