// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/readlee/doc-extractor/db/ent/schema"
	"github.com/readlee/doc-extractor/gen/ent/document"
	"github.com/readlee/doc-extractor/gen/ent/documentjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[1].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescStorageKey is the schema descriptor for storage_key field.
	documentDescStorageKey := documentFields[2].Descriptor()
	// document.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	document.StorageKeyValidator = documentDescStorageKey.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[3].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[4].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[5].Descriptor()
	// document.DefaultFileSize holds the default value on creation for the file_size field.
	document.DefaultFileSize = documentDescFileSize.Default.(int)
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[12].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[13].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	documentjobFields := schema.DocumentJob{}.Fields()
	_ = documentjobFields
	// documentjobDescJobType is the schema descriptor for job_type field.
	documentjobDescJobType := documentjobFields[2].Descriptor()
	// documentjob.JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	documentjob.JobTypeValidator = func() func(string) error {
		validators := documentjobDescJobType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(job_type string) error {
			for _, fn := range fns {
				if err := fn(job_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentjobDescStatus is the schema descriptor for status field.
	documentjobDescStatus := documentjobFields[3].Descriptor()
	// documentjob.DefaultStatus holds the default value on creation for the status field.
	documentjob.DefaultStatus = documentjobDescStatus.Default.(string)
	// documentjobDescAttempts is the schema descriptor for attempts field.
	documentjobDescAttempts := documentjobFields[4].Descriptor()
	// documentjob.DefaultAttempts holds the default value on creation for the attempts field.
	documentjob.DefaultAttempts = documentjobDescAttempts.Default.(int)
	// documentjob.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	documentjob.AttemptsValidator = documentjobDescAttempts.Validators[0].(func(int) error)
	// documentjobDescMaxAttempts is the schema descriptor for max_attempts field.
	documentjobDescMaxAttempts := documentjobFields[5].Descriptor()
	// documentjob.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	documentjob.DefaultMaxAttempts = documentjobDescMaxAttempts.Default.(int)
	// documentjob.MaxAttemptsValidator is a validator for the "max_attempts" field. It is called by the builders before save.
	documentjob.MaxAttemptsValidator = documentjobDescMaxAttempts.Validators[0].(func(int) error)
	// documentjobDescCreatedAt is the schema descriptor for created_at field.
	documentjobDescCreatedAt := documentjobFields[9].Descriptor()
	// documentjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentjob.DefaultCreatedAt = documentjobDescCreatedAt.Default.(func() time.Time)
	// documentjobDescUpdatedAt is the schema descriptor for updated_at field.
	documentjobDescUpdatedAt := documentjobFields[10].Descriptor()
	// documentjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	documentjob.DefaultUpdatedAt = documentjobDescUpdatedAt.Default.(func() time.Time)
	// documentjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	documentjob.UpdateDefaultUpdatedAt = documentjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentjobDescID is the schema descriptor for id field.
	documentjobDescID := documentjobFields[0].Descriptor()
	// documentjob.DefaultID holds the default value on creation for the id field.
	documentjob.DefaultID = documentjobDescID.Default.(func() uuid.UUID)
}
