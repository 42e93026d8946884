package repository

import (
	"github.com/readlee/doc-extractor/gen/ent"
	"github.com/readlee/doc-extractor/internal/entity"
)

func toDocumentEntity(row *ent.Document) *entity.Document {
	if row == nil {
		return nil
	}
	return &entity.Document{
		ID:             row.ID,
		Status:         row.Status,
		StorageKey:     row.StorageKey,
		Filename:       row.Filename,
		FileExt:        row.FileExt,
		FileSize:       row.FileSize,
		ContentHash:    row.ContentHash,
		PageCount:      row.PageCount,
		ErrorMessage:   row.ErrorMessage,
		Metadata:       row.Metadata,
		OCRVersions:    row.OcrVersions,
		DerivedContent: row.DerivedContent,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		DeletedAt:      row.DeletedAt,
	}
}
