package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document represents a document row for data transfer between layers.
type Document struct {
	ID             uuid.UUID       `json:"id"`
	Status         string          `json:"status"`
	StorageKey     string          `json:"storage_key"`
	Filename       string          `json:"filename"`
	FileExt        string          `json:"file_ext"`
	FileSize       int             `json:"file_size"`
	ContentHash    *string         `json:"content_hash,omitempty"`
	PageCount      *int            `json:"page_count,omitempty"`
	ErrorMessage   *string         `json:"error_message,omitempty"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	OCRVersions    json.RawMessage `json:"ocr_versions,omitempty"`
	DerivedContent json.RawMessage `json:"derived_content,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty"`
}

// VersionKeys returns the keys of the ocr_versions map in unspecified order.
func (d *Document) VersionKeys() []string {
	return jsonKeys(d.OCRVersions)
}

// DerivedKeys returns the keys of the derived_content map in unspecified order.
func (d *Document) DerivedKeys() []string {
	return jsonKeys(d.DerivedContent)
}

func jsonKeys(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
