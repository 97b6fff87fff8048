package models

import (
	"time"

	"github.com/google/uuid"
)

// FileCategory classifies an uploaded supporting document
type FileCategory string

const (
	FileCategoryIdentity  FileCategory = "identity"
	FileCategoryLegal     FileCategory = "legal"
	FileCategoryFinancial FileCategory = "financial"
	FileCategoryProperty  FileCategory = "property"
	FileCategoryGeneral   FileCategory = "general"
)

// UploadedFile represents an uploaded supporting document. ExtractedText
// is nil when text recognition failed or was skipped for the file.
type UploadedFile struct {
	ID            uuid.UUID    `json:"id"`
	SubmissionID  *uuid.UUID   `json:"submission_id,omitempty"`
	Filename      string       `json:"filename"`
	MimeType      string       `json:"mime_type"`
	Size          int64        `json:"size"`
	Category      FileCategory `json:"category"`
	StoragePath   string       `json:"storage_path"`
	ExtractedText *string      `json:"extracted_text,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}
