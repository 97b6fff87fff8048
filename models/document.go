package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType identifies one of the generated PDF documents
type DocumentType string

const (
	DocumentTypePetition       DocumentType = "petition"
	DocumentTypeProofOfService DocumentType = "proof_of_service"
	DocumentTypeExhibits       DocumentType = "exhibits"
)

// GeneratedDocument represents a generated PDF stored for download
type GeneratedDocument struct {
	ID           uuid.UUID    `json:"id"`
	SubmissionID uuid.UUID    `json:"submission_id"`
	DocumentType DocumentType `json:"document_type"`
	Filename     string       `json:"filename"`
	Size         int64        `json:"size"`
	StoragePath  string       `json:"storage_path"`
	CreatedAt    time.Time    `json:"created_at"`
}
