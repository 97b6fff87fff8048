package models

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus represents the wizard state of a submission
type SubmissionStatus string

const (
	SubmissionStatusDraft      SubmissionStatus = "draft"
	SubmissionStatusCompleted  SubmissionStatus = "completed"
	SubmissionStatusDownloaded SubmissionStatus = "downloaded"
)

// FormSubmission represents one in-progress or completed petition,
// keyed by anonymous session rather than a user account.
type FormSubmission struct {
	ID          uuid.UUID        `json:"id"`
	SessionID   string           `json:"session_id"`
	FormCode    string           `json:"form_code"`
	FormData    CaseRecord       `json:"form_data"`
	Status      SubmissionStatus `json:"status"`
	Language    string           `json:"language"`
	County      string           `json:"county,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}
