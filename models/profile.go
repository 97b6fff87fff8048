package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile stores reusable petitioner data per anonymous session so
// returning users do not have to re-enter everything.
type UserProfile struct {
	ID          uuid.UUID  `json:"id"`
	SessionID   string     `json:"session_id"`
	ProfileData CaseRecord `json:"profile_data"`
	Language    string     `json:"language"`
	LastUsed    time.Time  `json:"last_used"`
}
