package repository

import (
	"context"

	"docupal-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository handles database operations for user profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile record
func (r *ProfileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (session_id, profile_data, language)
		VALUES ($1, $2, $3)
		RETURNING id, last_used`

	return r.db.QueryRow(
		ctx, query,
		profile.SessionID,
		profile.ProfileData,
		profile.Language,
	).Scan(&profile.ID, &profile.LastUsed)
}

// GetBySessionID retrieves the profile for a session
func (r *ProfileRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	query := `
		SELECT id, session_id, profile_data, language, last_used
		FROM user_profiles
		WHERE session_id = $1`

	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&profile.ID,
		&profile.SessionID,
		&profile.ProfileData,
		&profile.Language,
		&profile.LastUsed,
	)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// Update updates a profile and refreshes its last-used timestamp
func (r *ProfileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET profile_data = $2, language = $3, last_used = now()
		WHERE session_id = $1
		RETURNING last_used`

	return r.db.QueryRow(
		ctx, query,
		profile.SessionID,
		profile.ProfileData,
		profile.Language,
	).Scan(&profile.LastUsed)
}
