package repository

import (
	"context"

	"docupal-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubmissionRepository handles database operations for form submissions
type SubmissionRepository struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create creates a new submission record
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.FormSubmission) error {
	query := `
		INSERT INTO form_submissions (
			session_id, form_code, form_data, status, language, county
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		submission.SessionID,
		submission.FormCode,
		submission.FormData,
		submission.Status,
		submission.Language,
		submission.County,
	).Scan(&submission.ID, &submission.CreatedAt)
}

// GetByID retrieves a submission by ID
func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FormSubmission, error) {
	submission := &models.FormSubmission{}
	query := `
		SELECT id, session_id, form_code, form_data, status, language, county, created_at, completed_at
		FROM form_submissions
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&submission.ID,
		&submission.SessionID,
		&submission.FormCode,
		&submission.FormData,
		&submission.Status,
		&submission.Language,
		&submission.County,
		&submission.CreatedAt,
		&submission.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	return submission, nil
}

// Update updates a submission's wizard state
func (r *SubmissionRepository) Update(ctx context.Context, submission *models.FormSubmission) error {
	query := `
		UPDATE form_submissions
		SET form_code = $2, form_data = $3, status = $4, language = $5, county = $6, completed_at = $7
		WHERE id = $1`

	_, err := r.db.Exec(
		ctx, query,
		submission.ID,
		submission.FormCode,
		submission.FormData,
		submission.Status,
		submission.Language,
		submission.County,
		submission.CompletedAt,
	)
	return err
}

// ListBySessionID retrieves all submissions for a session, newest first
func (r *SubmissionRepository) ListBySessionID(ctx context.Context, sessionID string) ([]*models.FormSubmission, error) {
	query := `
		SELECT id, session_id, form_code, form_data, status, language, county, created_at, completed_at
		FROM form_submissions
		WHERE session_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []*models.FormSubmission
	for rows.Next() {
		submission := &models.FormSubmission{}
		err := rows.Scan(
			&submission.ID,
			&submission.SessionID,
			&submission.FormCode,
			&submission.FormData,
			&submission.Status,
			&submission.Language,
			&submission.County,
			&submission.CreatedAt,
			&submission.CompletedAt,
		)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}

	return submissions, rows.Err()
}
