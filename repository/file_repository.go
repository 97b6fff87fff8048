package repository

import (
	"context"

	"docupal-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FileRepository handles database operations for uploaded files
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

// Create creates a new uploaded file record
func (r *FileRepository) Create(ctx context.Context, file *models.UploadedFile) error {
	query := `
		INSERT INTO uploaded_files (
			id, submission_id, filename, mime_type, size, category, storage_path, extracted_text
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	return r.db.QueryRow(
		ctx, query,
		file.ID,
		file.SubmissionID,
		file.Filename,
		file.MimeType,
		file.Size,
		file.Category,
		file.StoragePath,
		file.ExtractedText,
	).Scan(&file.CreatedAt)
}

// GetByID retrieves an uploaded file by ID
func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UploadedFile, error) {
	file := &models.UploadedFile{}
	query := `
		SELECT id, submission_id, filename, mime_type, size, category, storage_path, extracted_text, created_at
		FROM uploaded_files
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.SubmissionID,
		&file.Filename,
		&file.MimeType,
		&file.Size,
		&file.Category,
		&file.StoragePath,
		&file.ExtractedText,
		&file.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return file, nil
}

// ListBySubmissionID retrieves all files for a submission in upload order
func (r *FileRepository) ListBySubmissionID(ctx context.Context, submissionID uuid.UUID) ([]*models.UploadedFile, error) {
	query := `
		SELECT id, submission_id, filename, mime_type, size, category, storage_path, extracted_text, created_at
		FROM uploaded_files
		WHERE submission_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*models.UploadedFile
	for rows.Next() {
		file := &models.UploadedFile{}
		err := rows.Scan(
			&file.ID,
			&file.SubmissionID,
			&file.Filename,
			&file.MimeType,
			&file.Size,
			&file.Category,
			&file.StoragePath,
			&file.ExtractedText,
			&file.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, rows.Err()
}

// Delete deletes an uploaded file record
func (r *FileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM uploaded_files WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
