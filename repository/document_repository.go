package repository

import (
	"context"

	"docupal-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository handles database operations for generated documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new generated document record
func (r *DocumentRepository) Create(ctx context.Context, doc *models.GeneratedDocument) error {
	query := `
		INSERT INTO generated_documents (
			id, submission_id, document_type, filename, size, storage_path
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRow(
		ctx, query,
		doc.ID,
		doc.SubmissionID,
		doc.DocumentType,
		doc.Filename,
		doc.Size,
		doc.StoragePath,
	).Scan(&doc.CreatedAt)
}

// GetBySubmissionAndType retrieves the newest document of one type for
// a submission
func (r *DocumentRepository) GetBySubmissionAndType(ctx context.Context, submissionID uuid.UUID, docType models.DocumentType) (*models.GeneratedDocument, error) {
	doc := &models.GeneratedDocument{}
	query := `
		SELECT id, submission_id, document_type, filename, size, storage_path, created_at
		FROM generated_documents
		WHERE submission_id = $1 AND document_type = $2
		ORDER BY created_at DESC
		LIMIT 1`

	err := r.db.QueryRow(ctx, query, submissionID, docType).Scan(
		&doc.ID,
		&doc.SubmissionID,
		&doc.DocumentType,
		&doc.Filename,
		&doc.Size,
		&doc.StoragePath,
		&doc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// ListBySubmissionID retrieves all documents generated for a submission
func (r *DocumentRepository) ListBySubmissionID(ctx context.Context, submissionID uuid.UUID) ([]*models.GeneratedDocument, error) {
	query := `
		SELECT id, submission_id, document_type, filename, size, storage_path, created_at
		FROM generated_documents
		WHERE submission_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.GeneratedDocument
	for rows.Next() {
		doc := &models.GeneratedDocument{}
		err := rows.Scan(
			&doc.ID,
			&doc.SubmissionID,
			&doc.DocumentType,
			&doc.Filename,
			&doc.Size,
			&doc.StoragePath,
			&doc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteBySubmissionID removes all generated documents for a submission,
// used when regenerating the document set.
func (r *DocumentRepository) DeleteBySubmissionID(ctx context.Context, submissionID uuid.UUID) error {
	query := `DELETE FROM generated_documents WHERE submission_id = $1`
	_, err := r.db.Exec(ctx, query, submissionID)
	return err
}
