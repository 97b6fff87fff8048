package service

import (
	"context"
	"errors"
	"time"

	"docupal-backend/models"
	"docupal-backend/repository"

	"github.com/google/uuid"
)

// SubmissionService handles business logic for form submissions
type SubmissionService struct {
	submissionRepo *repository.SubmissionRepository
	fileRepo       *repository.FileRepository
}

// SubmissionServiceOption is a functional option for SubmissionService
type SubmissionServiceOption func(*SubmissionService)

// WithSubmissionRepository sets the submission repository
func WithSubmissionRepository(repo *repository.SubmissionRepository) SubmissionServiceOption {
	return func(s *SubmissionService) {
		s.submissionRepo = repo
	}
}

// WithFileRepository sets the uploaded file repository
func WithFileRepository(repo *repository.FileRepository) SubmissionServiceOption {
	return func(s *SubmissionService) {
		s.fileRepo = repo
	}
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(opts ...SubmissionServiceOption) *SubmissionService {
	s := &SubmissionService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSubmissionRequest represents a request to start a submission
type CreateSubmissionRequest struct {
	SessionID string
	FormCode  string
	FormData  models.CaseRecord
	Language  string
}

// CreateSubmissionResult represents the result of starting a submission
type CreateSubmissionResult struct {
	Submission *models.FormSubmission
}

// CreateSubmission starts a new submission in draft state
func (s *SubmissionService) CreateSubmission(ctx context.Context, req CreateSubmissionRequest) (*CreateSubmissionResult, error) {
	if s.submissionRepo == nil {
		return nil, errors.New("submission repository not set")
	}

	submission := &models.FormSubmission{
		SessionID: req.SessionID,
		FormCode:  req.FormCode,
		FormData:  req.FormData,
		Status:    models.SubmissionStatusDraft,
		Language:  req.Language,
		County:    req.FormData.CaseInfo.County,
	}
	if submission.Language == "" {
		submission.Language = "en"
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	return &CreateSubmissionResult{Submission: submission}, nil
}

// GetSubmissionRequest represents a request to fetch a submission
type GetSubmissionRequest struct {
	ID uuid.UUID
}

// GetSubmissionResult represents the result of fetching a submission
type GetSubmissionResult struct {
	Submission *models.FormSubmission
}

// GetSubmission retrieves a submission by ID
func (s *SubmissionService) GetSubmission(ctx context.Context, req GetSubmissionRequest) (*GetSubmissionResult, error) {
	if s.submissionRepo == nil {
		return nil, errors.New("submission repository not set")
	}

	submission, err := s.submissionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &GetSubmissionResult{Submission: submission}, nil
}

// UpdateSubmissionRequest represents a request to update a submission
type UpdateSubmissionRequest struct {
	Submission *models.FormSubmission
}

// UpdateSubmissionResult represents the result of updating a submission
type UpdateSubmissionResult struct {
	Submission *models.FormSubmission
}

// UpdateSubmission saves updated wizard state. Completing a submission
// stamps its completion time.
func (s *SubmissionService) UpdateSubmission(ctx context.Context, req UpdateSubmissionRequest) (*UpdateSubmissionResult, error) {
	if s.submissionRepo == nil {
		return nil, errors.New("submission repository not set")
	}

	if req.Submission.Status == models.SubmissionStatusCompleted && req.Submission.CompletedAt == nil {
		now := time.Now()
		req.Submission.CompletedAt = &now
	}

	if err := s.submissionRepo.Update(ctx, req.Submission); err != nil {
		return nil, err
	}

	return &UpdateSubmissionResult{Submission: req.Submission}, nil
}

// ListSubmissionsRequest represents a request to list a session's submissions
type ListSubmissionsRequest struct {
	SessionID string
}

// ListSubmissionsResult represents the result of listing submissions
type ListSubmissionsResult struct {
	Submissions []*models.FormSubmission
}

// ListSubmissions lists submissions for a session, newest first
func (s *SubmissionService) ListSubmissions(ctx context.Context, req ListSubmissionsRequest) (*ListSubmissionsResult, error) {
	if s.submissionRepo == nil {
		return nil, errors.New("submission repository not set")
	}

	submissions, err := s.submissionRepo.ListBySessionID(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	return &ListSubmissionsResult{Submissions: submissions}, nil
}

// AutoFillRequest represents a request to auto-fill a submission from
// its uploaded documents
type AutoFillRequest struct {
	SubmissionID uuid.UUID
	Extraction   *ExtractionService
}

// AutoFillResult represents the result of auto-filling a submission
type AutoFillResult struct {
	Submission *models.FormSubmission
}

// AutoFill merges extracted candidates from the submission's uploads
// into its case record (gap-fill only) and persists the result.
func (s *SubmissionService) AutoFill(ctx context.Context, req AutoFillRequest) (*AutoFillResult, error) {
	if s.submissionRepo == nil || s.fileRepo == nil {
		return nil, errors.New("repositories not set")
	}
	if req.Extraction == nil {
		return nil, errors.New("extraction service not set")
	}

	submission, err := s.submissionRepo.GetByID(ctx, req.SubmissionID)
	if err != nil {
		return nil, err
	}

	files, err := s.fileRepo.ListBySubmissionID(ctx, req.SubmissionID)
	if err != nil {
		return nil, err
	}

	submission.FormData = req.Extraction.ExtractAndMerge(files, submission.FormData)

	if err := s.submissionRepo.Update(ctx, submission); err != nil {
		return nil, err
	}

	return &AutoFillResult{Submission: submission}, nil
}
