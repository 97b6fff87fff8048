package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"docupal-backend/forms"
	"docupal-backend/models"
	"docupal-backend/repository"
	"docupal-backend/service"
	"docupal-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles document generation and download
type DocumentHandler struct {
	documentService   *service.DocumentService
	submissionService *service.SubmissionService
	documentRepo      *repository.DocumentRepository
	fileRepo          *repository.FileRepository
	storage           storage.Storage
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, submissionService *service.SubmissionService, documentRepo *repository.DocumentRepository, fileRepo *repository.FileRepository, store storage.Storage) *DocumentHandler {
	return &DocumentHandler{
		documentService:   documentService,
		submissionService: submissionService,
		documentRepo:      documentRepo,
		fileRepo:          fileRepo,
		storage:           store,
	}
}

// GenerateDocuments handles POST /api/submissions/:id/generate. It
// renders the full document set for the submission and replaces any
// previously generated set.
func (h *DocumentHandler) GenerateDocuments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid submission ID format",
			},
		})
		return
	}

	getResult, err := h.submissionService.GetSubmission(c.Request.Context(), service.GetSubmissionRequest{ID: id})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Submission not found",
			},
		})
		return
	}
	submission := getResult.Submission

	form := forms.Lookup(submission.FormCode)
	if form == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORM_NOT_FOUND",
				"message": "No petition form with that code",
			},
		})
		return
	}

	if missing := forms.ValidateCaseRecord(&submission.FormData, form); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Required fields are missing",
				"details": missing,
			},
		})
		return
	}

	files, err := h.fileRepo.ListBySubmissionID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	documents, err := h.documentService.GenerateAll(form, submission.FormData, files)
	if err != nil {
		status := http.StatusInternalServerError
		code := "GENERATION_FAILED"
		if errors.Is(err, service.ErrUnknownForm) {
			status = http.StatusBadRequest
			code = "FORM_NOT_FOUND"
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": err.Error(),
			},
		})
		return
	}

	// Regeneration replaces the previous set
	if err := h.documentRepo.DeleteBySubmissionID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	var records []*models.GeneratedDocument
	for _, doc := range documents {
		docID := uuid.New()

		storagePath, err := h.storage.Upload(c.Request.Context(), docID, doc.Filename, bytes.NewReader(doc.Data))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "STORAGE_ERROR",
					"message": fmt.Sprintf("Failed to store %s: %v", doc.Filename, err),
				},
			})
			return
		}

		record := &models.GeneratedDocument{
			ID:           docID,
			SubmissionID: id,
			DocumentType: doc.Type,
			Filename:     doc.Filename,
			Size:         int64(len(doc.Data)),
			StoragePath:  storagePath,
		}
		if err := h.documentRepo.Create(c.Request.Context(), record); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": err.Error(),
				},
			})
			return
		}
		records = append(records, record)
	}

	type documentInfo struct {
		ID       uuid.UUID           `json:"id"`
		Type     models.DocumentType `json:"type"`
		Filename string              `json:"filename"`
		Size     string              `json:"size"`
	}
	infos := make([]documentInfo, 0, len(records))
	for _, r := range records {
		infos = append(infos, documentInfo{
			ID:       r.ID,
			Type:     r.DocumentType,
			Filename: r.Filename,
			Size:     service.FormatFileSize(r.Size),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"submission_id": id,
			"documents":     infos,
		},
	})
}

// ListDocuments handles GET /api/submissions/:id/documents
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid submission ID format",
			},
		})
		return
	}

	docs, err := h.documentRepo.ListBySubmissionID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    docs,
	})
}

// DownloadDocument handles GET /api/submissions/:id/documents/:type
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid submission ID format",
			},
		})
		return
	}

	docType := models.DocumentType(c.Param("type"))
	switch docType {
	case models.DocumentTypePetition, models.DocumentTypeProofOfService, models.DocumentTypeExhibits:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_DOCUMENT_TYPE",
				"message": "Document type must be petition, proof_of_service or exhibits",
			},
		})
		return
	}

	doc, err := h.documentRepo.GetBySubmissionAndType(c.Request.Context(), id, docType)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found; generate documents first",
			},
		})
		return
	}

	reader, err := h.storage.Download(c.Request.Context(), doc.StoragePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DOWNLOAD_FAILED",
				"message": fmt.Sprintf("Failed to download document: %v", err),
			},
		})
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.DataFromReader(http.StatusOK, doc.Size, "application/pdf", reader, nil)
}
