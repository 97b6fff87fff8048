package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"docupal-backend/models"
	"docupal-backend/repository"
	"docupal-backend/service"
	"docupal-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadHandler handles supporting-document uploads. Each file is
// stored, then run through text recognition and candidate extraction;
// a file that cannot be recognized is kept with metadata only.
type UploadHandler struct {
	fileRepo          *repository.FileRepository
	submissionRepo    *repository.SubmissionRepository
	storage           storage.Storage
	extractionService *service.ExtractionService
	maxFileSize       int64
	allowedMimeTypes  map[string]bool
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(fileRepo *repository.FileRepository, submissionRepo *repository.SubmissionRepository, store storage.Storage, extractionService *service.ExtractionService) *UploadHandler {
	return &UploadHandler{
		fileRepo:          fileRepo,
		submissionRepo:    submissionRepo,
		storage:           store,
		extractionService: extractionService,
		maxFileSize:       10 * 1024 * 1024, // 10MB
		allowedMimeTypes: map[string]bool{
			"application/pdf": true,
			"text/plain":      true,
			"image/png":       true,
			"image/jpeg":      true,
			"image/tiff":      true,
		},
	}
}

// UploadDocuments handles POST /api/uploads
func (h *UploadHandler) UploadDocuments(c *gin.Context) {
	submissionIDStr := c.PostForm("submission_id")
	var submissionID *uuid.UUID
	if submissionIDStr != "" {
		sid, err := uuid.Parse(submissionIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_SUBMISSION_ID",
					"message": "Invalid submission_id format",
				},
			})
			return
		}
		if _, err := h.submissionRepo.GetByID(c.Request.Context(), sid); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "SUBMISSION_NOT_FOUND",
					"message": "Submission not found",
				},
			})
			return
		}
		submissionID = &sid
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["documents"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILES",
				"message": "At least one document is required",
			},
		})
		return
	}

	var records []*models.UploadedFile

	for _, fileHeader := range form.File["documents"] {
		if fileHeader.Size > h.maxFileSize {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FILE_TOO_LARGE",
					"message": fmt.Sprintf("%s exceeds the maximum of %d bytes", fileHeader.Filename, h.maxFileSize),
				},
			})
			return
		}

		mimeType := fileHeader.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = inferMimeType(fileHeader.Filename)
		}
		if !h.allowedMimeTypes[mimeType] && !strings.HasPrefix(mimeType, "text/") {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_FILE_TYPE",
					"message": "File type not allowed. Allowed types: PDF, TXT, PNG, JPEG, TIFF",
				},
			})
			return
		}

		src, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FILE_OPEN_ERROR",
					"message": err.Error(),
				},
			})
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FILE_READ_ERROR",
					"message": err.Error(),
				},
			})
			return
		}

		fileID := uuid.New()

		storagePath, err := h.storage.Upload(c.Request.Context(), fileID, fileHeader.Filename, bytes.NewReader(data))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UPLOAD_FAILED",
					"message": fmt.Sprintf("Failed to store %s: %v", fileHeader.Filename, err),
				},
			})
			return
		}

		// Best-effort: a recognition failure keeps the file with
		// metadata only, it never fails the upload.
		processed := h.extractionService.ProcessFile(c.Request.Context(), fileHeader.Filename, mimeType, data)

		record := &models.UploadedFile{
			ID:           fileID,
			SubmissionID: submissionID,
			Filename:     fileHeader.Filename,
			MimeType:     mimeType,
			Size:         fileHeader.Size,
			Category:     processed.Category,
			StoragePath:  storagePath,
		}
		if processed.Recognized {
			record.ExtractedText = &processed.Text
		}

		if err := h.fileRepo.Create(c.Request.Context(), record); err != nil {
			h.storage.Delete(c.Request.Context(), storagePath)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": fmt.Sprintf("Failed to save record for %s: %v", fileHeader.Filename, err),
				},
			})
			return
		}

		records = append(records, record)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    records,
	})
}

// GetFile handles GET /api/files/:id
func (h *UploadHandler) GetFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid file ID format",
			},
		})
		return
	}

	file, err := h.fileRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "File not found",
			},
		})
		return
	}

	reader, err := h.storage.Download(c.Request.Context(), file.StoragePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DOWNLOAD_FAILED",
				"message": fmt.Sprintf("Failed to download file: %v", err),
			},
		})
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.DataFromReader(http.StatusOK, file.Size, file.MimeType, reader, nil)
}

func inferMimeType(filename string) string {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(name, ".txt"):
		return "text/plain"
	case strings.HasSuffix(name, ".png"):
		return "image/png"
	case strings.HasSuffix(name, ".jpg"), strings.HasSuffix(name, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(name, ".tif"), strings.HasSuffix(name, ".tiff"):
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}
