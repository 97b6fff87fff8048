package handlers

import (
	"net/http"

	"docupal-backend/forms"
	"docupal-backend/models"
	"docupal-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubmissionHandler handles HTTP requests for form submissions
type SubmissionHandler struct {
	submissionService *service.SubmissionService
	extractionService *service.ExtractionService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService *service.SubmissionService, extractionService *service.ExtractionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		extractionService: extractionService,
	}
}

// CreateSubmissionRequest represents the request body for creating a submission
type CreateSubmissionRequest struct {
	SessionID string            `json:"session_id" binding:"required"`
	FormCode  string            `json:"form_code" binding:"required"`
	FormData  models.CaseRecord `json:"form_data"`
	Language  string            `json:"language"`
}

// CreateSubmission handles POST /api/submissions
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	if forms.Lookup(req.FormCode) == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORM_NOT_FOUND",
				"message": "No petition form with that code",
			},
		})
		return
	}

	result, err := h.submissionService.CreateSubmission(c.Request.Context(), service.CreateSubmissionRequest{
		SessionID: req.SessionID,
		FormCode:  req.FormCode,
		FormData:  req.FormData,
		Language:  req.Language,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result.Submission,
	})
}

// UpdateSubmissionRequest represents the request body for updating a submission
type UpdateSubmissionRequest struct {
	FormData *models.CaseRecord       `json:"form_data"`
	Status   *models.SubmissionStatus `json:"status"`
	Language *string                  `json:"language"`
}

// UpdateSubmission handles PATCH /api/submissions/:id
func (h *SubmissionHandler) UpdateSubmission(c *gin.Context) {
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

	var req UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
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
	if req.FormData != nil {
		submission.FormData = *req.FormData
		submission.County = req.FormData.CaseInfo.County
	}
	if req.Status != nil {
		submission.Status = *req.Status
	}
	if req.Language != nil {
		submission.Language = *req.Language
	}

	result, err := h.submissionService.UpdateSubmission(c.Request.Context(), service.UpdateSubmissionRequest{Submission: submission})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPDATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Submission,
	})
}

// ListSubmissions handles GET /api/submissions/session/:sessionId
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	result, err := h.submissionService.ListSubmissions(c.Request.Context(), service.ListSubmissionsRequest{
		SessionID: c.Param("sessionId"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Submissions,
	})
}

// AutoFill handles POST /api/submissions/:id/autofill. It merges
// candidates extracted from the submission's uploads into empty case
// record fields; user-entered values are never overwritten.
func (h *SubmissionHandler) AutoFill(c *gin.Context) {
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

	result, err := h.submissionService.AutoFill(c.Request.Context(), service.AutoFillRequest{
		SubmissionID: id,
		Extraction:   h.extractionService,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "AUTOFILL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Submission,
	})
}
