package handlers

import (
	"errors"
	"net/http"

	"docupal-backend/models"
	"docupal-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// ProfileHandler handles the reusable per-session profile. A profile
// carries case record data a returning user can pre-fill new
// submissions from.
type ProfileHandler struct {
	profileRepo *repository.ProfileRepository
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileRepo *repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

// GetProfile handles GET /api/profile/:sessionId
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileRepo.GetBySessionID(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "No profile for that session",
				},
			})
			return
		}
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
		"data":    profile,
	})
}

// SaveProfileRequest represents the request body for saving a profile
type SaveProfileRequest struct {
	SessionID   string            `json:"session_id" binding:"required"`
	ProfileData models.CaseRecord `json:"profile_data"`
	Language    string            `json:"language"`
}

// SaveProfile handles POST /api/profile. It creates the profile on
// first save and updates it afterwards.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req SaveProfileRequest
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

	if req.Language == "" {
		req.Language = "en"
	}

	profile := &models.UserProfile{
		SessionID:   req.SessionID,
		ProfileData: req.ProfileData,
		Language:    req.Language,
	}

	existing, err := h.profileRepo.GetBySessionID(c.Request.Context(), req.SessionID)
	switch {
	case err == nil:
		profile.ID = existing.ID
		err = h.profileRepo.Update(c.Request.Context(), profile)
	case errors.Is(err, pgx.ErrNoRows):
		err = h.profileRepo.Create(c.Request.Context(), profile)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SAVE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
	})
}
