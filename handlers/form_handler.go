package handlers

import (
	"net/http"

	"docupal-backend/forms"

	"github.com/gin-gonic/gin"
)

// FormHandler serves the static petition form catalog
type FormHandler struct{}

// NewFormHandler creates a new form handler
func NewFormHandler() *FormHandler {
	return &FormHandler{}
}

// ListForms handles GET /api/petition-forms
func (h *FormHandler) ListForms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    forms.All(),
	})
}

// GetForm handles GET /api/petition-forms/:code
func (h *FormHandler) GetForm(c *gin.Context) {
	form := forms.Lookup(c.Param("code"))
	if form == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORM_NOT_FOUND",
				"message": "No petition form with that code",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    form,
	})
}
