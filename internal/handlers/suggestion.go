package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/recetario-dev/recetario/internal/models"
	"github.com/recetario-dev/recetario/internal/utils"
)

type SuggestionRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *Handler) CreateSuggestion(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body SuggestionRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Suggestion text is required"})
		return
	}

	text := strings.TrimSpace(body.Text)

	if text == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Suggestion text is required"})
		return
	}

	suggestion, err := h.Store.AddSuggestion(userID, text)

	if err != nil {
		log.Printf("Failed to create suggestion: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create suggestion"})
		return
	}

	ctx.JSON(http.StatusCreated, suggestion)
}

// ListSuggestions is the admin moderation view.
func (h *Handler) ListSuggestions(ctx *gin.Context) {
	if _, ok := requireAdmin(ctx); !ok {
		return
	}

	suggestions, err := h.Store.ListSuggestions()

	if err != nil {
		log.Printf("Failed to list suggestions: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve suggestions"})
		return
	}

	if suggestions == nil {
		suggestions = []models.SuggestionView{}
	}

	ctx.JSON(http.StatusOK, suggestions)
}

func (h *Handler) DeleteSuggestion(ctx *gin.Context) {
	if _, ok := requireAdmin(ctx); !ok {
		return
	}

	deleted, err := h.Store.DeleteSuggestion(ctx.Param("id"))

	if err != nil {
		log.Printf("Failed to delete suggestion: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete suggestion"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Suggestion not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
