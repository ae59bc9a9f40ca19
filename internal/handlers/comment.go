package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/recetario-dev/recetario/internal/auth"
	"github.com/recetario-dev/recetario/internal/models"
	"github.com/recetario-dev/recetario/internal/store"
	"github.com/recetario-dev/recetario/internal/utils"
)

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type ReactionRequest struct {
	Value *int `json:"value" binding:"required"`
}

// ListComments is public. When a valid token is presented the listing
// annotates each comment with the viewer's own vote; anonymous viewers
// always see myVote null.
func (h *Handler) ListComments(ctx *gin.Context) {
	recipeID := ctx.Param("id")
	viewerID := utils.ViewerID(ctx)

	comments, err := h.Store.ListComments(recipeID, viewerID)

	if err != nil {
		log.Printf("Failed to list comments: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	if comments == nil {
		comments = []models.CommentView{}
	}

	ctx.JSON(http.StatusOK, comments)
}

func (h *Handler) CreateComment(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipeID := ctx.Param("id")

	if _, err := h.Store.RecipeByID(recipeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		log.Printf("Failed to fetch recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var body CommentRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	text := strings.TrimSpace(body.Text)

	if text == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	comment, err := h.Store.AddComment(recipeID, userID, text)

	if err != nil {
		log.Printf("Failed to create comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// UpdateComment edits the comment text. Only the author or an admin may do
// it.
func (h *Handler) UpdateComment(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	comment, err := h.Store.CommentByID(ctx.Param("id"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		log.Printf("Failed to fetch comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !auth.CanManageComment(currentUser, comment) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the author or an admin can edit this comment"})
		return
	}

	var body CommentRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	text := strings.TrimSpace(body.Text)

	if text == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	updated, err := h.Store.UpdateCommentText(comment.ID, text)

	if err != nil {
		log.Printf("Failed to update comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteComment removes the comment and its reactions. Only the author or
// an admin may do it.
func (h *Handler) DeleteComment(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	comment, err := h.Store.CommentByID(ctx.Param("id"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		log.Printf("Failed to fetch comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !auth.CanManageComment(currentUser, comment) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the author or an admin can delete this comment"})
		return
	}

	if _, err := h.Store.DeleteComment(comment.ID); err != nil {
		log.Printf("Failed to delete comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ReactToComment sets the caller's vote on a comment and returns the fresh
// reaction summary.
func (h *Handler) ReactToComment(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	comment, err := h.Store.CommentByID(ctx.Param("id"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		log.Printf("Failed to fetch comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var body ReactionRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Reaction value is required"})
		return
	}

	if err := h.Store.SetReaction(userID, comment.ID, *body.Value); err != nil {
		if errors.Is(err, store.ErrInvalidReaction) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Reaction value must be -1, 0 or 1"})
			return
		}
		log.Printf("Failed to set reaction: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set reaction"})
		return
	}

	likes, dislikes, myVote, err := h.Store.ReactionSummary(comment.ID, userID)

	if err != nil {
		log.Printf("Failed to compute reaction summary: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reactions"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"likes":    likes,
		"dislikes": dislikes,
		"myVote":   myVote,
	})
}
