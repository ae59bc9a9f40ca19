package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recetario-dev/recetario/internal/models"
	"github.com/recetario-dev/recetario/internal/store"
	"github.com/recetario-dev/recetario/internal/utils"
)

// LikeRecipe creates the favorite edge. Liking an already-liked recipe is a
// no-op and still succeeds.
func (h *Handler) LikeRecipe(ctx *gin.Context) {
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

	if err := h.Store.AddFavorite(userID, recipeID); err != nil {
		log.Printf("Failed to add favorite: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"ok": true})
}

func (h *Handler) UnlikeRecipe(ctx *gin.Context) {
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

	if _, err := h.Store.RemoveFavorite(userID, recipeID); err != nil {
		log.Printf("Failed to remove favorite: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *Handler) ListFavorites(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipes, err := h.Store.ListFavoriteRecipes(userID)

	if err != nil {
		log.Printf("Failed to list favorites: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve favorites"})
		return
	}

	if recipes == nil {
		recipes = []models.Recipe{}
	}

	ctx.JSON(http.StatusOK, recipes)
}

func (h *Handler) ListFavoriteIDs(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ids, err := h.Store.ListFavoriteIDs(userID)

	if err != nil {
		log.Printf("Failed to list favorite ids: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve favorites"})
		return
	}

	if ids == nil {
		ids = []string{}
	}

	ctx.JSON(http.StatusOK, ids)
}
