package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recetario-dev/recetario/internal/models"
	"github.com/recetario-dev/recetario/internal/store"
)

type CreateRecipeRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Image       string   `json:"image"`
	Category    []string `json:"category"`
}

type UpdateRecipeRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Ingredients *[]string `json:"ingredients"`
	Steps       *[]string `json:"steps"`
	Image       *string   `json:"image"`
	Category    *[]string `json:"category"`
}

func (h *Handler) ListRecipes(ctx *gin.Context) {
	recipes, err := h.Store.ListRecipes()

	if err != nil {
		log.Printf("Failed to list recipes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}

	if recipes == nil {
		recipes = []models.Recipe{}
	}

	ctx.JSON(http.StatusOK, recipes)
}

func (h *Handler) ListRecipesSummary(ctx *gin.Context) {
	summaries, err := h.Store.ListRecipesSummary()

	if err != nil {
		log.Printf("Failed to list recipe summaries: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}

	if summaries == nil {
		summaries = []models.RecipeSummary{}
	}

	ctx.Header("Cache-Control", "public, max-age=60")
	ctx.JSON(http.StatusOK, summaries)
}

func (h *Handler) GetRecipe(ctx *gin.Context) {
	recipe, err := h.Store.RecipeByID(ctx.Param("id"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		log.Printf("Failed to fetch recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipe"})
		return
	}

	ctx.JSON(http.StatusOK, recipe)
}

func (h *Handler) CreateRecipe(ctx *gin.Context) {
	if _, ok := requireAdmin(ctx); !ok {
		return
	}

	var body CreateRecipeRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
		return
	}

	if len(body.Category) == 0 {
		body.Category = []string{"saladas"}
	}

	recipe, err := h.Store.CreateRecipe(store.RecipeInput{
		Title:       body.Title,
		Description: body.Description,
		Ingredients: body.Ingredients,
		Steps:       body.Steps,
		Image:       body.Image,
		Categories:  body.Category,
	})

	if err != nil {
		log.Printf("Failed to create recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	ctx.JSON(http.StatusCreated, recipe)
}

func (h *Handler) UpdateRecipe(ctx *gin.Context) {
	if _, ok := requireAdmin(ctx); !ok {
		return
	}

	var body UpdateRecipeRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	recipe, err := h.Store.UpdateRecipe(ctx.Param("id"), store.RecipeUpdate{
		Title:       body.Title,
		Description: body.Description,
		Ingredients: body.Ingredients,
		Steps:       body.Steps,
		Image:       body.Image,
		Categories:  body.Category,
	})

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		log.Printf("Failed to update recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	ctx.JSON(http.StatusOK, recipe)
}

func (h *Handler) DeleteRecipe(ctx *gin.Context) {
	if _, ok := requireAdmin(ctx); !ok {
		return
	}

	deleted, err := h.Store.DeleteRecipe(ctx.Param("id"))

	if err != nil {
		log.Printf("Failed to delete recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
