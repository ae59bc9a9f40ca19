package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/recetario-dev/recetario/internal/models"
	"gorm.io/gorm"
)

type RecipeInput struct {
	Title       string
	Description string
	Ingredients []string
	Steps       []string
	Image       string
	Categories  []string
}

func (s *Store) CreateRecipe(input RecipeInput) (models.Recipe, error) {
	now := time.Now().UTC()

	recipe := models.Recipe{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Ingredients: models.StringList(input.Ingredients),
		Steps:       models.StringList(input.Steps),
		Image:       input.Image,
		Categories:  models.StringList(input.Categories),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.db.Create(&recipe).Error; err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

func (s *Store) RecipeByID(id string) (models.Recipe, error) {
	var recipe models.Recipe

	err := s.db.Where("id = ?", id).First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Recipe{}, ErrNotFound
	}
	if err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

func (s *Store) ListRecipes() ([]models.Recipe, error) {
	var recipes []models.Recipe

	if err := s.db.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

// ListRecipesSummary skips ingredients and steps for faster listings.
func (s *Store) ListRecipesSummary() ([]models.RecipeSummary, error) {
	var summaries []models.RecipeSummary

	err := s.db.Model(&models.Recipe{}).
		Select("id, title, description, image, categories, created_at").
		Order("created_at DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}

	return summaries, nil
}

// RecipeUpdate enumerates the updatable recipe columns. Nil means the field
// was absent from the request and keeps its stored value.
type RecipeUpdate struct {
	Title       *string
	Description *string
	Ingredients *[]string
	Steps       *[]string
	Image       *string
	Categories  *[]string
}

func (s *Store) UpdateRecipe(id string, update RecipeUpdate) (models.Recipe, error) {
	updates := make(map[string]interface{})

	if update.Title != nil {
		updates["title"] = *update.Title
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Ingredients != nil {
		updates["ingredients"] = models.StringList(*update.Ingredients)
	}
	if update.Steps != nil {
		updates["steps"] = models.StringList(*update.Steps)
	}
	if update.Image != nil {
		updates["image"] = *update.Image
	}
	if update.Categories != nil {
		updates["categories"] = models.StringList(*update.Categories)
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()

		res := s.db.Model(&models.Recipe{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return models.Recipe{}, res.Error
		}
		if res.RowsAffected == 0 {
			return models.Recipe{}, ErrNotFound
		}
	}

	return s.RecipeByID(id)
}

// DeleteRecipe removes the recipe and its dependents: comment reactions,
// comments, favorites. Reports whether a recipe row was actually removed.
func (s *Store) DeleteRecipe(id string) (bool, error) {
	err := s.db.Where("comment_id IN (?)",
		s.db.Model(&models.Comment{}).Select("id").Where("recipe_id = ?", id),
	).Delete(&models.CommentReaction{}).Error
	if err != nil {
		return false, err
	}

	if err := s.db.Where("recipe_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return false, err
	}

	if err := s.db.Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
		return false, err
	}

	res := s.db.Where("id = ?", id).Delete(&models.Recipe{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}
