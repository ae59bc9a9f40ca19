package store

import (
	"time"

	"github.com/recetario-dev/recetario/internal/models"
	"gorm.io/gorm/clause"
)

// AddFavorite inserts the (user, recipe) edge. A duplicate insert is a
// no-op: the conflict clause targets the composite key, so only a true
// uniqueness conflict is absorbed and any other storage fault surfaces.
func (s *Store) AddFavorite(userID, recipeID string) error {
	favorite := models.Favorite{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now().UTC(),
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoNothing: true,
	}).Create(&favorite).Error
}

// RemoveFavorite deletes the edge if present and reports whether a row was
// actually removed. Removing a non-existent edge is not an error.
func (s *Store) RemoveFavorite(userID, recipeID string) (bool, error) {
	res := s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// ListFavoriteRecipes returns the user's favorited recipes, most recently
// favorited first.
func (s *Store) ListFavoriteRecipes(userID string) ([]models.Recipe, error) {
	var recipes []models.Recipe

	err := s.db.Model(&models.Recipe{}).
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	return recipes, nil
}

// ListFavoriteIDs returns just the recipe ids, for clients that only need
// membership checks after a single fetch.
func (s *Store) ListFavoriteIDs(userID string) ([]string, error) {
	var ids []string

	err := s.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
