package models

import "time"

// Favorite is the user-recipe edge. At most one row per (user, recipe).
type Favorite struct {
	UserID    string    `gorm:"primaryKey" json:"userId"`
	RecipeID  string    `gorm:"primaryKey;index" json:"recipeId"`
	CreatedAt time.Time `json:"createdAt"`
}
