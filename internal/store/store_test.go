package store

import (
	"fmt"
	"testing"

	"github.com/recetario-dev/recetario/db"
	"github.com/recetario-dev/recetario/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// A single connection keeps every statement on the same in-memory
	// database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	return New(gdb)
}

var userSeq int

func seedUser(t *testing.T, s *Store) models.User {
	t.Helper()

	userSeq++
	user, err := s.CreateUser(fmt.Sprintf("user%d@example.com", userSeq), "hash", fmt.Sprintf("User %d", userSeq))
	require.NoError(t, err)

	return user
}

func seedRecipe(t *testing.T, s *Store) models.Recipe {
	t.Helper()

	recipe, err := s.CreateRecipe(RecipeInput{
		Title:       "Tortilla de patatas",
		Description: "Classic Spanish omelette",
		Ingredients: []string{"eggs", "potatoes", "olive oil"},
		Steps:       []string{"peel", "fry", "flip"},
		Categories:  []string{"saladas"},
	})
	require.NoError(t, err)

	return recipe
}

func seedComment(t *testing.T, s *Store, recipeID, userID string) models.CommentView {
	t.Helper()

	comment, err := s.AddComment(recipeID, userID, "Great recipe")
	require.NoError(t, err)

	return comment
}
