package store

import (
	"testing"
	"time"

	"github.com/recetario-dev/recetario/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavoriteIdempotent(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)
	recipe := seedRecipe(t, s)

	require.NoError(t, s.AddFavorite(user.ID, recipe.ID))
	require.NoError(t, s.AddFavorite(user.ID, recipe.ID))

	var count int64
	require.NoError(t, s.db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRemoveFavorite(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)
	recipe := seedRecipe(t, s)

	removed, err := s.RemoveFavorite(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, removed, "removing a non-existent favorite should report false")

	require.NoError(t, s.AddFavorite(user.ID, recipe.ID))

	removed, err = s.RemoveFavorite(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.RemoveFavorite(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestListFavoriteRecipesOrder(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)
	first := seedRecipe(t, s)
	second := seedRecipe(t, s)

	require.NoError(t, s.AddFavorite(user.ID, first.ID))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, s.AddFavorite(user.ID, second.ID))

	recipes, err := s.ListFavoriteRecipes(user.ID)
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	// Most recently favorited first.
	assert.Equal(t, second.ID, recipes[0].ID)
	assert.Equal(t, first.ID, recipes[1].ID)
}

func TestListFavoriteIDs(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)
	other := seedUser(t, s)
	recipe := seedRecipe(t, s)

	require.NoError(t, s.AddFavorite(user.ID, recipe.ID))

	ids, err := s.ListFavoriteIDs(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{recipe.ID}, ids)

	ids, err = s.ListFavoriteIDs(other.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
