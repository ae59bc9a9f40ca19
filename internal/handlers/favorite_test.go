package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteFlow(t *testing.T) {
	r, s := newTestServer(t)

	user := createUser(t, s, "cook@example.com")
	recipe := createRecipe(t, s)
	token := tokenFor(t, user)

	// Liking twice succeeds both times and stores a single edge.
	rec := doRequest(t, r, http.MethodPost, "/api/recipes/"+recipe.ID+"/like", token, nil)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, r, http.MethodPost, "/api/recipes/"+recipe.ID+"/like", token, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/api/favorites", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var favorites []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, recipe.ID, favorites[0].ID)

	rec = doRequest(t, r, http.MethodGet, "/api/favorites/ids", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var ids []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ids))
	assert.Equal(t, []string{recipe.ID}, ids)

	// Unliking, even repeatedly, returns 204.
	rec = doRequest(t, r, http.MethodDelete, "/api/recipes/"+recipe.ID+"/like", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, r, http.MethodDelete, "/api/recipes/"+recipe.ID+"/like", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/api/favorites", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &favorites))
	assert.Empty(t, favorites)
}

func TestFavoriteRequiresExistingRecipe(t *testing.T) {
	r, s := newTestServer(t)

	user := createUser(t, s, "cook@example.com")
	token := tokenFor(t, user)

	rec := doRequest(t, r, http.MethodPost, "/api/recipes/missing/like", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, r, http.MethodDelete, "/api/recipes/missing/like", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, r, http.MethodPost, "/api/recipes/missing/like", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
