package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/recetario-dev/recetario/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCommentAuthorization(t *testing.T) {
	r, s := newTestServer(t)

	author := createUser(t, s, "author@example.com")
	other := createUser(t, s, "other@example.com")
	admin := createAdmin(t, s, "admin@example.com")
	recipe := createRecipe(t, s)

	rec := doRequest(t, r, http.MethodPost, "/api/recipes/"+recipe.ID+"/comments",
		tokenFor(t, author), map[string]string{"text": "Great recipe"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var comment struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comment))

	require.NoError(t, s.SetReaction(other.ID, comment.ID, 1))

	// A different non-admin user may not delete it.
	rec = doRequest(t, r, http.MethodDelete, "/api/comments/"+comment.ID, tokenFor(t, other), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	_, err := s.CommentByID(comment.ID)
	require.NoError(t, err, "comment must survive the forbidden delete")

	// An admin may.
	rec = doRequest(t, r, http.MethodDelete, "/api/comments/"+comment.ID, tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err = s.CommentByID(comment.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	likes, dislikes, _, err := s.ReactionSummary(comment.ID, "")
	require.NoError(t, err)
	assert.Zero(t, likes+dislikes, "reactions must not outlive the comment")
}

func TestUpdateCommentAuthorOrAdmin(t *testing.T) {
	r, s := newTestServer(t)

	author := createUser(t, s, "author@example.com")
	other := createUser(t, s, "other@example.com")
	admin := createAdmin(t, s, "admin@example.com")
	recipe := createRecipe(t, s)

	comment, err := s.AddComment(recipe.ID, author.ID, "original")
	require.NoError(t, err)

	rec := doRequest(t, r, http.MethodPut, "/api/comments/"+comment.ID,
		tokenFor(t, other), map[string]string{"text": "hijacked"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, r, http.MethodPut, "/api/comments/"+comment.ID,
		tokenFor(t, author), map[string]string{"text": "edited by author"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, r, http.MethodPut, "/api/comments/"+comment.ID,
		tokenFor(t, admin), map[string]string{"text": "edited by admin"})
	require.Equal(t, http.StatusOK, rec.Code)

	updated, err := s.CommentByID(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited by admin", updated.Text)

	// Blank text is rejected.
	rec = doRequest(t, r, http.MethodPut, "/api/comments/"+comment.ID,
		tokenFor(t, author), map[string]string{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCommentsAnonymousMyVote(t *testing.T) {
	r, s := newTestServer(t)

	author := createUser(t, s, "author@example.com")
	voter := createUser(t, s, "voter@example.com")
	recipe := createRecipe(t, s)

	for i := 0; i < 2; i++ {
		comment, err := s.AddComment(recipe.ID, author.ID, fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
		require.NoError(t, s.SetReaction(voter.ID, comment.ID, 1))
	}

	rec := doRequest(t, r, http.MethodGet, "/api/recipes/"+recipe.ID+"/comments", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var comments []struct {
		Likes  int  `json:"likes"`
		MyVote *int `json:"myVote"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	require.Len(t, comments, 2)

	for _, c := range comments {
		assert.Equal(t, 1, c.Likes)
		assert.Nil(t, c.MyVote, "anonymous viewers always get myVote null")
	}

	// The voter sees their own vote on the same listing.
	rec = doRequest(t, r, http.MethodGet, "/api/recipes/"+recipe.ID+"/comments", tokenFor(t, voter), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	for _, c := range comments {
		require.NotNil(t, c.MyVote)
		assert.Equal(t, 1, *c.MyVote)
	}
}

func TestCreateCommentValidation(t *testing.T) {
	r, s := newTestServer(t)

	user := createUser(t, s, "cook@example.com")
	recipe := createRecipe(t, s)

	rec := doRequest(t, r, http.MethodPost, "/api/recipes/"+recipe.ID+"/comments",
		tokenFor(t, user), map[string]string{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, r, http.MethodPost, "/api/recipes/missing/comments",
		tokenFor(t, user), map[string]string{"text": "hello"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, r, http.MethodPost, "/api/recipes/"+recipe.ID+"/comments",
		"", map[string]string{"text": "hello"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReactToComment(t *testing.T) {
	r, s := newTestServer(t)

	author := createUser(t, s, "author@example.com")
	voter := createUser(t, s, "voter@example.com")
	recipe := createRecipe(t, s)

	comment, err := s.AddComment(recipe.ID, author.ID, "polarizing take")
	require.NoError(t, err)

	type summary struct {
		Likes    int  `json:"likes"`
		Dislikes int  `json:"dislikes"`
		MyVote   *int `json:"myVote"`
	}

	rec := doRequest(t, r, http.MethodPost, "/api/comments/"+comment.ID+"/react",
		tokenFor(t, voter), map[string]int{"value": 1})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Likes)
	assert.Equal(t, 0, got.Dislikes)
	require.NotNil(t, got.MyVote)
	assert.Equal(t, 1, *got.MyVote)

	// Flipping the vote never leaves both counts set.
	rec = doRequest(t, r, http.MethodPost, "/api/comments/"+comment.ID+"/react",
		tokenFor(t, voter), map[string]int{"value": -1})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 0, got.Likes)
	assert.Equal(t, 1, got.Dislikes)

	// Clearing reports no vote.
	rec = doRequest(t, r, http.MethodPost, "/api/comments/"+comment.ID+"/react",
		tokenFor(t, voter), map[string]int{"value": 0})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 0, got.Likes)
	assert.Equal(t, 0, got.Dislikes)
	assert.Nil(t, got.MyVote)

	rec = doRequest(t, r, http.MethodPost, "/api/comments/"+comment.ID+"/react",
		tokenFor(t, voter), map[string]int{"value": 5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, r, http.MethodPost, "/api/comments/missing/react",
		tokenFor(t, voter), map[string]int{"value": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, r, http.MethodPost, "/api/comments/"+comment.ID+"/react",
		"", map[string]int{"value": 1})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
