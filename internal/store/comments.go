package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/recetario-dev/recetario/internal/models"
	"gorm.io/gorm"
)

func (s *Store) AddComment(recipeID, userID, text string) (models.CommentView, error) {
	comment := models.Comment{
		ID:        uuid.NewString(),
		RecipeID:  recipeID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return models.CommentView{}, err
	}

	return s.CommentDetail(comment.ID)
}

// ListComments returns the recipe's comments oldest first, each annotated
// with author fields, like/dislike counts and the viewer's own vote. The
// counts and myVote are derived from comment_reactions on every call, never
// denormalized onto the comment row. viewerID may be empty for anonymous
// viewers; their myVote is always null.
func (s *Store) ListComments(recipeID, viewerID string) ([]models.CommentView, error) {
	var views []models.CommentView

	err := s.db.Raw(`
		SELECT c.id, c.recipe_id, c.user_id, c.text, c.created_at,
		       u.email AS user_email, u.name AS user_name,
		       (SELECT COUNT(*) FROM comment_reactions r WHERE r.comment_id = c.id AND r.value = 1) AS likes,
		       (SELECT COUNT(*) FROM comment_reactions r WHERE r.comment_id = c.id AND r.value = -1) AS dislikes,
		       (SELECT r.value FROM comment_reactions r WHERE r.comment_id = c.id AND r.user_id = ?) AS my_vote
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.recipe_id = ?
		ORDER BY c.created_at ASC
	`, viewerID, recipeID).Scan(&views).Error
	if err != nil {
		return nil, err
	}

	return views, nil
}

// CommentByID returns the bare comment row, used for ownership checks.
func (s *Store) CommentByID(id string) (models.Comment, error) {
	var comment models.Comment

	err := s.db.Where("id = ?", id).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Comment{}, ErrNotFound
	}
	if err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

// CommentDetail returns the comment joined with its author's display
// fields.
func (s *Store) CommentDetail(id string) (models.CommentView, error) {
	var view models.CommentView

	res := s.db.Raw(`
		SELECT c.id, c.recipe_id, c.user_id, c.text, c.created_at,
		       u.email AS user_email, u.name AS user_name
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.id = ?
	`, id).Scan(&view)
	if res.Error != nil {
		return models.CommentView{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.CommentView{}, ErrNotFound
	}

	return view, nil
}

func (s *Store) UpdateCommentText(id, text string) (models.CommentView, error) {
	res := s.db.Model(&models.Comment{}).Where("id = ?", id).Update("text", text)
	if res.Error != nil {
		return models.CommentView{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.CommentView{}, ErrNotFound
	}

	return s.CommentDetail(id)
}

// DeleteComment removes the comment and its reactions. A reaction never
// outlives its comment.
func (s *Store) DeleteComment(id string) (bool, error) {
	if err := s.db.Where("comment_id = ?", id).Delete(&models.CommentReaction{}).Error; err != nil {
		return false, err
	}

	res := s.db.Where("id = ?", id).Delete(&models.Comment{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}
