package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/recetario-dev/recetario/internal/models"
)

func (s *Store) AddSuggestion(userID, text string) (models.Suggestion, error) {
	suggestion := models.Suggestion{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.db.Create(&suggestion).Error; err != nil {
		return models.Suggestion{}, err
	}

	return suggestion, nil
}

// ListSuggestions returns all pending suggestions with the submitting
// user's display fields, newest first. Admin-only at the route level.
func (s *Store) ListSuggestions() ([]models.SuggestionView, error) {
	var views []models.SuggestionView

	err := s.db.Raw(`
		SELECT s.id, s.user_id, u.email AS user_email, u.name AS user_name, s.text, s.created_at
		FROM suggestions s
		LEFT JOIN users u ON u.id = s.user_id
		ORDER BY s.created_at DESC
	`).Scan(&views).Error
	if err != nil {
		return nil, err
	}

	return views, nil
}

func (s *Store) DeleteSuggestion(id string) (bool, error) {
	res := s.db.Where("id = ?", id).Delete(&models.Suggestion{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}
