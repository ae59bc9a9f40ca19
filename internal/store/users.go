package store

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/recetario-dev/recetario/internal/models"
	"gorm.io/gorm"
)

func (s *Store) CreateUser(email, passwordHash, name string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return models.User{}, ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         models.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (s *Store) UserByEmail(email string) (models.User, error) {
	var user models.User

	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (s *Store) UserByID(id string) (models.User, error) {
	var user models.User

	err := s.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ProfileUpdate enumerates the updatable profile columns. Nil means the
// field was not present in the request and keeps its stored value.
type ProfileUpdate struct {
	Name         *string
	PasswordHash *string
}

func (s *Store) UpdateProfile(id string, update ProfileUpdate) (models.User, error) {
	updates := make(map[string]interface{})

	if update.Name != nil {
		updates["name"] = strings.TrimSpace(*update.Name)
	}

	if update.PasswordHash != nil {
		updates["password_hash"] = *update.PasswordHash
	}

	if len(updates) > 0 {
		res := s.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return models.User{}, res.Error
		}
		if res.RowsAffected == 0 {
			return models.User{}, ErrNotFound
		}
	}

	return s.UserByID(id)
}

// PromoteUser grants the admin role. Runs on the owned handle like every
// other statement.
func (s *Store) PromoteUser(id string) (models.User, error) {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Update("role", models.RoleAdmin)
	if res.Error != nil {
		return models.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.User{}, ErrNotFound
	}

	return s.UserByID(id)
}
