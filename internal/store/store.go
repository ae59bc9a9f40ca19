package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrEmailExists     = errors.New("email already registered")
	ErrInvalidReaction = errors.New("reaction value must be -1, 0 or 1")
)

// Store wraps the single database handle. It is constructed once at
// startup and injected everywhere persistence is needed.
type Store struct {
	db *gorm.DB
}

func New(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}
