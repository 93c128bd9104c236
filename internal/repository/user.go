package repository

import (
	"context"
	"errors"

	"exercise-tracker/internal/domain"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID indicates an identifier that cannot be parsed at all.
	ErrInvalidID = errors.New("invalid id")
	// ErrDuplicateUsername indicates an insert lost the race against the
	// unique username index.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines persistence operations for User records.
type UserRepository interface {
	Init(ctx context.Context) error
	Insert(ctx context.Context, username string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}
