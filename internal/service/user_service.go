package service

import (
	"context"
	"errors"
	"strings"

	"exercise-tracker/internal/apperr"
	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/observability"
	"exercise-tracker/internal/repository"
)

// UserService describes user lifecycle operations.
type UserService interface {
	CreateOrGet(ctx context.Context, username string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// CreateOrGet registers username, returning the existing record when the
// name is already taken. A concurrent insert that trips the unique index is
// resolved by a fallback read, so duplicate creates never surface as errors.
func (s *userService) CreateOrGet(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperr.Validation("Username is required")
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Store("look up user", err)
	}

	user, err := s.users.Insert(ctx, username)
	if err == nil {
		observability.RecordUserCreated()
		return user, nil
	}
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		return nil, apperr.Store("create user", err)
	}

	// Lost the race against another registration; the winner's record is
	// the answer.
	user, err = s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Store("fetch user after duplicate insert", err)
	}
	return user, nil
}

func (s *userService) ListAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, apperr.Store("list users", err)
	}
	return users, nil
}
