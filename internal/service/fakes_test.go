package service

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
)

type fakeUserRepo struct {
	users       []domain.User
	dupOnInsert bool
	insertCalls int
}

func (r *fakeUserRepo) Init(ctx context.Context) error { return nil }

func (r *fakeUserRepo) Insert(ctx context.Context, username string) (*domain.User, error) {
	r.insertCalls++
	if r.dupOnInsert {
		return nil, repository.ErrDuplicateUsername
	}
	for _, u := range r.users {
		if u.Username == username {
			return nil, repository.ErrDuplicateUsername
		}
	}
	user := domain.User{ID: primitive.NewObjectID(), Username: username}
	r.users = append(r.users, user)
	return &user, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	for _, u := range r.users {
		if u.ID == objectID {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

type fakeExerciseRepo struct {
	entries []domain.Exercise
}

func (r *fakeExerciseRepo) Insert(ctx context.Context, exercise *domain.Exercise) error {
	exercise.ID = primitive.NewObjectID()
	r.entries = append(r.entries, *exercise)
	return nil
}

func (r *fakeExerciseRepo) FindByUser(ctx context.Context, userID primitive.ObjectID, filter repository.LogFilter) ([]domain.Exercise, error) {
	matched := make([]domain.Exercise, 0)
	for _, e := range r.entries {
		if e.UserID != userID {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		matched = append(matched, e)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	if filter.Limit > 0 && int64(len(matched)) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}
