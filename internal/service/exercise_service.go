package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"exercise-tracker/internal/apperr"
	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/observability"
	"exercise-tracker/internal/repository"
)

// ExerciseRecord is a freshly stored exercise together with its owner,
// denormalized for the response body.
type ExerciseRecord struct {
	User     *domain.User
	Exercise *domain.Exercise
}

// Log is a user's filtered, newest-first exercise history.
type Log struct {
	User    *domain.User
	Entries []domain.Exercise
}

// ExerciseService records entries and serves log queries. All inputs arrive
// as raw strings; coercion and validation happen here, once.
type ExerciseService interface {
	AddExercise(ctx context.Context, userID, description, duration, date string) (*ExerciseRecord, error)
	GetLog(ctx context.Context, userID, from, to, limit string) (*Log, error)
}

type exerciseService struct {
	users     repository.UserRepository
	exercises repository.ExerciseRepository
	now       func() time.Time
}

func NewExerciseService(users repository.UserRepository, exercises repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		users:     users,
		exercises: exercises,
		now:       time.Now,
	}
}

func (s *exerciseService) AddExercise(ctx context.Context, userID, description, duration, date string) (*ExerciseRecord, error) {
	description = strings.TrimSpace(description)
	if description == "" || strings.TrimSpace(duration) == "" {
		return nil, apperr.Validation("Description and duration are required")
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil || minutes <= 0 {
		return nil, apperr.Validation("Duration must be a positive number")
	}

	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	when := s.now()
	if strings.TrimSpace(date) != "" {
		parsed, err := parseDate(date)
		if err != nil {
			return nil, apperr.Validation("Invalid date format")
		}
		when = parsed
	}

	exercise := &domain.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    minutes,
		Date:        when,
	}
	if err := s.exercises.Insert(ctx, exercise); err != nil {
		return nil, apperr.Store("record exercise", err)
	}

	observability.RecordExerciseLogged(exercise.Date)
	return &ExerciseRecord{User: user, Exercise: exercise}, nil
}

func (s *exerciseService) GetLog(ctx context.Context, userID, from, to, limit string) (*Log, error) {
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var filter repository.LogFilter
	if strings.TrimSpace(from) != "" {
		parsed, err := parseDate(from)
		if err != nil {
			return nil, apperr.Validation("Invalid from date format")
		}
		filter.From = &parsed
	}
	if strings.TrimSpace(to) != "" {
		parsed, err := parseDate(to)
		if err != nil {
			return nil, apperr.Validation("Invalid to date format")
		}
		filter.To = &parsed
	}
	// Malformed or non-positive limits are ignored, not rejected.
	filter.Limit = parseLimit(limit)

	entries, err := s.exercises.FindByUser(ctx, user.ID, filter)
	if err != nil {
		return nil, apperr.Store("query exercise log", err)
	}

	return &Log{User: user, Entries: entries}, nil
}

// resolveUser maps a path identifier to a stored user, keeping "the id is
// not an id" distinct from "no such user".
func (s *exerciseService) resolveUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, repository.ErrInvalidID):
		return nil, apperr.Validation("Invalid user ID")
	case errors.Is(err, repository.ErrNotFound):
		return nil, apperr.NotFound("User not found")
	default:
		return nil, apperr.Store("look up user", err)
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseLimit(value string) int64 {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || parsed <= 0 {
		return 0
	}
	return parsed
}
