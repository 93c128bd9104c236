package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"exercise-tracker/internal/domain"
)

// LogFilter narrows an exercise history query. Both bounds are inclusive and
// independently optional; Limit <= 0 means unbounded.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int64
}

// ExerciseRepository defines persistence operations for Exercise records.
type ExerciseRepository interface {
	Insert(ctx context.Context, exercise *domain.Exercise) error
	FindByUser(ctx context.Context, userID primitive.ObjectID, filter LogFilter) ([]domain.Exercise, error)
}
