package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
)

type ExerciseRepository struct {
	exercises *mongo.Collection
}

func NewExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &ExerciseRepository{exercises: db.Collection(exercisesCollection)}
}

func (r *ExerciseRepository) Insert(ctx context.Context, exercise *domain.Exercise) error {
	res, err := r.exercises.InsertOne(ctx, exercise)
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		exercise.ID = id
	}
	return nil
}

// FindByUser returns a user's entries newest first, optionally bounded by an
// inclusive date range and capped by filter.Limit.
func (r *ExerciseRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, filter repository.LogFilter) ([]domain.Exercise, error) {
	query := bson.M{"userId": userID}

	if filter.From != nil || filter.To != nil {
		dateRange := bson.M{}
		if filter.From != nil {
			dateRange["$gte"] = *filter.From
		}
		if filter.To != nil {
			dateRange["$lte"] = *filter.To
		}
		query["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.exercises.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]domain.Exercise, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}
	return entries, nil
}
