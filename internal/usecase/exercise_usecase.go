package usecase

import (
	"context"
	"time"

	"fitlife/internal/domain/entity"

	"github.com/google/uuid"
)

// LogExerciseInput defines the data required to log an exercise.
type LogExerciseInput struct {
	UserID          uuid.UUID
	Date            time.Time
	Type            entity.ExerciseType
	Name            string
	DurationMinutes int
	CaloriesBurned  int
}

// ExerciseUsecase defines the interface for exercise log business operations.
type ExerciseUsecase interface {
	// ListByDate returns the user's exercises for one day.
	ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Exercise, error)

	// Log records a new exercise entry.
	Log(ctx context.Context, input *LogExerciseInput) (*entity.Exercise, error)

	// Delete removes one of the user's exercise entries.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
