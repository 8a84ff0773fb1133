package repository

import (
	"context"
	"errors"
	"time"

	"fitlife/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrExerciseNotFound is returned when an exercise entry does not exist or
// belongs to another user.
var ErrExerciseNotFound = errors.New("exercise not found")

// ExerciseRepository defines the standard operations for exercise log persistence.
type ExerciseRepository interface {
	// ListByUserAndDate retrieves all exercises a user logged on a given date,
	// ordered by creation time.
	ListByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Exercise, error)

	// Create persists a new exercise entry to the storage.
	Create(ctx context.Context, exercise *entity.Exercise) error

	// Delete removes an exercise entry owned by the given user.
	// Returns ErrExerciseNotFound when no matching row exists.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
