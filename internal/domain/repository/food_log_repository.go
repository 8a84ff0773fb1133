package repository

import (
	"context"
	"errors"
	"time"

	"fitlife/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFoodLogNotFound is returned when a food log entry does not exist or
// belongs to another user.
var ErrFoodLogNotFound = errors.New("food log not found")

// FoodLogRepository defines the standard operations for food log persistence.
type FoodLogRepository interface {
	// ListByUserAndDate retrieves all meals a user logged on a given date,
	// ordered by creation time.
	ListByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.FoodLog, error)

	// Create persists a new food log entry to the storage.
	Create(ctx context.Context, log *entity.FoodLog) error

	// Delete removes a food log entry owned by the given user.
	// Returns ErrFoodLogNotFound when no matching row exists.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
