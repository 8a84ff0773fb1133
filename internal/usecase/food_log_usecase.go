package usecase

import (
	"context"
	"time"

	"fitlife/internal/domain/entity"

	"github.com/google/uuid"
)

// LogFoodInput defines the data required to log a meal.
type LogFoodInput struct {
	UserID   uuid.UUID
	Date     time.Time
	FoodName string
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
}

// FoodLogUsecase defines the interface for food log business operations.
type FoodLogUsecase interface {
	// ListByDate returns the user's food logs for one day.
	ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.FoodLog, error)

	// Log records a new food log entry.
	Log(ctx context.Context, input *LogFoodInput) (*entity.FoodLog, error)

	// Delete removes one of the user's food log entries.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
