package usecase

import (
	"context"

	"fitlife/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines a partial profile update. Nil fields are left
// untouched; a provided weight also lands in the weight history.
type UpdateProfileInput struct {
	UserID           uuid.UUID
	Name             *string
	Age              *int
	Height           *float64
	Weight           *float64
	Gender           *string
	TargetWeight     *float64
	DailyCalorieGoal *int
}

// ProfileOutput returns the user's profile together with their weight history.
type ProfileOutput struct {
	User          *entity.User
	WeightHistory []*entity.WeightEntry
}

// ProfileUsecase defines the interface for profile business operations.
type ProfileUsecase interface {
	// Get returns the user's profile and weight history.
	Get(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)

	// Update applies a partial profile update. A weight change is also
	// recorded in the weight history for that day.
	Update(ctx context.Context, input *UpdateProfileInput) (*ProfileOutput, error)
}
