package usecase

import (
	"context"
	"time"

	"fitlife/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveStatsInput defines the data required to save one day's statistics.
type SaveStatsInput struct {
	UserID          uuid.UUID
	Date            time.Time
	CaloriesIn      int
	CaloriesOut     int
	WaterIntake     int
	ExerciseMinutes int
}

// StatsUsecase defines the interface for daily statistics business operations.
type StatsUsecase interface {
	// Recent returns the user's statistics for the last seven days, newest first.
	Recent(ctx context.Context, userID uuid.UUID) ([]*entity.DailyStat, error)

	// Save upserts the statistics row for (user, date).
	Save(ctx context.Context, input *SaveStatsInput) (*entity.DailyStat, error)
}
