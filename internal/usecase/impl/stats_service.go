package impl

import (
	"context"
	"log/slog"

	deliverycontext "fitlife/internal/delivery/context"
	"fitlife/internal/domain/entity"
	"fitlife/internal/domain/repository"
	"fitlife/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// statsWindowDays is how many days of history the statistics endpoint returns.
const statsWindowDays = 7

// statsService implements the StatsUsecase interface.
type statsService struct {
	statRepo repository.DailyStatRepository
	logger   *slog.Logger
}

// StatsServiceParams holds dependencies for statsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	StatRepo repository.DailyStatRepository
	Logger   *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		statRepo: params.StatRepo,
		logger:   params.Logger,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Recent returns the user's statistics for the last seven days, newest first.
// Days the user never saved have no row and are simply absent.
func (srv *statsService) Recent(ctx context.Context, userID uuid.UUID) ([]*entity.DailyStat, error) {
	stats, err := srv.statRepo.ListRecent(ctx, userID, statsWindowDays)
	if err != nil {
		srv.log(ctx).Error("Failed to list daily statistics", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list daily statistics")
	}

	return stats, nil
}

// Save upserts the statistics row for (user, date). Saving the same day
// twice overwrites every counter with the later values.
func (srv *statsService) Save(ctx context.Context, input *usecase.SaveStatsInput) (*entity.DailyStat, error) {
	stat := &entity.DailyStat{
		UserID:          input.UserID,
		Date:            input.Date,
		CaloriesIn:      input.CaloriesIn,
		CaloriesOut:     input.CaloriesOut,
		WaterIntake:     input.WaterIntake,
		ExerciseMinutes: input.ExerciseMinutes,
	}
	if err := srv.statRepo.Upsert(ctx, stat); err != nil {
		srv.log(ctx).Error("Failed to save daily statistics", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return stat, nil
}
