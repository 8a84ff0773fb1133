package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fitlife/internal/delivery/context"
	"fitlife/internal/domain/entity"
	domainerrors "fitlife/internal/domain/errors"
	"fitlife/internal/domain/repository"
	"fitlife/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// foodLogService implements the FoodLogUsecase interface.
type foodLogService struct {
	foodLogRepo repository.FoodLogRepository
	logger      *slog.Logger
}

// FoodLogServiceParams holds dependencies for foodLogService, injected by Fx.
type FoodLogServiceParams struct {
	fx.In

	FoodLogRepo repository.FoodLogRepository
	Logger      *slog.Logger
}

// NewFoodLogService is the constructor for foodLogService.
func NewFoodLogService(params FoodLogServiceParams) usecase.FoodLogUsecase {
	return &foodLogService{
		foodLogRepo: params.FoodLogRepo,
		logger:      params.Logger,
	}
}

func (srv *foodLogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListByDate returns the user's food logs for one day.
func (srv *foodLogService) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.FoodLog, error) {
	logs, err := srv.foodLogRepo.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		srv.log(ctx).Error("Failed to list food logs", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list food logs")
	}

	return logs, nil
}

// Log records a new food log entry.
func (srv *foodLogService) Log(ctx context.Context, input *usecase.LogFoodInput) (*entity.FoodLog, error) {
	foodLog := &entity.FoodLog{
		UserID:   input.UserID,
		Date:     input.Date,
		FoodName: input.FoodName,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	}
	if err := srv.foodLogRepo.Create(ctx, foodLog); err != nil {
		srv.log(ctx).Error("Failed to log food", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return foodLog, nil
}

// Delete removes one of the user's food log entries.
func (srv *foodLogService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.foodLogRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrFoodLogNotFound) {
			return domainerrors.ErrFoodLogNotFound
		}
		srv.log(ctx).Error("Failed to delete food log", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete food log")
	}

	return nil
}
