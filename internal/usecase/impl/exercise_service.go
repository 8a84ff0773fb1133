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

// exerciseService implements the ExerciseUsecase interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	logger       *slog.Logger
}

// ExerciseServiceParams holds dependencies for exerciseService, injected by Fx.
type ExerciseServiceParams struct {
	fx.In

	ExerciseRepo repository.ExerciseRepository
	Logger       *slog.Logger
}

// NewExerciseService is the constructor for exerciseService.
func NewExerciseService(params ExerciseServiceParams) usecase.ExerciseUsecase {
	return &exerciseService{
		exerciseRepo: params.ExerciseRepo,
		logger:       params.Logger,
	}
}

func (srv *exerciseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListByDate returns the user's exercises for one day.
func (srv *exerciseService) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Exercise, error) {
	exercises, err := srv.exerciseRepo.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		srv.log(ctx).Error("Failed to list exercises", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list exercises")
	}

	return exercises, nil
}

// Log records a new exercise entry after validating the exercise type.
func (srv *exerciseService) Log(ctx context.Context, input *usecase.LogExerciseInput) (*entity.Exercise, error) {
	if !input.Type.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown exercise type")
	}

	exercise := &entity.Exercise{
		UserID:          input.UserID,
		Date:            input.Date,
		Type:            input.Type,
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  input.CaloriesBurned,
	}
	if err := srv.exerciseRepo.Create(ctx, exercise); err != nil {
		srv.log(ctx).Error("Failed to log exercise", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return exercise, nil
}

// Delete removes one of the user's exercise entries. Deleting a row that
// does not exist, or that belongs to someone else, reports not found.
func (srv *exerciseService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.exerciseRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrExerciseNotFound) {
			return domainerrors.ErrExerciseNotFound
		}
		srv.log(ctx).Error("Failed to delete exercise", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete exercise")
	}

	return nil
}
