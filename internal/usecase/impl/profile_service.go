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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger

	now func() time.Time
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the user's profile and full weight history.
func (srv *profileService) Get(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}
		srv.log(ctx).Error("Failed to load profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load profile")
	}

	history, err := srv.userRepo.ListWeightHistory(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load weight history", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load weight history")
	}

	return &usecase.ProfileOutput{User: user, WeightHistory: history}, nil
}

// Update applies a partial profile update inside one transaction. Only the
// provided fields change; a new weight is also upserted into the weight
// history under today's date.
func (srv *profileService) Update(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.ProfileOutput, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to load user for profile update")
		}

		weightChanged := applyProfileUpdate(user, input)

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}

		if weightChanged {
			entry := &entity.WeightEntry{
				UserID: user.ID,
				Date:   dateOnly(srv.now()),
				Weight: *user.Weight,
			}
			if err := userRepo.UpsertWeightEntry(ctx, entry); err != nil {
				return errors.Wrap(err, "failed to record weight change")
			}
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	history, err := srv.userRepo.ListWeightHistory(ctx, input.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to load weight history", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load weight history")
	}

	return &usecase.ProfileOutput{User: updated, WeightHistory: history}, nil
}

// applyProfileUpdate copies the provided fields onto the user and reports
// whether the weight actually changed value.
func applyProfileUpdate(user *entity.User, input *usecase.UpdateProfileInput) bool {
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Age != nil {
		user.Age = input.Age
	}
	if input.Height != nil {
		user.Height = input.Height
	}
	if input.Gender != nil {
		user.Gender = input.Gender
	}
	if input.TargetWeight != nil {
		user.TargetWeight = input.TargetWeight
	}
	if input.DailyCalorieGoal != nil {
		user.DailyCalorieGoal = *input.DailyCalorieGoal
	}

	weightChanged := false
	if input.Weight != nil {
		if user.Weight == nil || *user.Weight != *input.Weight {
			weightChanged = true
		}
		user.Weight = input.Weight
	}

	return weightChanged
}
