package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fitlife/internal/delivery/http/middleware"
	"fitlife/internal/delivery/http/response"
	"fitlife/internal/domain/entity"
	"fitlife/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

type updateProfileRequest struct {
	Name             *string  `json:"name" validate:"omitempty,min=1"`
	Age              *int     `json:"age" validate:"omitempty,gt=0"`
	Height           *float64 `json:"height" validate:"omitempty,gt=0"`
	Weight           *float64 `json:"weight" validate:"omitempty,gt=0"`
	Gender           *string  `json:"gender" validate:"omitempty,oneof=male female other"`
	TargetWeight     *float64 `json:"target_weight" validate:"omitempty,gt=0"`
	DailyCalorieGoal *int     `json:"daily_calorie_goal" validate:"omitempty,gt=0"`
}

// profilePayload is the profile response body. The password hash never
// leaves the domain layer.
type profilePayload struct {
	ID               uuid.UUID             `json:"id"`
	Email            string                `json:"email"`
	Name             string                `json:"name"`
	Age              *int                  `json:"age"`
	Height           *float64              `json:"height"`
	Weight           *float64              `json:"weight"`
	Gender           *string               `json:"gender"`
	TargetWeight     *float64              `json:"target_weight"`
	DailyCalorieGoal int                   `json:"daily_calorie_goal"`
	CreatedAt        time.Time             `json:"created_at"`
	WeightHistory    []*entity.WeightEntry `json:"weight_history"`
}

// Get returns the authenticated user's profile and weight history.
func (h *ProfileHandler) Get(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	output, err := h.uc.Get(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfilePayload(output), "Profile retrieved successfully")
}

// Update applies a partial update to the authenticated user's profile.
func (h *ProfileHandler) Update(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), &usecase.UpdateProfileInput{
		UserID:           identity.ID,
		Name:             req.Name,
		Age:              req.Age,
		Height:           req.Height,
		Weight:           req.Weight,
		Gender:           req.Gender,
		TargetWeight:     req.TargetWeight,
		DailyCalorieGoal: req.DailyCalorieGoal,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfilePayload(output), "Profile updated successfully")
}

func toProfilePayload(output *usecase.ProfileOutput) *profilePayload {
	user := output.User

	return &profilePayload{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		Age:              user.Age,
		Height:           user.Height,
		Weight:           user.Weight,
		Gender:           user.Gender,
		TargetWeight:     user.TargetWeight,
		DailyCalorieGoal: user.DailyCalorieGoal,
		CreatedAt:        user.CreatedAt,
		WeightHistory:    output.WeightHistory,
	}
}
