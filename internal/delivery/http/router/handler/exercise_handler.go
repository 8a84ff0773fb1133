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

// ExerciseHandler holds dependencies for exercise log handlers.
type ExerciseHandler struct {
	uc     usecase.ExerciseUsecase
	logger *slog.Logger
}

// NewExerciseHandler is the constructor for ExerciseHandler, injected by Fx.
func NewExerciseHandler(uc usecase.ExerciseUsecase, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{uc: uc, logger: logger}
}

type logExerciseRequest struct {
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	Type           string `json:"type" validate:"required,oneof=cardio weights"`
	Name           string `json:"name" validate:"required"`
	Duration       int    `json:"duration" validate:"required,gt=0"`
	CaloriesBurned int    `json:"calories_burned" validate:"gte=0"`
}

// List returns the authenticated user's exercises for one day.
func (h *ExerciseHandler) List(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	date, err := parseDateParam(c.QueryParam("date"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "date must be formatted YYYY-MM-DD")
	}

	exercises, err := h.uc.ListByDate(c.Request().Context(), identity.ID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, exercises, "Exercises retrieved successfully")
}

// Log records a new exercise entry for the authenticated user.
func (h *ExerciseHandler) Log(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	var req logExerciseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exercise input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "date must be formatted YYYY-MM-DD")
	}

	exercise, err := h.uc.Log(c.Request().Context(), &usecase.LogExerciseInput{
		UserID:          identity.ID,
		Date:            date,
		Type:            entity.ExerciseType(req.Type),
		Name:            req.Name,
		DurationMinutes: req.Duration,
		CaloriesBurned:  req.CaloriesBurned,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, exercise, "Exercise logged successfully")
}

// Delete removes one of the authenticated user's exercise entries.
func (h *ExerciseHandler) Delete(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "EXERCISE_NOT_FOUND", "Exercise not found")
	}

	if err := h.uc.Delete(c.Request().Context(), identity.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Exercise deleted successfully")
}

// parseDateParam parses a YYYY-MM-DD value, defaulting to today in UTC when
// the value is empty.
func parseDateParam(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()

		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return time.ParseInLocation("2006-01-02", value, time.UTC)
}
