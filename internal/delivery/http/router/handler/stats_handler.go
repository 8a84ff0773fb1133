package handler

import (
	"log/slog"
	"net/http"

	"fitlife/internal/delivery/http/middleware"
	"fitlife/internal/delivery/http/response"
	"fitlife/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler holds dependencies for daily statistics handlers.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{uc: uc, logger: logger}
}

type saveStatsRequest struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	CaloriesIn      int    `json:"calories_in" validate:"gte=0"`
	CaloriesOut     int    `json:"calories_out" validate:"gte=0"`
	WaterIntake     int    `json:"water_intake" validate:"gte=0"`
	ExerciseMinutes int    `json:"exercise_minutes" validate:"gte=0"`
}

// Recent returns the authenticated user's statistics for the last seven days.
func (h *StatsHandler) Recent(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	stats, err := h.uc.Recent(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}

// Save upserts the authenticated user's statistics row for one day.
func (h *StatsHandler) Save(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	var req saveStatsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid statistics input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "date must be formatted YYYY-MM-DD")
	}

	stat, err := h.uc.Save(c.Request().Context(), &usecase.SaveStatsInput{
		UserID:          identity.ID,
		Date:            date,
		CaloriesIn:      req.CaloriesIn,
		CaloriesOut:     req.CaloriesOut,
		WaterIntake:     req.WaterIntake,
		ExerciseMinutes: req.ExerciseMinutes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stat, "Statistics saved successfully")
}
