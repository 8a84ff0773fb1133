package handler

import (
	"log/slog"
	"net/http"

	"fitlife/internal/delivery/http/middleware"
	"fitlife/internal/delivery/http/response"
	"fitlife/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FoodLogHandler holds dependencies for food log handlers.
type FoodLogHandler struct {
	uc     usecase.FoodLogUsecase
	logger *slog.Logger
}

// NewFoodLogHandler is the constructor for FoodLogHandler, injected by Fx.
func NewFoodLogHandler(uc usecase.FoodLogUsecase, logger *slog.Logger) *FoodLogHandler {
	return &FoodLogHandler{uc: uc, logger: logger}
}

type logFoodRequest struct {
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	FoodName string  `json:"food_name" validate:"required"`
	Calories int     `json:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" validate:"gte=0"`
}

// List returns the authenticated user's food logs for one day.
func (h *FoodLogHandler) List(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	date, err := parseDateParam(c.QueryParam("date"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "date must be formatted YYYY-MM-DD")
	}

	logs, err := h.uc.ListByDate(c.Request().Context(), identity.ID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "Food logs retrieved successfully")
}

// Log records a new food log entry for the authenticated user.
func (h *FoodLogHandler) Log(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	var req logFoodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food log input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "date must be formatted YYYY-MM-DD")
	}

	foodLog, err := h.uc.Log(c.Request().Context(), &usecase.LogFoodInput{
		UserID:   identity.ID,
		Date:     date,
		FoodName: req.FoodName,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, foodLog, "Food logged successfully")
}

// Delete removes one of the authenticated user's food log entries.
func (h *FoodLogHandler) Delete(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "FOOD_LOG_NOT_FOUND", "Food log not found")
	}

	if err := h.uc.Delete(c.Request().Context(), identity.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Food log deleted successfully")
}
