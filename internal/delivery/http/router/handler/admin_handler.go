package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fitlife/config"
	"fitlife/internal/delivery/http/middleware"
	"fitlife/internal/delivery/http/response"
	"fitlife/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSessionTTL = 2 * time.Hour

// AdminHandler holds dependencies for the admin panel handlers.
type AdminHandler struct {
	uc         usecase.AdminUsecase
	logger     *slog.Logger
	cookieName string
	sessionTTL time.Duration
}

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	UC     usecase.AdminUsecase
	Config *config.Config
	Logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	cookieName := middleware.DefaultSessionCookieName
	sessionTTL := defaultSessionTTL
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.SessionCookieName != "" {
			cookieName = params.Config.Auth.SessionCookieName
		}
		if params.Config.Auth.SessionTTL > 0 {
			sessionTTL = params.Config.Auth.SessionTTL
		}
	}

	return &AdminHandler{
		uc:         params.UC,
		logger:     params.Logger,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
}

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createAdminRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type adminPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Login authenticates an admin and installs the session cookie. Whatever
// session cookie the browser already presented is passed along so the
// session ID is regenerated on success.
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.AdminLoginInput{
		Username:           req.Username,
		Password:           req.Password,
		PresentedSessionID: middleware.SessionIDFromCookie(c, h.cookieName),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	middleware.SetSessionCookie(c, h.cookieName, output.SessionID, h.sessionTTL)

	return response.Success(c, http.StatusOK, &adminPayload{
		ID:       output.Admin.ID.String(),
		Username: output.Admin.Username,
		Email:    output.Admin.Email,
	}, "Login successful")
}

// Logout destroys the session behind the cookie and clears the cookie.
// It succeeds regardless of the session's state.
func (h *AdminHandler) Logout(c echo.Context) error {
	sessionID := middleware.SessionIDFromCookie(c, h.cookieName)
	if sessionID != "" {
		if err := h.uc.Logout(c.Request().Context(), sessionID); err != nil {
			return errors.WithStack(err)
		}
	}

	middleware.ClearSessionCookie(c, h.cookieName)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Dashboard returns the user overview for the admin panel.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	sess, ok := middleware.AdminSessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Invalid or expired session")
	}

	output, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]any{
		"admin":       sess.Username,
		"total_users": output.TotalUsers,
		"users":       output.Users,
	}

	return response.Success(c, http.StatusOK, data, "Dashboard retrieved successfully")
}

// CreateAdmin provisions a new admin account. Only a logged-in admin can
// reach this endpoint.
func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	admin, err := h.uc.CreateAdmin(c.Request().Context(), &usecase.CreateAdminInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &adminPayload{
		ID:       admin.ID.String(),
		Username: admin.Username,
		Email:    admin.Email,
	}, "Admin created successfully")
}
