package middleware

import (
	"net/http"
	"time"

	"fitlife/config"
	"fitlife/internal/delivery/http/response"
	"fitlife/internal/domain/entity"
	"fitlife/internal/usecase"

	"github.com/labstack/echo/v4"
)

// adminSessionKey is the echo context key holding the authenticated admin session.
const adminSessionKey = "adminSession"

// DefaultSessionCookieName is used when the config does not override it.
const DefaultSessionCookieName = "admin_session"

// AdminMiddleware guards admin panel routes behind the server-side cookie
// session. Identity is re-derived from the store on every request; the
// cookie only ever carries the opaque session ID.
type AdminMiddleware struct {
	adminUC    usecase.AdminUsecase
	cookieName string
}

// NewAdminMiddleware is the constructor for AdminMiddleware.
func NewAdminMiddleware(adminUC usecase.AdminUsecase, cfg *config.Config) *AdminMiddleware {
	cookieName := DefaultSessionCookieName
	if cfg != nil && cfg.Auth != nil && cfg.Auth.SessionCookieName != "" {
		cookieName = cfg.Auth.SessionCookieName
	}

	return &AdminMiddleware{adminUC: adminUC, cookieName: cookieName}
}

// CookieName returns the name of the session cookie, for the login handler.
func (m *AdminMiddleware) CookieName() string {
	return m.cookieName
}

// RequireSession resolves the session cookie and revalidates the admin
// behind it. On any failure the cookie is cleared and the chain stops with
// the same 401.
func (m *AdminMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := SessionIDFromCookie(c, m.cookieName)

		sess, err := m.adminUC.Authenticate(c.Request().Context(), sessionID)
		if err != nil {
			ClearSessionCookie(c, m.cookieName)

			return response.Unauthorized(c, "INVALID_SESSION", "Invalid or expired session")
		}

		c.Set(adminSessionKey, sess)

		return next(c)
	}
}

// AdminSessionFromContext returns the session the gate stored for this request.
func AdminSessionFromContext(c echo.Context) (*entity.AdminSession, bool) {
	sess, ok := c.Get(adminSessionKey).(*entity.AdminSession)

	return sess, ok
}

// SessionIDFromCookie reads the session cookie value, empty when absent.
func SessionIDFromCookie(c echo.Context, cookieName string) string {
	cookie, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// SetSessionCookie installs the session cookie on the response.
func SetSessionCookie(c echo.Context, cookieName, sessionID string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the response.
func ClearSessionCookie(c echo.Context, cookieName string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
