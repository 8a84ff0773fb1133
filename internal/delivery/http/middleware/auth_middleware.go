package middleware

import (
	"strings"

	"fitlife/internal/delivery/http/response"
	"fitlife/internal/domain/entity"
	"fitlife/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// identityKey is the echo context key holding the authenticated identity.
const identityKey = "identity"

// AuthMiddleware is the single gate in front of every token-protected API
// route. All routes share this one implementation.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer token and stores the resolved identity
// in the request context for the handlers. Every failure answers the same
// 401 and stops the chain.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractBearerToken(c.Request().Header.Get("Authorization"))

		identity, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(identityKey, identity)

		return next(c)
	}
}

// extractBearerToken pulls the token out of an Authorization header.
// The Bearer scheme matches case-insensitively. A missing header, a foreign
// scheme or a blank credential all yield an empty token, which the validator
// rejects before any lookup.
func extractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}

// IdentityFromContext returns the identity the gate stored for this request.
func IdentityFromContext(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(identityKey).(*entity.Identity)

	return identity, ok
}
