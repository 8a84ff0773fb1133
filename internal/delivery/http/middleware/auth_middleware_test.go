package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitlife/internal/domain/entity"
	domainerrors "fitlife/internal/domain/errors"
	"fitlife/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthUsecase accepts exactly one token and records what it was asked.
type fakeAuthUsecase struct {
	usecase.AuthUsecase

	validToken string
	identity   *entity.Identity
	askedWith  []string
}

func (f *fakeAuthUsecase) Authenticate(_ context.Context, token string) (*entity.Identity, error) {
	f.askedWith = append(f.askedWith, token)
	if token != "" && token == f.validToken {
		return f.identity, nil
	}

	return nil, domainerrors.ErrInvalidToken
}

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New(), Email: "alice@example.com", Name: "Alice"}
	uc := &fakeAuthUsecase{validToken: "good-token", identity: identity}
	m := NewAuthMiddleware(uc)

	c, rec := newAuthTestContext(t, "Bearer good-token")

	var seen *entity.Identity
	err := m.Authenticate(func(c echo.Context) error {
		got, ok := IdentityFromContext(c)
		require.True(t, ok)
		seen = got

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, identity, seen)
}

func TestAuthMiddleware_SchemeMatchesCaseInsensitively(t *testing.T) {
	uc := &fakeAuthUsecase{validToken: "good-token", identity: &entity.Identity{ID: uuid.New()}}
	m := NewAuthMiddleware(uc)

	c, rec := newAuthTestContext(t, "bearer good-token")

	err := m.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RejectionsAnswerSame401(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
	}{
		{name: "missing header", authorization: ""},
		{name: "foreign scheme", authorization: "Basic dXNlcjpwYXNz"},
		{name: "blank credential", authorization: "Bearer   "},
		{name: "unknown token", authorization: "Bearer forged-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeAuthUsecase{validToken: "good-token"}
			m := NewAuthMiddleware(uc)

			c, rec := newAuthTestContext(t, tt.authorization)

			nextCalled := false
			err := m.Authenticate(func(c echo.Context) error {
				nextCalled = true

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "plain", header: "Bearer abc123", want: "abc123"},
		{name: "lowercase scheme", header: "bearer abc123", want: "abc123"},
		{name: "surrounding whitespace", header: "  Bearer abc123  ", want: "abc123"},
		{name: "empty header", header: "", want: ""},
		{name: "scheme only", header: "Bearer ", want: ""},
		{name: "foreign scheme", header: "Token abc123", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractBearerToken(tt.header))
		})
	}
}
