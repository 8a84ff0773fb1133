package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitlife/config"
	"fitlife/internal/domain/entity"
	domainerrors "fitlife/internal/domain/errors"
	"fitlife/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdminUsecase accepts exactly one session ID.
type fakeAdminUsecase struct {
	usecase.AdminUsecase

	validSessionID string
	session        *entity.AdminSession
}

func (f *fakeAdminUsecase) Authenticate(_ context.Context, sessionID string) (*entity.AdminSession, error) {
	if sessionID != "" && sessionID == f.validSessionID {
		return f.session, nil
	}

	return nil, domainerrors.ErrInvalidSession
}

func newAdminTestContext(t *testing.T, sessionID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: DefaultSessionCookieName, Value: sessionID})
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAdminMiddleware_ValidSessionSetsContext(t *testing.T) {
	session := &entity.AdminSession{ID: "session-0001", AdminID: uuid.New(), Username: "root"}
	uc := &fakeAdminUsecase{validSessionID: "session-0001", session: session}
	m := NewAdminMiddleware(uc, nil)

	c, rec := newAdminTestContext(t, "session-0001")

	err := m.RequireSession(func(c echo.Context) error {
		got, ok := AdminSessionFromContext(c)
		require.True(t, ok)
		assert.Equal(t, session, got)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminMiddleware_InvalidSessionClearsCookie(t *testing.T) {
	uc := &fakeAdminUsecase{validSessionID: "session-0001"}
	m := NewAdminMiddleware(uc, nil)

	c, rec := newAdminTestContext(t, "forged")

	nextCalled := false
	err := m.RequireSession(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_SESSION")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, DefaultSessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAdminMiddleware_MissingCookieRejected(t *testing.T) {
	uc := &fakeAdminUsecase{validSessionID: "session-0001"}
	m := NewAdminMiddleware(uc, nil)

	c, rec := newAdminTestContext(t, "")

	err := m.RequireSession(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminMiddleware_CookieNameFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{SessionCookieName: "panel_session"}}
	m := NewAdminMiddleware(&fakeAdminUsecase{}, cfg)

	assert.Equal(t, "panel_session", m.CookieName())
}
