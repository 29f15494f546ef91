package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-dashboard/internal/dto"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessions map[string]*dto.Session

func (f fakeSessions) Init(_ context.Context, id string) (*dto.Session, error) {
	if s, ok := f[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrSessionNotFound
}

type redirectResponse struct {
	Status bool               `json:"status"`
	Body   utils.RedirectBody `json:"body"`
}

func newGuardedEcho(t *testing.T, roles ...dto.AdminType) *echo.Echo {
	t.Helper()
	sessions := fakeSessions{
		"admin": {ID: "admin", Auth: dto.AuthData{AdminID: 1, AdminType: dto.AdminTypeAdmin}},
		"super": {ID: "super", Auth: dto.AuthData{AdminID: 2, AdminType: dto.AdminTypeSuperAdmin}},
		"none":  {ID: "none", Auth: dto.AuthData{AdminID: 3}},
	}
	m := NewAuthMiddleware(sessions, "crm_session", zap.NewNop())

	e := echo.New()
	g := e.Group("/api", m.Auth, m.RequireRoles(roles...))
	g.GET("/ping", func(c echo.Context) error {
		s, err := utils.GetSessionFromContext(c.Request().Context())
		require.NoError(t, err)
		return c.String(http.StatusOK, s.ID)
	})
	return e
}

func serve(e *echo.Echo, setup func(r *http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeRedirect(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var res redirectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Status)
	return res.Body.Redirect
}

func TestAuth_MissingSessionRedirectsToLogin(t *testing.T) {
	e := newGuardedEcho(t, dto.AdminTypeAdmin, dto.AdminTypeSuperAdmin)

	rec := serve(e, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, utils.LoginPath, decodeRedirect(t, rec))
}

func TestAuth_UnknownSessionRedirectsToLogin(t *testing.T) {
	e := newGuardedEcho(t, dto.AdminTypeAdmin)

	rec := serve(e, func(r *http.Request) { r.Header.Set("Authorization", "Session gone") })

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, utils.LoginPath, decodeRedirect(t, rec))
}

func TestAuth_CookieAndHeaderAccepted(t *testing.T) {
	e := newGuardedEcho(t, dto.AdminTypeAdmin, dto.AdminTypeSuperAdmin)

	rec := serve(e, func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "crm_session", Value: "admin"}) })
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())

	rec = serve(e, func(r *http.Request) { r.Header.Set("Authorization", "Session super") })
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "super", rec.Body.String())
}

func TestAuth_BearerHeaderRejected(t *testing.T) {
	e := newGuardedEcho(t, dto.AdminTypeAdmin)

	rec := serve(e, func(r *http.Request) { r.Header.Set("Authorization", "Bearer admin") })

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoles(t *testing.T) {
	e := newGuardedEcho(t, dto.AdminTypeSuperAdmin)

	rec := serve(e, func(r *http.Request) { r.Header.Set("Authorization", "Session admin") })
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, utils.UnauthorizedPath, decodeRedirect(t, rec))

	rec = serve(e, func(r *http.Request) { r.Header.Set("Authorization", "Session none") })
	assert.Equal(t, http.StatusForbidden, rec.Code, "missing role is treated as not allowed")

	rec = serve(e, func(r *http.Request) { r.Header.Set("Authorization", "Session super") })
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInjectLogger_SetsRequestID(t *testing.T) {
	e := echo.New()
	e.Use(InjectLogger(zap.NewNop()))
	e.GET("/x", func(c echo.Context) error {
		_, ok := c.Get("logger").(*zap.Logger)
		assert.True(t, ok)
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get(echo.HeaderXRequestID))
}
