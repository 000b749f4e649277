package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-registry/internal/infrastructure"
)

func TestRequireToken_SetsSubject(t *testing.T) {
	jwtService := infrastructure.NewJWTService("test-secret", time.Hour)
	gate := NewAuthMiddleware(jwtService)

	token, err := jwtService.Issue("ana@example.com")
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	c := e.NewContext(req, httptest.NewRecorder())

	var subject string
	next := func(c echo.Context) error {
		subject = Subject(c)
		return nil
	}

	require.NoError(t, gate.RequireToken(next)(c))
	assert.Equal(t, "ana@example.com", subject)
}

func TestRequireToken_MissingHeader(t *testing.T) {
	gate := NewAuthMiddleware(infrastructure.NewJWTService("test-secret", time.Hour))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users", nil), httptest.NewRecorder())

	nextCalled := false
	err := gate.RequireToken(func(echo.Context) error {
		nextCalled = true
		return nil
	})(c)

	assert.False(t, nextCalled)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestSubject_EmptyOnUngatedRoute(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/healthz", nil), httptest.NewRecorder())

	assert.Empty(t, Subject(c))
}
