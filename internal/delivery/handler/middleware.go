package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"user-registry/internal/infrastructure"
)

// subjectKey is the context key holding the verified token subject.
const subjectKey = "auth.subject"

// AuthMiddleware gates the user resource. Every request is verified
// independently; no session state is kept between requests.
type AuthMiddleware struct {
	tokens *infrastructure.JWTService
}

func NewAuthMiddleware(tokens *infrastructure.JWTService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		subject, err := m.tokens.Verify(strings.TrimPrefix(header, prefix))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(subjectKey, subject)
		return next(c)
	}
}

// Subject returns the verified token subject set by RequireToken, or
// the empty string on an ungated route.
func Subject(c echo.Context) string {
	subject, _ := c.Get(subjectKey).(string)
	return subject
}
