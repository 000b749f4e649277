package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"user-registry/internal/application/command"
	"user-registry/internal/infrastructure"
)

// AuthHandler issues bearer tokens. Issuance is unconditional given
// any email: there is no credential store in this system, so the only
// compensating control is the per-email rate limit.
type AuthHandler struct {
	jwtService  *infrastructure.JWTService
	rateLimiter *infrastructure.RateLimiter
}

func NewAuthHandler(jwtService *infrastructure.JWTService, rateLimiter *infrastructure.RateLimiter) *AuthHandler {
	return &AuthHandler{
		jwtService:  jwtService,
		rateLimiter: rateLimiter,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter is required")
	}

	if !h.rateLimiter.Allow(email) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, please try again later")
	}

	token, err := h.jwtService.Issue(email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, command.LoginCommandResult{
		Token:   token,
		Message: "token issued for " + email,
	})
}
