package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"user-registry/internal/domain/entities"
	"user-registry/internal/domain/repositories"
)

// NewRouter wires the HTTP surface. Only the /users group sits behind
// the token gate; /auth and anything else, known or not, passes
// through unauthenticated.
func NewRouter(
	logger *zap.Logger,
	auth *AuthHandler,
	commands *UserCommandHandler,
	queries *UserQueryHandler,
	gate *AuthMiddleware,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = newHTTPErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	authGroup := e.Group("/auth")
	authGroup.POST("/login", auth.Login)

	users := e.Group("/users", gate.RequireToken)
	users.GET("", queries.List)
	users.POST("", commands.Create)

	return e
}

// newHTTPErrorHandler is the single translation point from failure
// kind to status code and body. Unexpected errors are logged in full
// and answered with a generic message.
func newHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		var code int
		var message string
		switch {
		case errors.Is(err, entities.ErrEmptyEmail):
			code, message = http.StatusBadRequest, err.Error()
		case errors.Is(err, repositories.ErrDuplicateEmail):
			code, message = http.StatusConflict, "email already registered"
		case errors.As(err, &httpErr):
			code, message = httpErr.Code, fmt.Sprintf("%v", httpErr.Message)
		default:
			code, message = http.StatusInternalServerError, "internal server error"
			logger.Error("unhandled error",
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		if jsonErr := c.JSON(code, map[string]string{"error": message}); jsonErr != nil {
			logger.Error("failed to write error response", zap.Error(jsonErr))
		}
	}
}
