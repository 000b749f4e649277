package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"user-registry/internal/application/command"
	"user-registry/internal/application/interfaces"
)

type UserCommandHandler struct {
	users interfaces.UserService
}

func NewUserCommandHandler(users interfaces.UserService) *UserCommandHandler {
	return &UserCommandHandler{users: users}
}

func (h *UserCommandHandler) Create(c echo.Context) error {
	createCommand := new(command.CreateUserCommand)
	if err := c.Bind(createCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.users.CreateUser(c.Request().Context(), createCommand)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
