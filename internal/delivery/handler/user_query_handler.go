package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"user-registry/internal/application/interfaces"
)

type UserQueryHandler struct {
	users interfaces.UserService
}

func NewUserQueryHandler(users interfaces.UserService) *UserQueryHandler {
	return &UserQueryHandler{users: users}
}

func (h *UserQueryHandler) List(c echo.Context) error {
	result, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result.Result)
}
