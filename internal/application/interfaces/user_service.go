package interfaces

import (
	"context"

	"user-registry/internal/application/command"
	"user-registry/internal/application/query"
)

type UserService interface {
	CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
	ListUsers(ctx context.Context) (*query.UserQueryListResult, error)
}
