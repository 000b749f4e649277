package services

import (
	"context"
	"strings"

	"user-registry/internal/application/command"
	"user-registry/internal/application/interfaces"
	"user-registry/internal/application/mapper"
	"user-registry/internal/application/query"
	"user-registry/internal/domain/entities"
	"user-registry/internal/domain/repositories"
	"user-registry/internal/infrastructure"
)

type UserService struct {
	reader repositories.UserReader
	writer repositories.UserWriter
	mailer *infrastructure.WelcomeMailer
}

func NewUserService(
	reader repositories.UserReader,
	writer repositories.UserWriter,
	mailer *infrastructure.WelcomeMailer,
) interfaces.UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		mailer: mailer,
	}
}

func (s *UserService) CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	email := strings.TrimSpace(createCommand.Email)
	if email == "" {
		return nil, entities.ErrEmptyEmail
	}

	// Early exit only. The unique index on email is the authoritative
	// guard: a lost check-then-save race still surfaces as
	// ErrDuplicateEmail from the writer.
	exists, err := s.writer.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repositories.ErrDuplicateEmail
	}

	// A fresh entity carries a zero id so storage assigns one.
	// Caller-supplied ids are discarded.
	newUser := entities.NewUser(createCommand.Name, email)
	if err := s.writer.Save(ctx, newUser); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		go s.mailer.SendWelcome(context.Background(), newUser.Name, newUser.Email)
	}

	return &command.CreateUserCommandResult{
		Message: "user registered successfully",
	}, nil
}

func (s *UserService) ListUsers(ctx context.Context) (*query.UserQueryListResult, error) {
	users, err := s.reader.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &query.UserQueryListResult{
		Result: mapper.NewUserResultListFromEntities(users),
	}, nil
}
