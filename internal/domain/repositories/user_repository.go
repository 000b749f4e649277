package repositories

import (
	"context"
	"errors"

	"user-registry/internal/domain/entities"
)

// ErrDuplicateEmail is returned by writers when a save violates the
// email uniqueness constraint. The storage-level constraint is the
// authoritative guard; ExistsByEmail is an early-exit optimization.
var ErrDuplicateEmail = errors.New("email already registered")

// UserReader exposes the read capability a use case may depend on
// without also acquiring write access.
type UserReader interface {
	FindAll(ctx context.Context) ([]*entities.User, error)
}

// UserWriter exposes the write capability. Save inserts when the id is
// zero (storage assigns one) and replaces the row otherwise.
type UserWriter interface {
	Save(ctx context.Context, user *entities.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
