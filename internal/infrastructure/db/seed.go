package db

import (
	"context"

	"go.uber.org/zap"

	"user-registry/internal/domain/entities"
	"user-registry/internal/domain/repositories"
)

var seedUsers = []struct {
	name  string
	email string
}{
	{"Ana Torres", "ana@example.com"},
	{"Carlos Pérez", "carlos@example.com"},
	{"Lucía Gómez", "lucia@example.com"},
}

// Seed loads the sample users once at startup, guarded by the first
// seed email. Ids are assigned by storage.
func Seed(ctx context.Context, writer repositories.UserWriter, logger *zap.Logger) error {
	exists, err := writer.ExistsByEmail(ctx, seedUsers[0].email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	for _, seed := range seedUsers {
		if err := writer.Save(ctx, entities.NewUser(seed.name, seed.email)); err != nil {
			return err
		}
	}

	logger.Info("sample users loaded", zap.Int("count", len(seedUsers)))
	return nil
}
