package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"user-registry/internal/domain/entities"
	"user-registry/internal/domain/repositories"
)

// UserRepository implements both repository ports against the users
// table. Use cases depend on the narrow port they need, not this type.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

var (
	_ repositories.UserReader = (*UserRepository)(nil)
	_ repositories.UserWriter = (*UserRepository)(nil)
)

func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	var userModels []UserModel
	if err := r.db.WithContext(ctx).Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.mapToEntity(&userModels[i]))
	}
	return users, nil
}

// Save inserts when the id is zero and replaces the row otherwise.
// The assigned id is written back to the entity.
func (r *UserRepository) Save(ctx context.Context, user *entities.User) error {
	userModel := UserModel{
		Id:    user.Id,
		Name:  user.Name,
		Email: user.Email,
	}

	var err error
	if userModel.Id == 0 {
		err = r.db.WithContext(ctx).Create(&userModel).Error
	} else {
		err = r.db.WithContext(ctx).Save(&userModel).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrDuplicateEmail
		}
		return err
	}

	user.Id = userModel.Id
	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:    userModel.Id,
		Name:  userModel.Name,
		Email: userModel.Email,
	}
}
