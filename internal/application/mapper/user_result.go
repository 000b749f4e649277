package mapper

import (
	"user-registry/internal/application/common"
	"user-registry/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:    user.Id,
		Name:  user.Name,
		Email: user.Email,
	}
}

func NewUserResultListFromEntities(users []*entities.User) []*common.UserResult {
	results := make([]*common.UserResult, 0, len(users))
	for _, user := range users {
		results = append(results, NewUserResultFromEntity(user))
	}
	return results
}
