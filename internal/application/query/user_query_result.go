package query

import "user-registry/internal/application/common"

type UserQueryListResult struct {
	Result []*common.UserResult `json:"result"`
}
