package command

type CreateUserCommand struct {
	Id    uint   `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateUserCommandResult struct {
	Message string `json:"message"`
}
