package command

type LoginCommandResult struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}
