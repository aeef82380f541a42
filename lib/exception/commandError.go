package exception

import "fmt"

type CommandDisabledError struct {
	*AppError
	Command string
}

func NewCommandDisabledError(name string) *CommandDisabledError {
	return &CommandDisabledError{
		AppError: &AppError{
			Code:    "COMMAND_DISABLED",
			Message: fmt.Sprintf("command '%s' is disabled for the current selection", name),
		},
		Command: name,
	}
}

type UnknownCommandError struct {
	*AppError
	Command string
}

func NewUnknownCommandError(name string) *UnknownCommandError {
	return &UnknownCommandError{
		AppError: &AppError{
			Code:    "UNKNOWN_COMMAND",
			Message: fmt.Sprintf("command '%s' is not registered", name),
		},
		Command: name,
	}
}
