package exception

import "fmt"

// AppError is the common shape of every error raised by the editing core.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

type ConfigError struct {
	*AppError
}

func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		AppError: &AppError{
			Code:    "CONFIG_ERROR",
			Message: message,
			Cause:   cause,
		},
	}
}
