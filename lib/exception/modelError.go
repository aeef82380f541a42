package exception

import "fmt"

type InvalidPositionError struct {
	*AppError
	Block  int
	Offset int
}

func NewInvalidPositionError(block, offset int) *InvalidPositionError {
	return &InvalidPositionError{
		AppError: &AppError{
			Code:    "INVALID_POSITION",
			Message: fmt.Sprintf("position %d:%d is outside of the document", block, offset),
		},
		Block:  block,
		Offset: offset,
	}
}

type NodeNotFoundError struct {
	*AppError
}

func NewNodeNotFoundError() *NodeNotFoundError {
	return &NodeNotFoundError{
		AppError: &AppError{
			Code:    "NODE_NOT_FOUND",
			Message: "node is not attached to the document",
		},
	}
}

type ParseError struct {
	*AppError
}

func NewParseError(message string, cause error) *ParseError {
	return &ParseError{
		AppError: &AppError{
			Code:    "PARSE_ERROR",
			Message: message,
			Cause:   cause,
		},
	}
}
