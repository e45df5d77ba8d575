package tools

import "errors"

var (
	// ErrUnknownTool is returned when the model names a capability that is
	// not in the dispatch table.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrInvalidArguments is returned when tool arguments cannot be decoded
	// or are missing required values.
	ErrInvalidArguments = errors.New("invalid tool arguments")
)
