// Package tools implements the helper capabilities the model can invoke
// during a brainstorm: summarizing text and suggesting a technique.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool is one capability the model may call through the tool-call
// protocol.
type Tool interface {
	// Capability returns the identifier the model uses to call this tool.
	Capability() Capability

	// Description returns a human-readable description of what this tool does.
	Description() string

	// Schema returns the JSON schema for this tool's input parameters.
	Schema() map[string]interface{}

	// Execute runs the tool with JSON-encoded arguments.
	Execute(ctx context.Context, arguments json.RawMessage) (string, error)
}

// BaseToolSchema creates a common JSON schema structure for a tool
// with the given properties and required fields
func BaseToolSchema(properties map[string]interface{}, required []string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// decodeArguments unmarshals tool arguments. Empty input is treated as an
// empty object since some models omit arguments for optional-only tools.
func decodeArguments(arguments json.RawMessage, v interface{}) error {
	if len(arguments) == 0 {
		arguments = json.RawMessage("{}")
	}
	if err := json.Unmarshal(arguments, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}
