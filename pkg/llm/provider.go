// Package llm defines the boundary between a brainstorm session and the
// completion service that produces assistant replies.
//
// Example usage:
//
//	provider, err := openai.NewProvider(os.Getenv("OPENAI_API_KEY"),
//	    openai.WithModel("gpt-4o-mini"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reply, err := provider.Complete(ctx, []types.Turn{
//	    types.NewSystemTurn("You are a helpful assistant."),
//	    types.NewUserTurn("Hello!"),
//	}, nil)
package llm

import (
	"context"
	"encoding/json"

	"github.com/entrhq/brainstorm/pkg/types"
)

// Provider sends a transcript to a completion service and returns the next
// assistant turn.
type Provider interface {
	// Complete sends the full transcript and returns the assistant reply.
	//
	// When toolset is non-nil its definitions are offered to the model. If
	// the model asks for tools, the provider runs them through the toolset
	// and feeds the results back within this same call; only the final
	// assistant answer is returned. The transcript is never modified.
	Complete(ctx context.Context, transcript []types.Turn, toolset Toolset) (types.Turn, error)

	// GetModel returns the model name being used.
	GetModel() string

	// GetBaseURL returns the base URL being used for API requests.
	GetBaseURL() string
}

// ToolDefinition describes one callable capability to the model.
type ToolDefinition struct {
	Name        string
	Description string
	// Parameters is a JSON schema object for the tool arguments.
	Parameters map[string]interface{}
}

// Toolset is the set of capabilities a provider may run on the model's
// behalf during a completion.
type Toolset interface {
	Definitions() []ToolDefinition
	Call(ctx context.Context, name string, arguments json.RawMessage) (string, error)
}

// ModelCloner is implemented by providers that can target a different
// model while sharing credentials and transport.
type ModelCloner interface {
	CloneWithModel(model string) Provider
}
