package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/brainstorm/pkg/llm"
)

// Capability names a callable helper. The set is closed.
type Capability string

const (
	CapabilitySummarize        Capability = "summarize"
	CapabilitySuggestTechnique Capability = "suggest_technique"
)

// Capabilities lists every capability in the order offered to the model.
func Capabilities() []Capability {
	return []Capability{CapabilitySummarize, CapabilitySuggestTechnique}
}

// ParseCapability maps a tool name sent by the model to a Capability.
func ParseCapability(name string) (Capability, error) {
	for _, c := range Capabilities() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// Dispatcher routes tool calls to their implementations. It implements
// llm.Toolset.
type Dispatcher struct {
	table map[Capability]Tool
}

// NewDispatcher builds the dispatch table. summarizer is the provider the
// summarize capability delegates to.
func NewDispatcher(summarizer llm.Provider) *Dispatcher {
	return &Dispatcher{
		table: map[Capability]Tool{
			CapabilitySummarize:        NewSummarizeTool(summarizer),
			CapabilitySuggestTechnique: NewSuggestTechniqueTool(),
		},
	}
}

// Definitions returns the tool definitions offered to the model.
func (d *Dispatcher) Definitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(d.table))
	for _, c := range Capabilities() {
		tool := d.table[c]
		defs = append(defs, llm.ToolDefinition{
			Name:        string(c),
			Description: tool.Description(),
			Parameters:  tool.Schema(),
		})
	}
	return defs
}

// Call runs the named capability.
func (d *Dispatcher) Call(ctx context.Context, name string, arguments json.RawMessage) (string, error) {
	c, err := ParseCapability(name)
	if err != nil {
		return "", err
	}
	return d.table[c].Execute(ctx, arguments)
}
