package types

// EventType defines the kind of event reported while a completion runs.
type EventType string

const (
	EventTypeAPICallStart    EventType = "api_call_start"    // EventTypeAPICallStart indicates a request to the completion service is about to be sent.
	EventTypeAPICallEnd      EventType = "api_call_end"      // EventTypeAPICallEnd indicates the completion service answered.
	EventTypeToolCall        EventType = "tool_call"         // EventTypeToolCall indicates the model asked for a tool.
	EventTypeToolResult      EventType = "tool_result"       // EventTypeToolResult indicates a successful tool call result.
	EventTypeToolResultError EventType = "tool_result_error" // EventTypeToolResultError indicates a tool call resulted in an error.
	EventTypeTokenUsage      EventType = "token_usage"       // EventTypeTokenUsage carries token usage reported by the service.
)

// Event represents something that happened inside a single completion call.
type Event struct {
	// Metadata holds optional additional information about the event.
	Metadata map[string]interface{}

	// ToolArguments is the raw JSON argument payload (for tool call events).
	ToolArguments string

	// ToolOutput is the result from the tool (for tool result events).
	ToolOutput string

	// Error contains error information for error events.
	Error error

	// ToolName is the name of the tool being called (for tool events).
	ToolName string

	// Type indicates the kind of event.
	Type EventType

	// TokenUsage contains token usage information (for token usage events).
	TokenUsage *TokenUsage

	// APICallInfo contains API call information (for API call events).
	APICallInfo *APICallInfo
}

// TokenUsage contains token usage statistics from an LLM API call.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// APICallInfo contains information about an API call.
type APICallInfo struct {
	// ContextTokens is the estimated size of the request in tokens.
	ContextTokens int

	// Round is the zero-based tool-call round within one completion.
	Round int
}

// EventHandler receives events. Handlers are called synchronously.
type EventHandler func(*Event)

// NewAPICallStartEvent creates an API call start event.
func NewAPICallStartEvent(model string, contextTokens, round int) *Event {
	return &Event{
		Type:     EventTypeAPICallStart,
		Metadata: map[string]interface{}{"model": model},
		APICallInfo: &APICallInfo{
			ContextTokens: contextTokens,
			Round:         round,
		},
	}
}

// NewAPICallEndEvent creates an API call end event.
func NewAPICallEndEvent(model string) *Event {
	return &Event{
		Type:     EventTypeAPICallEnd,
		Metadata: map[string]interface{}{"model": model},
	}
}

// NewToolCallEvent creates a tool call event.
func NewToolCallEvent(toolName, arguments string) *Event {
	return &Event{
		Type:          EventTypeToolCall,
		ToolName:      toolName,
		ToolArguments: arguments,
		Metadata:      make(map[string]interface{}),
	}
}

// NewToolResultEvent creates a tool result event.
func NewToolResultEvent(toolName, output string) *Event {
	return &Event{
		Type:       EventTypeToolResult,
		ToolName:   toolName,
		ToolOutput: output,
		Metadata:   make(map[string]interface{}),
	}
}

// NewToolResultErrorEvent creates a tool result error event.
func NewToolResultErrorEvent(toolName string, err error) *Event {
	return &Event{
		Type:     EventTypeToolResultError,
		ToolName: toolName,
		Error:    err,
		Metadata: make(map[string]interface{}),
	}
}

// NewTokenUsageEvent creates a token usage event.
func NewTokenUsageEvent(promptTokens, completionTokens, totalTokens int) *Event {
	return &Event{
		Type: EventTypeTokenUsage,
		TokenUsage: &TokenUsage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      totalTokens,
		},
		Metadata: make(map[string]interface{}),
	}
}
