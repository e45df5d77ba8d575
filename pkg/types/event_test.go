package types

import (
	"errors"
	"testing"
)

func TestEventType(t *testing.T) {
	tests := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeAPICallStart, "api_call_start"},
		{EventTypeAPICallEnd, "api_call_end"},
		{EventTypeToolCall, "tool_call"},
		{EventTypeToolResult, "tool_result"},
		{EventTypeToolResultError, "tool_result_error"},
		{EventTypeTokenUsage, "token_usage"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if string(tt.eventType) != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, string(tt.eventType))
			}
		})
	}
}

func TestNewAPICallStartEvent(t *testing.T) {
	event := NewAPICallStartEvent("gpt-4o-mini", 120, 2)

	if event.Type != EventTypeAPICallStart {
		t.Errorf("Expected type %q, got %q", EventTypeAPICallStart, event.Type)
	}
	if event.Metadata["model"] != "gpt-4o-mini" {
		t.Errorf("Expected model metadata, got %v", event.Metadata["model"])
	}
	if event.APICallInfo == nil {
		t.Fatal("Expected APICallInfo to be set")
	}
	if event.APICallInfo.ContextTokens != 120 || event.APICallInfo.Round != 2 {
		t.Errorf("Unexpected APICallInfo: %+v", event.APICallInfo)
	}
}

func TestNewToolEvents(t *testing.T) {
	call := NewToolCallEvent("suggest_technique", `{"topic":"x"}`)
	if call.Type != EventTypeToolCall || call.ToolName != "suggest_technique" {
		t.Errorf("Unexpected tool call event: %+v", call)
	}
	if call.ToolArguments != `{"topic":"x"}` {
		t.Errorf("Expected arguments to be kept, got %q", call.ToolArguments)
	}

	result := NewToolResultEvent("summarize", "short")
	if result.Type != EventTypeToolResult || result.ToolOutput != "short" {
		t.Errorf("Unexpected tool result event: %+v", result)
	}

	testErr := errors.New("boom")
	failed := NewToolResultErrorEvent("summarize", testErr)
	if failed.Type != EventTypeToolResultError || !errors.Is(failed.Error, testErr) {
		t.Errorf("Unexpected tool error event: %+v", failed)
	}
	if failed.Metadata == nil {
		t.Error("Expected metadata map to be initialized")
	}
}

func TestNewTokenUsageEvent(t *testing.T) {
	event := NewTokenUsageEvent(10, 5, 15)
	if event.TokenUsage == nil {
		t.Fatal("Expected TokenUsage to be set")
	}
	if event.TokenUsage.PromptTokens != 10 || event.TokenUsage.CompletionTokens != 5 || event.TokenUsage.TotalTokens != 15 {
		t.Errorf("Unexpected token usage: %+v", event.TokenUsage)
	}
}
