// Package openai provides an OpenAI-compatible completion provider with
// tool-call support.
//
// Example usage:
//
//	provider, err := openai.NewProvider(
//	    os.Getenv("OPENAI_API_KEY"),
//	    openai.WithModel("gpt-4o-mini"),
//	)
//	if err != nil {
//	    panic(err)
//	}
//
//	reply, err := provider.Complete(ctx, transcript, dispatcher)
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/entrhq/brainstorm/pkg/llm"
	"github.com/entrhq/brainstorm/pkg/llm/tokenizer"
	"github.com/entrhq/brainstorm/pkg/logging"
	"github.com/entrhq/brainstorm/pkg/types"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	// DefaultBaseURL is the default OpenAI API base URL
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"

	// DefaultMaxToolRounds bounds how many times one completion may go
	// back to the model with tool results.
	DefaultMaxToolRounds = 8
)

var (
	// ErrMissingAPIKey is returned by NewProvider when no key is available.
	ErrMissingAPIKey = errors.New("OpenAI API key is required (provide via parameter or OPENAI_API_KEY environment variable)")

	// ErrEmptyResponse is returned when the service answers without choices.
	ErrEmptyResponse = errors.New("completion response contained no choices")

	// ErrToolRoundsExceeded is returned when the model keeps asking for
	// tools past the configured limit.
	ErrToolRoundsExceeded = errors.New("model exceeded the maximum number of tool-call rounds")
)

var debugLog *logging.Logger

func init() {
	var err error
	debugLog, err = logging.NewLogger("openai")
	if err != nil {
		debugLog.Warnf("Failed to initialize openai logger, using stderr fallback: %v", err)
	}
}

// Provider implements llm.Provider on top of the chat completions API.
type Provider struct {
	client        openai.Client
	apiKey        string
	baseURL       string
	model         string
	maxToolRounds int
	requestOpts   []option.RequestOption
	onEvent       types.EventHandler
	tokenizer     *tokenizer.Tokenizer
}

// ProviderOption is a function that configures a Provider.
type ProviderOption func(*Provider)

// WithModel sets the model to use for completions.
func WithModel(model string) ProviderOption {
	return func(p *Provider) {
		p.model = model
	}
}

// WithBaseURL sets a custom base URL for OpenAI-compatible APIs.
func WithBaseURL(baseURL string) ProviderOption {
	return func(p *Provider) {
		p.baseURL = baseURL
	}
}

// WithMaxToolRounds caps the tool-call rounds within one completion.
func WithMaxToolRounds(n int) ProviderOption {
	return func(p *Provider) {
		if n >= 0 {
			p.maxToolRounds = n
		}
	}
}

// WithRequestOptions appends raw openai-go request options, e.g. a custom
// HTTP client.
func WithRequestOptions(opts ...option.RequestOption) ProviderOption {
	return func(p *Provider) {
		p.requestOpts = append(p.requestOpts, opts...)
	}
}

// WithEventHandler registers a handler for API and tool events.
func WithEventHandler(handler types.EventHandler) ProviderOption {
	return func(p *Provider) {
		p.onEvent = handler
	}
}

// WithTokenizer sets the tokenizer used for request size accounting.
func WithTokenizer(tok *tokenizer.Tokenizer) ProviderOption {
	return func(p *Provider) {
		p.tokenizer = tok
	}
}

// NewProvider creates a provider for the given API key.
//
// If apiKey is empty, OPENAI_API_KEY is used. If no base URL option is
// given, OPENAI_BASE_URL is consulted. Requests are never retried: a
// failed call is reported to the caller as-is.
func NewProvider(apiKey string, opts ...ProviderOption) (*Provider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	p := &Provider{
		apiKey:        apiKey,
		baseURL:       DefaultBaseURL,
		model:         DefaultModel,
		maxToolRounds: DefaultMaxToolRounds,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.baseURL == DefaultBaseURL {
		if envBaseURL := os.Getenv("OPENAI_BASE_URL"); envBaseURL != "" {
			p.baseURL = envBaseURL
		}
	}

	if p.tokenizer == nil {
		tok, err := tokenizer.New()
		if err != nil {
			debugLog.Warnf("Token counting falls back to estimates: %v", err)
			tok = tokenizer.Estimate()
		}
		p.tokenizer = tok
	}

	p.client = p.newClient()
	return p, nil
}

func (p *Provider) newClient() openai.Client {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(p.apiKey),
		option.WithBaseURL(p.baseURL),
		option.WithMaxRetries(0),
	}
	reqOpts = append(reqOpts, p.requestOpts...)
	return openai.NewClient(reqOpts...)
}

// CloneWithModel returns a copy of p that targets model. The clone shares
// the API key, base URL and request options. It implements llm.ModelCloner.
func (p *Provider) CloneWithModel(model string) llm.Provider {
	clone := *p
	clone.model = model
	return &clone
}

// Complete sends the transcript to the chat completions endpoint and runs
// the tool-call protocol until the model produces a plain answer.
func (p *Provider) Complete(ctx context.Context, transcript []types.Turn, toolset llm.Toolset) (types.Turn, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: convertToOpenAIMessages(transcript),
	}
	if toolset != nil {
		params.Tools = convertToOpenAITools(toolset.Definitions())
	}

	contextTokens := p.tokenizer.CountTurns(transcript)

	for round := 0; round <= p.maxToolRounds; round++ {
		debugLog.Debugf("Sending %d messages to %s (round %d, ~%d transcript tokens)", len(params.Messages), p.model, round, contextTokens)
		p.emit(types.NewAPICallStartEvent(p.model, contextTokens, round))

		resp, err := p.client.Chat.Completions.New(ctx, params)
		if err != nil {
			debugLog.Errorf("Completion request failed: %v", err)
			return types.Turn{}, fmt.Errorf("completion request failed: %w", err)
		}

		p.emit(types.NewAPICallEndEvent(p.model))
		p.emit(types.NewTokenUsageEvent(int(resp.Usage.PromptTokens), int(resp.Usage.CompletionTokens), int(resp.Usage.TotalTokens)))

		if len(resp.Choices) == 0 {
			return types.Turn{}, ErrEmptyResponse
		}

		message := resp.Choices[0].Message
		if len(message.ToolCalls) == 0 || toolset == nil {
			return types.NewAssistantTurn(message.Content), nil
		}

		params.Messages = append(params.Messages, message.ToParam())
		for _, call := range message.ToolCalls {
			result := p.runTool(ctx, toolset, call)
			params.Messages = append(params.Messages, openai.ToolMessage(result, call.ID))
		}
	}

	return types.Turn{}, fmt.Errorf("%w (%d)", ErrToolRoundsExceeded, p.maxToolRounds)
}

// runTool executes one tool call. Tool failures are handed back to the
// model as the tool result so it can recover within the same completion.
func (p *Provider) runTool(ctx context.Context, toolset llm.Toolset, call openai.ChatCompletionMessageToolCall) string {
	name := call.Function.Name
	debugLog.Infof("Model requested tool %s with %s", name, call.Function.Arguments)
	p.emit(types.NewToolCallEvent(name, call.Function.Arguments))

	result, err := toolset.Call(ctx, name, json.RawMessage(call.Function.Arguments))
	if err != nil {
		debugLog.Warnf("Tool %s failed: %v", name, err)
		p.emit(types.NewToolResultErrorEvent(name, err))
		return fmt.Sprintf("Error: %v", err)
	}

	p.emit(types.NewToolResultEvent(name, result))
	return result
}

func (p *Provider) emit(event *types.Event) {
	if p.onEvent != nil {
		p.onEvent(event)
	}
}

// GetModel returns the model name being used.
func (p *Provider) GetModel() string {
	return p.model
}

// GetBaseURL returns the base URL being used.
func (p *Provider) GetBaseURL() string {
	return p.baseURL
}

// convertToOpenAIMessages converts transcript turns to chat message params.
func convertToOpenAIMessages(turns []types.Turn) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))

	for _, turn := range turns {
		switch turn.Role {
		case types.RoleSystem:
			messages = append(messages, openai.SystemMessage(turn.Content))
		case types.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}

	return messages
}

// convertToOpenAITools converts tool definitions to function tool params.
func convertToOpenAITools(defs []llm.ToolDefinition) []openai.ChatCompletionToolParam {
	if len(defs) == 0 {
		return nil
	}

	tools := make([]openai.ChatCompletionToolParam, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        def.Name,
				Description: openai.String(def.Description),
				Parameters:  openai.FunctionParameters(def.Parameters),
			},
		})
	}
	return tools
}
