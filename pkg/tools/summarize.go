package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/entrhq/brainstorm/pkg/llm"
	"github.com/entrhq/brainstorm/pkg/types"
)

// summarizeInstruction is the canned system prompt for summarize calls.
const summarizeInstruction = "You summarize brainstorming sessions. " +
	"Condense the text you are given into a short, well-organized summary. " +
	"Keep every distinct idea, group related ideas together, and drop repetition and filler. " +
	"Reply with the summary only."

// SummarizeTool condenses text by delegating to the completion service.
type SummarizeTool struct {
	provider llm.Provider
}

// NewSummarizeTool creates a summarize tool backed by provider.
func NewSummarizeTool(provider llm.Provider) *SummarizeTool {
	return &SummarizeTool{provider: provider}
}

func (t *SummarizeTool) Capability() Capability {
	return CapabilitySummarize
}

func (t *SummarizeTool) Description() string {
	return "Summarize text or a list of ideas discussed in the brainstorming session."
}

func (t *SummarizeTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"text": map[string]interface{}{
			"type":        "string",
			"description": "The text to summarize",
		},
		"ideas": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Individual ideas to include in the summary",
		},
	}, nil)
}

func (t *SummarizeTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var args struct {
		Text  string   `json:"text"`
		Ideas []string `json:"ideas"`
	}
	if err := decodeArguments(arguments, &args); err != nil {
		return "", err
	}

	input := composeSummaryInput(args.Text, args.Ideas)
	if input == "" {
		return "", fmt.Errorf("%w: text or ideas is required", ErrInvalidArguments)
	}

	return Summarize(ctx, t.provider, input)
}

// Summarize asks provider for a summary of text. Provider errors are
// returned wrapped but otherwise unchanged.
func Summarize(ctx context.Context, provider llm.Provider, text string) (string, error) {
	reply, err := provider.Complete(ctx, []types.Turn{
		types.NewSystemTurn(summarizeInstruction),
		types.NewUserTurn("Summarize this:\n\n" + text),
	}, nil)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return strings.TrimSpace(reply.Content), nil
}

func composeSummaryInput(text string, ideas []string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(text))

	for _, idea := range ideas {
		idea = strings.TrimSpace(idea)
		if idea == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(idea)
	}
	return b.String()
}
