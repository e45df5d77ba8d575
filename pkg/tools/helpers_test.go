package tools

import (
	"context"

	"github.com/entrhq/brainstorm/pkg/llm"
	"github.com/entrhq/brainstorm/pkg/types"
)

// stubProvider answers deterministically from the last user turn.
type stubProvider struct {
	calls      [][]types.Turn
	tools      []llm.Toolset
	err        error
	answerWith func(last types.Turn) string
}

func (s *stubProvider) Complete(_ context.Context, transcript []types.Turn, toolset llm.Toolset) (types.Turn, error) {
	s.calls = append(s.calls, append([]types.Turn(nil), transcript...))
	s.tools = append(s.tools, toolset)
	if s.err != nil {
		return types.Turn{}, s.err
	}
	last := transcript[len(transcript)-1]
	if s.answerWith != nil {
		return types.NewAssistantTurn(s.answerWith(last)), nil
	}
	return types.NewAssistantTurn("summary of " + last.Content), nil
}

func (s *stubProvider) GetModel() string   { return "stub" }
func (s *stubProvider) GetBaseURL() string { return "" }
