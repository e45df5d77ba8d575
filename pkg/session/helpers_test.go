package session

import (
	"context"
	"fmt"

	"github.com/entrhq/brainstorm/pkg/llm"
	"github.com/entrhq/brainstorm/pkg/types"
)

// scriptedProvider answers each call in order; failOn lists 1-based call
// numbers that return an error instead.
type scriptedProvider struct {
	calls    [][]types.Turn
	toolsets []llm.Toolset
	failOn   map[int]error
	onCall   func(n int)
}

func (p *scriptedProvider) Complete(_ context.Context, transcript []types.Turn, toolset llm.Toolset) (types.Turn, error) {
	p.calls = append(p.calls, transcript)
	p.toolsets = append(p.toolsets, toolset)
	n := len(p.calls)
	if p.onCall != nil {
		p.onCall(n)
	}
	if err, ok := p.failOn[n]; ok {
		return types.Turn{}, err
	}
	last := transcript[len(transcript)-1]
	return types.NewAssistantTurn(fmt.Sprintf("reply %d to %q", n, last.Content)), nil
}

func (p *scriptedProvider) GetModel() string   { return "scripted" }
func (p *scriptedProvider) GetBaseURL() string { return "" }
