package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/entrhq/brainstorm/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepAppendsUserAndAssistantTurns(t *testing.T) {
	provider := &scriptedProvider{}
	s := New("rules", provider, nil)

	reply, err := s.Step(context.Background(), "picnic ideas")
	require.NoError(t, err)

	assert.Equal(t, types.RoleAssistant, reply.Role)
	assert.Equal(t, []types.Turn{
		types.NewSystemTurn("rules"),
		types.NewUserTurn("picnic ideas"),
		reply,
	}, s.Turns())
}

func TestStepSendsFullTranscript(t *testing.T) {
	provider := &scriptedProvider{}
	s := New("rules", provider, nil)

	_, err := s.Step(context.Background(), "first")
	require.NoError(t, err)
	_, err = s.Step(context.Background(), "second")
	require.NoError(t, err)

	require.Len(t, provider.calls, 2)
	assert.Len(t, provider.calls[0], 2)
	assert.Len(t, provider.calls[1], 4)
	assert.Equal(t, types.RoleSystem, provider.calls[1][0].Role)
	assert.Equal(t, "second", provider.calls[1][3].Content)
}

func TestTranscriptLengthAfterNTurns(t *testing.T) {
	for _, n := range []int{0, 1, 3, 10} {
		t.Run(fmt.Sprintf("%d turns", n), func(t *testing.T) {
			s := New("rules", &scriptedProvider{}, nil)
			for i := 0; i < n; i++ {
				_, err := s.Step(context.Background(), fmt.Sprintf("input %d", i))
				require.NoError(t, err)
			}
			assert.Equal(t, 1+2*n, s.Len())
		})
	}
}

func TestStepErrorKeepsUnansweredUserTurn(t *testing.T) {
	serviceErr := errors.New("connection refused")
	provider := &scriptedProvider{failOn: map[int]error{2: serviceErr}}
	s := New("rules", provider, nil)

	_, err := s.Step(context.Background(), "first")
	require.NoError(t, err)
	before := s.Turns()

	_, err = s.Step(context.Background(), "second")
	assert.ErrorIs(t, err, serviceErr)

	after := s.Turns()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, types.NewUserTurn("second"), after[len(after)-1])

	_, err = s.Step(context.Background(), "third")
	require.NoError(t, err)
	assert.Len(t, provider.calls[2], 5, "the unanswered turn is replayed")
	assert.Equal(t, types.RoleUser, provider.calls[2][3].Role)
	assert.Equal(t, types.RoleUser, provider.calls[2][4].Role)
}

func TestStepPassesToolset(t *testing.T) {
	provider := &scriptedProvider{}
	toolset := &fakeToolset{}
	s := New("rules", provider, toolset)

	_, err := s.Step(context.Background(), "hi")
	require.NoError(t, err)
	assert.Same(t, toolset, provider.toolsets[0])
}
