// Package session runs an interactive brainstorming conversation: it keeps
// the transcript and drives the read/complete/print loop.
package session

import (
	"context"

	"github.com/entrhq/brainstorm/pkg/llm"
	"github.com/entrhq/brainstorm/pkg/logging"
	"github.com/entrhq/brainstorm/pkg/types"
)

var debugLog *logging.Logger

func init() {
	var err error
	debugLog, err = logging.NewLogger("session")
	if err != nil {
		debugLog.Warnf("Failed to initialize session logger, using stderr fallback: %v", err)
	}
}

// Session owns one transcript and the collaborators needed to extend it.
type Session struct {
	transcript *Transcript
	provider   llm.Provider
	toolset    llm.Toolset
}

// New creates a session whose transcript holds only the instructions.
// toolset may be nil, in which case the model is offered no tools.
func New(instructions string, provider llm.Provider, toolset llm.Toolset) *Session {
	return &Session{
		transcript: NewTranscript(instructions),
		provider:   provider,
		toolset:    toolset,
	}
}

// Step records input as a user turn, sends the full transcript to the
// provider and records the reply.
//
// If the provider fails, the user turn stays in the transcript and no
// assistant turn is added; the next call will replay the unanswered turn.
func (s *Session) Step(ctx context.Context, input string) (types.Turn, error) {
	if err := s.transcript.Append(types.NewUserTurn(input)); err != nil {
		return types.Turn{}, err
	}

	debugLog.Debugf("Step: %d turns in transcript", s.transcript.Len())

	reply, err := s.provider.Complete(ctx, s.transcript.Turns(), s.toolset)
	if err != nil {
		debugLog.Errorf("Completion failed, keeping unanswered user turn: %v", err)
		return types.Turn{}, err
	}

	reply = types.NewAssistantTurn(reply.Content)
	if err := s.transcript.Append(reply); err != nil {
		return types.Turn{}, err
	}
	return reply, nil
}

// Turns returns a copy of the transcript.
func (s *Session) Turns() []types.Turn {
	return s.transcript.Turns()
}

// Len returns the transcript length.
func (s *Session) Len() int {
	return s.transcript.Len()
}
