package session

import (
	"fmt"

	"github.com/entrhq/brainstorm/pkg/types"
)

// Transcript is the ordered conversation replayed to the model on every
// call. It always starts with exactly one system turn; every later turn
// is a user or assistant turn.
type Transcript struct {
	turns []types.Turn
}

// NewTranscript starts a transcript with the given instruction block.
func NewTranscript(instructions string) *Transcript {
	return &Transcript{turns: []types.Turn{types.NewSystemTurn(instructions)}}
}

// Append adds a user or assistant turn to the end of the transcript.
func (t *Transcript) Append(turn types.Turn) error {
	if !turn.Role.Valid() {
		return fmt.Errorf("unknown role %q", turn.Role)
	}
	if turn.Role == types.RoleSystem {
		return fmt.Errorf("cannot append %q turn to transcript", turn.Role)
	}
	t.turns = append(t.turns, turn)
	return nil
}

// Turns returns a copy of the turns in order.
func (t *Transcript) Turns() []types.Turn {
	out := make([]types.Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of turns, including the system turn.
func (t *Transcript) Len() int {
	return len(t.turns)
}

