// Package tokenizer estimates the size of a transcript in model tokens.
package tokenizer

import (
	"fmt"

	"github.com/entrhq/brainstorm/pkg/types"
	"github.com/pkoukk/tiktoken-go"
)

const (
	// DefaultEncoding is the BPE encoding used by the gpt-4o family.
	DefaultEncoding = "cl100k_base"

	// perTurnOverhead approximates the role and separator tokens the chat
	// format adds around every message.
	perTurnOverhead = 4

	// charsPerToken is the fallback ratio when no encoding is loaded.
	charsPerToken = 4
)

// Tokenizer counts tokens with a tiktoken encoding. The zero value counts
// with a character-based estimate.
type Tokenizer struct {
	enc *tiktoken.Tiktoken
}

// New loads the default encoding. tiktoken may need to download the
// encoding on first use; on failure callers can keep the returned error
// and fall back to Estimate.
func New() (*Tokenizer, error) {
	enc, err := tiktoken.GetEncoding(DefaultEncoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s encoding: %w", DefaultEncoding, err)
	}
	return &Tokenizer{enc: enc}, nil
}

// Estimate returns a tokenizer that never loads an encoding.
func Estimate() *Tokenizer {
	return &Tokenizer{}
}

// CountText returns the number of tokens in text.
func (t *Tokenizer) CountText(text string) int {
	if t == nil || t.enc == nil {
		return (len(text) + charsPerToken - 1) / charsPerToken
	}
	return len(t.enc.Encode(text, nil, nil))
}

// CountTurns returns the token count of a whole transcript.
func (t *Tokenizer) CountTurns(turns []types.Turn) int {
	total := 0
	for _, turn := range turns {
		total += perTurnOverhead + t.CountText(turn.Content)
	}
	return total
}
