package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/entrhq/brainstorm/pkg/types"
)

// Loop is the interactive read/complete/print cycle over a Session.
type Loop struct {
	session *Session
	reader  *bufio.Reader
	writer  io.Writer
	styles  styles
}

// LoopOption is a function that configures a Loop.
type LoopOption func(*Loop)

// WithReader sets the input source (default is os.Stdin).
func WithReader(r io.Reader) LoopOption {
	return func(l *Loop) {
		l.reader = bufio.NewReader(r)
	}
}

// WithWriter sets a custom output writer (default is os.Stdout).
func WithWriter(w io.Writer) LoopOption {
	return func(l *Loop) {
		l.writer = w
	}
}

// NewLoop creates a loop for the given session.
func NewLoop(s *Session, opts ...LoopOption) *Loop {
	l := &Loop{
		session: s,
		reader:  bufio.NewReader(os.Stdin),
		writer:  os.Stdout,
	}

	for _, opt := range opts {
		opt(l)
	}

	l.styles = newStyles(l.writer)
	return l
}

// IsStopCommand reports whether input ends the session. The line must be
// exactly exit or quit in any case; surrounding spaces make it free text.
func IsStopCommand(input string) bool {
	return strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit")
}

// Run prints the banner and processes input until the user types exit or
// quit, input ends, or ctx is canceled. Completion errors are printed and
// the loop keeps going. Run returns nil on a normal end and ctx.Err() on
// cancellation.
func (l *Loop) Run(ctx context.Context) error {
	l.printBanner()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(l.writer, "\n"+l.styles.user.Render("You:")+" ")

		input, err := l.readLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.printGoodbye()
				return nil
			}
			return err
		}

		if IsStopCommand(input) {
			l.printGoodbye()
			return nil
		}

		reply, err := l.session.Step(ctx, input)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			fmt.Fprintf(l.writer, "\n%s\n", l.styles.err.Render("An error occurred: "+err.Error()))
			continue
		}

		fmt.Fprintf(l.writer, "\n%s %s\n", l.styles.assistant.Render("Brainstorming Assistant:"), reply.Content)
	}
}

// HandleEvent renders tool activity reported by the provider.
func (l *Loop) HandleEvent(event *types.Event) {
	switch event.Type {
	case types.EventTypeToolCall:
		fmt.Fprintf(l.writer, "\n%s\n", l.styles.tool.Render("🔧 Tool: "+event.ToolName))
	case types.EventTypeToolResultError:
		fmt.Fprintf(l.writer, "%s\n", l.styles.err.Render(fmt.Sprintf("❌ Tool Error (%s): %v", event.ToolName, event.Error)))
	case types.EventTypeTokenUsage:
		debugLog.Debugf("Token usage: prompt=%d completion=%d total=%d",
			event.TokenUsage.PromptTokens, event.TokenUsage.CompletionTokens, event.TokenUsage.TotalTokens)
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine reads one line without blocking cancellation. A final line
// without a trailing newline is returned before io.EOF.
func (l *Loop) readLine(ctx context.Context) (string, error) {
	result := make(chan lineResult, 1)
	go func() {
		line, err := l.reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			result <- lineResult{err: err}
			return
		}
		result <- lineResult{line: strings.TrimRight(line, "\r\n")}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-result:
		if r.err != nil && !errors.Is(r.err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", r.err)
		}
		return r.line, r.err
	}
}

func (l *Loop) printBanner() {
	fmt.Fprintf(l.writer, "\n\n%s\n", l.styles.title.Render("==== Brainstorming Assistant ===="))
	fmt.Fprintln(l.writer, l.styles.hint.Render("Type 'exit' or 'quit' to end the session."))
	fmt.Fprintln(l.writer, "Let's start brainstorming! What topic would you like to explore today?")
}

func (l *Loop) printGoodbye() {
	fmt.Fprintf(l.writer, "\n%s\n", "Thank you for brainstorming with me! Goodbye!")
}
