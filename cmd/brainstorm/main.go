// Package main provides the brainstorm command: an interactive terminal
// session with an assistant that helps develop ideas.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/brainstorm/pkg/config"
	"github.com/entrhq/brainstorm/pkg/llm/openai"
	"github.com/entrhq/brainstorm/pkg/logging"
	"github.com/entrhq/brainstorm/pkg/session"
	"github.com/entrhq/brainstorm/pkg/tools"
	"github.com/entrhq/brainstorm/pkg/types"
)

func main() {
	settings, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := finish(os.Stdout, run(ctx, settings)); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// finish turns the session result into the process outcome. An interrupt
// is a normal end: it prints the goodbye and reports no error.
func finish(w io.Writer, err error) error {
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, "\n\nSession terminated by user. Goodbye!")
		return nil
	}
	return err
}

// run wires the provider, tools and session loop together and blocks
// until the session ends.
func run(ctx context.Context, settings *config.Settings) error {
	logger, err := logging.NewLogger("main")
	if err != nil {
		logger.Warnf("Failed to initialize main logger, using stderr fallback: %v", err)
	}
	defer logger.Close()

	var loop *session.Loop
	provider, err := config.BuildProvider(settings, openai.WithEventHandler(func(event *types.Event) {
		if loop != nil {
			loop.HandleEvent(event)
		}
	}))
	if err != nil {
		return err
	}

	logger.Infof("Starting session %s with model %s (config: %s)", logger.SessionID(), provider.GetModel(), settings.ConfigPath)

	dispatcher := tools.NewDispatcher(config.SummarizationProvider(settings, provider))
	loop = session.NewLoop(session.New(composeInstructions(), provider, dispatcher))

	return loop.Run(ctx)
}
