package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/scenario"
)

func main() {
	os.Exit(run(context.Background(), config.Load(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run plays one game and returns the process exit code. An optional
// argument overrides the configured scenario.
func run(ctx context.Context, cfg *config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(stderr, "Usage: adventure [scenario]\n")
		return 1
	}

	logOut, closeLog, err := logger.Output(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
		return 1
	}
	defer func() {
		_ = closeLog()
	}()
	log := logger.Setup(cfg, logOut)

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	path := cfg.ScenarioPath(name)

	s, err := scenario.Load(path)
	if err != nil {
		log.Error("Failed to load scenario", "path", path, "error", err)
		fmt.Fprintf(stderr, "Failed to load scenario: %v\n", err)
		return 1
	}
	w, err := scenario.Build(s)
	if err != nil {
		log.Error("Invalid scenario", "path", path, "error", err)
		fmt.Fprintf(stderr, "Invalid scenario %s:\n%v\n", path, err)
		return 1
	}

	e := engine.New(w, stdout,
		engine.WithRoller(actor.NewRandomRoller(cfg.Seed)),
		engine.WithLogger(log),
		engine.WithWidth(cfg.TextWidth),
	)
	outcome, err := e.Run(ctx, stdin)
	if err != nil {
		logger.WithError(log, err).Error("Game stopped")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log.Info("Game finished", "outcome", string(outcome), "score", e.Player().Score())
	return 0
}
