package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/internal/storage"
)

func main() {
	cfg := config.Load()

	// The terminal belongs to the game, so logs go to LOG_FILE or nowhere.
	out, closeLog, err := logger.Output(cfg, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = closeLog()
	}()
	log := logger.Setup(cfg, out)

	store := storage.NewFileStorage(cfg.DataDir, log)

	p := tea.NewProgram(NewConsoleUI(cfg, store, log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("Console exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		_ = closeLog()
		os.Exit(1)
	}
}
