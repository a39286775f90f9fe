package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/usagedeck/usagedeck/internal/config"
	"github.com/usagedeck/usagedeck/internal/tui"
)

func runDashboard(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	program := tea.NewProgram(tui.NewModel(cfg), tea.WithAltScreen())

	// Config edits land in the running program without a restart.
	if err := config.Watch(ctx, config.ConfigPath(), func(next config.Config) {
		program.Send(tui.ConfigReloadedMsg{Config: next})
	}); err != nil {
		log.Printf("config watch disabled: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("TUI error: %v", err)
	}
}
