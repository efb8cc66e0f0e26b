package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkalita/daygrid/internal/model"
	"github.com/mkalita/daygrid/internal/storage"
	"github.com/mkalita/daygrid/internal/store"
	"github.com/mkalita/daygrid/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "daygrid failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	kv, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	st, err := store.Open(context.Background(), kv, model.DefaultTasks(cfg.DefaultTaskTitles))
	if err != nil {
		return err
	}

	program := tea.NewProgram(update.NewModelWithConfig(st, cfg))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
