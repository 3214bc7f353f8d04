package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"todoboard/internal/client/api"
	"todoboard/internal/client/store"
	"todoboard/internal/client/tui"
	"todoboard/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadBoardConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the board, so logs go to a file.
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{cfg.LogFile}
	zapCfg.ErrorOutputPaths = []string{cfg.LogFile}
	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("board: logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	todoStore := store.New(api.NewClient(cfg.APIURL, cfg.RequestTimeout))
	p := tea.NewProgram(tui.New(ctx, todoStore), tea.WithAltScreen())

	unsubscribe := todoStore.Subscribe(func(state store.State) {
		p.Send(tui.StateMsg(state))
	})
	defer unsubscribe()

	logger.Info("starting board", zap.String("api_url", cfg.APIURL))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	return nil
}
