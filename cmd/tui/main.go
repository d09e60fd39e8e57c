package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/splitledger/internal/adapter/idgen"
	"github.com/iho/splitledger/internal/adapter/tui"
	"github.com/iho/splitledger/internal/infrastructure/config"
	"github.com/iho/splitledger/internal/infrastructure/logger"
	"github.com/iho/splitledger/internal/infrastructure/seed"
	"github.com/iho/splitledger/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		seedFile string
		logFile  string
	)

	cmd := &cobra.Command{
		Use:           "splitledger-tui",
		Short:         "Split bills with friends in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if cmd.Flags().Changed("seed") {
				cfg.SeedFile = seedFile
			}

			// the terminal belongs to the UI, so logs only go to a file
			log := zerolog.Nop()
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				log = logger.NewWithWriter(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, f)
			}

			model, err := newModel(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&seedFile, "seed", "", "YAML or JSON file with the starting friends (overrides SEED_FILE)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file")

	return cmd
}

func newModel(ctx context.Context, cfg *config.Config, log zerolog.Logger) (tui.Model, error) {
	ledger, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return tui.Model{}, fmt.Errorf("load seed: %w", err)
	}

	ledgerUC := usecase.NewLedgerUseCase(ledger, idgen.NewULIDGenerator(), nil, log)

	return tui.NewModel(ctx, ledgerUC, tui.Config{
		DefaultAvatar: cfg.DefaultAvatar,
		Currency:      cfg.CurrencySymbol,
		Styles:        tui.DefaultStyles(),
	}), nil
}
