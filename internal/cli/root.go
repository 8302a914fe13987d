package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/faizmokh/hari/internal/config"
	"github.com/faizmokh/hari/internal/files"
	"github.com/faizmokh/hari/internal/logging"
	"github.com/faizmokh/hari/internal/prompt"
	"github.com/faizmokh/hari/internal/reports"
	"github.com/faizmokh/hari/internal/ui"
	"github.com/faizmokh/hari/internal/version"
)

// app carries the collaborators shared by every command.
type app struct {
	manager *files.Manager
	cfg     *config.Config
	logger  *log.Logger
}

// newRootCommand creates the top-level Cobra command to host subcommands and the interactive flow.
func newRootCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		fileFlag  string
		startFlag string
		endFlag   string
		levelFlag string
	)

	cmd := &cobra.Command{
		Use:     "hari",
		Short:   "Count trigger days per entry from an event workbook.",
		Long:    "hari pairs dis:/res: markers in a spreadsheet of events into closed date intervals per entry.\nRun without a subcommand to pick the window and workbook interactively.",
		Version: version.Info(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if levelFlag == "" {
				return nil
			}
			lvl, err := log.ParseLevel(levelFlag)
			if err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}
			a.logger.SetLevel(lvl)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := prompt.RunDateRange(ctx, startFlag, endFlag)
			if err != nil {
				if errors.Is(err, prompt.ErrCancelled) {
					return fmt.Errorf("invalid date range provided")
				}
				return err
			}

			path := fileFlag
			if path == "" {
				dir, err := os.Getwd()
				if err != nil {
					return err
				}
				path, err = prompt.RunFilePicker(ctx, dir)
				if err != nil {
					if errors.Is(err, prompt.ErrCancelled) {
						return fmt.Errorf("no workbook selected")
					}
					return err
				}
			}

			load := func(ctx context.Context) ([]reports.Result, error) {
				wb, err := readWorkbook(ctx, a, path)
				if err != nil {
					return nil, err
				}
				return reports.ComputeAll(ctx, wb.Entities, &window)
			}

			m := ui.NewModel(ctx, path, load)
			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&levelFlag, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	cmd.Flags().StringVar(&fileFlag, "file", "", "Workbook to read (default: pick interactively)")
	cmd.Flags().StringVar(&startFlag, "start", "", "Prefill the window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endFlag, "end", "", "Prefill the window end (YYYY-MM-DD)")

	cmd.AddCommand(
		newReportCommand(ctx, a),
		newEntriesCommand(ctx, a),
		newDaysCommand(ctx, a),
		newTemplateCommand(a),
		newConfigCommand(a),
		newVersionCommand(),
	)

	return cmd
}

func newApp() (*app, error) {
	manager, err := files.NewManager("")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(manager.ConfigPath())
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return &app{manager: manager, cfg: cfg, logger: logger}, nil
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	cmd := newRootCommand(ctx, a)
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/hari/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
