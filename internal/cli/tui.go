package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ppiankov/astros/internal/pipeline"
	"github.com/ppiankov/astros/internal/tui"
	"github.com/spf13/cobra"
)

var tuiLogFile string

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal view with a load button",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write diagnostics to this file (the screen is owned by the UI)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if tuiLogFile != "" {
		f, err := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	logger := setupLogger(logOut, cfg.Output.Verbose)

	app := tui.NewApp(context.Background(), pipeline.NewPipeline(cfg, logger), cfg.Output.DefaultVehicle)
	if _, err := tea.NewProgram(app).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	if app.Err() != nil {
		return fmt.Errorf("fetch failed: %w", app.Err())
	}
	return nil
}
