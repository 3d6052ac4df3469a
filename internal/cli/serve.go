package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ppiankov/astros/internal/pipeline"
	"github.com/ppiankov/astros/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the people-in-space page over HTTP",
	Long: `Serve starts a web page with a single button. Pressing it fetches the
people in space, resolves their profiles and shows them on the page.

Example:
  astros serve
  astros serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := stderrLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Serving people in space on %s\n", serveAddr)

	srv := server.New(pipeline.NewPipeline(cfg, logger), cfg.Output.DefaultVehicle, logger)
	if err := srv.ListenAndServe(ctx, serveAddr); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
