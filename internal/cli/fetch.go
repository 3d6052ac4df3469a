package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/ppiankov/astros/internal/model"
	"github.com/ppiankov/astros/internal/pipeline"
	"github.com/ppiankov/astros/internal/render"
	"github.com/spf13/cobra"
)

var (
	outFormat string
	outPath   string
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the people in space once and render their profiles",
	Long: `Fetch runs the full lookup once:
- Retrieve the current roster of people in space
- Look up each person's Wikipedia summary
- Resolve disambiguation pages through related pages
- Render the profiles as text, HTML, Markdown or JSON

Example:
  astros fetch
  astros fetch --format html --out people.html
  astros fetch --format json --concurrency 4`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&outFormat, "format", "f", string(render.FormatText), "output format (text, html, md, json)")
	fetchCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default: stdout)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := stderrLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return fetchTo(ctx, pipeline.NewPipeline(cfg, logger), cmd.OutOrStdout(), cmd.ErrOrStderr(), outFormat, outPath, cfg.Output)
}

// fetchTo runs the pipeline once, writing to path or, when empty, to stdout.
// The confirmation banner goes to stderr when out.Verbose is set.
func fetchTo(ctx context.Context, p *pipeline.Pipeline, stdout, stderr io.Writer, format, path string, out model.OutputConfig) (err error) {
	w := stdout
	if path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("create output file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close output file: %w", closeErr)
			}
		}()
		w = f
	}

	sink, err := render.New(format, w, out.DefaultVehicle)
	if err != nil {
		return err
	}

	err = p.Run(ctx, sink, func() {
		if out.Verbose && path != "" {
			fmt.Fprintf(stderr, "✓ Wrote %s: %s\n", format, path)
		}
	})
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}
	return nil
}
