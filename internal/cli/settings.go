package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ppiankov/astros/internal/model"
	"github.com/spf13/viper"
)

// loadConfig layers config file, environment and flags over the defaults
func loadConfig() (*model.Config, error) {
	return decodeConfig(viper.GetViper())
}

// configureEnv maps ASTROS_* variables onto config keys, e.g.
// ASTROS_SOURCES_ROSTER_URL -> sources.roster_url
func configureEnv(v *viper.Viper) {
	v.SetEnvPrefix("ASTROS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// registerDefaults makes every config key known to v. Unmarshal only
// consults the environment for keys viper already knows about.
func registerDefaults(v *viper.Viper, cfg *model.Config) {
	defaults := map[string]any{
		"http.timeout":           cfg.HTTP.Timeout,
		"http.user_agent":        cfg.HTTP.UserAgent,
		"http.max_body_bytes":    cfg.HTTP.MaxBodyBytes,
		"http.http_proxy":        cfg.HTTP.HTTPProxy,
		"http.https_proxy":       cfg.HTTP.HTTPSProxy,
		"http.no_proxy":          cfg.HTTP.NoProxy,
		"sources.roster_url":     cfg.Sources.RosterURL,
		"sources.summary_url":    cfg.Sources.SummaryURL,
		"sources.related_url":    cfg.Sources.RelatedURL,
		"resolver.related_pages": cfg.Resolver.RelatedPages,
		"resolver.keywords":      cfg.Resolver.Keywords,
		"resolver.concurrency":   cfg.Resolver.Concurrency,
		"output.verbose":         cfg.Output.Verbose,
		"output.default_vehicle": cfg.Output.DefaultVehicle,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

func decodeConfig(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()
	registerDefaults(v, cfg)
	// A configured list replaces the defaults rather than merging into them
	cfg.Resolver.Keywords = nil
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.Resolver.Keywords) == 0 {
		cfg.Resolver.Keywords = append([]string(nil), model.DefaultKeywords...)
	}
	return cfg, nil
}

// setupLogger creates the diagnostic logger. Warnings and errors are
// shown by default, everything with --verbose.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func stderrLogger(cfg *model.Config) *slog.Logger {
	return setupLogger(os.Stderr, cfg.Output.Verbose)
}
