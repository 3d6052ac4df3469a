package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ppiankov/astros/internal/model"
)

// Sink consumes the outcome of one pipeline run. RenderError follows a
// failed Render, so Render must not leave partial output behind.
type Sink interface {
	Render(profiles []model.ResolvedProfile) error
	RenderError(err error) error
}

// Pipeline orchestrates roster fetch, profile resolution and rendering
type Pipeline struct {
	fetcher   *Fetcher
	resolver  *Resolver
	rosterURL string
	logger    *slog.Logger
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	fetcher := NewFetcher(cfg.HTTP)
	return &Pipeline{
		fetcher:   fetcher,
		resolver:  NewResolver(fetcher, cfg, logger),
		rosterURL: cfg.Sources.RosterURL,
		logger:    logger,
	}
}

// Profiles fetches the roster and resolves a profile for every occupant
func (p *Pipeline) Profiles(ctx context.Context) ([]model.ResolvedProfile, error) {
	start := time.Now()

	occupants, err := p.fetcher.FetchRoster(ctx, p.rosterURL)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	p.logger.Debug("roster fetched", "occupants", len(occupants))

	profiles, err := p.resolver.Resolve(ctx, occupants)
	if err != nil {
		return nil, fmt.Errorf("resolve profiles: %w", err)
	}

	p.logger.Debug("profiles resolved", "profiles", len(profiles), "elapsed", time.Since(start))
	return profiles, nil
}

// Run executes one triggered run: profiles are handed to sink, or sink is
// told about the failure. onFinish, if set, always runs once afterwards.
func (p *Pipeline) Run(ctx context.Context, sink Sink, onFinish func()) (err error) {
	if onFinish != nil {
		defer onFinish()
	}

	profiles, err := p.Profiles(ctx)
	if err == nil {
		if err = sink.Render(profiles); err != nil {
			err = fmt.Errorf("render: %w", err)
		}
	}

	if err != nil {
		p.logger.Error("pipeline failed", "error", err)
		if sinkErr := sink.RenderError(err); sinkErr != nil {
			p.logger.Error("render error state", "error", sinkErr)
		}
		return err
	}

	return nil
}
