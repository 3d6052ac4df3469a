package pipeline

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/ppiankov/astros/internal/model"
	"github.com/ppiankov/astros/internal/worker"
)

// JSONGetter fetches a URL and decodes its JSON body into v
type JSONGetter interface {
	GetJSON(ctx context.Context, rawURL string, v any) error
}

// Resolver turns occupants into resolved profiles, replacing
// disambiguation results with the best related page it can find
type Resolver struct {
	getter       JSONGetter
	summaryURL   string
	relatedURL   string
	relatedPages int
	keywords     []string
	concurrency  int
	logger       *slog.Logger
}

// NewResolver creates a resolver using the configured endpoints
func NewResolver(getter JSONGetter, cfg *model.Config, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}

	keywords := cfg.Resolver.Keywords
	if len(keywords) == 0 {
		keywords = model.DefaultKeywords
	}

	relatedPages := cfg.Resolver.RelatedPages
	if relatedPages <= 0 {
		relatedPages = 50
	}

	return &Resolver{
		getter:       getter,
		summaryURL:   strings.TrimRight(cfg.Sources.SummaryURL, "/"),
		relatedURL:   strings.TrimRight(cfg.Sources.RelatedURL, "/"),
		relatedPages: relatedPages,
		keywords:     keywords,
		concurrency:  cfg.Resolver.Concurrency,
		logger:       logger,
	}
}

// Resolve looks up every occupant and returns one profile per occupant.
// Direct results come first in roster order, followed by the results
// derived from disambiguation pages in discovery order. Any failed lookup
// fails the whole call.
func (r *Resolver) Resolve(ctx context.Context, occupants []model.Occupant) ([]model.ResolvedProfile, error) {
	if len(occupants) == 0 {
		return []model.ResolvedProfile{}, nil
	}

	summaries, err := worker.Map(ctx, r.concurrency, occupants, r.lookupSummary)
	if err != nil {
		return nil, err
	}

	var direct, ambiguous []model.Summary
	for _, s := range summaries {
		if s.IsDisambiguation() {
			ambiguous = append(ambiguous, s)
			continue
		}
		direct = append(direct, s)
	}

	r.logger.Debug("summaries resolved",
		"total", len(summaries),
		"direct", len(direct),
		"disambiguation", len(ambiguous),
	)

	profiles := make([]model.ResolvedProfile, 0, len(occupants))
	for _, s := range direct {
		profiles = append(profiles, model.FoundProfile(s))
	}

	if len(ambiguous) == 0 {
		return profiles, nil
	}

	derived, err := worker.Map(ctx, r.concurrency, ambiguous, r.disambiguate)
	if err != nil {
		return nil, err
	}

	return append(profiles, derived...), nil
}

// lookupSummary fetches the page summary for an occupant, merging in the vehicle
func (r *Resolver) lookupSummary(ctx context.Context, o model.Occupant) (model.Summary, error) {
	var s model.Summary
	if err := r.getter.GetJSON(ctx, r.summaryURL+"/"+url.PathEscape(o.Name), &s); err != nil {
		return model.Summary{}, err
	}
	s.Vehicle = o.Vehicle
	return s, nil
}

// disambiguate fetches related pages for a disambiguation summary and
// picks a substitute profile, or an unresolved placeholder
func (r *Resolver) disambiguate(ctx context.Context, s model.Summary) (model.ResolvedProfile, error) {
	var related model.RelatedResponse
	rawURL := r.relatedURL + "/" + url.PathEscape(s.Title) + "?pages=" + strconv.Itoa(r.relatedPages)
	if err := r.getter.GetJSON(ctx, rawURL, &related); err != nil {
		return model.ResolvedProfile{}, err
	}

	candidate, ok := PickCandidate(related.Pages, r.keywords)
	if !ok {
		r.logger.Debug("no space-related candidate", "title", s.Title, "candidates", len(related.Pages))
		return model.UnresolvedProfile(s), nil
	}

	r.logger.Debug("disambiguation resolved", "title", s.Title, "candidate", candidate.Title)
	candidate.Vehicle = s.Vehicle
	return model.FoundProfile(candidate), nil
}

// PickCandidate returns the first standard page whose description
// contains one of the keywords. Matching is a case-sensitive substring test.
func PickCandidate(pages []model.RelatedPage, keywords []string) (model.RelatedPage, bool) {
	for _, p := range pages {
		if p.Type == model.PageTypeStandard && p.Description != "" && containsAny(p.Description, keywords) {
			return p, true
		}
	}
	return model.RelatedPage{}, false
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
