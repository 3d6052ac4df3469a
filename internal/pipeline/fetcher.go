package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ppiankov/astros/internal/model"
	"github.com/ppiankov/astros/internal/util"
)

// Fetcher retrieves and decodes JSON documents
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
}

// NewFetcher creates a new Fetcher with the given configuration
func NewFetcher(cfg model.HTTPConfig) *Fetcher {
	maxBytes := cfg.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = 2_000_000
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  maxBytes,
	}
}

// GetJSON fetches rawURL and decodes the body into v
func (f *Fetcher) GetJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &FetchError{URL: rawURL, Err: fmt.Errorf("create request: %w", err)}
	}

	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return &FetchError{URL: rawURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &FetchError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return &FetchError{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &ParseError{URL: rawURL, Err: err}
	}

	return nil
}

var errMissingPeople = errors.New("response has no people list")

// FetchRoster retrieves the people currently in space
func (f *Fetcher) FetchRoster(ctx context.Context, rosterURL string) ([]model.Occupant, error) {
	var roster model.Roster
	if err := f.GetJSON(ctx, rosterURL, &roster); err != nil {
		return nil, err
	}
	if roster.People == nil {
		return nil, &ParseError{URL: rosterURL, Err: errMissingPeople}
	}
	return roster.People, nil
}
