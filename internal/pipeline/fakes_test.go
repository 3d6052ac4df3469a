package pipeline

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ppiankov/astros/internal/model"
)

// fakeServices serves the roster, summary and related endpoints from
// canned JSON bodies. Missing entries answer 404.
type fakeServices struct {
	server *httptest.Server

	roster   string
	summary  map[string]string
	related  map[string]string
	failWith map[string]int // path -> status code

	rosterCalls  atomic.Int32
	summaryCalls atomic.Int32
	relatedCalls atomic.Int32
	lastPagesArg atomic.Value
}

func newFakeServices(t *testing.T, roster string) *fakeServices {
	t.Helper()

	f := &fakeServices{
		roster:   roster,
		summary:  make(map[string]string),
		related:  make(map[string]string),
		failWith: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/astros.json", func(w http.ResponseWriter, r *http.Request) {
		f.rosterCalls.Add(1)
		f.write(w, r.URL.Path, f.roster, true)
	})
	mux.HandleFunc("/summary/", func(w http.ResponseWriter, r *http.Request) {
		f.summaryCalls.Add(1)
		name := strings.TrimPrefix(r.URL.Path, "/summary/")
		body, ok := f.summary[name]
		f.write(w, r.URL.Path, body, ok)
	})
	mux.HandleFunc("/related/", func(w http.ResponseWriter, r *http.Request) {
		f.relatedCalls.Add(1)
		f.lastPagesArg.Store(r.URL.Query().Get("pages"))
		title := strings.TrimPrefix(r.URL.Path, "/related/")
		body, ok := f.related[title]
		f.write(w, r.URL.Path, body, ok)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeServices) write(w http.ResponseWriter, path, body string, ok bool) {
	if code, fail := f.failWith[path]; fail {
		w.WriteHeader(code)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = fmt.Fprint(w, body)
}

func (f *fakeServices) config() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Sources.RosterURL = f.server.URL + "/astros.json"
	cfg.Sources.SummaryURL = f.server.URL + "/summary"
	cfg.Sources.RelatedURL = f.server.URL + "/related/"
	return cfg
}

func standardSummary(title, description string) string {
	return fmt.Sprintf(`{
		"type": "standard",
		"title": %q,
		"description": %q,
		"extract": "Extract for %s",
		"thumbnail": {"source": "https://upload.example/%s.jpg"},
		"content_urls": {"desktop": {"page": "https://en.wikipedia.org/wiki/%s"}}
	}`, title, description, title, title, title)
}

func disambiguationSummary(title string) string {
	return fmt.Sprintf(`{
		"type": "disambiguation",
		"title": %q,
		"extract": "%s may refer to:",
		"content_urls": {"desktop": {"page": "https://en.wikipedia.org/wiki/%s"}}
	}`, title, title, title)
}
