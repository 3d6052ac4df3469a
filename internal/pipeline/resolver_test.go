package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ppiankov/astros/internal/model"
)

func newTestResolver(f *fakeServices) *Resolver {
	cfg := f.config()
	return NewResolver(NewFetcher(cfg.HTTP), cfg, nil)
}

func TestResolve_AllStandard(t *testing.T) {
	f := newFakeServices(t, "")
	f.summary["Oleg Kononenko"] = standardSummary("Oleg Kononenko", "Russian cosmonaut")
	f.summary["Nikolai Chub"] = standardSummary("Nikolai Chub", "Russian cosmonaut")
	f.summary["Tracy Caldwell Dyson"] = standardSummary("Tracy Caldwell Dyson", "American chemist and astronaut")

	occupants := []model.Occupant{
		{Name: "Oleg Kononenko", Vehicle: "ISS"},
		{Name: "Nikolai Chub", Vehicle: "Soyuz"},
		{Name: "Tracy Caldwell Dyson", Vehicle: "ISS"},
	}

	profiles, err := newTestResolver(f).Resolve(context.Background(), occupants)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(profiles) != len(occupants) {
		t.Fatalf("expected %d profiles, got %d", len(occupants), len(profiles))
	}
	for i, o := range occupants {
		p := profiles[i]
		if !p.IsFound() {
			t.Errorf("profiles[%d] not found", i)
		}
		if p.Title != o.Name {
			t.Errorf("profiles[%d].Title = %q, want %q", i, p.Title, o.Name)
		}
		if p.Vehicle != o.Vehicle {
			t.Errorf("profiles[%d].Vehicle = %q, want %q", i, p.Vehicle, o.Vehicle)
		}
	}
	if got := f.relatedCalls.Load(); got != 0 {
		t.Errorf("expected no related lookups, got %d", got)
	}
}

func TestResolve_DisambiguationPicksFirstSpaceKeyword(t *testing.T) {
	f := newFakeServices(t, "")
	f.summary["Alexander Grebenkin"] = disambiguationSummary("Alexander Grebenkin")
	f.summary["Jeanette Epps"] = standardSummary("Jeanette Epps", "American aerospace engineer and NASA astronaut")
	f.related["Alexander Grebenkin"] = `{"pages":[
		{"type":"standard","title":"Alexander Grebenkin (footballer)","description":"Russian footballer"},
		{"type":"disambiguation","title":"Grebenkin","description":"space surname"},
		{"type":"standard","title":"Mystery Page"},
		{"type":"standard","title":"Alexander_Grebenkin_(cosmonaut)","description":"famous space cosmonaut","extract":"Alexander Grebenkin is..."},
		{"type":"standard","title":"Other Grebenkin","description":"Soviet cosmonaut trainee"}
	]}`

	occupants := []model.Occupant{
		{Name: "Alexander Grebenkin", Vehicle: "ISS"},
		{Name: "Jeanette Epps", Vehicle: "ISS"},
	}

	profiles, err := newTestResolver(f).Resolve(context.Background(), occupants)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}

	// Direct results come before disambiguation-derived ones
	if profiles[0].Title != "Jeanette Epps" {
		t.Errorf("expected direct result first, got %q", profiles[0].Title)
	}

	derived := profiles[1]
	if !derived.IsFound() {
		t.Fatalf("expected found profile, got %+v", derived)
	}
	if derived.Title != "Alexander_Grebenkin_(cosmonaut)" {
		t.Errorf("unexpected candidate: %q", derived.Title)
	}
	if derived.Vehicle != "ISS" {
		t.Errorf("expected vehicle carried over, got %q", derived.Vehicle)
	}
	if got, _ := f.lastPagesArg.Load().(string); got != "50" {
		t.Errorf("expected pages=50, got %q", got)
	}
}

func TestResolve_DisambiguationUnresolved(t *testing.T) {
	f := newFakeServices(t, "")
	f.summary["Li Cong"] = disambiguationSummary("Li Cong")
	f.related["Li Cong"] = `{"pages":[
		{"type":"standard","title":"Li Cong (painter)","description":"Chinese painter"},
		{"type":"standard","title":"Li Cong (swimmer)","description":"Astronaut-themed swimmer"}
	]}`

	profiles, err := newTestResolver(f).Resolve(context.Background(), []model.Occupant{{Name: "Li Cong", Vehicle: "Tiangong"}})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}

	p := profiles[0]
	if p.IsFound() {
		t.Fatalf("expected unresolved profile, got %+v", p)
	}
	if p.PersonName != "Li Cong" {
		t.Errorf("unexpected person name: %q", p.PersonName)
	}
	if p.DisambiguationLink != "https://en.wikipedia.org/wiki/Li Cong" {
		t.Errorf("unexpected link: %q", p.DisambiguationLink)
	}
}

func TestResolve_OrderingAcrossMultipleDisambiguations(t *testing.T) {
	f := newFakeServices(t, "")
	f.summary["A"] = disambiguationSummary("A")
	f.summary["B"] = standardSummary("B", "NASA astronaut")
	f.summary["C"] = disambiguationSummary("C")
	f.summary["D"] = standardSummary("D", "cosmonaut")
	f.related["A"] = `{"pages":[{"type":"standard","title":"A (astronaut)","description":"astronaut"}]}`
	f.related["C"] = `{"pages":[]}`

	occupants := []model.Occupant{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
	profiles, err := newTestResolver(f).Resolve(context.Background(), occupants)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	got := make([]string, len(profiles))
	for i, p := range profiles {
		if p.IsFound() {
			got[i] = p.Title
		} else {
			got[i] = "unresolved:" + p.PersonName
		}
	}
	expected := []string{"B", "D", "A (astronaut)", "unresolved:C"}
	if fmt.Sprint(got) != fmt.Sprint(expected) {
		t.Errorf("order = %v, want %v", got, expected)
	}
}

func TestResolve_NonStandardTypeKept(t *testing.T) {
	f := newFakeServices(t, "")
	f.summary["Solo"] = `{"type":"no-extract","title":"Solo"}`

	profiles, err := newTestResolver(f).Resolve(context.Background(), []model.Occupant{{Name: "Solo", Vehicle: "ISS"}})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Title != "Solo" {
		t.Errorf("expected Solo kept as direct result, got %+v", profiles)
	}
}

func TestResolve_SummaryFailureAbortsAll(t *testing.T) {
	f := newFakeServices(t, "")
	f.summary["Good"] = standardSummary("Good", "astronaut")
	f.summary["Bad"] = standardSummary("Bad", "astronaut")
	f.failWith["/summary/Bad"] = http.StatusInternalServerError

	profiles, err := newTestResolver(f).Resolve(context.Background(), []model.Occupant{{Name: "Good"}, {Name: "Bad"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if profiles != nil {
		t.Errorf("expected no partial output, got %v", profiles)
	}

	var fe *FetchError
	if !errors.As(err, &fe) || fe.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected FetchError with 500, got %v", err)
	}
}

func TestResolve_RelatedFailureAbortsAll(t *testing.T) {
	f := newFakeServices(t, "")
	f.summary["Good"] = standardSummary("Good", "astronaut")
	f.summary["Amb"] = disambiguationSummary("Amb")
	f.failWith["/related/Amb"] = http.StatusInternalServerError

	profiles, err := newTestResolver(f).Resolve(context.Background(), []model.Occupant{{Name: "Good"}, {Name: "Amb"}})
	if !IsFetchFailure(err) {
		t.Fatalf("expected fetch failure, got %v", err)
	}
	if profiles != nil {
		t.Errorf("expected no partial output, got %v", profiles)
	}
}

func TestResolve_MalformedRelated(t *testing.T) {
	f := newFakeServices(t, "")
	f.summary["Amb"] = disambiguationSummary("Amb")
	f.related["Amb"] = `{"pages": "nope"}`

	_, err := newTestResolver(f).Resolve(context.Background(), []model.Occupant{{Name: "Amb"}})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestResolve_Empty(t *testing.T) {
	f := newFakeServices(t, "")

	profiles, err := newTestResolver(f).Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("expected no profiles, got %d", len(profiles))
	}
	if f.summaryCalls.Load() != 0 || f.relatedCalls.Load() != 0 {
		t.Error("expected no lookups for empty roster")
	}
}

func TestPickCandidate(t *testing.T) {
	tests := []struct {
		name  string
		pages []model.RelatedPage
		want  string
		found bool
	}{
		{
			name:  "empty",
			pages: nil,
		},
		{
			name: "case sensitive",
			pages: []model.RelatedPage{
				{Type: model.PageTypeStandard, Title: "upper", Description: "Space engineer"},
				{Type: model.PageTypeStandard, Title: "nasa", Description: "former nasa employee"},
			},
		},
		{
			name: "non standard skipped",
			pages: []model.RelatedPage{
				{Type: model.PageTypeDisambiguation, Title: "amb", Description: "astronaut"},
				{Type: model.PageTypeStandard, Title: "ok", Description: "NASA flight engineer"},
			},
			want:  "ok",
			found: true,
		},
		{
			name: "first match wins",
			pages: []model.RelatedPage{
				{Type: model.PageTypeStandard, Title: "first", Description: "Soviet cosmonaut"},
				{Type: model.PageTypeStandard, Title: "second", Description: "American astronaut"},
			},
			want:  "first",
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PickCandidate(tt.pages, model.DefaultKeywords)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if got.Title != tt.want {
				t.Errorf("title = %q, want %q", got.Title, tt.want)
			}
		})
	}
}
