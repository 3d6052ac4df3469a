package render

import (
	"encoding/json"
	"io"

	"github.com/ppiankov/astros/internal/model"
)

type jsonDocument struct {
	Profiles []model.ResolvedProfile `json:"profiles"`
	Error    string                  `json:"error,omitempty"`
}

// JSONSink writes profiles as an indented JSON document
type JSONSink struct {
	w              io.Writer
	defaultVehicle string
}

// NewJSONSink creates a JSON sink writing to w
func NewJSONSink(w io.Writer, defaultVehicle string) *JSONSink {
	return &JSONSink{w: w, defaultVehicle: defaultVehicle}
}

// Render writes the profiles, filling in the default vehicle where missing
func (s *JSONSink) Render(profiles []model.ResolvedProfile) error {
	out := make([]model.ResolvedProfile, len(profiles))
	for i, p := range profiles {
		if p.IsFound() {
			p.Vehicle = p.VehicleOr(s.defaultVehicle)
		}
		out[i] = p
	}
	return s.write(jsonDocument{Profiles: out})
}

// RenderError writes a document carrying only the failure message
func (s *JSONSink) RenderError(err error) error {
	return s.write(jsonDocument{Profiles: []model.ResolvedProfile{}, Error: FailureMessage})
}

func (s *JSONSink) write(doc jsonDocument) error {
	return writeAll(s.w, func(buf io.Writer) error {
		enc := json.NewEncoder(buf)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	})
}
