// Package render turns resolved profiles into pages, documents and
// terminal output.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/astros/internal/model"
	"github.com/ppiankov/astros/internal/pipeline"
)

// FailureMessage is shown whenever a run fails. Details go to the log.
const FailureMessage = "Something went wrong!"

// Format names an output format
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
	FormatText     Format = "text"
)

// Formats lists the supported output formats
var Formats = []Format{FormatHTML, FormatMarkdown, FormatJSON, FormatText}

// New returns the sink for the named format writing to w
func New(format string, w io.Writer, defaultVehicle string) (pipeline.Sink, error) {
	switch Format(strings.ToLower(format)) {
	case FormatHTML:
		return NewHTMLSink(w, defaultVehicle), nil
	case FormatMarkdown, "markdown":
		return NewMarkdownSink(w, defaultVehicle), nil
	case FormatJSON:
		return NewJSONSink(w, defaultVehicle), nil
	case FormatText, "":
		return NewTextSink(w, defaultVehicle), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: html, md, json, text)", format)
	}
}

// profileView is a profile prepared for display
type profileView struct {
	model.ResolvedProfile
	VehicleLabel string
}

func views(profiles []model.ResolvedProfile, defaultVehicle string) []profileView {
	out := make([]profileView, len(profiles))
	for i, p := range profiles {
		out[i] = profileView{ResolvedProfile: p, VehicleLabel: p.VehicleOr(defaultVehicle)}
	}
	return out
}

// writeAll renders into memory and writes to w only when build succeeds,
// so a failed render leaves w untouched for the error state.
func writeAll(w io.Writer, build func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := build(&buf); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
