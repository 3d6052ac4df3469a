package render

import (
	"io"

	"github.com/nao1215/markdown"
	"github.com/ppiankov/astros/internal/model"
)

// MarkdownSink writes profiles as a Markdown document
type MarkdownSink struct {
	w              io.Writer
	defaultVehicle string
}

// NewMarkdownSink creates a Markdown sink writing to w
func NewMarkdownSink(w io.Writer, defaultVehicle string) *MarkdownSink {
	return &MarkdownSink{w: w, defaultVehicle: defaultVehicle}
}

// Render writes a section per profile
func (s *MarkdownSink) Render(profiles []model.ResolvedProfile) error {
	return writeAll(s.w, func(buf io.Writer) error {
		md := markdown.NewMarkdown(buf)
		md.H1("People in Space")
		md.PlainText("")

		if len(profiles) == 0 {
			md.PlainText("Nobody is in space right now.")
			return md.Build()
		}

		for _, p := range views(profiles, s.defaultVehicle) {
			if p.IsFound() {
				s.writeFound(md, p)
			} else {
				s.writeUnresolved(md, p)
			}
		}
		return md.Build()
	})
}

func (s *MarkdownSink) writeFound(md *markdown.Markdown, p profileView) {
	md.H2(p.DisplayTitle())
	md.PlainText("")
	if p.ThumbnailURL != "" {
		md.PlainText(markdown.Image(p.DisplayTitle(), p.ThumbnailURL))
		md.PlainText("")
	}
	md.PlainText(markdown.Bold(p.VehicleLabel))
	md.PlainText("")
	if p.Description != "" {
		md.PlainText(markdown.Italic(p.Description))
		md.PlainText("")
	}
	if p.Extract != "" {
		md.PlainText(p.Extract)
		md.PlainText("")
	}
}

func (s *MarkdownSink) writeUnresolved(md *markdown.Markdown, p profileView) {
	md.H2("Results unavailable for " + p.PersonName)
	md.PlainText("")
	if p.DisambiguationLink != "" {
		md.PlainText("For more results, try clicking " + markdown.Link("here", p.DisambiguationLink))
		md.PlainText("")
	}
}

// RenderError writes the failure notice
func (s *MarkdownSink) RenderError(err error) error {
	return writeAll(s.w, func(buf io.Writer) error {
		md := markdown.NewMarkdown(buf)
		md.H1("People in Space")
		md.PlainText("")
		md.Caution(FailureMessage)
		return md.Build()
	})
}
