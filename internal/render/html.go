package render

import (
	"html/template"
	"io"

	"github.com/ppiankov/astros/internal/model"
)

// Page is the data behind the people-in-space page
type Page struct {
	Trigger bool   // show the load button
	Action  string // form action for the load button
	Failed  bool
	Message string
	People  []profileView
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>People in Space</title>
</head>
<body>
<h1>People in Space</h1>
{{- if .Trigger}}
<form method="post" action="{{.Action}}" onsubmit="this.querySelector('button').textContent = 'Loading...'">
<button type="submit">View all the people in space right now</button>
</form>
{{- end}}
<div id="people">
{{- if .Failed}}
<h3>{{.Message}}</h3>
{{- end}}
{{- range .People}}
{{- if .IsFound}}
<section class="profile">
{{- with .ThumbnailURL}}
<img src="{{.}}" alt="">
{{- end}}
<span class="vehicle">{{.VehicleLabel}}</span>
<h2>{{.DisplayTitle}}</h2>
<p class="description">{{.Description}}</p>
<p class="extract">{{.Extract}}</p>
</section>
{{- else}}
<section class="unresolved">
<h2>Results unavailable for {{.PersonName}}</h2>
{{- with .DisambiguationLink}}
<p>For more results, try clicking <a href="{{.}}" target="_blank">here</a></p>
{{- end}}
</section>
{{- end}}
{{- end}}
</div>
</body>
</html>
`))

// WritePage renders page as a complete HTML document
func WritePage(w io.Writer, page Page) error {
	return writeAll(w, func(buf io.Writer) error {
		return pageTemplate.Execute(buf, page)
	})
}

// ProfilesPage builds the page shown after a successful run
func ProfilesPage(profiles []model.ResolvedProfile, defaultVehicle string) Page {
	return Page{People: views(profiles, defaultVehicle)}
}

// ErrorPage builds the page shown after a failed run
func ErrorPage() Page {
	return Page{Failed: true, Message: FailureMessage}
}

// HTMLSink writes one HTML document per run
type HTMLSink struct {
	w              io.Writer
	defaultVehicle string
}

// NewHTMLSink creates an HTML sink writing to w
func NewHTMLSink(w io.Writer, defaultVehicle string) *HTMLSink {
	return &HTMLSink{w: w, defaultVehicle: defaultVehicle}
}

// Render writes a section per profile
func (s *HTMLSink) Render(profiles []model.ResolvedProfile) error {
	return WritePage(s.w, ProfilesPage(profiles, s.defaultVehicle))
}

// RenderError writes the failure page
func (s *HTMLSink) RenderError(err error) error {
	return WritePage(s.w, ErrorPage())
}
