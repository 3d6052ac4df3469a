package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ppiankov/astros/internal/model"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Width(72)

	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	vehicleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	descriptionStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	missingStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	linkStyle        = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("39"))

	// FailureStyle renders the failure message
	FailureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Cards renders profiles as terminal cards
func Cards(profiles []model.ResolvedProfile, defaultVehicle string) string {
	if len(profiles) == 0 {
		return "Nobody is in space right now.\n"
	}

	cards := make([]string, 0, len(profiles))
	for _, p := range views(profiles, defaultVehicle) {
		cards = append(cards, cardStyle.Render(formatCard(p)))
	}
	return strings.Join(cards, "\n") + "\n"
}

func formatCard(p profileView) string {
	if !p.IsFound() {
		heading := missingStyle.Render("Results unavailable for " + p.PersonName)
		if p.DisambiguationLink == "" {
			return heading
		}
		return heading + "\n" + "For more results, see " + linkStyle.Render(p.DisambiguationLink)
	}

	lines := []string{
		titleStyle.Render(p.DisplayTitle()) + "  " + vehicleStyle.Render("["+p.VehicleLabel+"]"),
	}
	if p.Description != "" {
		lines = append(lines, descriptionStyle.Render(p.Description))
	}
	if p.Extract != "" {
		lines = append(lines, "", p.Extract)
	}
	return strings.Join(lines, "\n")
}

// TextSink writes profiles as styled terminal output
type TextSink struct {
	w              io.Writer
	defaultVehicle string
}

// NewTextSink creates a terminal sink writing to w
func NewTextSink(w io.Writer, defaultVehicle string) *TextSink {
	return &TextSink{w: w, defaultVehicle: defaultVehicle}
}

// Render writes a card per profile
func (s *TextSink) Render(profiles []model.ResolvedProfile) error {
	_, err := io.WriteString(s.w, Cards(profiles, s.defaultVehicle))
	return err
}

// RenderError writes the failure message
func (s *TextSink) RenderError(err error) error {
	_, werr := io.WriteString(s.w, FailureStyle.Render(FailureMessage)+"\n")
	return werr
}
