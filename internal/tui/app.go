// Package tui is the terminal front end: a single load button that runs
// the pipeline once, shows a spinner while it runs and is then replaced
// by the results.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ppiankov/astros/internal/model"
	"github.com/ppiankov/astros/internal/pipeline"
	"github.com/ppiankov/astros/internal/render"
)

const (
	buttonLabel  = "View all the people in space right now"
	loadingLabel = "Loading..."
)

// Runner executes one pipeline run against a sink
type Runner interface {
	Run(ctx context.Context, sink pipeline.Sink, onFinish func()) error
}

type appState int

const (
	stateIdle    appState = iota // button shown
	stateLoading                 // button shows the loading label
	stateDone                    // button removed, results shown
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("63")).
			Padding(0, 3)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// loadFinishedMsg carries the outcome of a run back into the model
type loadFinishedMsg struct {
	profiles []model.ResolvedProfile
	err      error
}

// captureSink keeps what a run renders so the model can display it
type captureSink struct {
	profiles []model.ResolvedProfile
	failed   bool
}

func (s *captureSink) Render(profiles []model.ResolvedProfile) error {
	s.profiles = profiles
	return nil
}

func (s *captureSink) RenderError(err error) error {
	s.failed = true
	return nil
}

// App is the bubbletea model
type App struct {
	ctx            context.Context
	runner         Runner
	defaultVehicle string

	state    appState
	spinner  spinner.Model
	profiles []model.ResolvedProfile
	err      error
	runs     int
}

// NewApp creates the terminal front end
func NewApp(ctx context.Context, runner Runner, defaultVehicle string) *App {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	return &App{
		ctx:            ctx,
		runner:         runner,
		defaultVehicle: defaultVehicle,
		spinner:        s,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return a, tea.Quit
		case "enter", " ":
			if a.state != stateIdle {
				return a, nil
			}
			a.state = stateLoading
			return a, tea.Batch(a.spinner.Tick, a.load())
		}

	case loadFinishedMsg:
		a.state = stateDone
		a.profiles = msg.profiles
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.state != stateLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

// load runs the pipeline in the background
func (a *App) load() tea.Cmd {
	a.runs++
	return func() tea.Msg {
		sink := &captureSink{}
		err := a.runner.Run(a.ctx, sink, nil)
		return loadFinishedMsg{profiles: sink.profiles, err: err}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("People in Space"))
	b.WriteString("\n")

	switch a.state {
	case stateIdle:
		b.WriteString(buttonStyle.Render(buttonLabel))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter: load • q: quit"))
	case stateLoading:
		b.WriteString(buttonStyle.Render(a.spinner.View() + " " + loadingLabel))
		b.WriteString("\n")
	case stateDone:
		if a.err != nil {
			b.WriteString(render.FailureStyle.Render(render.FailureMessage))
			b.WriteString("\n")
		} else {
			b.WriteString(render.Cards(a.profiles, a.defaultVehicle))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q: quit"))
	}

	b.WriteString("\n")
	return b.String()
}

// Err returns the error of the finished run, if any
func (a *App) Err() error {
	return a.err
}
