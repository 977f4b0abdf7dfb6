package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/playcell/internal/runner"
)

// Model is the Bubble Tea model driving one runner.
type Model struct {
	run      *runner.Runner
	quitting bool
}

// NewModel creates a Bubble Tea model for the given runner.
func NewModel(run *runner.Runner) Model {
	return Model{run: run}
}

// Init requests the first animation-frame signal.
func (m Model) Init() tea.Cmd {
	return signalCmd(m.run.Interval())
}

// Update handles messages. Input messages only feed the runner's input
// state; all frame work happens on signals.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.run.SetSurfaceSize(msg.Width, msg.Height)
		return m, nil

	case SignalMsg:
		m.run.Frame(time.Time(msg))
		if m.run.Done() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, signalCmd(m.run.Interval())
	}

	return m, nil
}

// handleMouse forwards terminal mouse events to the runner's input layer.
func (m Model) handleMouse(msg tea.MouseMsg) {
	forwardMouse(m.run, msg)
}

// forwardMouse feeds a terminal mouse event to the runner's input state.
// The terminal reports cell coordinates, which match the probe's unit cell
// geometry, so they pass through as surface coordinates.
func forwardMouse(run *runner.Runner, msg tea.MouseMsg) {
	x, y := float64(msg.X), float64(msg.Y)
	in := run.Input()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			in.PointerDown(x, y)
		}
	case tea.MouseActionRelease:
		in.PointerUp(x, y)
	case tea.MouseActionMotion:
		in.PointerMove(x, y)
	}
}

// View presents the last rendered frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.run.Output()
}

// Run starts the Bubble Tea program for the given runner and blocks until
// it quits.
func Run(run *runner.Runner) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	// Mouse capture disables the terminal's native text selection, so it is
	// skipped when the caller asked to keep selection working.
	if !run.Settings().AllowSelect {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(NewModel(run), opts...)
	_, err := p.Run()
	return err
}
