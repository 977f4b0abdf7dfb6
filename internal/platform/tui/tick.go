// Package tui provides the Bubble Tea integration for playcell. It handles
// the terminal UI loop, input forwarding and remote serving; all frame
// semantics live in the runner.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SignalMsg is one animation-frame signal for the runner.
type SignalMsg time.Time

// signalCmd requests the next animation-frame signal. Signals arrive at half
// the target interval so the runner's frame-dropping throttle governs the
// real rate.
func signalCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval/2, func(t time.Time) tea.Msg {
		return SignalMsg(t)
	})
}
