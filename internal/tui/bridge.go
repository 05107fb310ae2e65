package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/reflexduel/internal/counter"
	"github.com/verte-zerg/reflexduel/internal/model"
)

var _ counter.Renderer = (*Bridge)(nil)

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge forwards game output, counter progress and round results from the
// game goroutine into the UI.
type Bridge struct {
	s Sender
}

// NewBridge wraps s.
func NewBridge(s Sender) *Bridge {
	return &Bridge{s: s}
}

// Write implements io.Writer.
func (b *Bridge) Write(p []byte) (int, error) {
	b.s.Send(logMsg(string(p)))
	return len(p), nil
}

// Render implements counter.Renderer.
func (b *Bridge) Render(target, missCount, value int) {
	b.s.Send(progressMsg{target: target, miss: missCount, value: value})
}

// Round reports a finished round.
func (b *Bridge) Round(o model.RoundOutcome) {
	b.s.Send(roundMsg(o))
}

// Done reports that the game goroutine has returned.
func (b *Bridge) Done(err error) {
	b.s.Send(doneMsg{err: err})
}
