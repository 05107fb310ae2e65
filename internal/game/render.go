package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	targetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
)

// ProgressLine formats the status of a running counter.
func ProgressLine(target, missCount, value int) string {
	return fmt.Sprintf("→ Target %s : Miss = %s | Counter = %s",
		targetStyle.Render(fmt.Sprint(target)),
		missStyle.Render(fmt.Sprint(missCount)),
		counterStyle.Render(fmt.Sprint(value)),
	)
}

// LineRenderer redraws the progress line in place on a plain terminal.
type LineRenderer struct {
	W io.Writer
}

// Render implements counter.Renderer.
func (r LineRenderer) Render(target, missCount, value int) {
	if _, err := fmt.Fprintf(r.W, "\r\x1b[K%s", ProgressLine(target, missCount, value)); err != nil {
		// Display only; a failed redraw is not fatal.
		_ = err
	}
}
