// Package tui provides the Bubble Tea match interface.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/reflexduel/internal/game"
	"github.com/verte-zerg/reflexduel/internal/model"
	"github.com/verte-zerg/reflexduel/internal/scoring"
	"github.com/verte-zerg/reflexduel/internal/stats"
)

const (
	maxLogLines = 200
	barWidth    = 50
)

type progressMsg struct {
	target int
	miss   int
	value  int
}

type logMsg string

type roundMsg model.RoundOutcome

type doneMsg struct {
	err error
}

// Model implements the Bubble Tea match UI. Player input is collected per
// line and forwarded to the game goroutine on ENTER.
type Model struct {
	lines  chan<- string
	cancel context.CancelFunc
	cycle  int

	width  int
	height int

	log     []string
	partial string
	input   []rune

	progress    progressMsg
	hasProgress bool

	rounds table.Model
	rows   []table.Row

	done bool
	err  error
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	logStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	needleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	trackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// NewModel constructs a match TUI model. Submitted lines are sent on lines;
// cancel is called when the player quits.
func NewModel(lines chan<- string, players [2]string, cycleLength int, cancel context.CancelFunc) *Model {
	if cycleLength <= 0 {
		cycleLength = scoring.DefaultCycleLength
	}
	headers := stats.RoundHeaders(players)
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		cols[i] = table.Column{Title: h, Width: max(runewidth.StringWidth(h), 10)}
	}
	return &Model{
		lines:  lines,
		cancel: cancel,
		cycle:  cycleLength,
		rounds: table.New(table.WithColumns(cols), table.WithHeight(5), table.WithFocused(false)),
	}
}

// Err returns the error the game finished with, if any.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case progressMsg:
		m.progress = msg
		m.hasProgress = true
		return m, nil
	case logMsg:
		m.appendLog(string(msg))
		return m, nil
	case roundMsg:
		m.rows = append(m.rows, table.Row(stats.RoundRow(model.RoundOutcome(msg))))
		m.rounds.SetRows(m.rows)
		m.rounds.GotoBottom()
		return m, nil
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	case tea.KeyEnter:
		m.submit()
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case tea.KeySpace:
		m.input = append(m.input, ' ')
		return m, nil
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) submit() {
	line := string(m.input)
	m.input = nil
	select {
	case m.lines <- line:
		m.appendLog(line + "\n")
	default:
		// The game is busy; drop the keystroke rather than block the UI.
	}
}

func (m *Model) appendLog(text string) {
	parts := strings.Split(m.partial+text, "\n")
	m.partial = parts[len(parts)-1]
	m.log = append(m.log, parts[:len(parts)-1]...)
	if over := len(m.log) - maxLogLines; over > 0 {
		m.log = m.log[over:]
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var sections []string
	sections = append(sections, titleStyle.Render("reflexduel"))

	footer := []string{}
	if m.hasProgress {
		footer = append(footer, game.ProgressLine(m.progress.target, m.progress.miss, m.progress.value))
		footer = append(footer, m.renderBar())
	}
	if len(m.rows) > 0 {
		footer = append(footer, m.rounds.View())
	}
	if m.err != nil {
		footer = append(footer, errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
	}
	footer = append(footer, inputStyle.Render(m.partial+string(m.input)+"█"))

	logLines := m.visibleLog(lipgloss.Height(strings.Join(footer, "\n")))
	if len(logLines) > 0 {
		sections = append(sections, logStyle.Render(strings.Join(logLines, "\n")))
	}
	sections = append(sections, footer...)
	return strings.Join(sections, "\n")
}

func (m *Model) visibleLog(reserved int) []string {
	lines := m.log
	if m.height > 0 {
		room := m.height - reserved - 1
		if room < 0 {
			room = 0
		}
		if len(lines) > room {
			lines = lines[len(lines)-room:]
		}
	}
	if m.width <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = runewidth.Truncate(line, m.width, "…")
	}
	return out
}

// renderBar draws the counter track with the target mark and the needle.
func (m *Model) renderBar() string {
	pos := func(v int) int {
		return v * (barWidth - 1) / max(m.cycle-1, 1)
	}
	target := min(pos(m.progress.target), barWidth-1)
	needle := min(pos(m.progress.value), barWidth-1)
	var b strings.Builder
	for i := 0; i < barWidth; i++ {
		switch i {
		case needle:
			b.WriteString(needleStyle.Render("●"))
		case target:
			b.WriteString(markStyle.Render("┃"))
		default:
			b.WriteString(trackStyle.Render("─"))
		}
	}
	return b.String()
}
