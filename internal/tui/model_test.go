package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/reflexduel/internal/model"
)

type captureSender struct {
	msgs []tea.Msg
}

func (c *captureSender) Send(msg tea.Msg) {
	c.msgs = append(c.msgs, msg)
}

func newTestModel(lines chan string) *Model {
	return NewModel(lines, [2]string{"Alice", "Bob"}, 100, nil)
}

func TestEnterSubmitsTypedLine(t *testing.T) {
	lines := make(chan string, 1)
	m := newTestModel(lines)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12")})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	select {
	case got := <-lines:
		if got != "1" {
			t.Fatalf("expected line %q, got %q", "1", got)
		}
	default:
		t.Fatalf("expected a submitted line")
	}
	if len(m.input) != 0 {
		t.Fatalf("expected input to reset, got %q", string(m.input))
	}
}

func TestEnterDropsWhenGameBusy(t *testing.T) {
	lines := make(chan string)
	m := newTestModel(lines)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.log) != 0 {
		t.Fatalf("expected dropped line not to be echoed, got %v", m.log)
	}
}

func TestLogMessagesSplitLines(t *testing.T) {
	m := newTestModel(make(chan string, 1))
	m.Update(logMsg("## Round 1 ##\nAlice's turn"))
	m.Update(logMsg(" (Vitality=50)\n> "))
	if len(m.log) != 2 || m.log[1] != "Alice's turn (Vitality=50)" {
		t.Fatalf("unexpected log: %q", m.log)
	}
	if m.partial != "> " {
		t.Fatalf("expected prompt as partial line, got %q", m.partial)
	}
}

func TestViewShowsProgressAndRounds(t *testing.T) {
	m := newTestModel(make(chan string, 1))
	m.Update(progressMsg{target: 42, miss: 1, value: 7})
	m.Update(roundMsg(model.RoundOutcome{
		Round:    1,
		Players:  [2]string{"Alice", "Bob"},
		Averages: [2]int{90, 70},
		Decision: model.RoundDecision{Winner: 0, Loser: 1, Delta: 20},
		Poison:   model.PoisonStrength,
		Vitality: [2]int{50, 30},
	}))
	view := m.View()
	for _, want := range []string{"Counter = ", "42", "strength", "50/30"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDoneQuits(t *testing.T) {
	m := newTestModel(make(chan string, 1))
	_, cmd := m.Update(doneMsg{err: errors.New("boom")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if m.Err() == nil || !m.done {
		t.Fatalf("expected model to record completion error")
	}
}

func TestCtrlCCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewModel(make(chan string, 1), [2]string{"A", "B"}, 100, cancel)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if ctx.Err() == nil {
		t.Fatalf("expected context to be canceled")
	}
}

func TestBridgeForwardsMessages(t *testing.T) {
	s := &captureSender{}
	b := NewBridge(s)
	if n, err := b.Write([]byte("hello\n")); err != nil || n != 6 {
		t.Fatalf("unexpected write result %d %v", n, err)
	}
	b.Render(10, 0, 3)
	b.Round(model.RoundOutcome{Round: 2})
	b.Done(nil)
	if len(s.msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(s.msgs))
	}
	if got, ok := s.msgs[1].(progressMsg); !ok || got.target != 10 || got.value != 3 {
		t.Fatalf("unexpected progress message: %#v", s.msgs[1])
	}
	if _, ok := s.msgs[3].(doneMsg); !ok {
		t.Fatalf("expected done message, got %#v", s.msgs[3])
	}
}
