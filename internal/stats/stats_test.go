package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/reflexduel/internal/model"
)

func TestSparklineFlatAndRising(t *testing.T) {
	if got := Sparkline([]float64{5, 5, 5}); got != "+++" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("unexpected rising sparkline: %q", got)
	}
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
}

func TestRenderMatchSummary(t *testing.T) {
	result := model.MatchResult{
		Players: [2]model.Player{{Name: "Alice"}, {Name: "Bob"}},
		Rounds: []model.RoundOutcome{
			{
				Round:    1,
				Players:  [2]string{"Alice", "Bob"},
				Averages: [2]int{100, 80},
				Decision: model.RoundDecision{Winner: 0, Loser: 1, Delta: 20},
				Poison:   model.PoisonSpeed,
				Vitality: [2]int{50, 30},
			},
			{
				Round:    2,
				Players:  [2]string{"Alice", "Bob"},
				Averages: [2]int{60, 60},
				Decision: model.RoundDecision{Tie: true},
				Vitality: [2]int{50, 30},
			},
		},
		Winner: 0,
	}
	var buf bytes.Buffer
	if err := RenderMatchSummary(&buf, result); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[1] != "Match Summary" {
		t.Fatalf("unexpected title: %q", lines[1])
	}
	if lines[2] != "Round Alice Bob Winner Damage Poison Vitality" {
		t.Fatalf("unexpected header: %q", lines[2])
	}
	if lines[3] != "    1   100  80 Alice      20 speed     50/30" {
		t.Fatalf("unexpected row: %q", lines[3])
	}
	if lines[4] != "    2    60  60 tie         - -         50/30" {
		t.Fatalf("unexpected row: %q", lines[4])
	}
	if !strings.Contains(buf.String(), "Bob vitality [++]") {
		t.Fatalf("expected vitality sparkline, got:\n%s", buf.String())
	}
}

func TestRenderMatchSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMatchSummary(&buf, model.MatchResult{}); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if buf.String() != "No rounds played.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
