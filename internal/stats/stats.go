// Package stats renders end-of-match summaries.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/reflexduel/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RoundRow formats one round for tabular display.
func RoundRow(o model.RoundOutcome) []string {
	winner, delta := "tie", "-"
	if !o.Decision.Tie {
		winner = o.Players[o.Decision.Winner]
		delta = fmt.Sprintf("%d", o.Decision.Delta)
	}
	poison := "-"
	if o.Poison != model.PoisonNone {
		poison = o.Poison.String()
	}
	return []string{
		fmt.Sprintf("%d", o.Round),
		fmt.Sprintf("%d", o.Averages[0]),
		fmt.Sprintf("%d", o.Averages[1]),
		winner,
		delta,
		poison,
		fmt.Sprintf("%d/%d", o.Vitality[0], o.Vitality[1]),
	}
}

// RoundHeaders returns the column titles matching RoundRow.
func RoundHeaders(players [2]string) []string {
	return []string{"Round", players[0], players[1], "Winner", "Damage", "Poison", "Vitality"}
}

// RenderMatchSummary prints the round table and vitality trends.
func RenderMatchSummary(w io.Writer, result model.MatchResult) error {
	if len(result.Rounds) == 0 {
		_, err := fmt.Fprintln(w, "No rounds played.")
		return err
	}
	names := [2]string{result.Players[0].Name, result.Players[1].Name}
	if _, err := fmt.Fprintln(w, "\nMatch Summary"); err != nil {
		return err
	}

	rows := make([][]string, 0, len(result.Rounds))
	for _, o := range result.Rounds {
		rows = append(rows, RoundRow(o))
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true, 4: true, 6: true}
	for _, line := range formatTable(RoundHeaders(names), rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	for i, name := range names {
		series := make([]float64, len(result.Rounds))
		for j, o := range result.Rounds {
			series[j] = float64(o.Vitality[i])
		}
		if _, err := fmt.Fprintf(w, "%s vitality [%s]\n", name, Sparkline(series)); err != nil {
			return err
		}
	}
	return nil
}
