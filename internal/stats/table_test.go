package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Player", "Avg", "Vitality"}
	rows := [][]string{
		{"Alice", "85", "50"},
		{"Bob", "130", "5"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Player Avg Vitality" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Alice   85       50" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Bob    130        5" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"Name", "Avg"}, [][]string{{"李雷", "9"}}, map[int]bool{1: true})
	if lines[1] != "李雷   9" {
		t.Fatalf("expected wide runes to count double: %q", lines[1])
	}
}
