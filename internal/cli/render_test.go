package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTable_AlignsWideRunes(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Price", "€1,200"},
			{"---"},
			{"Required days", "5.20"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top, header, header sep, 2 rows, row sep, bottom
	if len(lines) != 7 {
		t.Fatalf("RenderTable produced %d lines, want 7:\n%s", len(lines), out)
	}

	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Fatalf("line %d width = %d, want %d:\n%s", i, w, want, out)
		}
	}
}

func TestRenderProgressBar(t *testing.T) {
	if got := RenderProgressBar(0.5, 0); got != "" {
		t.Fatalf("zero width bar = %q, want empty", got)
	}
	out := RenderProgressBar(2, 10)
	if !strings.Contains(out, strings.Repeat("█", 10)) {
		t.Fatalf("overfull bar not clamped: %q", out)
	}
	if !strings.HasSuffix(out, "200.0%") {
		t.Fatalf("bar label = %q, want the unclamped percentage", out)
	}
}
