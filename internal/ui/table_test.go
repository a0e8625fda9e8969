package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	got := FormatTable(
		[]string{"ID", "NAME"},
		[][]string{
			{"1", "short"},
			{"10", "a longer name"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "ID  NAME") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	// All names start at the same column.
	nameCol := strings.Index(lines[0], "NAME")
	if strings.Index(lines[1], "short") != nameCol {
		t.Errorf("row 1 misaligned:\n%s", got)
	}
	if strings.Index(lines[2], "a longer name") != nameCol {
		t.Errorf("row 2 misaligned:\n%s", got)
	}
}

func TestFormatTableMeasuresStyledCellsByVisibleWidth(t *testing.T) {
	styled := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("red")

	got := FormatTable(
		[]string{"A", "B"},
		[][]string{
			{styled, "x"},
			{"plain", "y"},
		},
	)

	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		if w := lipgloss.Width(line); w != lipgloss.Width("plain  B") {
			t.Errorf("line %q has visible width %d", line, w)
		}
	}
}

func TestFormatTableFlattensNewlines(t *testing.T) {
	got := FormatTable([]string{"A"}, [][]string{{"line1\nline2"}})
	if strings.Count(got, "\n") != 2 {
		t.Errorf("embedded newlines must not add rows:\n%q", got)
	}
	if !strings.Contains(got, "line1 line2") {
		t.Errorf("newline should become a space: %q", got)
	}
}

func TestTruncateTableCell(t *testing.T) {
	if got := TruncateTableCell("short"); got != "short" {
		t.Errorf("short cells pass through: %q", got)
	}

	long := strings.Repeat("x", 60)
	got := TruncateTableCell(long)
	if lipgloss.Width(got) != tableCellMaxWidth {
		t.Errorf("truncated width = %d, want %d", lipgloss.Width(got), tableCellMaxWidth)
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Errorf("missing ellipsis: %q", got)
	}
}

func TestRenderMarkdownFallsBackToPlainText(t *testing.T) {
	if got := RenderMarkdown("", 40); got != "" {
		t.Errorf("empty input should render empty, got %q", got)
	}
	got := RenderMarkdown("plain words here", 40)
	if !strings.Contains(got, "plain words here") {
		t.Errorf("content lost: %q", got)
	}
}

func TestNewStylesDisabled(t *testing.T) {
	st := NewStyles(false)
	if st.Enabled() {
		t.Error("styles should report disabled")
	}
	if got := st.Red.Render("text"); got != "text" {
		t.Errorf("disabled style must not color: %q", got)
	}
	if got := st.Panel.Render("body"); got != "body" {
		t.Errorf("disabled panel must be a no-op: %q", got)
	}
}
