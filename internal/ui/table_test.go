package ui

import (
	"strings"
	"testing"

	"github.com/amonks/tasktrack/task"
	"github.com/charmbracelet/lipgloss"
)

func TestTruncateTableCellCountsRunes(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth-1) + "é"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellAddsEllipsis(t *testing.T) {
	value := strings.Repeat("b", tableCellMaxWidth+10)

	got := TruncateTableCell(value)

	if lipgloss.Width(got) != tableCellMaxWidth {
		t.Fatalf("expected width %d, got %d (%q)", tableCellMaxWidth, lipgloss.Width(got), got)
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Fatalf("expected ellipsis, got %q", got)
	}
}

func TestTruncateTableCellNormalizesLineBreaks(t *testing.T) {
	got := TruncateTableCell("Buy\nmilk\r\nand\teggs")

	if got != "Buy milk and eggs" {
		t.Fatalf("expected line breaks to normalize, got %q", got)
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	withColor(t, false)

	got := FormatTable([]string{"ID", "NAME"}, [][]string{
		{"1", "Write report"},
		{"12", "Call"},
	})

	want := "ID  NAME\n1   Write report\n12  Call\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatTableIgnoresANSIWidth(t *testing.T) {
	withColor(t, false)

	plain := FormatTable([]string{"PRI", "NAME"}, [][]string{{"High", "A"}, {"Low", "B"}})
	styled := FormatTable([]string{"PRI", "NAME"}, [][]string{{"\x1b[31mHigh\x1b[0m", "A"}, {"\x1b[32mLow\x1b[0m", "B"}})

	stripped := strings.NewReplacer("\x1b[31m", "", "\x1b[32m", "", "\x1b[0m", "").Replace(styled)
	if stripped != plain {
		t.Fatalf("expected styled table to align with plain table\nplain:\n%s\nstyled:\n%s", plain, stripped)
	}
}

func TestTableBuilder(t *testing.T) {
	withColor(t, false)

	builder := NewTableBuilder([]string{"A", "B"}, 1)
	builder.AddRow([]string{"x", "y"})

	if got := builder.String(); got != "A  B\nx  y\n" {
		t.Fatalf("unexpected table %q", got)
	}
}

func TestTaskTableRendersRows(t *testing.T) {
	withColor(t, false)
	today := task.Date{Year: 2025, Month: 3, Day: 10}
	tasks := []task.Task{
		{ID: 1, Name: "Write report", Priority: task.PriorityHigh, Due: task.Date{Year: 2025, Month: 3, Day: 12}},
		{ID: 12, Name: "File taxes", Priority: task.PriorityLow, Due: today, Completed: true},
	}

	got := TaskTable(tasks, today)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %q", got)
	}
	if !strings.HasPrefix(lines[0], "ID  NAME") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "Write report") || !strings.Contains(lines[1], "2025-03-12 (in 2d)") || !strings.HasSuffix(lines[1], "active") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if !strings.Contains(lines[2], "(today)") || !strings.HasSuffix(lines[2], "done") {
		t.Fatalf("unexpected second row %q", lines[2])
	}
}
