package ui

import (
	"strings"
	"testing"

	"github.com/amonks/tasktrack/task"
)

func TestFormatDue(t *testing.T) {
	withColor(t, false)
	today := task.Date{Year: 2025, Month: 3, Day: 10}

	cases := []struct {
		due  task.Date
		want string
	}{
		{task.Date{}, "-"},
		{today, "2025-03-10 (today)"},
		{task.Date{Year: 2025, Month: 3, Day: 12}, "2025-03-12 (in 2d)"},
		{task.Date{Year: 2025, Month: 3, Day: 7}, "2025-03-07 (overdue 3d)"},
	}
	for _, tc := range cases {
		if got := FormatDue(tc.due, today); got != tc.want {
			t.Errorf("FormatDue(%v) = %q, want %q", tc.due, got, tc.want)
		}
	}
}

func TestFormatStats(t *testing.T) {
	got := FormatStats(task.Stats{Active: 2, Completed: 1})
	if got != "Tasks: 3 | Completed: 1 | In Progress: 2" {
		t.Fatalf("unexpected stats line %q", got)
	}
}

func TestPriorityLabelPlain(t *testing.T) {
	withColor(t, false)

	if got := PriorityLabel(task.PriorityHigh); got != "High" {
		t.Fatalf("expected High, got %q", got)
	}
	if got := PriorityLabel(task.Priority("bogus")); strings.Contains(got, "\x1b[") {
		t.Fatalf("expected no styling for unknown priority, got %q", got)
	}
}

func TestPriorityLabelStyled(t *testing.T) {
	withColor(t, true)

	got := PriorityLabel(task.PriorityHigh)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI styling, got %q", got)
	}
	if !strings.Contains(got, "High") {
		t.Fatalf("expected label text, got %q", got)
	}
}

func TestSetColorModeNever(t *testing.T) {
	withColor(t, true)

	SetColorMode(ColorNever)

	if ColorEnabled() {
		t.Fatal("expected color to be disabled")
	}
	if got := Header("ID"); got != "ID" {
		t.Fatalf("expected plain header, got %q", got)
	}
}
