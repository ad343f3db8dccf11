package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/amonks/tasktrack/internal/ui"
	"github.com/amonks/tasktrack/task"
)

func TestFormatTaskDetail(t *testing.T) {
	ui.SetColorMode(ui.ColorNever)
	today := task.Date{Year: 2025, Month: 3, Day: 10}
	detail := formatTaskDetail(task.Task{
		ID:          3,
		Name:        "Write report",
		Description: "Collect the **numbers** first.",
		Added:       today,
		Due:         task.Date{Year: 2025, Month: 3, Day: 8},
		Priority:    task.PriorityLow,
	}, today, 60)

	for _, want := range []string{"#3 Write report", "Priority: Low", "2025-03-08 (overdue 2d)", "Added:    2025-03-10", "numbers"} {
		if !strings.Contains(detail, want) {
			t.Fatalf("expected %q in detail, got %q", want, detail)
		}
	}
}

func TestRenderDescriptionEmpty(t *testing.T) {
	if got := renderDescription("   ", 40); got != "  -" {
		t.Fatalf("expected dash placeholder, got %q", got)
	}
}

func TestFormatEvent(t *testing.T) {
	got := formatEvent(task.Event{
		Kind:  task.EventCompleted,
		Task:  task.Task{ID: 4, Name: "Water plants"},
		Stats: task.Stats{Active: 1, Completed: 3},
	})

	want := "completed task 4: Water plants (Tasks: 4 | Completed: 3 | In Progress: 1)"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

type fakeEventSource struct {
	events []task.Event
	err    error
}

func (f fakeEventSource) Watch(ctx context.Context) (<-chan task.Event, <-chan error) {
	events := make(chan task.Event, len(f.events))
	errs := make(chan error, 1)
	for _, event := range f.events {
		events <- event
	}
	close(events)
	errs <- f.err
	return events, errs
}

func TestStreamEventsPrintsUntilClosed(t *testing.T) {
	cmd, out := newTestCommand(nil)
	source := fakeEventSource{
		events: []task.Event{
			{Kind: task.EventCreated, Task: task.Task{ID: 1, Name: "A"}, Stats: task.Stats{Active: 1}},
			{Kind: task.EventDeleted, Task: task.Task{ID: 1, Name: "A"}},
		},
		err: errors.New("stream closed"),
	}

	err := streamEvents(context.Background(), cmd, source)

	if err == nil || err.Error() != "stream closed" {
		t.Fatalf("expected stream error, got %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "created task 1: A") || !strings.HasPrefix(lines[1], "deleted task 1: A") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
