package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/amonks/tasktrack/internal/ui"
	"github.com/amonks/tasktrack/task"
)

func disableColor(t *testing.T) {
	t.Helper()
	previous := ui.ColorEnabled()
	ui.SetColorMode(ui.ColorNever)
	t.Cleanup(func() {
		if previous {
			ui.SetColorMode(ui.ColorAlways)
			return
		}
		ui.SetColorMode(ui.ColorNever)
	})
}

func newTestService() *task.Service {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return task.NewService(task.Options{Now: func() time.Time { return now }})
}

func runScript(t *testing.T, service *task.Service, opts Options, input string) string {
	t.Helper()
	disableColor(t)
	var out bytes.Buffer
	opts.In = strings.NewReader(input)
	opts.Out = &out
	opts.Service = service
	if err := New(opts).Run(context.Background()); err != nil {
		t.Fatalf("run shell: %v", err)
	}
	return out.String()
}

func TestAddPromptsForFields(t *testing.T) {
	service := newTestService()

	output := runScript(t, service, Options{}, "add\nWrite report\nQuarterly numbers\n2025-03-20\nhigh\n")

	if !strings.Contains(output, "Added 1: Write report") {
		t.Fatalf("expected add confirmation, got %q", output)
	}
	created, err := service.Find(1)
	if err != nil {
		t.Fatalf("find task: %v", err)
	}
	if created.Description != "Quarterly numbers" || created.Priority != task.PriorityHigh || created.Due.String() != "2025-03-20" {
		t.Fatalf("unexpected task %+v", created)
	}
}

func TestAddUsesInlineNameAndDefaultPriority(t *testing.T) {
	service := newTestService()

	runScript(t, service, Options{DefaultPriority: task.PriorityLow}, "add Buy milk\ntwo liters\n2025-03-10\n\n")

	created, err := service.Find(1)
	if err != nil {
		t.Fatalf("find task: %v", err)
	}
	if created.Name != "Buy milk" || created.Priority != task.PriorityLow {
		t.Fatalf("unexpected task %+v", created)
	}
}

func TestAddReportsValidationErrorsAndContinues(t *testing.T) {
	service := newTestService()

	output := runScript(t, service, Options{}, "add Late\nnotes\n2025-03-01\nlow\nstats\n")

	if !strings.Contains(output, "error: invalid input: due date 2025-03-01 is before 2025-03-10") {
		t.Fatalf("expected past due error, got %q", output)
	}
	if !strings.Contains(output, "Tasks: 0 | Completed: 0 | In Progress: 0") {
		t.Fatalf("expected session to continue, got %q", output)
	}
}

func TestAddCancelledAtEndOfInput(t *testing.T) {
	output := runScript(t, newTestService(), Options{}, "add Partial\n")

	if !strings.Contains(output, "error: add cancelled") {
		t.Fatalf("expected cancellation, got %q", output)
	}
}

func TestListHonorsSortMode(t *testing.T) {
	service := newTestService()
	for _, opts := range []task.CreateOptions{
		{Name: "A", Description: "a", Due: task.Date{Year: 2025, Month: 3, Day: 11}, Priority: task.PriorityHigh},
		{Name: "B", Description: "b", Due: task.Date{Year: 2025, Month: 3, Day: 11}, Priority: task.PriorityLow},
		{Name: "C", Description: "c", Due: task.Date{Year: 2025, Month: 3, Day: 11}, Priority: task.PriorityHigh},
	} {
		if _, err := service.Create(opts); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	insertion := runScript(t, service, Options{}, "list\n")
	priority := runScript(t, service, Options{}, "list priority\n")

	if got := rowNames(insertion); got != "A,B,C" {
		t.Fatalf("expected insertion order A,B,C, got %s in %q", got, insertion)
	}
	if got := rowNames(priority); got != "A,C,B" {
		t.Fatalf("expected priority order A,C,B, got %s in %q", got, priority)
	}
}

func rowNames(output string) string {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] != "ID" && fields[0] != "Tasks:" {
			names = append(names, fields[1])
		}
	}
	return strings.Join(names, ",")
}

func TestListEmptyState(t *testing.T) {
	output := runScript(t, newTestService(), Options{}, "list\n")

	if !strings.Contains(output, ui.EmptyTasksMessage) {
		t.Fatalf("expected empty state, got %q", output)
	}
}

func TestProcessingCommands(t *testing.T) {
	service := newTestService()
	script := strings.Join([]string{
		"add A", "a", "2025-03-12", "low",
		"add B", "b", "2025-03-12", "high",
		"add C", "c", "2025-03-12", "medium",
		"undo",
		"next",
		"urgent",
		"next",
		"stats",
	}, "\n") + "\n"

	output := runScript(t, service, Options{}, script)

	for _, want := range []string{
		"Undid 3: C",
		"Completed 1: A",
		"Completed 2: B",
		"Nothing to do",
		"Tasks: 2 | Completed: 2 | In Progress: 0",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got %q", want, output)
		}
	}
}

func TestDoneAndRemoveByID(t *testing.T) {
	service := newTestService()
	for _, name := range []string{"A", "B"} {
		if _, err := service.Create(task.CreateOptions{Name: name, Description: "x", Due: task.Date{Year: 2025, Month: 3, Day: 12}, Priority: task.PriorityMedium}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	output := runScript(t, service, Options{}, "done 1\ndone 1\nrm 2\nrm 7\ncompleted\n")

	if !strings.Contains(output, "Completed 1: A") || !strings.Contains(output, "Removed 2: B") {
		t.Fatalf("expected confirmations, got %q", output)
	}
	if !strings.Contains(output, "error: task 1: task already completed") {
		t.Fatalf("expected already-completed error, got %q", output)
	}
	if !strings.Contains(output, "error: task 7: task not found") {
		t.Fatalf("expected not-found error, got %q", output)
	}
	if stats := service.Stats(); stats.Active != 0 || stats.Completed != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestShowWrapsDescription(t *testing.T) {
	service := newTestService()
	if _, err := service.Create(task.CreateOptions{
		Name:        "Report",
		Description: "one two three four five six",
		Due:         task.Date{Year: 2025, Month: 3, Day: 12},
		Priority:    task.PriorityHigh,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	output := runScript(t, service, Options{Width: 14}, "show 1\n")

	if !strings.Contains(output, "#1 Report") || !strings.Contains(output, "2025-03-12 (in 2d)") {
		t.Fatalf("expected task header, got %q", output)
	}
	if !strings.Contains(output, "  one two\n") {
		t.Fatalf("expected wrapped and indented description, got %q", output)
	}
}

func TestUnknownCommandAndQuit(t *testing.T) {
	output := runScript(t, newTestService(), Options{}, "frobnicate\nquit\nstats\n")

	if !strings.Contains(output, `error: unknown command "frobnicate"`) {
		t.Fatalf("expected unknown command error, got %q", output)
	}
	if strings.Contains(output, "Tasks:") {
		t.Fatalf("expected quit to stop the session, got %q", output)
	}
}

func TestInteractivePrompts(t *testing.T) {
	output := runScript(t, newTestService(), Options{Interactive: true}, "add X\nx\n2025-03-11\n\n")

	for _, want := range []string{Prompt, "Description: ", "Due (YYYY-MM-DD): ", "Priority [medium]: "} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected prompt %q, got %q", want, output)
		}
	}
}
