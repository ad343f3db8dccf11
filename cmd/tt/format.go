package main

import (
	"fmt"
	"strings"

	"github.com/amonks/tasktrack/internal/markdown"
	"github.com/amonks/tasktrack/internal/ui"
	"github.com/amonks/tasktrack/task"
)

const detailIndent = 2

func formatTaskDetail(t task.Task, today task.Date, width int) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%s %s\n", ui.Header(fmt.Sprintf("#%d", t.ID)), ui.Header(t.Name))
	fmt.Fprintf(&builder, "Priority: %s\n", ui.PriorityLabel(t.Priority))
	fmt.Fprintf(&builder, "Due:      %s\n", ui.FormatDue(t.Due, today))
	fmt.Fprintf(&builder, "Added:    %s\n", t.Added)
	fmt.Fprintf(&builder, "Status:   %s\n", ui.FormatStatus(t))
	builder.WriteString("\n")
	builder.WriteString(renderDescription(t.Description, width))
	builder.WriteString("\n")
	return builder.String()
}

func renderDescription(value string, width int) string {
	if width < 1 {
		width = 1
	}
	rendered := strings.TrimRight(string(markdown.SafeRender(width, detailIndent, []byte(value))), "\n")
	if strings.TrimSpace(rendered) == "" {
		return strings.Repeat(" ", detailIndent) + "-"
	}
	return rendered
}

func formatEvent(event task.Event) string {
	return fmt.Sprintf("%s task %d: %s (%s)", event.Kind, event.Task.ID, event.Task.Name, ui.FormatStats(event.Stats))
}
