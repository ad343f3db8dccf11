package ui

import (
	"fmt"

	"github.com/amonks/tasktrack/task"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	priorityStyles = map[task.Priority]lipgloss.Style{
		task.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		task.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		task.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	}
)

// Header styles a table header or section title.
func Header(text string) string {
	return render(headerStyle, text)
}

// Muted styles secondary text.
func Muted(text string) string {
	return render(mutedStyle, text)
}

// Success styles a confirmation message.
func Success(text string) string {
	return render(successStyle, text)
}

// Error styles an error message.
func Error(text string) string {
	return render(errorStyle, text)
}

// PriorityLabel returns the colored display name of a priority.
func PriorityLabel(p task.Priority) string {
	style, ok := priorityStyles[p]
	if !ok {
		return p.Label()
	}
	return render(style, p.Label())
}

// FormatDue renders a due date relative to today, e.g. "2025-03-12 (in 2d)".
func FormatDue(due, today task.Date) string {
	if due.IsZero() {
		return "-"
	}
	days := today.DaysUntil(due)
	switch {
	case days == 0:
		return due.String() + " (today)"
	case days > 0:
		return fmt.Sprintf("%s (in %dd)", due, days)
	default:
		return render(overdueStyle, fmt.Sprintf("%s (overdue %dd)", due, -days))
	}
}

// FormatStats renders the counts line shown above task lists.
func FormatStats(stats task.Stats) string {
	return fmt.Sprintf("Tasks: %d | Completed: %d | In Progress: %d", stats.Total(), stats.Completed, stats.Active)
}

// FormatStatus returns "done" or "active".
func FormatStatus(t task.Task) string {
	if t.Completed {
		return Muted("done")
	}
	return "active"
}
