package ui

import (
	"strconv"

	"github.com/amonks/tasktrack/task"
)

// EmptyTasksMessage is shown in place of an empty task table.
const EmptyTasksMessage = "No tasks yet. Add one to get started."

// TaskTable renders tasks as an ID/NAME/PRIORITY/DUE/STATUS table.
func TaskTable(tasks []task.Task, today task.Date) string {
	builder := NewTableBuilder([]string{"ID", "NAME", "PRIORITY", "DUE", "STATUS"}, len(tasks))
	for _, t := range tasks {
		builder.AddRow([]string{
			strconv.Itoa(t.ID),
			TruncateTableCell(t.Name),
			PriorityLabel(t.Priority),
			FormatDue(t.Due, today),
			FormatStatus(t),
		})
	}
	return builder.String()
}
