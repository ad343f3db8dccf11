package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/amonks/tasktrack/internal/markdown"
	"github.com/amonks/tasktrack/task"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type taskItem struct {
	task task.Task
}

func (item taskItem) FilterValue() string {
	return item.task.Name
}

type taskItemDelegate struct {
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	doneStyle     lipgloss.Style
}

func newTaskItemDelegate() taskItemDelegate {
	return taskItemDelegate{
		normalStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")),
		doneStyle:     valueMuted,
	}
}

func (d taskItemDelegate) Height() int                             { return 1 }
func (d taskItemDelegate) Spacing() int                            { return 0 }
func (d taskItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(taskItem)
	if !ok {
		return
	}

	line := formatTaskItem(item, m.Width())
	style := d.normalStyle
	if index == m.Index() {
		style = d.selectedStyle
	} else if item.task.Completed {
		style = d.doneStyle
	}
	fmt.Fprint(w, style.Render(line))
}

func formatTaskItem(item taskItem, width int) string {
	name := strings.TrimSpace(item.task.Name)
	if name == "" {
		name = "(unnamed)"
	}
	line := fmt.Sprintf("%d  %s  [%s, due %s]", item.task.ID, name, item.task.Priority.Label(), item.task.Due)
	return truncateText(line, width)
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}

type detailModel struct {
	task     task.Task
	selected bool
	viewport viewport.Model
}

func newDetailModel() detailModel {
	return detailModel{viewport: viewport.New(0, 0)}
}

func (d *detailModel) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
	d.refresh()
}

func (d *detailModel) SetTask(t task.Task, ok bool) {
	d.task = t
	d.selected = ok
	d.refresh()
	d.viewport.GotoTop()
}

func (d *detailModel) refresh() {
	d.viewport.SetContent(d.render())
}

func (d detailModel) render() string {
	if !d.selected {
		return valueMuted.Render("No task selected.")
	}
	status := "active"
	if d.task.Completed {
		status = "completed"
	}
	lines := []string{
		labelStyle.Render(d.task.Name),
		"",
		fmt.Sprintf("%s %d", labelStyle.Render("ID:"), d.task.ID),
		fmt.Sprintf("%s %s", labelStyle.Render("Priority:"), d.task.Priority.Label()),
		fmt.Sprintf("%s %s", labelStyle.Render("Due:"), d.task.Due),
		fmt.Sprintf("%s %s", labelStyle.Render("Added:"), d.task.Added),
		fmt.Sprintf("%s %s", labelStyle.Render("Status:"), status),
		"",
	}
	width := d.viewport.Width
	if width < 1 {
		width = 40
	}
	description := markdown.SafeRender(width, 0, []byte(d.task.Description))
	if len(description) == 0 {
		lines = append(lines, valueMuted.Render("(no description)"))
	} else {
		lines = append(lines, string(description))
	}
	return strings.Join(lines, "\n")
}

func (d detailModel) View() string {
	return d.viewport.View()
}
