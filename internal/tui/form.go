package tui

import (
	"fmt"

	"github.com/amonks/tasktrack/task"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldDescription
	fieldDue
	fieldPriority
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Description", "Due (YYYY-MM-DD)", "Priority"}

type formModel struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newFormModel(defaultPriority task.Priority) formModel {
	var form formModel
	for i := range form.inputs {
		input := textinput.New()
		input.Prompt = ""
		form.inputs[i] = input
	}
	form.inputs[fieldPriority].SetValue(string(defaultPriority))
	form.inputs[fieldPriority].Placeholder = "high, medium or low"
	form.inputs[fieldDue].Placeholder = task.DateLayout
	form.inputs[fieldName].Focus()
	return form
}

func (f formModel) move(delta int) formModel {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
	return f
}

func (f formModel) onLastField() bool {
	return f.focus == fieldCount-1
}

func (f formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f formModel) createOptions() (task.CreateOptions, error) {
	due, err := task.ParseDate(f.inputs[fieldDue].Value())
	if err != nil {
		return task.CreateOptions{}, fmt.Errorf("due date: %w", err)
	}
	priority, err := task.ParsePriority(f.inputs[fieldPriority].Value())
	if err != nil {
		return task.CreateOptions{}, err
	}
	return task.CreateOptions{
		Name:        f.inputs[fieldName].Value(),
		Description: f.inputs[fieldDescription].Value(),
		Due:         due,
		Priority:    priority,
	}, nil
}

func (f formModel) View() string {
	out := labelStyle.Render("Add task") + "\n\n"
	for i, input := range f.inputs {
		label := fieldLabels[i]
		if i == f.focus {
			label = "> " + label
		} else {
			label = "  " + label
		}
		out += label + "\n  " + input.View() + "\n"
	}
	return out + "\n" + valueMuted.Render("tab next field | enter save on last field | ctrl+s save | esc cancel")
}
