package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/amonks/tasktrack/task"
)

// TaskData is the content of the task form.
type TaskData struct {
	Name        string
	Due         string
	Priority    string
	Description string
}

// DefaultCreateData returns an empty form using the given default priority.
func DefaultCreateData(priority task.Priority) TaskData {
	if !priority.IsValid() {
		priority = task.PriorityMedium
	}
	return TaskData{Priority: string(priority)}
}

// DataFromOptions prefills the form from partially supplied options.
func DataFromOptions(opts task.CreateOptions) TaskData {
	return TaskData{
		Name:        opts.Name,
		Due:         opts.Due.String(),
		Priority:    string(opts.Priority),
		Description: opts.Description,
	}
}

var taskTemplate = template.Must(template.New("task").Parse(`name = {{ printf "%q" .Name }}
due = {{ printf "%q" .Due }} # YYYY-MM-DD
priority = {{ printf "%q" .Priority }} # high, medium, low
---
{{ .Description }}
`))

// RenderTaskTOML renders the form for editing.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask is the form as read back from the editor.
type ParsedTask struct {
	Name        string `toml:"name"`
	Due         string `toml:"due"`
	Priority    string `toml:"priority"`
	Description string `toml:"-"`
}

// ParseTaskTOML parses editor output. The description is the text after
// the "---" separator.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedTask
	meta, err := toml.Decode(frontmatter, &parsed)
	if err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown field %q", task.ErrInvalidInput, undecoded[0].String())
	}
	parsed.Description = strings.TrimSpace(body)
	parsed.Name = strings.TrimSpace(parsed.Name)
	parsed.Due = strings.TrimSpace(parsed.Due)
	parsed.Priority = strings.ToLower(strings.TrimSpace(parsed.Priority))
	return &parsed, nil
}

// ToCreateOptions converts the form into create options.
func (p *ParsedTask) ToCreateOptions() (task.CreateOptions, error) {
	due, err := task.ParseDate(p.Due)
	if err != nil {
		return task.CreateOptions{}, err
	}
	priority, err := task.ParsePriority(p.Priority)
	if err != nil {
		return task.CreateOptions{}, err
	}
	return task.CreateOptions{
		Name:        p.Name,
		Description: p.Description,
		Due:         due,
		Priority:    priority,
	}, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return content, ""
}

// EditTask opens the editor with data and returns the parsed result.
func EditTask(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "tt-task-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}
	return ParseTaskTOML(string(edited))
}
