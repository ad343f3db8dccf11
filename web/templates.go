package web

import (
	"html/template"
	"strconv"

	"github.com/amonks/tasktrack/task"
)

func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"priorityLabel": func(p task.Priority) string { return p.Label() },
		"viewURL": func(path string, v view) template.URL {
			return template.URL(path + "?" + v.Query())
		},
		"taskURL": func(path string, id int, v view) template.URL {
			return template.URL(path + "?id=" + strconv.Itoa(id) + "&" + v.Query())
		},
		"withSort": func(v view, mode string) view {
			v.Sort = task.SortMode(mode)
			return v
		},
		"withCompleted": func(v view, show bool) view {
			v.ShowCompleted = show
			return v
		},
	}
	return template.Must(template.New("page").Funcs(funcs).Parse(pageTemplate))
}

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Task Tracker</title>
  <style>
    body {
      margin: 0;
      font-family: "Charter", "Georgia", serif;
      color: #2b2520;
      background: #fcfaf6;
    }
    header {
      padding: 16px 24px;
      border-bottom: 1px solid #d7cdbd;
    }
    header h1 {
      margin: 0 0 6px 0;
      font-size: 20px;
    }
    .stats {
      color: #72685f;
      font-size: 14px;
    }
    main {
      display: flex;
      gap: 18px;
      padding: 18px 24px 28px;
    }
    .pane {
      background: #ffffff;
      border: 1px solid #d7cdbd;
      border-radius: 14px;
      padding: 16px 20px;
    }
    .form-pane {
      width: 32%;
      min-width: 240px;
    }
    .list-pane {
      flex: 1;
    }
    .field {
      display: flex;
      flex-direction: column;
      gap: 6px;
      margin-bottom: 12px;
    }
    input[type="text"],
    input[type="date"],
    select,
    textarea {
      padding: 8px 10px;
      border-radius: 8px;
      border: 1px solid #cbbfae;
      font-family: inherit;
      font-size: 14px;
    }
    textarea {
      min-height: 90px;
      resize: vertical;
    }
    .toolbar {
      display: flex;
      flex-wrap: wrap;
      gap: 10px;
      align-items: center;
      margin-bottom: 14px;
    }
    .toolbar form {
      margin: 0;
    }
    button {
      padding: 6px 12px;
      border-radius: 8px;
      border: 1px solid #bfb3a2;
      background: #efe6d7;
      font-family: inherit;
      cursor: pointer;
    }
    button.danger {
      background: #f4d7d2;
      border-color: #d7a7a1;
    }
    .task-list {
      list-style: none;
      padding: 0;
      margin: 0;
      display: flex;
      flex-direction: column;
      gap: 8px;
    }
    .task {
      display: flex;
      justify-content: space-between;
      gap: 12px;
      padding: 10px 12px;
      border: 1px solid #e0d6c6;
      border-radius: 10px;
    }
    .task-name {
      font-weight: 600;
    }
    .task-meta {
      color: #72685f;
      font-size: 12px;
    }
    .task-actions {
      display: flex;
      gap: 6px;
      align-items: start;
    }
    .priority-high { color: #a5281b; }
    .priority-medium { color: #a26a00; }
    .priority-low { color: #2f7a34; }
    .error {
      padding: 10px 12px;
      border-radius: 8px;
      background: #f7d9d6;
      border: 1px solid #d9a7a2;
      margin-bottom: 12px;
      color: #5b1d17;
    }
    .notice {
      padding: 10px 12px;
      border-radius: 8px;
      background: #e3efdc;
      border: 1px solid #b5cfa6;
      margin-bottom: 12px;
    }
    .muted {
      color: #72685f;
    }
    @media (max-width: 900px) {
      main {
        flex-direction: column;
      }
      .form-pane {
        width: auto;
      }
    }
  </style>
</head>
<body>
  <header>
    <h1>Task Tracker</h1>
    <div class="stats">Tasks: {{.Stats.Total}} | Completed: {{.Stats.Completed}} | In Progress: {{.Stats.Active}}</div>
  </header>
  <main>
    <section class="pane form-pane">
      <h2>Add Task</h2>
      {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
      {{if .Notice}}<div class="notice">{{.Notice}}</div>{{end}}
      <form method="post" action="{{viewURL "/web/tasks/create" .View}}">
        <div class="field">
          <label for="task-name">Name</label>
          <input id="task-name" type="text" name="name" value="{{.Form.Name}}" required>
        </div>
        <div class="field">
          <label for="task-description">Description</label>
          <textarea id="task-description" name="description" required>{{.Form.Description}}</textarea>
        </div>
        <div class="field">
          <label for="task-due">Due date</label>
          <input id="task-due" type="date" name="due" value="{{.Form.Due}}"{{if .Today}} min="{{.Today}}"{{end}} required>
        </div>
        <div class="field">
          <label for="task-priority">Priority</label>
          <select id="task-priority" name="priority">
            {{range .PriorityOptions}}
              <option value="{{.Value}}" {{if eq .Value $.Form.Priority}}selected{{end}}>{{.Label}}</option>
            {{end}}
          </select>
        </div>
        <button type="submit">Add task</button>
      </form>
    </section>
    <section class="pane list-pane">
      <div class="toolbar">
        <strong>Sort:</strong>
        {{if eq .View.Sort "priority"}}
          <a href="{{viewURL "/web/tasks" (withSort .View "insertion")}}">Insertion</a> · <strong>Priority</strong>
        {{else}}
          <strong>Insertion</strong> · <a href="{{viewURL "/web/tasks" (withSort .View "priority")}}">Priority</a>
        {{end}}
        <form method="post" action="{{viewURL "/web/tasks/undo" .View}}"><button type="submit">Undo last added</button></form>
        <form method="post" action="{{viewURL "/web/tasks/next" .View}}"><button type="submit">Process next</button></form>
        <form method="post" action="{{viewURL "/web/tasks/urgent" .View}}"><button type="submit">Process most urgent</button></form>
      </div>
      <ul class="task-list">
        {{range .Tasks}}
          <li class="task">
            <div>
              <div class="task-name">{{.Name}}</div>
              <div>{{.Description}}</div>
              <div class="task-meta">
                #{{.ID}} · <span class="priority-{{.Priority}}">{{priorityLabel .Priority}}</span> · due {{.Due}} · added {{.Added}}
              </div>
            </div>
            <div class="task-actions">
              <form method="post" action="{{taskURL "/web/tasks/complete" .ID $.View}}"><button type="submit">Complete</button></form>
              <form method="post" action="{{taskURL "/web/tasks/delete" .ID $.View}}"><button class="danger" type="submit">Delete</button></form>
            </div>
          </li>
        {{else}}
          <li class="muted">No tasks yet. Add one to get started.</li>
        {{end}}
      </ul>
      <h3>Completed</h3>
      {{if .View.ShowCompleted}}
        <p><a href="{{viewURL "/web/tasks" (withCompleted .View false)}}">Hide completed</a></p>
        <ul class="task-list">
          {{range .Completed}}
            <li class="task">
              <div>
                <div class="task-name">{{.Name}}</div>
                <div class="task-meta">#{{.ID}} · {{priorityLabel .Priority}} · due {{.Due}}</div>
              </div>
              <div class="task-actions">
                <form method="post" action="{{taskURL "/web/tasks/delete" .ID $.View}}"><button class="danger" type="submit">Remove</button></form>
              </div>
            </li>
          {{else}}
            <li class="muted">No completed tasks.</li>
          {{end}}
        </ul>
      {{else}}
        <p><a href="{{viewURL "/web/tasks" (withCompleted .View true)}}">Show completed ({{.Stats.Completed}})</a></p>
      {{end}}
    </section>
  </main>
</body>
</html>
`
