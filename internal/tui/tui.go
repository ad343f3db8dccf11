// Package tui is a terminal client for a running tracker server.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	internalstrings "github.com/amonks/tasktrack/internal/strings"
	"github.com/amonks/tasktrack/internal/ui"
	"github.com/amonks/tasktrack/server"
	"github.com/amonks/tasktrack/task"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Client is the subset of server.Client the TUI uses.
type Client interface {
	List(ctx context.Context, request server.ListRequest) ([]task.Task, task.Stats, error)
	Create(ctx context.Context, opts task.CreateOptions) (task.Task, error)
	Complete(ctx context.Context, id int) (task.Task, error)
	Delete(ctx context.Context, id int) (task.Task, error)
	Undo(ctx context.Context) (task.Task, bool, error)
	Next(ctx context.Context) (task.Task, bool, error)
	Urgent(ctx context.Context) (task.Task, bool, error)
	Watch(ctx context.Context) (<-chan task.Event, <-chan error)
}

// Options configures Run.
type Options struct {
	Sort            task.SortMode
	DefaultPriority task.Priority
}

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type mode int

const (
	modeList mode = iota
	modeForm
)

type model struct {
	ctx             context.Context
	client          Client
	width           int
	height          int
	sort            task.SortMode
	showCompleted   bool
	defaultPriority task.Priority
	mode            mode
	tasks           list.Model
	detail          detailModel
	form            formModel
	stats           task.Stats
	status          string
	statusLevel     statusLevel
	events          <-chan task.Event
	watchErrors     <-chan error
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, client Client, opts Options) error {
	if client == nil {
		return fmt.Errorf("tracker client is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	m := newModel(ctx, client, opts)
	m.events, m.watchErrors = client.Watch(ctx)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func newModel(ctx context.Context, client Client, opts Options) model {
	tasks := list.New(nil, newTaskItemDelegate(), 0, 0)
	tasks.Title = "Tasks"
	tasks.SetShowStatusBar(false)
	tasks.SetFilteringEnabled(false)
	tasks.SetShowHelp(false)
	tasks.SetShowPagination(false)

	sortMode, err := task.ParseSortMode(string(opts.Sort))
	if err != nil {
		sortMode = task.SortInsertion
	}
	priority := opts.DefaultPriority
	if !priority.IsValid() {
		priority = task.PriorityMedium
	}

	return model{
		ctx:             ctx,
		client:          client,
		sort:            sortMode,
		defaultPriority: priority,
		tasks:           tasks,
		detail:          newDetailModel(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.loadTasksCmd(), m.waitForEventCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tasksLoadedMsg:
		m.handleTasksLoaded(msg)
		return m, nil
	case actionDoneMsg:
		return m.handleActionDone(msg)
	case taskEventMsg:
		return m, tea.Batch(m.loadTasksCmd(), m.waitForEventCmd())
	case watchEndedMsg:
		if msg.err != nil {
			m.setStatus("event stream: "+msg.err.Error(), statusError)
		}
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeForm {
			return m.handleFormKey(msg)
		}
		if updated, cmd, handled := m.handleKey(msg); handled {
			return updated, cmd
		}
	}

	var cmd tea.Cmd
	m.tasks, cmd = m.tasks.Update(msg)
	m.syncDetail()
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading tasks..."
	}
	contentHeight := m.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	leftWidth, rightWidth := splitWidths(m.width)

	right := m.detail.View()
	if m.mode == modeForm {
		right = m.form.View()
	}
	listPane := m.renderPane(m.tasks.View(), leftWidth, contentHeight, m.mode == modeList)
	detailPane := m.renderPane(right, rightWidth, contentHeight, m.mode == modeForm)
	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	return strings.Join([]string{m.renderHeader(), content, m.renderHelpLine(), m.renderStatusLine()}, "\n")
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd, bool) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit, true
	case "r":
		return m, m.loadTasksCmd(), true
	case "s":
		if m.sort == task.SortPriority {
			m.sort = task.SortInsertion
		} else {
			m.sort = task.SortPriority
		}
		m.setStatus("sorted by "+string(m.sort), statusInfo)
		return m, m.loadTasksCmd(), true
	case "c":
		m.showCompleted = !m.showCompleted
		return m, m.loadTasksCmd(), true
	case "a":
		m.mode = modeForm
		m.form = newFormModel(m.defaultPriority)
		return m, nil, true
	case " ", "space":
		item, ok := m.currentItem()
		if !ok {
			return m, nil, true
		}
		id := item.task.ID
		return m, m.actionCmd("Completed", func() (task.Task, bool, error) {
			done, err := m.client.Complete(m.ctx, id)
			return done, err == nil, err
		}), true
	case "d":
		item, ok := m.currentItem()
		if !ok {
			return m, nil, true
		}
		id := item.task.ID
		return m, m.actionCmd("Deleted", func() (task.Task, bool, error) {
			deleted, err := m.client.Delete(m.ctx, id)
			return deleted, err == nil, err
		}), true
	case "u":
		return m, m.actionCmd("Undid", func() (task.Task, bool, error) { return m.client.Undo(m.ctx) }), true
	case "n":
		return m, m.actionCmd("Completed", func() (task.Task, bool, error) { return m.client.Next(m.ctx) }), true
	case "p":
		return m, m.actionCmd("Completed", func() (task.Task, bool, error) { return m.client.Urgent(m.ctx) }), true
	}
	return m, nil, false
}

func (m model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.setStatus("", statusNone)
		return m, nil
	case "tab", "down":
		m.form = m.form.move(1)
		return m, nil
	case "shift+tab", "up":
		m.form = m.form.move(-1)
		return m, nil
	case "ctrl+s":
		return m.submitForm()
	case "enter":
		if m.form.onLastField() {
			return m.submitForm()
		}
		m.form = m.form.move(1)
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m model) submitForm() (tea.Model, tea.Cmd) {
	opts, err := m.form.createOptions()
	if err != nil {
		m.setStatus(err.Error(), statusError)
		return m, nil
	}
	m.mode = modeList
	return m, m.actionCmd("Added", func() (task.Task, bool, error) {
		created, err := m.client.Create(m.ctx, opts)
		return created, err == nil, err
	})
}

func (m *model) handleTasksLoaded(msg tasksLoadedMsg) {
	if msg.err != nil {
		m.setStatus(msg.err.Error(), statusError)
		return
	}
	selectedID := 0
	if item, ok := m.currentItem(); ok {
		selectedID = item.task.ID
	}
	items := make([]list.Item, 0, len(msg.tasks))
	for _, t := range msg.tasks {
		items = append(items, taskItem{task: t})
	}
	m.tasks.SetItems(items)
	m.stats = msg.stats
	if m.showCompleted {
		m.tasks.Title = "Completed"
	} else {
		m.tasks.Title = "Tasks (" + string(m.sort) + ")"
	}
	m.selectByID(selectedID)
	m.syncDetail()
}

func (m model) handleActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err != nil:
		m.setStatus(msg.err.Error(), statusError)
	case !msg.ok:
		m.setStatus("Nothing to do", statusInfo)
	default:
		m.setStatus(fmt.Sprintf("%s: %s", msg.verb, msg.task.Name), statusInfo)
	}
	return m, m.loadTasksCmd()
}

func (m model) currentItem() (taskItem, bool) {
	item := m.tasks.SelectedItem()
	if item == nil {
		return taskItem{}, false
	}
	current, ok := item.(taskItem)
	return current, ok
}

func (m *model) selectByID(id int) {
	if id == 0 {
		return
	}
	for i, item := range m.tasks.Items() {
		if current, ok := item.(taskItem); ok && current.task.ID == id {
			m.tasks.Select(i)
			return
		}
	}
}

func (m *model) syncDetail() {
	item, ok := m.currentItem()
	if ok && m.detail.selected && m.detail.task == item.task {
		return
	}
	m.detail.SetTask(item.task, ok)
}

func (m *model) resize() {
	contentHeight := m.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	leftWidth, rightWidth := splitWidths(m.width)
	innerHeight := contentHeight - 2
	if innerHeight < 1 {
		innerHeight = 1
	}
	listWidth := leftWidth - 4
	if listWidth < 1 {
		listWidth = 1
	}
	detailWidth := rightWidth - 4
	if detailWidth < 1 {
		detailWidth = 1
	}
	m.tasks.SetSize(listWidth, innerHeight)
	m.detail.SetSize(detailWidth, innerHeight)
}

func splitWidths(width int) (int, int) {
	left := width / 2
	if left < 30 {
		left = 30
	}
	if left > width-20 {
		left = width / 2
	}
	right := width - left
	if right < 20 {
		right = 20
		left = width - right
	}
	return left, right
}

func (m model) renderHeader() string {
	title := headerStyle.Render("Task Tracker")
	stats := valueMuted.Render(ui.FormatStats(m.stats))
	spacerWidth := m.width - lipgloss.Width(title) - lipgloss.Width(stats)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	return title + strings.Repeat(" ", spacerWidth) + stats
}

func (m model) renderPane(content string, width, height int, focused bool) string {
	style := paneStyle
	if focused {
		style = paneActiveStyle
	}
	return style.Width(max(width, 0)).Height(max(height, 0)).Render(content)
}

func (m model) renderHelpLine() string {
	text := "space complete | d delete | u undo | n next | p urgent | a add | s sort | c completed | r refresh | q quit"
	if m.mode == modeForm {
		text = "tab next field | shift+tab previous | ctrl+s save | esc cancel"
	}
	return helpStyle.Render(truncateText(text, m.width))
}

func (m model) renderStatusLine() string {
	if internalstrings.IsBlank(m.status) {
		return ""
	}
	style := valueMuted
	switch m.statusLevel {
	case statusError:
		style = statusErrorStyle
	case statusInfo:
		style = statusSuccessStyle
	}
	return style.Render(m.status)
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m model) loadTasksCmd() tea.Cmd {
	request := server.ListRequest{Sort: m.sort, Completed: m.showCompleted}
	return func() tea.Msg {
		tasks, stats, err := m.client.List(m.ctx, request)
		return tasksLoadedMsg{tasks: tasks, stats: stats, err: err}
	}
}

func (m model) actionCmd(verb string, op func() (task.Task, bool, error)) tea.Cmd {
	return func() tea.Msg {
		result, ok, err := op()
		return actionDoneMsg{verb: verb, task: result, ok: ok, err: err}
	}
}

func (m model) waitForEventCmd() tea.Cmd {
	if m.events == nil || m.watchErrors == nil {
		return nil
	}
	events, errs := m.events, m.watchErrors
	return func() tea.Msg {
		select {
		case event, ok := <-events:
			if !ok {
				return watchEndedMsg{err: <-errs}
			}
			return taskEventMsg{event: event}
		case err := <-errs:
			return watchEndedMsg{err: err}
		}
	}
}

type tasksLoadedMsg struct {
	tasks []task.Task
	stats task.Stats
	err   error
}

type actionDoneMsg struct {
	verb string
	task task.Task
	ok   bool
	err  error
}

type taskEventMsg struct {
	event task.Event
}

type watchEndedMsg struct {
	err error
}
