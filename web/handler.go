// Package web serves the single-page task tracker.
package web

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	internalstrings "github.com/amonks/tasktrack/internal/strings"
	"github.com/amonks/tasktrack/task"
)

// Options configures the web handler.
type Options struct {
	// BaseURL is the RPC server. Empty means the request's own host.
	BaseURL string

	// DefaultSort applies when the page is opened without ?sort.
	DefaultSort task.SortMode
}

// Handler serves the tracker page and its form posts.
type Handler struct {
	baseURL     string
	defaultSort task.SortMode
	client      *http.Client
	mux         *http.ServeMux
	templates   *templateWrapper

	mu    sync.Mutex
	flash *flashMessage
}

// NewHandler creates a new web handler.
func NewHandler(opts Options) *Handler {
	sortMode, err := task.ParseSortMode(string(opts.DefaultSort))
	if err != nil {
		sortMode = task.SortInsertion
	}
	handler := &Handler{
		baseURL:     internalstrings.TrimTrailingSlash(opts.BaseURL),
		defaultSort: sortMode,
		client:      &http.Client{Timeout: 10 * time.Second},
		templates:   newTemplateWrapper(),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/web/tasks", handler.handleTasks)
	mux.HandleFunc("/web/tasks/create", handler.handleCreate)
	mux.HandleFunc("/web/tasks/complete", handler.handleComplete)
	mux.HandleFunc("/web/tasks/delete", handler.handleDelete)
	mux.HandleFunc("/web/tasks/undo", handler.handleUndo)
	mux.HandleFunc("/web/tasks/next", handler.handleNext)
	mux.HandleFunc("/web/tasks/urgent", handler.handleUrgent)
	handler.mux = mux
	return handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type templateWrapper struct {
	tmpl *template.Template
}

func newTemplateWrapper() *templateWrapper {
	return &templateWrapper{tmpl: newTemplates()}
}

func (tw *templateWrapper) Render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = tw.tmpl.ExecuteTemplate(w, "page", data)
}

type selectOption struct {
	Value string
	Label string
}

// view is the page state carried through query strings.
type view struct {
	Sort          task.SortMode
	ShowCompleted bool
}

func (v view) Query() string {
	values := url.Values{}
	values.Set("sort", string(v.Sort))
	if v.ShowCompleted {
		values.Set("completed", "1")
	}
	return values.Encode()
}

func (v view) Path() string {
	return "/web/tasks?" + v.Query()
}

type pageData struct {
	View            view
	Tasks           []task.Task
	Completed       []task.Task
	Stats           task.Stats
	Today           string
	Form            formValues
	Error           string
	Notice          string
	PriorityOptions []selectOption
}

type formValues struct {
	Name        string
	Description string
	Due         string
	Priority    string
}

type flashMessage struct {
	err       string
	notice    string
	values    formValues
	hasValues bool
}

func (h *Handler) handleTasks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	current := h.requestView(r)
	baseURL := h.requestBaseURL(r)

	data := pageData{
		View:            current,
		Form:            defaultFormValues(),
		PriorityOptions: priorityOptions(),
	}

	active, err := h.fetchTasks(r.Context(), baseURL, listRequest{Sort: current.Sort})
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Tasks = active.Tasks
		data.Stats = active.Stats
		data.Today = active.Today.String()
	}
	if current.ShowCompleted && err == nil {
		completed, err := h.fetchTasks(r.Context(), baseURL, listRequest{Completed: true})
		if err != nil {
			data.Error = err.Error()
		} else {
			data.Completed = completed.Tasks
		}
	}

	if flash := h.consumeFlash(); flash != nil {
		if flash.err != "" {
			data.Error = flash.err
		}
		data.Notice = flash.notice
		if flash.hasValues {
			data.Form = flash.values
		}
	}
	h.templates.Render(w, data)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	current := h.requestView(r)
	if err := r.ParseForm(); err != nil {
		h.setFlash(flashMessage{err: "invalid form input"})
		http.Redirect(w, r, current.Path(), http.StatusSeeOther)
		return
	}
	values := formValuesFromRequest(r)
	options, err := values.createOptions()
	if err != nil {
		h.setFlash(flashMessage{err: err.Error(), values: values, hasValues: true})
		http.Redirect(w, r, current.Path(), http.StatusSeeOther)
		return
	}

	var response taskResponse
	if err := postJSON(r.Context(), h.client, h.requestBaseURL(r), "/tasks/create", createRequest{Task: options}, &response); err != nil {
		h.setFlash(flashMessage{err: err.Error(), values: values, hasValues: true})
		http.Redirect(w, r, current.Path(), http.StatusSeeOther)
		return
	}
	h.setFlash(flashMessage{notice: fmt.Sprintf("Added: %s", response.Task.Name)})
	http.Redirect(w, r, current.Path(), http.StatusSeeOther)
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	h.handleByID(w, r, "/tasks/complete", "Completed")
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.handleByID(w, r, "/tasks/delete", "Removed")
}

func (h *Handler) handleByID(w http.ResponseWriter, r *http.Request, path, verb string) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	current := h.requestView(r)
	id, err := task.ParseID(trimmedQueryValue(r, "id"))
	if err != nil {
		h.setFlash(flashMessage{err: err.Error()})
		http.Redirect(w, r, current.Path(), http.StatusSeeOther)
		return
	}
	var response taskResponse
	if err := postJSON(r.Context(), h.client, h.requestBaseURL(r), path, idRequest{ID: id}, &response); err != nil {
		h.setFlash(flashMessage{err: err.Error()})
		http.Redirect(w, r, current.Path(), http.StatusSeeOther)
		return
	}
	h.setFlash(flashMessage{notice: fmt.Sprintf("%s: %s", verb, response.Task.Name)})
	http.Redirect(w, r, current.Path(), http.StatusSeeOther)
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	h.handleProcess(w, r, "/tasks/undo", "Undid")
}

func (h *Handler) handleNext(w http.ResponseWriter, r *http.Request) {
	h.handleProcess(w, r, "/tasks/next", "Completed")
}

func (h *Handler) handleUrgent(w http.ResponseWriter, r *http.Request) {
	h.handleProcess(w, r, "/tasks/urgent", "Completed")
}

func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request, path, verb string) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	current := h.requestView(r)
	var response processResponse
	if err := postJSON(r.Context(), h.client, h.requestBaseURL(r), path, emptyRequest{}, &response); err != nil {
		h.setFlash(flashMessage{err: err.Error()})
		http.Redirect(w, r, current.Path(), http.StatusSeeOther)
		return
	}
	notice := "Nothing to do"
	if response.OK && response.Task != nil {
		notice = fmt.Sprintf("%s: %s", verb, response.Task.Name)
	}
	h.setFlash(flashMessage{notice: notice})
	http.Redirect(w, r, current.Path(), http.StatusSeeOther)
}

func (h *Handler) requestView(r *http.Request) view {
	current := view{Sort: h.defaultSort}
	if raw := trimmedQueryValue(r, "sort"); raw != "" {
		if mode, err := task.ParseSortMode(raw); err == nil {
			current.Sort = mode
		}
	}
	current.ShowCompleted = trimmedQueryValue(r, "completed") == "1"
	return current
}

func (h *Handler) requestBaseURL(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func (h *Handler) fetchTasks(ctx context.Context, baseURL string, request listRequest) (listResponse, error) {
	var response listResponse
	if err := postJSON(ctx, h.client, baseURL, "/tasks/list", request, &response); err != nil {
		return listResponse{}, err
	}
	return response, nil
}

func (h *Handler) consumeFlash() *flashMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	flash := h.flash
	h.flash = nil
	return flash
}

func (h *Handler) setFlash(flash flashMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.flash = &flash
}

func defaultFormValues() formValues {
	return formValues{Priority: string(task.PriorityMedium)}
}

func formValuesFromRequest(r *http.Request) formValues {
	return formValues{
		Name:        trimmedFormValue(r, "name"),
		Description: strings.TrimSpace(r.FormValue("description")),
		Due:         trimmedFormValue(r, "due"),
		Priority:    trimmedFormValue(r, "priority"),
	}
}

func (values formValues) createOptions() (task.CreateOptions, error) {
	due, err := task.ParseDate(values.Due)
	if err != nil {
		return task.CreateOptions{}, fmt.Errorf("due date: %w", err)
	}
	priority, err := task.ParsePriority(values.Priority)
	if err != nil {
		return task.CreateOptions{}, err
	}
	return task.CreateOptions{
		Name:        values.Name,
		Description: values.Description,
		Due:         due,
		Priority:    priority,
	}, nil
}

func priorityOptions() []selectOption {
	priorities := task.ValidPriorities()
	options := make([]selectOption, 0, len(priorities))
	for _, priority := range priorities {
		options = append(options, selectOption{Value: string(priority), Label: priority.Label()})
	}
	return options
}

func trimmedQueryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func trimmedFormValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func writeMethodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
