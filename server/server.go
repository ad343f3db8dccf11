// Package server exposes a task tracker over JSON-over-POST RPCs and
// mounts the web page.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"time"

	internalstrings "github.com/amonks/tasktrack/internal/strings"
	"github.com/amonks/tasktrack/task"
	"github.com/amonks/tasktrack/web"
)

// Options configures a Server.
type Options struct {
	// Tracker holds the tasks. Defaults to an empty tracker.
	Tracker *Tracker

	// DefaultSort is the web page's initial order.
	DefaultSort task.SortMode

	Logger *log.Logger
}

// Server handles task RPCs.
type Server struct {
	tracker     *Tracker
	defaultSort task.SortMode
	logger      *log.Logger
	events      *broker
	unsubscribe func()
}

const shutdownTimeout = 5 * time.Second

// NewServer creates a server around opts.Tracker.
func NewServer(opts Options) *Server {
	tracker := opts.Tracker
	if tracker == nil {
		tracker = NewTracker(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "tt: ", log.LstdFlags)
	}
	s := &Server{
		tracker:     tracker,
		defaultSort: opts.DefaultSort,
		logger:      logger,
	}
	s.events = newBroker(func() { s.logf("event stream full, dropping event") })
	s.unsubscribe = tracker.Subscribe(s.handleEvent)
	return s
}

// Handler returns the HTTP handler for task RPCs and the web page.
func (s *Server) Handler() http.Handler {
	return s.handler("")
}

func (s *Server) handler(baseURL string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/create", s.handleCreate)
	mux.HandleFunc("/tasks/complete", s.handleComplete)
	mux.HandleFunc("/tasks/delete", s.handleDelete)
	mux.HandleFunc("/tasks/show", s.handleShow)
	mux.HandleFunc("/tasks/undo", s.handleUndo)
	mux.HandleFunc("/tasks/next", s.handleNext)
	mux.HandleFunc("/tasks/urgent", s.handleUrgent)
	mux.HandleFunc("/tasks/list", s.handleList)
	mux.HandleFunc("/tasks/stats", s.handleStats)
	mux.HandleFunc("/events", s.handleEvents)
	webHandler := web.NewHandler(web.Options{BaseURL: baseURL, DefaultSort: s.defaultSort})
	mux.Handle("/web/", webHandler)
	mux.Handle("/web", http.RedirectHandler("/web/tasks", http.StatusFound))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/web/tasks", http.StatusFound)
	})
	return s.recoverHandler(mux)
}

// Close ends open event streams and detaches from the tracker.
func (s *Server) Close() {
	s.events.close()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Serve runs the server on addr until it fails or an interrupt arrives.
func (s *Server) Serve(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.ServeListener(listener)
}

// ServeListener is Serve on an existing listener.
func (s *Server) ServeListener(listener net.Listener) error {
	addr := listener.Addr().String()
	server := &http.Server{
		Handler:  s.handler(resolveWebBaseURL(addr)),
		ErrorLog: s.logger,
	}

	listenErrs := make(chan error, 1)
	go func() {
		listenErrs <- server.Serve(listener)
	}()
	s.logf("listening on http://%s", addr)

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	select {
	case err := <-listenErrs:
		s.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logf("server stopped: %v", err)
			return err
		}
		return nil
	case <-interrupts:
		s.logf("interrupt received, shutting down")
		s.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		shutdownErr := server.Shutdown(shutdownCtx)
		cancel()
		listenErr := <-listenErrs
		if errors.Is(listenErr, http.ErrServerClosed) {
			listenErr = nil
		}
		return errors.Join(shutdownErr, listenErr)
	}
}

func resolveWebBaseURL(addr string) string {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return internalstrings.TrimTrailingSlash(trimmed)
	}
	host := trimmed
	if strings.HasPrefix(host, ":") {
		host = "127.0.0.1" + host
	}
	if strings.HasPrefix(host, "0.0.0.0:") {
		host = "127.0.0.1:" + strings.TrimPrefix(host, "0.0.0.0:")
	}
	if strings.HasPrefix(host, "[::]:") {
		host = "127.0.0.1:" + strings.TrimPrefix(host, "[::]:")
	}
	return "http://" + host
}

func (s *Server) handleEvent(event task.Event) {
	s.logf("task %d %s (%s)", event.Task.ID, event.Kind, formatStats(event.Stats))
	s.events.publish(event)
}

func formatStats(stats task.Stats) string {
	return fmt.Sprintf("active %d, completed %d", stats.Active, stats.Completed)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload createRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	created, err := s.tracker.Create(payload.Task)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse{Task: created})
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	s.handleByID(w, r, s.tracker.Complete)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.handleByID(w, r, s.tracker.Delete)
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	s.handleByID(w, r, s.tracker.Find)
}

func (s *Server) handleByID(w http.ResponseWriter, r *http.Request, op func(int) (task.Task, error)) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload idRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if payload.ID <= 0 {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: task id is required", task.ErrInvalidInput))
		return
	}
	result, err := op(payload.ID)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse{Task: result})
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.handleProcess(w, r, s.tracker.UndoLastAdded)
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.handleProcess(w, r, s.tracker.ProcessNext)
}

func (s *Server) handleUrgent(w http.ResponseWriter, r *http.Request) {
	s.handleProcess(w, r, s.tracker.ProcessMostUrgent)
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request, op func() (task.Task, bool, error)) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload emptyRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	result, ok, err := op()
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	response := processResponse{OK: ok}
	if ok {
		response.Task = &result
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload ListRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	var tasks []task.Task
	if payload.Completed {
		tasks = s.tracker.ListCompleted()
	} else {
		mode, err := task.ParseSortMode(string(payload.Sort))
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}
		tasks, err = s.tracker.SortView(mode)
		if err != nil {
			s.writeError(w, r, statusFor(err), err)
			return
		}
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	writeJSON(w, http.StatusOK, listResponse{Tasks: tasks, Stats: s.tracker.Stats(), Today: s.tracker.Today()})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload emptyRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{Stats: s.tracker.Stats()})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeError(w, r, http.StatusInternalServerError, fmt.Errorf("response does not support streaming"))
		return
	}
	events, cancel := s.events.subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()
	encoder := json.NewEncoder(w)
	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := encoder.Encode(event); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (s *Server) recoverHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &responseTracker{ResponseWriter: w}
		defer func() {
			if recovered := recover(); recovered != nil {
				s.logf("panic handling request %s %s: %v\n%s", r.Method, r.URL.Path, recovered, debug.Stack())
				if writer.wroteHeader {
					return
				}
				writeJSON(writer, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			}
		}()
		next.ServeHTTP(writer, r)
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, task.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, task.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, task.ErrAlreadyCompleted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	s.writeError(w, r, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
	return false
}

func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("%w: decode request: %v", task.ErrInvalidInput, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: unexpected extra JSON data", task.ErrInvalidInput)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logRequestError(r, status, err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) logRequestError(r *http.Request, status int, err error) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Printf("request %s %s failed (%d): %v", r.Method, r.URL.Path, status, err)
}

func (s *Server) logf(format string, args ...any) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Printf(format, args...)
}

type responseTracker struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *responseTracker) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseTracker) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(data)
}

func (w *responseTracker) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
