package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/amonks/tasktrack/task"
	"github.com/tidwall/gjson"
)

// Client calls task RPCs.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the given address or URL.
func NewClient(addr string) *Client {
	baseURL := strings.TrimRight(addr, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	return &Client{baseURL: baseURL, client: &http.Client{}}
}

// BaseURL returns the server URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Create adds a task.
func (c *Client) Create(ctx context.Context, opts task.CreateOptions) (task.Task, error) {
	var response taskResponse
	if err := c.post(ctx, "/tasks/create", createRequest{Task: opts}, &response); err != nil {
		return task.Task{}, err
	}
	return response.Task, nil
}

// Complete marks a task completed.
func (c *Client) Complete(ctx context.Context, id int) (task.Task, error) {
	return c.byID(ctx, "/tasks/complete", id)
}

// Delete removes a task.
func (c *Client) Delete(ctx context.Context, id int) (task.Task, error) {
	return c.byID(ctx, "/tasks/delete", id)
}

// Show returns one task.
func (c *Client) Show(ctx context.Context, id int) (task.Task, error) {
	return c.byID(ctx, "/tasks/show", id)
}

// Undo deletes the most recently added task still present.
func (c *Client) Undo(ctx context.Context) (task.Task, bool, error) {
	return c.process(ctx, "/tasks/undo")
}

// Next completes the oldest task in arrival order.
func (c *Client) Next(ctx context.Context) (task.Task, bool, error) {
	return c.process(ctx, "/tasks/next")
}

// Urgent completes the highest-priority task.
func (c *Client) Urgent(ctx context.Context) (task.Task, bool, error) {
	return c.process(ctx, "/tasks/urgent")
}

// List returns active tasks in the requested order, or completed tasks.
func (c *Client) List(ctx context.Context, request ListRequest) ([]task.Task, task.Stats, error) {
	var response listResponse
	if err := c.post(ctx, "/tasks/list", request, &response); err != nil {
		return nil, task.Stats{}, err
	}
	return response.Tasks, response.Stats, nil
}

// Stats returns the active and completed counts.
func (c *Client) Stats(ctx context.Context) (task.Stats, error) {
	var response statsResponse
	if err := c.post(ctx, "/tasks/stats", emptyRequest{}, &response); err != nil {
		return task.Stats{}, err
	}
	return response.Stats, nil
}

// Watch streams task events until ctx is cancelled or the server closes
// the stream. The error channel receives exactly one value.
func (c *Client) Watch(ctx context.Context) (<-chan task.Event, <-chan error) {
	events := make(chan task.Event, 16)
	errCh := make(chan error, 1)

	go func() {
		defer close(events)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/events", strings.NewReader("{}"))
		if err != nil {
			errCh <- err
			return
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := c.client.Do(req)
		if err != nil {
			errCh <- err
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			errCh <- readErrorResponse(resp)
			return
		}
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			if !gjson.ValidBytes(line) {
				errCh <- fmt.Errorf("decode event: invalid JSON %q", line)
				return
			}
			var event task.Event
			if err := json.Unmarshal(line, &event); err != nil {
				errCh <- fmt.Errorf("decode event: %w", err)
				return
			}
			select {
			case events <- event:
			case <-ctx.Done():
				errCh <- nil
				return
			}
		}
		if ctx.Err() != nil {
			errCh <- nil
			return
		}
		errCh <- scanner.Err()
	}()

	return events, errCh
}

func (c *Client) byID(ctx context.Context, path string, id int) (task.Task, error) {
	var response taskResponse
	if err := c.post(ctx, path, idRequest{ID: id}, &response); err != nil {
		return task.Task{}, err
	}
	return response.Task, nil
}

func (c *Client) process(ctx context.Context, path string) (task.Task, bool, error) {
	var response processResponse
	if err := c.post(ctx, path, emptyRequest{}, &response); err != nil {
		return task.Task{}, false, err
	}
	if !response.OK || response.Task == nil {
		return task.Task{}, false, nil
	}
	return *response.Task, true, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, dest any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return readErrorResponse(resp)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return err
	}
	return nil
}

// Error is a failed RPC. It unwraps to the task sentinel matching the
// HTTP status, so errors.Is works across the wire.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return task.ErrInvalidInput
	case http.StatusNotFound:
		return task.ErrNotFound
	case http.StatusConflict:
		return task.ErrAlreadyCompleted
	default:
		return nil
	}
}

func readErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	message := resp.Status
	if result := gjson.GetBytes(body, "error"); result.Exists() && result.String() != "" {
		message = result.String()
	}
	return &Error{Status: resp.StatusCode, Message: message}
}
