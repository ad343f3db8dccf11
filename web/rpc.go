package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/amonks/tasktrack/task"
	"github.com/tidwall/gjson"
)

const maxResponseBytes = 4 << 20

// postJSON sends payload to the tracker RPC at path and decodes the reply
// into dest. Non-200 replies become errors carrying the server's message.
func postJSON(ctx context.Context, client *http.Client, baseURL, path string, payload any, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("tracker unavailable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return responseError(resp.Status, data)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func responseError(status string, body []byte) error {
	if gjson.ValidBytes(body) {
		if message := gjson.GetBytes(body, "error"); message.Exists() && message.String() != "" {
			return errors.New(message.String())
		}
	}
	return fmt.Errorf("tracker error: %s", status)
}

type createRequest struct {
	Task task.CreateOptions `json:"task"`
}

type idRequest struct {
	ID int `json:"id"`
}

type taskResponse struct {
	Task task.Task `json:"task"`
}

type processResponse struct {
	Task *task.Task `json:"task,omitempty"`
	OK   bool       `json:"ok"`
}

type listRequest struct {
	Sort      task.SortMode `json:"sort,omitempty"`
	Completed bool          `json:"completed,omitempty"`
}

type listResponse struct {
	Tasks []task.Task `json:"tasks"`
	Stats task.Stats  `json:"stats"`
	Today task.Date   `json:"today"`
}

type emptyRequest struct{}
