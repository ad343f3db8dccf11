package server

import "github.com/amonks/tasktrack/task"

type createRequest struct {
	Task task.CreateOptions `json:"task"`
}

type idRequest struct {
	ID int `json:"id"`
}

type taskResponse struct {
	Task task.Task `json:"task"`
}

// processResponse reports the outcome of undo, next and urgent. OK is false
// when there was nothing to do.
type processResponse struct {
	Task *task.Task `json:"task,omitempty"`
	OK   bool       `json:"ok"`
}

// ListRequest selects which tasks /tasks/list returns.
type ListRequest struct {
	Sort      task.SortMode `json:"sort,omitempty"`
	Completed bool          `json:"completed,omitempty"`
}

type listResponse struct {
	Tasks []task.Task `json:"tasks"`
	Stats task.Stats  `json:"stats"`
	Today task.Date   `json:"today"`
}

type statsResponse struct {
	Stats task.Stats `json:"stats"`
}

type emptyRequest struct{}
