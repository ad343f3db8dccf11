package task

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amonks/tasktrack/internal/validation"
)

// Priority ranks how urgent a task is.
type Priority string

const (
	// PriorityHigh tasks are processed first.
	PriorityHigh Priority = "high"

	// PriorityMedium is the default for new tasks.
	PriorityMedium Priority = "medium"

	// PriorityLow tasks are processed last.
	PriorityLow Priority = "low"
)

// ValidPriorities returns all priorities from most to least urgent.
func ValidPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// Rank returns the sort rank for a priority. Lower ranks are more urgent.
// Unknown priorities rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 0
	}
}

// Label returns the capitalized display name.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return string(p)
	}
}

// ParsePriority parses a priority name, ignoring case and surrounding space.
func ParsePriority(value string) (Priority, error) {
	normalized := Priority(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", fmt.Errorf("%w: priority is required", ErrInvalidInput)
	}
	if !normalized.IsValid() {
		return "", validation.InvalidValueError(ErrInvalidInput, "priority", Priority(value), ValidPriorities())
	}
	return normalized, nil
}

// SortMode selects the order of SortView.
type SortMode string

const (
	// SortInsertion lists tasks in the order they were added.
	SortInsertion SortMode = "insertion"

	// SortPriority lists the most urgent tasks first.
	SortPriority SortMode = "priority"
)

// ValidSortModes returns all sort modes.
func ValidSortModes() []SortMode {
	return []SortMode{SortInsertion, SortPriority}
}

// ParseSortMode parses a sort mode. "stack" is accepted for insertion order.
func ParseSortMode(value string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "insertion", "stack":
		return SortInsertion, nil
	case "priority":
		return SortPriority, nil
	default:
		return "", validation.InvalidValueError(ErrInvalidInput, "sort mode", SortMode(value), ValidSortModes())
	}
}

// ParseID parses a decimal task ID.
func ParseID(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	id, err := strconv.Atoi(trimmed)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid task id %q", ErrInvalidInput, value)
	}
	return id, nil
}

// ParseIDs parses several decimal task IDs.
func ParseIDs(values []string) ([]int, error) {
	ids := make([]int, 0, len(values))
	for _, value := range values {
		id, err := ParseID(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
