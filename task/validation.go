package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amonks/tasktrack/internal/ordering"
	"github.com/amonks/tasktrack/internal/validation"
)

var (
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a task with the given ID doesn't exist.
	ErrNotFound = errors.New("task not found")

	// ErrAlreadyCompleted is returned when completing a task that is already done.
	ErrAlreadyCompleted = errors.New("task already completed")

	// ErrEmpty is returned when reading from an empty ordering structure.
	ErrEmpty = ordering.ErrEmpty
)

// CreateOptions describes a new task.
type CreateOptions struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Due         Date     `json:"due"`
	Priority    Priority `json:"priority"`
}

// Normalize trims text fields and lowercases the priority.
func (opts CreateOptions) Normalize() CreateOptions {
	opts.Name = strings.TrimSpace(opts.Name)
	opts.Description = strings.TrimSpace(opts.Description)
	opts.Priority = Priority(strings.ToLower(strings.TrimSpace(string(opts.Priority))))
	return opts
}

// ValidateCreateOptions checks that every field is present and that the due
// date does not precede today.
func ValidateCreateOptions(opts CreateOptions, today Date) error {
	opts = opts.Normalize()
	if opts.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if opts.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if opts.Due.IsZero() {
		return fmt.Errorf("%w: due date is required", ErrInvalidInput)
	}
	if opts.Priority == "" {
		return fmt.Errorf("%w: priority is required", ErrInvalidInput)
	}
	if !opts.Priority.IsValid() {
		return validation.InvalidValueError(ErrInvalidInput, "priority", opts.Priority, ValidPriorities())
	}
	if opts.Due.Before(today) {
		return fmt.Errorf("%w: due date %s is before %s", ErrInvalidInput, opts.Due, today)
	}
	return nil
}
