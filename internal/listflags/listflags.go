// Package listflags holds flags shared by commands that list tasks.
package listflags

import (
	internalstrings "github.com/amonks/tasktrack/internal/strings"
	"github.com/amonks/tasktrack/task"
	"github.com/spf13/cobra"
)

// AddSortFlag adds a shared --sort flag.
func AddSortFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "sort", "", "Order: insertion (or stack) or priority (default from config)")
}

// AddCompletedFlag adds a shared --completed flag.
func AddCompletedFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVar(target, "completed", false, "List completed tasks instead")
}

// ResolveSort parses the --sort value, falling back to configured when the
// flag is empty.
func ResolveSort(flagValue string, configured task.SortMode) (task.SortMode, error) {
	if internalstrings.IsBlank(flagValue) {
		return task.ParseSortMode(string(configured))
	}
	return task.ParseSortMode(flagValue)
}
