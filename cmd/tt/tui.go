package main

import (
	"github.com/amonks/tasktrack/internal/listflags"
	"github.com/amonks/tasktrack/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and work tasks on a running server in a terminal UI",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

var tuiSort string

func init() {
	rootCmd.AddCommand(tuiCmd)
	aliasFlags(listFlagAliases, tuiCmd)
	listflags.AddSortFlag(tuiCmd, &tuiSort)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := currentSettings()
	sortMode, err := listflags.ResolveSort(tuiSort, cfg.Tasks.Sort())
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), client, tui.Options{
		Sort:            sortMode,
		DefaultPriority: cfg.Tasks.Priority(),
	})
}
