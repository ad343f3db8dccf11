package main

import (
	"os"

	"github.com/amonks/tasktrack/internal/editor"
	"github.com/amonks/tasktrack/internal/shell"
	"github.com/amonks/tasktrack/internal/ui"
	"github.com/amonks/tasktrack/task"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Track tasks in an interactive session",
	Long: `Track tasks in an interactive session.

The session keeps its own tasks in memory and does not need a server.
Commands are read one per line from stdin; type "help" for the list.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg := currentSettings()
	session := shell.New(shell.Options{
		In:              cmd.InOrStdin(),
		Out:             cmd.OutOrStdout(),
		Service:         task.NewService(task.Options{}),
		DefaultPriority: cfg.Tasks.Priority(),
		DefaultSort:     cfg.Tasks.Sort(),
		Width:           ui.TerminalWidth(cfg.Display.Width),
		Interactive:     editor.IsInteractive() && cmd.InOrStdin() == os.Stdin,
	})
	return session.Run(cmd.Context())
}
