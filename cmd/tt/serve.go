package main

import (
	"log"
	"os"

	"github.com/amonks/tasktrack/server"
	"github.com/amonks/tasktrack/task"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tracker server and web page",
	Long: `Run the tracker server.

Tasks live in memory for the lifetime of the process. The web page is
served at /web/tasks and the client commands talk to the same address.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, err := resolveAddr()
	if err != nil {
		return err
	}

	cfg := currentSettings()
	service := task.NewService(task.Options{})
	srv := server.NewServer(server.Options{
		Tracker:     server.NewTracker(service),
		DefaultSort: cfg.Tasks.Sort(),
		Logger:      log.New(os.Stderr, "tt: ", log.LstdFlags),
	})
	return srv.Serve(addr)
}
