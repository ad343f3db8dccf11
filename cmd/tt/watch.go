package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/amonks/tasktrack/task"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print task changes from a running server as they happen",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return streamEvents(ctx, cmd, client)
}

type eventSource interface {
	Watch(ctx context.Context) (<-chan task.Event, <-chan error)
}

func streamEvents(ctx context.Context, cmd *cobra.Command, source eventSource) error {
	events, errs := source.Watch(ctx)
	for event := range events {
		fmt.Fprintln(cmd.OutOrStdout(), formatEvent(event))
	}
	return <-errs
}
