// Package main implements the tt CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/amonks/tasktrack/internal/config"
	"github.com/amonks/tasktrack/internal/paths"
	"github.com/amonks/tasktrack/internal/ui"
	"github.com/amonks/tasktrack/server"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "tt",
	Short:             "Task tracker - add tasks, then work them by recency, arrival or urgency",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

var (
	rootAddr  string
	rootColor string
)

// settings holds the configuration loaded before each command runs.
var settings *config.Config

func init() {
	rootCmd.PersistentFlags().StringVar(&rootAddr, "addr", "", "Server address or port (default from config, then 8089)")
	rootCmd.PersistentFlags().StringVar(&rootColor, "color", "", "Color output: auto, always or never")
}

func loadSettings(cmd *cobra.Command, args []string) error {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}
	settings = cfg

	mode := cfg.Display.Color
	if cmd.Flags().Changed("color") {
		mode = rootColor
	}
	ui.SetColorMode(mode)
	return nil
}

func currentSettings() *config.Config {
	if settings == nil {
		return config.Default()
	}
	return settings
}

// resolveAddr returns the server address from --addr or config.
func resolveAddr() (string, error) {
	return server.ResolveAddr(rootAddr, currentSettings().Server.Addr)
}

func newClient() (*server.Client, error) {
	addr, err := resolveAddr()
	if err != nil {
		return nil, err
	}
	return server.NewClient(addr), nil
}
