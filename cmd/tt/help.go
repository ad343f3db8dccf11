package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/amonks/tasktrack/internal/config"
	"github.com/amonks/tasktrack/internal/paths"
	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command | config]",
	Short: "Help about any command, or the config files",
	Args:  cobra.ArbitraryArgs,
	RunE:  runHelp,
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
}

func runHelp(cmd *cobra.Command, args []string) error {
	root := cmd.Root()
	switch {
	case len(args) == 0:
		return root.Help()
	case len(args) == 1 && args[0] == "config":
		return writeConfigHelp(cmd.OutOrStdout())
	}

	target, _, err := root.Find(args)
	if err != nil || target == nil || target == root {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown help topic %q\n", strings.Join(args, " "))
		return root.Help()
	}
	return target.Help()
}

// configKeys lists every config key with its environment override.
var configKeys = []struct{ key, env, about string }{
	{"server.addr", "TT_ADDR", "address tt serve listens on and clients dial"},
	{"tasks.default-priority", "TT_DEFAULT_PRIORITY", "priority for tasks added without one"},
	{"tasks.default-sort", "TT_DEFAULT_SORT", "list order: insertion or priority"},
	{"display.color", "TT_COLOR", "auto, always or never"},
	{"display.width", "TT_WIDTH", "wrap width when the terminal size is unknown"},
}

func writeConfigHelp(w io.Writer) error {
	global, err := paths.GlobalConfigFile()
	if err != nil {
		return err
	}
	dir, err := paths.WorkingDir()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Config files, later ones win:")
	fmt.Fprintf(w, "  %s\n", global)
	fmt.Fprintf(w, "  %s\n", filepath.Join(dir, config.ProjectFileName))
	fmt.Fprintln(w, "Environment variables override both.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keys:")
	for _, k := range configKeys {
		fmt.Fprintf(w, "  %-24s %-20s %s\n", k.key, k.env, k.about)
	}
	return nil
}
