package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Hidden long-flag spellings accepted by the task commands.
var (
	addFlagAliases = map[string]string{
		"desc":     "description",
		"prio":     "priority",
		"due-date": "due",
	}
	listFlagAliases = map[string]string{
		"order": "sort",
	}
)

func aliasFlags(aliases map[string]string, cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), aliases)
	}
}

// setFlagAliases maps aliases onto canonical names, ignoring case and
// treating '_' like '-'. Aliases never show up in usage.
func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	previous := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		key := strings.ReplaceAll(strings.ToLower(name), "_", "-")
		if canonical, ok := aliases[key]; ok {
			name = canonical
		}
		return previous(f, name)
	})
}
