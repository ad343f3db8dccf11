package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestAddAliasesSetCanonicalFlags(t *testing.T) {
	var description, priority, due string
	cmd := &cobra.Command{Use: "add"}
	aliasFlags(addFlagAliases, cmd)
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority")
	cmd.Flags().StringVar(&due, "due", "", "Due date")

	if err := cmd.ParseFlags([]string{"--desc", "Hello", "--PRIO", "high", "--due_date", "2099-01-02"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if description != "Hello" || priority != "high" || due != "2099-01-02" {
		t.Fatalf("expected aliases to fill canonical flags, got %q %q %q", description, priority, due)
	}
	if !cmd.Flags().Changed("description") || !cmd.Flags().Changed("priority") {
		t.Fatal("expected canonical flags to be marked as changed")
	}

	usage := cmd.Flags().FlagUsages()
	if strings.Contains(usage, "--desc ") || strings.Contains(usage, "--prio ") {
		t.Fatalf("did not expect aliases in usage, got %q", usage)
	}
	if !strings.Contains(usage, "-d, --description") {
		t.Fatalf("expected shorthand to appear inline, got %q", usage)
	}
}

func TestListOrderAlias(t *testing.T) {
	var sort string
	cmd := &cobra.Command{Use: "list"}
	aliasFlags(listFlagAliases, cmd)
	cmd.Flags().StringVar(&sort, "sort", "", "Sort mode")

	if err := cmd.Flags().Set("order", "priority"); err != nil {
		t.Fatalf("set order alias: %v", err)
	}
	if sort != "priority" {
		t.Fatalf("expected sort to be set via alias, got %q", sort)
	}
}
