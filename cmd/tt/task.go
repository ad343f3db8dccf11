package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amonks/tasktrack/internal/editor"
	"github.com/amonks/tasktrack/internal/listflags"
	internalstrings "github.com/amonks/tasktrack/internal/strings"
	"github.com/amonks/tasktrack/internal/ui"
	"github.com/amonks/tasktrack/server"
	"github.com/amonks/tasktrack/task"
	"github.com/spf13/cobra"
)

// add
var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a task",
	Long: `Add a task.

By default, opens $EDITOR on a TOML form when running interactively
and no task flags are given. Use --no-edit to skip the editor, or
--edit to force opening it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var (
	addDescription string
	addDue         string
	addPriority    string
	addEdit        bool
	addNoEdit      bool
	addJSON        bool
)

// list
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listSort      string
	listCompleted bool
	listJSON      bool
)

// show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

// done
var doneCmd = &cobra.Command{
	Use:     "done <id>...",
	Aliases: []string{"complete"},
	Short:   "Mark one or more tasks as completed",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDone,
}

// rm
var rmCmd = &cobra.Command{
	Use:     "rm <id>...",
	Aliases: []string{"delete"},
	Short:   "Remove one or more tasks",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRemove,
}

// undo
var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Remove the most recently added task",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

// next
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Complete the oldest task still waiting",
	Args:  cobra.NoArgs,
	RunE:  runNext,
}

// urgent
var urgentCmd = &cobra.Command{
	Use:   "urgent",
	Short: "Complete the highest priority task",
	Args:  cobra.NoArgs,
	RunE:  runUrgent,
}

// stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var statsJSON bool

func init() {
	rootCmd.AddCommand(addCmd, listCmd, showCmd, doneCmd, rmCmd, undoCmd, nextCmd, urgentCmd, statsCmd)

	registerAddFlags(addCmd)
	registerListFlags(listCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}

func registerAddFlags(cmd *cobra.Command) {
	aliasFlags(addFlagAliases, cmd)
	cmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	cmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (high, medium, low; default from config)")
	cmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR (default if interactive)")
	cmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Do not open $EDITOR")
	cmd.Flags().BoolVar(&addJSON, "json", false, "Output as JSON")
}

func registerListFlags(cmd *cobra.Command) {
	aliasFlags(listFlagAliases, cmd)
	listflags.AddSortFlag(cmd, &listSort)
	listflags.AddCompletedFlag(cmd, &listCompleted)
	cmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	value := strings.TrimSuffix(string(input), "\n")
	value = strings.TrimSuffix(value, "\r")
	return value, nil
}

func addFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"description", "due", "priority"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func runAdd(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("description") {
		desc, err := resolveDescriptionFromStdin(addDescription, cmd.InOrStdin())
		if err != nil {
			return err
		}
		addDescription = desc
	}

	defaultPriority := currentSettings().Tasks.Priority()
	var opts task.CreateOptions
	input := addInput{
		edit:        addEdit,
		noEdit:      addNoEdit,
		flagsGiven:  addFlagsChanged(cmd),
		nameGiven:   len(args) > 0,
		dueGiven:    !internalstrings.IsBlank(addDue),
		interactive: editor.IsInteractive(),
	}
	if input.useEditor() {
		data := editor.DefaultCreateData(defaultPriority)
		if len(args) > 0 {
			data.Name = args[0]
		}
		data.Description = addDescription
		data.Due = addDue
		if !internalstrings.IsBlank(addPriority) {
			data.Priority = addPriority
		}

		parsed, err := editor.EditTask(data)
		if err != nil {
			return err
		}
		opts, err = parsed.ToCreateOptions()
		if err != nil {
			return err
		}
	} else {
		if len(args) == 0 {
			return fmt.Errorf("name is required (use --edit to open editor)")
		}
		var err error
		opts, err = createOptionsFromFlags(args[0], addDescription, addDue, addPriority, defaultPriority)
		if err != nil {
			return err
		}
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	created, err := client.Create(cmd.Context(), opts)
	if err != nil {
		return err
	}
	if addJSON {
		return encodeJSON(cmd.OutOrStdout(), created)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", created.ID, created.Name)
	return nil
}

func createOptionsFromFlags(name, description, due, priority string, defaultPriority task.Priority) (task.CreateOptions, error) {
	dueDate, err := task.ParseDate(due)
	if err != nil {
		return task.CreateOptions{}, fmt.Errorf("due date: %w", err)
	}
	resolved := defaultPriority
	if !internalstrings.IsBlank(priority) {
		resolved, err = task.ParsePriority(priority)
		if err != nil {
			return task.CreateOptions{}, err
		}
	}
	if !resolved.IsValid() {
		resolved = task.PriorityMedium
	}
	return task.CreateOptions{
		Name:        name,
		Description: description,
		Due:         dueDate,
		Priority:    resolved,
	}, nil
}

func runList(cmd *cobra.Command, args []string) error {
	sortMode, err := listflags.ResolveSort(listSort, currentSettings().Tasks.Sort())
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	tasks, stats, err := client.List(cmd.Context(), server.ListRequest{Sort: sortMode, Completed: listCompleted})
	if err != nil {
		return err
	}

	if listJSON {
		return encodeJSON(cmd.OutOrStdout(), tasks)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.FormatStats(stats))
	if len(tasks) == 0 {
		empty := ui.EmptyTasksMessage
		if listCompleted {
			empty = "No completed tasks."
		}
		fmt.Fprintln(out, ui.Muted(empty))
		return nil
	}
	fmt.Fprint(out, ui.TaskTable(tasks, localToday()))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ids, err := task.ParseIDs(args)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	tasks := make([]task.Task, 0, len(ids))
	for _, id := range ids {
		t, err := client.Show(cmd.Context(), id)
		if err != nil {
			return err
		}
		tasks = append(tasks, t)
	}

	if showJSON {
		return encodeJSON(cmd.OutOrStdout(), tasks)
	}

	width := ui.TerminalWidth(currentSettings().Display.Width)
	today := localToday()
	for i, t := range tasks {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprint(cmd.OutOrStdout(), formatTaskDetail(t, today, width))
	}
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	return eachTask(cmd, args, "Completed", (*server.Client).Complete)
}

func runRemove(cmd *cobra.Command, args []string) error {
	return eachTask(cmd, args, "Removed", (*server.Client).Delete)
}

func runUndo(cmd *cobra.Command, args []string) error {
	return processTask(cmd, "Undid", (*server.Client).Undo)
}

func runNext(cmd *cobra.Command, args []string) error {
	return processTask(cmd, "Completed", (*server.Client).Next)
}

func runUrgent(cmd *cobra.Command, args []string) error {
	return processTask(cmd, "Completed", (*server.Client).Urgent)
}

func runStats(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	stats, err := client.Stats(cmd.Context())
	if err != nil {
		return err
	}
	if statsJSON {
		return encodeJSON(cmd.OutOrStdout(), stats)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatStats(stats))
	return nil
}

type taskOp func(*server.Client, context.Context, int) (task.Task, error)

type processOp func(*server.Client, context.Context) (task.Task, bool, error)

func eachTask(cmd *cobra.Command, args []string, verb string, op taskOp) error {
	ids, err := task.ParseIDs(args)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	for _, id := range ids {
		t, err := op(client, cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("%s task %d: %s", verb, t.ID, t.Name)))
	}
	return nil
}

func processTask(cmd *cobra.Command, verb string, op processOp) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	t, ok, err := op(client, cmd.Context())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Muted("Nothing to do"))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("%s task %d: %s", verb, t.ID, t.Name)))
	return nil
}

func localToday() task.Date {
	return task.DateOf(time.Now())
}
