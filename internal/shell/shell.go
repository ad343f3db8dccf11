// Package shell runs an interactive line-oriented tracker session over an
// in-process task.Service.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	internalstrings "github.com/amonks/tasktrack/internal/strings"
	"github.com/amonks/tasktrack/internal/ui"
	"github.com/amonks/tasktrack/task"
	"github.com/fatih/color"
)

// Prompt is printed before each command when the session is interactive.
const Prompt = "tt> "

var (
	okColor   = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
)

// errQuit ends the session without an error.
var errQuit = errors.New("quit")

// Options configures a Shell.
type Options struct {
	In  io.Reader
	Out io.Writer

	// Service defaults to a fresh tracker.
	Service *task.Service

	DefaultPriority task.Priority
	DefaultSort     task.SortMode

	// Width is the wrap width for descriptions.
	Width int

	// Interactive enables prompts.
	Interactive bool
}

// Shell reads commands from In and applies them to a task.Service.
type Shell struct {
	in              *bufio.Scanner
	out             io.Writer
	service         *task.Service
	defaultPriority task.Priority
	sort            task.SortMode
	width           int
	interactive     bool
}

// New returns a Shell for opts.
func New(opts Options) *Shell {
	service := opts.Service
	if service == nil {
		service = task.NewService(task.Options{})
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	in := opts.In
	if in == nil {
		in = strings.NewReader("")
	}
	priority := opts.DefaultPriority
	if !priority.IsValid() {
		priority = task.PriorityMedium
	}
	sortMode, err := task.ParseSortMode(string(opts.DefaultSort))
	if err != nil {
		sortMode = task.SortInsertion
	}
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	return &Shell{
		in:              bufio.NewScanner(in),
		out:             out,
		service:         service,
		defaultPriority: priority,
		sort:            sortMode,
		width:           width,
		interactive:     opts.Interactive,
	}
}

// Run processes commands until quit, end of input, or ctx is done.
// Command errors are printed and do not end the session.
func (s *Shell) Run(ctx context.Context) error {
	if s.interactive {
		fmt.Fprintln(s.out, "Task tracker. Type \"help\" for commands.")
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line, ok := s.readLine(Prompt)
		if !ok {
			return s.in.Err()
		}
		err := s.Execute(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			errColor.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

// Execute runs a single command line.
func (s *Shell) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "add", "a":
		return s.add(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0])))
	case "list", "ls":
		return s.list(args)
	case "completed":
		s.printTasks(s.service.ListCompleted(), "No completed tasks.")
		return nil
	case "show":
		return s.show(args)
	case "done", "complete":
		return s.eachID(args, "Completed", s.service.Complete)
	case "rm", "delete":
		return s.eachID(args, "Removed", s.service.Delete)
	case "undo":
		return s.process("Undid", s.service.UndoLastAdded)
	case "next":
		return s.process("Completed", s.service.ProcessNext)
	case "urgent":
		return s.process("Completed", s.service.ProcessMostUrgent)
	case "stats":
		fmt.Fprintln(s.out, ui.FormatStats(s.service.Stats()))
		return nil
	case "help", "?":
		fmt.Fprint(s.out, helpText)
		return nil
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", fields[0])
	}
}

func (s *Shell) add(name string) error {
	opts := task.CreateOptions{Name: name}
	var ok bool
	if internalstrings.IsBlank(opts.Name) {
		if opts.Name, ok = s.readLine("Name: "); !ok {
			return errors.New("add cancelled")
		}
	}
	if opts.Description, ok = s.readLine("Description: "); !ok {
		return errors.New("add cancelled")
	}
	dueText, ok := s.readLine("Due (YYYY-MM-DD): ")
	if !ok {
		return errors.New("add cancelled")
	}
	due, err := task.ParseDate(dueText)
	if err != nil {
		return fmt.Errorf("due date: %w", err)
	}
	opts.Due = due
	priorityText, ok := s.readLine(fmt.Sprintf("Priority [%s]: ", s.defaultPriority))
	if !ok {
		return errors.New("add cancelled")
	}
	if internalstrings.IsBlank(priorityText) {
		opts.Priority = s.defaultPriority
	} else {
		opts.Priority, err = task.ParsePriority(priorityText)
		if err != nil {
			return err
		}
	}

	created, err := s.service.Create(opts)
	if err != nil {
		return err
	}
	okColor.Fprintf(s.out, "Added %d: %s\n", created.ID, created.Name)
	return nil
}

func (s *Shell) list(args []string) error {
	mode := s.sort
	if len(args) > 0 {
		parsed, err := task.ParseSortMode(args[0])
		if err != nil {
			return err
		}
		mode = parsed
	}
	tasks, err := s.service.SortView(mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, ui.FormatStats(s.service.Stats()))
	s.printTasks(tasks, ui.EmptyTasksMessage)
	return nil
}

func (s *Shell) printTasks(tasks []task.Task, empty string) {
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, ui.Muted(empty))
		return
	}
	fmt.Fprint(s.out, ui.TaskTable(tasks, s.service.Today()))
}

func (s *Shell) show(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: show ID", task.ErrInvalidInput)
	}
	id, err := task.ParseID(args[0])
	if err != nil {
		return err
	}
	t, err := s.service.Find(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s %s\n", ui.Header(fmt.Sprintf("#%d", t.ID)), ui.Header(t.Name))
	fmt.Fprintf(s.out, "Priority: %s\n", ui.PriorityLabel(t.Priority))
	fmt.Fprintf(s.out, "Due:      %s\n", ui.FormatDue(t.Due, s.service.Today()))
	fmt.Fprintf(s.out, "Added:    %s\n", t.Added)
	fmt.Fprintf(s.out, "Status:   %s\n", ui.FormatStatus(t))
	fmt.Fprintf(s.out, "\n%s\n", ui.IndentBlock(t.Description, s.width, 2))
	return nil
}

func (s *Shell) eachID(args []string, verb string, op func(int) (task.Task, error)) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: at least one task id is required", task.ErrInvalidInput)
	}
	ids, err := task.ParseIDs(args)
	if err != nil {
		return err
	}
	for _, id := range ids {
		t, err := op(id)
		if err != nil {
			return err
		}
		okColor.Fprintf(s.out, "%s %d: %s\n", verb, t.ID, t.Name)
	}
	return nil
}

func (s *Shell) process(verb string, op func() (task.Task, bool, error)) error {
	t, ok, err := op()
	if err != nil {
		return err
	}
	if !ok {
		infoColor.Fprintln(s.out, "Nothing to do")
		return nil
	}
	okColor.Fprintf(s.out, "%s %d: %s\n", verb, t.ID, t.Name)
	return nil
}

func (s *Shell) readLine(prompt string) (string, bool) {
	if s.interactive {
		fmt.Fprint(s.out, prompt)
	}
	if !s.in.Scan() {
		if s.interactive {
			fmt.Fprintln(s.out)
		}
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

const helpText = `Commands:
  add [NAME]                 add a task (prompts for the rest)
  list [insertion|priority]  list active tasks
  completed                  list completed tasks
  show ID                    show one task
  done ID...                 complete tasks
  rm ID...                   remove tasks
  undo                       remove the most recently added task
  next                       complete the oldest active task
  urgent                     complete the most urgent active task
  stats                      show counts
  help                       show this help
  quit                       leave the shell
`
