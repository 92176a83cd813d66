// Package shell implements the command interpreter behind pqshell: a task
// list kept in a priority queue ordered by due date, earliest first.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/amp-labs/amp-pq/date"
	"github.com/amp-labs/amp-pq/logger"
	"github.com/amp-labs/amp-pq/pqueue"
)

var (
	// ErrQuit is returned by Execute for the quit command.
	ErrQuit = errors.New("quit")

	// ErrUsage is returned for unknown commands and malformed arguments.
	ErrUsage = errors.New("usage")
)

// Commands lists the commands understood by Execute, in menu order.
var Commands = []string{ //nolint:gochecknoglobals
	"insert", "change", "pop", "remove", "contains",
	"first", "next", "list", "snapshot", "size", "clear", "help", "quit",
}

const help = `insert <task> <DD/MM/YYYY>            add a task
change <task> <old date> <new date>  reschedule a task
pop                                  drop the most urgent task
remove <task>                        drop the first task with this name
contains <task>                      check whether a task is queued
first | next                         step through the queue
list                                 print every task
snapshot                             print a copy of the queue, then discard it
size                                 number of queued tasks
clear                                drop everything
help                                 show this text
quit | exit                          leave
`

// Tasks is the queue type the shell operates on.
type Tasks = pqueue.Queue[string, date.Date]

// Behaviors returns the queue behaviors used by the shell: task names
// compared exactly, dates compared chronologically with the earliest first.
func Behaviors() pqueue.Behaviors[string, date.Date] {
	b := pqueue.Behaviors[string, date.Date]{
		CopyElement:       pqueue.ValueCopy[string],
		FreeElement:       pqueue.NoFree[string],
		EqualElements:     pqueue.Equal[string],
		CopyPriority:      date.Copy,
		FreePriority:      pqueue.NoFree[date.Date],
		ComparePriorities: date.Compare,
	}

	return b.Reversed()
}

// Session is one interactive shell over a task queue.
type Session struct {
	tasks *Tasks
	out   io.Writer
	log   *slog.Logger
}

// New creates a session writing its output to out. A nil log falls back to
// logger.Get().
func New(out io.Writer, log *slog.Logger, opts ...pqueue.Option) (*Session, error) {
	if log == nil {
		log = logger.Get()
	}

	tasks, err := pqueue.New(Behaviors(), append([]pqueue.Option{pqueue.WithLogger(log)}, opts...)...)
	if err != nil {
		return nil, err
	}

	return &Session{tasks: tasks, out: out, log: log}, nil
}

// Tasks exposes the underlying queue.
func (s *Session) Tasks() *Tasks {
	return s.tasks
}

// Close releases the queue.
func (s *Session) Close() {
	s.tasks.Destroy()
}

// Execute runs one command line. Queue errors are returned unchanged so the
// caller can report them with pqueue.ResultOf.
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]

	s.log.Debug("executing command", "command", cmd, "args", len(args))

	switch cmd {
	case "insert":
		return s.insert(args)
	case "change":
		return s.change(args)
	case "pop":
		return s.tasks.Remove()
	case "remove":
		return s.withTask(args, s.tasks.RemoveElement)
	case "contains":
		return s.withTask(args, func(task string) error {
			s.printf("%t\n", s.tasks.Contains(task))

			return nil
		})
	case "first":
		s.printCursor(s.tasks.GetFirst())
	case "next":
		s.printCursor(s.tasks.GetNext())
	case "list":
		s.list(s.tasks)
	case "snapshot":
		return s.snapshot()
	case "size":
		s.printf("%d\n", s.tasks.Size())
	case "clear":
		return s.tasks.Clear()
	case "help":
		s.printf("%s", help)
	case "quit", "exit":
		return ErrQuit
	default:
		return fmt.Errorf("%w: unknown command %q (try help)", ErrUsage, cmd)
	}

	return nil
}

func (s *Session) insert(args []string) error {
	if len(args) < 2 { //nolint:mnd
		return fmt.Errorf("%w: insert <task> <DD/MM/YYYY>", ErrUsage)
	}

	due, err := date.Parse(args[len(args)-1])
	if err != nil {
		return err
	}

	return s.tasks.Insert(strings.Join(args[:len(args)-1], " "), due)
}

func (s *Session) change(args []string) error {
	if len(args) < 3 { //nolint:mnd
		return fmt.Errorf("%w: change <task> <old date> <new date>", ErrUsage)
	}

	oldDue, err := date.Parse(args[len(args)-2])
	if err != nil {
		return err
	}

	newDue, err := date.Parse(args[len(args)-1])
	if err != nil {
		return err
	}

	return s.tasks.ChangePriority(strings.Join(args[:len(args)-2], " "), oldDue, newDue)
}

func (s *Session) withTask(args []string, f func(string) error) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: a task name is required", ErrUsage)
	}

	return f(strings.Join(args, " "))
}

func (s *Session) snapshot() error {
	dup, err := s.tasks.Copy()
	if err != nil {
		return err
	}

	defer dup.Destroy()

	s.list(dup)

	return nil
}

func (s *Session) list(q *Tasks) {
	if q.Size() == 0 {
		s.printf("(empty)\n")

		return
	}

	for task, due := range q.All() {
		s.printf("%s  %s\n", due, task)
	}
}

func (s *Session) printCursor(task string, ok bool) {
	if !ok {
		s.printf("(end)\n")

		return
	}

	s.printf("%s\n", task)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
