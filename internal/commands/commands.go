// Package commands runs the editor's terminal subcommands ("cmd <name> [flags] [args]").
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/shlex"
)

const prefix = "cmd"

// ErrMissingCommand is returned by Execute for "cmd" with nothing after it.
var ErrMissingCommand = errors.New("missing subcommand (try: cmd help)")

// Command is a subcommand. When FlagSet is set, the arguments are parsed with it first and Run gets
// the remaining positional arguments. Without a FlagSet, Run gets the arguments as typed, so values
// such as "-1,2,3" are not mistaken for flags.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// UsageError reports a subcommand called with the wrong arguments.
type UsageError struct {
	Command string
	Usage   string
	Reason  string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s (usage: cmd %s)", e.Command, e.Reason, e.Usage)
}

// Usagef builds a *UsageError for c.
func (c *Command) Usagef(format string, a ...any) error {
	return &UsageError{Command: c.Name, Usage: c.Usage, Reason: fmt.Sprintf(format, a...)}
}

// Registry holds subcommands by name.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds (or replaces) a subcommand and returns it. fs may be nil; when set its output is
// discarded and parse errors are returned instead of printed.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) *Command {
	if fs != nil {
		fs.SetOutput(io.Discard)
	}
	cmd := &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
	r.cmds[name] = cmd
	return cmd
}

// Lookup returns the named subcommand.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// Names returns the registered subcommand names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Help returns one usage line per subcommand.
func (r *Registry) Help() []string {
	names := r.Names()
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = "cmd " + r.cmds[name].Usage
	}
	return lines
}

// Parse interprets line as a terminal line. If it starts with the word "cmd", the rest is split
// shell-style (quotes group words) and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line != prefix && !strings.HasPrefix(line, prefix+" ") {
		return nil, false, nil
	}
	args, err = shlex.Split(line[len(prefix):])
	if err != nil {
		return nil, true, fmt.Errorf("cannot parse command: %w", err)
	}
	return args, true, nil
}

// Execute runs the subcommand named by args[0] with the rest as its arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissingCommand
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}
	rest := args[1:]
	if cmd.FlagSet != nil {
		// flag values persist between runs; start each run from the defaults
		cmd.FlagSet.VisitAll(func(f *flag.Flag) { _ = f.Value.Set(f.DefValue) })
		if err := cmd.FlagSet.Parse(rest); err != nil {
			return cmd.Usagef("%v", err)
		}
		rest = cmd.FlagSet.Args()
	}
	return cmd.Run(rest)
}
