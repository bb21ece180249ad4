package dispatcher

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/dshills/streamcli/internal/args"
)

// maxSuggestDistance bounds how far a "did you mean" candidate may be from
// the typed name.
const maxSuggestDistance = 2

// Status classifies a dispatch outcome.
type Status uint8

const (
	// StatusOK means the handler ran and returned nil.
	StatusOK Status = iota
	// StatusEmpty means the line held no command name; nothing was done.
	StatusEmpty
	// StatusUnknown means the command name matched no registered command.
	StatusUnknown
	// StatusFailed means the handler returned an error or panicked.
	StatusFailed
)

// Result describes the outcome of dispatching one line.
type Result struct {
	// Status classifies the outcome.
	Status Status

	// Command is the resolved command name, empty for StatusEmpty.
	Command string

	// Err holds the handler failure for StatusFailed, or ErrUnknownCommand.
	Err error
}

// Dispatcher resolves submitted lines against a registry and invokes
// handlers inside a failure boundary. Handler invocation is synchronous on
// the caller's goroutine; a long-running handler stalls further input
// processing until it returns, by contract.
type Dispatcher struct {
	registry *Registry
}

// New creates a dispatcher over a registry.
func New(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Registry returns the dispatcher's command table.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch tokenizes line, resolves the first positional token as the
// command name, and invokes its handler with the remaining arguments.
//
// An empty line is a no-op. An unknown name and any handler failure are
// reported through ctx.Out and reflected in the Result; neither escapes to
// the caller or ends the session.
func (d *Dispatcher) Dispatch(line string, ctx *Context) Result {
	a := args.Parse(line)

	name, ok := a.Shift()
	if !ok {
		return Result{Status: StatusEmpty}
	}

	cmd := d.registry.Find(name)
	if cmd == nil {
		d.reportUnknown(name, ctx)
		return Result{Status: StatusUnknown, Command: name, Err: ErrUnknownCommand}
	}

	if err := d.invoke(cmd, ctx, a); err != nil {
		if ctx.Out != nil {
			ctx.Out.Error("Command execution failed: " + err.Error())
		}
		return Result{Status: StatusFailed, Command: cmd.Name, Err: err}
	}
	return Result{Status: StatusOK, Command: cmd.Name}
}

// invoke runs the handler inside the failure boundary. A panic becomes an
// error wrapping ErrPanic.
func (d *Dispatcher) invoke(cmd *Command, ctx *Context, a args.Args) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return cmd.Handler.Invoke(ctx, a)
}

// reportUnknown prints the unknown-command message, with a nearest-name
// suggestion when one is close enough.
func (d *Dispatcher) reportUnknown(name string, ctx *Context) {
	if ctx.Out == nil {
		return
	}
	msg := fmt.Sprintf("Unknown command: '%s'. Type 'help' for available commands.", name)
	if suggestion := d.Suggest(name); suggestion != "" {
		msg = fmt.Sprintf("Unknown command: '%s'. Did you mean '%s'?", name, suggestion)
	}
	ctx.Out.Error(msg)
}

// Suggest returns the visible command name closest to the typed name, or ""
// when nothing is convincingly close.
func (d *Dispatcher) Suggest(name string) string {
	names := d.registry.Names()
	if len(names) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	// No subsequence match; fall back to edit distance for plain typos.
	best, bestDist := "", maxSuggestDistance+1
	for _, candidate := range names {
		if dist := fuzzy.LevenshteinDistance(name, candidate); dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}
