package dispatcher

import (
	"log"
	"sort"
	"strings"
)

// Registry is the ordered name -> Command table. Name uniqueness is enforced
// under the configured case policy; registering an existing name replaces
// the old entry (latest wins) with a logged warning, never an error.
//
// The registry is used from the engine's single polling goroutine and is not
// safe for concurrent mutation while dispatch is in progress.
type Registry struct {
	commands      []*Command
	caseSensitive bool

	// logf receives replacement warnings. Defaults to log.Printf.
	logf func(format string, v ...any)
}

// NewRegistry creates an empty registry with the given case policy.
func NewRegistry(caseSensitive bool) *Registry {
	return &Registry{
		caseSensitive: caseSensitive,
		logf:          log.Printf,
	}
}

// SetLogf redirects replacement warnings. A nil function silences them.
func (r *Registry) SetLogf(logf func(format string, v ...any)) {
	r.logf = logf
}

// CaseSensitive reports the active case policy.
func (r *Registry) CaseSensitive() bool {
	return r.caseSensitive
}

func (r *Registry) nameEquals(a, b string) bool {
	if r.caseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

// Register adds a command, replacing any entry with the same name under the
// active case policy. It reports whether an existing entry (including a
// built-in) was replaced, letting embedders detect overrides of commands
// they care about. Registration itself never fails; a nil handler or empty
// name is rejected by returning without registering.
func (r *Registry) Register(cmd *Command) (replaced bool) {
	if cmd == nil || cmd.Name == "" || cmd.Handler == nil {
		return false
	}
	if cmd.Category == "" {
		cmd.Category = DefaultCategory
	}

	if r.Unregister(cmd.Name) {
		replaced = true
		if r.logf != nil {
			r.logf("warning: command %q already exists, overwriting", cmd.Name)
		}
	}
	r.commands = append(r.commands, cmd)
	return replaced
}

// Unregister removes the command with the given name. It reports whether an
// entry was removed.
func (r *Registry) Unregister(name string) bool {
	for i, cmd := range r.commands {
		if r.nameEquals(cmd.Name, name) {
			r.commands = append(r.commands[:i], r.commands[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all commands, built-ins included.
func (r *Registry) Clear() {
	r.commands = nil
}

// Find returns the command registered under name, or nil.
func (r *Registry) Find(name string) *Command {
	for _, cmd := range r.commands {
		if r.nameEquals(cmd.Name, name) {
			return cmd
		}
	}
	return nil
}

// Has reports whether a command is registered under name.
func (r *Registry) Has(name string) bool {
	return r.Find(name) != nil
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

// Commands returns all commands in registration order.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Names returns the names of all visible (non-hidden) commands in
// registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for _, cmd := range r.commands {
		if !cmd.Hidden {
			names = append(names, cmd.Name)
		}
	}
	return names
}

// Categories returns visible commands grouped by category. Category names
// are returned sorted; commands keep registration order within a category.
func (r *Registry) Categories() (names []string, byCategory map[string][]*Command) {
	byCategory = make(map[string][]*Command)
	for _, cmd := range r.commands {
		if cmd.Hidden {
			continue
		}
		if _, ok := byCategory[cmd.Category]; !ok {
			names = append(names, cmd.Category)
		}
		byCategory[cmd.Category] = append(byCategory[cmd.Category], cmd)
	}
	sort.Strings(names)
	return names, byCategory
}
