package args

// Args holds the parsed arguments handed to a command handler: positional
// tokens in encounter order plus a set of --name[=value] flags. Values are
// raw strings; numeric or boolean interpretation is the handler's job.
type Args struct {
	positional []string
	flags      map[string]string
}

// Positional returns the positional argument at index i, or def when the
// index is out of range.
func (a Args) Positional(i int, def string) string {
	if i < 0 || i >= len(a.positional) {
		return def
	}
	return a.positional[i]
}

// All returns the positional arguments in order.
func (a Args) All() []string {
	out := make([]string, len(a.positional))
	copy(out, a.positional)
	return out
}

// Flag returns the value of a named flag, or def when the flag is absent.
// Bare flags (--name with no value) carry the literal value "true".
func (a Args) Flag(name, def string) string {
	if v, ok := a.flags[name]; ok {
		return v
	}
	return def
}

// HasFlag reports whether the named flag was supplied.
func (a Args) HasFlag(name string) bool {
	_, ok := a.flags[name]
	return ok
}

// Flags returns a copy of the flag set.
func (a Args) Flags() map[string]string {
	out := make(map[string]string, len(a.flags))
	for k, v := range a.flags {
		out[k] = v
	}
	return out
}

// Len returns the number of positional arguments.
func (a Args) Len() int {
	return len(a.positional)
}

// Empty reports whether there are no positional arguments.
func (a Args) Empty() bool {
	return len(a.positional) == 0
}

// Shift removes and returns the first positional argument. The dispatcher
// uses it to split the command name from the handler's arguments.
func (a *Args) Shift() (string, bool) {
	if len(a.positional) == 0 {
		return "", false
	}
	head := a.positional[0]
	a.positional = a.positional[1:]
	return head, true
}
