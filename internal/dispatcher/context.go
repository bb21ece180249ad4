package dispatcher

import "github.com/dshills/streamcli/internal/style"

// HistoryAccess is the view of the history store exposed to handlers.
type HistoryAccess interface {
	Entries() []string
	Len() int
	Cap() int
	Clear()
}

// SessionControl is the view of the owning session exposed to handlers:
// the cooperative stop flag and runtime-tunable output settings.
type SessionControl interface {
	// Stop raises the session's stop flag, observed by the embedder's
	// poll loop.
	Stop()

	// Running reports whether the session is accepting input.
	Running() bool

	// ColorsEnabled reports whether output decoration is active.
	ColorsEnabled() bool

	// SetColorsEnabled toggles output decoration.
	SetColorsEnabled(enabled bool)
}

// Context carries the state a handler may touch. All external state reaches
// handlers through it; there are no ambient globals.
type Context struct {
	// Out writes decorated output to the transport.
	Out *style.Printer

	// Registry is the command table, for help-style introspection and
	// runtime registration.
	Registry *Registry

	// History is the session's command history.
	History HistoryAccess

	// Control is the owning session's stop flag and settings.
	Control SessionControl

	// Data holds embedder-specific context values keyed by name.
	Data map[string]any
}

// SetData stores an embedder value on the context.
func (c *Context) SetData(key string, value any) {
	if c.Data == nil {
		c.Data = make(map[string]any)
	}
	c.Data[key] = value
}

// GetData retrieves an embedder value from the context.
func (c *Context) GetData(key string) (any, bool) {
	v, ok := c.Data[key]
	return v, ok
}
