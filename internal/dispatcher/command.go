package dispatcher

import "github.com/dshills/streamcli/internal/args"

// DefaultCategory is assigned to commands registered without one.
const DefaultCategory = "General"

// Command is a registered command: metadata plus the handler invoked on
// dispatch. Commands are owned by the Registry after registration.
type Command struct {
	// Name is the unique token the command is dispatched by.
	Name string

	// Description is a one-line summary shown in listings.
	Description string

	// Usage is the invocation synopsis, e.g. "help [command]".
	Usage string

	// Category groups the command in help listings.
	Category string

	// Hidden excludes the command from listings. It is still dispatchable.
	Hidden bool

	// Handler is invoked with the arguments following the command name.
	Handler Handler
}

// Handler executes a command. Returned errors are reported as command
// failures at the dispatch boundary; they never terminate the session.
type Handler interface {
	Invoke(ctx *Context, a args.Args) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx *Context, a args.Args) error

// Invoke implements Handler.
func (f HandlerFunc) Invoke(ctx *Context, a args.Args) error {
	if f == nil {
		return ErrNilHandler
	}
	return f(ctx, a)
}
