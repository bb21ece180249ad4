package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrUnknownCommand indicates the first token matched no registered command.
	ErrUnknownCommand = errors.New("dispatcher: unknown command")

	// ErrPanic indicates a handler panicked; the panic is contained at the
	// dispatch boundary.
	ErrPanic = errors.New("dispatcher: handler panic")

	// ErrNilHandler indicates a command was registered without a handler.
	ErrNilHandler = errors.New("dispatcher: nil handler")

	// ErrEmptyName indicates a registration with an empty command name.
	ErrEmptyName = errors.New("dispatcher: empty command name")
)
