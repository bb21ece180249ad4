// Package dispatcher resolves submitted command lines to registered
// handlers and contains their failures.
//
// # Registry
//
// Commands are registered by unique name under a case policy chosen at
// construction. Registration is latest-wins: a name collision replaces the
// existing entry (built-ins included) with a logged warning and an
// observable replaced flag, never an error.
//
// # Dispatch
//
// Dispatching a line tokenizes it, takes the first positional token as the
// command name, and invokes the matched handler with the remaining
// arguments inside a failure boundary: handler errors and panics are
// reported through the output printer and never escape. An unknown name is
// reported with a nearest-command suggestion. Invocation is synchronous on
// the caller's goroutine.
//
// # Handler context
//
// Handlers receive a Context carrying the output printer, the registry, the
// history view, and the session control surface. State reaches handlers
// explicitly through the context rather than through globals.
package dispatcher
