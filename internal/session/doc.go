// Package session ties the input decoder, line editor, history, and
// dispatcher together into a poll-driven interactive session over a single
// byte-stream transport.
//
// The embedder owns the loop: construct a Session with New, call Start once,
// then call Poll from the main loop. Poll drains whatever bytes the transport
// has buffered, feeds them through the editor, and dispatches completed
// lines. Nothing inside the session blocks or spawns goroutines; a slow
// command handler simply stalls input until it returns.
package session
