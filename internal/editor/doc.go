// Package editor maintains the in-progress command line: an editable rune
// buffer with a cursor, mutation operations driven by decoded key events,
// and history navigation delegated to the history store.
//
// Terminal echo is handled by Echo as a side channel gated on a runtime
// flag. The buffer and cursor are the only sources of truth; echo output is
// derived from them and never read back.
package editor
