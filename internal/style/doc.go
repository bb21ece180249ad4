// Package style formats engine output: message kinds with ANSI color and
// icon decoration (or plain textual tags when colors are off), the prompt,
// and screen control sequences.
//
// Format is a pure function; Printer binds it to a transport writer with
// live-updating colors and prompt callbacks.
package style
