package editor

import (
	"fmt"
	"io"
)

// Echo renders keystroke feedback to the transport. All methods are no-ops
// when echo is disabled or the receiver is nil, so the editor can call them
// unconditionally.
type Echo struct {
	w       io.Writer
	enabled func() bool
	prompt  func() string
}

// NewEcho creates an echo writer. enabled is consulted on every write so the
// embedder can toggle echo at runtime; prompt supplies the rendered prompt
// used when a whole line is repainted.
func NewEcho(w io.Writer, enabled func() bool, prompt func() string) *Echo {
	return &Echo{w: w, enabled: enabled, prompt: prompt}
}

func (e *Echo) on() bool {
	return e != nil && e.w != nil && (e.enabled == nil || e.enabled())
}

// writeRune echoes a character typed at the end of the line.
func (e *Echo) writeRune(r rune) {
	if !e.on() {
		return
	}
	fmt.Fprintf(e.w, "%c", r)
}

// rubOut erases the character just left of the cursor at the end of the line.
func (e *Echo) rubOut() {
	if !e.on() {
		return
	}
	io.WriteString(e.w, "\b \b")
}

// cursorLeft moves the terminal cursor n columns left.
func (e *Echo) cursorLeft(n int) {
	if !e.on() || n <= 0 {
		return
	}
	fmt.Fprintf(e.w, "\033[%dD", n)
}

// cursorRight moves the terminal cursor n columns right.
func (e *Echo) cursorRight(n int) {
	if !e.on() || n <= 0 {
		return
	}
	fmt.Fprintf(e.w, "\033[%dC", n)
}

// redraw repaints the line after a mid-line edit: clear from the line start,
// print the buffer, and park the cursor at its offset.
func (e *Echo) redraw(buf []rune, cursor int) {
	if !e.on() {
		return
	}
	io.WriteString(e.w, "\r\033[K")
	if e.prompt != nil {
		io.WriteString(e.w, e.prompt())
	}
	io.WriteString(e.w, string(buf))
	if n := len(buf) - cursor; n > 0 {
		fmt.Fprintf(e.w, "\033[%dD", n)
	}
}

// replaceLine clears the current line and prints a fresh prompt and buffer.
// Used when history navigation swaps the whole line.
func (e *Echo) replaceLine(buf []rune) {
	if !e.on() {
		return
	}
	io.WriteString(e.w, "\033[2K\033[G")
	if e.prompt != nil {
		io.WriteString(e.w, e.prompt())
	}
	io.WriteString(e.w, string(buf))
}
