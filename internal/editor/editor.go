package editor

import (
	"github.com/dshills/streamcli/internal/history"
	"github.com/dshills/streamcli/internal/input/key"
)

// Editor owns the in-progress input line and its cursor, applies decoded key
// events, and delegates Up/Down navigation to the history store.
//
// The cursor offset is always within [0, len(buffer)]. Echo output is a pure
// projection of editor state; disabling it never changes behavior.
type Editor struct {
	buf    []rune
	cursor int

	hist *history.Store
	echo *Echo
}

// New creates an editor backed by the given history store. echo may be nil
// when no keystroke feedback is wanted.
func New(hist *history.Store, echo *Echo) *Editor {
	return &Editor{hist: hist, echo: echo}
}

// Buffer returns the current line content.
func (e *Editor) Buffer() string {
	return string(e.buf)
}

// Cursor returns the cursor offset in runes.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Apply mutates the editor according to a single decoded event. It returns
// the submitted line and true when the event was a line submission.
func (e *Editor) Apply(ev key.Event) (string, bool) {
	switch ev.Key {
	case key.KeyRune:
		e.Insert(ev.Rune)
	case key.KeyEnter:
		return e.Submit(), true
	case key.KeyBackspace:
		e.EraseBefore()
	case key.KeyDelete:
		e.EraseAt()
	case key.KeyLeft:
		e.MoveLeft()
	case key.KeyRight:
		e.MoveRight()
	case key.KeyHome:
		e.Home()
	case key.KeyEnd:
		e.End()
	case key.KeyUp:
		e.historyUp()
	case key.KeyDown:
		e.historyDown()
	}
	return "", false
}

// Insert places r at the cursor and advances the cursor by one. Editing
// directly ends history browsing.
func (e *Editor) Insert(r rune) {
	atEnd := e.cursor == len(e.buf)

	e.buf = append(e.buf, 0)
	copy(e.buf[e.cursor+1:], e.buf[e.cursor:])
	e.buf[e.cursor] = r
	e.cursor++
	e.hist.ExitBrowsing()

	if atEnd {
		e.echo.writeRune(r)
	} else {
		e.echo.redraw(e.buf, e.cursor)
	}
}

// EraseBefore removes the character left of the cursor. No-op at offset 0.
func (e *Editor) EraseBefore() {
	if e.cursor == 0 {
		return
	}

	e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
	e.cursor--
	e.hist.ExitBrowsing()

	if e.cursor == len(e.buf) {
		e.echo.rubOut()
	} else {
		e.echo.redraw(e.buf, e.cursor)
	}
}

// EraseAt removes the character under the cursor without moving it. No-op at
// the end of the buffer.
func (e *Editor) EraseAt() {
	if e.cursor >= len(e.buf) {
		return
	}

	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
	e.hist.ExitBrowsing()
	e.echo.redraw(e.buf, e.cursor)
}

// MoveLeft moves the cursor one position left, clamped at 0.
func (e *Editor) MoveLeft() {
	if e.cursor == 0 {
		return
	}
	e.cursor--
	e.echo.cursorLeft(1)
}

// MoveRight moves the cursor one position right, clamped at the buffer end.
func (e *Editor) MoveRight() {
	if e.cursor >= len(e.buf) {
		return
	}
	e.cursor++
	e.echo.cursorRight(1)
}

// Home moves the cursor to the start of the line.
func (e *Editor) Home() {
	if e.cursor == 0 {
		return
	}
	e.echo.cursorLeft(e.cursor)
	e.cursor = 0
}

// End moves the cursor past the last character.
func (e *Editor) End() {
	if e.cursor >= len(e.buf) {
		return
	}
	e.echo.cursorRight(len(e.buf) - e.cursor)
	e.cursor = len(e.buf)
}

// Replace sets the buffer to text with the cursor at its end. It is used by
// history navigation only and repaints the whole line.
func (e *Editor) Replace(text string) {
	e.buf = []rune(text)
	e.cursor = len(e.buf)
	e.echo.replaceLine(e.buf)
}

// Submit returns the current line and resets the editor to an empty buffer
// with the cursor at 0, ending any history browsing.
func (e *Editor) Submit() string {
	line := string(e.buf)
	e.buf = e.buf[:0]
	e.cursor = 0
	e.hist.ExitBrowsing()
	return line
}

func (e *Editor) historyUp() {
	if e.hist.Len() == 0 {
		return
	}
	e.hist.EnterBrowsing(string(e.buf))
	if line, ok := e.hist.Up(); ok {
		e.Replace(line)
	}
}

func (e *Editor) historyDown() {
	if line, ok := e.hist.Down(); ok {
		e.Replace(line)
	}
}
