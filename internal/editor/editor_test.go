package editor

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/dshills/streamcli/internal/history"
	"github.com/dshills/streamcli/internal/input/key"
)

func newTestEditor() *Editor {
	return New(history.NewStore(10), nil)
}

func typeString(e *Editor, s string) {
	for _, r := range s {
		e.Insert(r)
	}
}

func TestInsertAtEnd(t *testing.T) {
	e := newTestEditor()
	typeString(e, "abc")

	if e.Buffer() != "abc" {
		t.Errorf("buffer = %q, want \"abc\"", e.Buffer())
	}
	if e.Cursor() != 3 {
		t.Errorf("cursor = %d, want 3", e.Cursor())
	}
}

func TestInsertMidLine(t *testing.T) {
	e := newTestEditor()
	typeString(e, "ac")
	e.MoveLeft()
	e.Insert('b')

	if e.Buffer() != "abc" {
		t.Errorf("buffer = %q, want \"abc\"", e.Buffer())
	}
	if e.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", e.Cursor())
	}
}

func TestEraseBefore(t *testing.T) {
	e := newTestEditor()
	typeString(e, "abc")
	e.EraseBefore()

	if e.Buffer() != "ab" {
		t.Errorf("buffer = %q, want \"ab\"", e.Buffer())
	}

	// No-op at offset 0.
	e.Home()
	e.EraseBefore()
	if e.Buffer() != "ab" || e.Cursor() != 0 {
		t.Errorf("buffer = %q cursor = %d, want \"ab\" 0", e.Buffer(), e.Cursor())
	}
}

func TestEraseAt(t *testing.T) {
	e := newTestEditor()
	typeString(e, "abc")
	e.Home()
	e.EraseAt()

	if e.Buffer() != "bc" {
		t.Errorf("buffer = %q, want \"bc\"", e.Buffer())
	}
	if e.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", e.Cursor())
	}

	// No-op at the end of the buffer.
	e.End()
	e.EraseAt()
	if e.Buffer() != "bc" {
		t.Errorf("buffer = %q, want \"bc\"", e.Buffer())
	}
}

func TestHomeEnd(t *testing.T) {
	e := newTestEditor()
	typeString(e, "hello")

	e.Home()
	if e.Cursor() != 0 {
		t.Errorf("cursor after Home = %d, want 0", e.Cursor())
	}
	e.End()
	if e.Cursor() != 5 {
		t.Errorf("cursor after End = %d, want 5", e.Cursor())
	}
}

func TestMoveClamped(t *testing.T) {
	e := newTestEditor()
	typeString(e, "ab")

	e.MoveRight()
	if e.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", e.Cursor())
	}
	e.Home()
	e.MoveLeft()
	if e.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", e.Cursor())
	}
}

func TestSubmitResets(t *testing.T) {
	e := newTestEditor()
	typeString(e, "led on")

	line := e.Submit()
	if line != "led on" {
		t.Errorf("submit = %q, want \"led on\"", line)
	}
	if e.Buffer() != "" || e.Cursor() != 0 {
		t.Errorf("buffer = %q cursor = %d after submit, want empty/0", e.Buffer(), e.Cursor())
	}
}

func TestReplaceSetsCursorToEnd(t *testing.T) {
	e := newTestEditor()
	typeString(e, "xyz")
	e.Replace("longer line")

	if e.Buffer() != "longer line" {
		t.Errorf("buffer = %q", e.Buffer())
	}
	if e.Cursor() != len("longer line") {
		t.Errorf("cursor = %d, want %d", e.Cursor(), len("longer line"))
	}
}

func TestHistoryRoundTripRestoresDraft(t *testing.T) {
	hist := history.NewStore(10)
	hist.Append("first")
	hist.Append("second")
	e := New(hist, nil)

	typeString(e, "draft")
	e.Apply(key.SpecialEvent(key.KeyUp)) // -> "second"
	if e.Buffer() != "second" {
		t.Fatalf("buffer = %q, want \"second\"", e.Buffer())
	}
	e.Apply(key.SpecialEvent(key.KeyDown)) // -> back to draft

	if e.Buffer() != "draft" {
		t.Errorf("buffer = %q, want \"draft\"", e.Buffer())
	}
	if hist.Browsing() {
		t.Error("browsing should have ended")
	}
}

func TestHistoryUpEmptyIsNoop(t *testing.T) {
	e := newTestEditor()
	typeString(e, "draft")
	e.Apply(key.SpecialEvent(key.KeyUp))

	if e.Buffer() != "draft" {
		t.Errorf("buffer = %q, want \"draft\"", e.Buffer())
	}
}

func TestEditExitsBrowsing(t *testing.T) {
	hist := history.NewStore(10)
	hist.Append("old command")
	e := New(hist, nil)

	e.Apply(key.SpecialEvent(key.KeyUp))
	if !hist.Browsing() {
		t.Fatal("expected browsing after Up")
	}
	e.Insert('!')
	if hist.Browsing() {
		t.Error("direct edit should exit browsing")
	}
}

// Cursor must stay within [0, len(buffer)] for any operation sequence.
func TestCursorBoundsInvariant(t *testing.T) {
	e := newTestEditor()
	rng := rand.New(rand.NewSource(1))

	ops := []key.Event{
		key.RuneEvent('x'),
		key.SpecialEvent(key.KeyBackspace),
		key.SpecialEvent(key.KeyDelete),
		key.SpecialEvent(key.KeyLeft),
		key.SpecialEvent(key.KeyRight),
		key.SpecialEvent(key.KeyHome),
		key.SpecialEvent(key.KeyEnd),
	}

	for i := 0; i < 5000; i++ {
		e.Apply(ops[rng.Intn(len(ops))])
		if e.Cursor() < 0 || e.Cursor() > len(e.Buffer()) {
			t.Fatalf("op %d: cursor %d out of bounds for buffer length %d",
				i, e.Cursor(), len(e.Buffer()))
		}
	}
}

func TestEchoDisabledWritesNothing(t *testing.T) {
	var out bytes.Buffer
	echo := NewEcho(&out, func() bool { return false }, nil)
	e := New(history.NewStore(10), echo)

	typeString(e, "silent")
	e.EraseBefore()
	e.Home()
	e.End()

	if out.Len() != 0 {
		t.Errorf("echo wrote %q with echo disabled", out.String())
	}
	if e.Buffer() != "silen" {
		t.Errorf("buffer = %q, want \"silen\"", e.Buffer())
	}
}

func TestEchoAppendsPrintable(t *testing.T) {
	var out bytes.Buffer
	echo := NewEcho(&out, func() bool { return true }, func() string { return "> " })
	e := New(history.NewStore(10), echo)

	typeString(e, "hi")
	if out.String() != "hi" {
		t.Errorf("echo = %q, want \"hi\"", out.String())
	}

	out.Reset()
	e.EraseBefore()
	if out.String() != "\b \b" {
		t.Errorf("echo = %q, want backspace rub-out", out.String())
	}
}

func TestEchoMidLineRedraw(t *testing.T) {
	var out bytes.Buffer
	echo := NewEcho(&out, func() bool { return true }, func() string { return "> " })
	e := New(history.NewStore(10), echo)

	typeString(e, "ac")
	e.MoveLeft()
	out.Reset()
	e.Insert('b')

	got := out.String()
	if !strings.Contains(got, "abc") {
		t.Errorf("redraw %q does not contain buffer", got)
	}
	if !strings.Contains(got, "\033[K") {
		t.Errorf("redraw %q does not clear the line", got)
	}
}
