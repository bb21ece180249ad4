package transport

import (
	"io"
	"os"
	"sync/atomic"
)

// stdioBuffer bounds how many unread bytes the pump goroutine holds.
const stdioBuffer = 1024

// Stdio adapts a blocking reader/writer pair (normally the process's
// stdin/stdout) to the non-blocking Transport contract. A background
// goroutine pumps the reader into a buffered channel so Available and
// ReadByte return immediately; writes pass straight through.
type Stdio struct {
	ch  chan byte
	w   io.Writer
	eof atomic.Bool
}

// NewStdio creates a transport over os.Stdin and os.Stdout.
func NewStdio() *Stdio {
	return NewStdioOn(os.Stdin, os.Stdout)
}

// NewStdioOn creates a transport over an arbitrary reader/writer pair.
func NewStdioOn(r io.Reader, w io.Writer) *Stdio {
	s := &Stdio{ch: make(chan byte, stdioBuffer), w: w}
	go s.pump(r)
	return s
}

func (s *Stdio) pump(r io.Reader) {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			s.ch <- b
		}
		if err != nil {
			s.eof.Store(true)
			close(s.ch)
			return
		}
	}
}

// Available implements Transport.
func (s *Stdio) Available() int {
	return len(s.ch)
}

// ReadByte implements Transport. It returns ErrNoInput when nothing is
// buffered and io.EOF once the underlying reader is exhausted.
func (s *Stdio) ReadByte() (byte, error) {
	select {
	case b, ok := <-s.ch:
		if !ok {
			return 0, io.EOF
		}
		return b, nil
	default:
		if s.eof.Load() {
			return 0, io.EOF
		}
		return 0, ErrNoInput
	}
}

// Write implements Transport.
func (s *Stdio) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// EOF reports whether the input side has closed and drained.
func (s *Stdio) EOF() bool {
	return s.eof.Load() && len(s.ch) == 0
}
