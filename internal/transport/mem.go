package transport

import (
	"bytes"
	"errors"
)

// ErrNoInput is returned by Mem.ReadByte when no input is buffered.
var ErrNoInput = errors.New("transport: no input available")

// Mem is an in-memory Transport. Tests and embedded sessions feed input
// with Feed and inspect engine output with Output.
type Mem struct {
	in  bytes.Buffer
	out bytes.Buffer
}

// NewMem creates an empty in-memory transport.
func NewMem() *Mem {
	return &Mem{}
}

// Feed appends bytes to the input side.
func (m *Mem) Feed(p []byte) {
	m.in.Write(p)
}

// FeedString appends a string to the input side.
func (m *Mem) FeedString(s string) {
	m.in.WriteString(s)
}

// Available implements Transport.
func (m *Mem) Available() int {
	return m.in.Len()
}

// ReadByte implements Transport.
func (m *Mem) ReadByte() (byte, error) {
	if m.in.Len() == 0 {
		return 0, ErrNoInput
	}
	return m.in.ReadByte()
}

// Write implements Transport.
func (m *Mem) Write(p []byte) (int, error) {
	return m.out.Write(p)
}

// Output returns everything the engine has written so far.
func (m *Mem) Output() string {
	return m.out.String()
}

// ResetOutput discards buffered output.
func (m *Mem) ResetOutput() {
	m.out.Reset()
}
