package transport

// Transport is a duplex byte stream connecting the command engine to the
// outside world. The medium (serial line, pseudo-terminal, socket) is the
// embedder's concern; the engine only drains available input bytes and
// writes response bytes.
//
// Implementations are used from a single polling goroutine and are not
// required to be safe for concurrent use.
type Transport interface {
	// Available returns the number of input bytes that can be read
	// without blocking.
	Available() int

	// ReadByte returns the next input byte. It must only be called when
	// Available reports at least one byte.
	ReadByte() (byte, error)

	// Write sends bytes to the peer.
	Write(p []byte) (int, error)
}
