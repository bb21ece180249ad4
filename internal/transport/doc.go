// Package transport defines the duplex byte-stream seam between the command
// engine and its embedder.
//
// The engine never blocks on a transport: it drains whatever Available
// reports during a poll and returns. Rate mismatches are absorbed by the
// transport's own buffering.
package transport
