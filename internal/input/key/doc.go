// Package key decodes raw transport bytes into a closed set of input events.
//
// The decoder is a pure function over the bytes available in a single poll:
// printable characters, line submission, the two erase forms, and the cursor
// and history navigation escape sequences. Keeping it free of transport and
// dispatch concerns makes the byte-level protocol testable in isolation.
//
// Recognized escape sequences (ESC = 0x1B):
//
//	ESC [ A    history up
//	ESC [ B    history down
//	ESC [ C    cursor right
//	ESC [ D    cursor left
//	ESC [ H    home
//	ESC [ F    end
//	ESC [ 3 ~  delete at cursor
//
// Sequences split across polls are dropped rather than buffered; see Decode.
package key
