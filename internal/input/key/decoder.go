package key

// Control bytes recognized by the decoder.
const (
	byteBS  = 0x08
	byteLF  = 0x0A
	byteCR  = 0x0D
	byteESC = 0x1B
	byteDEL = 0x7F
)

// Decode classifies one poll's worth of input bytes into events.
//
// Printable bytes (0x20..0x7E) become KeyRune events. LF and CR become
// KeyEnter. BS and DEL become KeyBackspace. CSI sequences (ESC [ ...) map to
// navigation and delete keys.
//
// A CSI sequence is recognized only when all of its bytes are present in p.
// A sequence cut off at the end of the slice is discarded, not carried into
// the next pass; under a slow or chunked transport this loses the keystroke.
// Unrecognized sequences and all other control bytes are ignored.
func Decode(p []byte) []Event {
	var events []Event

	for i := 0; i < len(p); i++ {
		b := p[i]

		if b == byteESC {
			ev, n := decodeEscape(p[i+1:])
			i += n
			if ev.Key != KeyNone {
				events = append(events, ev)
			}
			continue
		}

		switch {
		case b == byteLF || b == byteCR:
			events = append(events, SpecialEvent(KeyEnter))
		case b == byteBS || b == byteDEL:
			events = append(events, SpecialEvent(KeyBackspace))
		case b >= 0x20 && b <= 0x7E:
			events = append(events, RuneEvent(rune(b)))
		}
		// Other control bytes are dropped.
	}

	return events
}

// decodeEscape decodes the remainder of an escape sequence. rest holds the
// bytes after ESC. It returns the decoded event (KeyNone if the sequence is
// incomplete or unrecognized) and the number of bytes consumed from rest.
func decodeEscape(rest []byte) (Event, int) {
	if len(rest) < 2 {
		// Incomplete sequence; swallow what is there.
		return Event{}, len(rest)
	}
	if rest[0] != '[' {
		// Not a CSI sequence. Consume only the introducer so a following
		// plain byte is still decoded.
		return Event{}, 1
	}

	switch rest[1] {
	case 'A':
		return SpecialEvent(KeyUp), 2
	case 'B':
		return SpecialEvent(KeyDown), 2
	case 'C':
		return SpecialEvent(KeyRight), 2
	case 'D':
		return SpecialEvent(KeyLeft), 2
	case 'H':
		return SpecialEvent(KeyHome), 2
	case 'F':
		return SpecialEvent(KeyEnd), 2
	case '3':
		if len(rest) < 3 {
			return Event{}, 2
		}
		if rest[2] == '~' {
			return SpecialEvent(KeyDelete), 3
		}
		return Event{}, 3
	default:
		// Unrecognized CSI final byte.
		return Event{}, 2
	}
}
