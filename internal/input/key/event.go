package key

import "fmt"

// Event is a single decoded input event.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune
}

// RuneEvent creates an event for a printable character.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// SpecialEvent creates an event for a non-character key.
func SpecialEvent(k Key) Event {
	return Event{Key: k}
}

// IsRune returns true if this is a character event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// String returns a canonical representation, e.g. "a", "Enter", "Up".
func (e Event) String() string {
	if e.Key == KeyRune {
		return string(e.Rune)
	}
	return e.Key.String()
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q}", e.Key.String(), e.Rune)
}
