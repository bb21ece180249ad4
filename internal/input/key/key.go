package key

// Key identifies a decoded input key. Character input uses KeyRune with the
// character stored in Event.Rune.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is a printable character; the character is in Event.Rune.
	KeyRune

	// KeyEnter submits the current line (LF or CR).
	KeyEnter

	// KeyBackspace erases the character left of the cursor (BS or DEL).
	KeyBackspace

	// KeyDelete erases the character under the cursor (ESC [ 3 ~).
	KeyDelete

	// Arrow keys and line navigation (CSI sequences).
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	default:
		return "None"
	}
}

// IsNavigation returns true for cursor movement and history keys.
func (k Key) IsNavigation() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd:
		return true
	}
	return false
}
