package style

// ANSI SGR codes used for message decoration. Kept minimal for broad
// terminal compatibility.
const (
	Reset      = "\033[0m"
	Red        = "\033[31m"
	Green      = "\033[32m"
	Yellow     = "\033[33m"
	Blue       = "\033[34m"
	Magenta    = "\033[35m"
	Cyan       = "\033[36m"
	White      = "\033[37m"
	BrightCyan = "\033[96m"
	Gray       = "\033[90m"
	BrightWhite = "\033[97m"
)

// Icons prefixed to decorated messages.
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "⚠"
	IconInfo    = "ℹ"
	IconArrow   = "→"
	IconBullet  = "•"
)

// Screen control sequences.
const (
	ClearScreen = "\033[2J\033[H"
)

// Kind classifies a message for output decoration.
type Kind uint8

const (
	// Normal is undecorated text.
	Normal Kind = iota
	// Success marks a completed operation.
	Success
	// Error marks a failure.
	Error
	// Warning marks a non-fatal problem.
	Warning
	// Info marks advisory output.
	Info
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case Warning:
		return "Warning"
	case Info:
		return "Info"
	default:
		return "Normal"
	}
}

// Format decorates text according to its kind. With colors enabled the
// message gets a colored icon prefix and a trailing reset; without colors it
// gets a plain textual tag. Normal text is returned unchanged either way.
func Format(kind Kind, text string, colors bool) string {
	if !colors {
		switch kind {
		case Success:
			return "SUCCESS: " + text
		case Error:
			return "ERROR: " + text
		case Warning:
			return "WARNING: " + text
		case Info:
			return "INFO: " + text
		default:
			return text
		}
	}

	switch kind {
	case Success:
		return Green + IconSuccess + " " + text + Reset
	case Error:
		return Red + IconError + " " + text + Reset
	case Warning:
		return Yellow + IconWarning + " " + text + Reset
	case Info:
		return Cyan + IconInfo + " " + text + Reset
	default:
		return text
	}
}

// Colorize wraps text in the given color when colors are enabled.
func Colorize(text, color string, colors bool) string {
	if !colors {
		return text
	}
	return color + text + Reset
}
