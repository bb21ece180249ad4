package style

import (
	"fmt"
	"io"
)

// Printer renders decorated messages and the prompt onto the transport.
// Colors and prompt text are consulted through callbacks so configuration
// changes (the colors command, SetPrompt) take effect immediately.
type Printer struct {
	w      io.Writer
	colors func() bool
	prompt func() string
}

// NewPrinter creates a printer writing to w. colors and prompt may be nil,
// which disables decoration and prompt rendering respectively.
func NewPrinter(w io.Writer, colors func() bool, prompt func() string) *Printer {
	return &Printer{w: w, colors: colors, prompt: prompt}
}

// Colors reports whether decorated output is active.
func (p *Printer) Colors() bool {
	return p.colors != nil && p.colors()
}

// Print writes a formatted message without a trailing newline.
func (p *Printer) Print(kind Kind, text string) {
	io.WriteString(p.w, Format(kind, text, p.Colors()))
}

// Println writes a formatted message followed by CRLF. The carriage return
// matters on raw-mode terminals and is harmless elsewhere.
func (p *Printer) Println(kind Kind, text string) {
	p.Print(kind, text)
	io.WriteString(p.w, "\r\n")
}

// Printf formats into a Normal-kind Println.
func (p *Printer) Printf(format string, a ...any) {
	p.Println(Normal, fmt.Sprintf(format, a...))
}

// Success writes a success message line.
func (p *Printer) Success(text string) { p.Println(Success, text) }

// Error writes an error message line.
func (p *Printer) Error(text string) { p.Println(Error, text) }

// Warning writes a warning message line.
func (p *Printer) Warning(text string) { p.Println(Warning, text) }

// Info writes an informational message line.
func (p *Printer) Info(text string) { p.Println(Info, text) }

// Blank writes an empty line.
func (p *Printer) Blank() {
	io.WriteString(p.w, "\r\n")
}

// Prompt renders the configured prompt, colored when colors are on.
func (p *Printer) Prompt() {
	io.WriteString(p.w, p.PromptString())
}

// PromptString returns the rendered prompt text.
func (p *Printer) PromptString() string {
	if p.prompt == nil {
		return ""
	}
	text := p.prompt()
	if p.Colors() {
		return BrightCyan + text + Cyan + " > " + Reset
	}
	return text + " > "
}

// ClearScreen clears the terminal and homes the cursor.
func (p *Printer) ClearScreen() {
	io.WriteString(p.w, ClearScreen)
}

// Writer exposes the underlying writer for raw output (e.g. echo).
func (p *Printer) Writer() io.Writer {
	return p.w
}
