package session

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/streamcli/internal/dispatcher"
	"github.com/dshills/streamcli/internal/editor"
	"github.com/dshills/streamcli/internal/history"
	"github.com/dshills/streamcli/internal/input/key"
	"github.com/dshills/streamcli/internal/style"
	"github.com/dshills/streamcli/internal/transport"
)

// Version is reported by the version built-in. Overridable via ldflags.
var Version = "1.0.0"

// maxDrainPerPoll bounds the bytes consumed in a single Poll so one call
// does a bounded amount of work even under a firehose transport.
const maxDrainPerPoll = 256

// Session is the interactive command engine over one transport. It owns the
// line editor, history, registry, and dispatcher, and exposes the poll entry
// point the embedder drives.
//
// A Session is single-threaded and not reentrant: Poll, Execute, and
// registry mutation must all happen on the same goroutine.
type Session struct {
	id  string
	cfg Config

	tr      transport.Transport
	printer *style.Printer
	hist    *history.Store
	reg     *dispatcher.Registry
	disp    *dispatcher.Dispatcher
	ed      *editor.Editor
	ctx     *dispatcher.Context

	running bool
	started time.Time
	drain   [maxDrainPerPoll]byte
}

// New creates a session over the given transport. Built-in commands are
// registered immediately and may be overridden by later registrations.
func New(tr transport.Transport, cfg Config) *Session {
	s := &Session{
		id:   uuid.NewString(),
		cfg:  cfg,
		tr:   tr,
		hist: history.NewStore(cfg.HistorySize),
		reg:  dispatcher.NewRegistry(cfg.CaseSensitive),
	}

	s.printer = style.NewPrinter(tr, s.ColorsEnabled, func() string { return s.cfg.Prompt })
	s.disp = dispatcher.New(s.reg)

	echo := editor.NewEcho(tr, s.EchoEnabled, s.printer.PromptString)
	s.ed = editor.New(s.hist, echo)

	s.reg.SetLogf(func(format string, v ...any) {
		log.Printf("["+s.cfg.LogTag+"] "+format, v...)
	})

	s.ctx = &dispatcher.Context{
		Out:      s.printer,
		Registry: s.reg,
		History:  s.hist,
		Control:  s,
	}

	s.registerBuiltins()
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Config returns a copy of the current configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Printer returns the session's output printer, for embedder messages.
func (s *Session) Printer() *style.Printer {
	return s.printer
}

// Register adds a command, replacing any existing entry with the same name.
// It reports whether an entry (including a built-in) was replaced.
func (s *Session) Register(cmd *dispatcher.Command) bool {
	return s.reg.Register(cmd)
}

// Unregister removes a command by name.
func (s *Session) Unregister(name string) bool {
	return s.reg.Unregister(name)
}

// Registry exposes the command table.
func (s *Session) Registry() *dispatcher.Registry {
	return s.reg
}

// History exposes the history store.
func (s *Session) History() *history.Store {
	return s.hist
}

// Context returns the handler context, for embedders that stash values in
// its Data map before starting the session.
func (s *Session) Context() *dispatcher.Context {
	return s.ctx
}

// Start marks the session running and prints the welcome banner and first
// prompt.
func (s *Session) Start() {
	s.running = true
	s.started = time.Now()
	s.printWelcome()
	s.printer.Prompt()
}

// Running reports whether the session is accepting input. It is the
// observable stop flag set by the exit built-in.
func (s *Session) Running() bool {
	return s.running
}

// Stop raises the stop flag. Poll becomes a no-op until Resume.
func (s *Session) Stop() {
	s.running = false
}

// Resume clears the stop flag and prints a fresh prompt.
func (s *Session) Resume() {
	if s.running {
		return
	}
	s.running = true
	s.printer.Prompt()
}

// ColorsEnabled implements dispatcher.SessionControl.
func (s *Session) ColorsEnabled() bool {
	return s.cfg.Colors
}

// SetColorsEnabled implements dispatcher.SessionControl.
func (s *Session) SetColorsEnabled(enabled bool) {
	s.cfg.Colors = enabled
}

// EchoEnabled reports whether keystroke echo is active.
func (s *Session) EchoEnabled() bool {
	return s.cfg.Echo
}

// SetEchoEnabled toggles keystroke echo.
func (s *Session) SetEchoEnabled(enabled bool) {
	s.cfg.Echo = enabled
}

// SetPrompt changes the prompt text.
func (s *Session) SetPrompt(prompt string) {
	s.cfg.Prompt = prompt
}

// SetHistorySize changes the history capacity, evicting oldest entries.
func (s *Session) SetHistorySize(size int) {
	s.cfg.HistorySize = size
	s.hist.SetCapacity(size)
}

// Poll performs one bounded unit of work: drain the bytes currently
// available on the transport, decode them, apply the resulting events to
// the line editor, and dispatch on submission. It never blocks internally;
// only a command handler may block, stalling further input by contract.
//
// Poll is a no-op while the session is stopped.
func (s *Session) Poll() {
	if !s.running {
		return
	}

	n := 0
	for n < len(s.drain) && s.tr.Available() > 0 {
		b, err := s.tr.ReadByte()
		if err != nil {
			break
		}
		s.drain[n] = b
		n++
	}
	if n == 0 {
		return
	}

	for _, ev := range key.Decode(s.drain[:n]) {
		line, submitted := s.ed.Apply(ev)
		if !submitted {
			continue
		}
		s.submit(line)
		if !s.running {
			// exit ran; drop whatever was typed after it.
			return
		}
	}
}

// Execute runs a command line directly, bypassing the editor and history.
func (s *Session) Execute(line string) dispatcher.Result {
	return s.disp.Dispatch(line, s.ctx)
}

// submit completes a line: echo the line break, dispatch, record history,
// and reprint the prompt if still running.
func (s *Session) submit(line string) {
	s.printer.Blank()
	if line != "" {
		s.disp.Dispatch(line, s.ctx)
		s.hist.Append(line)
	}
	if s.running {
		s.printer.Prompt()
	}
}

func (s *Session) printWelcome() {
	if s.cfg.Welcome == "" {
		return
	}
	s.printer.Println(style.Normal,
		style.Colorize(style.IconInfo+" ", style.BrightCyan, s.cfg.Colors)+s.cfg.Welcome)
	s.printer.Info("Type 'help' to see available commands.")
	s.printer.Blank()
}

// Uptime returns how long the session has been started.
func (s *Session) Uptime() time.Duration {
	if s.started.IsZero() {
		return 0
	}
	return time.Since(s.started)
}
