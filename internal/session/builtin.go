package session

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/sjson"

	"github.com/dshills/streamcli/internal/args"
	"github.com/dshills/streamcli/internal/dispatcher"
	"github.com/dshills/streamcli/internal/style"
)

const builtinCategory = "Built-in"

// timeRounding trims sub-second noise from human-facing durations.
const timeRounding = time.Second

// registerBuiltins installs the stock commands. They are registered first so
// embedders can override any of them under the latest-wins rule.
func (s *Session) registerBuiltins() {
	s.reg.Register(&dispatcher.Command{
		Name:        "help",
		Description: "Show available commands",
		Usage:       "help [command]",
		Category:    builtinCategory,
		Handler:     dispatcher.HandlerFunc(s.handleHelp),
	})
	s.reg.Register(&dispatcher.Command{
		Name:        "history",
		Description: "Show command history",
		Usage:       "history [clear] [--limit=n]",
		Category:    builtinCategory,
		Handler:     dispatcher.HandlerFunc(s.handleHistory),
	})
	s.reg.Register(&dispatcher.Command{
		Name:        "clear",
		Description: "Clear screen",
		Usage:       "clear",
		Category:    builtinCategory,
		Handler:     dispatcher.HandlerFunc(s.handleClear),
	})
	s.reg.Register(&dispatcher.Command{
		Name:        "exit",
		Description: "Exit CLI",
		Usage:       "exit [--force]",
		Category:    builtinCategory,
		Handler:     dispatcher.HandlerFunc(s.handleExit),
	})
	s.reg.Register(&dispatcher.Command{
		Name:        "colors",
		Description: "Control ANSI colors",
		Usage:       "colors <on|off|test>",
		Category:    "System",
		Handler:     dispatcher.HandlerFunc(s.handleColors),
	})
	s.reg.Register(&dispatcher.Command{
		Name:        "status",
		Description: "Show runtime status",
		Usage:       "status [--compact] [--json]",
		Category:    "System",
		Handler:     dispatcher.HandlerFunc(s.handleStatus),
	})
	s.reg.Register(&dispatcher.Command{
		Name:        "version",
		Description: "Show version information",
		Usage:       "version",
		Category:    "System",
		Handler:     dispatcher.HandlerFunc(s.handleVersion),
	})
}

func (s *Session) handleHelp(ctx *dispatcher.Context, a args.Args) error {
	if a.Empty() {
		s.printCommandList(ctx)
		return nil
	}

	name := a.Positional(0, "")
	cmd := ctx.Registry.Find(name)
	if cmd == nil {
		ctx.Out.Error("Command not found: " + name)
		return nil
	}

	colors := ctx.Control.ColorsEnabled()
	ctx.Out.Blank()
	ctx.Out.Printf("%s %s",
		style.Colorize("Command:", style.BrightWhite, colors),
		style.Colorize(cmd.Name, style.BrightCyan, colors))
	ctx.Out.Printf("%s %s",
		style.Colorize("Category:", style.BrightWhite, colors),
		style.Colorize(cmd.Category, style.Yellow, colors))
	ctx.Out.Printf("%s %s",
		style.Colorize("Description:", style.BrightWhite, colors), cmd.Description)
	ctx.Out.Printf("%s %s",
		style.Colorize("Usage:", style.BrightWhite, colors),
		style.Colorize(cmd.Usage, style.Green, colors))
	return nil
}

func (s *Session) printCommandList(ctx *dispatcher.Context) {
	colors := ctx.Control.ColorsEnabled()

	ctx.Out.Blank()
	ctx.Out.Println(style.Normal, style.Colorize("Available Commands:", style.BrightWhite, colors))
	ctx.Out.Println(style.Normal, "==================")

	categories, byCategory := ctx.Registry.Categories()
	for _, category := range categories {
		ctx.Out.Blank()
		ctx.Out.Println(style.Normal,
			style.Colorize(style.IconBullet+" "+category, style.Yellow, colors))
		for _, cmd := range byCategory[category] {
			ctx.Out.Printf("  %s - %s",
				style.Colorize(cmd.Name, style.Cyan, colors), cmd.Description)
		}
	}

	ctx.Out.Blank()
	ctx.Out.Info("Use 'help <command>' for detailed usage information")
}

func (s *Session) handleHistory(ctx *dispatcher.Context, a args.Args) error {
	if a.HasFlag("clear") || strings.EqualFold(a.Positional(0, ""), "clear") {
		ctx.History.Clear()
		ctx.Out.Success("Command history cleared")
		return nil
	}

	entries := ctx.History.Entries()
	if len(entries) == 0 {
		ctx.Out.Info("No commands in history")
		return nil
	}

	limit, err := strconv.Atoi(a.Flag("limit", "20"))
	if err != nil || limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}

	colors := ctx.Control.ColorsEnabled()
	ctx.Out.Blank()
	ctx.Out.Println(style.Normal, style.Colorize("Command History:", style.BrightWhite, colors))
	ctx.Out.Println(style.Normal, "================")

	start := len(entries) - limit
	for i := start; i < len(entries); i++ {
		ctx.Out.Printf("%s %s",
			style.Colorize(fmt.Sprintf("%3d.", i+1), style.Gray, colors), entries[i])
	}
	ctx.Out.Blank()
	ctx.Out.Info(fmt.Sprintf("Showing last %d of %d commands", limit, len(entries)))
	return nil
}

func (s *Session) handleClear(ctx *dispatcher.Context, a args.Args) error {
	ctx.Out.ClearScreen()
	ctx.Out.Info("Screen cleared")
	return nil
}

func (s *Session) handleExit(ctx *dispatcher.Context, a args.Args) error {
	if a.HasFlag("force") {
		ctx.Out.Info("Force exit - goodbye!")
	} else {
		ctx.Out.Info("Goodbye!")
	}
	ctx.Control.Stop()
	return nil
}

func (s *Session) handleColors(ctx *dispatcher.Context, a args.Args) error {
	action := strings.ToLower(a.Positional(0, ""))
	switch action {
	case "":
		state := "DISABLED"
		if ctx.Control.ColorsEnabled() {
			state = "ENABLED"
		}
		ctx.Out.Println(style.Normal, "Colors currently: "+state)
		ctx.Out.Info("Usage: colors <on|off|test>")
	case "on":
		ctx.Control.SetColorsEnabled(true)
		ctx.Out.Success("ANSI colors enabled")
	case "off":
		ctx.Control.SetColorsEnabled(false)
		ctx.Out.Success("ANSI colors disabled")
	case "test":
		s.printColorTest(ctx)
	default:
		ctx.Out.Error("Invalid option. Use: on, off, or test")
	}
	return nil
}

func (s *Session) printColorTest(ctx *dispatcher.Context) {
	p := ctx.Out
	p.Blank()
	p.Println(style.Normal, "ANSI COLOR TEST")
	p.Println(style.Normal, "===============")
	p.Println(style.Normal,
		style.Red+"■ Red"+style.Reset+" "+
			style.Green+"■ Green"+style.Reset+" "+
			style.Yellow+"■ Yellow"+style.Reset+" "+
			style.Blue+"■ Blue"+style.Reset+" "+
			style.Magenta+"■ Magenta"+style.Reset+" "+
			style.Cyan+"■ Cyan"+style.Reset)
	p.Println(style.Normal,
		style.Green+style.IconSuccess+" Success"+style.Reset+" "+
			style.Red+style.IconError+" Error"+style.Reset+" "+
			style.Yellow+style.IconWarning+" Warning"+style.Reset+" "+
			style.Cyan+style.IconInfo+" Info"+style.Reset)
	p.Blank()
	p.Println(style.Normal, "If the squares above are colored, run 'colors on'.")
	p.Println(style.Normal, "If you see codes like [31m, this terminal has no ANSI support.")
}

func (s *Session) handleStatus(ctx *dispatcher.Context, a args.Args) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	uptime := s.Uptime().Round(timeRounding)

	if a.HasFlag("json") {
		doc := "{}"
		doc, _ = sjson.Set(doc, "version", Version)
		doc, _ = sjson.Set(doc, "go", runtime.Version())
		doc, _ = sjson.Set(doc, "os", runtime.GOOS)
		doc, _ = sjson.Set(doc, "arch", runtime.GOARCH)
		doc, _ = sjson.Set(doc, "uptime_seconds", int64(s.Uptime().Seconds()))
		doc, _ = sjson.Set(doc, "goroutines", runtime.NumGoroutine())
		doc, _ = sjson.Set(doc, "heap_alloc", mem.HeapAlloc)
		doc, _ = sjson.Set(doc, "heap_sys", mem.HeapSys)
		doc, _ = sjson.Set(doc, "colors_enabled", ctx.Control.ColorsEnabled())
		ctx.Out.Println(style.Normal, doc)
		return nil
	}

	if a.HasFlag("compact") {
		ctx.Out.Printf("Status: %s/%s | Up:%s | Heap:%s | Goroutines:%d",
			runtime.GOOS, runtime.GOARCH, uptime, formatBytes(mem.HeapAlloc),
			runtime.NumGoroutine())
		return nil
	}

	ctx.Out.Blank()
	ctx.Out.Println(style.Normal, "RUNTIME STATUS")
	ctx.Out.Println(style.Normal, "==============")
	ctx.Out.Printf("Version: %s", Version)
	ctx.Out.Printf("Go: %s", runtime.Version())
	ctx.Out.Printf("Platform: %s/%s", runtime.GOOS, runtime.GOARCH)
	ctx.Out.Printf("Uptime: %s", uptime)
	ctx.Out.Printf("Heap: %s used / %s reserved",
		formatBytes(mem.HeapAlloc), formatBytes(mem.HeapSys))
	ctx.Out.Printf("Goroutines: %d", runtime.NumGoroutine())
	state := "DISABLED"
	if ctx.Control.ColorsEnabled() {
		state = "ENABLED"
	}
	ctx.Out.Printf("Colors: %s", state)
	return nil
}

func (s *Session) handleVersion(ctx *dispatcher.Context, a args.Args) error {
	ctx.Out.Printf("streamcli v%s", Version)
	return nil
}

// formatBytes renders a byte count in a human-friendly unit.
func formatBytes(n uint64) string {
	switch {
	case n < 1<<10:
		return fmt.Sprintf("%d B", n)
	case n < 1<<20:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	}
}
