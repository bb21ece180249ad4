// Package main is the entry point for the streamcli shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/dshills/streamcli/internal/script"
	"github.com/dshills/streamcli/internal/session"
	"github.com/dshills/streamcli/internal/transport"
)

// pollInterval paces the main loop when the transport is idle.
const pollInterval = 5 * time.Millisecond

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg := session.DefaultConfig()
	if opts.ConfigPath != "" {
		var err error
		cfg, err = session.LoadConfig(opts.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if opts.Prompt != "" {
		cfg.Prompt = opts.Prompt
	}
	if opts.NoColor {
		cfg.Colors = false
	}

	// Raw mode gives the session the keystrokes, including arrows and
	// control bytes, one at a time.
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: raw mode: %v\n", err)
			return 1
		}
		defer term.Restore(fd, state)
	}

	tr := transport.NewStdio()
	sess := session.New(tr, cfg)

	eng := script.New(sess.Registry(), sess.Printer())
	defer eng.Close()
	for _, path := range opts.Scripts {
		if err := eng.LoadFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	sess.Start()
	for sess.Running() && !tr.EOF() {
		select {
		case <-signals:
			sess.Stop()
		default:
		}
		sess.Poll()
		time.Sleep(pollInterval)
	}

	sess.Printer().Blank()
	return 0
}

type options struct {
	ConfigPath string
	Prompt     string
	NoColor    bool
	Scripts    []string
}

// scriptList collects repeated -script flags.
type scriptList []string

func (s *scriptList) String() string { return fmt.Sprint([]string(*s)) }

func (s *scriptList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func parseFlags() options {
	var opts options
	var scripts scriptList
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to JSON configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to JSON configuration file (shorthand)")
	flag.StringVar(&opts.Prompt, "prompt", "", "Prompt text (overrides config)")
	flag.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")
	flag.Var(&scripts, "script", "Lua extension script to load (repeatable)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "streamcli - interactive command shell over a byte stream\n\n")
		fmt.Fprintf(os.Stderr, "Usage: streamcli [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  streamcli                      Start with defaults\n")
		fmt.Fprintf(os.Stderr, "  streamcli -c cli.json          Load settings from a file\n")
		fmt.Fprintf(os.Stderr, "  streamcli -script ext.lua      Load a Lua extension\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("streamcli %s\n", session.Version)
		os.Exit(0)
	}

	opts.Scripts = scripts
	return opts
}
