package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/streamcli/internal/args"
	"github.com/dshills/streamcli/internal/dispatcher"
	"github.com/dshills/streamcli/internal/style"
)

// scriptCategory is the default category for Lua-registered commands.
const scriptCategory = "Script"

// Engine runs Lua scripts that extend the command set. Scripts see a global
// `cli` table with register and output functions.
//
// The engine shares the session's single-goroutine discipline: gopher-lua's
// LState is not goroutine-safe, so LoadFile, LoadString, and every dispatched
// script command must run on the goroutine that drives the session.
type Engine struct {
	L      *lua.LState
	reg    *dispatcher.Registry
	out    *style.Printer
	closed bool
}

// New creates an engine that registers script commands into reg and writes
// script output through out.
func New(reg *dispatcher.Registry, out *style.Printer) *Engine {
	e := &Engine{
		L:   lua.NewState(),
		reg: reg,
		out: out,
	}
	e.installAPI()
	return e
}

// Close releases the Lua state. Commands registered by scripts stop working
// and should be unregistered by the caller if the registry outlives the
// engine.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}

// LoadFile executes a script file. Registrations it performs take effect
// immediately.
func (e *Engine) LoadFile(path string) error {
	if e.closed {
		return ErrEngineClosed
	}
	if err := e.L.DoFile(path); err != nil {
		return fmt.Errorf("%w: %v", ErrScript, err)
	}
	return nil
}

// LoadString executes script source.
func (e *Engine) LoadString(src string) error {
	if e.closed {
		return ErrEngineClosed
	}
	if err := e.L.DoString(src); err != nil {
		return fmt.Errorf("%w: %v", ErrScript, err)
	}
	return nil
}

// installAPI publishes the global cli table.
func (e *Engine) installAPI() {
	mod := e.L.NewTable()
	e.L.SetFuncs(mod, map[string]lua.LGFunction{
		"register": e.luaRegister,
		"print":    e.luaPrint(style.Normal),
		"success":  e.luaPrint(style.Success),
		"error":    e.luaPrint(style.Error),
		"warn":     e.luaPrint(style.Warning),
		"info":     e.luaPrint(style.Info),
	})
	e.L.SetGlobal("cli", mod)
}

// luaRegister implements cli.register{name=..., handler=function(a) ... end}.
func (e *Engine) luaRegister(L *lua.LState) int {
	tbl := L.CheckTable(1)

	name := lua.LVAsString(tbl.RawGetString("name"))
	fn, ok := tbl.RawGetString("handler").(*lua.LFunction)
	if name == "" || !ok {
		L.RaiseError("%v: name and handler are required", ErrBadRegistration)
		return 0
	}

	cmd := &dispatcher.Command{
		Name:        name,
		Description: lua.LVAsString(tbl.RawGetString("description")),
		Usage:       lua.LVAsString(tbl.RawGetString("usage")),
		Category:    scriptCategory,
		Handler:     e.luaHandler(fn),
	}
	if c := lua.LVAsString(tbl.RawGetString("category")); c != "" {
		cmd.Category = c
	}
	if cmd.Usage == "" {
		cmd.Usage = name
	}

	e.reg.Register(cmd)
	return 0
}

// luaHandler wraps a Lua function as a dispatcher handler. Arguments arrive
// as a table with an array part of positionals and a `flags` sub-table.
func (e *Engine) luaHandler(fn *lua.LFunction) dispatcher.Handler {
	return dispatcher.HandlerFunc(func(ctx *dispatcher.Context, a args.Args) error {
		if e.closed {
			return ErrEngineClosed
		}

		arg := e.L.NewTable()
		for _, p := range a.All() {
			arg.Append(lua.LString(p))
		}
		flags := e.L.NewTable()
		for k, v := range a.Flags() {
			flags.RawSetString(k, lua.LString(v))
		}
		arg.RawSetString("flags", flags)

		err := e.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, arg)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrScript, err)
		}

		// A handler may return a string to signal failure.
		ret := e.L.Get(-1)
		e.L.Pop(1)
		if msg, ok := ret.(lua.LString); ok && msg != "" {
			return fmt.Errorf("%w: %s", ErrScript, string(msg))
		}
		return nil
	})
}

// luaPrint builds a cli output function for one message kind.
func (e *Engine) luaPrint(kind style.Kind) lua.LGFunction {
	return func(L *lua.LState) int {
		e.out.Println(kind, L.CheckString(1))
		return 0
	}
}
