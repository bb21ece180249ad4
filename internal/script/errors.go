package script

import "errors"

var (
	// ErrEngineClosed is returned when using an engine after Close.
	ErrEngineClosed = errors.New("script: engine is closed")

	// ErrScript wraps errors raised inside Lua code.
	ErrScript = errors.New("script: lua error")

	// ErrBadRegistration is returned when cli.register is given an
	// incomplete command table.
	ErrBadRegistration = errors.New("script: invalid command registration")
)
