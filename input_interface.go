// input_interface.go - Global input monitor interface for ClickTally

/*
 ██████ ██      ██  ██████ ██   ██ ████████  █████  ██      ██      ██    ██
██      ██      ██ ██      ██  ██     ██    ██   ██ ██      ██       ██  ██
██      ██      ██ ██      █████      ██    ███████ ██      ██        ████
██      ██      ██ ██      ██  ██     ██    ██   ██ ██      ██         ██
 ██████ ███████ ██  ██████ ██   ██    ██    ██   ██ ███████ ███████    ██

(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/ClickTally
License: GPLv3 or later
*/

package main

import "fmt"

// InputError provides detailed error context for input hook operations
type InputError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("input %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("input %s failed: %s", e.Operation, e.Details)
}

type InputEventType int

const (
	InputLeftClick InputEventType = iota
	InputRightClick
	InputKeyPress
)

// InputEvent is one normalized observation from the global hook. X and Y
// are screen coordinates and only meaningful for the click types; Key is a
// gohook keycode name and only meaningful for InputKeyPress.
type InputEvent struct {
	Type InputEventType
	X    int
	Y    int
	Key  string
}

// InputMonitor observes mouse and keyboard system-wide, independent of
// window focus. It delivers every normalized event to the handler it was
// constructed with, on its own goroutine; the handler is responsible for
// marshaling onto the render loop. The event stream is infinite and not
// restartable: once stopped, a monitor is done.
type InputMonitor interface {
	Start() error
	Stop() error
	IsStarted() bool
}

// Predefined input backend types
const (
	INPUT_BACKEND_GOHOOK = iota // Global hook via gohook/robotgo
)

// NewInputMonitor creates a new input monitor using the specified backend
func NewInputMonitor(backend int, handler func(InputEvent)) (InputMonitor, error) {
	switch backend {
	case INPUT_BACKEND_GOHOOK:
		return NewGohookMonitor(handler)
	}
	return nil, &InputError{
		Operation: "backend creation",
		Details:   fmt.Sprintf("unknown backend type: %d", backend),
	}
}
