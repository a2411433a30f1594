// overlay_interface.go - Overlay renderer interface for ClickTally

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

// OverlayError provides detailed error context for overlay operations
type OverlayError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *OverlayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("overlay %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("overlay %s failed: %s", e.Operation, e.Details)
}

// MarkerHandle identifies the visual primitives (circle plus label) of one
// drawn marker so exactly those can be erased later.
type MarkerHandle uint64

// OverlayOutput is the contract the renderer backends implement. All
// drawing state is owned by the backend's single render loop; DrawMarker,
// EraseMarker, EraseAllMarkers and UpdateCounterBadge must only be called
// from tasks scheduled through Post, which the loop drains in FIFO order.
type OverlayOutput interface {
	// Lifecycle management
	Start() error
	Stop() error
	Close() error
	IsStarted() bool
	Done() <-chan struct{}

	// Cross-thread dispatch onto the render loop
	Post(task func())

	// Drawing operations, render loop only
	DrawMarker(x, y, label int) MarkerHandle
	EraseMarker(handle MarkerHandle)
	EraseAllMarkers()
	UpdateCounterBadge(count int)

	// SetCloseHandler installs the callback invoked when the OS closes the
	// window. It shares the quit path with the Escape key.
	SetCloseHandler(fn func())
}

// Predefined overlay backend types
const (
	OVERLAY_BACKEND_EBITEN = iota // Pure Go Ebiten backend
)

// NewOverlayOutput creates a new overlay output instance using the
// specified backend
func NewOverlayOutput(backend int) (OverlayOutput, error) {
	switch backend {
	case OVERLAY_BACKEND_EBITEN:
		return NewEbitenOverlay()
	}
	return nil, &OverlayError{
		Operation: "backend creation",
		Details:   fmt.Sprintf("unknown backend type: %d", backend),
	}
}
