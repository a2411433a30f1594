// controller.go - Application controller for ClickTally

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

import (
	"sync"

	"github.com/rs/zerolog"
)

// Controller owns the click count and the marker stack. Every field is
// touched only from the render loop: OnInputEvent is the sole entry point
// for the monitor goroutine and it does nothing but schedule the event.
// The invariant count == markers.Len() holds after every applied event.
type Controller struct {
	log      zerolog.Logger
	overlay  OverlayOutput
	feedback FeedbackOutput
	monitor  InputMonitor

	count        int
	markers      MarkerStack
	suppressQuit bool

	quitOnce sync.Once
}

func NewController(log zerolog.Logger, overlay OverlayOutput, feedback FeedbackOutput) *Controller {
	return &Controller{
		log:      log,
		overlay:  overlay,
		feedback: feedback,
	}
}

// SetMonitor hands the controller the monitor it must stop on quit. Set
// after construction because the monitor is built around OnInputEvent.
func (c *Controller) SetMonitor(m InputMonitor) {
	c.monitor = m
}

// OnInputEvent runs on the input monitor's goroutine. It marshals the
// event onto the render loop and returns; the queue preserves FIFO order,
// which the quit-suppression handshake relies on.
func (c *Controller) OnInputEvent(ev InputEvent) {
	c.overlay.Post(func() {
		c.apply(ev)
	})
}

func (c *Controller) apply(ev InputEvent) {
	switch ev.Type {
	case InputLeftClick:
		c.handleLeftClick(ev.X, ev.Y)
	case InputRightClick:
		c.handleRightClick()
	case InputKeyPress:
		c.handleKeyPress(ev.Key)
	}
}

func (c *Controller) handleLeftClick(x, y int) {
	c.count++
	handle := c.overlay.DrawMarker(x, y, c.count)
	c.markers.Push(Marker{X: x, Y: y, Label: c.count, Handle: handle})
	c.overlay.UpdateCounterBadge(c.count)
	c.feedback.CountBlip()
}

func (c *Controller) handleRightClick() {
	// The monitor synthesizes an Escape alongside every right-click to
	// dismiss OS context menus; arm the one-shot suppression before that
	// key can arrive. Right-clicks never quit.
	c.suppressQuit = true

	m, ok := c.markers.Pop()
	if !ok {
		return
	}
	c.count--
	c.overlay.EraseMarker(m.Handle)
	c.overlay.UpdateCounterBadge(c.count)
	c.feedback.UndoBlip()
}

func (c *Controller) handleKeyPress(key string) {
	switch key {
	case KEY_RESET:
		c.reset()
	case KEY_COPY:
		c.copyCount()
	case KEY_QUIT:
		if c.suppressQuit {
			c.suppressQuit = false
			return
		}
		c.Quit()
	}
}

func (c *Controller) reset() {
	c.count = 0
	c.markers.Clear()
	c.overlay.EraseAllMarkers()
	c.overlay.UpdateCounterBadge(0)
	c.log.Info().Msg("Counter and markers reset")
}

func (c *Controller) copyCount() {
	if err := writeCountToClipboard(c.count); err != nil {
		c.log.Warn().Err(err).Msg("Could not copy count to clipboard")
		return
	}
	c.log.Info().Int("count", c.count).Msg("Count copied to clipboard")
}

// Quit performs the orderly shutdown: hook first, then audio, then the
// window, so no event can reach a torn-down renderer. Safe to call from
// both the quit key and the OS close handler.
func (c *Controller) Quit() {
	c.quitOnce.Do(func() {
		c.log.Info().Int("count", c.count).Msg("Exiting counter")
		if c.monitor != nil {
			c.monitor.Stop()
		}
		c.feedback.Close()
		c.overlay.Stop()
	})
}

// Count reports the current click count.
func (c *Controller) Count() int {
	return c.count
}

// MarkerCount reports the marker stack depth.
func (c *Controller) MarkerCount() int {
	return c.markers.Len()
}

// MarkerAt returns the i-th marker in creation order.
func (c *Controller) MarkerAt(i int) Marker {
	return c.markers.At(i)
}
