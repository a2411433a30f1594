//go:build headless

// input_backend_headless.go - Scriptable input backend for ClickTally

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

// HeadlessMonitor delivers only what a test injects. It stands in for the
// gohook backend where no display or hook permission exists.
type HeadlessMonitor struct {
	handler func(InputEvent)
	started bool
}

func NewGohookMonitor(handler func(InputEvent)) (InputMonitor, error) {
	if handler == nil {
		return nil, &InputError{
			Operation: "monitor creation",
			Details:   "nil event handler",
		}
	}
	return &HeadlessMonitor{handler: handler}, nil
}

func (hm *HeadlessMonitor) Start() error {
	hm.started = true
	return nil
}

func (hm *HeadlessMonitor) Stop() error {
	hm.started = false
	return nil
}

func (hm *HeadlessMonitor) IsStarted() bool {
	return hm.started
}

// Inject feeds one synthetic event through the monitor as if the global
// hook had observed it. Dropped silently when the monitor is stopped.
func (hm *HeadlessMonitor) Inject(ev InputEvent) {
	if hm.started {
		hm.handler(ev)
	}
}
