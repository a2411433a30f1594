//go:build !headless

// input_backend_gohook.go - gohook global input backend for ClickTally

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
	"time"

	"github.com/go-vgo/robotgo"
	hook "github.com/robotn/gohook"
)

// Hook self-check: gohook's Start reports no install error, so the only
// way to know the hook is live is to synthesize a key it must observe.
// F13 never collides with the user-facing bindings.
const (
	hookCheckKey     = "f13"
	hookCheckTimeout = 2 * time.Second
)

type GohookMonitor struct {
	handler func(InputEvent)
	started bool
	mutex   sync.Mutex
}

func NewGohookMonitor(handler func(InputEvent)) (InputMonitor, error) {
	if handler == nil {
		return nil, &InputError{
			Operation: "monitor creation",
			Details:   "nil event handler",
		}
	}
	return &GohookMonitor{handler: handler}, nil
}

// normalizeMouseEvent maps a raw gohook mouse-down event onto the
// normalized stream. ok is false for buttons we do not observe.
func normalizeMouseEvent(e hook.Event) (InputEvent, bool) {
	switch e.Button {
	case hook.MouseMap["left"]:
		return InputEvent{Type: InputLeftClick, X: int(e.X), Y: int(e.Y)}, true
	case hook.MouseMap["right"]:
		return InputEvent{Type: InputRightClick, X: int(e.X), Y: int(e.Y)}, true
	}
	return InputEvent{}, false
}

func (gm *GohookMonitor) Start() error {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()
	if gm.started {
		return nil
	}

	hook.Register(hook.MouseDown, []string{}, func(e hook.Event) {
		ev, ok := normalizeMouseEvent(e)
		if !ok {
			return
		}
		gm.handler(ev)
		if ev.Type == InputRightClick {
			// A right-click may have opened an OS context menu under the
			// cursor; tap Escape to dismiss it. The Controller has already
			// been told about the right-click at this point, so its
			// suppression flag is queued ahead of the synthesized key.
			robotgo.KeyTap(KEY_QUIT)
		}
	})

	for _, key := range []string{KEY_RESET, KEY_COPY, KEY_QUIT} {
		k := key
		hook.Register(hook.KeyDown, []string{k}, func(e hook.Event) {
			gm.handler(InputEvent{Type: InputKeyPress, Key: k})
		})
	}

	alive := make(chan struct{}, 1)
	hook.Register(hook.KeyDown, []string{hookCheckKey}, func(e hook.Event) {
		select {
		case alive <- struct{}{}:
		default:
		}
	})

	events := hook.Start()
	go func() {
		<-hook.Process(events)
		gm.mutex.Lock()
		gm.started = false
		gm.mutex.Unlock()
	}()

	robotgo.KeyTap(hookCheckKey)
	if err := awaitHookAlive(alive, hookCheckTimeout); err != nil {
		hook.End()
		return err
	}

	gm.started = true
	return nil
}

// awaitHookAlive waits for the self-check key to come back through the
// hook. A hook that cannot observe its own synthesized key is not
// installed (typically missing OS input permissions) and startup must
// fail before the overlay is shown.
func awaitHookAlive(alive <-chan struct{}, timeout time.Duration) error {
	select {
	case <-alive:
		return nil
	case <-time.After(timeout):
		return &InputError{
			Operation: "hook install",
			Details:   "global event hook did not observe its own synthesized key (missing input permissions?)",
		}
	}
}

func (gm *GohookMonitor) Stop() error {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()
	if !gm.started {
		return nil
	}
	hook.End()
	gm.started = false
	return nil
}

func (gm *GohookMonitor) IsStarted() bool {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()
	return gm.started
}
