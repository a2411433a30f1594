//go:build headless

// overlay_backend_headless.go - Headless overlay backend for ClickTally

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

type HeadlessOverlay struct {
	started      bool
	count        int
	markers      map[MarkerHandle]overlayMarkerRecord
	drawOrder    []MarkerHandle
	nextHandle   MarkerHandle
	closeHandler func()
	done         chan struct{}
}

type overlayMarkerRecord struct {
	X     int
	Y     int
	Label int
}

func NewEbitenOverlay() (OverlayOutput, error) {
	return &HeadlessOverlay{
		markers: make(map[MarkerHandle]overlayMarkerRecord),
		done:    make(chan struct{}),
	}, nil
}

func (h *HeadlessOverlay) Start() error {
	h.started = true
	return nil
}

func (h *HeadlessOverlay) Stop() error {
	if h.started {
		h.started = false
		close(h.done)
	}
	return nil
}

func (h *HeadlessOverlay) Close() error {
	return h.Stop()
}

func (h *HeadlessOverlay) IsStarted() bool {
	return h.started
}

func (h *HeadlessOverlay) Done() <-chan struct{} {
	return h.done
}

// Post runs the task inline: headless mode has no render loop, and running
// synchronously keeps tests deterministic while preserving FIFO order.
func (h *HeadlessOverlay) Post(task func()) {
	task()
}

func (h *HeadlessOverlay) SetCloseHandler(fn func()) {
	h.closeHandler = fn
}

func (h *HeadlessOverlay) DrawMarker(x, y, label int) MarkerHandle {
	h.nextHandle++
	handle := h.nextHandle
	h.markers[handle] = overlayMarkerRecord{X: x, Y: y, Label: label}
	h.drawOrder = append(h.drawOrder, handle)
	return handle
}

func (h *HeadlessOverlay) EraseMarker(handle MarkerHandle) {
	if _, ok := h.markers[handle]; !ok {
		return
	}
	delete(h.markers, handle)
	for i := len(h.drawOrder) - 1; i >= 0; i-- {
		if h.drawOrder[i] == handle {
			h.drawOrder = append(h.drawOrder[:i], h.drawOrder[i+1:]...)
			break
		}
	}
}

func (h *HeadlessOverlay) EraseAllMarkers() {
	clear(h.markers)
	h.drawOrder = h.drawOrder[:0]
}

func (h *HeadlessOverlay) UpdateCounterBadge(count int) {
	h.count = count
}
