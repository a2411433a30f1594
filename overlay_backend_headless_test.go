//go:build headless

// overlay_backend_headless_test.go - Headless overlay bookkeeping tests

package main

import "testing"

func newHeadlessOverlay(t *testing.T) *HeadlessOverlay {
	t.Helper()
	out, err := NewEbitenOverlay()
	if err != nil {
		t.Fatalf("NewEbitenOverlay returned error: %v", err)
	}
	return out.(*HeadlessOverlay)
}

func TestHeadlessOverlay_DrawAndEraseMarker(t *testing.T) {
	h := newHeadlessOverlay(t)

	h1 := h.DrawMarker(10, 20, 1)
	h2 := h.DrawMarker(30, 40, 2)
	if h1 == h2 {
		t.Fatal("expected distinct marker handles")
	}
	if len(h.drawOrder) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(h.drawOrder))
	}

	h.EraseMarker(h2)
	if len(h.drawOrder) != 1 || h.drawOrder[0] != h1 {
		t.Fatalf("expected only first marker left, got %v", h.drawOrder)
	}
	if _, ok := h.markers[h2]; ok {
		t.Fatal("expected erased marker gone from map")
	}
}

func TestHeadlessOverlay_EraseUnknownHandle(t *testing.T) {
	h := newHeadlessOverlay(t)
	h.DrawMarker(10, 20, 1)
	h.EraseMarker(MarkerHandle(999))
	if len(h.drawOrder) != 1 {
		t.Fatal("expected erase of unknown handle to be a no-op")
	}
}

func TestHeadlessOverlay_EraseAll(t *testing.T) {
	h := newHeadlessOverlay(t)
	for i := 1; i <= 5; i++ {
		h.DrawMarker(i, i, i)
	}
	h.EraseAllMarkers()
	if len(h.markers) != 0 || len(h.drawOrder) != 0 {
		t.Fatal("expected all markers erased")
	}
}

func TestHeadlessOverlay_PostRunsInlineInOrder(t *testing.T) {
	h := newHeadlessOverlay(t)
	var got []int
	for i := range 3 {
		n := i
		h.Post(func() { got = append(got, n) })
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("expected FIFO task order [0 1 2], got %v", got)
	}
}

func TestHeadlessOverlay_DoneClosesOnStop(t *testing.T) {
	h := newHeadlessOverlay(t)
	if err := h.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if err := h.Stop(); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
	select {
	case <-h.Done():
	default:
		t.Fatal("expected Done channel closed after Stop")
	}
	// Second Stop must not panic on the closed channel
	if err := h.Stop(); err != nil {
		t.Fatalf("second Stop returned error: %v", err)
	}
}
