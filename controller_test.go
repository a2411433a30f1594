// controller_test.go - Controller state machine tests

package main

import (
	"testing"

	"github.com/rs/zerolog"
)

// fakeOverlay records draw calls and runs posted tasks inline, which keeps
// event application synchronous and FIFO in tests.
type fakeOverlay struct {
	started   bool
	count     int
	markers   map[MarkerHandle]fakeMarker
	order     []MarkerHandle
	next      MarkerHandle
	bulkWipes int
	stopLog   *[]string
	done      chan struct{}
	closeFn   func()
}

type fakeMarker struct {
	x, y, label int
}

func newFakeOverlay() *fakeOverlay {
	return &fakeOverlay{
		started: true,
		markers: make(map[MarkerHandle]fakeMarker),
		done:    make(chan struct{}),
	}
}

func (f *fakeOverlay) Start() error { f.started = true; return nil }
func (f *fakeOverlay) Stop() error {
	f.started = false
	if f.stopLog != nil {
		*f.stopLog = append(*f.stopLog, "overlay")
	}
	return nil
}
func (f *fakeOverlay) Close() error { return f.Stop() }
func (f *fakeOverlay) IsStarted() bool { return f.started }
func (f *fakeOverlay) Done() <-chan struct{} { return f.done }
func (f *fakeOverlay) Post(task func()) { task() }
func (f *fakeOverlay) SetCloseHandler(fn func()) { f.closeFn = fn }

func (f *fakeOverlay) DrawMarker(x, y, label int) MarkerHandle {
	f.next++
	f.markers[f.next] = fakeMarker{x: x, y: y, label: label}
	f.order = append(f.order, f.next)
	return f.next
}

func (f *fakeOverlay) EraseMarker(handle MarkerHandle) {
	delete(f.markers, handle)
	for i := len(f.order) - 1; i >= 0; i-- {
		if f.order[i] == handle {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

func (f *fakeOverlay) EraseAllMarkers() {
	f.bulkWipes++
	f.markers = make(map[MarkerHandle]fakeMarker)
	f.order = nil
}

func (f *fakeOverlay) UpdateCounterBadge(count int) { f.count = count }

type fakeFeedback struct {
	started    bool
	countBlips int
	undoBlips  int
}

func (f *fakeFeedback) Start() error { f.started = true; return nil }
func (f *fakeFeedback) Close() error { f.started = false; return nil }
func (f *fakeFeedback) IsStarted() bool { return f.started }
func (f *fakeFeedback) CountBlip() { f.countBlips++ }
func (f *fakeFeedback) UndoBlip() { f.undoBlips++ }

type fakeMonitor struct {
	started bool
	stopLog *[]string
}

func (f *fakeMonitor) Start() error { f.started = true; return nil }
func (f *fakeMonitor) Stop() error {
	f.started = false
	if f.stopLog != nil {
		*f.stopLog = append(*f.stopLog, "monitor")
	}
	return nil
}
func (f *fakeMonitor) IsStarted() bool { return f.started }

func newTestController() (*Controller, *fakeOverlay, *fakeFeedback) {
	overlay := newFakeOverlay()
	feedback := &fakeFeedback{started: true}
	ctrl := NewController(zerolog.Nop(), overlay, feedback)
	return ctrl, overlay, feedback
}

func leftClick(c *Controller, x, y int) {
	c.OnInputEvent(InputEvent{Type: InputLeftClick, X: x, Y: y})
}

func rightClick(c *Controller) {
	c.OnInputEvent(InputEvent{Type: InputRightClick})
}

func keyPress(c *Controller, key string) {
	c.OnInputEvent(InputEvent{Type: InputKeyPress, Key: key})
}

func assertInvariant(t *testing.T, c *Controller) {
	t.Helper()
	if c.Count() < 0 {
		t.Fatalf("count went negative: %d", c.Count())
	}
	if c.Count() != c.MarkerCount() {
		t.Fatalf("invariant broken: count=%d, markers=%d", c.Count(), c.MarkerCount())
	}
}

func TestLeftClicks_CountAndLabelInOrder(t *testing.T) {
	ctrl, overlay, feedback := newTestController()

	positions := [][2]int{{10, 10}, {20, 20}, {30, 30}}
	for _, p := range positions {
		leftClick(ctrl, p[0], p[1])
		assertInvariant(t, ctrl)
	}

	if ctrl.Count() != 3 {
		t.Fatalf("expected count 3, got %d", ctrl.Count())
	}
	if overlay.count != 3 {
		t.Fatalf("expected badge 3, got %d", overlay.count)
	}
	for i, p := range positions {
		m := ctrl.MarkerAt(i)
		if m.Label != i+1 {
			t.Fatalf("expected marker %d labeled %d, got %d", i, i+1, m.Label)
		}
		if m.X != p[0] || m.Y != p[1] {
			t.Fatalf("expected marker %d at (%d,%d), got (%d,%d)", i, p[0], p[1], m.X, m.Y)
		}
	}
	if feedback.countBlips != 3 {
		t.Fatalf("expected 3 count blips, got %d", feedback.countBlips)
	}
}

func TestRightClick_UndoesMostRecent(t *testing.T) {
	ctrl, overlay, feedback := newTestController()

	leftClick(ctrl, 10, 10)
	leftClick(ctrl, 20, 20)
	leftClick(ctrl, 30, 30)
	rightClick(ctrl)
	assertInvariant(t, ctrl)

	if ctrl.Count() != 2 {
		t.Fatalf("expected count 2 after undo, got %d", ctrl.Count())
	}
	if len(overlay.order) != 2 {
		t.Fatalf("expected 2 drawn markers, got %d", len(overlay.order))
	}
	for _, h := range overlay.order {
		if overlay.markers[h].label == 3 {
			t.Fatal("expected marker 3 to be erased")
		}
	}
	if feedback.undoBlips != 1 {
		t.Fatalf("expected 1 undo blip, got %d", feedback.undoBlips)
	}
}

func TestUndo_LIFOLaw(t *testing.T) {
	// N clicks followed by one undo must equal the first N-1 clicks.
	positions := [][2]int{{5, 5}, {15, 25}, {35, 45}, {55, 65}}

	undone, _, _ := newTestController()
	for _, p := range positions {
		leftClick(undone, p[0], p[1])
	}
	rightClick(undone)

	reference, _, _ := newTestController()
	for _, p := range positions[:len(positions)-1] {
		leftClick(reference, p[0], p[1])
	}

	if undone.Count() != reference.Count() {
		t.Fatalf("expected count %d, got %d", reference.Count(), undone.Count())
	}
	for i := 0; i < reference.MarkerCount(); i++ {
		want := reference.MarkerAt(i)
		got := undone.MarkerAt(i)
		if want.X != got.X || want.Y != got.Y || want.Label != got.Label {
			t.Fatalf("marker %d diverged: want %+v, got %+v", i, want, got)
		}
	}
}

func TestRightClick_EmptyStack_NoOp(t *testing.T) {
	ctrl, overlay, feedback := newTestController()

	rightClick(ctrl)
	assertInvariant(t, ctrl)

	if ctrl.Count() != 0 {
		t.Fatalf("expected count 0, got %d", ctrl.Count())
	}
	if overlay.bulkWipes != 0 || len(overlay.order) != 0 {
		t.Fatal("expected no drawing activity")
	}
	if feedback.undoBlips != 0 {
		t.Fatal("expected no undo blip on empty stack")
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	ctrl, overlay, _ := newTestController()

	leftClick(ctrl, 10, 10)
	leftClick(ctrl, 20, 20)
	leftClick(ctrl, 30, 30)
	keyPress(ctrl, KEY_RESET)
	assertInvariant(t, ctrl)

	if ctrl.Count() != 0 {
		t.Fatalf("expected count 0 after reset, got %d", ctrl.Count())
	}
	if len(overlay.order) != 0 {
		t.Fatalf("expected zero markers after reset, got %d", len(overlay.order))
	}
	if overlay.bulkWipes != 1 {
		t.Fatalf("expected one bulk erase, got %d", overlay.bulkWipes)
	}
	if overlay.count != 0 {
		t.Fatalf("expected badge 0, got %d", overlay.count)
	}
}

func TestReset_Idempotent(t *testing.T) {
	ctrl, overlay, _ := newTestController()

	leftClick(ctrl, 10, 10)
	keyPress(ctrl, KEY_RESET)
	keyPress(ctrl, KEY_RESET)
	assertInvariant(t, ctrl)

	if ctrl.Count() != 0 || overlay.count != 0 || len(overlay.order) != 0 {
		t.Fatal("expected double reset to equal single reset")
	}
}

func TestQuitSuppression_OneShot(t *testing.T) {
	ctrl, overlay, _ := newTestController()
	stopLog := []string{}
	overlay.stopLog = &stopLog
	monitor := &fakeMonitor{started: true, stopLog: &stopLog}
	ctrl.SetMonitor(monitor)

	// Right-click arms the suppression; the synthesized Escape that
	// follows it must not quit.
	rightClick(ctrl)
	keyPress(ctrl, KEY_QUIT)
	if !overlay.IsStarted() {
		t.Fatal("expected suppressed quit key to be swallowed")
	}

	// The flag is one-shot: the next Escape quits.
	keyPress(ctrl, KEY_QUIT)
	if overlay.IsStarted() {
		t.Fatal("expected second quit key to shut down")
	}
	if monitor.IsStarted() {
		t.Fatal("expected monitor stopped on quit")
	}
}

func TestSuppression_NotClearedByOtherEvents(t *testing.T) {
	ctrl, overlay, _ := newTestController()
	ctrl.SetMonitor(&fakeMonitor{started: true})

	rightClick(ctrl)
	leftClick(ctrl, 10, 10)
	keyPress(ctrl, KEY_RESET)

	// Only a quit-key event may consume the flag.
	keyPress(ctrl, KEY_QUIT)
	if !overlay.IsStarted() {
		t.Fatal("expected suppression to survive non-quit events")
	}
	keyPress(ctrl, KEY_QUIT)
	if overlay.IsStarted() {
		t.Fatal("expected quit after suppression was consumed")
	}
}

func TestQuit_StopsMonitorBeforeOverlay(t *testing.T) {
	ctrl, overlay, feedback := newTestController()
	stopLog := []string{}
	overlay.stopLog = &stopLog
	monitor := &fakeMonitor{started: true, stopLog: &stopLog}
	ctrl.SetMonitor(monitor)

	keyPress(ctrl, KEY_QUIT)

	if len(stopLog) != 2 || stopLog[0] != "monitor" || stopLog[1] != "overlay" {
		t.Fatalf("expected stop order [monitor overlay], got %v", stopLog)
	}
	if feedback.IsStarted() {
		t.Fatal("expected feedback closed on quit")
	}
}

func TestQuit_ViaCloseHandler(t *testing.T) {
	ctrl, overlay, _ := newTestController()
	monitor := &fakeMonitor{started: true}
	ctrl.SetMonitor(monitor)
	overlay.SetCloseHandler(ctrl.Quit)

	// OS window close takes the same path as the quit key.
	overlay.closeFn()

	if overlay.IsStarted() || monitor.IsStarted() {
		t.Fatal("expected close handler to run the full shutdown")
	}
}

func TestInvariant_MixedSequence(t *testing.T) {
	ctrl, _, _ := newTestController()

	// Deterministic mixed workout: the invariant must hold after every
	// single event.
	events := []InputEvent{
		{Type: InputLeftClick, X: 1, Y: 1},
		{Type: InputRightClick},
		{Type: InputRightClick},
		{Type: InputLeftClick, X: 2, Y: 2},
		{Type: InputLeftClick, X: 3, Y: 3},
		{Type: InputKeyPress, Key: KEY_RESET},
		{Type: InputRightClick},
		{Type: InputLeftClick, X: 4, Y: 4},
		{Type: InputLeftClick, X: 5, Y: 5},
		{Type: InputRightClick},
		{Type: InputKeyPress, Key: KEY_RESET},
		{Type: InputKeyPress, Key: KEY_RESET},
	}
	for i, ev := range events {
		ctrl.OnInputEvent(ev)
		if ctrl.Count() < 0 || ctrl.Count() != ctrl.MarkerCount() {
			t.Fatalf("invariant broken after event %d: count=%d, markers=%d",
				i, ctrl.Count(), ctrl.MarkerCount())
		}
	}
	if ctrl.Count() != 0 {
		t.Fatalf("expected final count 0, got %d", ctrl.Count())
	}
}
