//go:build !headless

// overlay_backend_ebiten.go - Ebiten overlay backend for ClickTally

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
	"fmt"
	"strconv"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type overlayMarker struct {
	x     int
	y     int
	label string
}

type EbitenOverlay struct {
	running    bool
	width      int
	height     int
	count      int
	markers    map[MarkerHandle]overlayMarker
	drawOrder  []MarkerHandle
	nextHandle MarkerHandle

	tasks     chan func()
	vsyncChan chan struct{}
	done      chan struct{}

	closeHandler func()
	closeOnce    sync.Once
	stateMutex   sync.RWMutex
}

func NewEbitenOverlay() (OverlayOutput, error) {
	return &EbitenOverlay{
		markers:   make(map[MarkerHandle]overlayMarker),
		tasks:     make(chan func(), 128),
		vsyncChan: make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

func (eo *EbitenOverlay) Start() error {
	if eo.running {
		return nil
	}
	eo.running = true

	w, h := ebiten.ScreenSizeInFullscreen()
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Click Tally")
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)
	// Take over window closing: without this the run loop can end before
	// Update ever observes IsWindowBeingClosed, skipping the shutdown
	// sequence that stops the hook first.
	ebiten.SetWindowClosingHandled(true)

	go func() {
		defer func() {
			eo.stateMutex.Lock()
			eo.running = false
			eo.stateMutex.Unlock()
			select {
			case <-eo.done:
			default:
				close(eo.done)
			}
		}()
		opts := &ebiten.RunGameOptions{
			ScreenTransparent: true,
			InitUnfocused:     true,
			SkipTaskbar:       true,
		}
		if err := ebiten.RunGameWithOptions(eo, opts); err != nil && err != ebiten.Termination {
			fmt.Printf("Ebiten error: %v\n", err)
		}
	}()

	// Wait for first Draw call to ensure Ebiten is ready
	<-eo.vsyncChan
	return nil
}

func (eo *EbitenOverlay) Stop() error {
	eo.stateMutex.Lock()
	eo.running = false
	eo.stateMutex.Unlock()
	return nil
}

func (eo *EbitenOverlay) Close() error {
	return eo.Stop()
}

func (eo *EbitenOverlay) IsStarted() bool {
	eo.stateMutex.RLock()
	defer eo.stateMutex.RUnlock()
	return eo.running
}

func (eo *EbitenOverlay) Done() <-chan struct{} {
	return eo.done
}

// Post schedules a task onto the render loop. Tasks run at the top of the
// next Update tick in the order they were posted.
func (eo *EbitenOverlay) Post(task func()) {
	eo.tasks <- task
}

func (eo *EbitenOverlay) SetCloseHandler(fn func()) {
	eo.stateMutex.Lock()
	eo.closeHandler = fn
	eo.stateMutex.Unlock()
}

func (eo *EbitenOverlay) DrawMarker(x, y, label int) MarkerHandle {
	eo.nextHandle++
	h := eo.nextHandle
	eo.markers[h] = overlayMarker{x: x, y: y, label: strconv.Itoa(label)}
	eo.drawOrder = append(eo.drawOrder, h)
	return h
}

func (eo *EbitenOverlay) EraseMarker(handle MarkerHandle) {
	if _, ok := eo.markers[handle]; !ok {
		return
	}
	delete(eo.markers, handle)
	for i := len(eo.drawOrder) - 1; i >= 0; i-- {
		if eo.drawOrder[i] == handle {
			eo.drawOrder = append(eo.drawOrder[:i], eo.drawOrder[i+1:]...)
			break
		}
	}
}

func (eo *EbitenOverlay) EraseAllMarkers() {
	clear(eo.markers)
	eo.drawOrder = eo.drawOrder[:0]
}

func (eo *EbitenOverlay) UpdateCounterBadge(count int) {
	eo.count = count
}

func (eo *EbitenOverlay) Update() error {
	// Drain scheduled work first so state mutations and input stay FIFO
drain:
	for {
		select {
		case task := <-eo.tasks:
			task()
		default:
			break drain
		}
	}

	// Check if the window was closed using Ebiten's built-in detection
	if ebiten.IsWindowBeingClosed() {
		return eo.handleWindowClose()
	}

	eo.stateMutex.RLock()
	running := eo.running
	eo.stateMutex.RUnlock()
	if !running {
		return ebiten.Termination
	}
	return nil
}

// handleWindowClose runs the installed close handler exactly once and ends
// the run loop. The OS close shares the quit key's shutdown path.
func (eo *EbitenOverlay) handleWindowClose() error {
	eo.stateMutex.RLock()
	handler := eo.closeHandler
	eo.stateMutex.RUnlock()
	if handler != nil {
		eo.closeOnce.Do(handler)
	}
	return ebiten.Termination
}

func (eo *EbitenOverlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13

	for _, h := range eo.drawOrder {
		m := eo.markers[h]
		vector.DrawFilledCircle(screen, float32(m.x), float32(m.y), MARKER_RADIUS, MarkerFillColor, true)
		bounds := text.BoundString(face, m.label)
		text.Draw(screen, m.label, face, m.x-bounds.Dx()/2, m.y+bounds.Dy()/2, MarkerTextColor)
	}

	eo.drawCounterBadge(screen)
	eo.drawInstructionLine(screen)

	select {
	case eo.vsyncChan <- struct{}{}:
	default:
	}
}

func (eo *EbitenOverlay) drawCounterBadge(screen *ebiten.Image) {
	face := basicfont.Face7x13
	label := strconv.Itoa(eo.count)
	bounds := text.BoundString(face, label)
	textW := float64(bounds.Dx()) * BADGE_TEXT_SCALE
	textH := float64(bounds.Dy()) * BADGE_TEXT_SCALE

	ebitenutil.DrawRect(screen, BADGE_X, BADGE_Y,
		textW+2*BADGE_PAD_X, textH+2*BADGE_PAD_Y, BadgeBackColor)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(BADGE_TEXT_SCALE, BADGE_TEXT_SCALE)
	opts.GeoM.Translate(BADGE_X+BADGE_PAD_X, BADGE_Y+BADGE_PAD_Y+textH)
	opts.ColorScale.ScaleWithColor(BadgeTextColor)
	text.DrawWithOptions(screen, label, face, opts)
}

func (eo *EbitenOverlay) drawInstructionLine(screen *ebiten.Image) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, INSTRUCTION_TEXT)
	x := (eo.width - bounds.Dx()) / 2
	y := eo.height - INSTRUCTION_MARGIN

	ebitenutil.DrawRect(screen, float64(x-6), float64(y-bounds.Dy()-3),
		float64(bounds.Dx()+12), float64(bounds.Dy()+8), BadgeBackColor)
	text.Draw(screen, INSTRUCTION_TEXT, face, x, y, InstructionTextColor)
}

// Layout maps the logical screen 1:1 onto physical pixels so marker
// positions line up with the global hook's coordinates on scaled displays.
func (eo *EbitenOverlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	eo.width = int(float64(outsideWidth) * scale)
	eo.height = int(float64(outsideHeight) * scale)
	return eo.width, eo.height
}
