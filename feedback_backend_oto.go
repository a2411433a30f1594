//go:build !headless

// feedback_backend_oto.go - Oto audio backend for ClickTally

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
	"bytes"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

type OtoFeedback struct {
	ctx         *oto.Context
	countPlayer *oto.Player
	undoPlayer  *oto.Player
	started     bool
	mutex       sync.Mutex // Only for setup/control operations
}

func NewOtoFeedback() (FeedbackOutput, error) {
	op := &oto.NewContextOptions{
		SampleRate:   FEEDBACK_SAMPLE_RATE,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, &FeedbackError{
			Operation: "context creation",
			Details:   "audio device unavailable",
			Err:       err,
		}
	}
	<-ready

	return &OtoFeedback{ctx: ctx}, nil
}

func (fo *OtoFeedback) Start() error {
	fo.mutex.Lock()
	defer fo.mutex.Unlock()
	if fo.started {
		return nil
	}

	countPCM := genBlipPCM(FEEDBACK_SAMPLE_RATE, FEEDBACK_COUNT_FREQ_HZ, FEEDBACK_BLIP_MS, FEEDBACK_AMPLITUDE)
	undoPCM := genBlipPCM(FEEDBACK_SAMPLE_RATE, FEEDBACK_UNDO_FREQ_HZ, FEEDBACK_BLIP_MS, FEEDBACK_AMPLITUDE)
	fo.countPlayer = fo.ctx.NewPlayer(bytes.NewReader(countPCM))
	fo.undoPlayer = fo.ctx.NewPlayer(bytes.NewReader(undoPCM))
	fo.started = true
	return nil
}

func (fo *OtoFeedback) Close() error {
	fo.mutex.Lock()
	defer fo.mutex.Unlock()
	if !fo.started {
		return nil
	}
	fo.countPlayer.Close()
	fo.undoPlayer.Close()
	fo.started = false
	return nil
}

func (fo *OtoFeedback) IsStarted() bool {
	fo.mutex.Lock()
	defer fo.mutex.Unlock()
	return fo.started
}

func (fo *OtoFeedback) CountBlip() {
	fo.playBlip(fo.countPlayer)
}

func (fo *OtoFeedback) UndoBlip() {
	fo.playBlip(fo.undoPlayer)
}

// playBlip rewinds the pre-rendered sample and plays it. Oto mixes on its
// own goroutine, so this returns immediately.
func (fo *OtoFeedback) playBlip(p *oto.Player) {
	fo.mutex.Lock()
	defer fo.mutex.Unlock()
	if !fo.started || p == nil {
		return
	}
	p.Pause()
	if _, err := p.Seek(0, io.SeekStart); err != nil {
		return
	}
	p.Play()
}
