//go:build headless

// feedback_backend_headless.go - Headless feedback backend for ClickTally

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

type HeadlessFeedback struct {
	started    bool
	countBlips int
	undoBlips  int
}

func NewOtoFeedback() (FeedbackOutput, error) {
	return &HeadlessFeedback{}, nil
}

func (h *HeadlessFeedback) Start() error {
	h.started = true
	return nil
}

func (h *HeadlessFeedback) Close() error {
	h.started = false
	return nil
}

func (h *HeadlessFeedback) IsStarted() bool {
	return h.started
}

func (h *HeadlessFeedback) CountBlip() {
	if h.started {
		h.countBlips++
	}
}

func (h *HeadlessFeedback) UndoBlip() {
	if h.started {
		h.undoBlips++
	}
}
