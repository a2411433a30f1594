// feedback_interface.go - Audible feedback interface for ClickTally

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

// FeedbackError provides detailed error context for audio feedback
type FeedbackError struct {
	Operation string
	Details   string
	Err       error
}

func (e *FeedbackError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("feedback %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("feedback %s failed: %s", e.Operation, e.Details)
}

// FeedbackOutput plays the tally-counter blips. Blip calls are fire and
// forget and safe from the render loop; they must never block it.
type FeedbackOutput interface {
	Start() error
	Close() error
	IsStarted() bool
	CountBlip()
	UndoBlip()
}

// Predefined feedback backend types
const (
	FEEDBACK_BACKEND_OTO = iota // Oto audio backend
	FEEDBACK_BACKEND_NONE       // Muted
)

func NewFeedbackOutput(backend int) (FeedbackOutput, error) {
	switch backend {
	case FEEDBACK_BACKEND_OTO:
		return NewOtoFeedback()
	case FEEDBACK_BACKEND_NONE:
		return &NullFeedback{}, nil
	}
	return nil, &FeedbackError{
		Operation: "backend creation",
		Details:   fmt.Sprintf("unknown backend type: %d", backend),
	}
}

// NullFeedback is the muted backend.
type NullFeedback struct {
	started bool
}

func (n *NullFeedback) Start() error { n.started = true; return nil }
func (n *NullFeedback) Close() error { n.started = false; return nil }
func (n *NullFeedback) IsStarted() bool { return n.started }
func (n *NullFeedback) CountBlip() {}
func (n *NullFeedback) UndoBlip() {}
