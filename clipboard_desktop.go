//go:build !headless

// clipboard_desktop.go - System clipboard export for ClickTally

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

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// writeCountToClipboard places the count on the system clipboard as text.
// Clipboard availability is probed once; an unavailable clipboard keeps
// failing this operation but never anything else.
func writeCountToClipboard(count int) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", clipboardErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(strconv.Itoa(count)))
	return nil
}
