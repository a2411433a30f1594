//go:build headless

// clipboard_headless.go - Clipboard stub for headless builds

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

import "strconv"

// lastClipboardText records what would have been copied, for tests.
var lastClipboardText string

func writeCountToClipboard(count int) error {
	lastClipboardText = strconv.Itoa(count)
	return nil
}
