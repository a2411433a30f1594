//go:build !windows

// dpi_other.go - DPI awareness no-op for non-Windows platforms

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

// X11 and Wayland report hook coordinates in physical pixels already; the
// overlay backend handles device scaling in Layout.
func setDPIAwareness() error {
	return nil
}
