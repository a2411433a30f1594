//go:build windows

// dpi_windows.go - Windows DPI awareness request for ClickTally

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

	"golang.org/x/sys/windows"
)

// PROCESS_SYSTEM_DPI_AWARE from shellscalingapi.h
const processSystemDPIAware = 1

// setDPIAwareness asks Windows for unscaled pixel coordinates so hook
// positions and drawn markers line up on scaled displays. Failure is
// reported to the caller but is never fatal: markers would merely be
// offset, not broken.
func setDPIAwareness() error {
	shcore := windows.NewLazySystemDLL("shcore.dll")
	proc := shcore.NewProc("SetProcessDpiAwareness")
	if err := proc.Find(); err != nil {
		return fmt.Errorf("SetProcessDpiAwareness unavailable: %w", err)
	}
	// S_OK is 0; E_ACCESSDENIED means awareness was already set, which is
	// just as good.
	hr, _, _ := proc.Call(uintptr(processSystemDPIAware))
	const accessDenied = 0x80070005
	if hr != 0 && hr != accessDenied {
		return fmt.Errorf("SetProcessDpiAwareness returned 0x%08X", hr)
	}
	return nil
}
