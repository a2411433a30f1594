// main.go - Main entry point for ClickTally

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
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const VERSION = "1.0.0"

var bannerLines = []string{
	" ██████ ██      ██  ██████ ██   ██ ████████  █████  ██      ██      ██    ██",
	"██      ██      ██ ██      ██  ██     ██    ██   ██ ██      ██       ██  ██",
	"██      ██      ██ ██      █████      ██    ███████ ██      ██        ████",
	"██      ██      ██ ██      ██  ██     ██    ██   ██ ██      ██         ██",
	" ██████ ███████ ██  ██████ ██   ██    ██    ██   ██ ███████ ███████    ██",
}

func boilerPlate() {
	colorize := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Println()
	for i, line := range bannerLines {
		if colorize {
			// Pink-to-yellow sweep, one step per banner row
			fmt.Printf("\033[38;2;255;%d;147m%s\033[0m\n", 20+i*55, line)
		} else {
			fmt.Println(line)
		}
	}
	fmt.Println("\nA transparent full-screen overlay for counting and annotating mouse clicks.")
	fmt.Println("(c) 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/ClickTally")
	fmt.Println("License: GPLv3 or later")
}

func feedbackBackendFor(mute bool) int {
	if mute {
		return FEEDBACK_BACKEND_NONE
	}
	return FEEDBACK_BACKEND_OTO
}

func main() {
	boilerPlate()

	var (
		mute        bool
		showVersion bool
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVar(&mute, "mute", false, "Disable audible click feedback")
	flagSet.BoolVar(&showVersion, "version", false, "Print version and exit")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./clicktally [-mute] [-version]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if showVersion {
		fmt.Printf("clicktally %s\n", VERSION)
		os.Exit(0)
	}

	log := NewConsoleLogger()

	if err := setDPIAwareness(); err != nil {
		log.Warn().Err(err).Msg("Could not set DPI awareness; marker placement may be offset on scaled displays")
	}

	overlay, err := NewOverlayOutput(OVERLAY_BACKEND_EBITEN)
	if err != nil {
		fmt.Printf("Failed to initialize overlay: %v\n", err)
		os.Exit(1)
	}

	feedback, err := NewFeedbackOutput(feedbackBackendFor(mute))
	if err != nil {
		// Counting works fine without a sound device
		log.Warn().Err(err).Msg("Audible feedback unavailable, continuing silently")
		feedback = &NullFeedback{}
	}
	if err := feedback.Start(); err != nil {
		log.Warn().Err(err).Msg("Audible feedback could not start, continuing silently")
		feedback = &NullFeedback{started: true}
	}

	ctrl := NewController(log, overlay, feedback)

	monitor, err := NewInputMonitor(INPUT_BACKEND_GOHOOK, ctrl.OnInputEvent)
	if err != nil {
		fmt.Printf("Failed to initialize input monitor: %v\n", err)
		os.Exit(1)
	}
	ctrl.SetMonitor(monitor)

	// The hook must be up before the overlay is shown: a hook that cannot
	// be installed is fatal and the window should never appear.
	if err := monitor.Start(); err != nil {
		fmt.Printf("Failed to install global input hook: %v\n", err)
		os.Exit(1)
	}

	overlay.SetCloseHandler(ctrl.Quit)
	if err := overlay.Start(); err != nil {
		monitor.Stop()
		fmt.Printf("Failed to start overlay: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nClick Counter Activated:")
	fmt.Println("L-Click: Count | R-Click: Undo Last | R: Reset | C: Copy Count | ESC: Quit")

	<-overlay.Done()
}
