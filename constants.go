// constants.go - Fixed visual and audio parameters for ClickTally

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

import "image/color"

// Marker aesthetics
const MARKER_RADIUS = 15.0

var (
	MarkerFillColor = color.RGBA{220, 20, 20, 255}
	MarkerTextColor = color.RGBA{254, 254, 254, 255}
)

// Counter badge aesthetics. The badge sits near the top-left corner; the
// text is basicfont Face7x13 scaled up, which keeps the whole overlay on a
// single bitmap face like the runtime status bar it descends from.
const (
	BADGE_X          = 20
	BADGE_Y          = 20
	BADGE_TEXT_SCALE = 5.0
	BADGE_PAD_X      = 10
	BADGE_PAD_Y      = 5
)

var (
	BadgeBackColor = color.RGBA{220, 20, 20, 255}
	BadgeTextColor = color.RGBA{254, 254, 254, 255}
)

// Instruction line at the bottom of the overlay
const (
	INSTRUCTION_TEXT   = "L-Click: Count | R-Click: Undo Last | R: Reset | C: Copy Count | ESC: Quit"
	INSTRUCTION_MARGIN = 24
)

var InstructionTextColor = color.RGBA{254, 254, 254, 255}

// Key bindings. These are gohook keycode names.
const (
	KEY_RESET = "r"
	KEY_COPY  = "c"
	KEY_QUIT  = "esc"
)

// Audible feedback. A counted click gets a short high blip, an undo a
// lower one, like the two edges of a mechanical tally counter lever.
const (
	FEEDBACK_SAMPLE_RATE   = 44100
	FEEDBACK_BLIP_MS       = 45
	FEEDBACK_COUNT_FREQ_HZ = 880.0
	FEEDBACK_UNDO_FREQ_HZ  = 440.0
	FEEDBACK_AMPLITUDE     = 0.25
)
