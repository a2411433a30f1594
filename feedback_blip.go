// feedback_blip.go - Blip waveform synthesis for ClickTally

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
	"encoding/binary"
	"math"
)

// genBlipPCM renders a square-wave blip as mono float32 little-endian PCM.
// A linear fade-out over the whole blip keeps it from clicking at the end.
func genBlipPCM(sampleRate int, freqHz float64, durationMS int, amplitude float64) []byte {
	numSamples := sampleRate * durationMS / 1000
	pcm := make([]byte, numSamples*4)

	period := float64(sampleRate) / freqHz
	for i := 0; i < numSamples; i++ {
		sample := amplitude
		if math.Mod(float64(i), period) >= period/2 {
			sample = -amplitude
		}
		envelope := 1.0 - float64(i)/float64(numSamples)
		bits := math.Float32bits(float32(sample * envelope))
		binary.LittleEndian.PutUint32(pcm[i*4:], bits)
	}
	return pcm
}
