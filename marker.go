// marker.go - Marker and MarkerStack state for ClickTally

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

// Marker is one counted click: where it was drawn, the count it was drawn
// with, and the overlay handle that erases its visuals again.
type Marker struct {
	X      int
	Y      int
	Label  int
	Handle MarkerHandle
}

// MarkerStack holds markers in creation order. Undo always removes the most
// recently created marker, so only append and pop-last are offered.
type MarkerStack struct {
	markers []Marker
}

func (s *MarkerStack) Push(m Marker) {
	s.markers = append(s.markers, m)
}

// Pop removes and returns the most recent marker. ok is false on an empty
// stack and the zero Marker is returned.
func (s *MarkerStack) Pop() (Marker, bool) {
	if len(s.markers) == 0 {
		return Marker{}, false
	}
	m := s.markers[len(s.markers)-1]
	s.markers = s.markers[:len(s.markers)-1]
	return m, true
}

func (s *MarkerStack) Clear() {
	s.markers = s.markers[:0]
}

func (s *MarkerStack) Len() int {
	return len(s.markers)
}

// At returns the i-th marker in creation order, oldest first.
func (s *MarkerStack) At(i int) Marker {
	return s.markers[i]
}
