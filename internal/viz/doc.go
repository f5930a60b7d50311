// Package viz is the terminal front end: a Bubble Tea program that drives
// the engine loop and renders the active effect onto a Braille [surface.Canvas].
//
// Without an external landmark source the mouse acts as the hand. The
// pointer position is the palm centre, the left button pinches and the
// right button makes the OK sign, which switches effect like the real
// gesture does.
//
// # Key Bindings
//
//	1 2 3  - Select jellyfish, snow or rain
//	Tab    - Next effect
//	P      - Toggle pinch
//	O      - Toggle OK sign
//	H      - Hide or show the hand
//	T      - Cycle panel palette
//	Space  - Pause/Resume
//	?      - Show help overlay
//	Q      - Quit
package viz
