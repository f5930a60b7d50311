package viz

import "github.com/san-kum/gesturefx/internal/landmarks"

// mouseHand turns pointer state into synthetic landmark frames. x and y
// are normalized screen coordinates, not camera coordinates.
type mouseHand struct {
	x, y    float64
	present bool
	hidden  bool
	shape   landmarks.Shape
}

// toggle flips between shape and an open hand.
func (h *mouseHand) toggle(shape landmarks.Shape) {
	if h.shape == shape {
		h.shape = landmarks.Open
		return
	}
	h.shape = shape
}

func (h *mouseHand) frame(ts float64) landmarks.Frame {
	if !h.present || h.hidden {
		return landmarks.SynthFrame(ts, nil, 0, 0, 0)
	}
	shape := h.shape
	return landmarks.SynthFrame(ts, &shape, h.x, h.y, landmarks.DefaultSpread)
}
