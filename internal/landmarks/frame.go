package landmarks

import (
	"encoding/json"
	"fmt"

	"github.com/san-kum/gesturefx/internal/fx"
)

// Frame is one detection result. Timestamp is the source video time in
// milliseconds and increases monotonically per source. Hands holds zero or
// more 21-point hands; only the first is used.
type Frame struct {
	Timestamp float64         `json:"timestamp" yaml:"timestamp"`
	Hands     [][]fx.Landmark `json:"landmarks" yaml:"landmarks"`
}

// Hand returns the first hand, if any.
func (f Frame) Hand() ([]fx.Landmark, bool) {
	if len(f.Hands) == 0 || len(f.Hands[0]) == 0 {
		return nil, false
	}
	return f.Hands[0], true
}

// Decode parses a JSON frame. Frames with a hand of the wrong length are
// rejected; an empty landmarks list is a valid "no hand" frame.
func Decode(data []byte) (Frame, error) {
	f, _, err := decode(data)
	return f, err
}

// decode also reports whether the timestamp field was present, so a real
// zero timestamp can be told apart from a missing one.
func decode(data []byte) (Frame, bool, error) {
	var raw struct {
		Timestamp *float64        `json:"timestamp"`
		Hands     [][]fx.Landmark `json:"landmarks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Frame{}, false, fmt.Errorf("%w: %v", fx.ErrBadFrame, err)
	}
	f := Frame{Hands: raw.Hands}
	if raw.Timestamp != nil {
		f.Timestamp = *raw.Timestamp
	}
	if err := f.Validate(); err != nil {
		return Frame{}, false, err
	}
	return f, raw.Timestamp != nil, nil
}

func (f Frame) Validate() error {
	if !fx.Finite(f.Timestamp) || f.Timestamp < 0 {
		return fmt.Errorf("%w: timestamp %v", fx.ErrBadFrame, f.Timestamp)
	}
	for i, h := range f.Hands {
		if len(h) != fx.NumLandmarks {
			return fmt.Errorf("%w: hand %d has %d landmarks, want %d", fx.ErrBadFrame, i, len(h), fx.NumLandmarks)
		}
	}
	return nil
}
