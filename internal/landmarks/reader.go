package landmarks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/san-kum/gesturefx/internal/fx"
)

// Read decodes a stream of JSON frames (one per line, or any whitespace
// separated sequence) and passes each to fn. It stops at EOF, on the first
// malformed frame, when fn fails or when ctx is done.
func Read(ctx context.Context, r io.Reader, fn func(Frame) error) error {
	dec := json.NewDecoder(r)
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		var f Frame
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w: %v", n, fx.ErrBadFrame, err)
		}
		if err := f.Validate(); err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}
		if err := fn(f); err != nil {
			return err
		}
	}
}

// Replay publishes a recording into dst. With realtime set it sleeps
// between frames so they arrive at the pace of their timestamps.
func Replay(ctx context.Context, r io.Reader, dst *Latest, realtime bool) (int, error) {
	var (
		n      int
		prevTS float64
	)
	err := Read(ctx, r, func(f Frame) error {
		if realtime && n > 0 && f.Timestamp > prevTS {
			wait := time.Duration((f.Timestamp - prevTS) * float64(time.Millisecond))
			t := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
		prevTS = f.Timestamp
		dst.Publish(f)
		n++
		return nil
	})
	return n, err
}

// Write encodes frames as NDJSON.
func Write(w io.Writer, frames []Frame) error {
	enc := json.NewEncoder(w)
	for _, f := range frames {
		if err := enc.Encode(f); err != nil {
			return err
		}
	}
	return nil
}
