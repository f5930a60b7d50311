package landmarks

import "sync"

// Latest holds the most recent frame published by any producer. Reads are
// snapshots: a reader may observe any frame published so far, never a
// partially written one.
type Latest struct {
	mu    sync.Mutex
	frame Frame
	seq   uint64
}

func (l *Latest) Publish(f Frame) {
	l.mu.Lock()
	l.frame = f
	l.seq++
	l.mu.Unlock()
}

// Snapshot returns the current frame and how many frames have been
// published; seq is 0 until the first publish.
func (l *Latest) Snapshot() (f Frame, seq uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frame, l.seq
}
