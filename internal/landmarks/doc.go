// Package landmarks carries hand-landmark frames from their producers
// (detector websocket clients, NDJSON recordings, scripted scenarios and
// mouse-driven synthetic hands) to the detection tick.
//
// Producers publish into a [Latest] cell; the consumer reads the single
// most recent frame whenever its own clock fires.
package landmarks
