// Package surface implements the fx.Surface drawing contract for the
// different outputs of the engine:
//
//   - [Recorder]: in-memory op log used by tests and the headless runner
//   - [Canvas]: Braille-dot terminal canvas with per-cell colour
//   - [SVG]: vector snapshot writer
//
// The raylib window renderer lives in package gui.
//
// All implementations treat a zero-sized surface as a no-op target.
package surface
