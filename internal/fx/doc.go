// Package fx provides the shared primitives of the gesture effect engine.
//
// The package defines the types every other layer speaks:
//
//   - [Pose]: the per-tick normalized hand signal
//   - [Gesture]: discrete gesture events ([ModeSwitch], [HoverTab])
//   - [Theme]: the three mutually exclusive visual themes
//   - [Surface]: the 2D drawing contract simulations render against
//   - [Rand]: injected random source for reproducible simulations
//
// # Coordinates
//
// Pose coordinates are normalized to [0,1] with the X axis already mirrored
// so that the effect layer behaves like a mirror. Simulations convert to
// surface pixels with [Pose.Pixel].
//
// # Thread Safety
//
// Nothing in this package is synchronized. Simulations and surfaces are
// owned by a single frame driver goroutine.
package fx
