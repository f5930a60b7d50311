package fx

import "errors"

// Domain errors for the edges of the engine. Ticks themselves never fail.
var (
	// ErrBadFrame indicates a landmark frame that could not be decoded.
	ErrBadFrame = errors.New("fx: malformed landmark frame")

	// ErrUnknownTheme indicates a theme name outside jellyfish/snow/rain.
	ErrUnknownTheme = errors.New("fx: unknown theme")

	// ErrUnknownPreset indicates a configuration preset that does not exist.
	ErrUnknownPreset = errors.New("fx: unknown preset")

	// ErrUnknownShape indicates a synthetic hand shape that is not supported.
	ErrUnknownShape = errors.New("fx: unknown hand shape")

	// ErrEmptyScenario indicates a scenario without keyframes or duration.
	ErrEmptyScenario = errors.New("fx: scenario has no keyframes")
)
