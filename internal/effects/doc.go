// Package effects implements the three per-frame simulations driven by the
// hand pose: buoyant jellyfish, accumulating snow and rain over a reactive
// water surface.
//
// Each [Simulation] value exclusively owns its entity collections. Nothing
// is shared across themes: switching theme means discarding the value and
// building a new one with [New].
//
// Motion constants are expressed per tick; dt only advances the animation
// clock that drives the sinusoids.
package effects
