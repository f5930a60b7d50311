package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/gesturefx/internal/fx"
	"gopkg.in/yaml.v3"
)

// Presets are YAML overlays applied on top of DefaultConfig.
var Presets = map[string]string{
	"default": ``,
	"calm": `
jellyfish:
  max_creatures: 8
  follow_ease: 0.04
  bubble_chance: 0.05
snow:
  ambient_per_tick: 1
  wind: 0.2
rain:
  max_drops_per_tick: 4
`,
	"swarm": `
theme: jellyfish
jellyfish:
  spawn_min: 4
  spawn_max: 6
  spawn_spread: 80
  bubble_chance: 0.3
`,
	"blizzard": `
theme: snow
snow:
  ambient_per_tick: 8
  hand_per_tick: 6
  large_chance: 0.08
  wind: 2.5
  deposit: 0.4
`,
	"downpour": `
theme: rain
rain:
  max_drops_per_tick: 25
  gravity: 0.6
  water_line: 0.8
`,
}

// GetPreset returns a fresh config for the named preset.
func GetPreset(name string) (*Config, error) {
	overlay, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", fx.ErrUnknownPreset, name, ListPresets())
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(overlay), cfg); err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	cfg.Validate()
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
