package config

import (
	"fmt"
	"log"
	"os"

	"github.com/san-kum/gesturefx/internal/fx"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS        = 60
	DefaultDetectFPS  = 30
	DefaultMaxCatchUp = 5

	DefaultPinchThreshold  = 0.06
	DefaultMiddleExtension = 0.25
	DefaultRingExtension   = 0.25
	DefaultPinkyExtension  = 0.20
	DefaultDebounceMs      = 1500
	DefaultHoverBand       = 0.20

	DefaultMaxCreatures = 20
	DefaultFollowEase   = 0.08
	DefaultDamping      = 0.98
	DefaultBubbleChance = 0.15
	DefaultWrapMargin   = 100.0

	DefaultMeltRadius = 50.0
	DefaultMeltZone   = 0.70
	DefaultLargeFlake = 0.05
	DefaultMaxFlakes  = 2500

	DefaultMaxDropsPerTick = 10
	DefaultWaterLine       = 0.85
	DefaultSplashGravity   = 0.5
	DefaultNearWater       = 20.0
)

type Config struct {
	Theme     fx.Theme        `yaml:"theme"`
	Seed      int64           `yaml:"seed"`
	Loop      LoopConfig      `yaml:"loop"`
	Gesture   GestureConfig   `yaml:"gesture"`
	Jellyfish JellyfishConfig `yaml:"jellyfish"`
	Snow      SnowConfig      `yaml:"snow"`
	Rain      RainConfig      `yaml:"rain"`
}

type LoopConfig struct {
	FPS        int `yaml:"fps"`
	DetectFPS  int `yaml:"detect_fps"`
	MaxCatchUp int `yaml:"max_catch_up"`
}

// GestureConfig holds the empirically tuned gesture thresholds, all in
// normalized landmark units except DebounceMs.
type GestureConfig struct {
	PinchThreshold  float64 `yaml:"pinch_threshold"`
	MiddleExtension float64 `yaml:"middle_extension"`
	RingExtension   float64 `yaml:"ring_extension"`
	PinkyExtension  float64 `yaml:"pinky_extension"`
	DebounceMs      int64   `yaml:"debounce_ms"`
	HoverBand       float64 `yaml:"hover_band"`
}

type JellyfishConfig struct {
	MaxCreatures int     `yaml:"max_creatures"`
	SpawnMin     int     `yaml:"spawn_min"`
	SpawnMax     int     `yaml:"spawn_max"`
	SpawnSpread  float64 `yaml:"spawn_spread"`
	FollowEase   float64 `yaml:"follow_ease"`
	Damping      float64 `yaml:"damping"`
	ReleaseSpeed float64 `yaml:"release_speed"`
	BubbleChance float64 `yaml:"bubble_chance"`
	WrapMargin   float64 `yaml:"wrap_margin"`
}

type SnowConfig struct {
	AmbientPerTick int     `yaml:"ambient_per_tick"`
	HandPerTick    int     `yaml:"hand_per_tick"`
	LargeChance    float64 `yaml:"large_chance"`
	MeltRadius     float64 `yaml:"melt_radius"`
	MeltRate       float64 `yaml:"melt_rate"`
	MeltZone       float64 `yaml:"melt_zone"`
	Deposit        float64 `yaml:"deposit"`
	Wind           float64 `yaml:"wind"`
	MaxFlakes      int     `yaml:"max_flakes"`
}

type RainConfig struct {
	MaxDropsPerTick int     `yaml:"max_drops_per_tick"`
	WaterLine       float64 `yaml:"water_line"`
	Gravity         float64 `yaml:"gravity"`
	NearWater       float64 `yaml:"near_water"`
	MaxDrops        int     `yaml:"max_drops"`
	MaxRipples      int     `yaml:"max_ripples"`
	MaxSplashes     int     `yaml:"max_splashes"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: fx.Jellyfish,
		Loop: LoopConfig{
			FPS:        DefaultFPS,
			DetectFPS:  DefaultDetectFPS,
			MaxCatchUp: DefaultMaxCatchUp,
		},
		Gesture: GestureConfig{
			PinchThreshold:  DefaultPinchThreshold,
			MiddleExtension: DefaultMiddleExtension,
			RingExtension:   DefaultRingExtension,
			PinkyExtension:  DefaultPinkyExtension,
			DebounceMs:      DefaultDebounceMs,
			HoverBand:       DefaultHoverBand,
		},
		Jellyfish: JellyfishConfig{
			MaxCreatures: DefaultMaxCreatures,
			SpawnMin:     3,
			SpawnMax:     4,
			SpawnSpread:  40,
			FollowEase:   DefaultFollowEase,
			Damping:      DefaultDamping,
			ReleaseSpeed: 3,
			BubbleChance: DefaultBubbleChance,
			WrapMargin:   DefaultWrapMargin,
		},
		Snow: SnowConfig{
			AmbientPerTick: 2,
			HandPerTick:    3,
			LargeChance:    DefaultLargeFlake,
			MeltRadius:     DefaultMeltRadius,
			MeltRate:       2,
			MeltZone:       DefaultMeltZone,
			Deposit:        0.25,
			Wind:           0.6,
			MaxFlakes:      DefaultMaxFlakes,
		},
		Rain: RainConfig{
			MaxDropsPerTick: DefaultMaxDropsPerTick,
			WaterLine:       DefaultWaterLine,
			Gravity:         DefaultSplashGravity,
			NearWater:       DefaultNearWater,
			MaxDrops:        800,
			MaxRipples:      300,
			MaxSplashes:     900,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Validate()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate resets out-of-range values to their defaults, logging each one.
// It reports how many fields were reset.
func (c *Config) Validate() int {
	d := DefaultConfig()
	n := 0
	fixInt := func(name string, v *int, lo, hi, def int) {
		if *v < lo || *v > hi {
			log.Printf("config: %s=%d out of range [%d, %d], using %d", name, *v, lo, hi, def)
			*v = def
			n++
		}
	}
	fixFloat := func(name string, v *float64, lo, hi, def float64) {
		if !fx.Finite(*v) || *v < lo || *v > hi {
			log.Printf("config: %s=%.3f out of range [%.3f, %.3f], using %.3f", name, *v, lo, hi, def)
			*v = def
			n++
		}
	}

	if !c.Theme.Valid() {
		log.Printf("config: theme %d invalid, using %s", int(c.Theme), d.Theme)
		c.Theme = d.Theme
		n++
	}

	fixInt("loop.fps", &c.Loop.FPS, 1, 240, d.Loop.FPS)
	fixInt("loop.detect_fps", &c.Loop.DetectFPS, 1, 240, d.Loop.DetectFPS)
	fixInt("loop.max_catch_up", &c.Loop.MaxCatchUp, 1, 60, d.Loop.MaxCatchUp)

	g, dg := &c.Gesture, d.Gesture
	fixFloat("gesture.pinch_threshold", &g.PinchThreshold, 0.001, 0.5, dg.PinchThreshold)
	fixFloat("gesture.middle_extension", &g.MiddleExtension, 0, 1, dg.MiddleExtension)
	fixFloat("gesture.ring_extension", &g.RingExtension, 0, 1, dg.RingExtension)
	fixFloat("gesture.pinky_extension", &g.PinkyExtension, 0, 1, dg.PinkyExtension)
	if g.DebounceMs < 0 {
		log.Printf("config: gesture.debounce_ms=%d negative, using %d", g.DebounceMs, dg.DebounceMs)
		g.DebounceMs = dg.DebounceMs
		n++
	}
	fixFloat("gesture.hover_band", &g.HoverBand, 0, 1, dg.HoverBand)

	j, dj := &c.Jellyfish, d.Jellyfish
	fixInt("jellyfish.max_creatures", &j.MaxCreatures, 0, DefaultMaxCreatures, dj.MaxCreatures)
	fixInt("jellyfish.spawn_min", &j.SpawnMin, 1, 20, dj.SpawnMin)
	fixInt("jellyfish.spawn_max", &j.SpawnMax, j.SpawnMin, 20, max(dj.SpawnMax, j.SpawnMin))
	fixFloat("jellyfish.spawn_spread", &j.SpawnSpread, 0, 500, dj.SpawnSpread)
	fixFloat("jellyfish.follow_ease", &j.FollowEase, 0.001, 1, dj.FollowEase)
	fixFloat("jellyfish.damping", &j.Damping, 0, 1, dj.Damping)
	fixFloat("jellyfish.release_speed", &j.ReleaseSpeed, 0.01, 50, dj.ReleaseSpeed)
	fixFloat("jellyfish.bubble_chance", &j.BubbleChance, 0, 1, dj.BubbleChance)
	fixFloat("jellyfish.wrap_margin", &j.WrapMargin, 0, 1000, dj.WrapMargin)

	s, ds := &c.Snow, d.Snow
	fixInt("snow.ambient_per_tick", &s.AmbientPerTick, 0, 100, ds.AmbientPerTick)
	fixInt("snow.hand_per_tick", &s.HandPerTick, 0, 100, ds.HandPerTick)
	fixFloat("snow.large_chance", &s.LargeChance, 0, 1, ds.LargeChance)
	fixFloat("snow.melt_radius", &s.MeltRadius, 1, 1000, ds.MeltRadius)
	fixFloat("snow.melt_rate", &s.MeltRate, 0, 100, ds.MeltRate)
	fixFloat("snow.melt_zone", &s.MeltZone, 0, 1, ds.MeltZone)
	fixFloat("snow.deposit", &s.Deposit, 0, 10, ds.Deposit)
	fixFloat("snow.wind", &s.Wind, 0, 10, ds.Wind)
	fixInt("snow.max_flakes", &s.MaxFlakes, 1, 100000, ds.MaxFlakes)

	r, dr := &c.Rain, d.Rain
	fixInt("rain.max_drops_per_tick", &r.MaxDropsPerTick, 0, 200, dr.MaxDropsPerTick)
	fixFloat("rain.water_line", &r.WaterLine, 0.1, 1, dr.WaterLine)
	fixFloat("rain.gravity", &r.Gravity, 0, 10, dr.Gravity)
	fixFloat("rain.near_water", &r.NearWater, 0, 500, dr.NearWater)
	fixInt("rain.max_drops", &r.MaxDrops, 1, 100000, dr.MaxDrops)
	fixInt("rain.max_ripples", &r.MaxRipples, 1, 100000, dr.MaxRipples)
	fixInt("rain.max_splashes", &r.MaxSplashes, 3, 100000, dr.MaxSplashes)

	return n
}
