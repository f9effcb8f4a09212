// Package config holds the game's tuning and runtime settings. Values start
// from DefaultConfig, are overlaid by an optional YAML file, and then by
// HATCHLING_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"chosenoffset.com/hatchling/internal/sprites"
	"chosenoffset.com/hatchling/internal/stability"
	"chosenoffset.com/hatchling/internal/upgrade"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HATCHLING_"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings for a game.
type Config struct {
	Window    WindowConfig    `yaml:"window" envPrefix:"WINDOW_"`
	Log       LogConfig       `yaml:"log" envPrefix:"LOG_"`
	Stability StabilityConfig `yaml:"stability" envPrefix:"STABILITY_"`
	Animation AnimationConfig `yaml:"animation" envPrefix:"ANIMATION_"`
	Glitch    GlitchConfig    `yaml:"glitch" envPrefix:"GLITCH_"`
	Upgrades  []UpgradeConfig `yaml:"upgrades"`

	// Seed for the random source; 0 seeds from the clock.
	Seed int64 `yaml:"seed" env:"SEED"`
}

// WindowConfig sizes the game window.
type WindowConfig struct {
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
	Title  string `yaml:"title" env:"TITLE"`
}

// LogConfig selects the log output.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"FORMAT"` // text or json
}

// StabilityConfig tunes the stability meter.
type StabilityConfig struct {
	DropProbability   float64   `yaml:"drop_probability" env:"DROP_PROBABILITY"`
	MinDrop           float64   `yaml:"min_drop" env:"MIN_DROP"`
	MaxDrop           float64   `yaml:"max_drop" env:"MAX_DROP"`
	BranchProbability float64   `yaml:"branch_probability" env:"BRANCH_PROBABILITY"`
	BranchAOrdinal    int       `yaml:"branch_a_ordinal" env:"BRANCH_A_ORDINAL"`
	BranchBOrdinal    int       `yaml:"branch_b_ordinal" env:"BRANCH_B_ORDINAL"`
	Thresholds        []float64 `yaml:"thresholds" env:"THRESHOLDS"`
	Milestones        []int64   `yaml:"milestones" env:"MILESTONES"`
}

// AnimationConfig sets playback speed and frame counts.
type AnimationConfig struct {
	FrameDuration time.Duration `yaml:"frame_duration" env:"FRAME_DURATION"`
	EggFrames     int           `yaml:"egg_frames" env:"EGG_FRAMES"`
	StageSprites  int           `yaml:"stage_sprites" env:"STAGE_SPRITES"`
	GrowFrames    int           `yaml:"grow_frames" env:"GROW_FRAMES"`
	BranchFrames  int           `yaml:"branch_frames" env:"BRANCH_FRAMES"`

	// SpriteDir holds <frame>.png files. Frames without a file, or all frames
	// when empty, use generated placeholders.
	SpriteDir string `yaml:"sprite_dir" env:"SPRITE_DIR"`
}

// GlitchConfig controls the periodic screen glitch.
type GlitchConfig struct {
	Enabled   bool          `yaml:"enabled" env:"ENABLED"`
	Interval  time.Duration `yaml:"interval" env:"INTERVAL"`
	Duration  time.Duration `yaml:"duration" env:"DURATION"`
	Intensity float64       `yaml:"intensity" env:"INTENSITY"`
}

// UpgradeConfig is one purchasable upgrade.
type UpgradeConfig struct {
	Milestone  int64 `yaml:"milestone"`
	Cost       int64 `yaml:"cost"`
	Multiplier int64 `yaml:"multiplier"`
}

// DefaultConfig returns the standard game settings.
func DefaultConfig() *Config {
	rules := stability.DefaultRules()
	return &Config{
		Window: WindowConfig{
			Width:  960,
			Height: 640,
			Title:  "Hatchling",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Stability: StabilityConfig{
			DropProbability:   rules.DropProbability,
			MinDrop:           rules.MinDrop,
			MaxDrop:           rules.MaxDrop,
			BranchProbability: rules.BranchProbability,
			BranchAOrdinal:    rules.BranchAOrdinal,
			BranchBOrdinal:    rules.BranchBOrdinal,
			Thresholds:        slices.Clone([]float64(rules.Thresholds)),
			Milestones:        slices.Clone([]int64(rules.Milestones)),
		},
		Animation: AnimationConfig{
			FrameDuration: rules.FrameDuration,
			EggFrames:     4,
			StageSprites:  len(rules.Thresholds) + 1,
			GrowFrames:    3,
			BranchFrames:  6,
		},
		Glitch: GlitchConfig{
			Enabled:   true,
			Interval:  5 * time.Second,
			Duration:  500 * time.Millisecond,
			Intensity: 1.0,
		},
		Upgrades: []UpgradeConfig{
			{Milestone: 100, Cost: 100, Multiplier: 10},
			{Milestone: 1_000, Cost: 100, Multiplier: 100},
			{Milestone: 10_000, Cost: 1_000, Multiplier: 1_000},
			{Milestone: 100_000, Cost: 10_000, Multiplier: 10_000},
			{Milestone: 1_000_000, Cost: 100_000, Multiplier: 100_000},
		},
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. A missing file is not an error. An
// empty path skips the file.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the YAML file at path over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays HATCHLING_* environment variables onto cfg. Unset
// variables leave fields untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the settings describe a playable game.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	s := c.Stability
	if s.DropProbability < 0 || s.DropProbability > 1 {
		bad("stability.drop_probability %v outside [0,1]", s.DropProbability)
	}
	if s.BranchProbability < 0 || s.BranchProbability > 1 {
		bad("stability.branch_probability %v outside [0,1]", s.BranchProbability)
	}
	if s.MinDrop < 0 || s.MaxDrop < s.MinDrop {
		bad("stability drop range [%v,%v] is invalid", s.MinDrop, s.MaxDrop)
	}
	for i := 1; i < len(s.Thresholds); i++ {
		if s.Thresholds[i] >= s.Thresholds[i-1] {
			bad("stability.thresholds must be strictly descending")
			break
		}
	}
	for i := 1; i < len(s.Milestones); i++ {
		if s.Milestones[i] <= s.Milestones[i-1] {
			bad("stability.milestones must be strictly ascending")
			break
		}
	}
	if c.Animation.FrameDuration < 0 {
		bad("animation.frame_duration must not be negative")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d is invalid", c.Window.Width, c.Window.Height)
	}
	if c.Glitch.Interval < 0 || c.Glitch.Duration < 0 {
		bad("glitch interval %v and duration %v must not be negative", c.Glitch.Interval, c.Glitch.Duration)
	}
	if c.Glitch.Intensity < 0 {
		bad("glitch.intensity %v must not be negative", c.Glitch.Intensity)
	}
	for i, u := range c.Upgrades {
		if u.Cost < 0 || u.Multiplier < 0 || u.Milestone < 0 {
			bad("upgrades[%d] has a negative value", i)
		}
	}

	return errors.Join(errs...)
}

// Rules converts the stability settings for the state machine.
func (c *Config) Rules() stability.Rules {
	return stability.Rules{
		DropProbability:   c.Stability.DropProbability,
		MinDrop:           c.Stability.MinDrop,
		MaxDrop:           c.Stability.MaxDrop,
		BranchProbability: c.Stability.BranchProbability,
		BranchAOrdinal:    c.Stability.BranchAOrdinal,
		BranchBOrdinal:    c.Stability.BranchBOrdinal,
		Thresholds:        slices.Clone(c.Stability.Thresholds),
		Milestones:        slices.Clone(c.Stability.Milestones),
		FrameDuration:     c.Animation.FrameDuration,
	}
}

// UpgradeTable converts the upgrade settings for the ledger.
func (c *Config) UpgradeTable() []upgrade.Upgrade {
	table := make([]upgrade.Upgrade, len(c.Upgrades))
	for i, u := range c.Upgrades {
		table[i] = upgrade.Upgrade{Milestone: u.Milestone, Cost: u.Cost, Multiplier: u.Multiplier}
	}
	return table
}

// Layout converts the animation settings for the sprite catalog.
func (c *Config) Layout() sprites.Layout {
	return sprites.Layout{
		EggFrames:    c.Animation.EggFrames,
		StageCount:   c.Animation.StageSprites,
		GrowFrames:   c.Animation.GrowFrames,
		BranchFrames: c.Animation.BranchFrames,
	}
}
