package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/hatchling/internal/stability"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hatchling.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	rules := cfg.Rules()
	assert.Equal(t, stability.DefaultRules(), rules)
	assert.Len(t, cfg.UpgradeTable(), 5)
	assert.Equal(t, 6, cfg.Layout().StageCount)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
window:
  title: Test Egg
stability:
  drop_probability: 0.25
  thresholds: [90, 50]
animation:
  frame_duration: 250ms
glitch:
  enabled: false
upgrades:
  - milestone: 10
    cost: 5
    multiplier: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Egg", cfg.Window.Title)
	assert.Equal(t, 960, cfg.Window.Width, "untouched fields keep defaults")
	assert.Equal(t, 0.25, cfg.Stability.DropProbability)
	assert.Equal(t, []float64{90, 50}, cfg.Stability.Thresholds)
	assert.Equal(t, 250*time.Millisecond, cfg.Animation.FrameDuration)
	assert.False(t, cfg.Glitch.Enabled)
	require.Len(t, cfg.Upgrades, 1)
	assert.Equal(t, int64(2), cfg.UpgradeTable()[0].Multiplier)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeFile(t, "stability: [not, a, map")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HATCHLING_SEED", "42")
	t.Setenv("HATCHLING_LOG_LEVEL", "debug")
	t.Setenv("HATCHLING_STABILITY_MAX_DROP", "55.5")
	t.Setenv("HATCHLING_STABILITY_MILESTONES", "10,20,30")
	t.Setenv("HATCHLING_ANIMATION_FRAME_DURATION", "1s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 55.5, cfg.Stability.MaxDrop)
	assert.Equal(t, []int64{10, 20, 30}, cfg.Stability.Milestones)
	assert.Equal(t, time.Second, cfg.Animation.FrameDuration)
	assert.Equal(t, 10.0, cfg.Stability.MinDrop, "unset variables leave defaults")
}

func TestEnvParseError(t *testing.T) {
	t.Setenv("HATCHLING_SEED", "not-a-number")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestEnvNegativeGlitchIntervalRejected(t *testing.T) {
	t.Setenv("HATCHLING_GLITCH_INTERVAL", "-500ms")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"drop probability":   func(c *Config) { c.Stability.DropProbability = 1.5 },
		"branch probability": func(c *Config) { c.Stability.BranchProbability = -0.1 },
		"drop range":         func(c *Config) { c.Stability.MinDrop, c.Stability.MaxDrop = 30, 10 },
		"thresholds":         func(c *Config) { c.Stability.Thresholds = []float64{10, 20} },
		"milestones":         func(c *Config) { c.Stability.Milestones = []int64{100, 100} },
		"frame duration":     func(c *Config) { c.Animation.FrameDuration = -time.Second },
		"window":             func(c *Config) { c.Window.Width = 0 },
		"glitch interval":    func(c *Config) { c.Glitch.Interval = -500 * time.Millisecond },
		"glitch duration":    func(c *Config) { c.Glitch.Duration = -time.Second },
		"glitch intensity":   func(c *Config) { c.Glitch.Intensity = -0.5 },
		"upgrade":            func(c *Config) { c.Upgrades[0].Cost = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateAllowsSpriteMismatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animation.StageSprites = 2
	assert.NoError(t, cfg.Validate())
}
