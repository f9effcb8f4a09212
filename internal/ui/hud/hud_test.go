package hud

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/hatchling/internal/render/rendertest"
	"chosenoffset.com/hatchling/internal/stability"
)

func TestDrawTexts(t *testing.T) {
	h := New(&rendertest.Renderer{}, 960, 640)
	screen := rendertest.NewImage(960, 640)

	h.Draw(screen, State{
		Clicks:     120,
		Multiplier: 1,
		Stability:  71.24,
		Stage:      stability.StageBaby,
		Upgrades:   []UpgradeButton{{Index: 0, Cost: 50, Multiplier: 2, Affordable: true}},
	}, 0)

	texts := screen.Texts()
	assert.Contains(t, texts, "Observations: 120")
	assert.NotContains(t, texts, "Researching Efficiency: x1")
	assert.Contains(t, texts, "Stability: 71.2%")
	assert.Contains(t, texts, "Cost: 50 clicks")
	assert.Contains(t, texts, "+2 clicks per click")
}

func TestDrawMultiplierAndGameOver(t *testing.T) {
	h := New(&rendertest.Renderer{}, 960, 640)
	screen := rendertest.NewImage(960, 640)

	h.Draw(screen, State{Clicks: 5, Multiplier: 3, GameOver: true, Stage: stability.StageGameOver}, 0)

	texts := screen.Texts()
	assert.Contains(t, texts, "Researching Efficiency: x3")
	assert.Contains(t, texts, "Press R to begin a new observation")
}

func TestButtonHitTesting(t *testing.T) {
	h := New(&rendertest.Renderer{}, 960, 640)
	buttons := []UpgradeButton{{Index: 1}, {Index: 3}}

	second := h.ButtonRect(1)
	idx, ok := h.ButtonAt(buttons, second.Min.X+1, second.Min.Y+1)
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	_, ok = h.ButtonAt(buttons, 0, 0)
	assert.False(t, ok)

	third := h.ButtonRect(2)
	_, ok = h.ButtonAt(buttons, third.Min.X+1, third.Min.Y+1)
	assert.False(t, ok, "only visible buttons are hit")
}

func TestBarWobble(t *testing.T) {
	assert.Equal(t, 100.0, BarValue(100, 123*time.Millisecond), "full bar is still")
	dx, dy := BarOffset(100, time.Second)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	elapsed := 100 * time.Millisecond
	want := 50 + math.Sin(elapsed.Seconds()*waverSpeed)*wobbleRange
	assert.InDelta(t, want, BarValue(50, elapsed), 1e-9)

	assert.GreaterOrEqual(t, BarValue(1, 300*time.Millisecond), 0.0)
	assert.LessOrEqual(t, BarValue(99, 100*time.Millisecond), 100.0)
}

func TestBarColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, BarColor(0))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, BarColor(100))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, BarColor(-5))
}
