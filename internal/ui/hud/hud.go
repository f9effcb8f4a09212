// Package hud draws the click counter, the stability bar, the upgrade buttons
// and the game over overlay.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"chosenoffset.com/hatchling/internal/render"
	"chosenoffset.com/hatchling/internal/stability"
)

// Bar wobble, matching the stability meter's jitter once it has dropped.
const (
	waverSpeed     = 15.0
	waverIntensity = 5.0
	wobbleRange    = 3.0
)

// Layout constants
const (
	padding      = 10
	lineHeight   = 16
	barWidth     = 240
	barHeight    = 16
	buttonWidth  = 200
	buttonHeight = 44
	buttonGap    = 8
)

// UpgradeButton is one purchasable upgrade shown in the side panel.
type UpgradeButton struct {
	Index      int
	Cost       int64
	Multiplier int64
	Affordable bool
}

// State is everything the HUD displays in one frame.
type State struct {
	Clicks     int64
	Multiplier int64
	Stability  float64
	Stage      stability.Stage
	GameOver   bool
	Upgrades   []UpgradeButton
}

// HUD manages the heads-up display
type HUD struct {
	renderer     render.Renderer
	screenWidth  int
	screenHeight int
}

// New creates a HUD for the given screen size.
func New(r render.Renderer, screenWidth, screenHeight int) *HUD {
	return &HUD{renderer: r, screenWidth: screenWidth, screenHeight: screenHeight}
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// ButtonRect returns where the n-th visible upgrade button is drawn.
func (h *HUD) ButtonRect(n int) image.Rectangle {
	x := h.screenWidth - buttonWidth - padding
	y := padding + n*(buttonHeight+buttonGap)
	return image.Rect(x, y, x+buttonWidth, y+buttonHeight)
}

// ButtonAt returns the upgrade index under (x, y), if any.
func (h *HUD) ButtonAt(buttons []UpgradeButton, x, y int) (int, bool) {
	p := image.Pt(x, y)
	for n, b := range buttons {
		if p.In(h.ButtonRect(n)) {
			return b.Index, true
		}
	}
	return 0, false
}

// Draw renders the HUD. elapsed drives the bar animation.
func (h *HUD) Draw(screen render.Image, st State, elapsed time.Duration) {
	y := padding
	h.drawText(screen, fmt.Sprintf("Observations: %d", st.Clicks), padding, y)
	y += lineHeight
	if st.Multiplier > 1 {
		h.drawText(screen, fmt.Sprintf("Researching Efficiency: x%d", st.Multiplier), padding, y)
		y += lineHeight
	}
	h.drawText(screen, "Stage: "+st.Stage.String(), padding, y)

	h.drawStabilityBar(screen, st.Stability, elapsed)

	for n, b := range st.Upgrades {
		h.drawButton(screen, h.ButtonRect(n), b)
	}

	if st.GameOver {
		h.drawGameOver(screen)
	}
}

// BarValue returns the displayed bar value: the stability plus a sinusoidal
// wobble once it has dropped below the maximum, clamped to the meter range.
func BarValue(value float64, elapsed time.Duration) float64 {
	if value >= stability.MaxStability {
		return value
	}
	t := elapsed.Seconds()
	wobbled := value + math.Sin(t*waverSpeed)*wobbleRange
	return math.Max(0, math.Min(stability.MaxStability, wobbled))
}

// BarOffset returns the bar's positional shake.
func BarOffset(value float64, elapsed time.Duration) (dx, dy float64) {
	if value >= stability.MaxStability {
		return 0, 0
	}
	t := elapsed.Seconds()
	return math.Sin(t*waverSpeed*0.5) * waverIntensity,
		math.Cos(t*waverSpeed*0.3) * waverIntensity * 0.5
}

// BarColor blends from red at 0 to green at full stability.
func BarColor(value float64) color.RGBA {
	t := math.Max(0, math.Min(1, value/stability.MaxStability))
	return color.RGBA{
		R: uint8(255 * (1 - t)),
		G: uint8(255 * t),
		A: 255,
	}
}

func (h *HUD) drawStabilityBar(screen render.Image, value float64, elapsed time.Duration) {
	dx, dy := BarOffset(value, elapsed)
	x := float32(float64(padding) + dx)
	y := float32(float64(h.screenHeight-padding-barHeight-lineHeight) + dy)

	// Background
	h.renderer.FillRect(screen, x, y, barWidth, barHeight, color.RGBA{60, 20, 20, 255})

	shown := BarValue(value, elapsed)
	if fill := float32(barWidth * shown / stability.MaxStability); fill > 0 {
		h.renderer.FillRect(screen, x+1, y+1, max(fill-2, 1), barHeight-2, BarColor(value))
	}
	h.renderer.StrokeRect(screen, x, y, barWidth, barHeight, 1, color.RGBA{60, 60, 80, 255})

	h.drawText(screen, fmt.Sprintf("Stability: %.1f%%", value), padding, int(y)+barHeight+2)
}

func (h *HUD) drawButton(screen render.Image, r image.Rectangle, b UpgradeButton) {
	fill := color.RGBA{40, 40, 60, 220}
	if b.Affordable {
		fill = color.RGBA{40, 90, 50, 220}
	}
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, bh := float32(r.Dx()), float32(r.Dy())
	h.renderer.FillRect(screen, x, y, w, bh, fill)
	h.renderer.StrokeRect(screen, x, y, w, bh, 1, color.RGBA{120, 120, 160, 255})

	h.drawText(screen, fmt.Sprintf("Cost: %d clicks", b.Cost), r.Min.X+8, r.Min.Y+6)
	h.drawText(screen, fmt.Sprintf("+%d clicks per click", b.Multiplier), r.Min.X+8, r.Min.Y+6+lineHeight)
}

func (h *HUD) drawGameOver(screen render.Image) {
	h.renderer.FillRect(screen, 0, 0, float32(h.screenWidth), float32(h.screenHeight), color.RGBA{0, 0, 0, 160})

	title := "THE SPECIMEN HAS DESTABILIZED"
	hint := "Press R to begin a new observation"
	tw, _ := h.renderer.MeasureText(title, 1)
	hw, _ := h.renderer.MeasureText(hint, 1)
	h.drawText(screen, title, (h.screenWidth-tw)/2, h.screenHeight/2-lineHeight)
	h.drawText(screen, hint, (h.screenWidth-hw)/2, h.screenHeight/2+4)
}

func (h *HUD) drawText(screen render.Image, text string, x, y int) {
	h.renderer.DrawText(screen, text, x, y, color.White, 1)
}
