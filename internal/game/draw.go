package game

import (
	"image/color"
	"log/slog"

	"chosenoffset.com/hatchling/internal/render"
)

// Glitch jitter in pixels at intensity 1.
const glitchJitter = 12.0

var background = color.RGBA{18, 16, 24, 255}

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(background)

	now := g.clock.Now()
	g.drawCreature(screen, g.Glitch.Intensity(now))
	g.GameHUD.Draw(screen, g.hudState(), now.Sub(g.started))
}

func (g *Game) drawCreature(screen render.Image, glitch float64) {
	img, ok := g.Sprites.Image(g.View.Frame())
	if !ok {
		g.logger.Debug("no image for frame", slog.String("frame", string(g.View.Frame())))
		return
	}

	rect := g.creatureRect()
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Scale(CreatureScale, CreatureScale)
	opts.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))

	if glitch > 0 {
		dx, dy := g.jitter(glitch)
		opts.GeoM.Translate(dx, dy)
		// Tint toward cyan while glitching.
		opts.ColorScale = [4]float32{float32(1 - 0.5*glitch), 1, 1, 1}

		// Ghost copy offset the other way.
		ghost := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		ghost.GeoM.Scale(CreatureScale, CreatureScale)
		ghost.GeoM.Translate(float64(rect.Min.X)-dx, float64(rect.Min.Y)-dy)
		ghost.ColorScale = [4]float32{1, 0.3, 0.3, float32(0.5 * glitch)}
		screen.DrawImage(img, ghost)
	}

	screen.DrawImage(img, opts)
}

func (g *Game) jitter(intensity float64) (float64, float64) {
	if g.random == nil {
		return glitchJitter * intensity, 0
	}
	dx := (g.random.Float64()*2 - 1) * glitchJitter * intensity
	dy := (g.random.Float64()*2 - 1) * glitchJitter * intensity
	return dx, dy
}
