// Package effects provides time-driven screen effects.
package effects

import "time"

// GlitchSettings configure a Glitch.
type GlitchSettings struct {
	Enabled   bool
	Interval  time.Duration // quiet time before each burst
	Duration  time.Duration // length of each burst
	Intensity float64
}

// Glitch alternates between a quiet period and a short burst, forever.
type Glitch struct {
	settings GlitchSettings
	start    time.Time
}

// NewGlitch creates a glitch whose first quiet period begins at start.
func NewGlitch(settings GlitchSettings, start time.Time) *Glitch {
	return &Glitch{settings: settings, start: start}
}

// Restart begins a fresh quiet period at now.
func (g *Glitch) Restart(now time.Time) {
	g.start = now
}

// Active reports whether a burst is in progress.
func (g *Glitch) Active(now time.Time) bool {
	s := g.settings
	if !s.Enabled || s.Duration <= 0 || s.Interval < 0 || now.Before(g.start) {
		return false
	}
	period := s.Interval + s.Duration
	if period <= 0 {
		return false
	}
	phase := now.Sub(g.start) % period
	return phase >= s.Interval
}

// Intensity returns the burst strength at now, or 0 when quiet.
func (g *Glitch) Intensity(now time.Time) float64 {
	if !g.Active(now) {
		return 0
	}
	return g.settings.Intensity
}
