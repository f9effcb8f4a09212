package game

import (
	"log/slog"

	"chosenoffset.com/hatchling/internal/sprites"
	"chosenoffset.com/hatchling/internal/stability"
)

// View receives the session's events and holds what the screen should show.
// It is the session's stability.Observer.
type View struct {
	frame     sprites.Frame
	stability float64
	gameOver  bool
	logger    *slog.Logger
}

var _ stability.Observer = (*View)(nil)

// NewView creates a view showing the unhatched egg at full stability.
func NewView(logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &View{frame: sprites.FrameEgg, stability: stability.MaxStability, logger: logger}
}

// SetSprite switches the displayed frame.
func (v *View) SetSprite(f sprites.Frame) {
	v.frame = f
}

// ReportStability records the meter value.
func (v *View) ReportStability(value float64) {
	v.stability = value
}

// ReportGameOver marks the game as ended.
func (v *View) ReportGameOver() {
	if !v.gameOver {
		v.logger.Info("game over", slog.Float64("stability", v.stability))
	}
	v.gameOver = true
}

// Reset clears the game over flag ahead of a session reset, which then
// reports the egg and full stability.
func (v *View) Reset() {
	v.gameOver = false
}

// Frame returns the frame on screen.
func (v *View) Frame() sprites.Frame { return v.frame }

// Stability returns the last reported meter value.
func (v *View) Stability() float64 { return v.stability }

// GameOver reports whether the game over overlay is up.
func (v *View) GameOver() bool { return v.gameOver }
