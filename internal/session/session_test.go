package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/hatchling/internal/sprites"
	"chosenoffset.com/hatchling/internal/stability"
	"chosenoffset.com/hatchling/internal/transition"
	"chosenoffset.com/hatchling/internal/upgrade"
)

type scripted struct {
	t     *testing.T
	draws []float64
}

func (s *scripted) Float64() float64 {
	s.t.Helper()
	require.NotEmpty(s.t, s.draws, "unexpected random draw")
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

type view struct {
	sprite    sprites.Frame
	stability float64
	gameOver  bool
}

func (v *view) SetSprite(f sprites.Frame)  { v.sprite = f }
func (v *view) ReportStability(x float64) { v.stability = x }
func (v *view) ReportGameOver()           { v.gameOver = true }

type fixture struct {
	session *Session
	rng     *scripted
	clock   *transition.ManualClock
	view    *view
}

func newFixture(t *testing.T) *fixture {
	rules := stability.DefaultRules()
	rules.MinDrop = 0
	rules.MaxDrop = 100

	f := &fixture{
		rng:   &scripted{t: t},
		clock: transition.NewManualClock(time.Unix(0, 0)),
		view:  &view{stability: stability.MaxStability},
	}
	f.session = New(Options{
		Rules: rules,
		Upgrades: []upgrade.Upgrade{
			{Milestone: 100, Cost: 100, Multiplier: 10},
			{Milestone: 1000, Cost: 100, Multiplier: 100},
		},
		Catalog:  sprites.NewBook(sprites.Layout{EggFrames: 2, StageCount: 6, GrowFrames: 2, BranchFrames: 2}),
		Random:   f.rng,
		Clock:    f.clock,
		Observer: f.view,
	})
	return f
}

func (f *fixture) settle() {
	for i := 0; i < 50; i++ {
		f.clock.Advance(time.Second)
		f.session.Tick()
	}
}

func (f *fixture) click(n int) {
	for i := 0; i < n; i++ {
		f.session.RegisterClick()
	}
}

func TestFirstClickHatchesEgg(t *testing.T) {
	f := newFixture(t)
	require.NotEmpty(t, f.session.ID())

	f.click(1)
	snap := f.session.Snapshot()
	assert.Equal(t, int64(1), snap.Clicks)
	assert.Equal(t, stability.StageBaby, snap.Stage)
	assert.True(t, snap.Animating)
	assert.Equal(t, sprites.Frame("egg_open_0"), f.view.sprite)

	f.settle()
	assert.Equal(t, sprites.Frame("stage_0"), f.view.sprite)
	assert.False(t, f.session.Snapshot().Animating)
}

func TestClicksToGameOver(t *testing.T) {
	f := newFixture(t)
	f.click(1)
	f.settle()

	f.click(98)
	assert.Equal(t, stability.MaxStability, f.view.stability)

	// 100th click: drop of 50, no branch.
	f.rng.draws = []float64{0.1, 0.5, 0.9}
	f.click(1)
	assert.InDelta(t, 50.0, f.view.stability, 1e-9)
	assert.Equal(t, stability.Stage{Kind: stability.KindGrowing, Ordinal: 2}, f.session.Snapshot().Stage)

	// 1000th click: drop of 60 ends the game.
	f.rng.draws = []float64{0.1, 0.6}
	f.click(900)
	assert.True(t, f.view.gameOver)
	assert.Equal(t, sprites.Frame("game_over"), f.view.sprite)

	f.click(5000)
	assert.Equal(t, int64(1000), f.session.Clicks(), "clicks after game over are ignored")
	assert.ErrorIs(t, f.session.PurchaseUpgrade(0), ErrGameOver)
}

func TestPurchaseUpgrade(t *testing.T) {
	f := newFixture(t)
	f.click(1)
	f.settle()

	assert.ErrorIs(t, f.session.PurchaseUpgrade(0), upgrade.ErrLocked)

	f.rng.draws = []float64{0.9} // milestone trial held
	f.click(99)
	require.Equal(t, int64(100), f.session.Clicks())

	f.rng.draws = []float64{0.1, 0.1} // upgrade trial drops 10
	require.NoError(t, f.session.PurchaseUpgrade(0))
	snap := f.session.Snapshot()
	assert.Equal(t, int64(0), snap.Clicks)
	assert.Equal(t, int64(11), snap.Multiplier)
	assert.InDelta(t, 90.0, snap.Stability, 1e-9)

	f.click(1)
	assert.Equal(t, int64(11), f.session.Clicks())

	assert.ErrorIs(t, f.session.PurchaseUpgrade(0), upgrade.ErrAlreadyPurchased)
	assert.ErrorIs(t, f.session.PurchaseUpgrade(9), upgrade.ErrUnknownUpgrade)
}

func TestResetMidTransition(t *testing.T) {
	f := newFixture(t)
	f.click(1)
	require.True(t, f.session.Snapshot().Animating)

	f.session.Reset()
	snap := f.session.Snapshot()
	assert.False(t, snap.Animating)
	assert.Equal(t, int64(0), snap.Clicks)
	assert.Equal(t, int64(1), snap.Multiplier)
	assert.Equal(t, stability.MaxStability, snap.Stability)
	assert.Equal(t, stability.StageEgg, snap.Stage)
	assert.Equal(t, sprites.Frame("egg"), f.view.sprite)

	// The cancelled hatch must not repaint the baby over the fresh egg.
	f.settle()
	assert.Equal(t, sprites.Frame("egg"), f.view.sprite)

	// The next click hatches again.
	f.click(1)
	assert.Equal(t, stability.StageBaby, f.session.Snapshot().Stage)
}

func TestResetAfterGameOver(t *testing.T) {
	f := newFixture(t)
	f.click(1)
	f.settle()
	f.rng.draws = []float64{0.1, 1.0}
	f.click(99)
	require.True(t, f.session.Snapshot().GameOver)

	f.session.Reset()
	snap := f.session.Snapshot()
	assert.False(t, snap.GameOver)
	assert.Equal(t, stability.MaxStability, snap.Stability)

	f.click(99)
	f.settle()
	assert.Equal(t, stability.MaxStability, f.session.Snapshot().Stability)
}
