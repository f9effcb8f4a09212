// Package session owns all mutable game state for one play-through: the click
// counter, the upgrade ledger, the stability machine and the transition player.
// Input handlers and the UI go through a Session instead of sharing globals.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"chosenoffset.com/hatchling/internal/clicks"
	"chosenoffset.com/hatchling/internal/sprites"
	"chosenoffset.com/hatchling/internal/stability"
	"chosenoffset.com/hatchling/internal/transition"
	"chosenoffset.com/hatchling/internal/upgrade"
)

// ErrGameOver is returned for actions attempted after the game has ended.
var ErrGameOver = errors.New("game is over")

// Snapshot is a read-only view of the session, for the HUD and logs.
type Snapshot struct {
	ID         string
	Clicks     int64
	Multiplier int64
	Stability  float64
	Stage      stability.Stage
	GameOver   bool
	Animating  bool
}

// Options configure a new Session.
type Options struct {
	Rules    stability.Rules
	Upgrades []upgrade.Upgrade
	Catalog  stability.Catalog
	Random   stability.Random
	Clock    transition.Clock
	Observer stability.Observer
	Logger   *slog.Logger
}

// Session wires the game components together.
type Session struct {
	id      string
	counter *clicks.Counter
	ledger  *upgrade.Ledger
	machine *stability.Machine
	player  *transition.Player
	logger  *slog.Logger
}

// New creates a session with a fresh id.
func New(opts Options) *Session {
	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(slog.String("session", id))

	s := &Session{
		id:      id,
		counter: clicks.New(),
		ledger:  upgrade.NewLedger(opts.Upgrades),
		logger:  logger,
	}
	s.player = transition.NewPlayer(opts.Clock, func(f sprites.Frame) {
		if opts.Observer != nil {
			opts.Observer.SetSprite(f)
		}
	})
	s.machine = stability.New(stability.Options{
		Rules:    opts.Rules,
		Random:   opts.Random,
		Catalog:  opts.Catalog,
		Animator: s.player,
		Observer: opts.Observer,
		Logger:   logger,
	})
	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Ledger exposes the upgrade table for display.
func (s *Session) Ledger() *upgrade.Ledger {
	return s.ledger
}

// Clicks returns the current click total.
func (s *Session) Clicks() int64 {
	return s.counter.Value()
}

// RegisterClick handles one click on the creature. The first click hatches the
// egg; every click adds the current multiplier. Clicks after game over are
// ignored.
func (s *Session) RegisterClick() {
	if s.machine.IsGameOver() {
		return
	}
	if s.counter.Value() == 0 {
		s.machine.OnEggBreak()
	}
	total := s.counter.Add(s.ledger.Multiplier())
	s.machine.OnClickCountChanged(total)
}

// PurchaseUpgrade buys upgrade i. Each purchase risks a stability drop.
func (s *Session) PurchaseUpgrade(i int) error {
	if s.machine.IsGameOver() {
		return fmt.Errorf("purchase upgrade %d: %w", i, ErrGameOver)
	}
	if err := s.ledger.Purchase(i, s.counter); err != nil {
		return fmt.Errorf("purchase upgrade: %w", err)
	}
	s.logger.Info("upgrade purchased",
		slog.Int("upgrade", i),
		slog.Int64("multiplier", s.ledger.Multiplier()),
		slog.Int64("clicks", s.counter.Value()))
	s.machine.OnUpgradePurchased()
	return nil
}

// Tick advances playback. Call once per frame.
func (s *Session) Tick() {
	s.player.Update()
}

// Reset starts a new play-through. Any playing sequence is cancelled first so
// no stale completion lands on the fresh state.
func (s *Session) Reset() {
	if s.player.Cancel() {
		s.logger.Debug("cancelled transition on reset")
	}
	s.counter.Reset()
	s.ledger.Reset()
	s.machine.Reset()
	s.logger.Info("session reset")
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	st := s.machine.State()
	return Snapshot{
		ID:         s.id,
		Clicks:     s.counter.Value(),
		Multiplier: s.ledger.Multiplier(),
		Stability:  st.Stability,
		Stage:      st.Stage,
		GameOver:   st.GameOver,
		Animating:  s.player.Busy(),
	}
}
