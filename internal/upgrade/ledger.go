// Package upgrade tracks purchasable click multipliers. Each upgrade unlocks at
// a click milestone, costs clicks, and adds to the per-click multiplier.
package upgrade

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownUpgrade     = errors.New("unknown upgrade")
	ErrAlreadyPurchased   = errors.New("upgrade already purchased")
	ErrLocked             = errors.New("upgrade milestone not reached")
	ErrInsufficientClicks = errors.New("not enough clicks")
)

// Upgrade is one entry of the upgrade table.
type Upgrade struct {
	Milestone  int64
	Cost       int64
	Multiplier int64
}

// Wallet is where purchase costs are paid from.
type Wallet interface {
	Value() int64
	Spend(n int64) bool
}

// Ledger records which upgrades have been bought.
type Ledger struct {
	upgrades   []Upgrade
	purchased  []bool
	multiplier int64
}

// NewLedger creates a ledger for the given upgrade table.
func NewLedger(upgrades []Upgrade) *Ledger {
	l := &Ledger{upgrades: append([]Upgrade(nil), upgrades...)}
	l.Reset()
	return l
}

// Len returns the number of upgrades in the table.
func (l *Ledger) Len() int {
	return len(l.upgrades)
}

// Upgrade returns the table entry at index i.
func (l *Ledger) Upgrade(i int) (Upgrade, bool) {
	if i < 0 || i >= len(l.upgrades) {
		return Upgrade{}, false
	}
	return l.upgrades[i], true
}

// Purchased reports whether upgrade i has been bought.
func (l *Ledger) Purchased(i int) bool {
	return i >= 0 && i < len(l.purchased) && l.purchased[i]
}

// Available reports whether upgrade i should be offered at the given click
// total: its milestone is reached and it has not been bought.
func (l *Ledger) Available(i int, clicks int64) bool {
	u, ok := l.Upgrade(i)
	return ok && !l.purchased[i] && clicks >= u.Milestone
}

// Multiplier returns the clicks added per click.
func (l *Ledger) Multiplier() int64 {
	return l.multiplier
}

// Purchase buys upgrade i, paying its cost from the wallet.
func (l *Ledger) Purchase(i int, wallet Wallet) error {
	u, ok := l.Upgrade(i)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownUpgrade, i)
	}
	if l.purchased[i] {
		return fmt.Errorf("%w: %d", ErrAlreadyPurchased, i)
	}
	if wallet.Value() < u.Milestone {
		return fmt.Errorf("%w: upgrade %d needs %d clicks", ErrLocked, i, u.Milestone)
	}
	if !wallet.Spend(u.Cost) {
		return fmt.Errorf("%w: upgrade %d costs %d", ErrInsufficientClicks, i, u.Cost)
	}
	l.purchased[i] = true
	l.multiplier += u.Multiplier
	return nil
}

// Reset clears all purchases and restores the base multiplier of 1.
func (l *Ledger) Reset() {
	l.purchased = make([]bool, len(l.upgrades))
	l.multiplier = 1
}
