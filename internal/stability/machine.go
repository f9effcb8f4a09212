// Package stability implements the creature's progression: a stability meter
// that drops at random as click milestones are reached and upgrades are
// bought, and the stage changes that follow from it.
package stability

import (
	"errors"
	"log/slog"

	"chosenoffset.com/hatchling/internal/sprites"
	"chosenoffset.com/hatchling/internal/transition"
)

// Random is the source of uniform draws in [0, 1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// Observer receives display updates at the moment state changes.
type Observer interface {
	SetSprite(frame sprites.Frame)
	ReportStability(value float64)
	ReportGameOver()
}

// Catalog resolves stages to frames and sequences.
type Catalog interface {
	Egg() sprites.Frame
	GameOver() sprites.Frame
	StageCount() int
	Stage(ordinal int) (sprites.Frame, bool)
	EggSequence() []sprites.Frame
	GrowSequence(ordinal int) []sprites.Frame
	BranchSequence(branch sprites.Branch) []sprites.Frame
}

// Animator plays one frame sequence at a time.
type Animator interface {
	Play(seq transition.Sequence, onComplete func()) (*transition.Task, error)
	Cancel() bool
}

// State is a copy of the machine's fields.
type State struct {
	Stability             float64
	LastMilestone         int
	Stage                 Stage
	EggBroken             bool
	FirstMilestoneReached bool
	GameOver              bool
}

func initialState() State {
	return State{Stability: MaxStability, Stage: StageEgg}
}

// Options are the collaborators of a Machine. Observer and Logger may be nil.
type Options struct {
	Rules    Rules
	Random   Random
	Catalog  Catalog
	Animator Animator
	Observer Observer
	Logger   *slog.Logger
}

// Machine is the stability state machine. It is not safe for concurrent use;
// all calls come from the game's update loop.
type Machine struct {
	rules    Rules
	rng      Random
	catalog  Catalog
	animator Animator
	observer Observer
	logger   *slog.Logger

	state         State
	branchStarted bool
}

// New creates a machine in its initial state.
func New(opts Options) *Machine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Machine{
		rules:    opts.Rules,
		rng:      opts.Random,
		catalog:  opts.Catalog,
		animator: opts.Animator,
		observer: opts.Observer,
		logger:   logger.With(slog.String("component", "stability")),
		state:    initialState(),
	}

	if want := len(m.rules.Thresholds) + 1; m.catalog.StageCount() < want {
		m.logger.Warn("sprite catalog has fewer stages than stability ordinals; later stages will not be shown",
			slog.Int("stages", m.catalog.StageCount()), slog.Int("ordinals", want))
	}
	return m
}

// State returns a snapshot of the machine's fields.
func (m *Machine) State() State {
	return m.state
}

// Stability returns the current meter value.
func (m *Machine) Stability() float64 {
	return m.state.Stability
}

// Stage returns the current progression stage.
func (m *Machine) Stage() Stage {
	return m.state.Stage
}

// IsGameOver reports whether the terminal state has been reached.
func (m *Machine) IsGameOver() bool {
	return m.state.GameOver
}

// EggBroken reports whether the egg has hatched.
func (m *Machine) EggBroken() bool {
	return m.state.EggBroken
}

// OnEggBreak hatches the egg. Only the first call has any effect.
func (m *Machine) OnEggBreak() {
	if m.state.EggBroken || m.state.GameOver {
		return
	}
	m.state.EggBroken = true
	m.state.Stage = StageBaby
	m.logger.Info("egg broken")
	m.play(m.catalog.EggSequence(), m.finishTransition)
}

// OnClickCountChanged runs one drop trial each time clicks reaches a milestone
// past the last one recorded. Milestones are not counted before the egg hatches.
func (m *Machine) OnClickCountChanged(clicks int64) {
	if m.state.GameOver || !m.state.EggBroken {
		return
	}
	idx := m.rules.Milestones.Index(clicks)
	if idx <= m.state.LastMilestone {
		return
	}
	m.state.LastMilestone = idx
	m.state.FirstMilestoneReached = true
	m.logger.Debug("milestone reached", slog.Int("milestone", idx), slog.Int64("clicks", clicks))
	m.dropTrial("milestone")
}

// OnUpgradePurchased runs a drop trial regardless of milestones.
func (m *Machine) OnUpgradePurchased() {
	m.dropTrial("upgrade")
}

// Reset restores the initial state and shows the egg. Any sequence still
// playing must be cancelled by the caller first.
func (m *Machine) Reset() {
	m.state = initialState()
	m.branchStarted = false
	m.logger.Info("stability reset")
	m.setSprite(m.catalog.Egg())
	m.reportStability()
}

// dropTrial may lower stability and moves the stage to match.
func (m *Machine) dropTrial(reason string) {
	// Stability stays pinned until the egg has hatched and a milestone passed.
	if m.state.GameOver || !m.state.EggBroken || !m.state.FirstMilestoneReached {
		return
	}

	if p := m.rng.Float64(); p > m.rules.DropProbability {
		m.logger.Debug("stability held", slog.String("reason", reason), slog.Float64("draw", p))
		return
	}
	amount := m.rules.MinDrop + m.rng.Float64()*(m.rules.MaxDrop-m.rules.MinDrop)
	m.state.Stability = clamp(m.state.Stability - amount)
	m.logger.Info("stability dropped",
		slog.String("reason", reason),
		slog.Float64("amount", amount),
		slog.Float64("stability", m.state.Stability))
	m.reportStability()

	if m.state.Stability <= 0 {
		m.enterGameOver()
		return
	}

	ordinal := m.rules.Thresholds.Ordinal(m.state.Stability)

	// Branches are sticky: once entered, only game over follows.
	if m.state.Stage.InBranch() {
		return
	}
	switch ordinal {
	case m.rules.BranchAOrdinal:
		if m.rng.Float64() <= m.rules.BranchProbability {
			m.enterBranch(KindBranchA, ordinal)
			return
		}
	case m.rules.BranchBOrdinal:
		if m.rng.Float64() <= m.rules.BranchProbability {
			m.enterBranch(KindBranchB, ordinal)
			return
		}
	}

	if ordinal == m.state.Stage.Ordinal {
		return
	}
	if ordinal < 0 || ordinal >= m.catalog.StageCount() {
		m.logger.Debug("stage ordinal has no sprite", slog.Int("ordinal", ordinal))
		return
	}
	m.state.Stage = Stage{Kind: KindGrowing, Ordinal: ordinal}
	m.logger.Info("stage advanced", slog.String("stage", m.state.Stage.String()))
	m.play(m.catalog.GrowSequence(ordinal), m.finishTransition)
}

func (m *Machine) enterBranch(kind Kind, ordinal int) {
	m.state.Stage = Stage{Kind: kind, Ordinal: ordinal}
	m.logger.Info("special branch entered", slog.String("stage", m.state.Stage.String()))
	m.startBranch()
}

// startBranch plays the branch's terminal sequence. If another sequence is
// still playing, finishTransition starts it once that one completes.
func (m *Machine) startBranch() {
	branch := sprites.BranchA
	if m.state.Stage.Kind == KindBranchB {
		branch = sprites.BranchB
	}
	if err := m.play(m.catalog.BranchSequence(branch), m.enterGameOver); err == nil {
		m.branchStarted = true
	}
}

func (m *Machine) enterGameOver() {
	if m.state.GameOver {
		return
	}
	m.state.GameOver = true
	m.state.Stage = StageGameOver
	if m.animator != nil {
		m.animator.Cancel()
	}
	m.logger.Info("game over", slog.Float64("stability", m.state.Stability))
	m.setSprite(m.catalog.GameOver())
	if m.observer != nil {
		m.observer.ReportGameOver()
	}
}

// finishTransition settles the display once a sequence completes. The static
// sprite shown is that of the current stage, which may have moved on while the
// sequence played.
func (m *Machine) finishTransition() {
	switch {
	case m.state.GameOver:
		m.setSprite(m.catalog.GameOver())
	case m.state.Stage.InBranch():
		if !m.branchStarted {
			m.startBranch()
		}
	default:
		m.showStage()
	}
}

func (m *Machine) showStage() {
	switch m.state.Stage.Kind {
	case KindEgg:
		m.setSprite(m.catalog.Egg())
	case KindGrowing:
		if f, ok := m.catalog.Stage(m.state.Stage.Ordinal); ok {
			m.setSprite(f)
		}
	case KindGameOver:
		m.setSprite(m.catalog.GameOver())
	}
}

// play asks the animator for a sequence. An empty sequence completes at once.
// A busy animator rejects the request; the display catches up when the running
// sequence finishes.
func (m *Machine) play(frames []sprites.Frame, onComplete func()) error {
	if m.animator == nil || len(frames) == 0 {
		onComplete()
		return nil
	}
	_, err := m.animator.Play(transition.Sequence{Frames: frames, FrameDuration: m.rules.FrameDuration}, onComplete)
	if errors.Is(err, transition.ErrBusy) {
		m.logger.Debug("transition rejected, player busy", slog.Int("frames", len(frames)))
	}
	return err
}

func (m *Machine) setSprite(f sprites.Frame) {
	if m.observer != nil {
		m.observer.SetSprite(f)
	}
}

func (m *Machine) reportStability() {
	if m.observer != nil {
		m.observer.ReportStability(m.state.Stability)
	}
}
