// Package transition plays timed frame sequences between creature stages.
//
// Playback is cooperative: the game calls Player.Update once per tick and the
// player advances at most one frame per call, once FrameDuration of clock time
// has passed since the current frame was shown. Frames therefore appear in
// order and none are skipped when ticks arrive late.
package transition

import (
	"errors"
	"time"

	"chosenoffset.com/hatchling/internal/sprites"
)

var (
	// ErrBusy is returned when a sequence is requested while another plays.
	ErrBusy = errors.New("transition already playing")
	// ErrEmptySequence is returned for a sequence with no frames.
	ErrEmptySequence = errors.New("sequence has no frames")
)

// State is the lifecycle state of a Task.
type State int

const (
	StateRunning State = iota
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Sequence is an ordered run of frames shown for FrameDuration each.
type Sequence struct {
	Frames        []sprites.Frame
	FrameDuration time.Duration
}

// Task is the handle of one playback.
type Task struct {
	id         int
	player     *Player
	seq        Sequence
	index      int
	shownAt    time.Time
	state      State
	onComplete func()
}

// ID identifies the task within its player.
func (t *Task) ID() int {
	return t.id
}

// State returns the task's lifecycle state.
func (t *Task) State() State {
	return t.state
}

// Done reports whether the task has completed or been cancelled.
func (t *Task) Done() bool {
	return t.state != StateRunning
}

// Frame returns the frame currently on display.
func (t *Task) Frame() sprites.Frame {
	if t.index >= len(t.seq.Frames) {
		return t.seq.Frames[len(t.seq.Frames)-1]
	}
	return t.seq.Frames[t.index]
}

// Cancel stops the task. The completion callback is not invoked.
func (t *Task) Cancel() {
	if t.state != StateRunning {
		return
	}
	t.state = StateCancelled
	if t.player != nil && t.player.active == t {
		t.player.active = nil
	}
}

// Player runs at most one Sequence at a time.
type Player struct {
	clock  Clock
	show   func(sprites.Frame)
	active *Task
	nextID int
}

// NewPlayer creates a player that reads time from clock and displays frames
// through show.
func NewPlayer(clock Clock, show func(sprites.Frame)) *Player {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Player{clock: clock, show: show}
}

// Busy reports whether a sequence is in flight.
func (p *Player) Busy() bool {
	return p.active != nil
}

// Active returns the in-flight task, or nil.
func (p *Player) Active() *Task {
	return p.active
}

// Play starts a sequence and shows its first frame. onComplete runs after the
// last frame has been on display for FrameDuration. A request made while
// another sequence plays is rejected with ErrBusy and changes nothing.
func (p *Player) Play(seq Sequence, onComplete func()) (*Task, error) {
	if p.active != nil {
		return nil, ErrBusy
	}
	if len(seq.Frames) == 0 {
		return nil, ErrEmptySequence
	}

	p.nextID++
	t := &Task{
		id:         p.nextID,
		player:     p,
		seq:        seq,
		shownAt:    p.clock.Now(),
		onComplete: onComplete,
	}
	p.active = t
	p.display(seq.Frames[0])
	return t, nil
}

// Update advances the in-flight sequence by at most one frame.
func (p *Player) Update() {
	t := p.active
	if t == nil {
		return
	}
	now := p.clock.Now()
	if now.Sub(t.shownAt) < t.seq.FrameDuration {
		return
	}

	t.index++
	if t.index < len(t.seq.Frames) {
		t.shownAt = now
		p.display(t.seq.Frames[t.index])
		return
	}

	// Clear before the callback so it may start the next sequence.
	t.state = StateCompleted
	p.active = nil
	if t.onComplete != nil {
		t.onComplete()
	}
}

// Cancel stops the in-flight sequence, if any, and reports whether one was
// running.
func (p *Player) Cancel() bool {
	if p.active == nil {
		return false
	}
	p.active.Cancel()
	return true
}

func (p *Player) display(f sprites.Frame) {
	if p.show != nil {
		p.show(f)
	}
}
