package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/hatchling/internal/sprites"
)

const frameDuration = 500 * time.Millisecond

type recorder struct {
	shown []sprites.Frame
}

func (r *recorder) show(f sprites.Frame) {
	r.shown = append(r.shown, f)
}

func newTestPlayer() (*Player, *ManualClock, *recorder) {
	clock := NewManualClock(time.Unix(0, 0))
	rec := &recorder{}
	return NewPlayer(clock, rec.show), clock, rec
}

func seq(frames ...sprites.Frame) Sequence {
	return Sequence{Frames: frames, FrameDuration: frameDuration}
}

func TestPlayShowsFramesInOrder(t *testing.T) {
	p, clock, rec := newTestPlayer()
	completed := 0

	task, err := p.Play(seq("a", "b", "c"), func() { completed++ })
	require.NoError(t, err)
	assert.Equal(t, []sprites.Frame{"a"}, rec.shown)
	assert.True(t, p.Busy())

	// Not enough time yet.
	clock.Advance(frameDuration - time.Millisecond)
	p.Update()
	assert.Equal(t, []sprites.Frame{"a"}, rec.shown)

	clock.Advance(time.Millisecond)
	p.Update()
	assert.Equal(t, sprites.Frame("b"), task.Frame())

	clock.Advance(frameDuration)
	p.Update()
	assert.Equal(t, []sprites.Frame{"a", "b", "c"}, rec.shown)
	assert.Equal(t, 0, completed)

	clock.Advance(frameDuration)
	p.Update()
	assert.Equal(t, 1, completed)
	assert.Equal(t, StateCompleted, task.State())
	assert.True(t, task.Done())
	assert.False(t, p.Busy())
}

func TestLateTicksDoNotSkipFrames(t *testing.T) {
	p, clock, rec := newTestPlayer()
	_, err := p.Play(seq("a", "b", "c"), nil)
	require.NoError(t, err)

	// A long stall covers several frame durations, but each update shows
	// only the next frame.
	clock.Advance(10 * frameDuration)
	p.Update()
	assert.Equal(t, []sprites.Frame{"a", "b"}, rec.shown)

	p.Update()
	assert.Equal(t, []sprites.Frame{"a", "b"}, rec.shown, "delay restarts from when b was shown")

	clock.Advance(frameDuration)
	p.Update()
	assert.Equal(t, []sprites.Frame{"a", "b", "c"}, rec.shown)
}

func TestPlayWhileBusyIsRejected(t *testing.T) {
	p, _, rec := newTestPlayer()
	first, err := p.Play(seq("a", "b"), nil)
	require.NoError(t, err)

	second, err := p.Play(seq("x"), nil)
	assert.ErrorIs(t, err, ErrBusy)
	assert.Nil(t, second)
	assert.Same(t, first, p.Active())
	assert.Equal(t, []sprites.Frame{"a"}, rec.shown)
}

func TestPlayEmptySequence(t *testing.T) {
	p, _, _ := newTestPlayer()
	_, err := p.Play(Sequence{FrameDuration: frameDuration}, nil)
	assert.ErrorIs(t, err, ErrEmptySequence)
	assert.False(t, p.Busy())
}

func TestCancelSuppressesCompletion(t *testing.T) {
	p, clock, _ := newTestPlayer()
	completed := false
	task, err := p.Play(seq("a"), func() { completed = true })
	require.NoError(t, err)

	assert.True(t, p.Cancel())
	assert.Equal(t, StateCancelled, task.State())
	assert.False(t, p.Busy())

	clock.Advance(frameDuration)
	p.Update()
	assert.False(t, completed)
	assert.False(t, p.Cancel())
}

func TestCompletionMayStartNextSequence(t *testing.T) {
	p, clock, rec := newTestPlayer()
	var next *Task
	_, err := p.Play(seq("a"), func() {
		var err error
		next, err = p.Play(seq("b"), nil)
		require.NoError(t, err)
	})
	require.NoError(t, err)

	clock.Advance(frameDuration)
	p.Update()
	require.NotNil(t, next)
	assert.Equal(t, 2, next.ID())
	assert.Equal(t, []sprites.Frame{"a", "b"}, rec.shown)
}
