// Package sprites names every frame the creature can display and builds the
// frame sequences played between stages. Frames are opaque names; the render
// layer resolves them to images.
package sprites

import "fmt"

// Frame identifies a single displayable image.
type Frame string

// Fixed frames.
const (
	FrameEgg      Frame = "egg"
	FrameGameOver Frame = "game_over"
)

// Branch identifies one of the alternate endings.
type Branch int

const (
	BranchA Branch = iota
	BranchB
)

// String returns the branch's frame prefix.
func (b Branch) String() string {
	switch b {
	case BranchA:
		return "branch_a"
	case BranchB:
		return "branch_b"
	default:
		return fmt.Sprintf("branch_%d", int(b))
	}
}

// Layout describes how many frames each sequence has.
type Layout struct {
	EggFrames    int
	StageCount   int
	GrowFrames   int
	BranchFrames int
}

// Book is the catalog of frames for one creature.
type Book struct {
	layout Layout
}

// NewBook creates a catalog with the given layout. Negative counts are treated
// as zero.
func NewBook(layout Layout) *Book {
	layout.EggFrames = max(layout.EggFrames, 0)
	layout.StageCount = max(layout.StageCount, 0)
	layout.GrowFrames = max(layout.GrowFrames, 0)
	layout.BranchFrames = max(layout.BranchFrames, 0)
	return &Book{layout: layout}
}

// Egg returns the unhatched egg frame.
func (b *Book) Egg() Frame {
	return FrameEgg
}

// GameOver returns the terminal frame.
func (b *Book) GameOver() Frame {
	return FrameGameOver
}

// StageCount returns the number of growth stages that have a static sprite.
func (b *Book) StageCount() int {
	return b.layout.StageCount
}

// Stage returns the static sprite for a growth ordinal.
func (b *Book) Stage(ordinal int) (Frame, bool) {
	if ordinal < 0 || ordinal >= b.layout.StageCount {
		return "", false
	}
	return Frame(fmt.Sprintf("stage_%d", ordinal)), true
}

// EggSequence returns the hatching frames.
func (b *Book) EggSequence() []Frame {
	return numbered("egg_open", b.layout.EggFrames)
}

// GrowSequence returns the frames played when entering a growth ordinal.
func (b *Book) GrowSequence(ordinal int) []Frame {
	if ordinal < 0 || ordinal >= b.layout.StageCount {
		return nil
	}
	return numbered(fmt.Sprintf("stage_%d_grow", ordinal), b.layout.GrowFrames)
}

// BranchSequence returns the terminal frames of an alternate ending.
func (b *Book) BranchSequence(branch Branch) []Frame {
	return numbered(branch.String(), b.layout.BranchFrames)
}

// All lists every frame in the catalog, fixed frames first.
func (b *Book) All() []Frame {
	frames := []Frame{FrameEgg, FrameGameOver}
	frames = append(frames, b.EggSequence()...)
	for i := 0; i < b.layout.StageCount; i++ {
		f, _ := b.Stage(i)
		frames = append(frames, f)
		frames = append(frames, b.GrowSequence(i)...)
	}
	frames = append(frames, b.BranchSequence(BranchA)...)
	frames = append(frames, b.BranchSequence(BranchB)...)
	return frames
}

func numbered(prefix string, n int) []Frame {
	frames := make([]Frame, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, Frame(fmt.Sprintf("%s_%d", prefix, i)))
	}
	return frames
}
