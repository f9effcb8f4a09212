package sprites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookSequences(t *testing.T) {
	book := NewBook(Layout{EggFrames: 3, StageCount: 6, GrowFrames: 2, BranchFrames: 4})

	assert.Equal(t, []Frame{"egg_open_0", "egg_open_1", "egg_open_2"}, book.EggSequence())
	assert.Equal(t, []Frame{"stage_2_grow_0", "stage_2_grow_1"}, book.GrowSequence(2))
	assert.Len(t, book.BranchSequence(BranchA), 4)
	assert.Equal(t, Frame("branch_b_0"), book.BranchSequence(BranchB)[0])

	f, ok := book.Stage(5)
	require.True(t, ok)
	assert.Equal(t, Frame("stage_5"), f)
}

func TestBookOutOfRange(t *testing.T) {
	book := NewBook(Layout{StageCount: 2, GrowFrames: 1})

	_, ok := book.Stage(2)
	assert.False(t, ok)
	_, ok = book.Stage(-1)
	assert.False(t, ok)
	assert.Nil(t, book.GrowSequence(7))
}

func TestBookAllIsUnique(t *testing.T) {
	book := NewBook(Layout{EggFrames: 2, StageCount: 3, GrowFrames: 2, BranchFrames: 2})

	seen := make(map[Frame]bool)
	for _, f := range book.All() {
		assert.False(t, seen[f], "duplicate frame %s", f)
		seen[f] = true
	}
	// 2 fixed + 2 egg + 3*(1+2) stage + 2*2 branch
	assert.Len(t, seen, 2+2+9+4)
}

func TestNewBookClampsNegativeCounts(t *testing.T) {
	book := NewBook(Layout{EggFrames: -1, StageCount: -3})
	assert.Empty(t, book.EggSequence())
	assert.Equal(t, 0, book.StageCount())
}
