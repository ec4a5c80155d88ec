package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlproof/internal/interp"
	"mlproof/internal/pattern"
)

func TestEmitPatternBuildsEquivalentPattern(t *testing.T) {
	s := interp.NewStateful()
	src := pattern.NewImplies(pattern.NewEVar(0), pattern.NewApp(pattern.NewSymbol("a"), pattern.NewSymbol("b")))
	got, err := interp.EmitPattern(s, src)
	require.NoError(t, err)
	assert.True(t, src.Equal(got))
	assert.Equal(t, 1, len(s.Stack()))
}

func TestEmitPatternFreshNeverConsultsMemoTable(t *testing.T) {
	shared := pattern.NewSymbol("shared")
	counts := map[string]int{"P:" + pattern.HashKey(shared): 2}
	memoizing := interp.NewMemoizing(interp.NewStateful(), counts)

	_, err := interp.EmitPatternFresh(memoizing, shared)
	require.NoError(t, err)
	assert.Equal(t, 0, memoizing.SavedCount())

	_, err = interp.EmitPattern(memoizing, shared)
	require.NoError(t, err)
	assert.Equal(t, 1, memoizing.SavedCount())
}

func TestEmitPatternReusesSecondOccurrence(t *testing.T) {
	shared := pattern.NewSymbol("shared")
	counts := map[string]int{"P:" + pattern.HashKey(shared): 2}
	memoizing := interp.NewMemoizing(interp.NewStateful(), counts)

	first, err := interp.EmitPattern(memoizing, shared)
	require.NoError(t, err)
	stackAfterFirst := len(memoizing.Stack())

	second, err := interp.EmitPattern(memoizing, shared)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.Equal(t, 1, memoizing.SavedCount(), "only one Save for two occurrences of the same shape")
	assert.Equal(t, stackAfterFirst+1, len(memoizing.Stack()), "reuse still pushes exactly one item via Load")
}
