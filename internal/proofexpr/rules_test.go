package proofexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlproof/internal/interp"
	"mlproof/internal/pattern"
	"mlproof/internal/proofexpr"
)

func TestModusPonensRejectsShapeMismatchBeforeBuild(t *testing.T) {
	major := proofexpr.Prop1() // phi0 -> (phi1 -> phi0)
	minor := proofexpr.Prop2() // not equal to phi0
	_, err := proofexpr.ModusPonens(major, minor)
	assert.Error(t, err)
}

func TestInstantiateIsFreshAndNeverTouchesMemo(t *testing.T) {
	pf := proofexpr.Instantiate(proofexpr.Prop1(), []proofexpr.Subst{
		{ID: 0, Plug: pattern.NewSymbol("a")},
		{ID: 1, Plug: pattern.NewSymbol("b")},
	})
	want := pattern.NewImplies(pattern.NewSymbol("a"), pattern.NewImplies(pattern.NewSymbol("b"), pattern.NewSymbol("a")))
	assert.True(t, want.Equal(pf.Conclusion))

	s := interp.NewStateful()
	pv, err := pf.Invoke(s)
	require.NoError(t, err)
	assert.True(t, want.Equal(pv.Conclusion()))

	counts := map[string]int{"P:" + pattern.HashKey(pattern.NewSymbol("a")): 2}
	memoizing := interp.NewMemoizing(interp.NewStateful(), counts)
	_, err = pf.Invoke(memoizing)
	require.NoError(t, err)
	assert.Equal(t, 0, memoizing.SavedCount(), "a reusable plug is still built fresh, never saved")
}

func TestDynamicInstReusesSavedPlugsUnderMemoization(t *testing.T) {
	shared := pattern.NewImplies(pattern.CleanMetaVar(0), pattern.CleanMetaVar(0))
	a := proofexpr.DynamicInst(proofexpr.Prop1(), []proofexpr.Subst{
		{ID: 0, Plug: shared},
		{ID: 1, Plug: pattern.CleanMetaVar(0)},
	})
	b := proofexpr.DynamicInst(proofexpr.Prop1(), []proofexpr.Subst{
		{ID: 0, Plug: shared},
		{ID: 1, Plug: pattern.CleanMetaVar(0)},
	})

	counting := interp.NewCounting()
	_, err := a.Invoke(counting)
	require.NoError(t, err)
	_, err = b.Invoke(counting)
	require.NoError(t, err)

	memoizing := interp.NewMemoizing(interp.NewStateful(), counting.Counts())
	_, err = a.Invoke(memoizing)
	require.NoError(t, err)
	savedAfterFirst := memoizing.SavedCount()
	_, err = b.Invoke(memoizing)
	require.NoError(t, err)
	assert.Equal(t, savedAfterFirst, memoizing.SavedCount(), "second invocation should reuse, not grow the save table")
}

func TestExistsGeneralizationRejectsFreeOccurrence(t *testing.T) {
	// pf: phi0 -> x0 (x0 occurs free in the consequent)
	pf := &proofexpr.ProofThunk{
		Conclusion: pattern.NewImplies(pattern.CleanMetaVar(0), pattern.NewEVar(0)),
		Build:      nil,
	}
	_, err := proofexpr.ExistsGeneralization(pf, 0)
	assert.Error(t, err)
}
