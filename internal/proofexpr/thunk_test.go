package proofexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlproof/internal/interp"
	"mlproof/internal/pattern"
	"mlproof/internal/proof"
	"mlproof/internal/proofexpr"
)

func TestInvokeRejectsBuildThatLiesAboutItsConclusion(t *testing.T) {
	pf := &proofexpr.ProofThunk{
		Conclusion: pattern.CleanMetaVar(0),
		Build: func(i interp.Interpreter) (proof.Proved, error) {
			return proof.New(pattern.NewSymbol("wrong")), nil
		},
	}
	_, err := pf.Invoke(interp.NewStateful())
	assert.Error(t, err)
}

func TestInvokeSkipsRebuildWhenAlreadyMemoized(t *testing.T) {
	calls := 0
	phi0, phi1 := pattern.CleanMetaVar(0), pattern.CleanMetaVar(1)
	concl := pattern.NewImplies(phi0, pattern.NewImplies(phi1, phi0))
	pf := &proofexpr.ProofThunk{
		Conclusion: concl,
		// Build must leave its Proved on the interpreter stack, where
		// Invoke saves it for reuse.
		Build: func(i interp.Interpreter) (proof.Proved, error) {
			calls++
			return i.Prop1()
		},
	}

	counts := map[string]int{"R:" + pattern.HashKey(concl): 2}
	memoizing := interp.NewMemoizing(interp.NewStateful(), counts)

	_, err := pf.Invoke(memoizing)
	require.NoError(t, err)
	_, err = pf.Invoke(memoizing)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second invoke should reuse the memoized proof, not rebuild it")
}
