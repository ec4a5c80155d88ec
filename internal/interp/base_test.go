package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlproof/internal/diag"
	"mlproof/internal/interp"
	"mlproof/internal/pattern"
)

func TestPhasesAreMonotone(t *testing.T) {
	s := interp.NewStateful()
	assert.Equal(t, interp.Gamma, s.Phase())

	require.NoError(t, s.IntoClaimPhase())
	assert.Equal(t, interp.Claim, s.Phase())

	require.NoError(t, s.IntoProofPhase())
	assert.Equal(t, interp.Proof, s.Phase())

	err := s.IntoClaimPhase()
	require.Error(t, err)
	assertCode(t, err, diag.PhaseViolation)
}

func TestImpliesPopsTwoPushesOne(t *testing.T) {
	s := interp.NewStateful()
	_, err := s.EVar(0)
	require.NoError(t, err)
	_, err = s.Symbol("top")
	require.NoError(t, err)
	p, err := s.Implies()
	require.NoError(t, err)
	assert.Equal(t, 1, len(s.Stack()))
	want := pattern.NewImplies(pattern.NewEVar(0), pattern.NewSymbol("top"))
	assert.True(t, want.Equal(p))
}

// TestPopAfterProp1 exercises spec scenario S4: pushing an axiom schema
// (Prop1) and immediately popping it must succeed and leave an empty stack.
func TestPopAfterProp1(t *testing.T) {
	s := interp.NewStateful()
	_, err := s.Prop1()
	require.NoError(t, err)
	require.NoError(t, s.Pop())
	assert.Empty(t, s.Stack())
}

func TestModusPonensRejectsAntecedentMismatch(t *testing.T) {
	s := interp.NewStateful()
	_, err := s.Prop1() // major: phi0 -> (phi1 -> phi0), pushed first
	require.NoError(t, err)
	_, err = s.Prop1() // minor, pushed last (popped first)
	require.NoError(t, err)
	// The major's antecedent phi0 is not equal to the minor's conclusion.
	_, err = s.ModusPonens()
	assert.Error(t, err)
}

// TestInstantiateSubstitutesInOrderOfAppearance exercises spec scenarios
// S1-S3: Instantiate pops its target first (it must be topmost), then the
// plugs in pop order, binding the first-popped plug to ids[0].
func TestInstantiateSubstitutesInOrderOfAppearance(t *testing.T) {
	s := interp.NewStateful()
	// Push plugs first (bottom of what will remain), target last (top).
	_, err := s.Symbol("b") // will be popped second, bound to id 0
	require.NoError(t, err)
	_, err = s.Symbol("a") // will be popped first, bound to id 1
	require.NoError(t, err)
	_, err = s.CleanMetaVar(0)
	require.NoError(t, err)
	_, err = s.CleanMetaVar(1)
	require.NoError(t, err)
	_, err = s.Implies() // target: phi0 -> phi1, now on top
	require.NoError(t, err)

	item, err := s.Instantiate([]uint32{1, 0})
	require.NoError(t, err)
	p, ok := interp.AsPattern(item)
	require.True(t, ok)
	want := pattern.NewImplies(pattern.NewSymbol("b"), pattern.NewSymbol("a"))
	assert.True(t, want.Equal(p))
}

func TestInstantiateRejectsFreshnessViolation(t *testing.T) {
	s := interp.NewStateful()
	_, err := s.EVar(7)
	require.NoError(t, err)
	_, err = s.MetaVar(0, []uint32{7}, nil, nil, nil, nil)
	require.NoError(t, err)
	_, err = s.Instantiate([]uint32{0})
	assert.Error(t, err)
	assertCode(t, err, diag.MetaObligationViolation)
}

// TestClaimMismatchAborts exercises spec scenario S6: publishing a proof
// whose conclusion doesn't match the next expected claim is rejected and
// the claim stack is left untouched.
func TestClaimMismatchAborts(t *testing.T) {
	s := interp.NewStateful()
	_, err := s.CleanMetaVar(0)
	require.NoError(t, err)
	_, err = s.CleanMetaVar(0)
	require.NoError(t, err)
	_, err = s.Implies() // phi0 -> phi0, the expected claim
	require.NoError(t, err)
	require.NoError(t, s.IntoClaimPhase())
	require.NoError(t, s.PublishClaim())
	require.NoError(t, s.IntoProofPhase())

	_, err = s.Prop1() // wrong conclusion: phi0 -> (phi1 -> phi0)
	require.NoError(t, err)
	err = s.PublishProof()
	require.Error(t, err)
	assertCode(t, err, diag.ClaimMismatch)
}

func assertCode(t *testing.T, err error, code diag.Code) {
	t.Helper()
	de, ok := err.(*diag.Error)
	require.True(t, ok, "expected a *diag.Error, got %T", err)
	assert.Equal(t, code, de.Code)
}
