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

func TestExecuteFullPublishesAxiomsClaimsAndProofs(t *testing.T) {
	b := proofexpr.NewBuilder("demo")
	b.AddAxiom("refl-schema", pattern.NewImplies(pattern.CleanMetaVar(0), pattern.CleanMetaVar(0)))

	phi0, phi1 := pattern.CleanMetaVar(0), pattern.CleanMetaVar(1)
	pf := &proofexpr.ProofThunk{
		Conclusion: pattern.NewImplies(phi0, pattern.NewImplies(phi1, phi0)),
		Build: func(i interp.Interpreter) (proof.Proved, error) {
			return i.Prop1()
		},
	}
	b.AddClaim(pf)

	s := interp.NewStateful()
	require.NoError(t, b.ExecuteFull(s))
	assert.Equal(t, interp.Proof, s.Phase())
}

func TestLoadAxiomFailsBeforeExecuteFull(t *testing.T) {
	b := proofexpr.NewBuilder("demo")
	ref := b.AddAxiom("a", pattern.NewSymbol("x"))
	_, err := proofexpr.LoadAxiom(ref)(interp.NewStateful())
	assert.Error(t, err)
}

func TestLoadAxiomSucceedsAfterExecuteFull(t *testing.T) {
	b := proofexpr.NewBuilder("demo")
	ref := b.AddAxiom("a", pattern.NewSymbol("x"))

	s := interp.NewStateful()
	require.NoError(t, b.ExecuteFull(s))

	p, err := proofexpr.LoadAxiom(ref)(s)
	require.NoError(t, err)
	assert.True(t, pattern.NewSymbol("x").Equal(p))
}

func TestSubmoduleAxiomsPublishBeforeParentAxioms(t *testing.T) {
	child := proofexpr.NewBuilder("child")
	child.AddAxiom("childAxiom", pattern.NewSymbol("c"))

	parent := proofexpr.NewBuilder("parent")
	parent.AddSubmodule(child)
	parent.AddAxiom("parentAxiom", pattern.NewSymbol("p"))

	s := interp.NewStateful()
	require.NoError(t, parent.ExecuteFull(s))
	assert.Equal(t, interp.Proof, s.Phase())

	// Each axiom is saved as it is published, so memory order is
	// publication order.
	require.Len(t, s.Memory(), 2)
	first, ok := interp.AsPattern(s.Memory()[0])
	require.True(t, ok)
	assert.True(t, pattern.NewSymbol("c").Equal(first))
}
