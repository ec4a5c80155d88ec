package propositional_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlproof/internal/codec"
	"mlproof/internal/interp"
	"mlproof/internal/pattern"
	"mlproof/internal/proofexpr"
	"mlproof/internal/proofs/propositional"
)

func TestImpReflexivityProvesPhiImpliesPhi(t *testing.T) {
	pf, err := propositional.ImpReflexivity()
	require.NoError(t, err)

	phi0 := pattern.CleanMetaVar(0)
	want := pattern.NewImplies(phi0, phi0)
	assert.True(t, want.Equal(pf.Conclusion))

	pv, err := pf.Invoke(interp.NewStateful())
	require.NoError(t, err)
	assert.True(t, want.Equal(pv.Conclusion()))
}

// TestImpReflexivityEmitsCleanMetaVarNotMetaVar pins the claim-sink byte
// sequence for publishing phi0 -> phi0: two CleanMetaVar ops (never bare
// MetaVar with empty side-condition lists) followed by Implies and Publish.
func TestImpReflexivityEmitsCleanMetaVarNotMetaVar(t *testing.T) {
	pf, err := propositional.ImpReflexivity()
	require.NoError(t, err)

	b := proofexpr.NewBuilder("demo")
	b.AddClaim(pf)

	var gamma, claim, proofStream bytes.Buffer
	table := codec.NewSymbolTable()
	serializer, err := interp.NewSerializing(&gamma, &claim, &proofStream, table)
	require.NoError(t, err)
	require.NoError(t, b.ExecuteFull(serializer))

	want := []byte{
		byte(codec.OpVersion), codec.Version,
		byte(codec.OpCleanMetaVar), 0,
		byte(codec.OpCleanMetaVar), 0,
		byte(codec.OpImplies),
		byte(codec.OpPublish),
	}
	assert.Equal(t, want, claim.Bytes())
}

func TestImpTransitivityProvesTheChainLemma(t *testing.T) {
	pf, err := propositional.ImpTransitivity()
	require.NoError(t, err)

	phi0, phi1, phi2 := pattern.CleanMetaVar(0), pattern.CleanMetaVar(1), pattern.CleanMetaVar(2)
	want := pattern.NewImplies(
		pattern.NewImplies(phi1, phi2),
		pattern.NewImplies(pattern.NewImplies(phi0, phi1), pattern.NewImplies(phi0, phi2)),
	)
	assert.True(t, want.Equal(pf.Conclusion))

	pv, err := pf.Invoke(interp.NewStateful())
	require.NoError(t, err)
	assert.True(t, want.Equal(pv.Conclusion()))
}
