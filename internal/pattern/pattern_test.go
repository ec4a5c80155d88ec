package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlproof/internal/pattern"
)

func TestEqualityIsStructuralNotIdentity(t *testing.T) {
	a := pattern.NewImplies(pattern.NewEVar(0), pattern.NewSymbol("top"))
	b := pattern.NewImplies(pattern.NewEVar(0), pattern.NewSymbol("top"))
	assert.NotSame(t, a, b)
	assert.True(t, a.Equal(b))

	c := pattern.NewImplies(pattern.NewEVar(1), pattern.NewSymbol("top"))
	assert.False(t, a.Equal(c))
}

func TestMetaVarEqualityComparesSideConditionsAsSets(t *testing.T) {
	a := pattern.NewMetaVar(0, []uint32{1, 2}, nil, nil, nil, nil)
	b := pattern.NewMetaVar(0, []uint32{2, 1, 2}, nil, nil, nil, nil)
	assert.True(t, a.Equal(b))
}

func TestNewMuRejectsNegativeOccurrence(t *testing.T) {
	// mu X . (X -> bot) : X occurs negatively, must be rejected.
	body := pattern.NewImplies(pattern.NewSVar(0), pattern.NewSymbol("bot"))
	_, err := pattern.NewMu(0, body)
	assert.Error(t, err)
}

func TestNewMuAcceptsPositiveOccurrence(t *testing.T) {
	// mu X . (phi[negative={X}] -> X): the metavariable's own negative side
	// condition flips to positive across the implication, so X occurs only
	// positively in the whole body.
	phi := pattern.NewMetaVar(1, nil, nil, nil, []uint32{0}, nil)
	body := pattern.NewImplies(phi, pattern.NewSVar(0))
	m, err := pattern.NewMu(0, body)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), m.Var)
}

func TestNewMuAcceptsBareSelfReference(t *testing.T) {
	m, err := pattern.NewMu(0, pattern.NewSVar(0))
	require.NoError(t, err)
	assert.Equal(t, uint32(0), m.Var)
}

func TestInstantiateLeavesUnmatchedMetaVarsUntouched(t *testing.T) {
	p := pattern.NewImplies(pattern.CleanMetaVar(0), pattern.CleanMetaVar(1))
	got := p.Instantiate(map[uint32]pattern.Pattern{0: pattern.NewSymbol("x")})
	want := pattern.NewImplies(pattern.NewSymbol("x"), pattern.CleanMetaVar(1))
	assert.True(t, want.Equal(got))
}

func TestInstantiateResolvesDeferredESubst(t *testing.T) {
	// (x0 -> x1)[sym/x0], instantiated with no metavariables left, should
	// resolve to (sym -> x1) rather than staying wrapped in ESubst.
	body := pattern.NewImplies(pattern.NewEVar(0), pattern.NewEVar(1))
	es := pattern.NewESubst(body, 0, pattern.NewSymbol("sym"))
	got := es.Instantiate(nil)
	want := pattern.NewImplies(pattern.NewSymbol("sym"), pattern.NewEVar(1))
	assert.True(t, want.Equal(got))
}

func TestInstantiateDefersESubstWhileStillSchematic(t *testing.T) {
	es := pattern.NewESubst(pattern.CleanMetaVar(0), 0, pattern.NewSymbol("sym"))
	got := es.Instantiate(nil)
	_, stillESubst := got.(*pattern.ESubst)
	assert.True(t, stillESubst)
}

func TestHashKeyAgreesWithEqual(t *testing.T) {
	a := pattern.NewImplies(pattern.NewEVar(0), pattern.NewSymbol("top"))
	b := pattern.NewImplies(pattern.NewEVar(0), pattern.NewSymbol("top"))
	c := pattern.NewApp(pattern.NewEVar(0), pattern.NewSymbol("top"))

	assert.Equal(t, pattern.HashKey(a), pattern.HashKey(b))
	assert.NotEqual(t, pattern.HashKey(a), pattern.HashKey(c))
}

func TestContainsFreeEVarRespectsExistsBinding(t *testing.T) {
	p := pattern.NewExists(0, pattern.NewEVar(0))
	assert.False(t, pattern.ContainsFreeEVar(p, 0))

	q := pattern.NewExists(1, pattern.NewEVar(0))
	assert.True(t, pattern.ContainsFreeEVar(q, 0))
}

func TestIsApplicationContextRequiresExactlyOneHole(t *testing.T) {
	ctx := pattern.NewApp(pattern.NewEVar(0), pattern.NewSymbol("c"))
	assert.True(t, pattern.IsApplicationContext(ctx, 0))

	twoHoles := pattern.NewApp(pattern.NewEVar(0), pattern.NewEVar(0))
	assert.False(t, pattern.IsApplicationContext(twoHoles, 0))

	noHoles := pattern.NewApp(pattern.NewSymbol("a"), pattern.NewSymbol("b"))
	assert.False(t, pattern.IsApplicationContext(noHoles, 0))
}

func TestPrettyUsesNotationWhenEnabled(t *testing.T) {
	shape := pattern.NewImplies(pattern.CleanMetaVar(0), pattern.NewSymbol("bot"))
	opts := &pattern.PrettyOptions{
		UseNotation: true,
		Notations:   []*pattern.Notation{{Name: "neg", Shape: shape}},
	}
	assert.Equal(t, "neg", shape.Pretty(opts))
	assert.Contains(t, shape.Pretty(nil), "->")
}
