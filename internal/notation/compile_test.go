package notation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlproof/internal/notation"
	"mlproof/internal/pattern"
)

func TestCompileSymbol(t *testing.T) {
	n, err := notation.Compile(`notation bot = bottom`)
	require.NoError(t, err)
	assert.Equal(t, "bot", n.Name)
	assert.Equal(t, pattern.NewSymbol("bottom"), n.Shape)
}

func TestCompileMetaVarChain(t *testing.T) {
	n, err := notation.Compile(`notation imp = %0 -> %1`)
	require.NoError(t, err)
	assert.Equal(t, "imp", n.Name)
	want := pattern.NewImplies(pattern.CleanMetaVar(0), pattern.CleanMetaVar(1))
	assert.True(t, want.Equal(n.Shape))
}

func TestCompileRightAssociates(t *testing.T) {
	n, err := notation.Compile(`notation chain = %0 -> %1 -> %2`)
	require.NoError(t, err)
	want := pattern.NewImplies(pattern.CleanMetaVar(0), pattern.NewImplies(pattern.CleanMetaVar(1), pattern.CleanMetaVar(2)))
	assert.True(t, want.Equal(n.Shape))
}

func TestCompileGrouping(t *testing.T) {
	n, err := notation.Compile(`notation grouped = (%0 -> %1) -> %2`)
	require.NoError(t, err)
	want := pattern.NewImplies(pattern.NewImplies(pattern.CleanMetaVar(0), pattern.CleanMetaVar(1)), pattern.CleanMetaVar(2))
	assert.True(t, want.Equal(n.Shape))
}

func TestCompileUsableInPrettyOptions(t *testing.T) {
	n, err := notation.Compile(`notation refl = %0 -> %0`)
	require.NoError(t, err)
	opts := &pattern.PrettyOptions{UseNotation: true, Notations: []*pattern.Notation{n}}
	p := pattern.NewImplies(pattern.CleanMetaVar(0), pattern.CleanMetaVar(0))
	assert.Equal(t, "refl", p.Pretty(opts))
}

func TestCompileRejectsMalformed(t *testing.T) {
	_, err := notation.Compile(`notation broken = -> `)
	assert.Error(t, err)
}
