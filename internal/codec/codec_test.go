package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlproof/internal/codec"
)

func TestOpcodeEnumerationOrderIsFixed(t *testing.T) {
	// This exact enumeration order is pinned; the numeric values are
	// part of the wire contract shared by every serializer/decoder pair.
	want := []codec.Opcode{
		codec.OpEVar, codec.OpSVar, codec.OpSymbol, codec.OpImplies, codec.OpApp,
		codec.OpExists, codec.OpMu, codec.OpMetaVar, codec.OpESubst, codec.OpSSubst,
		codec.OpProp1, codec.OpProp2, codec.OpProp3, codec.OpModusPonens,
		codec.OpQuantifier, codec.OpGeneralization, codec.OpInstantiate, codec.OpPop,
		codec.OpSave, codec.OpLoad, codec.OpPublish, codec.OpVersion, codec.OpCleanMetaVar,
	}
	for i, op := range want {
		assert.Equal(t, byte(i), byte(op), "opcode %s has unexpected numeric value", op)
	}
}

func TestSymbolTableInternIsStable(t *testing.T) {
	table := codec.NewSymbolTable()
	id1, err := table.Intern("foo")
	require.NoError(t, err)
	id2, err := table.Intern("foo")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	name, ok := table.Name(id1)
	require.True(t, ok)
	assert.Equal(t, "foo", name)
}

func TestSymbolTableRejectsOverflow(t *testing.T) {
	table := codec.NewSymbolTable()
	for i := 0; i < 256; i++ {
		_, err := table.Intern(string(rune('a')) + itoa(i))
		require.NoError(t, err)
	}
	_, err := table.Intern("one-too-many")
	assert.Error(t, err)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
