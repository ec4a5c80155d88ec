package proofreg_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlproof/internal/codec"
	"mlproof/internal/interp"
	"mlproof/internal/proofreg"
)

func TestLookupUnknownModule(t *testing.T) {
	_, err := proofreg.Lookup("nonexistent")
	assert.Error(t, err)
}

func TestNamesIncludesPropositional(t *testing.T) {
	assert.Contains(t, proofreg.Names(), "propositional")
}

// TestPropositionalRoundTripsThroughTheBinaryCodec exercises the
// serialize/deserialize round trip end to end: the
// propositional module's full gamma/claim/proof run, encoded by
// SerializingInterpreter, must replay cleanly against a fresh interpreter
// through Decoder, with every claim matching its proof exactly as it did
// the first time.
func TestPropositionalRoundTripsThroughTheBinaryCodec(t *testing.T) {
	ctor, err := proofreg.Lookup("propositional")
	require.NoError(t, err)
	builder, err := ctor()
	require.NoError(t, err)

	var gamma, claim, proofStream bytes.Buffer
	table := codec.NewSymbolTable()
	serializer, err := interp.NewSerializing(&gamma, &claim, &proofStream, table)
	require.NoError(t, err)

	require.NoError(t, builder.ExecuteFull(serializer))
	assert.Empty(t, serializer.Warnings())
	assert.NotZero(t, gamma.Len())
	assert.NotZero(t, claim.Len())
	assert.NotZero(t, proofStream.Len())

	replay := interp.NewStateful()
	decoder := interp.NewDecoder(table)
	err = decoder.DecodeAll(replay,
		bytes.NewReader(gamma.Bytes()),
		bytes.NewReader(claim.Bytes()),
		bytes.NewReader(proofStream.Bytes()),
	)
	require.NoError(t, err)
	assert.Equal(t, interp.Proof, replay.Phase())
}

// TestOptimizedRunProducesFewerBytes checks that a memoizing pass over a
// module with repeated pattern shapes shrinks the unoptimized wire size,
// since reused shapes load from memory instead of being rebuilt
// byte-for-byte.
func TestOptimizedRunProducesFewerBytes(t *testing.T) {
	ctor, err := proofreg.Lookup("propositional")
	require.NoError(t, err)

	plain, err := runSerialized(t, ctor, false)
	require.NoError(t, err)
	optimized, err := runSerialized(t, ctor, true)
	require.NoError(t, err)

	assert.Less(t, optimized, plain)
}

func runSerialized(t *testing.T, ctor proofreg.Constructor, optimize bool) (int, error) {
	t.Helper()
	builder, err := ctor()
	require.NoError(t, err)

	var gamma, claim, proofStream bytes.Buffer
	table := codec.NewSymbolTable()
	serializer, err := interp.NewSerializing(&gamma, &claim, &proofStream, table)
	require.NoError(t, err)

	var target interp.Interpreter = serializer
	if optimize {
		countBuilder, err := ctor()
		require.NoError(t, err)
		counting := interp.NewCounting()
		require.NoError(t, countBuilder.ExecuteFull(counting))
		target = interp.NewMemoizing(serializer, counting.Counts())
	}

	if err := builder.ExecuteFull(target); err != nil {
		return 0, err
	}
	return gamma.Len() + claim.Len() + proofStream.Len(), nil
}
