package chainkey

import (
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustKey(t *testing.T, s string) Key {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.Nil(t, err)
	require.Len(t, b, KeySize)
	var k Key
	copy(k[:], b)
	return k
}

func TestExpandChainKey_ZeroKey(t *testing.T) {
	// Arrange.
	var ck, mk Key

	// Act.
	expandChainKey(&ck, &mk)

	// Assert.
	require.Equal(t, mustKey(t, "3d7afb663124ecbf2c953f863d4fc8796eeb2d372b64aad58697ec5264649cdb"), mk)
	require.Equal(t, Key{}, ck)
}

func TestAdvanceChainKey_ZeroKey(t *testing.T) {
	// Arrange.
	var ck, next Key

	// Act.
	advanceChainKey(&ck, &next)

	// Assert.
	require.Equal(t, mustKey(t, "4ee7be0c7872360ca67414608081e9bd60fd580a7bbd209701d2a5a0b4316d0d"), next)
}

func TestAdvanceChainKey_InPlace(t *testing.T) {
	// Arrange.
	var (
		ck   Key
		want Key
	)
	advanceChainKey(&ck, &want)

	// Act.
	advanceChainKey(&ck, &ck)

	// Assert.
	require.Equal(t, want, ck)
}

func TestChainKdf_DomainSeparation(t *testing.T) {
	// Arrange.
	var (
		r    = rand.New(rand.NewSource(23))
		seen = make(map[Key]bool)
	)

	for i := 0; i < 1000; i++ {
		var ck, mk, next Key
		_, err := r.Read(ck[:])
		require.Nil(t, err)

		// Act.
		expandChainKey(&ck, &mk)
		advanceChainKey(&ck, &next)

		// Assert.
		require.NotEqual(t, mk, next)
		require.NotEqual(t, ck, mk)
		require.NotEqual(t, ck, next)
		require.False(t, seen[mk], "message key repeated for seed %x", ck[:])
		require.False(t, seen[next], "chain key repeated for seed %x", ck[:])

		// Preserve.
		seen[mk] = true
		seen[next] = true
	}
}

func TestChainKdf_Deterministic(t *testing.T) {
	// Arrange.
	ck := Key{0xeb, 0x8, 0x10, 0x7c, 0x33, 0x54, 0x0, 0x20, 0xe9, 0x4f, 0x6c, 0x84, 0xe4, 0x39, 0x50, 0x5a, 0x2f, 0x60, 0xbe, 0x81, 0xa, 0x78, 0x8b, 0xeb, 0x1e, 0x2c, 0x9, 0x8d, 0x4b, 0x4d, 0xc1, 0x40}

	// Act.
	var mk1, mk2, next1, next2 Key
	expandChainKey(&ck, &mk1)
	expandChainKey(&ck, &mk2)
	advanceChainKey(&ck, &next1)
	advanceChainKey(&ck, &next2)

	// Assert.
	require.Equal(t, mk1, mk2)
	require.Equal(t, next1, next2)
	require.NotEqual(t, Key{}, mk1)
	require.NotEqual(t, Key{}, next1)
}
