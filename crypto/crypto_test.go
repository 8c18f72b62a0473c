// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/starknet/felt"
)

func TestPedersenVectors(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{
			"zero_zero",
			"0x0",
			"0x0",
			"0x49ee3eba8c1600700ee1b87eb599f16716b0b1022947733551fde4050ca6804",
		},
		{
			"one_two",
			"0x1",
			"0x2",
			"0x5bb9440e27889a364bcb678b1f679ecd1347acdedcbf36e83494f857cc58026",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Pedersen(felt.MustFromHex(tc.a), felt.MustFromHex(tc.b))
			require.Equal(t, tc.want, got.Hex())
		})
	}
}

func TestPedersenOnElementsCascade(t *testing.T) {
	// h_0 = 0, h_{i+1} = pedersen(h_i, x_i), result pedersen(h_n, n).
	elems := []*felt.Felt{felt.FromUint64(1), felt.FromUint64(2), felt.FromUint64(3)}

	h := felt.Zero()
	for _, e := range elems {
		h = Pedersen(h, e)
	}
	h = Pedersen(h, felt.FromUint64(uint64(len(elems))))

	require.True(t, h.Equal(PedersenOnElements(elems...)))
}

func TestPedersenOnElementsEmpty(t *testing.T) {
	require.True(t, PedersenOnElements().Equal(Pedersen(felt.Zero(), felt.Zero())))
}

func TestPoseidonDeterminism(t *testing.T) {
	a, b := felt.FromUint64(17), felt.FromUint64(23)
	require.True(t, Poseidon(a, b).Equal(Poseidon(a, b)))
	require.False(t, Poseidon(a, b).Equal(Poseidon(b, a)))
}

func TestPoseidonOnElements(t *testing.T) {
	a, b := felt.FromUint64(17), felt.FromUint64(23)
	many := PoseidonOnElements(a, b)
	require.True(t, many.Equal(PoseidonOnElements(a, b)))
	require.False(t, many.Equal(PoseidonOnElements(b, a)))
	// The pairwise sponge call and the sequence hash are distinct
	// constructions.
	require.False(t, many.Equal(Poseidon(a, b)))
}

func TestSelectorFromName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"transfer",
			"transfer",
			"0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SelectorFromName(tc.input).Hex())
		})
	}
}

func TestSelectorFitsField(t *testing.T) {
	// 250-bit truncation keeps every selector well below 2^251.
	for _, name := range []string{"", "transfer", "balanceOf", "__execute__"} {
		sel := SelectorFromName(name)
		require.LessOrEqual(t, sel.BigInt().BitLen(), 250)
	}
}

func TestStarknetKeccakMatchesSelector(t *testing.T) {
	require.True(t, StarknetKeccak([]byte("transfer")).Equal(SelectorFromName("transfer")))
}

func TestHashMethod(t *testing.T) {
	a, b := felt.FromUint64(3), felt.FromUint64(5)

	require.True(t, HashPedersen.Hash(a, b).Equal(Pedersen(a, b)))
	require.True(t, HashPoseidon.Hash(a, b).Equal(Poseidon(a, b)))
	require.True(t, HashPedersen.HashMany([]*felt.Felt{a, b}).Equal(PedersenOnElements(a, b)))
	require.True(t, HashPoseidon.HashMany([]*felt.Felt{a, b}).Equal(PoseidonOnElements(a, b)))
	require.Equal(t, "pedersen", HashPedersen.String())
	require.Equal(t, "poseidon", HashPoseidon.String())
}

func BenchmarkPedersen(b *testing.B) {
	x, y := felt.FromUint64(1), felt.FromUint64(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Pedersen(x, y)
	}
}

func BenchmarkPoseidonOnElements8(b *testing.B) {
	elems := make([]*felt.Felt, 8)
	for i := range elems {
		elems[i] = felt.FromUint64(uint64(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PoseidonOnElements(elems...)
	}
}

func BenchmarkSelectorFromName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		SelectorFromName("transfer")
	}
}
