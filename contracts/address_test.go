// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contracts

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/starknet/crypto"
	"github.com/luxfi/starknet/felt"
)

func TestCalculateAddressFromHashComposition(t *testing.T) {
	classHash := felt.MustFromHex("0x1234")
	salt := felt.MustFromHex("0x5678")
	calldata := []*felt.Felt{felt.FromUint64(1), felt.FromUint64(2)}

	raw := crypto.PedersenOnElements(
		felt.MustFromShortString("STARKNET_CONTRACT_ADDRESS"),
		felt.Zero(),
		salt,
		classHash,
		crypto.PedersenOnElements(calldata...),
	)
	want := raw.BigInt()
	want.Mod(want, new(big.Int).Lsh(big.NewInt(1), 251))

	got := CalculateAddressFromHash(classHash, salt, calldata)
	require.Equal(t, 0, got.BigInt().Cmp(want))
}

func TestCalculateAddressBound(t *testing.T) {
	got := CalculateAddressFromHash(felt.MustFromHex("0xabc"), felt.Zero(), nil)
	require.LessOrEqual(t, got.BigInt().BitLen(), 251)
}

func TestDeployerDefaultsToZero(t *testing.T) {
	classHash := felt.MustFromHex("0x111")
	salt := felt.MustFromHex("0x222")
	calldata := []*felt.Felt{felt.FromUint64(9)}

	require.True(t,
		CalculateAddressFromHash(classHash, salt, calldata).
			Equal(CalculateAddressFromHashWithDeployer(classHash, salt, calldata, felt.Zero())))

	withDeployer := CalculateAddressFromHashWithDeployer(classHash, salt, calldata, felt.FromUint64(7))
	require.False(t, withDeployer.Equal(CalculateAddressFromHash(classHash, salt, calldata)))
}

func TestEmptyCalldata(t *testing.T) {
	a := CalculateAddressFromHash(felt.MustFromHex("0x1"), felt.Zero(), nil)
	b := CalculateAddressFromHash(felt.MustFromHex("0x1"), felt.Zero(), []*felt.Felt{})
	require.True(t, a.Equal(b))
}
