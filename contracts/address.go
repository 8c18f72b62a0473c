// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package contracts derives deterministic contract addresses from a class
// hash, a salt and the constructor calldata.
package contracts

import (
	"math/big"

	"github.com/luxfi/starknet/crypto"
	"github.com/luxfi/starknet/felt"
)

var (
	contractAddressPrefix = felt.MustFromShortString("STARKNET_CONTRACT_ADDRESS")

	// Addresses live in [0, 2^251).
	addressBound = new(big.Int).Lsh(big.NewInt(1), 251)
)

// CalculateAddressFromHash derives the address a deploy with deployer zero
// resolves to. Deploy-account hashing uses it for the sender address.
func CalculateAddressFromHash(classHash, salt *felt.Felt, constructorCalldata []*felt.Felt) *felt.Felt {
	return CalculateAddressFromHashWithDeployer(classHash, salt, constructorCalldata, felt.Zero())
}

// CalculateAddressFromHashWithDeployer is the general form with an explicit
// deployer address.
func CalculateAddressFromHashWithDeployer(classHash, salt *felt.Felt, constructorCalldata []*felt.Felt, deployer *felt.Felt) *felt.Felt {
	raw := crypto.PedersenOnElements(
		contractAddressPrefix,
		deployer,
		salt,
		classHash,
		crypto.PedersenOnElements(constructorCalldata...),
	)
	v := raw.BigInt()
	v.Mod(v, addressBound)
	addr, err := felt.New(v)
	if err != nil {
		panic(err)
	}
	return addr
}
