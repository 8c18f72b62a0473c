// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"math/big"

	gethcrypto "github.com/luxfi/crypto"

	"github.com/luxfi/starknet/felt"
)

// selectorMask keeps the low 250 bits of the Keccak digest so the result
// always fits the field.
var selectorMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 250), big.NewInt(1))

// StarknetKeccak is Keccak-256 truncated to 250 bits.
func StarknetKeccak(data []byte) *felt.Felt {
	digest := gethcrypto.Keccak256(data)
	v := new(big.Int).SetBytes(digest)
	v.And(v, selectorMask)
	f, err := felt.New(v)
	if err != nil {
		panic(err)
	}
	return f
}

// SelectorFromName computes the entry-point selector of a function name.
// The same construction seeds typed-data type hashes.
func SelectorFromName(name string) *felt.Felt {
	return StarknetKeccak([]byte(name))
}
