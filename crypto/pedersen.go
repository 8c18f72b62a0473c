// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crypto exposes the hash primitives the Starknet protocol is
// defined over:
// - Pedersen point hashing on the Stark curve (v1/v2 transactions,
//   revision-0 typed data, contract addresses)
// - the Poseidon sponge (v3 transactions, revision-1 typed data)
// - the truncated Keccak selector used for entry points and type hashes
//
// The field and curve arithmetic come from gnark-crypto and the Poseidon
// permutation from Juno; this package only adapts them to felt operands and
// fixes the sequence-compression conventions (length-appended Pedersen
// cascade, rate-2 Poseidon padding).
package crypto

import (
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	pedersenhash "github.com/consensys/gnark-crypto/ecc/stark-curve/pedersen-hash"

	"github.com/luxfi/starknet/felt"
)

// Pedersen hashes a single pair of felts.
func Pedersen(a, b *felt.Felt) *felt.Felt {
	h := pedersenhash.Pedersen(a.Impl(), b.Impl())
	return felt.FromImpl(&h)
}

// PedersenOnElements compresses a sequence with the length-appended
// cascade: h_0 = 0, h_{i+1} = pedersen(h_i, x_i), result pedersen(h_n, n).
// The empty sequence hashes to pedersen(0, 0).
func PedersenOnElements(elems ...*felt.Felt) *felt.Felt {
	impls := make([]*fp.Element, len(elems))
	for i, e := range elems {
		impls[i] = e.Impl()
	}
	h := pedersenhash.PedersenArray(impls...)
	return felt.FromImpl(&h)
}
