// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	junocrypto "github.com/NethermindEth/juno/core/crypto"
	junofelt "github.com/NethermindEth/juno/core/felt"

	"github.com/luxfi/starknet/felt"
)

// Poseidon hashes a single pair of felts. Note this is the two-element
// sponge call, not PoseidonOnElements of two inputs; the protocol uses both
// and they produce different digests.
func Poseidon(a, b *felt.Felt) *felt.Felt {
	h := junocrypto.Poseidon(junofelt.NewFelt(a.Impl()), junofelt.NewFelt(b.Impl()))
	return felt.FromImpl(h.Impl())
}

// PoseidonOnElements compresses a sequence with the canonical
// poseidon_hash_many padding rule.
func PoseidonOnElements(elems ...*felt.Felt) *felt.Felt {
	jelems := make([]*junofelt.Felt, len(elems))
	for i, e := range elems {
		jelems[i] = junofelt.NewFelt(e.Impl())
	}
	h := junocrypto.PoseidonArray(jelems...)
	return felt.FromImpl(h.Impl())
}
