// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import "github.com/luxfi/starknet/felt"

// HashMethod selects between the two protocol hash families. Merkle trees
// and typed data are parameterised by it: revision 0 hashes with Pedersen,
// revision 1 with Poseidon.
type HashMethod uint8

const (
	HashPedersen HashMethod = iota
	HashPoseidon
)

// Hash applies the two-element hash of the method.
func (m HashMethod) Hash(a, b *felt.Felt) *felt.Felt {
	if m == HashPoseidon {
		return Poseidon(a, b)
	}
	return Pedersen(a, b)
}

// HashMany applies the sequence-compression hash of the method.
func (m HashMethod) HashMany(elems []*felt.Felt) *felt.Felt {
	if m == HashPoseidon {
		return PoseidonOnElements(elems...)
	}
	return PedersenOnElements(elems...)
}

func (m HashMethod) String() string {
	if m == HashPoseidon {
		return "poseidon"
	}
	return "pedersen"
}
