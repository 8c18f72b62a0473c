// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package merkle computes binary Merkle roots over felts. Typed data uses it
// for the merkletree basic type; the hash family follows the enclosing
// revision.
package merkle

import (
	"errors"

	"github.com/luxfi/starknet/crypto"
	"github.com/luxfi/starknet/felt"
)

var ErrEmptyLeaves = errors.New("merkle tree requires at least one leaf")

// Root builds the tree bottom-up. Within a pair the smaller operand hashes
// first; a trailing unpaired node is paired with zero. Leaf order is the
// caller's and decides which nodes share a pair; because every pair is
// sorted, swapping the two operands of any node (two leaves or two sibling
// subtrees) leaves the root unchanged.
func Root(leaves []*felt.Felt, method crypto.HashMethod) (*felt.Felt, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyLeaves
	}
	level := leaves
	for len(level) > 1 {
		next := make([]*felt.Felt, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			right := felt.Zero()
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, hashNode(level[i], right, method))
		}
		level = next
	}
	return level[0], nil
}

func hashNode(a, b *felt.Felt, method crypto.HashMethod) *felt.Felt {
	if a.Cmp(b) <= 0 {
		return method.Hash(a, b)
	}
	return method.Hash(b, a)
}

// Tree is an immutable leaf list with its memoised root.
type Tree struct {
	leaves []*felt.Felt
	method crypto.HashMethod
	root   *felt.Felt
}

// NewTree computes the root eagerly so a Tree is safe to share across
// goroutines without synchronisation.
func NewTree(leaves []*felt.Felt, method crypto.HashMethod) (*Tree, error) {
	root, err := Root(leaves, method)
	if err != nil {
		return nil, err
	}
	copied := make([]*felt.Felt, len(leaves))
	copy(copied, leaves)
	return &Tree{leaves: copied, method: method, root: root}, nil
}

func (t *Tree) Root() *felt.Felt {
	return t.root
}

func (t *Tree) Leaves() []*felt.Felt {
	out := make([]*felt.Felt, len(t.leaves))
	copy(out, t.leaves)
	return out
}

func (t *Tree) Method() crypto.HashMethod {
	return t.method
}
