// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chain holds the felt-encoded network identifiers transaction
// hashes are domain-separated by.
package chain

import "github.com/luxfi/starknet/felt"

// Network identifiers are short-string encodings of the network name.
var (
	MainnetID = felt.MustFromShortString("SN_MAIN")
	SepoliaID = felt.MustFromShortString("SN_SEPOLIA")
)

// IDFromName encodes an arbitrary network name, for custom deployments.
func IDFromName(name string) (*felt.Felt, error) {
	return felt.FromShortString(name)
}
