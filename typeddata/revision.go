// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package typeddata

import (
	"encoding/json"
	"fmt"

	"github.com/luxfi/starknet/crypto"
)

// Revision selects between the two incompatible typed-data encodings.
// Revision 0 predates standardisation and hashes with Pedersen; revision 1
// follows SNIP-12 and hashes with Poseidon.
type Revision uint8

const (
	RevisionV0 Revision = 0
	RevisionV1 Revision = 1
)

// HashMethod returns the hash family of the revision.
func (r Revision) HashMethod() crypto.HashMethod {
	if r == RevisionV1 {
		return crypto.HashPoseidon
	}
	return crypto.HashPedersen
}

// SeparatorName returns the domain separator type name. The casing differs
// between revisions and is part of the hash preimage.
func (r Revision) SeparatorName() string {
	if r == RevisionV1 {
		return "StarknetDomain"
	}
	return "StarkNetDomain"
}

var v0BasicTypes = map[string]struct{}{
	"felt":       {},
	"bool":       {},
	"string":     {},
	"selector":   {},
	"merkletree": {},
}

var v1ExtraBasicTypes = map[string]struct{}{
	"enum":            {},
	"i128":            {},
	"u128":            {},
	"ContractAddress": {},
	"ClassHash":       {},
	"timestamp":       {},
	"shortstring":     {},
}

func (r Revision) isBasicType(name string) bool {
	if _, ok := v0BasicTypes[name]; ok {
		return true
	}
	if r == RevisionV1 {
		_, ok := v1ExtraBasicTypes[name]
		return ok
	}
	return false
}

// presetTypes returns the implicitly merged definitions. Revision 0 has
// none; revision 1 carries u256, TokenAmount and NftId.
func (r Revision) presetTypes() map[string][]Parameter {
	if r != RevisionV1 {
		return nil
	}
	return map[string][]Parameter{
		"u256": {
			{Name: "low", Type: "u128"},
			{Name: "high", Type: "u128"},
		},
		"TokenAmount": {
			{Name: "token_address", Type: "ContractAddress"},
			{Name: "amount", Type: "u256"},
		},
		"NftId": {
			{Name: "collection_address", Type: "ContractAddress"},
			{Name: "token_id", Type: "u256"},
		},
	}
}

// revisionFromDomain reads the optional revision entry; absence selects
// revision 0.
func revisionFromDomain(domain map[string]any) (Revision, error) {
	raw, ok := domain["revision"]
	if !ok || raw == nil {
		return RevisionV0, nil
	}
	var repr string
	switch v := raw.(type) {
	case string:
		repr = v
	case json.Number:
		repr = v.String()
	case float64:
		repr = fmt.Sprintf("%d", int64(v))
	default:
		return 0, fmt.Errorf("%w: revision has kind %T", ErrSchema, raw)
	}
	switch repr {
	case "0":
		return RevisionV0, nil
	case "1":
		return RevisionV1, nil
	}
	return 0, fmt.Errorf("%w: unsupported revision %q", ErrSchema, repr)
}
