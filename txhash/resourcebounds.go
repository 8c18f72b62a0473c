// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txhash

import (
	"github.com/holiman/uint256"

	"github.com/luxfi/starknet/felt"
)

// Resource names the fee resources a v3 transaction bounds. The short
// string of the name is the tag packed into the bound felt.
type Resource string

const (
	ResourceL1Gas     Resource = "L1_GAS"
	ResourceL2Gas     Resource = "L2_GAS"
	ResourceL1DataGas Resource = "L1_DATA"
)

// ResourceBounds caps the amount of a resource a transaction may consume
// and the price the sender will pay per unit.
type ResourceBounds struct {
	MaxAmount       felt.Uint64
	MaxPricePerUnit felt.Uint128
}

// ZeroResourceBounds is the all-zero bound used to fill unspecified
// resources.
func ZeroResourceBounds() ResourceBounds {
	return ResourceBounds{}
}

// ResourceBoundsMapping carries the per-resource bounds of a v3
// transaction. Two wire layouts exist: the older two-bound form (L1 and L2
// gas) and the newer three-bound form that adds L1 data gas. The layout is
// selected by whether a data-gas bound is present, so both chain revisions
// can be targeted from the same type.
type ResourceBoundsMapping struct {
	L1Gas     ResourceBounds
	L2Gas     ResourceBounds
	L1DataGas *ResourceBounds
}

// NewResourceBoundsMappingL1 builds the common single-resource case,
// zero-filling the L2 bound.
func NewResourceBoundsMappingL1(l1 ResourceBounds) ResourceBoundsMapping {
	return ResourceBoundsMapping{L1Gas: l1, L2Gas: ZeroResourceBounds()}
}

// NewResourceBoundsMapping builds the two-bound form.
func NewResourceBoundsMapping(l1, l2 ResourceBounds) ResourceBoundsMapping {
	return ResourceBoundsMapping{L1Gas: l1, L2Gas: l2}
}

// NewResourceBoundsMappingWithDataGas builds the three-bound form.
func NewResourceBoundsMappingWithDataGas(l1, l2, l1Data ResourceBounds) ResourceBoundsMapping {
	return ResourceBoundsMapping{L1Gas: l1, L2Gas: l2, L1DataGas: &l1Data}
}

// HasL1DataGas reports whether the mapping uses the three-bound layout.
func (m ResourceBoundsMapping) HasL1DataGas() bool {
	return m.L1DataGas != nil
}

// feeFields returns the inputs of the fee-commitment hash:
// [tip, L1_GAS bound, L2_GAS bound, L1_DATA bound when present].
func (m ResourceBoundsMapping) feeFields(tip felt.Uint64) []*felt.Felt {
	fields := []*felt.Felt{
		tip.Felt(),
		packResourceBound(ResourceL1Gas, m.L1Gas),
		packResourceBound(ResourceL2Gas, m.L2Gas),
	}
	if m.L1DataGas != nil {
		fields = append(fields, packResourceBound(ResourceL1DataGas, *m.L1DataGas))
	}
	return fields
}

// packResourceBound lays out one bound as
// (short_string(tag) << 192) | (max_amount << 128) | max_price_per_unit.
// The tag occupies at most 56 bits, so the packed value stays below 2^248
// and therefore below the field modulus.
func packResourceBound(tag Resource, rb ResourceBounds) *felt.Felt {
	packed := new(uint256.Int).SetBytes([]byte(tag))
	packed.Lsh(packed, 64)
	packed.Or(packed, uint256.NewInt(rb.MaxAmount.Uint64()))
	packed.Lsh(packed, 128)
	packed.Or(packed, rb.MaxPricePerUnit.Impl())
	f, err := felt.New(packed.ToBig())
	if err != nil {
		panic(err)
	}
	return f
}

// DataAvailabilityMode selects where a transaction's nonce and fee data are
// made available.
type DataAvailabilityMode uint32

const (
	DAModeL1 DataAvailabilityMode = 0
	DAModeL2 DataAvailabilityMode = 1
)

// packDataAvailabilityModes packs (nonce_mode << 32) | fee_mode.
func packDataAvailabilityModes(nonceMode, feeMode DataAvailabilityMode) *felt.Felt {
	return felt.FromUint64(uint64(nonceMode)<<32 | uint64(feeMode))
}
