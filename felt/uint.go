// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package felt

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Uint64 is a non-negative integer below 2^64. It backs the transaction tip
// and resource max-amount fields.
type Uint64 struct {
	val uint64
}

// Uint128 is a non-negative integer below 2^128. It backs the resource
// max-price field.
type Uint128 struct {
	val uint256.Int
}

// NewUint64 constructs a Uint64 from a big integer, rejecting values
// outside [0, 2^64).
func NewUint64(v *big.Int) (Uint64, error) {
	if v == nil || v.Sign() < 0 || !v.IsUint64() {
		return Uint64{}, fmt.Errorf("%w: %s is not in [0, 2^64)", ErrOutOfRange, v)
	}
	return Uint64{val: v.Uint64()}, nil
}

// Uint64FromUint64 wraps a machine word. Always in range.
func Uint64FromUint64(v uint64) Uint64 {
	return Uint64{val: v}
}

// Uint64 returns the raw machine word.
func (u Uint64) Uint64() uint64 {
	return u.val
}

// Felt converts losslessly to a field element.
func (u Uint64) Felt() *Felt {
	return FromUint64(u.val)
}

// NewUint128 constructs a Uint128 from a big integer, rejecting values
// outside [0, 2^128).
func NewUint128(v *big.Int) (Uint128, error) {
	if v == nil || v.Sign() < 0 || v.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("%w: %s is not in [0, 2^128)", ErrOutOfRange, v)
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return Uint128{}, fmt.Errorf("%w: %s is not in [0, 2^128)", ErrOutOfRange, v)
	}
	return Uint128{val: *u}, nil
}

// Uint128FromUint64 widens a machine word. Always in range.
func Uint128FromUint64(v uint64) Uint128 {
	return Uint128{val: *uint256.NewInt(v)}
}

// ParseUint128 accepts decimal and 0x-prefixed hex strings.
func ParseUint128(s string) (Uint128, error) {
	base := 10
	if body, isHex := cutHexPrefix(s); isHex {
		s, base = body, 16
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Uint128{}, fmt.Errorf("%w: cannot parse %q as u128", ErrOutOfRange, s)
	}
	return NewUint128(v)
}

// BigInt returns the canonical integer value.
func (u Uint128) BigInt() *big.Int {
	return u.val.ToBig()
}

// Impl returns the backing 256-bit word for bit-level packing.
func (u Uint128) Impl() *uint256.Int {
	v := u.val
	return &v
}

// Felt converts losslessly to a field element. 2^128 is far below P, so the
// conversion cannot fail.
func (u Uint128) Felt() *Felt {
	f, err := New(u.val.ToBig())
	if err != nil {
		panic(err)
	}
	return f
}
