// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package felt implements the Starknet prime-field element and the bounded
// integer types built on top of it.
//
// A felt is a non-negative integer below the Stark prime
// P = 2^251 + 17*2^192 + 1. All hashing in this module (Pedersen, Poseidon,
// typed data, transaction hashes) is defined over felts, so the type carries
// every canonical conversion the protocol needs:
// - unsigned and signed big integers
// - 0x-prefixed hex strings
// - Cairo short strings (up to 31 ASCII bytes, big-endian)
//
// The representation wraps the stark-curve base field element from
// gnark-crypto; Impl exposes it so hash wrappers can call into the field
// implementation without copying through math/big.
package felt

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

var (
	ErrOutOfRange         = errors.New("value out of range")
	ErrInvalidHex         = errors.New("invalid hex string")
	ErrInvalidShortString = errors.New("invalid short string")
)

// MaxShortStringLength is the longest ASCII string that fits a single felt.
const MaxShortStringLength = 31

// Felt is an element of the Stark prime field. The zero value is the field
// zero and is ready to use.
type Felt struct {
	val fp.Element
}

// Modulus returns P as a fresh big integer.
func Modulus() *big.Int {
	return fp.Modulus()
}

// Zero returns a new felt holding 0.
func Zero() *Felt {
	return new(Felt)
}

// One returns a new felt holding 1.
func One() *Felt {
	f := new(Felt)
	f.val.SetOne()
	return f
}

// New constructs a felt from a non-negative integer strictly below P.
func New(v *big.Int) (*Felt, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrOutOfRange)
	}
	if v.Sign() < 0 || v.Cmp(fp.Modulus()) >= 0 {
		return nil, fmt.Errorf("%w: %s is not in [0, P)", ErrOutOfRange, v)
	}
	f := new(Felt)
	f.val.SetBigInt(v)
	return f, nil
}

// NewFromSigned constructs a felt from a signed integer, mapping negative
// values to v + P. The magnitude must be below P/2 so the signed and
// unsigned ranges cannot collide.
func NewFromSigned(v *big.Int) (*Felt, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrOutOfRange)
	}
	half := new(big.Int).Rsh(fp.Modulus(), 1)
	if new(big.Int).Abs(v).Cmp(half) >= 0 {
		return nil, fmt.Errorf("%w: |%s| >= P/2", ErrOutOfRange, v)
	}
	if v.Sign() < 0 {
		return New(new(big.Int).Add(v, fp.Modulus()))
	}
	return New(v)
}

// FromUint64 constructs a felt from a machine word. Always in range.
func FromUint64(v uint64) *Felt {
	f := new(Felt)
	f.val.SetUint64(v)
	return f
}

// FromHex parses a 0x-prefixed, case-insensitive hex string.
func FromHex(s string) (*Felt, error) {
	body, ok := cutHexPrefix(s)
	if !ok || body == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, ok := new(big.Int).SetString(body, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return New(v)
}

// FromShortString encodes up to 31 ASCII bytes as a big-endian integer.
// The empty string encodes to zero.
func FromShortString(s string) (*Felt, error) {
	if len(s) > MaxShortStringLength {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrInvalidShortString, len(s), MaxShortStringLength)
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return nil, fmt.Errorf("%w: non-ASCII byte at index %d", ErrInvalidShortString, i)
		}
	}
	f := new(Felt)
	f.val.SetBigInt(new(big.Int).SetBytes([]byte(s)))
	return f, nil
}

// MustFromShortString is FromShortString for compile-time constants.
// It panics on invalid input.
func MustFromShortString(s string) *Felt {
	f, err := FromShortString(s)
	if err != nil {
		panic(err)
	}
	return f
}

// MustFromHex is FromHex for known-good literals. It panics on invalid input.
func MustFromHex(s string) *Felt {
	f, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return f
}

// FromImpl wraps a raw field element.
func FromImpl(e *fp.Element) *Felt {
	f := new(Felt)
	f.val.Set(e)
	return f
}

// Impl returns the underlying field element.
func (f *Felt) Impl() *fp.Element {
	return &f.val
}

// BigInt returns the canonical integer value in [0, P).
func (f *Felt) BigInt() *big.Int {
	var v big.Int
	f.val.BigInt(&v)
	return &v
}

// Bytes returns the 32-byte big-endian encoding.
func (f *Felt) Bytes() [32]byte {
	return f.val.Bytes()
}

// Hex returns the 0x-prefixed lowercase hex encoding without leading zeros.
func (f *Felt) Hex() string {
	return "0x" + f.BigInt().Text(16)
}

func (f *Felt) String() string {
	return f.Hex()
}

// ToShortString decodes the felt back into the ASCII string it encodes.
// Fails if any byte falls outside printable ASCII.
func (f *Felt) ToShortString() (string, error) {
	v := f.BigInt()
	if v.Sign() == 0 {
		return "", nil
	}
	b := v.Bytes()
	if len(b) > MaxShortStringLength {
		return "", fmt.Errorf("%w: value needs %d bytes", ErrInvalidShortString, len(b))
	}
	for i, c := range b {
		if c < 0x20 || c > 0x7e {
			return "", fmt.Errorf("%w: non-printable byte at index %d", ErrInvalidShortString, i)
		}
	}
	return string(b), nil
}

// Cmp compares the canonical integer values.
func (f *Felt) Cmp(other *Felt) int {
	return f.val.Cmp(&other.val)
}

func (f *Felt) Equal(other *Felt) bool {
	return f.val.Equal(&other.val)
}

func (f *Felt) IsZero() bool {
	return f.val.IsZero()
}

// MarshalJSON encodes the felt as a hex string.
func (f *Felt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.Hex() + `"`), nil
}

// UnmarshalJSON accepts hex strings, decimal strings and bare JSON numbers.
func (f *Felt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		return fmt.Errorf("%w: empty felt literal", ErrInvalidHex)
	}
	var (
		v  *big.Int
		ok bool
	)
	if body, isHex := cutHexPrefix(s); isHex {
		v, ok = new(big.Int).SetString(body, 16)
	} else {
		v, ok = new(big.Int).SetString(s, 10)
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	parsed, err := New(v)
	if err != nil {
		return err
	}
	f.val.Set(&parsed.val)
	return nil
}

func cutHexPrefix(s string) (string, bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:], true
	}
	return s, false
}
