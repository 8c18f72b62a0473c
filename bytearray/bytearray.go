// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bytearray implements the Cairo ByteArray encoding: an arbitrary
// UTF-8 string split into 31-byte big-endian words plus a trailing pending
// word. Revision-1 typed data hashes long strings through this layout.
package bytearray

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/luxfi/starknet/felt"
)

// wordLen is the number of bytes a full word packs into one felt.
const wordLen = 31

var ErrInvalidByteArray = errors.New("invalid byte array")

// ByteArray is the canonical chunked form of a byte string. The encoding is
// one-to-one: FullWords holds every complete 31-byte chunk and PendingWord
// the trailing 0..30 bytes.
type ByteArray struct {
	FullWords      []*felt.Felt
	PendingWord    *felt.Felt
	PendingWordLen int
}

// FromString chunks the UTF-8 bytes of s.
func FromString(s string) ByteArray {
	data := []byte(s)
	full := len(data) / wordLen
	words := make([]*felt.Felt, 0, full)
	for i := 0; i < full; i++ {
		words = append(words, wordFelt(data[i*wordLen:(i+1)*wordLen]))
	}
	pending := data[full*wordLen:]
	return ByteArray{
		FullWords:      words,
		PendingWord:    wordFelt(pending),
		PendingWordLen: len(pending),
	}
}

// ToCalldata serialises to the on-chain layout
// [len(full_words), full_words..., pending_word, pending_word_len],
// always 3 + len(FullWords) felts.
func (b ByteArray) ToCalldata() []*felt.Felt {
	out := make([]*felt.Felt, 0, 3+len(b.FullWords))
	out = append(out, felt.FromUint64(uint64(len(b.FullWords))))
	out = append(out, b.FullWords...)
	out = append(out, b.PendingWord, felt.FromUint64(uint64(b.PendingWordLen)))
	return out
}

// String reassembles the original byte string.
func (b ByteArray) String() (string, error) {
	if b.PendingWordLen < 0 || b.PendingWordLen >= wordLen {
		return "", fmt.Errorf("%w: pending word length %d", ErrInvalidByteArray, b.PendingWordLen)
	}
	buf := make([]byte, 0, len(b.FullWords)*wordLen+b.PendingWordLen)
	for _, w := range b.FullWords {
		chunk, err := wordBytes(w, wordLen)
		if err != nil {
			return "", err
		}
		buf = append(buf, chunk...)
	}
	pending, err := wordBytes(b.PendingWord, b.PendingWordLen)
	if err != nil {
		return "", err
	}
	return string(append(buf, pending...)), nil
}

func wordFelt(b []byte) *felt.Felt {
	f, err := felt.New(new(big.Int).SetBytes(b))
	if err != nil {
		// 31 bytes never reach P.
		panic(err)
	}
	return f
}

func wordBytes(w *felt.Felt, n int) ([]byte, error) {
	raw := w.BigInt().Bytes()
	if len(raw) > n {
		return nil, fmt.Errorf("%w: word %s wider than %d bytes", ErrInvalidByteArray, w, n)
	}
	out := make([]byte, n)
	copy(out[n-len(raw):], raw)
	return out, nil
}
