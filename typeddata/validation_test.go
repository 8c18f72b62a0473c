// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package typeddata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func v0Domain() map[string]any {
	return map[string]any{"name": "Dapp", "version": "1", "chainId": "1"}
}

func v1Domain() map[string]any {
	return map[string]any{"name": "Dapp", "version": "1", "chainId": "1", "revision": "1"}
}

func separatorV0() []Parameter {
	return []Parameter{
		{Name: "name", Type: "felt"},
		{Name: "version", Type: "felt"},
		{Name: "chainId", Type: "felt"},
	}
}

func separatorV1() []Parameter {
	return []Parameter{
		{Name: "name", Type: "shortstring"},
		{Name: "version", Type: "shortstring"},
		{Name: "chainId", Type: "shortstring"},
		{Name: "revision", Type: "shortstring"},
	}
}

func TestMissingSeparatorRejected(t *testing.T) {
	types := map[string][]Parameter{
		"Root": {{Name: "v", Type: "felt"}},
	}
	_, err := New(types, "Root", v0Domain(), map[string]any{})
	require.ErrorIs(t, err, ErrInvalidTypeDefinition)

	// Revision 1 wants the other casing.
	types["StarkNetDomain"] = separatorV0()
	_, err = New(types, "Root", v1Domain(), map[string]any{})
	require.ErrorIs(t, err, ErrInvalidTypeDefinition)
}

func TestBasicTypeShadowingRejected(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		domain   map[string]any
	}{
		{"felt_v0", "felt", v0Domain()},
		{"merkletree_v0", "merkletree", v0Domain()},
		{"u128_v1", "u128", v1Domain()},
		{"shortstring_v1", "shortstring", v1Domain()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sep, sepFields := "StarkNetDomain", separatorV0()
			if _, v1 := tc.domain["revision"]; v1 {
				sep, sepFields = "StarknetDomain", separatorV1()
			}
			types := map[string][]Parameter{
				sep:         sepFields,
				"Root":      {{Name: "v", Type: tc.typeName}},
				tc.typeName: {{Name: "v", Type: "felt"}},
			}
			_, err := New(types, "Root", tc.domain, map[string]any{})
			require.ErrorIs(t, err, ErrInvalidTypeDefinition)
		})
	}
}

func TestU128CustomTypeAllowedInV0(t *testing.T) {
	// u128 only becomes reserved with revision 1.
	types := map[string][]Parameter{
		"StarkNetDomain": separatorV0(),
		"Root":           {{Name: "v", Type: "u128"}},
		"u128":           {{Name: "v", Type: "felt"}},
	}
	_, err := New(types, "Root", v0Domain(), map[string]any{})
	require.NoError(t, err)
}

func TestPresetShadowingRejectedInV1(t *testing.T) {
	types := map[string][]Parameter{
		"StarknetDomain": separatorV1(),
		"Root":           {{Name: "v", Type: "u256"}},
		"u256":           {{Name: "low", Type: "felt"}},
	}
	_, err := New(types, "Root", v1Domain(), map[string]any{})
	require.ErrorIs(t, err, ErrInvalidTypeDefinition)
}

func TestTypeNameSyntaxRejected(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
	}{
		{"empty", ""},
		{"array", "Root*"},
		{"parenthesised", "(Root)"},
		{"comma", "Ro,ot"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			types := map[string][]Parameter{
				"StarkNetDomain": separatorV0(),
				"Root":           {{Name: "v", Type: "felt"}},
				tc.typeName:      {{Name: "v", Type: "felt"}},
			}
			_, err := New(types, "Root", v0Domain(), map[string]any{})
			require.ErrorIs(t, err, ErrInvalidTypeDefinition)
		})
	}
}

func TestDanglingTypeRejected(t *testing.T) {
	types := map[string][]Parameter{
		"StarkNetDomain": separatorV0(),
		"Root":           {{Name: "v", Type: "felt"}},
		"Orphan":         {{Name: "v", Type: "felt"}},
	}
	_, err := New(types, "Root", v0Domain(), map[string]any{})
	require.ErrorIs(t, err, ErrInvalidTypeDefinition)

	// Referencing it from the primary type cures the error.
	types["Root"] = []Parameter{{Name: "v", Type: "Orphan"}}
	_, err = New(types, "Root", v0Domain(), map[string]any{})
	require.NoError(t, err)
}

func TestMerkleTreeContainsRules(t *testing.T) {
	types := map[string][]Parameter{
		"StarkNetDomain": separatorV0(),
		"Leaf":           {{Name: "v", Type: "felt"}},
		"Root":           {{Name: "r", Type: "merkletree", Contains: "Leaf*"}},
	}
	_, err := New(types, "Root", v0Domain(), map[string]any{})
	require.ErrorIs(t, err, ErrInvalidTypeDefinition)

	types["Root"] = []Parameter{{Name: "r", Type: "merkletree"}}
	_, err = New(types, "Root", v0Domain(), map[string]any{})
	require.ErrorIs(t, err, ErrInvalidTypeDefinition)

	types["Root"] = []Parameter{{Name: "r", Type: "merkletree", Contains: "Leaf"}}
	_, err = New(types, "Root", v0Domain(), map[string]any{})
	require.NoError(t, err)
}

func TestEnumSyntaxRequiresRevision1(t *testing.T) {
	types := map[string][]Parameter{
		"StarkNetDomain": separatorV0(),
		"Root":           {{Name: "e", Type: "enum", Contains: "Variants"}},
		"Variants":       {{Name: "A", Type: "()"}},
	}
	_, err := New(types, "Root", v0Domain(), map[string]any{})
	require.ErrorIs(t, err, ErrRevisionMismatch)

	// Inline tuple notation is also revision-1 syntax.
	types = map[string][]Parameter{
		"StarkNetDomain": separatorV0(),
		"Root":           {{Name: "e", Type: "(felt,felt)"}},
	}
	_, err = New(types, "Root", v0Domain(), map[string]any{})
	require.ErrorIs(t, err, ErrRevisionMismatch)
}

func TestEnumContainsMustBeDefined(t *testing.T) {
	types := map[string][]Parameter{
		"StarknetDomain": separatorV1(),
		"Root":           {{Name: "e", Type: "enum", Contains: "Missing"}},
	}
	_, err := New(types, "Root", v1Domain(), map[string]any{})
	require.ErrorIs(t, err, ErrInvalidTypeDefinition)

	types = map[string][]Parameter{
		"StarknetDomain": separatorV1(),
		"Root":           {{Name: "e", Type: "enum"}},
	}
	_, err = New(types, "Root", v1Domain(), map[string]any{})
	require.ErrorIs(t, err, ErrInvalidTypeDefinition)
}

func TestUnsupportedRevisionRejected(t *testing.T) {
	types := map[string][]Parameter{
		"StarkNetDomain": separatorV0(),
		"Root":           {{Name: "v", Type: "felt"}},
	}
	domain := map[string]any{"name": "Dapp", "revision": "2"}
	_, err := New(types, "Root", domain, map[string]any{})
	require.ErrorIs(t, err, ErrSchema)

	domain["revision"] = []any{}
	_, err = New(types, "Root", domain, map[string]any{})
	require.ErrorIs(t, err, ErrSchema)
}

func TestUnknownPrimaryTypeRejected(t *testing.T) {
	types := map[string][]Parameter{
		"StarkNetDomain": separatorV0(),
	}
	_, err := New(types, "Missing", v0Domain(), map[string]any{})
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestNilDomainOrMessageRejected(t *testing.T) {
	types := map[string][]Parameter{
		"StarkNetDomain": separatorV0(),
		"Root":           {{Name: "v", Type: "felt"}},
	}
	_, err := New(types, "Root", nil, map[string]any{})
	require.ErrorIs(t, err, ErrSchema)
	_, err = New(types, "Root", v0Domain(), nil)
	require.ErrorIs(t, err, ErrSchema)
}
