// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package typeddata

import "strings"

// ParameterKind discriminates the three field-descriptor variants. The JSON
// form is polymorphic: the declared type value plus the presence of a
// contains key selects the variant.
type ParameterKind uint8

const (
	KindStandard ParameterKind = iota
	KindMerkleTree
	KindEnum
)

// Parameter is one field descriptor inside a type definition.
// Standard fields use Name and Type only; merkletree and enum fields carry
// the referenced leaf or variant-list type in Contains.
type Parameter struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Contains string `json:"contains,omitempty"`
}

// Kind discriminates the variant.
func (p Parameter) Kind() ParameterKind {
	switch {
	case p.Type == typeMerkleTree:
		return KindMerkleTree
	case p.Type == typeEnum && p.Contains != "":
		return KindEnum
	}
	return KindStandard
}

const (
	typeFelt            = "felt"
	typeBool            = "bool"
	typeString          = "string"
	typeSelector        = "selector"
	typeMerkleTree      = "merkletree"
	typeEnum            = "enum"
	typeI128            = "i128"
	typeU128            = "u128"
	typeContractAddress = "ContractAddress"
	typeClassHash       = "ClassHash"
	typeTimestamp       = "timestamp"
	typeShortString     = "shortstring"
)

func isArrayType(t string) bool {
	return strings.HasSuffix(t, "*")
}

// isEnumVariantType recognises the inline tuple notation "(A,B,C)" used for
// enum variant payloads.
func isEnumVariantType(t string) bool {
	return len(t) >= 2 && t[0] == '(' && t[len(t)-1] == ')'
}

// splitVariantTypes decomposes "(A,B,C)" into its member type names.
// The empty tuple "()" has no members.
func splitVariantTypes(t string) []string {
	body := t[1 : len(t)-1]
	if body == "" {
		return nil
	}
	return strings.Split(body, ",")
}
