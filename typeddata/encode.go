// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package typeddata

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/luxfi/starknet/bytearray"
	"github.com/luxfi/starknet/crypto"
	"github.com/luxfi/starknet/felt"
	"github.com/luxfi/starknet/merkle"
)

// dependencies returns the BFS closure of root over the merged type table,
// root first. Array types decompose to their element type, inline enum
// tuples to their members, and merkletree/enum fields contribute their
// contains type. Names that are not defined types are skipped.
func (td *TypedData) dependencies(root string) []string {
	var order []string
	seen := make(map[string]bool)
	queue := []string{root}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if seen[name] {
			continue
		}
		params, ok := td.all[name]
		if !ok {
			continue
		}
		seen[name] = true
		order = append(order, name)
		for _, p := range params {
			queue = append(queue, referencedTypes(p)...)
		}
	}
	return order
}

func referencedTypes(p Parameter) []string {
	switch p.Kind() {
	case KindMerkleTree, KindEnum:
		return []string{p.Contains}
	}
	if isEnumVariantType(p.Type) {
		members := splitVariantTypes(p.Type)
		for i, m := range members {
			members[i] = strings.TrimSuffix(m, "*")
		}
		return members
	}
	return []string{strings.TrimSuffix(p.Type, "*")}
}

// EncodeType renders the canonical type string the type hash is seeded
// with: the root definition first, then every transitive dependency sorted
// lexicographically. Revision 1 wraps identifiers in double quotes.
func (td *TypedData) EncodeType(name string) (string, error) {
	deps := td.dependencies(name)
	if len(deps) == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	tail := append([]string(nil), deps[1:]...)
	sort.Strings(tail)
	var b strings.Builder
	for _, dep := range append([]string{deps[0]}, tail...) {
		td.encodeDependency(&b, dep)
	}
	return b.String(), nil
}

func (td *TypedData) encodeDependency(b *strings.Builder, name string) {
	b.WriteString(td.escape(name))
	b.WriteByte('(')
	for i, p := range td.all[name] {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(td.escape(p.Name))
		b.WriteByte(':')
		b.WriteString(td.parameterTypeString(p))
	}
	b.WriteByte(')')
}

// parameterTypeString renders the type position of one field.
func (td *TypedData) parameterTypeString(p Parameter) string {
	if p.Kind() == KindEnum {
		// The variant names of the contained definition, in declaration
		// order.
		variants := td.all[p.Contains]
		names := make([]string, len(variants))
		for i, v := range variants {
			names[i] = td.escape(v.Name)
		}
		return "(" + strings.Join(names, ",") + ")"
	}
	if isEnumVariantType(p.Type) {
		members := splitVariantTypes(p.Type)
		for i, m := range members {
			members[i] = td.escape(m)
		}
		return "(" + strings.Join(members, ",") + ")"
	}
	return td.escape(p.Type)
}

func (td *TypedData) escape(s string) string {
	if td.rev == RevisionV1 {
		return `"` + s + `"`
	}
	return s
}

// TypeHash returns selector_from_name(EncodeType(name)).
func (td *TypedData) TypeHash(name string) (*felt.Felt, error) {
	if h, ok := td.typeHashes[name]; ok {
		return h, nil
	}
	return td.computeTypeHash(name)
}

func (td *TypedData) computeTypeHash(name string) (*felt.Felt, error) {
	enc, err := td.EncodeType(name)
	if err != nil {
		return nil, err
	}
	return crypto.SelectorFromName(enc), nil
}

// StructHash hashes an object under a struct type:
// hash_many(type_hash, enc(field_1), ..., enc(field_n)) with fields in
// declaration order.
func (td *TypedData) StructHash(name string, obj map[string]any) (*felt.Felt, error) {
	params, ok := td.all[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	typeHash, err := td.TypeHash(name)
	if err != nil {
		return nil, err
	}
	elems := make([]*felt.Felt, 0, len(params)+1)
	elems = append(elems, typeHash)
	for _, p := range params {
		raw, present := obj[p.Name]
		if !present {
			return nil, fmt.Errorf("%w: %s.%s is missing", ErrSchema, name, p.Name)
		}
		enc, err := td.encodeValue(p.Type, raw, &p)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, p.Name, err)
		}
		elems = append(elems, enc)
	}
	return td.method.HashMany(elems), nil
}

// encodeValue reduces one value to a single felt. param carries the
// enclosing field descriptor so merkletree and enum fields can resolve
// their contains type; it is nil for array elements and nested positions.
func (td *TypedData) encodeValue(typeName string, value any, param *Parameter) (*felt.Felt, error) {
	if _, ok := td.all[typeName]; ok {
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s value has kind %T", ErrSchema, typeName, value)
		}
		return td.StructHash(typeName, obj)
	}
	if isArrayType(typeName) {
		arr, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s value has kind %T", ErrSchema, typeName, value)
		}
		elemType := strings.TrimSuffix(typeName, "*")
		hashes := make([]*felt.Felt, len(arr))
		for i, item := range arr {
			h, err := td.encodeValue(elemType, item, nil)
			if err != nil {
				return nil, err
			}
			hashes[i] = h
		}
		return td.method.HashMany(hashes), nil
	}
	if !td.rev.isBasicType(typeName) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typeName)
	}
	switch typeName {
	case typeMerkleTree:
		return td.encodeMerkleTree(value, param)
	case typeEnum:
		return td.encodeEnum(value, param)
	case typeSelector:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: selector value has kind %T", ErrSchema, value)
		}
		if f, err := felt.FromHex(s); err == nil {
			return f, nil
		}
		return crypto.SelectorFromName(s), nil
	case typeString:
		if td.rev == RevisionV1 {
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: string value has kind %T", ErrSchema, value)
			}
			return td.method.HashMany(bytearray.FromString(s).ToCalldata()), nil
		}
		return feltFromPrimitive(value)
	case typeI128:
		return signedFromPrimitive(value)
	default:
		// felt, bool, u128, ContractAddress, ClassHash, timestamp,
		// shortstring all share the plain conversion.
		return feltFromPrimitive(value)
	}
}

// encodeMerkleTree hashes an array field as the Merkle root of its encoded
// elements, typed by the enclosing field's contains.
func (td *TypedData) encodeMerkleTree(value any, param *Parameter) (*felt.Felt, error) {
	if param == nil || param.Kind() != KindMerkleTree {
		return nil, fmt.Errorf("%w: merkletree outside a merkletree field", ErrSchema)
	}
	arr, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: merkletree value has kind %T", ErrSchema, value)
	}
	leaves := make([]*felt.Felt, len(arr))
	for i, item := range arr {
		h, err := td.encodeValue(param.Contains, item, nil)
		if err != nil {
			return nil, err
		}
		leaves[i] = h
	}
	return merkle.Root(leaves, td.method)
}

// encodeEnum hashes {variant: [args...]} as
// hash_many(variant_index, enc(arg_1), ..., enc(arg_k)).
func (td *TypedData) encodeEnum(value any, param *Parameter) (*felt.Felt, error) {
	if param == nil || param.Kind() != KindEnum {
		return nil, fmt.Errorf("%w: enum outside an enum field", ErrSchema)
	}
	obj, ok := value.(map[string]any)
	if !ok || len(obj) != 1 {
		return nil, fmt.Errorf("%w: enum value must be a single-entry object", ErrSchema)
	}
	var variantName string
	var rawArgs any
	for k, v := range obj {
		variantName, rawArgs = k, v
	}
	variants := td.all[param.Contains]
	index := -1
	for i, v := range variants {
		if v.Name != variantName {
			continue
		}
		if index >= 0 {
			return nil, fmt.Errorf("%w: variant %q is not unique in %q", ErrSchema, variantName, param.Contains)
		}
		index = i
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: variant %q not found in %q", ErrSchema, variantName, param.Contains)
	}
	variantType := variants[index].Type
	if !isEnumVariantType(variantType) {
		return nil, fmt.Errorf("%w: variant %q has non-tuple type %q", ErrInvalidTypeDefinition, variantName, variantType)
	}
	memberTypes := splitVariantTypes(variantType)
	args, ok := rawArgs.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: enum payload must be an array", ErrSchema)
	}
	if len(args) != len(memberTypes) {
		return nil, fmt.Errorf("%w: variant %q expects %d values, got %d", ErrSchema, variantName, len(memberTypes), len(args))
	}
	elems := make([]*felt.Felt, 0, len(args)+1)
	elems = append(elems, felt.FromUint64(uint64(index)))
	for i, arg := range args {
		h, err := td.encodeValue(memberTypes[i], arg, nil)
		if err != nil {
			return nil, err
		}
		elems = append(elems, h)
	}
	return td.method.HashMany(elems), nil
}

// feltFromPrimitive converts a JSON leaf to a felt: booleans map to 0/1,
// numbers and decimal strings parse as integers, 0x strings as hex, and any
// other string as a short string. The empty string encodes to zero.
func feltFromPrimitive(value any) (*felt.Felt, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return felt.One(), nil
		}
		return felt.Zero(), nil
	case json.Number:
		i, ok := new(big.Int).SetString(v.String(), 10)
		if !ok {
			return nil, fmt.Errorf("%w: non-integer number %q", ErrSchema, v.String())
		}
		return felt.New(i)
	case float64:
		i, acc := big.NewFloat(v).Int(nil)
		if acc != big.Exact {
			return nil, fmt.Errorf("%w: non-integer number %v", ErrSchema, v)
		}
		return felt.New(i)
	case string:
		if v == "" {
			return felt.Zero(), nil
		}
		if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
			return felt.FromHex(v)
		}
		if isDecimal(v) {
			i, _ := new(big.Int).SetString(v, 10)
			return felt.New(i)
		}
		return felt.FromShortString(v)
	default:
		return nil, fmt.Errorf("%w: value has kind %T", ErrSchema, value)
	}
}

// signedFromPrimitive parses an i128: a signed integer in
// [-2^127, 2^127), mapped into the field through the signed felt
// construction.
func signedFromPrimitive(value any) (*felt.Felt, error) {
	var i *big.Int
	switch v := value.(type) {
	case json.Number:
		parsed, ok := new(big.Int).SetString(v.String(), 10)
		if !ok {
			return nil, fmt.Errorf("%w: non-integer number %q", ErrSchema, v.String())
		}
		i = parsed
	case float64:
		parsed, acc := big.NewFloat(v).Int(nil)
		if acc != big.Exact {
			return nil, fmt.Errorf("%w: non-integer number %v", ErrSchema, v)
		}
		i = parsed
	case string:
		var ok bool
		if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
			i, ok = new(big.Int).SetString(v[2:], 16)
		} else {
			i, ok = new(big.Int).SetString(v, 10)
		}
		if !ok {
			return nil, fmt.Errorf("%w: cannot parse %q as i128", ErrSchema, v)
		}
	default:
		return nil, fmt.Errorf("%w: i128 value has kind %T", ErrSchema, value)
	}
	bound := new(big.Int).Lsh(big.NewInt(1), 127)
	if i.Cmp(new(big.Int).Neg(bound)) < 0 || i.Cmp(bound) >= 0 {
		return nil, fmt.Errorf("%w: %s is not in [-2^127, 2^127)", felt.ErrOutOfRange, i)
	}
	return felt.NewFromSigned(i)
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
