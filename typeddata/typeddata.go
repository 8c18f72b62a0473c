// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package typeddata implements Starknet structured off-chain message hashing
// at revisions 0 and 1.
//
// A TypedData instance is validated once at construction; hashing afterwards
// is pure and safe for concurrent use. The message tree stays dynamically
// typed because its schema is only known at runtime, from the user-supplied
// types table.
package typeddata

import (
	"bytes"
	"fmt"
	"strings"

	gjson "github.com/goccy/go-json"

	"github.com/luxfi/starknet/crypto"
	"github.com/luxfi/starknet/felt"
)

var messagePrefix = felt.MustFromShortString("StarkNet Message")

// TypedData is an immutable, validated structured message.
type TypedData struct {
	types       map[string][]Parameter
	primaryType string
	domain      map[string]any
	message     map[string]any
	rev         Revision
	method      crypto.HashMethod

	// all merges user types with the revision presets; typeHashes is the
	// eagerly computed cache, so hashing never mutates shared state.
	all        map[string][]Parameter
	typeHashes map[string]*felt.Felt
}

// New validates the types table against the construction invariants and
// returns a ready-to-hash instance.
func New(types map[string][]Parameter, primaryType string, domain, message map[string]any) (*TypedData, error) {
	if domain == nil {
		return nil, fmt.Errorf("%w: missing domain", ErrSchema)
	}
	if message == nil {
		return nil, fmt.Errorf("%w: missing message", ErrSchema)
	}
	rev, err := revisionFromDomain(domain)
	if err != nil {
		return nil, err
	}
	td := &TypedData{
		types:       types,
		primaryType: primaryType,
		domain:      domain,
		message:     message,
		rev:         rev,
		method:      rev.HashMethod(),
	}
	td.all = make(map[string][]Parameter, len(types))
	for name, params := range types {
		td.all[name] = params
	}
	for name, params := range rev.presetTypes() {
		if _, clash := td.all[name]; !clash {
			td.all[name] = params
		}
	}
	if err := td.validate(); err != nil {
		return nil, err
	}
	td.typeHashes = make(map[string]*felt.Felt, len(td.all))
	for name := range td.all {
		h, err := td.computeTypeHash(name)
		if err != nil {
			return nil, err
		}
		td.typeHashes[name] = h
	}
	return td, nil
}

// Parse decodes the JSON envelope {types, primaryType, domain, message} and
// validates it. Numbers decode as json.Number so large felts survive.
func Parse(data []byte) (*TypedData, error) {
	var raw struct {
		Types       map[string][]Parameter `json:"types"`
		PrimaryType string                 `json:"primaryType"`
		Domain      map[string]any         `json:"domain"`
		Message     map[string]any         `json:"message"`
	}
	dec := gjson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return New(raw.Types, raw.PrimaryType, raw.Domain, raw.Message)
}

// Revision returns the active encoding revision.
func (td *TypedData) Revision() Revision {
	return td.rev
}

// PrimaryType returns the root message type name.
func (td *TypedData) PrimaryType() string {
	return td.primaryType
}

// Domain returns a shallow copy of the domain object.
func (td *TypedData) Domain() map[string]any {
	out := make(map[string]any, len(td.domain))
	for k, v := range td.domain {
		out[k] = v
	}
	return out
}

// Message returns a shallow copy of the message object.
func (td *TypedData) Message() map[string]any {
	out := make(map[string]any, len(td.message))
	for k, v := range td.message {
		out[k] = v
	}
	return out
}

func (td *TypedData) validate() error {
	separator := td.rev.SeparatorName()
	if _, ok := td.types[separator]; !ok {
		return fmt.Errorf("%w: domain separator type %q is not defined", ErrInvalidTypeDefinition, separator)
	}
	presets := td.rev.presetTypes()
	for name, params := range td.types {
		if err := validTypeName(name); err != nil {
			return err
		}
		if td.rev.isBasicType(name) {
			return fmt.Errorf("%w: %q shadows a basic type", ErrInvalidTypeDefinition, name)
		}
		if _, ok := presets[name]; ok {
			return fmt.Errorf("%w: %q shadows a preset type", ErrInvalidTypeDefinition, name)
		}
		for _, p := range params {
			if err := td.validParameter(name, p); err != nil {
				return err
			}
		}
	}
	if _, ok := td.all[td.primaryType]; !ok {
		return fmt.Errorf("%w: primary type %q", ErrUnknownType, td.primaryType)
	}
	reachable := make(map[string]bool)
	for _, root := range []string{td.primaryType, separator} {
		for _, dep := range td.dependencies(root) {
			reachable[dep] = true
		}
	}
	for name := range td.types {
		if !reachable[name] {
			return fmt.Errorf("%w: type %q is referenced by neither the primary type nor the domain separator", ErrInvalidTypeDefinition, name)
		}
	}
	return nil
}

func validTypeName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty type name", ErrInvalidTypeDefinition)
	case isArrayType(name):
		return fmt.Errorf("%w: type name %q ends in *", ErrInvalidTypeDefinition, name)
	case strings.HasPrefix(name, "(") || strings.HasSuffix(name, ")"):
		return fmt.Errorf("%w: type name %q is parenthesised", ErrInvalidTypeDefinition, name)
	case strings.Contains(name, ","):
		return fmt.Errorf("%w: type name %q contains a comma", ErrInvalidTypeDefinition, name)
	}
	return nil
}

func (td *TypedData) validParameter(typeName string, p Parameter) error {
	if p.Type == "" {
		return fmt.Errorf("%w: %s.%s has no type", ErrInvalidTypeDefinition, typeName, p.Name)
	}
	if isEnumVariantType(p.Type) && td.rev != RevisionV1 {
		return fmt.Errorf("%w: enum notation %q in %s.%s", ErrRevisionMismatch, p.Type, typeName, p.Name)
	}
	switch p.Kind() {
	case KindMerkleTree:
		if p.Contains == "" {
			return fmt.Errorf("%w: merkletree field %s.%s has no contains", ErrInvalidTypeDefinition, typeName, p.Name)
		}
		if isArrayType(p.Contains) {
			return fmt.Errorf("%w: merkletree field %s.%s contains array type %q", ErrInvalidTypeDefinition, typeName, p.Name, p.Contains)
		}
	case KindEnum:
		if td.rev != RevisionV1 {
			return fmt.Errorf("%w: enum field %s.%s", ErrRevisionMismatch, typeName, p.Name)
		}
		if _, ok := td.types[p.Contains]; !ok {
			return fmt.Errorf("%w: enum field %s.%s contains undefined type %q", ErrInvalidTypeDefinition, typeName, p.Name, p.Contains)
		}
	case KindStandard:
		if p.Type == typeEnum {
			// bare "enum" without contains
			if td.rev != RevisionV1 {
				return fmt.Errorf("%w: enum field %s.%s", ErrRevisionMismatch, typeName, p.Name)
			}
			return fmt.Errorf("%w: enum field %s.%s has no contains", ErrInvalidTypeDefinition, typeName, p.Name)
		}
	}
	return nil
}

// GetMessageHash computes the final digest bound to the signer account:
// hash_many(short_string("StarkNet Message"), struct_hash(domain), account,
// struct_hash(primaryType, message)).
func (td *TypedData) GetMessageHash(accountAddress *felt.Felt) (*felt.Felt, error) {
	domainHash, err := td.StructHash(td.rev.SeparatorName(), td.domain)
	if err != nil {
		return nil, err
	}
	messageHash, err := td.StructHash(td.primaryType, td.message)
	if err != nil {
		return nil, err
	}
	return td.method.HashMany([]*felt.Felt{messagePrefix, domainHash, accountAddress, messageHash}), nil
}
