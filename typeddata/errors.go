// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package typeddata

import "errors"

var (
	// ErrSchema reports a message value whose JSON shape does not match the
	// declared type: missing field, wrong kind, malformed enum value.
	ErrSchema = errors.New("value does not match typed data schema")

	// ErrUnknownType reports a referenced type that is neither basic,
	// preset nor user-defined.
	ErrUnknownType = errors.New("unknown type")

	// ErrInvalidTypeDefinition reports a types table violating a
	// construction invariant.
	ErrInvalidTypeDefinition = errors.New("invalid type definition")

	// ErrRevisionMismatch reports syntax not permitted in the active
	// revision, such as enums under revision 0.
	ErrRevisionMismatch = errors.New("syntax not allowed in this revision")
)
