// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txhash computes Starknet transaction hashes for invoke, declare
// and deploy-account envelopes.
//
// Versions 1 and 2 hash an 8/9-element Pedersen cascade; version 3 hashes a
// Poseidon sequence built from a shared prefix (fee commitment, paymaster
// data, data-availability modes) and a per-kind tail. Every field position
// is fixed by the protocol; version felts are treated as opaque so callers
// may pass query-version values with the high bit set.
package txhash

import (
	"github.com/luxfi/starknet/contracts"
	"github.com/luxfi/starknet/crypto"
	"github.com/luxfi/starknet/felt"
)

// Transaction-kind prefixes, the short-string encodings of the kind names.
var (
	invokePrefix        = felt.MustFromShortString("invoke")
	declarePrefix       = felt.MustFromShortString("declare")
	deployAccountPrefix = felt.MustFromShortString("deploy_account")
)

// InvokeV1Hash hashes a v1 invoke:
// pedersen_on_elements(prefix, version, sender, 0,
// pedersen_on_elements(calldata), max_fee, chain_id, nonce).
func InvokeV1Hash(senderAddress *felt.Felt, calldata []*felt.Felt, maxFee, chainID, nonce, version *felt.Felt) *felt.Felt {
	return v1Hash(invokePrefix, version, senderAddress, calldata, maxFee, chainID, nonce, nil)
}

// DeclareV1Hash hashes a v1 declare; the calldata slot holds the single
// class hash.
func DeclareV1Hash(classHash, senderAddress, maxFee, chainID, nonce, version *felt.Felt) *felt.Felt {
	return v1Hash(declarePrefix, version, senderAddress, []*felt.Felt{classHash}, maxFee, chainID, nonce, nil)
}

// DeclareV2Hash appends the compiled class hash to the v1 shape.
func DeclareV2Hash(classHash, compiledClassHash, senderAddress, maxFee, chainID, nonce, version *felt.Felt) *felt.Felt {
	return v1Hash(declarePrefix, version, senderAddress, []*felt.Felt{classHash}, maxFee, chainID, nonce, compiledClassHash)
}

// DeployAccountV1Hash hashes a v1 deploy-account. The sender address is
// derived from the class hash, salt and constructor calldata, and the
// hashed calldata is [class_hash, salt, constructor_calldata...].
func DeployAccountV1Hash(classHash, salt *felt.Felt, constructorCalldata []*felt.Felt, maxFee, chainID, nonce, version *felt.Felt) *felt.Felt {
	address := contracts.CalculateAddressFromHash(classHash, salt, constructorCalldata)
	calldata := make([]*felt.Felt, 0, len(constructorCalldata)+2)
	calldata = append(calldata, classHash, salt)
	calldata = append(calldata, constructorCalldata...)
	return v1Hash(deployAccountPrefix, version, address, calldata, maxFee, chainID, nonce, nil)
}

func v1Hash(prefix, version, address *felt.Felt, calldata []*felt.Felt, maxFee, chainID, nonce, extra *felt.Felt) *felt.Felt {
	elems := []*felt.Felt{
		prefix,
		version,
		address,
		felt.Zero(), // entry point selector
		crypto.PedersenOnElements(calldata...),
		maxFee,
		chainID,
		nonce,
	}
	if extra != nil {
		elems = append(elems, extra)
	}
	return crypto.PedersenOnElements(elems...)
}

// InvokeV3Hash hashes a v3 invoke:
// poseidon_hash_many(common, h(account_deployment_data), h(calldata)).
func InvokeV3Hash(
	senderAddress *felt.Felt,
	calldata []*felt.Felt,
	chainID, nonce, version *felt.Felt,
	tip felt.Uint64,
	resourceBounds ResourceBoundsMapping,
	paymasterData, accountDeploymentData []*felt.Felt,
	nonceDAMode, feeDAMode DataAvailabilityMode,
) *felt.Felt {
	elems := v3Common(invokePrefix, version, senderAddress, tip, resourceBounds, paymasterData, chainID, nonce, nonceDAMode, feeDAMode)
	elems = append(elems,
		crypto.PoseidonOnElements(accountDeploymentData...),
		crypto.PoseidonOnElements(calldata...),
	)
	return crypto.PoseidonOnElements(elems...)
}

// DeclareV3Hash hashes a v3 declare:
// poseidon_hash_many(common, h(account_deployment_data), class_hash,
// compiled_class_hash).
func DeclareV3Hash(
	classHash, compiledClassHash *felt.Felt,
	senderAddress *felt.Felt,
	chainID, nonce, version *felt.Felt,
	tip felt.Uint64,
	resourceBounds ResourceBoundsMapping,
	paymasterData, accountDeploymentData []*felt.Felt,
	nonceDAMode, feeDAMode DataAvailabilityMode,
) *felt.Felt {
	elems := v3Common(declarePrefix, version, senderAddress, tip, resourceBounds, paymasterData, chainID, nonce, nonceDAMode, feeDAMode)
	elems = append(elems,
		crypto.PoseidonOnElements(accountDeploymentData...),
		classHash,
		compiledClassHash,
	)
	return crypto.PoseidonOnElements(elems...)
}

// DeployAccountV3Hash hashes a v3 deploy-account. The address is derived
// exactly as in v1; the tail is h(constructor_calldata), class_hash, salt.
func DeployAccountV3Hash(
	classHash, salt *felt.Felt,
	constructorCalldata []*felt.Felt,
	chainID, nonce, version *felt.Felt,
	tip felt.Uint64,
	resourceBounds ResourceBoundsMapping,
	paymasterData []*felt.Felt,
	nonceDAMode, feeDAMode DataAvailabilityMode,
) *felt.Felt {
	address := contracts.CalculateAddressFromHash(classHash, salt, constructorCalldata)
	elems := v3Common(deployAccountPrefix, version, address, tip, resourceBounds, paymasterData, chainID, nonce, nonceDAMode, feeDAMode)
	elems = append(elems,
		crypto.PoseidonOnElements(constructorCalldata...),
		classHash,
		salt,
	)
	return crypto.PoseidonOnElements(elems...)
}

// v3Common builds the shared prefix of every v3 hash.
func v3Common(
	prefix, version, address *felt.Felt,
	tip felt.Uint64,
	resourceBounds ResourceBoundsMapping,
	paymasterData []*felt.Felt,
	chainID, nonce *felt.Felt,
	nonceDAMode, feeDAMode DataAvailabilityMode,
) []*felt.Felt {
	return []*felt.Felt{
		prefix,
		version,
		address,
		crypto.PoseidonOnElements(resourceBounds.feeFields(tip)...),
		crypto.PoseidonOnElements(paymasterData...),
		chainID,
		nonce,
		packDataAvailabilityModes(nonceDAMode, feeDAMode),
	}
}
