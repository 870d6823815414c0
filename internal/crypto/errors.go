// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the crypto package. Callers should match them
// with [errors.Is].
var (
	// ErrKeyDerivation is returned when the KDF receives an empty passcode or
	// a salt of the wrong size. It indicates a caller bug.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrEnvelopeDecode signals that a value is not base64 or is shorter than
	// the minimal envelope. [Envelope.Decrypt] converts it into passthrough.
	ErrEnvelopeDecode = errors.New("envelope decode failed")

	// ErrAuthenticationFailure signals an AEAD tag mismatch: wrong passcode or
	// corrupted data. [Envelope.Decrypt] converts it into passthrough.
	ErrAuthenticationFailure = errors.New("envelope authentication failed")

	// ErrEncryption is returned when randomness or the cipher is unavailable.
	// The affected field must not be persisted.
	ErrEncryption = errors.New("encryption failed")

	// ErrInvalidTransportKey is returned for a transport key that is not
	// 32 hex-encoded bytes.
	ErrInvalidTransportKey = errors.New("invalid transport key")

	// ErrInvalidPasscodeHash is returned when a stored verifier can not be parsed.
	ErrInvalidPasscodeHash = errors.New("invalid passcode hash")

	// ErrEmptyPasscode is returned when hashing an empty passcode.
	ErrEmptyPasscode = errors.New("empty passcode")
)
