// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"fmt"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the size of the per-envelope KDF salt.
	SaltSize = 16
	// NonceSize is the AES-GCM nonce size.
	NonceSize = 12
	// KeySize is the derived key size (AES-256).
	KeySize = 32
	// DefaultIterations is the PBKDF2-HMAC-SHA256 work factor.
	DefaultIterations = 100_000
)

// Key is an AES-256-GCM key derived from a passcode. The raw key bytes are
// wiped right after the cipher is built, so a Key can only seal and open.
type Key struct {
	aead cipher.AEAD
}

// DeriveKey derives the vault key for passcode and salt with PBKDF2-HMAC-SHA256
// and [DefaultIterations]. The same inputs always produce the same key.
func DeriveKey(passcode string, salt []byte) (*Key, error) {
	return deriveKey(passcode, salt, DefaultIterations)
}

func deriveKey(passcode string, salt []byte, iterations int) (*Key, error) {
	if passcode == "" {
		return nil, fmt.Errorf("%w: empty passcode", ErrKeyDerivation)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrKeyDerivation, SaltSize, len(salt))
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iterations must be positive", ErrKeyDerivation)
	}

	raw := pbkdf2.Key([]byte(passcode), salt, iterations, KeySize, sha256.New)
	defer memguard.WipeBytes(raw)

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}

	return &Key{aead: gcm}, nil
}

// Seal encrypts plaintext under nonce and appends the result to dst.
func (k *Key) Seal(dst, nonce, plaintext []byte) []byte {
	return k.aead.Seal(dst, nonce, plaintext, nil)
}

// Open authenticates and decrypts ciphertext.
func (k *Key) Open(nonce, ciphertext []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: bad nonce size", ErrAuthenticationFailure)
	}
	pt, err := k.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	}
	return pt, nil
}
