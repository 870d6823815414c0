// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/models"
	"golang.org/x/crypto/chacha20poly1305"
)

const transportSeparator = ":"

// TransportCipher is the server-held at-rest layer. It wraps entry passwords
// and flagged custom fields as "hex(nonce):hex(ciphertext)".
//
// It is not zero-knowledge: the server can always open what it sealed. The
// values it wraps are normally vault envelopes already.
type TransportCipher struct {
	aead   cipher.AEAD
	random io.Reader
	logger *logger.Logger
}

// NewTransportCipher parses a 64-character hex key.
func NewTransportCipher(hexKey string, l *logger.Logger) (*TransportCipher, error) {
	key, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransportKey, err)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidTransportKey, chacha20poly1305.KeySize, len(key))
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransportKey, err)
	}
	if l == nil {
		l = logger.Nop()
	}

	return &TransportCipher{aead: aead, random: rand.Reader, logger: l}, nil
}

// Seal wraps s. Empty values are stored as is.
func (t *TransportCipher) Seal(s string) (string, error) {
	if s == "" {
		return s, nil
	}

	nonce := make([]byte, t.aead.NonceSize())
	if _, err := io.ReadFull(t.random, nonce); err != nil {
		return "", fmt.Errorf("%w: read nonce: %w", ErrEncryption, err)
	}
	ct := t.aead.Seal(nil, nonce, []byte(s), nil)

	return hex.EncodeToString(nonce) + transportSeparator + hex.EncodeToString(ct), nil
}

// Open unwraps s. Values that were never sealed, or that fail to open, are
// returned unchanged so rows written before the key was configured stay
// readable.
func (t *TransportCipher) Open(s string) string {
	if s == "" {
		return s
	}

	nonceHex, ctHex, ok := strings.Cut(s, transportSeparator)
	if !ok {
		return s
	}

	nonce, err := hex.DecodeString(nonceHex)
	if err != nil || len(nonce) != t.aead.NonceSize() {
		return s
	}
	ct, err := hex.DecodeString(ctHex)
	if err != nil {
		return s
	}

	pt, err := t.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		t.logger.Warn().Err(err).Str("func", "*TransportCipher.Open").Msg("transport value did not open, returning stored value")
		return s
	}
	return string(pt)
}

// SealEntry returns a copy of e with the password and flagged custom fields
// sealed.
func (t *TransportCipher) SealEntry(e models.Entry) (models.Entry, error) {
	out := e.Clone()

	var err error
	if out.Password, err = t.Seal(out.Password); err != nil {
		return models.Entry{}, fmt.Errorf("password: %w", err)
	}
	for i := range out.CustomFields {
		if !out.CustomFields[i].IsEncrypted {
			continue
		}
		if out.CustomFields[i].Value, err = t.Seal(out.CustomFields[i].Value); err != nil {
			return models.Entry{}, fmt.Errorf("custom field %q: %w", out.CustomFields[i].Name, err)
		}
	}
	return out, nil
}

// OpenEntry is the read-side counterpart of [TransportCipher.SealEntry].
func (t *TransportCipher) OpenEntry(e models.Entry) models.Entry {
	out := e.Clone()
	out.Password = t.Open(out.Password)
	for i := range out.CustomFields {
		if out.CustomFields[i].IsEncrypted {
			out.CustomFields[i].Value = t.Open(out.CustomFields[i].Value)
		}
	}
	return out
}
