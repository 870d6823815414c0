// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/MKhiriev/go-lockr/internal/logger"
)

// minEnvelopeSize is the shortest decoded blob that is worth an AEAD attempt:
// salt, nonce and at least one ciphertext byte.
const minEnvelopeSize = SaltSize + NonceSize + 1

// Envelope is the vault codec. It turns a field value into
// base64(salt ‖ nonce ‖ ciphertext+tag) under a key derived from the passcode.
//
// Encrypt failures propagate. Decrypt never fails: any problem yields the
// input unchanged so that values written before the vault layer existed keep
// rendering.
type Envelope struct {
	iterations int
	random     io.Reader
	logger     *logger.Logger

	failures atomic.Int64
}

// EnvelopeOption customises an [Envelope].
type EnvelopeOption func(*Envelope)

// WithLogger sets the logger used for decrypt fallback warnings.
func WithLogger(l *logger.Logger) EnvelopeOption {
	return func(e *Envelope) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithIterations overrides the PBKDF2 work factor. Envelopes only open with
// the iteration count they were sealed with.
func WithIterations(n int) EnvelopeOption {
	return func(e *Envelope) {
		if n > 0 {
			e.iterations = n
		}
	}
}

// WithRandom replaces the source of salts and nonces.
func WithRandom(r io.Reader) EnvelopeOption {
	return func(e *Envelope) {
		if r != nil {
			e.random = r
		}
	}
}

// NewEnvelope builds a codec with [DefaultIterations] and crypto/rand.
func NewEnvelope(opts ...EnvelopeOption) *Envelope {
	e := &Envelope{
		iterations: DefaultIterations,
		random:     rand.Reader,
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encrypt seals plaintext with a fresh salt and nonce. Empty plaintext or an
// empty passcode is returned unchanged.
func (e *Envelope) Encrypt(plaintext, passcode string) (string, error) {
	if plaintext == "" || passcode == "" {
		return plaintext, nil
	}

	blob := make([]byte, SaltSize+NonceSize, SaltSize+NonceSize+len(plaintext)+16)
	if _, err := io.ReadFull(e.random, blob); err != nil {
		return "", fmt.Errorf("%w: read salt and nonce: %w", ErrEncryption, err)
	}
	salt, nonce := blob[:SaltSize], blob[SaltSize:SaltSize+NonceSize]

	key, err := deriveKey(passcode, salt, e.iterations)
	if err != nil {
		return "", err
	}

	blob = key.Seal(blob, nonce, []byte(plaintext))
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open is the strict counterpart of [Envelope.Decrypt]. It returns
// [ErrEnvelopeDecode] or [ErrAuthenticationFailure] instead of falling back.
func (e *Envelope) Open(envelope, passcode string) (string, error) {
	blob, err := decodeEnvelope(envelope)
	if err != nil {
		return "", err
	}

	key, err := deriveKey(passcode, blob[:SaltSize], e.iterations)
	if err != nil {
		return "", err
	}

	pt, err := key.Open(blob[SaltSize:SaltSize+NonceSize], blob[SaltSize+NonceSize:])
	if err != nil {
		return "", err
	}
	return string(pt), nil
}

// Decrypt opens envelope with passcode. Empty input or an empty passcode is
// returned unchanged, and so is any value that fails to decode or
// authenticate. Failures are logged and counted, never returned.
func (e *Envelope) Decrypt(envelope, passcode string) string {
	pt, _ := e.decrypt(envelope, passcode)
	return pt
}

// decrypt applies the fallback policy and reports whether the value was
// actually opened.
func (e *Envelope) decrypt(envelope, passcode string) (string, bool) {
	if envelope == "" || passcode == "" {
		return envelope, true
	}

	pt, err := e.Open(envelope, passcode)
	if err != nil {
		e.failures.Add(1)
		e.logger.Warn().Err(err).Str("func", "*Envelope.Decrypt").Msg("vault decryption failed, returning stored value")
		return envelope, false
	}
	return pt, true
}

// Failures returns how many decrypt calls fell back to the stored value.
func (e *Envelope) Failures() int64 {
	return e.failures.Load()
}

// LooksLikeEnvelope reports whether s has the vault envelope shape. It does
// not prove that s decrypts.
func LooksLikeEnvelope(s string) bool {
	_, err := decodeEnvelope(s)
	return err == nil
}

func decodeEnvelope(s string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnvelopeDecode, err)
	}
	if len(blob) < minEnvelopeSize {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrEnvelopeDecode, len(blob))
	}
	return blob, nil
}
