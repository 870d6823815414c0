// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastEnvelope keeps PBKDF2 cheap so the tests stay quick. The wire format is
// identical to the production codec.
func fastEnvelope() *Envelope {
	return NewEnvelope(WithIterations(1000))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

// ── round trip ──────────────────────────────────────────────────────────────

// TestEnvelope_RoundTrip verifies that decrypt(encrypt(p, k), k) == p for a
// range of plaintexts, including multi-byte runes.
func TestEnvelope_RoundTrip(t *testing.T) {
	env := fastEnvelope()

	for _, pt := range []string{"a", "hunter2", "correct horse battery staple", "пароль-密码-🔑", string(bytes.Repeat([]byte("x"), 4096))} {
		ct, err := env.Encrypt(pt, "123456")
		require.NoError(t, err)
		assert.NotEqual(t, pt, ct)
		assert.True(t, LooksLikeEnvelope(ct))

		assert.Equal(t, pt, env.Decrypt(ct, "123456"))
	}
	assert.Zero(t, env.Failures())
}

// TestEnvelope_WireLayout verifies salt ‖ nonce ‖ ct+tag sizing.
func TestEnvelope_WireLayout(t *testing.T) {
	env := fastEnvelope()

	ct, err := env.Encrypt("hunter2", "123456")
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(ct)
	require.NoError(t, err)
	assert.Len(t, blob, SaltSize+NonceSize+len("hunter2")+16)
}

// TestEnvelope_NonDeterministic verifies that two encryptions of the same
// value differ.
func TestEnvelope_NonDeterministic(t *testing.T) {
	env := fastEnvelope()

	a, err := env.Encrypt("hunter2", "123456")
	require.NoError(t, err)
	b, err := env.Encrypt("hunter2", "123456")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, "hunter2", env.Decrypt(a, "123456"))
	assert.Equal(t, "hunter2", env.Decrypt(b, "123456"))
}

// ── passthrough ─────────────────────────────────────────────────────────────

// TestEnvelope_EmptyPassthrough verifies that empty plaintext or an empty
// passcode is returned unchanged in both directions.
func TestEnvelope_EmptyPassthrough(t *testing.T) {
	env := fastEnvelope()

	ct, err := env.Encrypt("", "123456")
	require.NoError(t, err)
	assert.Equal(t, "", ct)

	ct, err = env.Encrypt("hunter2", "")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", ct)

	assert.Equal(t, "", env.Decrypt("", "123456"))
	assert.Equal(t, "whatever", env.Decrypt("whatever", ""))
}

// TestEnvelope_WrongKeyPassthrough verifies that the wrong passcode yields
// the envelope unchanged and bumps the failure counter.
func TestEnvelope_WrongKeyPassthrough(t *testing.T) {
	env := fastEnvelope()

	ct, err := env.Encrypt("hunter2", "123456")
	require.NoError(t, err)

	assert.Equal(t, ct, env.Decrypt(ct, "654321"))
	assert.EqualValues(t, 1, env.Failures())

	_, err = env.Open(ct, "654321")
	assert.ErrorIs(t, err, ErrAuthenticationFailure)
}

// TestEnvelope_LegacyPassthrough verifies that values written before the
// vault layer existed render as stored.
func TestEnvelope_LegacyPassthrough(t *testing.T) {
	env := fastEnvelope()

	legacy := []string{
		"hunter2",
		"plain text with spaces",
		"c2hvcnQ=", // valid base64, too short
		base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{7}, 48)),
	}
	for _, v := range legacy {
		assert.Equal(t, v, env.Decrypt(v, "123456"), v)
	}

	_, err := env.Open("c2hvcnQ=", "123456")
	assert.ErrorIs(t, err, ErrEnvelopeDecode)
	_, err = env.Open("not base64!", "123456")
	assert.ErrorIs(t, err, ErrEnvelopeDecode)
}

// TestEnvelope_TamperedCiphertext verifies that flipping a ciphertext bit
// fails authentication.
func TestEnvelope_TamperedCiphertext(t *testing.T) {
	env := fastEnvelope()

	ct, err := env.Encrypt("hunter2", "123456")
	require.NoError(t, err)

	blob, _ := base64.StdEncoding.DecodeString(ct)
	blob[len(blob)-1] ^= 0xFF
	tampered := base64.StdEncoding.EncodeToString(blob)

	_, err = env.Open(tampered, "123456")
	assert.ErrorIs(t, err, ErrAuthenticationFailure)
	assert.Equal(t, tampered, env.Decrypt(tampered, "123456"))
}

// ── errors ──────────────────────────────────────────────────────────────────

// TestEnvelope_EncryptPropagatesRandomFailure verifies that encrypt errors
// are returned to the caller.
func TestEnvelope_EncryptPropagatesRandomFailure(t *testing.T) {
	env := NewEnvelope(WithIterations(1000), WithRandom(failingReader{}))

	ct, err := env.Encrypt("hunter2", "123456")
	require.ErrorIs(t, err, ErrEncryption)
	assert.Empty(t, ct)
}

// TestEnvelope_IterationMismatch verifies that the work factor is part of the
// key: an envelope sealed with one count does not open with another.
func TestEnvelope_IterationMismatch(t *testing.T) {
	ct, err := NewEnvelope(WithIterations(1000)).Encrypt("hunter2", "123456")
	require.NoError(t, err)

	_, err = NewEnvelope(WithIterations(2000)).Open(ct, "123456")
	assert.ErrorIs(t, err, ErrAuthenticationFailure)
}

// ── end to end ──────────────────────────────────────────────────────────────

// TestEnvelope_EndToEndDefaultWorkFactor runs the hunter2 / 123456 scenario
// with the production iteration count.
func TestEnvelope_EndToEndDefaultWorkFactor(t *testing.T) {
	if testing.Short() {
		t.Skip("PBKDF2 at full cost")
	}
	env := NewEnvelope()

	ct, err := env.Encrypt("hunter2", "123456")
	require.NoError(t, err)
	assert.NotContains(t, ct, "hunter2")

	assert.Equal(t, "hunter2", env.Decrypt(ct, "123456"))
	assert.Equal(t, ct, env.Decrypt(ct, "000000"))
}
