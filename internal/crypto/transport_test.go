package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTransportKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

// TestNewTransportCipher_KeyValidation verifies that only 32-byte hex keys
// are accepted.
func TestNewTransportCipher_KeyValidation(t *testing.T) {
	for _, key := range []string{"", "zz", "0011", strings.Repeat("ab", 31), strings.Repeat("ab", 33)} {
		_, err := NewTransportCipher(key, nil)
		assert.ErrorIs(t, err, ErrInvalidTransportKey, key)
	}

	_, err := NewTransportCipher(testTransportKey, nil)
	assert.NoError(t, err)
}

// TestTransportCipher_SealOpen verifies the hex(nonce):hex(ct) round trip.
func TestTransportCipher_SealOpen(t *testing.T) {
	tc, err := NewTransportCipher(testTransportKey, nil)
	require.NoError(t, err)

	sealed, err := tc.Seal("hunter2")
	require.NoError(t, err)

	nonce, ct, ok := strings.Cut(sealed, ":")
	require.True(t, ok)
	assert.Len(t, nonce, 24)
	assert.NotEmpty(t, ct)
	assert.Equal(t, "hunter2", tc.Open(sealed))

	again, err := tc.Seal("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again)
}

// TestTransportCipher_Passthrough verifies empty, legacy, malformed and
// foreign values come back unchanged.
func TestTransportCipher_Passthrough(t *testing.T) {
	tc, err := NewTransportCipher(testTransportKey, nil)
	require.NoError(t, err)

	other, err := NewTransportCipher(strings.Repeat("ff", 32), nil)
	require.NoError(t, err)
	foreign, err := other.Seal("hunter2")
	require.NoError(t, err)

	empty, err := tc.Seal("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, v := range []string{"", "legacy", "no:hex", "00:00", "c2FsdA==", foreign} {
		assert.Equal(t, v, tc.Open(v), v)
	}
}

// TestTransportCipher_Entry verifies that only the password and flagged
// custom fields are wrapped.
func TestTransportCipher_Entry(t *testing.T) {
	tc, err := NewTransportCipher(testTransportKey, nil)
	require.NoError(t, err)
	in := sampleEntry()

	sealed, err := tc.SealEntry(in)
	require.NoError(t, err)
	assert.NotEqual(t, in.Password, sealed.Password)
	assert.NotEqual(t, in.CustomFields[0].Value, sealed.CustomFields[0].Value)
	assert.Equal(t, in.CustomFields[1].Value, sealed.CustomFields[1].Value)
	assert.Equal(t, in.Notes, sealed.Notes)
	assert.Equal(t, "hunter2", in.Password)

	assert.Equal(t, in, tc.OpenEntry(sealed))
}
