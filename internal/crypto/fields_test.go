package crypto

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/MKhiriev/go-lockr/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() models.Entry {
	notes := "recovery codes in the safe"
	return models.Entry{
		ID:         "e1",
		CategoryID: "c1",
		Title:      "GitHub",
		Username:   "octocat",
		Password:   "hunter2",
		Notes:      &notes,
		CustomFields: models.CustomFields{
			{ID: "f1", Name: "PIN", Value: "4242", IsEncrypted: true},
			{ID: "f2", Name: "Hint", Value: "cat", IsEncrypted: false},
		},
		Tags: models.Tags{"dev"},
	}
}

// TestFieldCipher_EncryptEntry verifies that only sensitive fields change and
// the caller's copy keeps its plaintext.
func TestFieldCipher_EncryptEntry(t *testing.T) {
	fc := NewFieldCipher(fastEnvelope())
	in := sampleEntry()

	out, err := fc.EncryptEntry(context.Background(), in, "123456")
	require.NoError(t, err)

	assert.True(t, LooksLikeEnvelope(out.Password))
	assert.True(t, LooksLikeEnvelope(*out.Notes))
	assert.True(t, LooksLikeEnvelope(out.CustomFields[0].Value))
	assert.Equal(t, "cat", out.CustomFields[1].Value)
	assert.Equal(t, "GitHub", out.Title)
	assert.Equal(t, "octocat", out.Username)

	// input untouched
	assert.Equal(t, sampleEntry(), in)
}

// TestFieldCipher_RoundTrip verifies decrypt(encrypt(e)) == e.
func TestFieldCipher_RoundTrip(t *testing.T) {
	fc := NewFieldCipher(fastEnvelope())
	in := sampleEntry()

	enc, err := fc.EncryptEntry(context.Background(), in, "123456")
	require.NoError(t, err)

	assert.Equal(t, in, fc.DecryptEntry(context.Background(), enc, "123456"))
}

// TestFieldCipher_NilNotes verifies that an absent note stays absent.
func TestFieldCipher_NilNotes(t *testing.T) {
	fc := NewFieldCipher(fastEnvelope())
	in := sampleEntry()
	in.Notes = nil

	enc, err := fc.EncryptEntry(context.Background(), in, "123456")
	require.NoError(t, err)
	assert.Nil(t, enc.Notes)
}

// TestFieldCipher_WrongPasscodeKeepsStoredValues verifies that decrypt with
// the wrong passcode never fails and leaves every field as stored.
func TestFieldCipher_WrongPasscodeKeepsStoredValues(t *testing.T) {
	env := fastEnvelope()
	fc := NewFieldCipher(env)

	enc, err := fc.EncryptEntry(context.Background(), sampleEntry(), "123456")
	require.NoError(t, err)

	got := fc.DecryptEntry(context.Background(), enc, "000000")
	assert.Equal(t, enc, got)
	assert.EqualValues(t, 3, env.Failures())
}

// TestFieldCipher_LockedPassthrough verifies that an empty passcode leaves
// entries unchanged.
func TestFieldCipher_LockedPassthrough(t *testing.T) {
	fc := NewFieldCipher(fastEnvelope())
	in := sampleEntry()

	enc, err := fc.EncryptEntry(context.Background(), in, "")
	require.NoError(t, err)
	assert.Equal(t, in, enc)
	assert.Equal(t, in, fc.DecryptEntry(context.Background(), in, ""))
}

// TestFieldCipher_EncryptFailure verifies that a field error fails the entry.
func TestFieldCipher_EncryptFailure(t *testing.T) {
	fc := NewFieldCipher(NewEnvelope(WithIterations(1000), WithRandom(failingReader{})))

	_, err := fc.EncryptEntry(context.Background(), sampleEntry(), "123456")
	require.ErrorIs(t, err, ErrEncryption)
	assert.Contains(t, err.Error(), "password")
	assert.Contains(t, err.Error(), "notes")
}

// TestFieldCipher_DecryptEntries verifies order and per-entry independence.
func TestFieldCipher_DecryptEntries(t *testing.T) {
	fc := NewFieldCipher(fastEnvelope())

	first, err := fc.EncryptEntry(context.Background(), sampleEntry(), "123456")
	require.NoError(t, err)
	legacy := sampleEntry()
	legacy.ID = "legacy"

	got := fc.DecryptEntries(context.Background(), []models.Entry{first, legacy}, "123456")
	require.Len(t, got, 2)
	assert.Equal(t, "hunter2", got[0].Password)
	assert.Equal(t, "legacy", got[1].ID)
	assert.Equal(t, "hunter2", got[1].Password)
}

// TestFieldCipher_MixedFieldsInOneEntry verifies that fields of one entry
// are opened independently: a sealed password opens while legacy plaintext
// notes and custom fields next to it are kept as stored.
func TestFieldCipher_MixedFieldsInOneEntry(t *testing.T) {
	fc := NewFieldCipher(fastEnvelope())
	ctx := context.Background()

	sealed, err := fastEnvelope().Encrypt("hunter2", "123456")
	require.NoError(t, err)

	notes := "legacy notes from before encryption"
	stored := models.Entry{
		ID:       "e1",
		Password: sealed,
		Notes:    &notes,
		CustomFields: models.CustomFields{
			{ID: "f1", Name: "PIN", Value: "4242", IsEncrypted: true},
			{ID: "f2", Name: "Hint", Value: "cat"},
		},
	}

	got := fc.DecryptEntry(ctx, stored, "123456")
	assert.Equal(t, "hunter2", got.Password)
	assert.Equal(t, "legacy notes from before encryption", *got.Notes)
	assert.Equal(t, "4242", got.CustomFields[0].Value)
	assert.Equal(t, "cat", got.CustomFields[1].Value)

	// the reverse mix: only the flagged custom field is sealed
	pin, err := fastEnvelope().Encrypt("9999", "123456")
	require.NoError(t, err)
	stored = models.Entry{
		ID:           "e2",
		Password:     "plain-legacy-password",
		CustomFields: models.CustomFields{{ID: "f1", Name: "PIN", Value: pin, IsEncrypted: true}},
	}

	got = fc.DecryptEntry(ctx, stored, "123456")
	assert.Equal(t, "plain-legacy-password", got.Password)
	assert.Equal(t, "9999", got.CustomFields[0].Value)
}

// TestFieldCipher_SiblingFieldsGetFreshRandomness verifies that every field
// sealed in one call has its own salt and nonce, even when the plaintexts
// are equal.
func TestFieldCipher_SiblingFieldsGetFreshRandomness(t *testing.T) {
	fc := NewFieldCipher(fastEnvelope())

	same := "same-secret"
	in := models.Entry{
		ID:       "e1",
		Password: same,
		Notes:    &same,
		CustomFields: models.CustomFields{
			{ID: "f1", Name: "A", Value: same, IsEncrypted: true},
			{ID: "f2", Name: "B", Value: same, IsEncrypted: true},
		},
	}

	out, err := fc.EncryptEntry(context.Background(), in, "123456")
	require.NoError(t, err)

	sealed := []string{out.Password, *out.Notes, out.CustomFields[0].Value, out.CustomFields[1].Value}
	seen := make(map[string]bool, len(sealed))
	for _, s := range sealed {
		blob, err := base64.StdEncoding.DecodeString(s)
		require.NoError(t, err)
		prefix := string(blob[:SaltSize+NonceSize])
		assert.False(t, seen[prefix], "salt and nonce reused across fields")
		seen[prefix] = true
	}
	assert.Len(t, seen, 4)

	assert.Equal(t, in, fc.DecryptEntry(context.Background(), out, "123456"))
}
