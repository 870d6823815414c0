package crypto

import (
	"context"

	"github.com/MKhiriev/go-lockr/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// VaultStage is the client-side, zero-knowledge layer. It runs just before an
// entry leaves the client and right after it arrives.
//
// The passcode is passed on every call: callers take a snapshot from the
// session when the operation starts.
type VaultStage interface {
	// EncryptEntry seals the password, notes and flagged custom fields.
	// The input entry is left untouched.
	EncryptEntry(ctx context.Context, entry models.Entry, passcode string) (models.Entry, error)

	// DecryptEntry opens the same fields. It never fails; values that do
	// not open are kept as stored.
	DecryptEntry(ctx context.Context, entry models.Entry, passcode string) models.Entry

	// DecryptEntries applies DecryptEntry to a list.
	DecryptEntries(ctx context.Context, entries []models.Entry, passcode string) []models.Entry
}

// TransportStage is the server-side at-rest layer: seal on write, open on read.
type TransportStage interface {
	SealEntry(e models.Entry) (models.Entry, error)
	OpenEntry(e models.Entry) models.Entry
}

// PasscodeHasher creates and checks the passcode verifier kept in settings.
type PasscodeHasher interface {
	// Hash returns an encoded, salted verifier for passcode.
	Hash(passcode string) (string, error)

	// Verify reports whether passcode matches encoded. An error means the
	// verifier itself is malformed.
	Verify(passcode, encoded string) (bool, error)
}

var (
	_ VaultStage     = (*FieldCipher)(nil)
	_ TransportStage = (*TransportCipher)(nil)
)
