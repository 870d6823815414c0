package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Params are the cost parameters of the passcode verifier.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params matches the interactive profile recommended for
// Argon2id: one pass over 64 MiB with four lanes.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
		KeyLen:  32,
	}
}

// Upper bounds for parameters read from a stored verifier. The verifier
// comes from the server, which must not be able to make Unlock exhaust the
// client's memory or CPU.
const (
	maxArgon2Memory  = 4 * 64 * 1024
	maxArgon2Time    = 16
	maxArgon2Threads = 16
	maxArgon2KeyLen  = 64
	maxArgon2SaltLen = 64
)

// passcodeHasher produces and checks the salted one-way verifier stored in
// the user's settings. It is unrelated to the PBKDF2 vault key: the verifier
// can be handed to the server without exposing the key.
type passcodeHasher struct {
	params Argon2Params
	random io.Reader
}

// NewPasscodeHasher returns a [PasscodeHasher] using params.
func NewPasscodeHasher(params Argon2Params) PasscodeHasher {
	return &passcodeHasher{params: params, random: rand.Reader}
}

// Hash returns "$argon2id$v=19$m=..,t=..,p=..$salt$hash" for passcode.
func (h *passcodeHasher) Hash(passcode string) (string, error) {
	if passcode == "" {
		return "", ErrEmptyPasscode
	}

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("%w: read salt: %w", ErrEncryption, err)
	}
	sum := argon2.IDKey([]byte(passcode), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(sum),
	), nil
}

// Verify reports whether passcode matches encoded. The parameters stored in
// encoded win over the hasher's own, so old verifiers keep working after a
// cost change.
func (h *passcodeHasher) Verify(passcode, encoded string) (bool, error) {
	params, salt, want, err := decodePasscodeHash(encoded)
	if err != nil {
		return false, err
	}
	got := argon2.IDKey([]byte(passcode), salt, params.Time, params.Memory, params.Threads, params.KeyLen)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func decodePasscodeHash(encoded string) (Argon2Params, []byte, []byte, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: unexpected format", ErrInvalidPasscodeHash)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidPasscodeHash, err)
	}
	if version != argon2.Version {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidPasscodeHash, version)
	}

	var p Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidPasscodeHash, err)
	}
	if p.Time == 0 || p.Memory == 0 || p.Threads == 0 {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: zero cost parameter", ErrInvalidPasscodeHash)
	}
	if p.Memory > maxArgon2Memory || p.Time > maxArgon2Time || p.Threads > maxArgon2Threads {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: cost m=%d,t=%d,p=%d out of range",
			ErrInvalidPasscodeHash, p.Memory, p.Time, p.Threads)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: salt: %w", ErrInvalidPasscodeHash, err)
	}
	if len(salt) == 0 || len(salt) > maxArgon2SaltLen {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: salt length %d", ErrInvalidPasscodeHash, len(salt))
	}
	sum, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(sum) == 0 || len(sum) > maxArgon2KeyLen {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: hash", ErrInvalidPasscodeHash)
	}
	p.KeyLen = uint32(len(sum))

	return p, salt, sum, nil
}
