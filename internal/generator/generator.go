// Package generator produces random passwords from selectable character
// classes.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/MKhiriev/go-lockr/models"
)

// Character classes offered by the generator.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Length bounds accepted by [Generate].
const (
	MinLength = 4
	MaxLength = 128
)

// ErrInvalidLength is returned when the requested length is out of bounds.
var ErrInvalidLength = errors.New("invalid password length")

// Generate returns a password built from the classes enabled in opts. Every
// enabled class is represented at least once. With no class enabled it falls
// back to lowercase letters.
func Generate(opts models.PasswordOptions) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidLength, opts.Length, MinLength, MaxLength)
	}

	sets := classes(opts)
	password := make([]byte, 0, opts.Length)
	for _, set := range sets {
		ch, err := pick(set)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	all := strings.Join(sets, "")
	for len(password) < opts.Length {
		ch, err := pick(all)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

func classes(opts models.PasswordOptions) []string {
	var sets []string
	if opts.Uppercase {
		sets = append(sets, Uppercase)
	}
	if opts.Lowercase {
		sets = append(sets, Lowercase)
	}
	if opts.Numbers {
		sets = append(sets, Digits)
	}
	if opts.Symbols {
		sets = append(sets, Symbols)
	}
	if len(sets) == 0 {
		sets = append(sets, Lowercase)
	}
	return sets
}

func pick(set string) (byte, error) {
	idx, err := randInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[idx], nil
}

func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random index: %w", err)
	}
	return int(v.Int64()), nil
}
