// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the unlocked/locked state of the vault on the client.
//
// While unlocked the passcode lives in a memguard enclave: it is encrypted in
// memory and only decrypted for the moment a caller takes a snapshot. Locking
// drops the enclave synchronously, so every operation started after Lock
// sees an empty passcode and the codec falls back to passthrough.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-lockr/internal/crypto"
	"github.com/awnumar/memguard"
)

// PasscodeLength is the number of digits in a vault passcode.
const PasscodeLength = 6

// State is the lock state of a [Session].
type State int

const (
	Locked State = iota
	Unlocked
)

func (s State) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

// Session tracks the vault passcode and the idle timer.
type Session struct {
	mu       sync.Mutex
	hasher   crypto.PasscodeHasher
	passcode *memguard.Enclave
	idle     time.Duration
	lastSeen time.Time
	onLock   []func()
	now      func() time.Time
}

// Option customises a [Session].
type Option func(*Session)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns a locked session that verifies passcodes with hasher.
func New(hasher crypto.PasscodeHasher, opts ...Option) *Session {
	s := &Session{hasher: hasher, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidatePasscode checks the format of a new passcode.
func ValidatePasscode(passcode string) error {
	if len(passcode) != PasscodeLength {
		return ErrInvalidPasscode
	}
	for _, r := range passcode {
		if r < '0' || r > '9' {
			return ErrInvalidPasscode
		}
	}
	return nil
}

// State reports whether the session is locked.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.passcode == nil {
		return Locked
	}
	return Unlocked
}

// CreatePasscode validates and hashes passcode, then unlocks with it. The
// returned verifier is what gets stored in the user's settings.
func (s *Session) CreatePasscode(passcode string) (string, error) {
	if err := ValidatePasscode(passcode); err != nil {
		return "", err
	}
	hash, err := s.hasher.Hash(passcode)
	if err != nil {
		return "", fmt.Errorf("hash passcode: %w", err)
	}

	s.unlock(passcode)
	return hash, nil
}

// Unlock verifies passcode against storedHash and unlocks on success.
func (s *Session) Unlock(passcode, storedHash string) error {
	if storedHash == "" {
		return ErrNoPasscodeSet
	}
	ok, err := s.hasher.Verify(passcode, storedHash)
	if err != nil {
		return fmt.Errorf("verify passcode: %w", err)
	}
	if !ok {
		return ErrWrongPasscode
	}

	s.unlock(passcode)
	return nil
}

func (s *Session) unlock(passcode string) {
	enclave := memguard.NewEnclave([]byte(passcode))

	s.mu.Lock()
	s.passcode = enclave
	s.lastSeen = s.now()
	s.mu.Unlock()
}

// Lock drops the passcode and runs the OnLock callbacks. Locking a locked
// session is a no-op.
func (s *Session) Lock() {
	s.mu.Lock()
	callbacks := s.lockLocked()
	s.mu.Unlock()

	runCallbacks(callbacks)
}

// lockLocked drops the passcode and returns the callbacks to run once s.mu
// is released. It returns nil when already locked. s.mu must be held.
func (s *Session) lockLocked() []func() {
	if s.passcode == nil {
		return nil
	}
	s.passcode = nil
	return append([]func(){}, s.onLock...)
}

func runCallbacks(callbacks []func()) {
	for _, fn := range callbacks {
		fn()
	}
}

// Passcode returns a copy of the passcode, or "" while locked. Callers take
// one snapshot per operation and pass it down explicitly.
func (s *Session) Passcode() string {
	s.mu.Lock()
	enclave := s.passcode
	s.mu.Unlock()

	if enclave == nil {
		return ""
	}
	buf, err := enclave.Open()
	if err != nil {
		return ""
	}
	defer buf.Destroy()

	return string(buf.Bytes())
}

// Touch records user activity and postpones auto-lock.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = s.now()
	s.mu.Unlock()
}

// SetAutoLock sets the idle timeout. Zero or a negative value disables it.
func (s *Session) SetAutoLock(d time.Duration) {
	s.mu.Lock()
	s.idle = max(d, 0)
	s.mu.Unlock()
}

// AutoLock returns the configured idle timeout.
func (s *Session) AutoLock() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idle
}

// OnLock registers fn to run after every transition to Locked.
func (s *Session) OnLock(fn func()) {
	s.mu.Lock()
	s.onLock = append(s.onLock, fn)
	s.mu.Unlock()
}

// LockIfIdle locks the session when the idle timeout elapsed before now.
// It reports whether it locked. The check and the lock happen in one
// critical section, so activity recorded meanwhile is never overridden.
func (s *Session) LockIfIdle(now time.Time) bool {
	s.mu.Lock()
	if s.passcode == nil || s.idle <= 0 || now.Sub(s.lastSeen) < s.idle {
		s.mu.Unlock()
		return false
	}
	callbacks := s.lockLocked()
	s.mu.Unlock()

	runCallbacks(callbacks)
	return true
}
