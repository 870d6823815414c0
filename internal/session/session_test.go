package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-lockr/internal/crypto"
	"github.com/MKhiriev/go-lockr/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestSession(t *testing.T) (*Session, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	hasher := crypto.NewPasscodeHasher(crypto.Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32})
	return New(hasher, WithClock(clock.Now)), clock
}

// ── transitions ──────────────────────────────────────────────────────────────

// TestSession_StartsLocked verifies a new session hands out no passcode.
func TestSession_StartsLocked(t *testing.T) {
	s, _ := newTestSession(t)

	assert.Equal(t, Locked, s.State())
	assert.Empty(t, s.Passcode())
}

// TestSession_CreatePasscodeUnlocks verifies creation hashes and unlocks.
func TestSession_CreatePasscodeUnlocks(t *testing.T) {
	s, _ := newTestSession(t)

	hash, err := s.CreatePasscode("123456")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotContains(t, hash, "123456")

	assert.Equal(t, Unlocked, s.State())
	assert.Equal(t, "123456", s.Passcode())
}

// TestSession_CreatePasscodeValidation verifies the six digit rule.
func TestSession_CreatePasscodeValidation(t *testing.T) {
	s, _ := newTestSession(t)

	for _, bad := range []string{"", "12345", "1234567", "12345a", "１２３４５６"} {
		_, err := s.CreatePasscode(bad)
		assert.ErrorIs(t, err, ErrInvalidPasscode, bad)
	}
	assert.Equal(t, Locked, s.State())
}

// TestSession_UnlockLock verifies the unlock and lock cycle.
func TestSession_UnlockLock(t *testing.T) {
	s, _ := newTestSession(t)
	hash, err := s.CreatePasscode("123456")
	require.NoError(t, err)
	s.Lock()
	require.Equal(t, Locked, s.State())

	assert.ErrorIs(t, s.Unlock("000000", hash), ErrWrongPasscode)
	assert.Equal(t, Locked, s.State())

	require.NoError(t, s.Unlock("123456", hash))
	assert.Equal(t, "123456", s.Passcode())

	s.Lock()
	assert.Empty(t, s.Passcode())
}

// TestSession_UnlockWithoutPasscode verifies the missing verifier error.
func TestSession_UnlockWithoutPasscode(t *testing.T) {
	s, _ := newTestSession(t)
	assert.ErrorIs(t, s.Unlock("123456", ""), ErrNoPasscodeSet)
}

// TestSession_UnlockMalformedHash verifies that a broken verifier is
// reported rather than treated as a wrong passcode.
func TestSession_UnlockMalformedHash(t *testing.T) {
	s, _ := newTestSession(t)

	err := s.Unlock("123456", "MTIzNDU2")
	require.ErrorIs(t, err, crypto.ErrInvalidPasscodeHash)
	assert.NotErrorIs(t, err, ErrWrongPasscode)
}

// TestSession_HasherFailure verifies that a hasher error keeps the session
// locked.
func TestSession_HasherFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockPasscodeHasher(ctrl)
	hasher.EXPECT().Hash("123456").Return("", errors.New("boom"))

	s := New(hasher)
	_, err := s.CreatePasscode("123456")
	require.Error(t, err)
	assert.Equal(t, Locked, s.State())
}

// TestSession_SnapshotSurvivesLock verifies that a snapshot taken before
// Lock is unaffected, while later snapshots are empty.
func TestSession_SnapshotSurvivesLock(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := s.CreatePasscode("123456")
	require.NoError(t, err)

	snapshot := s.Passcode()
	s.Lock()

	assert.Equal(t, "123456", snapshot)
	assert.Empty(t, s.Passcode())
}

// TestSession_OnLockCallbacks verifies callbacks fire once per transition.
func TestSession_OnLockCallbacks(t *testing.T) {
	s, _ := newTestSession(t)
	calls := 0
	s.OnLock(func() { calls++ })

	s.Lock()
	assert.Zero(t, calls)

	_, err := s.CreatePasscode("123456")
	require.NoError(t, err)
	s.Lock()
	s.Lock()
	assert.Equal(t, 1, calls)
}

// ── auto-lock ────────────────────────────────────────────────────────────────

// TestSession_LockIfIdle verifies the idle timeout and Touch.
func TestSession_LockIfIdle(t *testing.T) {
	s, clock := newTestSession(t)
	s.SetAutoLock(5 * time.Minute)
	_, err := s.CreatePasscode("123456")
	require.NoError(t, err)

	clock.Advance(4 * time.Minute)
	assert.False(t, s.LockIfIdle(clock.Now()))

	s.Touch()
	clock.Advance(4 * time.Minute)
	assert.False(t, s.LockIfIdle(clock.Now()))

	clock.Advance(time.Minute)
	assert.True(t, s.LockIfIdle(clock.Now()))
	assert.Equal(t, Locked, s.State())

	assert.False(t, s.LockIfIdle(clock.Now()))
}

// TestSession_AutoLockDisabled verifies that zero disables auto-lock.
func TestSession_AutoLockDisabled(t *testing.T) {
	s, clock := newTestSession(t)
	s.SetAutoLock(-time.Minute)
	assert.Zero(t, s.AutoLock())
	_, err := s.CreatePasscode("123456")
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	assert.False(t, s.LockIfIdle(clock.Now()))
	assert.Equal(t, Unlocked, s.State())
}

// TestSession_ConcurrentSnapshots verifies Passcode and Lock race safely.
func TestSession_ConcurrentSnapshots(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := s.CreatePasscode("123456")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := s.Passcode()
			assert.True(t, p == "" || p == "123456")
		}()
	}
	s.Lock()
	wg.Wait()
}

// TestSession_LockIfIdleSparesFreshUnlock verifies a tick that races with
// an Unlock never locks the session that Unlock just opened.
func TestSession_LockIfIdleSparesFreshUnlock(t *testing.T) {
	hasher := mock.NewMockPasscodeHasher(gomock.NewController(t))
	hasher.EXPECT().Verify("123456", "stored").Return(true, nil).AnyTimes()

	for range 200 {
		clock := &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
		s := New(hasher, WithClock(clock.Now))
		s.SetAutoLock(time.Minute)
		require.NoError(t, s.Unlock("123456", "stored"))

		clock.Advance(2 * time.Minute)
		tick := clock.Now()

		var wg sync.WaitGroup
		wg.Go(func() { s.LockIfIdle(tick) })
		wg.Go(func() { assert.NoError(t, s.Unlock("123456", "stored")) })
		wg.Wait()

		require.Equal(t, Unlocked, s.State())
	}
}
