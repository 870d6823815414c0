package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// Username is the display name of the user.
	Username string `json:"username"`

	// Password carries the plaintext account password on register/login
	// requests only. It is never persisted and never returned.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// Settings holds per-user preferences, including the passcode verifier.
	Settings UserSettings `json:"settings"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// DefaultAutoLockMinutes is the idle timeout applied to new accounts.
const DefaultAutoLockMinutes = 5

// UserSettings holds per-user application preferences.
type UserSettings struct {
	// BiometricEnabled reports whether the user opted into biometric unlock.
	BiometricEnabled bool `json:"biometric_enabled"`

	// AutoLockTimer is the idle timeout in minutes. Zero disables auto-lock.
	AutoLockTimer int `json:"auto_lock_timer"`

	// HasCompletedOnboarding is set once the first passcode was created.
	HasCompletedOnboarding bool `json:"has_completed_onboarding"`

	// MasterPasscodeHash is the salted one-way verifier of the vault passcode.
	// The server stores it opaquely and can not derive the vault key from it.
	MasterPasscodeHash string `json:"master_passcode_hash,omitempty"`
}

// DefaultUserSettings returns settings assigned to freshly registered users.
func DefaultUserSettings() UserSettings {
	return UserSettings{AutoLockTimer: DefaultAutoLockMinutes}
}

// SettingsUpdate is a partial update of [UserSettings]. Nil fields are left
// untouched.
type SettingsUpdate struct {
	BiometricEnabled       *bool   `json:"biometric_enabled,omitempty"`
	AutoLockTimer          *int    `json:"auto_lock_timer,omitempty"`
	HasCompletedOnboarding *bool   `json:"has_completed_onboarding,omitempty"`
	MasterPasscodeHash     *string `json:"master_passcode_hash,omitempty"`
}

// Apply returns a copy of s with all non-nil fields of u applied.
func (u SettingsUpdate) Apply(s UserSettings) UserSettings {
	if u.BiometricEnabled != nil {
		s.BiometricEnabled = *u.BiometricEnabled
	}
	if u.AutoLockTimer != nil {
		s.AutoLockTimer = *u.AutoLockTimer
	}
	if u.HasCompletedOnboarding != nil {
		s.HasCompletedOnboarding = *u.HasCompletedOnboarding
	}
	if u.MasterPasscodeHash != nil {
		s.MasterPasscodeHash = *u.MasterPasscodeHash
	}
	return s
}

// IsEmpty reports whether the update carries no changes.
func (u SettingsUpdate) IsEmpty() bool {
	return u.BiometricEnabled == nil && u.AutoLockTimer == nil &&
		u.HasCompletedOnboarding == nil && u.MasterPasscodeHash == nil
}
