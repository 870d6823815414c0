package models

import "time"

// OTPPurpose names the flow a one-time code was issued for. A code only
// verifies for the purpose it was sent with. Every purpose targets an
// existing account; registration goes through /api/auth/register.
type OTPPurpose string

const (
	OTPLogin          OTPPurpose = "login"
	OTPForgotPassword OTPPurpose = "forgot-password"
	OTPResetPasscode  OTPPurpose = "reset-passcode"
)

// Valid reports whether p is one of the known purposes.
func (p OTPPurpose) Valid() bool {
	switch p {
	case OTPLogin, OTPForgotPassword, OTPResetPasscode:
		return true
	}
	return false
}

// OTPRequest is the body of POST /api/auth/send-otp.
type OTPRequest struct {
	Email string     `json:"email"`
	Type  OTPPurpose `json:"type"`
}

// OTPVerification is the body of POST /api/auth/verify-otp.
type OTPVerification struct {
	Email string     `json:"email"`
	OTP   string     `json:"otp"`
	Type  OTPPurpose `json:"type"`
}

// OTPCode is a pending code as stored by the server. Only the keyed hash of
// the code is kept.
type OTPCode struct {
	Email     string
	Purpose   OTPPurpose
	CodeHash  string
	ExpiresAt time.Time
	Attempts  int
}
