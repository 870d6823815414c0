// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the server handlers and the
// client, which matches on them to recover typed errors from HTTP bodies.
package app

const (
	// MsgInvalidEmailPassword is written for every 401 caused by bad
	// credentials, so a caller can not tell unknown emails from wrong
	// passwords.
	MsgInvalidEmailPassword = "invalid email/password"

	MsgInternalServerError = "Internal Server Error"

	// MsgAccessDenied is returned when the authenticated user targets a
	// resource of another user.
	MsgAccessDenied = "access denied"

	MsgOTPSent           = "OTP sent successfully"
	MsgOTPDeliveryFailed = "failed to send email"
)
