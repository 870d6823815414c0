// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the lockr command line.
//
// One-shot commands restore the cached session, refresh the vault, ask for
// the passcode when they need plaintext and lock again before exiting. The
// shell command keeps one unlocked session in memory between commands and
// runs the auto-lock job in the background.
package cli
