// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the runnable client.
type Client interface {
	// Run executes one command line and blocks until it finishes.
	Run(ctx context.Context, args []string) error

	// Close releases local resources.
	Close() error
}

var _ Client = (*App)(nil)
