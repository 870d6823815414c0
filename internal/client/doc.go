// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the lockr command line client: the local SQLite
// cache, the HTTP server adapter, the vault session and the command tree.
package client
