// Package config provides configuration loading, merging, and validation
// facilities for the lockr server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//
// Fields still empty after merging get the Default* values. The main entry
// points are [GetStructuredConfig] for the server and [GetClientConfig] for
// the client.
package config
