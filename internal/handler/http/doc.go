// Package http implements the lockr REST API on chi.
//
// Every request gets a trace id and an access log line. Bodies may be gzip
// compressed in both directions and, when a hash key is configured, must be
// signed with the HashSHA256 header. Everything under /api/users,
// /api/categories and /api/entries requires a bearer token; routes that
// name a user in the path are limited to that user.
package http
