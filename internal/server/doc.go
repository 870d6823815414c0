// Package server runs the lockr HTTP API and the gRPC health service side by
// side and stops both on SIGINT, SIGTERM or SIGQUIT.
package server
