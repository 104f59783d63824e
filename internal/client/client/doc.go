// Package client talks to the Aroha backend and bootstraps the on-device
// database.
//
// Client is the transport-agnostic contract used by the services layer.
// GRPCClient implements it over gRPC: it attaches the access token to every
// call, refreshes an expired token once and retries, and maps status codes to
// the sentinel errors ErrUnavailable, ErrUnauthorized, ErrNotFound and
// ErrAlreadyExists. OfflineClient stands in when no backend is configured.
//
// InitDatabase opens the SQLite file and applies the embedded goose
// migrations.
package client
