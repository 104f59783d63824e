// Package common holds constants, sentinel errors and small helpers shared by
// the Aroha client and server.
package common

// AccessTokenHeaderName is the gRPC metadata key that carries the access token.
const AccessTokenHeaderName = "access_token"

// BearerPrefix prefixes access tokens in the HTTP Authorization header.
const BearerPrefix = "Bearer "
