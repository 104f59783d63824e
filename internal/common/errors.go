package common

import "errors"

var (
	// ErrInvalidInput reports answers or records that break the PHQ-9 invariants.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPersistence reports a rejected local write.
	ErrPersistence = errors.New("persistence error")
	// ErrRemoteUnavailable reports a backend that could not be reached or failed.
	ErrRemoteUnavailable = errors.New("remote unavailable")
	// ErrAuthRequired reports a remote operation attempted without a session.
	ErrAuthRequired = errors.New("authentication required")

	// repository errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// service errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// token errors
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
