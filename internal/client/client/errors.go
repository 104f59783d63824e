package client

import "errors"

var (
	ErrUnavailable           = errors.New("server unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrNotFound              = errors.New("not found on server")
	ErrAlreadyExists         = errors.New("already exists on server")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)
