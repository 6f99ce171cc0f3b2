package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInputNotFound    = errors.New("input path not found")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrRunNotFound      = errors.New("run not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)
