package entity

import "errors"

// Adapters wrap transport failures with these so callers can tell an
// authentication rejection apart from a broken session.
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrTransport      = errors.New("transport failure")
)
