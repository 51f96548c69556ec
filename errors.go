package mintdb

import "errors"

var (
	// ErrUnsupportedDriver is returned by Open when no backend is
	// registered for the configured driver kind.
	ErrUnsupportedDriver = errors.New("unsupported driver")
	// ErrConnect is returned when the underlying open or ping fails.
	ErrConnect = errors.New("connect failed")
	// ErrNoConnection is returned when an operation requires a current
	// handle and none is open.
	ErrNoConnection = errors.New("no current connection")
	// ErrInvalidConnection is returned when the current handle exists but
	// no longer reports itself valid.
	ErrInvalidConnection = errors.New("connection is not valid")
)
