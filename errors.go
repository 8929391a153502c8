package barcodegen

import "errors"

var (
	// ErrInvalidMessage is returned when a message contains characters the
	// symbology cannot encode or has the wrong length.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrChecksumMismatch is returned in CHECK mode when the supplied check
	// digit differs from the computed one.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrConfiguration is returned when a configuration value is out of range
	// or names something unknown.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrCapacityExceeded is returned when a message cannot fit within the
	// configured symbol bounds.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
