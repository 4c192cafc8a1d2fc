package cipher

import (
	"errors"
)

// Errors reported by key cooking and block transform operations.
var (
	// ErrInvalidKeySize is returned when a raw key is not 16, 24 or 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size: must be 16, 24 or 32 bytes")

	// ErrInvalidBlockLength is returned when a source or destination slice does
	// not hold a full 16-byte block at the requested offset.
	ErrInvalidBlockLength = errors.New("invalid block length: need 16 bytes")

	// ErrOffsetOutOfRange is returned when an offset exceeds its buffer capacity.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrScheduleMismatch is returned when a cooked key's stored round count
	// does not describe a valid round-key schedule.
	ErrScheduleMismatch = errors.New("cooked key round count does not match schedule")
)
