package chainkey

import (
	"errors"
	"math"
)

// MaxIndex is the highest chain index that can be persisted and restored.
const MaxIndex = math.MaxUint32

var (
	// ErrInvalidLength is returned for records and keys of the wrong size.
	ErrInvalidLength = errors.New("chainkey: invalid length")

	// ErrIndexOutOfRange is returned when a chain index doesn't fit a persisted record.
	ErrIndexOutOfRange = errors.New("chainkey: chain index out of range")
)
