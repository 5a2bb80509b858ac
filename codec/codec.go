package codec

import (
	"github.com/propensive/gastronomy/failure"
)

// DecodeError names every data-dependent decode failure raised by the codec
// subpackages.
const DecodeError = "DecodeError"

// Encoder converts raw bytes to their printable text representation.
type Encoder interface {
	Encode(b []byte) string
}

// Decoder converts printable text back to the raw bytes it represents.
// Malformed input is a recoverable error, never a panic, and no partial
// result is returned on failure.
type Decoder interface {
	Decode(s string) ([]byte, error)
}

// NewDecodeError creates a decode failure with a formatted detail message.
func NewDecodeError(format string, args ...any) error {
	return failure.New(DecodeError, format, args...)
}

// IsDecodeError reports whether the error is a decode failure.
func IsDecodeError(err error) bool {
	return failure.Name(err) == DecodeError
}
