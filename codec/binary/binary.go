package binary

import (
	"strings"

	"github.com/propensive/gastronomy/codec"
)

// Encode renders each byte as its zero-padded 8-digit binary string, with no
// separators. This is a display format; no decoder is defined.
func Encode(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 8)
	for _, c := range b {
		for i := 7; i >= 0; i-- {
			if c>>i&1 == 1 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

type scheme struct{}

func (scheme) Encode(b []byte) string { return Encode(b) }

var Codec = scheme{}

var _ codec.Encoder = Codec
