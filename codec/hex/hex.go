package hex

import (
	"strings"

	"github.com/propensive/gastronomy/codec"
)

// Alphabet is an ordered set of 16 distinct digit characters. Encoding emits
// two digits per byte, high nibble first; decoding requires strict
// membership in the alphabet.
type Alphabet string

var (
	Upper Alphabet = "0123456789ABCDEF"
	Lower Alphabet = "0123456789abcdef"
)

func (a Alphabet) Encode(b []byte) string {
	out := make([]byte, 0, len(b)*2)
	for _, c := range b {
		out = append(out, a[c>>4], a[c&0x0f])
	}
	return string(out)
}

func (a Alphabet) Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, codec.NewDecodeError("hex input has odd length %d", len(s))
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi := strings.IndexByte(string(a), s[i])
		if hi < 0 {
			return nil, codec.NewDecodeError("invalid hex character %q at position %d", s[i], i)
		}
		lo := strings.IndexByte(string(a), s[i+1])
		if lo < 0 {
			return nil, codec.NewDecodeError("invalid hex character %q at position %d", s[i+1], i+1)
		}
		out[i/2] = byte(hi<<4 | lo)
	}
	return out, nil
}

// Encode renders bytes with the uppercase alphabet.
func Encode(b []byte) string {
	return Upper.Encode(b)
}

// Decode parses standard hex digits of either case.
func Decode(s string) ([]byte, error) {
	return Upper.Decode(strings.ToUpper(s))
}

type scheme struct{}

func (scheme) Encode(b []byte) string          { return Encode(b) }
func (scheme) Decode(s string) ([]byte, error) { return Decode(s) }

var Codec = scheme{}

var _ codec.Encoder = Codec
var _ codec.Decoder = Codec
