package base32

import (
	"fmt"

	b32 "github.com/multiformats/go-base32"
	"github.com/propensive/gastronomy/codec"
)

// NoPadding disables output padding for an alphabet.
const NoPadding rune = -1

// Alphabet pairs an ordered set of 32 distinct digit characters with a
// padding character. Encoding packs the input as a bit stream, one digit per
// 5 bits, most-significant bit first; padded alphabets extend the final
// group so output length is a multiple of 8.
type Alphabet struct {
	chars string
	pad   rune
	enc   *b32.Encoding
}

func NewAlphabet(chars string, pad rune) (Alphabet, error) {
	if len(chars) != 32 {
		return Alphabet{}, fmt.Errorf("base32 alphabet must have 32 characters, got %d", len(chars))
	}
	seen := [256]bool{}
	for i := 0; i < len(chars); i++ {
		if seen[chars[i]] {
			return Alphabet{}, fmt.Errorf("base32 alphabet has duplicate character %q", chars[i])
		}
		seen[chars[i]] = true
	}
	enc := b32.NewEncoding(chars)
	if pad == NoPadding {
		enc = enc.WithPadding(b32.NoPadding)
	} else {
		enc = enc.WithPadding(pad)
	}
	return Alphabet{chars: chars, pad: pad, enc: enc}, nil
}

func mustAlphabet(chars string, pad rune) Alphabet {
	a, err := NewAlphabet(chars, pad)
	if err != nil {
		panic(err)
	}
	return a
}

var (
	// Default is the RFC 4648 alphabet with '=' padding.
	Default = mustAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", '=')
	// ZBase32 is the z-base-32 alphabet, unpadded.
	ZBase32 = mustAlphabet("ybndrfg8ejkmcpqxot1uwisza345h769", NoPadding)
)

func (a Alphabet) Encode(b []byte) string {
	return a.enc.EncodeToString(b)
}

func (a Alphabet) Decode(s string) ([]byte, error) {
	out, err := a.enc.DecodeString(s)
	if err != nil {
		return nil, codec.NewDecodeError("invalid base32: %s", err)
	}
	return out, nil
}

// Encode renders bytes with the Default alphabet.
func Encode(b []byte) string {
	return Default.Encode(b)
}

func Decode(s string) ([]byte, error) {
	return Default.Decode(s)
}

type scheme struct{ alphabet Alphabet }

func (s scheme) Encode(b []byte) string            { return s.alphabet.Encode(b) }
func (s scheme) Decode(str string) ([]byte, error) { return s.alphabet.Decode(str) }

var Codec = scheme{alphabet: Default}
var ZCodec = scheme{alphabet: ZBase32}

var _ codec.Encoder = Codec
var _ codec.Decoder = Codec
