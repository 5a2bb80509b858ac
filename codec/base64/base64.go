package base64

import (
	b64 "encoding/base64"

	"github.com/propensive/gastronomy/codec"
)

// Encode renders bytes as standard RFC 4648 base-64 with padding.
func Encode(b []byte) string {
	return b64.StdEncoding.EncodeToString(b)
}

func Decode(s string) ([]byte, error) {
	out, err := b64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, codec.NewDecodeError("invalid base64: %s", err)
	}
	return out, nil
}

// EncodeURL renders bytes in the URL-safe variant: '+' and '/' become '-'
// and '_', and trailing '=' padding is stripped.
func EncodeURL(b []byte) string {
	return b64.RawURLEncoding.EncodeToString(b)
}

func DecodeURL(s string) ([]byte, error) {
	out, err := b64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, codec.NewDecodeError("invalid url-safe base64: %s", err)
	}
	return out, nil
}

type scheme struct{}

func (scheme) Encode(b []byte) string          { return Encode(b) }
func (scheme) Decode(s string) ([]byte, error) { return Decode(s) }

// Codec is the standard padded base-64 scheme.
var Codec = scheme{}

type urlScheme struct{}

func (urlScheme) Encode(b []byte) string          { return EncodeURL(b) }
func (urlScheme) Decode(s string) ([]byte, error) { return DecodeURL(s) }

// URLCodec is the URL-safe unpadded scheme.
var URLCodec = urlScheme{}

var _ codec.Encoder = Codec
var _ codec.Decoder = Codec
var _ codec.Encoder = URLCodec
var _ codec.Decoder = URLCodec
