package base32

import (
	"testing"

	"github.com/propensive/gastronomy/codec"
	"github.com/propensive/gastronomy/testing/helpers"
	"github.com/stretchr/testify/require"
)

func TestDefaultAlphabet(t *testing.T) {
	// RFC 4648 test vectors.
	vectors := []struct {
		in  string
		out string
	}{
		{"", ""},
		{"f", "MY======"},
		{"fo", "MZXQ===="},
		{"foo", "MZXW6==="},
		{"foob", "MZXW6YQ="},
		{"fooba", "MZXW6YTB"},
		{"foobar", "MZXW6YTBOI======"},
	}

	for _, v := range vectors {
		t.Run(v.in, func(t *testing.T) {
			require.Equal(t, v.out, Encode([]byte(v.in)))
			require.Equal(t, []byte(v.in), helpers.Must(Decode(v.out)))
		})
	}
}

func TestZBase32Alphabet(t *testing.T) {
	t.Run("unpadded", func(t *testing.T) {
		require.Equal(t, "ca", ZBase32.Encode([]byte("f")))
		require.Equal(t, "c3zs6aubqe", ZBase32.Encode([]byte("foobar")))
	})

	t.Run("round trip", func(t *testing.T) {
		b := helpers.RandomBytes(100)
		require.Equal(t, b, helpers.Must(ZBase32.Decode(ZBase32.Encode(b))))
	})
}

func TestDecodeFailure(t *testing.T) {
	_, err := Decode("0189====")
	require.Error(t, err)
	require.True(t, codec.IsDecodeError(err))
}

func TestNewAlphabet(t *testing.T) {
	t.Run("wrong size", func(t *testing.T) {
		_, err := NewAlphabet("ABC", '=')
		require.Error(t, err)
	})

	t.Run("duplicate character", func(t *testing.T) {
		_, err := NewAlphabet("AACDEFGHIJKLMNOPQRSTUVWXYZ234567", '=')
		require.Error(t, err)
	})

	t.Run("custom padding", func(t *testing.T) {
		a := helpers.Must(NewAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", '*'))
		require.Equal(t, "MY******", a.Encode([]byte("f")))
	})
}
