package hash

import (
	"testing"

	"github.com/propensive/gastronomy/failure"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	t.Run("resolves every algorithm", func(t *testing.T) {
		for _, a := range algorithms {
			resolved, err := ByName(a.Name())
			require.NoError(t, err)
			require.Equal(t, a, resolved)
		}
	})

	t.Run("unrecognized name", func(t *testing.T) {
		_, err := ByName("WHIRLPOOL")
		require.Error(t, err)
		require.Equal(t, InvalidAlgorithmName, failure.Name(err))
	})
}

func TestAccumulator(t *testing.T) {
	t.Run("digest size", func(t *testing.T) {
		for _, a := range algorithms {
			acc := a.Init()
			acc.Append([]byte("some input"))
			require.Len(t, acc.Finalize(), a.Size(), a.Name())
		}
	})

	t.Run("chunked appends equal one append", func(t *testing.T) {
		for _, a := range algorithms {
			whole := a.Init()
			whole.Append([]byte("some input"))

			chunked := a.Init()
			chunked.Append([]byte("some "))
			chunked.Append([]byte("input"))

			require.Equal(t, whole.Finalize(), chunked.Finalize(), a.Name())
		}
	})

	t.Run("append order is significant", func(t *testing.T) {
		ab := SHA256{}.Init()
		ab.Append([]byte("a"))
		ab.Append([]byte("b"))

		ba := SHA256{}.Init()
		ba.Append([]byte("b"))
		ba.Append([]byte("a"))

		require.NotEqual(t, ab.Finalize(), ba.Finalize())
	})

	t.Run("append after finalize panics", func(t *testing.T) {
		for _, a := range []Algorithm{SHA256{}, CRC32{}} {
			acc := a.Init()
			acc.Finalize()
			require.Panics(t, func() { acc.Append([]byte{1}) }, a.Name())
		}
	})

	t.Run("finalize twice panics", func(t *testing.T) {
		for _, a := range []Algorithm{SHA256{}, CRC32{}} {
			acc := a.Init()
			acc.Finalize()
			require.Panics(t, func() { acc.Finalize() }, a.Name())
		}
	})
}

func TestCRC32(t *testing.T) {
	t.Run("check value", func(t *testing.T) {
		// CRC-32/IEEE check input.
		acc := CRC32{}.Init()
		acc.Append([]byte("123456789"))
		require.Equal(t, []byte{0xcb, 0xf4, 0x39, 0x26}, acc.Finalize())
	})

	t.Run("empty input", func(t *testing.T) {
		acc := CRC32{}.Init()
		require.Equal(t, []byte{0, 0, 0, 0}, acc.Finalize())
	})
}

func TestHMAC(t *testing.T) {
	t.Run("pangram vector", func(t *testing.T) {
		sum, err := HMAC(MD5{}, []byte("key"), []byte("The quick brown fox jumps over the lazy dog"))
		require.NoError(t, err)
		require.Equal(t, []byte{
			0x80, 0x07, 0x07, 0x13, 0x46, 0x3e, 0x77, 0x49,
			0xb9, 0x0c, 0x2d, 0xc2, 0x49, 0x11, 0xe2, 0x75,
		}, sum)
	})

	t.Run("tag size", func(t *testing.T) {
		for _, a := range algorithms {
			if a.HmacName() == "" {
				continue
			}
			sum, err := HMAC(a, []byte("key"), []byte("message"))
			require.NoError(t, err)
			require.Len(t, sum, a.Size(), a.Name())
		}
	})

	t.Run("no HMAC variant for CRC32", func(t *testing.T) {
		_, err := HMAC(CRC32{}, []byte("key"), []byte("message"))
		require.Error(t, err)
		require.Equal(t, UnsupportedHmac, failure.Name(err))
	})
}
