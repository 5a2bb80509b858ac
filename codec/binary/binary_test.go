package binary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("digit strings", func(t *testing.T) {
		require.Equal(t, "00000001000000100000001100000100", Encode([]byte{1, 2, 3, 4}))
	})

	t.Run("all bits", func(t *testing.T) {
		require.Equal(t, "0000000011111111", Encode([]byte{0x00, 0xff}))
	})

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, "", Encode(nil))
	})
}
