package failure

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFailure(t *testing.T) {
	t.Run("name and message", func(t *testing.T) {
		err := New("DecodeError", "invalid character %q at position %d", byte('z'), 4)
		require.Equal(t, "DecodeError", err.Name())
		require.Equal(t, `invalid character 'z' at position 4`, err.Error())
	})

	t.Run("captures the construction stack", func(t *testing.T) {
		err := New("DecodeError", "boom")
		require.Contains(t, err.Stack(), "failure_test.go")
	})
}

func TestName(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		require.Equal(t, "PemParseError", Name(New("PemParseError", "boom")))
	})

	t.Run("through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("parsing credentials: %w", New("PemParseError", "boom"))
		require.Equal(t, "PemParseError", Name(wrapped))
	})

	t.Run("unnamed error", func(t *testing.T) {
		require.Equal(t, "", Name(errors.New("boom")))
	})
}
