package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"stagelist.dev/stagelist/internal/errors"
)

func TestOutOfBoundsError(t *testing.T) {
	err := fmt.Errorf("line 3: %w", errors.NewOutOfBoundsError("delete", 5, 3))

	require.True(t, errors.Is(err, errors.ErrOutOfBounds))
	require.False(t, errors.Is(err, errors.ErrInvalidScript))
	require.EqualError(t, err, "line 3: delete failed: position 5 out of bounds for list of length 3")

	var oob *errors.OutOfBoundsError
	require.True(t, errors.As(err, &oob))
	require.Equal(t, 5, oob.Position)
}

func TestScriptError(t *testing.T) {
	cause := fmt.Errorf("bad digit")
	err := errors.NewScriptError(2, "delete x", "invalid position", cause)

	require.True(t, errors.Is(err, errors.ErrInvalidScript))
	require.ErrorIs(t, err, cause)
	require.EqualError(t, err, `line 2: invalid position ("delete x"): bad digit`)
}
