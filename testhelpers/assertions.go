// Package testhelpers provides testing utilities for stagelist,
// including generic helpers and staged list assertions.
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stagelist.dev/stagelist/internal/engine"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectList asserts that the requested sequence holds exactly expected.
// A nil or empty expected slice asserts an empty sequence.
func ExpectList(t *testing.T, reader engine.ListReader[string], which engine.Which, expected []string) {
	t.Helper()

	got := reader.Render(which)
	if len(expected) == 0 {
		require.Empty(t, got, "%s list should be empty", which)
	} else {
		require.Equal(t, expected, got, "%s list does not match", which)
	}
	require.Equal(t, len(got), reader.Len(which), "%s list length does not match its elements", which)
}

// ExpectWorking asserts the contents of the working sequence
func ExpectWorking(t *testing.T, reader engine.ListReader[string], expected ...string) {
	t.Helper()
	ExpectList(t, reader, engine.Working, expected)
}

// ExpectSaved asserts the contents of the saved sequence
func ExpectSaved(t *testing.T, reader engine.ListReader[string], expected ...string) {
	t.Helper()
	ExpectList(t, reader, engine.Saved, expected)
}

// ExpectClean asserts that no batch is open
func ExpectClean(t *testing.T, reader engine.ListReader[string]) {
	t.Helper()
	require.Equal(t, engine.Counters{}, reader.Counters(), "batch counters should be zero")
	require.False(t, reader.Dirty())
}
