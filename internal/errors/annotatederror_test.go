package errors

import (
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnnotatedError(t *testing.T) {
	err := New("test error", slog.String("id", "123"))
	require.Equal(t, "test error", err.Error())

	// Assert that wrapping sentinel errors works as expected.
	sentinel := NewSentinel("boom")
	require.NotErrorIs(t, err, NewSentinel("boom"))
	wrapped := Wrap(sentinel, "load save", slog.String("key", "current"))
	require.ErrorIs(t, wrapped, sentinel)
	require.Equal(t, "load save: boom", wrapped.Error())

	// Ensure log values are coming through.
	group := err.LogValue().Group()
	require.Contains(t, group, slog.String("id", "123"))

	// Assert there's a valid source.
	sourceIdx := slices.IndexFunc(group, func(attr slog.Attr) bool {
		return attr.Key == "source"
	})
	require.GreaterOrEqual(t, sourceIdx, 0)
	require.Contains(t, group[sourceIdx].Value.String(), "annotatederror_test.go")
}

func TestWrapChain(t *testing.T) {
	sentinel := NewSentinel("no save found")
	inner := Wrap(sentinel, "read primary store")
	outer := Wrap(inner, "seed session")

	require.ErrorIs(t, outer, sentinel)

	var annotated AnnotatedError
	require.True(t, As(outer, &annotated))
	require.Equal(t, "seed session: read primary store: no save found", annotated.Error())
}
