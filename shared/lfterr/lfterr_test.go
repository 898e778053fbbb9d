package lfterr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessagePreserved(t *testing.T) {
	inner := New(KindInference, "status %d: %s", 503, "overloaded")
	outer := Wrap(KindGeneration, inner, "generate topology")

	require.Contains(t, outer.Error(), "status 503: overloaded")
	require.Contains(t, outer.Error(), "generation")
}

func TestKindOf(t *testing.T) {
	err := New(KindConfiguration, "api token required")
	require.Equal(t, KindConfiguration, KindOf(err))

	wrapped := fmt.Errorf("handler: %w", err)
	require.Equal(t, KindConfiguration, KindOf(wrapped))

	require.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	require.Equal(t, KindUnknown, KindOf(nil))
}

func TestCauseKindThroughUmbrella(t *testing.T) {
	inner := &Error{Kind: KindInference, Status: 503, Msg: "bad gateway"}
	umbrella := Wrap(KindGeneration, inner, "generate")

	require.Equal(t, KindGeneration, KindOf(umbrella))
	require.Equal(t, KindInference, CauseKind(umbrella))

	// A bare error keeps its own kind.
	require.Equal(t, KindPersistence, CauseKind(New(KindPersistence, "write")))
}

func TestTransportSubCode(t *testing.T) {
	err := &Error{Kind: KindInference, Transport: true, Err: errors.New("dial tcp: refused")}
	require.True(t, err.Transport)
	require.Zero(t, err.Status)
	require.Equal(t, KindInference, KindOf(err))
}
