package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapUnwrapRoundTrip(t *testing.T) {
	in := TopologyRequestedPayload{
		JobID:       "job-1",
		Description: "Create a simple SDN topology with 2 hosts connected to a switch",
		OutputPath:  "out/topology.py",
	}
	raw, err := Wrap(TopologyRequested, in)
	require.NoError(t, err)

	out, err := Unwrap[TopologyRequestedPayload](raw)
	require.NoError(t, err)
	require.Equal(t, in, *out)
}

func TestWrapEnvelopeFields(t *testing.T) {
	raw, err := Wrap(TopologyFailed, TopologyFailedPayload{JobID: "j", Error: "boom", Kind: "inference"})
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	require.NotEmpty(t, env.ID)
	require.Equal(t, TopologyFailed, env.RoutingKey)
	require.False(t, env.Timestamp.IsZero())
}

func TestUnwrapMalformed(t *testing.T) {
	_, err := Unwrap[TopologyGeneratedPayload]([]byte("{not json"))
	require.Error(t, err)
}
