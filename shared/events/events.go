// Package events defines the message contract published on RabbitMQ.
// The gateway and the generator worker import only this package — no
// direct service-to-service calls.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Routing keys on the lftgen.events topic exchange.
const (
	TopologyRequested = "topology.requested"
	TopologyGenerated = "topology.generated"
	TopologyFailed    = "topology.failed"
)

// Envelope wraps every message with an ID, its routing key, and a
// timestamp.
type Envelope struct {
	ID         string          `json:"id"`
	RoutingKey string          `json:"routing_key"`
	Timestamp  time.Time       `json:"ts"`
	Payload    json.RawMessage `json:"payload"`
}

// Wrap serializes a payload into an enveloped message body.
func Wrap(routingKey string, payload any) ([]byte, error) {
	p, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{
		ID:         uuid.New().String(),
		RoutingKey: routingKey,
		Timestamp:  time.Now(),
		Payload:    p,
	})
}

// Unwrap deserializes an enveloped message body into a payload of type T.
func Unwrap[T any](raw []byte) (*T, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	var t T
	return &t, json.Unmarshal(env.Payload, &t)
}

// ── Payload types ─────────────────────────────────────────────────────────────

// TopologyRequestedPayload asks the generator worker for one topology.
type TopologyRequestedPayload struct {
	JobID       string `json:"job_id"`
	Description string `json:"description"`
	// OutputPath, when set, makes the worker persist the generated code.
	OutputPath string `json:"output_path,omitempty"`
}

// TopologyGeneratedPayload carries a finished artifact.
type TopologyGeneratedPayload struct {
	JobID       string `json:"job_id"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Valid       bool   `json:"valid"`
	Model       string `json:"model"`
	OutputPath  string `json:"output_path,omitempty"`
	ElapsedMS   int64  `json:"elapsed_ms"`
}

// TopologyFailedPayload reports a failed generation with the structured
// cause kind alongside the message.
type TopologyFailedPayload struct {
	JobID       string `json:"job_id"`
	Description string `json:"description"`
	Error       string `json:"error"`
	Kind        string `json:"kind"`
}
