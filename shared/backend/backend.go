// Package backend provides prompt-to-text completion over two
// interchangeable inference providers: the hosted Hugging Face inference
// endpoint and a locally loaded model.
package backend

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lft-ai/lftgen/shared/lfterr"
)

// Backend variants, selected at construction time.
const (
	VariantRemote = "remote"
	VariantLocal  = "local"
)

// DefaultEndpoint is the hosted inference API root.
const DefaultEndpoint = "https://api-inference.huggingface.co"

// Default decoding parameters. These are fixed for topology generation;
// config zero values resolve to them.
const (
	DefaultMaxNewTokens = 1024
	DefaultTemperature  = 0.1
	DefaultTopP         = 0.95
	DefaultTimeout      = 60 * time.Second
)

// Backend is a pluggable inference provider. One call, one completion;
// implementations hold no per-call state, so a single instance may be
// reused across calls. Sharing one instance between concurrent callers is
// only safe when the underlying transport or model handle is — that is the
// caller's call to make.
type Backend interface {
	// Complete returns the raw generated continuation for the prompt.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config selects and parameterizes a backend.
type Config struct {
	// Variant is "remote" or "local".
	Variant string
	// Model is the hosted model identifier (remote) or the checkpoint
	// path (local).
	Model string
	// FallbackModel is the checkpoint tried once when Model fails to load.
	// Local only.
	FallbackModel string
	// Token is the bearer credential for the remote endpoint. When empty,
	// the HF_TOKEN environment variable is consulted. Required iff remote.
	Token string
	// Endpoint overrides the inference API root. Remote only.
	Endpoint string

	MaxNewTokens int
	Temperature  float64
	TopP         float64
	// Greedy disables sampling (argmax decoding). Sampling is on by default.
	Greedy  bool
	Timeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.MaxNewTokens == 0 {
		c.MaxNewTokens = DefaultMaxNewTokens
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.TopP == 0 {
		c.TopP = DefaultTopP
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// New constructs the backend named by cfg.Variant. Remote construction
// fails with a configuration error before any network I/O when the
// credential is missing; local construction loads the model once, retrying
// exactly once with the fallback checkpoint.
func New(cfg Config, logger zerolog.Logger) (Backend, error) {
	cfg = cfg.withDefaults()
	switch cfg.Variant {
	case VariantRemote:
		return newRemote(cfg, logger)
	case VariantLocal:
		return newLocal(cfg, logger)
	default:
		return nil, lfterr.New(lfterr.KindConfiguration, "unknown backend variant %q", cfg.Variant)
	}
}
