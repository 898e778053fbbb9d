// Package gen orchestrates the topology generation pipeline:
// prompt build → backend completion → sanitize → validate, with optional
// persistence of the result.
package gen

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lft-ai/lftgen/shared/backend"
	"github.com/lft-ai/lftgen/shared/lfterr"
	"github.com/lft-ai/lftgen/shared/prompt"
	"github.com/lft-ai/lftgen/shared/sanitize"
	"github.com/lft-ai/lftgen/shared/validate"
)

// Artifact is the outcome of one generation: the raw completion, the
// sanitized code, and the shallow validity verdict. Immutable once
// returned.
type Artifact struct {
	Raw   string
	Code  string
	Valid bool
}

// Service runs the generation pipeline. Construct once and reuse: the
// backend handle (connection or model) is initialized a single time and
// shared across calls. Calls themselves are stateless end-to-end; whether
// one Service may serve concurrent callers depends entirely on the backend
// handle, which the Service does not synchronize.
type Service struct {
	tmpl    *prompt.Template
	backend backend.Backend
	log     zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger injects the diagnostic logger. Default is a no-op logger; the
// pipeline never reaches for process-global logging state.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New creates a Service over an already-constructed backend.
func New(b backend.Backend, opts ...Option) *Service {
	s := &Service{
		tmpl:    prompt.New(),
		backend: b,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces topology code for a natural-language description.
// Every failure comes back as a generation-kind error wrapping the stage
// that failed; use lfterr.CauseKind to branch on the cause.
func (s *Service) Generate(ctx context.Context, description string) (Artifact, error) {
	s.log.Info().Str("description", description).Msg("generating topology")

	p := s.tmpl.Build(description)
	raw, err := s.backend.Complete(ctx, p)
	if err != nil {
		return Artifact{}, lfterr.Wrap(lfterr.KindGeneration, err, "generate topology")
	}

	code := sanitize.Sanitize(raw)
	art := Artifact{Raw: raw, Code: code, Valid: validate.Validate(code)}

	s.log.Info().Bool("valid", art.Valid).Int("bytes", len(art.Code)).
		Msg("topology generated")
	return art, nil
}
