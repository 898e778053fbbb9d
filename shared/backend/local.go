package backend

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lft-ai/lftgen/shared/lfterr"
	"github.com/lft-ai/lftgen/shared/model"
)

// local completes prompts with an in-process model. The checkpoint is
// loaded once at construction and reused across calls. Generation blocks
// until the token cap or the end-of-turn marker; there is no timeout and
// no mid-generation cancellation.
type local struct {
	loaded string
	params model.Params
	tok    model.Tokenizer
	lm     *model.LM
	log    zerolog.Logger
}

func newLocal(cfg Config, logger zerolog.Logger) (*local, error) {
	checkpoints := []string{cfg.Model}
	if cfg.FallbackModel != "" && cfg.FallbackModel != cfg.Model {
		checkpoints = append(checkpoints, cfg.FallbackModel)
	}

	var (
		lm      *model.LM
		loaded  string
		lastErr error
	)
	for attempt, path := range checkpoints {
		lm, lastErr = model.LoadLM(path)
		if lastErr == nil {
			loaded = path
			break
		}
		logger.Warn().Err(lastErr).Int("attempt", attempt+1).Str("checkpoint", path).
			Msg("model load failed")
	}
	if lm == nil {
		return nil, lfterr.Wrap(lfterr.KindSetup, lastErr, "load model (fallback exhausted)")
	}

	logger.Info().Str("checkpoint", loaded).Msg("local model loaded")
	return &local{
		loaded: loaded,
		params: model.Params{
			MaxNewTokens: cfg.MaxNewTokens,
			Temperature:  cfg.Temperature,
			TopP:         cfg.TopP,
			Sample:       !cfg.Greedy,
		},
		lm:  lm,
		log: logger,
	}, nil
}

// Model reports which checkpoint is actually serving, which may be the
// fallback.
func (l *local) Model() string { return l.loaded }

func (l *local) Complete(ctx context.Context, p string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", lfterr.Wrap(lfterr.KindInference, err, "local inference")
	}

	ids := l.tok.Encode(p)
	gen := l.lm.Generate(ids, l.params, model.ImEndID)
	if n := len(gen); n > 0 && gen[n-1] == model.ImEndID {
		gen = gen[:n-1]
	}

	// Decode the whole sequence, then drop the echoed prompt prefix.
	// Byte-level decoding round-trips exactly, so the slice is safe.
	full := l.tok.Decode(append(ids, gen...))
	return strings.TrimSpace(full[len(p):]), nil
}
