package backend

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lft-ai/lftgen/shared/lfterr"
	"github.com/lft-ai/lftgen/shared/model"
)

func asLfterr(t *testing.T, err error) *lfterr.Error {
	t.Helper()
	var e *lfterr.Error
	require.True(t, errors.As(err, &e), "expected *lfterr.Error, got %T: %v", err, err)
	return e
}

// trainCheckpoint writes a tiny checkpoint whose greedy continuation of
// "ab" is exactly "c" followed by the end-of-turn marker.
func trainCheckpoint(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	ck := model.Train("abc<|im_end|>abc<|im_end|>", 3)
	require.NoError(t, ck.Save(path))
	return path
}

func TestLocalCompleteStripsPromptEcho(t *testing.T) {
	cfg := Config{
		Variant: VariantLocal,
		Model:   trainCheckpoint(t, "primary.ckpt"),
		Greedy:  true,
	}
	b, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	out, err := b.Complete(context.Background(), "ab")
	require.NoError(t, err)
	require.Equal(t, "c", out)
}

func TestLocalFallbackModelLoads(t *testing.T) {
	cfg := Config{
		Variant:       VariantLocal,
		Model:         filepath.Join(t.TempDir(), "missing.ckpt"),
		FallbackModel: trainCheckpoint(t, "fallback.ckpt"),
		Greedy:        true,
	}
	b, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	// The fallback serves transparently.
	srv, ok := b.(interface{ Model() string })
	require.True(t, ok)
	require.Equal(t, cfg.FallbackModel, srv.Model())

	out, err := b.Complete(context.Background(), "ab")
	require.NoError(t, err)
	require.Equal(t, "c", out)
}

func TestLocalSetupErrorAfterFallbackExhausted(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Variant:       VariantLocal,
		Model:         filepath.Join(dir, "missing.ckpt"),
		FallbackModel: filepath.Join(dir, "also-missing.ckpt"),
	}
	_, err := New(cfg, zerolog.Nop())
	require.Error(t, err)
	require.Equal(t, lfterr.KindSetup, lfterr.KindOf(err))
}

func TestLocalCompleteHonorsCanceledContext(t *testing.T) {
	cfg := Config{Variant: VariantLocal, Model: trainCheckpoint(t, "m.ckpt")}
	b, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = b.Complete(ctx, "ab")
	require.Error(t, err)
	require.Equal(t, lfterr.KindInference, lfterr.KindOf(err))
}

func TestLocalGenerationBounded(t *testing.T) {
	// A looping corpus with no end marker: generation must stop at the cap.
	path := filepath.Join(t.TempDir(), "loop.ckpt")
	require.NoError(t, model.Train("abababab", 2).Save(path))

	cfg := Config{
		Variant:      VariantLocal,
		Model:        path,
		MaxNewTokens: 8,
		Greedy:       true,
	}
	b, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	out, err := b.Complete(context.Background(), "ab")
	require.NoError(t, err)
	require.LessOrEqual(t, len(out), 8)
	require.NotEmpty(t, out)
}
