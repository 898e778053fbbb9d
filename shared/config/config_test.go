package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lft-ai/lftgen/shared/backend"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LFTGEN_BACKEND", "LFTGEN_MODEL", "LFTGEN_LOCAL_MODEL",
		"LFTGEN_FALLBACK_MODEL", "HF_TOKEN", "HF_ENDPOINT",
		"LFTGEN_TIMEOUT", "AMQP_URL", "LFTGEN_WORKERS", "PORT",
	} {
		// t.Setenv registers the restore; unset so envDefault applies.
		t.Setenv(key, "x")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, backend.VariantRemote, cfg.Variant)
	require.Equal(t, "deepseek-ai/DeepSeek-R1-0528", cfg.Model)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, "8080", cfg.Port)
}

func TestBackendConfigLocalUsesCheckpointPaths(t *testing.T) {
	e := BackendEnv{
		Variant:       backend.VariantLocal,
		Model:         "hosted/ignored",
		LocalModel:    "models/a.ckpt",
		FallbackModel: "models/b.ckpt",
	}
	cfg := e.BackendConfig()
	require.Equal(t, "models/a.ckpt", cfg.Model)
	require.Equal(t, "models/b.ckpt", cfg.FallbackModel)
}

func TestBackendConfigRemote(t *testing.T) {
	e := BackendEnv{
		Variant:  backend.VariantRemote,
		Model:    "deepseek-ai/DeepSeek-R1-0528",
		Token:    "tok",
		Endpoint: "https://example.test",
	}
	cfg := e.BackendConfig()
	require.Equal(t, "deepseek-ai/DeepSeek-R1-0528", cfg.Model)
	require.Equal(t, "tok", cfg.Token)
	require.Empty(t, cfg.FallbackModel)
}
