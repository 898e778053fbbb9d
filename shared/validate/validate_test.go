package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lft-ai/lftgen/shared/prompt"
)

func TestValidateExemplarCode(t *testing.T) {
	require.True(t, Validate(prompt.SimpleSDNCode))
}

func TestValidateMissingImport(t *testing.T) {
	// Syntactically fine, but never references the component library.
	code := "h1 = Host('h1')\nh1.instantiate()"
	require.False(t, Validate(code))
}

func TestValidateSyntaxErrorWithImport(t *testing.T) {
	// The import reference alone is not enough.
	code := "from profissa_lft.host import Host\nh1 = Host('h1'"
	require.False(t, Validate(code))

	code = "from profissa_lft.host import Host\ndef broken(:\n    pass"
	require.False(t, Validate(code))
}

func TestValidateEmpty(t *testing.T) {
	require.False(t, Validate(""))
}

func TestValidateNeverPanics(t *testing.T) {
	inputs := []string{
		"from profissa_lft\x00\x01\x02",
		"from profissa_lft import \U0001F600\n((((",
	}
	for _, in := range inputs {
		require.NotPanics(t, func() { Validate(in) })
	}
}
