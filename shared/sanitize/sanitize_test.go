package sanitize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeRemovesFences(t *testing.T) {
	code := "from profissa_lft.host import Host\n\nh1 = Host('h1')"

	cases := []string{
		"```python\n" + code + "\n```",
		"```\n" + code + "\n```",
		"```python\n" + code + "\n```\n",
		"\n\n```python\n" + code + "\n```   \n",
	}
	for _, in := range cases {
		require.Equal(t, code, Sanitize(in))
	}
}

func TestSanitizeFencelessInputTrimmedOnly(t *testing.T) {
	code := "h1 = Host('h1')\nh1.instantiate()"
	require.Equal(t, code, Sanitize("  \n"+code+"\n\n"))
	require.Equal(t, code, Sanitize(code))
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"```python\nfrom profissa_lft.host import Host\n```",
		"```\ncode\n```",
		"plain text",
		"   padded   ",
		"",
		"```python\nno closing fence",
		"no opening fence\n```",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		require.Equal(t, once, Sanitize(once), "input %q", in)
	}
}

func TestSanitizeEmptyAndFenceOnly(t *testing.T) {
	require.Equal(t, "", Sanitize(""))
	require.Equal(t, "", Sanitize("```python\n```"))
	require.Equal(t, "", Sanitize("   \n\t"))
}
