package model

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRNG() *rand.Rand { return rand.New(rand.NewSource(1)) }

func TestTokenizerRoundTrip(t *testing.T) {
	tok := Tokenizer{}
	inputs := []string{
		"",
		"plain ascii text",
		"<|im_start|>system\nhello<|im_end|>\n<|im_start|>assistant\n",
		"embedded <|im_end|> marker",
		"bytes \x00\xff and unicode héllo",
	}
	for _, in := range inputs {
		require.Equal(t, in, tok.Decode(tok.Encode(in)), "input %q", in)
	}
}

func TestTokenizerSpecialIDs(t *testing.T) {
	tok := Tokenizer{}
	ids := tok.Encode("<|im_start|>a<|im_end|>")
	require.Equal(t, []int{ImStartID, int('a'), ImEndID}, ids)
}

func TestTrainAndSampleStaysInVocab(t *testing.T) {
	corpus := "h1 = Host('h1')\nh1.instantiate()\n<|im_end|>"
	ck := Train(corpus, 3)
	require.Equal(t, 3, ck.Order)
	require.NotEmpty(t, ck.Counts)

	lm := &LM{ckpt: ck, rng: newTestRNG()}
	out := lm.Generate(Tokenizer{}.Encode("h1"), Params{
		MaxNewTokens: 64, Temperature: 0.1, TopP: 0.95, Sample: true,
	}, ImEndID)
	require.NotEmpty(t, out)
	require.LessOrEqual(t, len(out), 64)
	for _, id := range out {
		require.GreaterOrEqual(t, id, 0)
		require.Less(t, id, VocabSize)
	}
}

func TestGenerateStopsOnStopToken(t *testing.T) {
	// A corpus where every continuation leads to the end marker.
	ck := Train("ab<|im_end|>", 2)
	lm := &LM{ckpt: ck, rng: newTestRNG()}
	out := lm.Generate(Tokenizer{}.Encode("ab"), Params{
		MaxNewTokens: 128, Temperature: 0.1, TopP: 0.95, Sample: true,
	}, ImEndID)
	require.Equal(t, ImEndID, out[len(out)-1])
	require.Less(t, len(out), 128)
}

func TestGreedyDecodingIsDeterministic(t *testing.T) {
	ck := Train("abcabcabc", 3)
	a := &LM{ckpt: ck, rng: newTestRNG()}
	b := &LM{ckpt: ck, rng: newTestRNG()}
	p := Params{MaxNewTokens: 16, Sample: false}
	ids := Tokenizer{}.Encode("ab")
	require.Equal(t, a.Generate(ids, p, ImEndID), b.Generate(ids, p, ImEndID))
}

func TestCheckpointSaveLoadRoundTrip(t *testing.T) {
	ck := Train("h1.connect(s1)", 4)
	path := filepath.Join(t.TempDir(), "mini.ckpt")
	require.NoError(t, ck.Save(path))

	loaded, err := LoadCheckpoint(path)
	require.NoError(t, err)
	require.Equal(t, ck.Order, loaded.Order)
	require.Equal(t, ck.Counts, loaded.Counts)
}

func TestLoadCheckpointMissing(t *testing.T) {
	_, err := LoadCheckpoint(filepath.Join(t.TempDir(), "nope.ckpt"))
	require.Error(t, err)
}
