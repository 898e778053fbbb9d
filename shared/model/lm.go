package model

import (
	"math"
	"math/rand"
	"sort"
)

// LM is a causal language model backed by n-gram counts. Safe for use from
// one goroutine at a time; the generation loop owns it for the duration of
// a call.
type LM struct {
	ckpt *Checkpoint
	rng  *rand.Rand
}

// LoadLM loads a checkpoint from path and wraps it in a sampling model.
func LoadLM(path string) (*LM, error) {
	ck, err := LoadCheckpoint(path)
	if err != nil {
		return nil, err
	}
	return &LM{ckpt: ck, rng: rand.New(rand.NewSource(rand.Int63()))}, nil
}

// Params are the decoding parameters for one generation run.
type Params struct {
	MaxNewTokens int
	Temperature  float64
	TopP         float64
	Sample       bool
}

// Generate extends prompt IDs by up to MaxNewTokens, stopping early when
// stopID is produced. It returns only the newly generated IDs.
func (m *LM) Generate(promptIDs []int, p Params, stopID int) []int {
	ctxLen := m.ckpt.Order - 1
	seq := append([]int(nil), promptIDs...)
	out := make([]int, 0, p.MaxNewTokens)
	for len(out) < p.MaxNewTokens {
		start := len(seq) - ctxLen
		if start < 0 {
			start = 0
		}
		next, ok := m.next(seq[start:], p)
		if !ok {
			break
		}
		out = append(out, next)
		if next == stopID {
			break
		}
		seq = append(seq, next)
	}
	return out
}

// next samples one token, backing off to shorter contexts until counts
// exist. Returns false when even the empty context has no counts.
func (m *LM) next(context []int, p Params) (int, bool) {
	for n := len(context); n >= 0; n-- {
		counts := m.ckpt.Counts[contextKey(context[len(context)-n:])]
		if len(counts) == 0 {
			continue
		}
		return m.sample(counts, p), true
	}
	return 0, false
}

// sample draws from counts after temperature scaling and nucleus
// truncation. With Sample disabled it is plain argmax.
func (m *LM) sample(counts map[int]int, p Params) int {
	type cand struct {
		id int
		w  float64
	}
	cands := make([]cand, 0, len(counts))
	var total float64
	for id, c := range counts {
		w := float64(c)
		if p.Sample && p.Temperature > 0 {
			w = math.Exp(math.Log(w) / p.Temperature)
		}
		cands = append(cands, cand{id, w})
		total += w
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].w != cands[j].w {
			return cands[i].w > cands[j].w
		}
		return cands[i].id < cands[j].id
	})

	if !p.Sample {
		return cands[0].id
	}

	// Nucleus: keep the smallest prefix whose mass reaches TopP.
	cut := len(cands)
	if p.TopP > 0 && p.TopP < 1 {
		var acc float64
		for i, c := range cands {
			acc += c.w / total
			if acc >= p.TopP {
				cut = i + 1
				break
			}
		}
	}
	cands = cands[:cut]
	total = 0
	for _, c := range cands {
		total += c.w
	}

	r := m.rng.Float64() * total
	for _, c := range cands {
		r -= c.w
		if r <= 0 {
			return c.id
		}
	}
	return cands[len(cands)-1].id
}
