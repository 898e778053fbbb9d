package model

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Checkpoint is the serialized form of a trained model: n-gram order plus
// next-token counts keyed by context.
type Checkpoint struct {
	Order  int
	Counts map[string]map[int]int
}

// contextKey packs token IDs into a compact map key, two bytes per ID.
func contextKey(ids []int) string {
	b := make([]byte, 0, len(ids)*2)
	for _, id := range ids {
		b = append(b, byte(id>>8), byte(id))
	}
	return string(b)
}

// Train builds a checkpoint from a text corpus. order is the n-gram order;
// contexts of length order-1 down to zero are all counted so sampling can
// back off when a long context was never seen.
func Train(corpus string, order int) *Checkpoint {
	if order < 1 {
		order = 1
	}
	ids := Tokenizer{}.Encode(corpus)
	ck := &Checkpoint{Order: order, Counts: make(map[string]map[int]int)}
	for i, next := range ids {
		for n := 0; n < order; n++ {
			if i-n < 0 {
				break
			}
			key := contextKey(ids[i-n : i])
			m := ck.Counts[key]
			if m == nil {
				m = make(map[int]int)
				ck.Counts[key] = m
			}
			m[next]++
		}
	}
	return ck
}

// Save writes the checkpoint to path in gob encoding.
func (c *Checkpoint) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create checkpoint %s: %w", path, err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode checkpoint %s: %w", path, err)
	}
	return nil
}

// LoadCheckpoint reads a gob checkpoint from path.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open checkpoint %s: %w", path, err)
	}
	defer f.Close()
	var ck Checkpoint
	if err := gob.NewDecoder(f).Decode(&ck); err != nil {
		return nil, fmt.Errorf("decode checkpoint %s: %w", path, err)
	}
	if ck.Order < 1 || len(ck.Counts) == 0 {
		return nil, fmt.Errorf("checkpoint %s: empty or malformed", path)
	}
	return &ck, nil
}
