// Package model is the in-process substrate for the local inference
// backend: a byte-level tokenizer aware of the ChatML turn markers, and a
// count-based causal language model loaded from checkpoint files.
package model

import "strings"

// Token ID layout:
//
//	0-255: raw bytes
//	256:   <|im_start|>
//	257:   <|im_end|>
//
// Byte tokens round-trip exactly, so Decode(Encode(s)) == s for any s.
const (
	NumBytes  = 256
	ImStartID = 256
	ImEndID   = 257
	VocabSize = 258
)

const (
	imStart = "<|im_start|>"
	imEnd   = "<|im_end|>"
)

// Tokenizer converts between text and token IDs. Stateless.
type Tokenizer struct{}

// Encode converts text to token IDs, mapping the turn markers to their
// dedicated IDs and every other byte to itself.
func (Tokenizer) Encode(text string) []int {
	ids := make([]int, 0, len(text))
	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], imStart):
			ids = append(ids, ImStartID)
			i += len(imStart)
		case strings.HasPrefix(text[i:], imEnd):
			ids = append(ids, ImEndID)
			i += len(imEnd)
		default:
			ids = append(ids, int(text[i]))
			i++
		}
	}
	return ids
}

// Decode converts token IDs back to text. Unknown IDs are skipped.
func (Tokenizer) Decode(ids []int) string {
	var sb strings.Builder
	for _, id := range ids {
		switch {
		case id >= 0 && id < NumBytes:
			sb.WriteByte(byte(id))
		case id == ImStartID:
			sb.WriteString(imStart)
		case id == ImEndID:
			sb.WriteString(imEnd)
		}
	}
	return sb.String()
}
