// Package prompt assembles the inference prompt for topology generation.
// The prompt is a ChatML turn sequence: system instructions, the fixed
// few-shot exemplars, the user request, and an open assistant turn the
// model continues from.
package prompt

import "strings"

// ChatML turn markers. The local backend stops generation on TurnEnd and
// the sanitizer assumes completions were produced against this format.
const (
	TurnStart = "<|im_start|>"
	TurnEnd   = "<|im_end|>"
)

// AssistantOpener is the final segment of every prompt — the point where
// generation continues.
const AssistantOpener = TurnStart + "assistant\n"

// Exemplar is one fixed (request, expected code) demonstration pair.
type Exemplar struct {
	User      string
	Assistant string
}

// Template composes the fixed system instructions and exemplars with a
// user request. The zero value is not usable; call New.
type Template struct {
	system    string
	exemplars []Exemplar
}

// New returns the topology-generation template with the canned system
// instructions and exemplars.
func New() *Template {
	return &Template{system: systemPrompt, exemplars: exemplars()}
}

// Exemplars returns the fixed demonstration pairs. The returned slice is a
// copy; the template's own content never changes.
func (t *Template) Exemplars() []Exemplar {
	out := make([]Exemplar, len(t.exemplars))
	copy(out, t.exemplars)
	return out
}

// Build produces the full prompt for one request. Pure function of the
// template content and the argument: identical input, identical output.
// An empty request is accepted here — rejecting it is the caller's job.
func (t *Template) Build(request string) string {
	var sb strings.Builder

	sb.WriteString(TurnStart + "system\n")
	sb.WriteString(t.system)
	sb.WriteString(TurnEnd + "\n")

	for _, ex := range t.exemplars {
		sb.WriteString(TurnStart + "user\n")
		sb.WriteString(ex.User)
		sb.WriteString(TurnEnd + "\n")
		sb.WriteString(TurnStart + "assistant\n")
		sb.WriteString(ex.Assistant)
		sb.WriteString(TurnEnd + "\n")
	}

	sb.WriteString(TurnStart + "user\n")
	sb.WriteString(request)
	sb.WriteString(TurnEnd + "\n")
	sb.WriteString(AssistantOpener)

	return sb.String()
}
