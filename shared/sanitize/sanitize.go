// Package sanitize cleans raw model output into a plausible source file.
package sanitize

import "strings"

// Sanitize strips one leading and one trailing markdown code-fence line
// (``` or ```python) and trims surrounding whitespace. Idempotent, never
// fails; input without fences comes back trimmed and otherwise unchanged.
//
// Output holding nested or multiple fence blocks is undefined input for
// this pipeline; only the outermost pair is removed.
func Sanitize(raw string) string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "```") {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.HasPrefix(lines[len(lines)-1], "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
