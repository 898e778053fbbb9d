// Package validate gates generated topology code before it is handed back
// to the caller.
package validate

import (
	"strings"

	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"
)

// ImportRoot is the component-library import every usable topology must
// reference.
const ImportRoot = "from profissa_lft"

// Validate reports whether code is syntactically valid Python that imports
// the LFT component library. It is a deliberately shallow gate: no check
// that the referenced methods exist or that the topology graph is
// connected. It never returns an error — any parse failure is false.
func Validate(code string) bool {
	if !strings.Contains(code, ImportRoot) {
		return false
	}
	return parses(code)
}

func parses(code string) (ok bool) {
	// The parser reports malformed input through errors, but guard against
	// panics on pathological text so the gate stays a pure boolean.
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_, err := parser.ParseString(code+"\n", py.ExecMode)
	return err == nil
}
