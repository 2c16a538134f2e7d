// Package safety implements the safety classifier: a coarse, line-prefix
// heuristic over a file's raw source that decides whether deleting an
// unreachable file is safe.
package safety

import "strings"

var safePrefixes = []string{
	"import ", "export ", "type ", "interface ", "enum ",
	"const ", "let ", "var ", "function ", "class ",
}

// HasPossibleSideEffects reports whether source contains a top-level line
// that isn't plainly a declaration or import/export — and so might run
// code when the module is loaded. Blank lines and line-initial //, /*, or *
// comments are ignored. False positives (declaring risky) are preferred to
// false negatives.
func HasPossibleSideEffects(source string) bool {
	for _, line := range strings.Split(source, "\n") {
		l := strings.TrimSpace(line)
		if l == "" || strings.HasPrefix(l, "//") || strings.HasPrefix(l, "/*") || strings.HasPrefix(l, "*") {
			continue
		}

		safe := false
		for _, prefix := range safePrefixes {
			if strings.HasPrefix(l, prefix) {
				safe = true
				break
			}
		}
		if !safe {
			return true
		}
	}
	return false
}
