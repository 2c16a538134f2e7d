package discovery

import (
	"fmt"
	"regexp"
	"strings"
)

// globMatcher matches a root-relative, forward-slash path against one glob
// pattern. No ecosystem glob library in the reference corpus is actually
// exercised anywhere (bmatcuk/doublestar appears only as an untouched
// transitive dependency), so this is hand-rolled on top of regexp — see
// DESIGN.md for the grounding note.
type globMatcher struct {
	res []*regexp.Regexp
}

// compileGlob builds a matcher for one pattern. `{a,b,c}` alternation is
// expanded before translation; `**` spans directories, `*` and `?` stay
// within one path segment.
func compileGlob(pattern string) (*globMatcher, error) {
	if strings.Count(pattern, "{") != strings.Count(pattern, "}") {
		return nil, fmt.Errorf("unbalanced brace in glob pattern %q", pattern)
	}
	m := &globMatcher{}
	for _, alt := range expandBraces(pattern) {
		re, err := regexp.Compile(globToRegex(alt))
		if err != nil {
			return nil, err
		}
		m.res = append(m.res, re)
	}
	return m, nil
}

func (m *globMatcher) match(path string) bool {
	for _, re := range m.res {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

func expandBraces(pattern string) []string {
	start := strings.IndexByte(pattern, '{')
	if start < 0 {
		return []string{pattern}
	}
	end := strings.IndexByte(pattern[start:], '}')
	if end < 0 {
		return []string{pattern}
	}
	end += start

	prefix, suffix := pattern[:start], pattern[end+1:]
	alts := strings.Split(pattern[start+1:end], ",")

	var out []string
	for _, a := range alts {
		for _, rest := range expandBraces(suffix) {
			out = append(out, prefix+a+rest)
		}
	}
	return out
}

func globToRegex(pattern string) string {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); {
		switch {
		case strings.HasPrefix(pattern[i:], "**/"):
			b.WriteString("(?:.*/)?")
			i += 3
		case strings.HasPrefix(pattern[i:], "/**"):
			b.WriteString("(?:/.*)?")
			i += 3
		case strings.HasPrefix(pattern[i:], "**"):
			b.WriteString(".*")
			i += 2
		case pattern[i] == '*':
			b.WriteString("[^/]*")
			i++
		case pattern[i] == '?':
			b.WriteString("[^/]")
			i++
		default:
			b.WriteString(regexp.QuoteMeta(string(pattern[i])))
			i++
		}
	}
	b.WriteString("$")
	return b.String()
}
