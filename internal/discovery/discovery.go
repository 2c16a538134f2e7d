// Package discovery implements source discovery: the recursive, glob- and
// gitignore-aware enumeration of candidate JS/TS files under a project root.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/skrulling/unused-buddy-go/internal/errs"
)

// Options configures a discovery pass.
type Options struct {
	Include    []string
	Exclude    []string
	Extensions []string
}

// Discover walks root and returns the sorted paths (root joined with each
// file's relative path, so absolute whenever root is) of every file
// passing the include/exclude/extension rules. I/O failure on a specific
// directory entry is skipped silently; an invalid glob pattern is fatal.
func Discover(root string, opts Options) ([]string, error) {
	includeSet, err := compileAll(opts.Include)
	if err != nil {
		return nil, &errs.ConfigError{Path: "include", Err: err}
	}
	excludeSet, err := compileAll(opts.Exclude)
	if err != nil {
		return nil, &errs.ConfigError{Path: "exclude", Err: err}
	}

	gi, _ := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))

	var out []string
	_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// best-effort walk: skip this entry, keep going
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if gi != nil && rel != "." && gi.MatchesPath(rel) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if matchAny(excludeSet, rel) {
			return nil
		}
		if !hasAllowedExt(path, opts.Extensions) {
			return nil
		}
		if len(includeSet) > 0 && !matchAny(includeSet, rel) && !strings.HasPrefix(rel, "src/") {
			return nil
		}

		out = append(out, path)
		return nil
	})

	sort.Strings(out)
	return out, nil
}

func compileAll(patterns []string) ([]*globMatcher, error) {
	matchers := make([]*globMatcher, 0, len(patterns))
	for _, p := range patterns {
		m, err := compileGlob(p)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

func matchAny(matchers []*globMatcher, path string) bool {
	for _, m := range matchers {
		if m.match(path) {
			return true
		}
	}
	return false
}

func hasAllowedExt(path string, allowed []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, a := range allowed {
		if a == ext {
			return true
		}
	}
	return false
}
