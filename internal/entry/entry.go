// Package entry implements the root selector: picking the set of entry
// files a reachability scan starts from.
package entry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

type packageJSON struct {
	Main    string          `json:"main"`
	Module  string          `json:"module"`
	Bin     json.RawMessage `json:"bin"`
	Exports json.RawMessage `json:"exports"`
}

// conventions are tried in order when neither an explicit entry list nor
// package.json yields any existing file.
var conventions = []string{"src/index.ts", "src/index.tsx", "src/index.js", "src/index.jsx"}

// Select returns the deduplicated, sorted list of entry file absolute
// paths, per the root selector's priority order. discovered is the sorted
// set produced by discovery, used only for the final total fallback.
func Select(root string, explicitEntries []string, discovered []string) []string {
	if roots := fromExplicitList(root, explicitEntries); len(roots) > 0 {
		return dedupSort(roots)
	}

	if roots := fromPackageJSON(root); len(roots) > 0 {
		return dedupSort(roots)
	}

	for _, c := range conventions {
		p := filepath.Join(root, c)
		if exists(p) {
			return []string{p}
		}
	}

	// discovered is already sorted lexicographically by discovery.Discover.
	if len(discovered) > 0 {
		return []string{discovered[0]}
	}

	return nil
}

func fromExplicitList(root string, entries []string) []string {
	var out []string
	for _, e := range entries {
		p := e
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, e)
		}
		if exists(p) {
			out = append(out, p)
		}
	}
	return out
}

func fromPackageJSON(root string) []string {
	raw, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil
	}
	var pkg packageJSON
	if err := json.Unmarshal(raw, &pkg); err != nil {
		return nil
	}

	var out []string
	for _, field := range []string{pkg.Main, pkg.Module} {
		if field == "" {
			continue
		}
		if p := filepath.Join(root, field); exists(p) {
			out = append(out, p)
		}
	}

	if s := stringValue(pkg.Bin); s != "" {
		if p := filepath.Join(root, s); exists(p) {
			out = append(out, p)
		}
	}

	out = append(out, exportsEntries(root, pkg.Exports)...)
	return out
}

// stringValue decodes raw as a bare JSON string, returning "" for anything
// else (object form, absent field, null).
func stringValue(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// exportsEntries handles package.json's `exports` field: a bare string, or
// an object whose string-valued members are each a candidate entry.
func exportsEntries(root string, raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	if s := stringValue(raw); s != "" {
		if p := filepath.Join(root, s); exists(p) {
			return []string{p}
		}
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	var out []string
	for _, v := range obj {
		if s := stringValue(v); s != "" {
			if p := filepath.Join(root, s); exists(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dedupSort(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}
