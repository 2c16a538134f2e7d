// Package domain holds the core data model shared by every analyzer
// component: module surfaces, the import graph, findings, and the removal
// summary. Nothing in this package touches the filesystem, a CLI flag, or a
// config file — those are the job of internal/* and app/*.
package domain

import "sort"

// ImportRef is one distinct specifier appearing in a module. Multiple
// occurrences of the same specifier within a file are merged into a single
// ImportRef: Symbols union, WildcardUse OR, IsDynamicNonLiteral OR.
type ImportRef struct {
	// Raw is the specifier string as written, e.g. "./util", "@/lib/x", "lodash".
	Raw string

	// Symbols is the set of named symbols consumed. "default" encodes a
	// default import.
	Symbols map[string]bool

	// WildcardUse is true if the module is consumed in a way that
	// references the whole namespace: a namespace import, a star
	// re-export, require(...), or a statically-literal dynamic import.
	WildcardUse bool

	// IsDynamicNonLiteral is true when the import is dynamic with a
	// non-literal argument. It yields an Uncertain finding and
	// contributes no edge.
	IsDynamicNonLiteral bool

	// Line is the 1-based source line of the (first-seen) occurrence,
	// used for Uncertain finding locations.
	Line int
}

// SortedSymbols returns Symbols as a sorted slice, for deterministic output.
func (i *ImportRef) SortedSymbols() []string {
	out := make([]string, 0, len(i.Symbols))
	for s := range i.Symbols {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ModuleInfo is extracted per discovered file.
type ModuleInfo struct {
	// FilePath is the canonical absolute path; the identity key used
	// throughout the pipeline.
	FilePath string

	// Exports is the set of exported identifier names. "default" is a
	// valid name.
	Exports map[string]bool

	// Imports is the ordered list of distinct ImportRef, one per specifier.
	Imports []*ImportRef

	// RawSource is the original text, retained for the safety classifier.
	RawSource string
}

// NewModuleInfo returns an empty ModuleInfo for path.
func NewModuleInfo(path string) *ModuleInfo {
	return &ModuleInfo{
		FilePath: path,
		Exports:  make(map[string]bool),
		Imports:  make([]*ImportRef, 0),
	}
}

// ImportRefFor returns the ImportRef for raw, creating and appending one if
// absent. Callers merge additional occurrences of the same specifier into
// the returned ref.
func (m *ModuleInfo) ImportRefFor(raw string, line int) *ImportRef {
	for _, ref := range m.Imports {
		if ref.Raw == raw {
			return ref
		}
	}
	ref := &ImportRef{Raw: raw, Symbols: make(map[string]bool), Line: line}
	m.Imports = append(m.Imports, ref)
	return ref
}

// SortedExports returns Exports as a sorted slice, for deterministic output.
func (m *ModuleInfo) SortedExports() []string {
	out := make([]string, 0, len(m.Exports))
	for e := range m.Exports {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// AliasRule is one entry of a PathMap: an alias pattern and its ordered
// target templates. Pattern may contain at most one "*".
type AliasRule struct {
	Pattern string
	Targets []string
}

// IsWildcard reports whether the rule's pattern contains a "*".
func (r AliasRule) IsWildcard() bool {
	for i := 0; i < len(r.Pattern); i++ {
		if r.Pattern[i] == '*' {
			return true
		}
	}
	return false
}

// PathMap is the path-alias configuration loaded from tsconfig.json.
type PathMap struct {
	// BaseURL is the absolute, joined-with-root base directory, or "" if
	// compilerOptions.baseUrl was absent.
	BaseURL string

	// Rules is the ordered list of (pattern, targets) alias rules. Rules
	// from compilerOptions.paths are sorted by pattern (tsconfig.PathsToRules);
	// the key order written in tsconfig.json is not kept.
	Rules []AliasRule
}

// Edge is a directed import-graph edge: importer -> resolved target file.
type Edge struct {
	Importer string
	Target   string
}

// Graph is the directed module graph plus, per target file, the union of
// symbol names imported from it across all importers. A WildcardUse
// contribution adds the sentinel "*".
type Graph struct {
	Edges           map[string][]Edge
	ImportedSymbols map[string]map[string]bool
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Edges:           make(map[string][]Edge),
		ImportedSymbols: make(map[string]map[string]bool),
	}
}

// AddEdge appends an importer -> target edge to importer's edge list.
func (g *Graph) AddEdge(importer, target string) {
	g.Edges[importer] = append(g.Edges[importer], Edge{Importer: importer, Target: target})
}

// AddImportedSymbols unions symbols (and, if wildcard, the "*" sentinel)
// into target's imported-symbol set.
func (g *Graph) AddImportedSymbols(target string, symbols []string, wildcard bool) {
	set, ok := g.ImportedSymbols[target]
	if !ok {
		set = make(map[string]bool)
		g.ImportedSymbols[target] = set
	}
	for _, s := range symbols {
		set[s] = true
	}
	if wildcard {
		set["*"] = true
	}
}

// FindingKind enumerates the three finding kinds the emitter produces.
type FindingKind string

const (
	KindUnreachableFile FindingKind = "UnreachableFile"
	KindUnusedExport    FindingKind = "UnusedExport"
	KindUncertain       FindingKind = "Uncertain"
)

// Wire returns the abbreviated kind tag used in the JSON wire contract.
func (k FindingKind) Wire() string {
	switch k {
	case KindUnreachableFile:
		return "uf"
	case KindUnusedExport:
		return "ue"
	case KindUncertain:
		return "uc"
	default:
		return string(k)
	}
}

// Finding is one reported issue.
type Finding struct {
	ID         string
	Kind       FindingKind
	File       string
	Symbol     string // optional
	Reason     string
	Line       int // optional, 0 if not applicable
	Col        int // optional
	Confidence float64
	Fixable    bool
}

// SortFindings sorts findings ascending by ID, the sole ordering contract
// exposed to callers.
func SortFindings(findings []Finding) {
	sort.Slice(findings, func(i, j int) bool { return findings[i].ID < findings[j].ID })
}

// RemoveSummary reports the outcome of a removal planning/apply pass.
type RemoveSummary struct {
	Planned      int    `json:"planned"`
	Removed      int    `json:"removed"`
	SkippedRisky int    `json:"skipped_risky"`
	DryRun       bool   `json:"dry_run"`
	FixMode      string `json:"fix_mode"`
}

// ScanResult is the pure output of a scan call.
type ScanResult struct {
	Findings []Finding
}
