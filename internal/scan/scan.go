// Package scan wires discovery, parsing, resolution, graph construction,
// and finding emission into the two external calls the rest of the
// analyzer is built around: Scan and RemoveSafeUnreachable.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/skrulling/unused-buddy-go/domain"
	"github.com/skrulling/unused-buddy-go/internal/discovery"
	"github.com/skrulling/unused-buddy-go/internal/entry"
	"github.com/skrulling/unused-buddy-go/internal/errs"
	"github.com/skrulling/unused-buddy-go/internal/findings"
	"github.com/skrulling/unused-buddy-go/internal/graph"
	"github.com/skrulling/unused-buddy-go/internal/moduleparse"
	"github.com/skrulling/unused-buddy-go/internal/parser"
	"github.com/skrulling/unused-buddy-go/internal/removal"
	"github.com/skrulling/unused-buddy-go/internal/resolver"
	"github.com/skrulling/unused-buddy-go/internal/tsconfig"
)

// Options configures a Scan call. Extensions is used as given: an empty
// list admits no file. An empty Entries list leaves root selection to
// entry.Select's package.json, conventional-default, and first-discovered
// fallbacks.
type Options struct {
	Root       string
	Include    []string
	Exclude    []string
	Extensions []string
	Entries    []string

	// MaxWorkers caps concurrent file parses. 0 means the errgroup limit
	// defaults to runtime.GOMAXPROCS(0), same as leaving it unset.
	MaxWorkers int

	// AliasPatterns overrides/extends tsconfig.json's compilerOptions.paths;
	// rules derived from it take precedence over the ones tsconfig.Load
	// finds on disk when both name the same specifier.
	AliasPatterns map[string][]string
}

// Scan is a pure function over the filesystem state at call time: it
// discovers source files under opts.Root, parses each one, builds the
// import graph, and returns the sorted finding list. It never mutates
// the filesystem.
//
// Scan fails fast: a ConfigError (bad include/exclude glob, malformed
// tsconfig.json) or IoError (a discovered file becomes unreadable
// between discovery and parse) aborts the whole call with no partial
// result. A single file's parse failure does not abort the scan — that
// file contributes no imports or exports and gets no findings.
func Scan(opts Options) (*domain.ScanResult, error) {
	// Every path is keyed absolutely, so a relative root ("." from the CLI)
	// is made absolute before discovery, entry selection, and resolution.
	if absRoot, absErr := filepath.Abs(opts.Root); absErr == nil {
		opts.Root = absRoot
	}

	files, err := discovery.Discover(opts.Root, discovery.Options{
		Include:    opts.Include,
		Exclude:    opts.Exclude,
		Extensions: opts.Extensions,
	})
	if err != nil {
		return nil, err
	}

	pathMap, err := tsconfig.Load(opts.Root)
	if err != nil {
		return nil, err
	}
	if len(opts.AliasPatterns) > 0 {
		pathMap.Rules = append(tsconfig.PathsToRules(opts.AliasPatterns), pathMap.Rules...)
	}

	workers := runtime.GOMAXPROCS(0)
	if opts.MaxWorkers > 0 {
		workers = opts.MaxWorkers
	}
	parsed := make([]*domain.ModuleInfo, len(files))
	parseFailed := make([]bool, len(files))
	eg, _ := errgroup.WithContext(context.Background())
	eg.SetLimit(max(1, workers))
	for i, f := range files {
		i, f := i, f
		eg.Go(func() error {
			text, readErr := os.ReadFile(f)
			if readErr != nil {
				return &errs.IoError{Path: f, Err: readErr}
			}
			ast, parseErr := parser.ParseForLanguage(f, text)
			parseFailed[i] = parseErr != nil || ast == nil
			parsed[i] = moduleparse.Parse(f, string(text), ast)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Files were parsed concurrently but each result is written to its own
	// slot, so this sequential merge is race-free. The map does not keep
	// discovery order; output stays deterministic because each file's edges
	// follow its own import order and findings.Emit sorts by ID. A file whose
	// parse failed is left out, so it yields no findings while still being
	// a valid resolution target for other files' imports.
	modules := make(map[string]*domain.ModuleInfo, len(files))
	for i, f := range files {
		if parseFailed[i] {
			continue
		}
		modules[f] = parsed[i]
	}

	res := resolver.New(opts.Root, files, pathMap, opts.Extensions)
	g := graph.Build(modules, res)

	roots := entry.Select(opts.Root, opts.Entries, files)
	reachable := graph.Reachable(roots, g)

	return &domain.ScanResult{Findings: findings.Emit(modules, g, reachable)}, nil
}

// RemoveSafeUnreachable is the only mutating call in the analyzer. It is
// total: every path through it, including a refused apply, produces a
// RemoveSummary rather than an error.
func RemoveSafeUnreachable(result *domain.ScanResult, apply, confirm bool, remover removal.Remover, diag removal.Diagnostics) domain.RemoveSummary {
	return removal.Plan(result.Findings, apply, confirm, remover, diag)
}
