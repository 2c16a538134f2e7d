// Package graph builds the directed import graph and computes reachability
// from a set of root files.
package graph

import (
	"github.com/skrulling/unused-buddy-go/domain"
)

// specifierResolver resolves a raw specifier seen in importer to a
// discovered file's absolute path.
type specifierResolver interface {
	Resolve(importer, raw string) (string, bool)
}

// Build produces the edge list and consumed-symbol map for modules, using
// resolve to turn each ImportRef's raw specifier into a target file.
// Unresolved specifiers contribute no edge; a dynamic-non-literal ImportRef
// contributes no edge either (its Uncertain finding is emitted separately
// by the finding emitter).
func Build(modules map[string]*domain.ModuleInfo, resolve specifierResolver) *domain.Graph {
	g := domain.NewGraph()

	for file, m := range modules {
		for _, ref := range m.Imports {
			if ref.IsDynamicNonLiteral {
				continue
			}
			target, ok := resolve.Resolve(file, ref.Raw)
			if !ok {
				continue
			}
			g.AddEdge(file, target)
			g.AddImportedSymbols(target, ref.SortedSymbols(), ref.WildcardUse)
		}
	}

	return g
}

// Reachable performs an iterative DFS from roots over g and returns the
// visited set. A file absent from g.Edges (zero imports) is treated as
// having no out-edges.
func Reachable(roots []string, g *domain.Graph) map[string]bool {
	visited := make(map[string]bool)
	stack := append([]string(nil), roots...)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		for _, edge := range g.Edges[cur] {
			if !visited[edge.Target] {
				stack = append(stack, edge.Target)
			}
		}
	}

	return visited
}
