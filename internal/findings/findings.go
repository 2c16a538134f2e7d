// Package findings implements the finding emitter: turning parsed modules,
// the import graph, and the reachable set into the three finding kinds.
package findings

import (
	"fmt"

	"github.com/skrulling/unused-buddy-go/domain"
	"github.com/skrulling/unused-buddy-go/internal/safety"
)

// Emit produces the sorted finding list for a completed scan.
func Emit(modules map[string]*domain.ModuleInfo, g *domain.Graph, reachable map[string]bool) []domain.Finding {
	var out []domain.Finding

	for file, m := range modules {
		for _, ref := range m.Imports {
			if !ref.IsDynamicNonLiteral {
				continue
			}
			out = append(out, domain.Finding{
				ID:         fmt.Sprintf("uc:%s:%s", file, ref.Raw),
				Kind:       domain.KindUncertain,
				File:       file,
				Reason:     "dynamic_import_non_literal",
				Line:       ref.Line,
				Confidence: 0.3,
				Fixable:    false,
			})
		}

		if !reachable[file] {
			risky := safety.HasPossibleSideEffects(m.RawSource)
			reason := "unreachable_file"
			confidence := 0.98
			fixable := true
			if risky {
				reason = "unreachable_but_has_possible_side_effects"
				confidence = 0.6
				fixable = false
			}
			out = append(out, domain.Finding{
				ID:         fmt.Sprintf("uf:%s", file),
				Kind:       domain.KindUnreachableFile,
				File:       file,
				Reason:     reason,
				Confidence: confidence,
				Fixable:    fixable,
			})
			continue
		}

		used := g.ImportedSymbols[file]
		hasAny := used["*"]
		for _, export := range m.SortedExports() {
			if !hasAny && !used[export] {
				out = append(out, domain.Finding{
					ID:         fmt.Sprintf("ue:%s:%s", file, export),
					Kind:       domain.KindUnusedExport,
					File:       file,
					Symbol:     export,
					Reason:     "export_not_referenced",
					Confidence: 0.85,
					Fixable:    false,
				})
			}
		}
	}

	domain.SortFindings(out)
	return out
}
