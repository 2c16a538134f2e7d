// Package removal implements the removal planner: turning UnreachableFile
// findings into a plan, and optionally applying it.
package removal

import (
	"os"

	"github.com/skrulling/unused-buddy-go/domain"
)

// Remover deletes a single file. OSRemover is the production
// implementation; tests substitute a fake to exercise per-file failure
// handling without touching a filesystem.
type Remover interface {
	Remove(path string) error
}

// OSRemover deletes files from the real filesystem via os.Remove.
type OSRemover struct{}

func (OSRemover) Remove(path string) error { return os.Remove(path) }

// Diagnostics receives operator-facing messages that aren't part of the
// structured result, e.g. the refusal to apply without confirmation.
type Diagnostics interface {
	Printf(format string, args ...any)
}

// Plan partitions findings into removal candidates (fixable UnreachableFile
// findings) and skipped-risky ones (UnreachableFile findings that are not
// fixable), and optionally applies the deletion.
//
// apply=false always returns a dry-run summary. apply=true without confirm
// is refused and logged to diag, behaving identically to apply=false — the
// removal planner never deletes without both flags set.
func Plan(findings []domain.Finding, apply, confirm bool, remover Remover, diag Diagnostics) domain.RemoveSummary {
	var candidates, skippedRisky []string
	for _, f := range findings {
		if f.Kind != domain.KindUnreachableFile {
			continue
		}
		if f.Fixable {
			candidates = append(candidates, f.File)
		} else {
			skippedRisky = append(skippedRisky, f.File)
		}
	}

	planned := len(candidates)
	skipped := len(skippedRisky)

	if !apply {
		return domain.RemoveSummary{Planned: planned, SkippedRisky: skipped, DryRun: true}
	}

	if !confirm {
		if diag != nil {
			diag.Printf("refusing to remove %d file(s) without confirmation; re-run with --yes", planned)
		}
		return domain.RemoveSummary{Planned: planned, SkippedRisky: skipped, DryRun: true}
	}

	removed := 0
	for _, path := range candidates {
		if err := remover.Remove(path); err != nil {
			if diag != nil {
				diag.Printf("failed to remove %s: %v", path, err)
			}
			continue
		}
		removed++
	}

	return domain.RemoveSummary{Planned: planned, Removed: removed, SkippedRisky: skipped, DryRun: false}
}

// NopDiagnostics discards every message. Useful where a caller has no
// diagnostics channel wired (e.g. library use outside the CLI).
type NopDiagnostics struct{}

func (NopDiagnostics) Printf(format string, args ...any) {}
