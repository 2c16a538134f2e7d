package app

import (
	"context"
	"fmt"
	"io"

	"github.com/skrulling/unused-buddy-go/domain"
	"github.com/skrulling/unused-buddy-go/internal/constants"
	"github.com/skrulling/unused-buddy-go/internal/removal"
)

// stderrDiagnostics writes removal-planner diagnostics (refusals,
// per-file failures) to an io.Writer, typically os.Stderr.
type stderrDiagnostics struct {
	w io.Writer
}

func (d stderrDiagnostics) Printf(format string, args ...any) {
	fmt.Fprintf(d.w, format+"\n", args...)
}

// RemoveUseCase plans and optionally applies removal of UnreachableFile
// findings from a prior scan.
type RemoveUseCase struct {
	remover removal.Remover
}

// NewRemoveUseCase creates a RemoveUseCase. remover may be nil, in which
// case removal.OSRemover{} is used against the real filesystem.
func NewRemoveUseCase(remover removal.Remover) *RemoveUseCase {
	if remover == nil {
		remover = removal.OSRemover{}
	}
	return &RemoveUseCase{remover: remover}
}

// Execute plans removal from result's findings, applying it (subject to
// confirm) when apply is true. diagOut receives operator-facing
// diagnostics; pass nil to discard them. fixMode is stamped onto the
// returned summary as-is; an empty fixMode resolves to
// constants.FixModeFilesOnly, the only granularity this planner
// implements today (whole-file deletion, never partial per-export fixes).
func (uc *RemoveUseCase) Execute(ctx context.Context, result *domain.ScanResult, apply, confirm bool, fixMode string, diagOut io.Writer) domain.RemoveSummary {
	var diag removal.Diagnostics = removal.NopDiagnostics{}
	if diagOut != nil {
		diag = stderrDiagnostics{w: diagOut}
	}
	if fixMode == "" {
		fixMode = constants.FixModeFilesOnly
	}
	summary := removal.Plan(result.Findings, apply, confirm, uc.remover, diag)
	summary.FixMode = fixMode
	return summary
}
