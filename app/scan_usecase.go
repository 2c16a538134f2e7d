// Package app wires together internal/config, internal/scan, and
// internal/progress into the use cases cmd/unused-buddy invokes.
package app

import (
	"context"
	"time"

	"github.com/skrulling/unused-buddy-go/domain"
	"github.com/skrulling/unused-buddy-go/internal/config"
	"github.com/skrulling/unused-buddy-go/internal/progress"
	"github.com/skrulling/unused-buddy-go/internal/scan"
)

// ScanUseCase runs a full scan against one project root.
type ScanUseCase struct {
	progress progress.Manager
}

// NewScanUseCase creates a ScanUseCase. pm may be nil, in which case
// progress.New(false) (a no-op manager) is used.
func NewScanUseCase(pm progress.Manager) *ScanUseCase {
	if pm == nil {
		pm = progress.New(false)
	}
	return &ScanUseCase{progress: pm}
}

// ScanResult wraps the pure domain.ScanResult with the wall-clock duration
// the use case spent, the way AnalyzeResult wraps analysis responses.
type ScanResult struct {
	*domain.ScanResult
	Duration time.Duration
}

// Execute runs the scan against root using eff's include/exclude/entry
// configuration. ctx is accepted for cancellation-aware callers but the
// underlying scan.Scan call is synchronous and CPU-bound; it does not
// itself poll ctx.Done().
func (uc *ScanUseCase) Execute(ctx context.Context, root string, eff config.Effective) (*ScanResult, error) {
	start := time.Now()

	task := uc.progress.StartTask("scanning", 1)
	defer task.Complete()

	res, err := scan.Scan(scan.Options{
		Root:          root,
		Include:       eff.Include,
		Exclude:       eff.Exclude,
		Extensions:    eff.Extensions,
		Entries:       eff.Entry,
		MaxWorkers:    eff.MaxWorkers,
		AliasPatterns: eff.AliasPatterns,
	})
	if err != nil {
		return nil, err
	}
	task.Increment(1)

	return &ScanResult{ScanResult: res, Duration: time.Since(start)}, nil
}
