// Package output formats a scan or removal result for either a human
// terminal or the line-delimited AI/JSON wire contract.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	fcolor "github.com/fatih/color"

	"github.com/skrulling/unused-buddy-go/domain"
)

// wireFinding is the abbreviated JSON shape one finding is emitted as in
// AI mode: i,k,f,s,r,l,c,x,q per the wire contract.
type wireFinding struct {
	ID         string  `json:"i"`
	Kind       string  `json:"k"`
	File       string  `json:"f"`
	Symbol     string  `json:"s,omitempty"`
	Reason     string  `json:"r,omitempty"`
	Line       int     `json:"l,omitempty"`
	Col        int     `json:"c,omitempty"`
	Fixable    int     `json:"x"`
	Confidence float64 `json:"q"`
}

// PrintScan writes result to w in the requested format. format is
// constants.OutputFormatHuman or constants.OutputFormatAI; color controls
// whether human output carries ANSI escapes.
func PrintScan(w io.Writer, result *domain.ScanResult, format string, useColor bool) error {
	if format == "ai" {
		return printAIScan(w, result)
	}
	return printHumanScan(w, result, useColor)
}

func printAIScan(w io.Writer, result *domain.ScanResult) error {
	enc := json.NewEncoder(w)
	for _, f := range result.Findings {
		wf := wireFinding{
			ID:         f.ID,
			Kind:       f.Kind.Wire(),
			File:       f.File,
			Symbol:     f.Symbol,
			Reason:     f.Reason,
			Line:       f.Line,
			Col:        f.Col,
			Confidence: f.Confidence,
		}
		if f.Fixable {
			wf.Fixable = 1
		}
		if err := enc.Encode(wf); err != nil {
			return fmt.Errorf("failed to encode finding %s: %w", f.ID, err)
		}
	}
	return nil
}

func printHumanScan(w io.Writer, result *domain.ScanResult, useColor bool) error {
	var ufCount, ueCount, ucCount int

	for _, f := range result.Findings {
		label, labelColor := labelFor(f.Kind)
		switch f.Kind {
		case domain.KindUnreachableFile:
			ufCount++
		case domain.KindUnusedExport:
			ueCount++
		case domain.KindUncertain:
			ucCount++
		}

		symbol := ""
		if f.Symbol != "" {
			symbol = " " + f.Symbol
		}

		if useColor {
			fmt.Fprintf(w, "%s %s%s %s\n", labelColor.Sprint(label), fcolor.BlueString(f.File), symbol, f.Reason)
		} else {
			fmt.Fprintf(w, "%s %s%s %s\n", label, f.File, symbol, f.Reason)
		}
	}

	if len(result.Findings) == 0 {
		if useColor {
			fmt.Fprintln(w, fcolor.GreenString("No findings"))
		} else {
			fmt.Fprintln(w, "No findings")
		}
		return nil
	}

	total := len(result.Findings)
	if useColor {
		fmt.Fprintf(w, "%s UF=%d UE=%d UC=%d total=%d\n", fcolor.CyanString("Summary"), ufCount, ueCount, ucCount, total)
	} else {
		fmt.Fprintf(w, "Summary UF=%d UE=%d UC=%d total=%d\n", ufCount, ueCount, ucCount, total)
	}
	return nil
}

func labelFor(k domain.FindingKind) (string, *fcolor.Color) {
	switch k {
	case domain.KindUnreachableFile:
		return "[UF]", fcolor.New(fcolor.FgRed)
	case domain.KindUnusedExport:
		return "[UE]", fcolor.New(fcolor.FgYellow)
	case domain.KindUncertain:
		return "[UC]", fcolor.New(fcolor.FgMagenta)
	default:
		return "[??]", fcolor.New(fcolor.Reset)
	}
}

// wireRemoveSummary mirrors domain.RemoveSummary's JSON tags; kept
// separate so AI-mode wiring changes don't ripple into the domain model.
type wireRemoveSummary struct {
	Planned      int    `json:"planned"`
	Removed      int    `json:"removed"`
	SkippedRisky int    `json:"skipped_risky"`
	DryRun       bool   `json:"dry_run"`
	FixMode      string `json:"fix_mode"`
}

// PrintRemoveSummary writes a removal summary to w in the requested format.
func PrintRemoveSummary(w io.Writer, summary domain.RemoveSummary, format string, useColor bool) error {
	if format == "ai" {
		enc := json.NewEncoder(w)
		return enc.Encode(wireRemoveSummary{
			Planned:      summary.Planned,
			Removed:      summary.Removed,
			SkippedRisky: summary.SkippedRisky,
			DryRun:       summary.DryRun,
			FixMode:      summary.FixMode,
		})
	}

	if useColor {
		fmt.Fprintf(w, "%s planned=%d removed=%d skipped_risky=%d dry_run=%v fix_mode=%s\n",
			fcolor.CyanString("Remove summary"), summary.Planned, summary.Removed, summary.SkippedRisky, summary.DryRun, summary.FixMode)
	} else {
		fmt.Fprintf(w, "Remove summary planned=%d removed=%d skipped_risky=%d dry_run=%v fix_mode=%s\n",
			summary.Planned, summary.Removed, summary.SkippedRisky, summary.DryRun, summary.FixMode)
	}
	return nil
}
