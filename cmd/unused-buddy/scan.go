package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skrulling/unused-buddy-go/app"
	"github.com/skrulling/unused-buddy-go/internal/color"
	"github.com/skrulling/unused-buddy-go/internal/config"
	"github.com/skrulling/unused-buddy-go/internal/output"
	"github.com/skrulling/unused-buddy-go/internal/progress"
)

var (
	scanInclude        []string
	scanExclude        []string
	scanEntry          []string
	scanExtensions     []string
	scanFormat         string
	scanColor          string
	scanConfigPath     string
	scanMaxWorkers     int
	scanNoProgress     bool
	scanFailOnFindings bool
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a project and report unreachable files, unused exports, and uncertain dynamic imports",
		Long: `scan walks the project rooted at path, builds the import graph from its
entry points, and reports every file reachability and export-usage finding.

Examples:
  unused-buddy scan .
  unused-buddy scan --format ai src/
  unused-buddy scan --exclude '**/*.test.*' .`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runScan,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringSliceVar(&scanInclude, "include", nil, "Include glob patterns (repeatable)")
	cmd.Flags().StringSliceVar(&scanExclude, "exclude", nil, "Exclude glob patterns (repeatable)")
	cmd.Flags().StringSliceVar(&scanEntry, "entry", nil, "Explicit entry file(s), relative to path")
	cmd.Flags().StringSliceVar(&scanExtensions, "extensions", nil, "Allowed source extensions, e.g. ts,tsx,js,jsx")
	cmd.Flags().StringVar(&scanFormat, "format", "", "Output format: human or ai")
	cmd.Flags().StringVar(&scanColor, "color", "", "Color policy: auto, always, never")
	cmd.Flags().StringVarP(&scanConfigPath, "config", "c", "", "Path to config file")
	cmd.Flags().IntVar(&scanMaxWorkers, "max-workers", 0, "Cap concurrent file parses (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&scanNoProgress, "no-progress", false, "Disable the progress bar")
	cmd.Flags().BoolVar(&scanFailOnFindings, "fail-on-findings", false, "Exit with status 1 if any finding is reported")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	fileCfg, err := config.Load(scanConfigPath, root)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	eff := config.Resolve(fileCfg, config.Overrides{
		Include:        scanInclude,
		Exclude:        scanExclude,
		Entry:          scanEntry,
		Extensions:     scanExtensions,
		MaxWorkers:     scanMaxWorkers,
		Format:         scanFormat,
		Color:          scanColor,
		FailOnFindings: scanFailOnFindings,
	})

	pm := progress.New(!scanNoProgress && eff.Format != "ai")
	defer pm.Close()

	uc := app.NewScanUseCase(pm)
	result, err := uc.Execute(context.Background(), root, eff)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("scan failed: %v", err)}
	}

	useColor := color.ParsePolicy(eff.Color).Enabled()
	if err := output.PrintScan(os.Stdout, result.ScanResult, eff.Format, useColor); err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("failed to print results: %v", err)}
	}

	if eff.FailOnFindings && len(result.Findings) > 0 {
		return &ExitError{Code: 1, Message: ""}
	}

	return nil
}
