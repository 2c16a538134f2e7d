package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skrulling/unused-buddy-go/app"
	"github.com/skrulling/unused-buddy-go/domain"
	"github.com/skrulling/unused-buddy-go/internal/color"
	"github.com/skrulling/unused-buddy-go/internal/config"
	"github.com/skrulling/unused-buddy-go/internal/output"
)

var (
	listInclude    []string
	listExclude    []string
	listEntry      []string
	listExtensions []string
	listFormat     string
	listColor      string
	listConfigPath string
	listMaxWorkers int
	listKind       string
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [path]",
		Short: "List findings of one kind: uf (unreachable file), ue (unused export), or uc (uncertain)",
		Long: `list runs the same scan as 'unused-buddy scan' and prints only the findings
matching --kind.

Examples:
  unused-buddy list --kind uf .
  unused-buddy list --kind ue --format ai src/`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runList,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringSliceVar(&listInclude, "include", nil, "Include glob patterns (repeatable)")
	cmd.Flags().StringSliceVar(&listExclude, "exclude", nil, "Exclude glob patterns (repeatable)")
	cmd.Flags().StringSliceVar(&listEntry, "entry", nil, "Explicit entry file(s), relative to path")
	cmd.Flags().StringSliceVar(&listExtensions, "extensions", nil, "Allowed source extensions, e.g. ts,tsx,js,jsx")
	cmd.Flags().StringVar(&listFormat, "format", "", "Output format: human or ai")
	cmd.Flags().StringVar(&listColor, "color", "", "Color policy: auto, always, never")
	cmd.Flags().StringVarP(&listConfigPath, "config", "c", "", "Path to config file")
	cmd.Flags().IntVar(&listMaxWorkers, "max-workers", 0, "Cap concurrent file parses (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&listKind, "kind", "uf", "Finding kind to list: uf, ue, or uc")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	kind, err := kindFromWire(listKind)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	fileCfg, err := config.Load(listConfigPath, root)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	eff := config.Resolve(fileCfg, config.Overrides{
		Include:    listInclude,
		Exclude:    listExclude,
		Entry:      listEntry,
		Extensions: listExtensions,
		MaxWorkers: listMaxWorkers,
		Format:     listFormat,
		Color:      listColor,
	})

	uc := app.NewScanUseCase(nil)
	result, err := uc.Execute(context.Background(), root, eff)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("scan failed: %v", err)}
	}

	filtered := &domain.ScanResult{}
	for _, f := range result.Findings {
		if f.Kind == kind {
			filtered.Findings = append(filtered.Findings, f)
		}
	}

	useColor := color.ParsePolicy(eff.Color).Enabled()
	if err := output.PrintScan(os.Stdout, filtered, eff.Format, useColor); err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("failed to print results: %v", err)}
	}

	return nil
}

func kindFromWire(s string) (domain.FindingKind, error) {
	switch s {
	case "uf":
		return domain.KindUnreachableFile, nil
	case "ue":
		return domain.KindUnusedExport, nil
	case "uc":
		return domain.KindUncertain, nil
	default:
		return "", fmt.Errorf("invalid --kind %q, must be one of: uf, ue, uc", s)
	}
}
