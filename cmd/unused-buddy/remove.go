package main

import (
	"context"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/skrulling/unused-buddy-go/app"
	"github.com/skrulling/unused-buddy-go/domain"
	"github.com/skrulling/unused-buddy-go/internal/color"
	"github.com/skrulling/unused-buddy-go/internal/config"
	"github.com/skrulling/unused-buddy-go/internal/output"
)

var (
	removeInclude        []string
	removeExclude        []string
	removeEntry          []string
	removeExtensions     []string
	removeFormat         string
	removeColorFlag      string
	removeConfigPath     string
	removeMaxWorkers     int
	removeFix            bool
	removeYes            bool
	removeFailOnFindings bool
)

func removeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [path]",
		Short: "Plan, and optionally apply, removal of safely-unreachable files",
		Long: `remove runs the same scan as 'unused-buddy scan' and then plans deletion of
every fixable UnreachableFile finding. Without --fix it only reports the
plan. --fix without --yes asks for confirmation when stdin is a terminal;
otherwise it only reports the plan, as a guard against accidental deletion.

Examples:
  unused-buddy remove .                 # dry run, prints the plan
  unused-buddy remove --fix --yes .     # actually deletes`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runRemove,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringSliceVar(&removeInclude, "include", nil, "Include glob patterns (repeatable)")
	cmd.Flags().StringSliceVar(&removeExclude, "exclude", nil, "Exclude glob patterns (repeatable)")
	cmd.Flags().StringSliceVar(&removeEntry, "entry", nil, "Explicit entry file(s), relative to path")
	cmd.Flags().StringSliceVar(&removeExtensions, "extensions", nil, "Allowed source extensions, e.g. ts,tsx,js,jsx")
	cmd.Flags().StringVar(&removeFormat, "format", "", "Output format: human or ai")
	cmd.Flags().StringVar(&removeColorFlag, "color", "", "Color policy: auto, always, never")
	cmd.Flags().StringVarP(&removeConfigPath, "config", "c", "", "Path to config file")
	cmd.Flags().IntVar(&removeMaxWorkers, "max-workers", 0, "Cap concurrent file parses (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&removeFix, "fix", false, "Actually delete planned files")
	cmd.Flags().BoolVar(&removeYes, "yes", false, "Required alongside --fix to perform the deletion")
	cmd.Flags().BoolVar(&removeFailOnFindings, "fail-on-findings", false, "Exit with status 1 if any planned file removal was not carried out")

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	fileCfg, err := config.Load(removeConfigPath, root)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	eff := config.Resolve(fileCfg, config.Overrides{
		Include:        removeInclude,
		Exclude:        removeExclude,
		Entry:          removeEntry,
		Extensions:     removeExtensions,
		MaxWorkers:     removeMaxWorkers,
		Format:         removeFormat,
		Color:          removeColorFlag,
		FailOnFindings: removeFailOnFindings,
	})

	scanUC := app.NewScanUseCase(nil)
	result, err := scanUC.Execute(context.Background(), root, eff)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("scan failed: %v", err)}
	}

	confirmed := removeYes
	if removeFix && !removeYes && term.IsTerminal(int(os.Stdin.Fd())) {
		planned := countFixable(result.ScanResult.Findings)
		if planned > 0 {
			yes, promptErr := confirmRemoval(planned)
			if promptErr != nil {
				return &ExitError{Code: 1, Message: fmt.Sprintf("confirmation failed: %v", promptErr)}
			}
			confirmed = yes
		}
	}

	removeUC := app.NewRemoveUseCase(nil)
	summary := removeUC.Execute(context.Background(), result.ScanResult, removeFix, confirmed, eff.FixMode, os.Stderr)

	useColor := color.ParsePolicy(eff.Color).Enabled()
	if err := output.PrintRemoveSummary(os.Stdout, summary, eff.Format, useColor); err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("failed to print summary: %v", err)}
	}

	if eff.FailOnFindings && summary.Removed < summary.Planned {
		return &ExitError{Code: 1, Message: ""}
	}

	return nil
}

func countFixable(findings []domain.Finding) int {
	n := 0
	for _, f := range findings {
		if f.Kind == domain.KindUnreachableFile && f.Fixable {
			n++
		}
	}
	return n
}

// confirmRemoval prompts "remove N files? [y/N]" on stdin/stdout, the way
// init.go's wizard prompts via promptui. A non-"y" answer (including a
// bare Enter) is promptui's ErrAbort, which reads as a declined removal
// rather than a CLI failure.
func confirmRemoval(planned int) (bool, error) {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("remove %d file(s)", planned),
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if err == promptui.ErrAbort {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
