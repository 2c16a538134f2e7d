package main

import (
	"fmt"
	"os"

	"github.com/skrulling/unused-buddy-go/internal/version"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "unused-buddy",
		Short:   "unused-buddy finds and removes unreachable JavaScript/TypeScript files",
		Long:    `unused-buddy builds the import graph of a JS/TS project and reports files and exports that nothing reaches.`,
		Version: version.Version,
	}

	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(removeCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		// Every error a RunE handler returns is wrapped in *ExitError; a
		// plain error reaching here is cobra's own flag/arg validation
		// (unknown flag, wrong arg count) rejecting the invocation before
		// RunE ever ran — invalid usage, not a runtime failure.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

// ExitError carries a process exit code alongside an already-reported
// error message, so RunE handlers can request a specific code (e.g. 1 for
// "findings present") without cobra printing its own duplicate message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("unused-buddy version %s\n", version.GetVersion())
			}
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
