package main

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/skrulling/unused-buddy-go/internal/config"
	"github.com/skrulling/unused-buddy-go/internal/constants"
)

func initCmd() *cobra.Command {
	var (
		outPath     string
		force       bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .unused-buddy.yaml configuration file",
		Long: `init writes a .unused-buddy.yaml holding the default configuration.

Examples:
  unused-buddy init
  unused-buddy init --config custom.yaml
  unused-buddy init --force
  unused-buddy init --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runInit(outPath, force, interactive); err != nil {
				return &ExitError{Code: 1, Message: err.Error()}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&outPath, "config", "c", constants.ConfigFileName, "Output path for the config file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Interactive setup wizard")

	return cmd
}

func runInit(outPath string, force, interactive bool) error {
	cfg := config.DefaultConfig()

	if interactive {
		var err error
		cfg.Format, outPath, err = runInteractiveSetup(outPath)
		if err != nil {
			return err
		}
	}

	if !force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s already exists; use --force to overwrite", outPath)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote %s\n", outPath)
	return nil
}

func runInteractiveSetup(defaultPath string) (format string, outPath string, err error) {
	formatOptions := []struct {
		Label string
		Value string
	}{
		{"Human-readable (recommended)", constants.OutputFormatHuman},
		{"AI/machine-readable JSON lines", constants.OutputFormatAI},
	}

	formatTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }}",
		Inactive: "   {{ .Label | white }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	formatPrompt := promptui.Select{
		Label:     "Default output format?",
		Items:     formatOptions,
		Templates: formatTemplates,
	}

	idx, _, selErr := formatPrompt.Run()
	if selErr != nil {
		return "", "", fmt.Errorf("format selection cancelled: %w", selErr)
	}

	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultPath,
	}
	path, promptErr := outputPrompt.Run()
	if promptErr != nil {
		return "", "", fmt.Errorf("output path input cancelled: %w", promptErr)
	}
	if path == "" {
		path = defaultPath
	}

	return formatOptions[idx].Value, path, nil
}
