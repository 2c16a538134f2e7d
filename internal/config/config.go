// Package config loads and merges the analyzer's configuration: a
// .unused-buddy.yaml file discovered by walking upward from the target
// path, overridden by explicit CLI flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/skrulling/unused-buddy-go/internal/constants"
)

// Config is the file-backed configuration shape. Every field is optional;
// Load unmarshals the file over DefaultConfig(), so an absent field keeps
// its default value.
type Config struct {
	Include        []string            `mapstructure:"include" yaml:"include"`
	Exclude        []string            `mapstructure:"exclude" yaml:"exclude"`
	Entry          []string            `mapstructure:"entry" yaml:"entry"`
	Extensions     []string            `mapstructure:"extensions" yaml:"extensions"`
	MaxWorkers     int                 `mapstructure:"maxWorkers" yaml:"maxWorkers"`
	Format         string              `mapstructure:"format" yaml:"format"`
	Color          string              `mapstructure:"color" yaml:"color"`
	FixMode        string              `mapstructure:"fixMode" yaml:"fixMode"`
	FailOnFindings bool                `mapstructure:"failOnFindings" yaml:"failOnFindings"`
	AliasPatterns  map[string][]string `mapstructure:"aliasPatterns" yaml:"aliasPatterns,omitempty"`
}

// DefaultConfig returns the configuration applied when no config file is
// found and no flag overrides a field.
func DefaultConfig() *Config {
	return &Config{
		Include:    append([]string(nil), constants.DefaultIncludePatterns...),
		Exclude:    append([]string(nil), constants.DefaultExcludePatterns...),
		Extensions: append([]string(nil), constants.DefaultExtensions...),
		MaxWorkers: 0,
		Format:     constants.OutputFormatHuman,
		Color:      "auto",
		FixMode:    constants.FixModeFilesOnly,
	}
}

// Load discovers and parses a config file relative to targetPath, falling
// back to DefaultConfig() when none is found. configPath, if non-empty,
// is used directly instead of discovery.
func Load(configPath, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	if configPath == "" {
		return DefaultConfig(), nil
	}

	v := viper.New()
	cfg := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate rejects a config file with an unrecognized format, color, or
// fixMode value, or a negative maxWorkers; the remaining fields are
// free-form (globs, extensions, entries, alias patterns).
func (c *Config) Validate() error {
	if c.Format != "" && c.Format != constants.OutputFormatHuman && c.Format != constants.OutputFormatAI {
		return fmt.Errorf("invalid format %q, must be one of: human, ai", c.Format)
	}
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}
	if c.FixMode != "" && c.FixMode != constants.FixModeFilesOnly {
		return fmt.Errorf("invalid fixMode %q, must be one of: %s", c.FixMode, constants.FixModeFilesOnly)
	}
	if c.MaxWorkers < 0 {
		return fmt.Errorf("invalid maxWorkers %d, must be >= 0", c.MaxWorkers)
	}
	return nil
}

// Effective is the fully-resolved, post-override configuration a command
// hands to the scan/remove use cases.
type Effective struct {
	Include        []string
	Exclude        []string
	Entry          []string
	Extensions     []string
	MaxWorkers     int
	Format         string
	Color          string
	FixMode        string
	FailOnFindings bool
	AliasPatterns  map[string][]string
}

// Overrides carries CLI-flag values. An empty slice, zero, or empty string
// means "not set on the command line" and defers to the file config /
// defaults. FailOnFindings is the one exception: a CLI --fail-on-findings
// only ever turns the gate on, so it is OR'd with the config value rather
// than replacing it (there is no Go zero value that would let it also mean
// "explicitly turned off" without tracking flag.Changed).
type Overrides struct {
	Include        []string
	Exclude        []string
	Entry          []string
	Extensions     []string
	MaxWorkers     int
	Format         string
	Color          string
	FailOnFindings bool
}

// Resolve layers CLI overrides over the file config over DefaultConfig(),
// field by field, the same precedence order a flag takes over a config
// file takes over a hardcoded default.
func Resolve(cfg *Config, ov Overrides) Effective {
	eff := Effective{
		Include:        cfg.Include,
		Exclude:        cfg.Exclude,
		Entry:          cfg.Entry,
		Extensions:     cfg.Extensions,
		MaxWorkers:     cfg.MaxWorkers,
		Format:         cfg.Format,
		Color:          cfg.Color,
		FixMode:        cfg.FixMode,
		FailOnFindings: cfg.FailOnFindings || ov.FailOnFindings,
		AliasPatterns:  cfg.AliasPatterns,
	}

	if len(ov.Include) > 0 {
		eff.Include = ov.Include
	}
	if len(ov.Exclude) > 0 {
		eff.Exclude = ov.Exclude
	}
	if len(ov.Entry) > 0 {
		eff.Entry = ov.Entry
	}
	if len(ov.Extensions) > 0 {
		eff.Extensions = ov.Extensions
	}
	if ov.MaxWorkers > 0 {
		eff.MaxWorkers = ov.MaxWorkers
	}
	if ov.Format != "" {
		eff.Format = ov.Format
	}
	if ov.Color != "" {
		eff.Color = ov.Color
	}

	if eff.Format == "" {
		eff.Format = constants.OutputFormatHuman
	}
	if eff.Color == "" {
		eff.Color = "auto"
	}
	if eff.FixMode == "" {
		eff.FixMode = constants.FixModeFilesOnly
	}

	return eff
}

// searchConfigInDirectory returns the first candidate name that exists in
// dir, or "" if none do.
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig walks upward from targetPath looking for
// .unused-buddy.yaml/.yml, then falls back to the current directory, the
// user's home directory, and finally the UNUSED_BUDDY_CONFIG environment
// variable.
func findDefaultConfig(targetPath string) string {
	candidates := []string{".unused-buddy.yaml", ".unused-buddy.yml"}

	if targetPath != "" {
		if absPath, err := filepath.Abs(targetPath); err == nil {
			if info, statErr := os.Stat(absPath); statErr == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			volume := filepath.VolumeName(absPath)
			for dir := absPath; ; dir = filepath.Dir(dir) {
				if found := searchConfigInDirectory(dir, candidates); found != "" {
					return found
				}
				parent := filepath.Dir(dir)
				if parent == dir || dir == volume || (volume != "" && dir == volume+string(filepath.Separator)) {
					break
				}
			}
		}
	}

	if found := searchConfigInDirectory(".", candidates); found != "" {
		return found
	}

	if home, err := os.UserHomeDir(); err == nil {
		if found := searchConfigInDirectory(home, candidates); found != "" {
			return found
		}
	}

	if envConfig := os.Getenv(constants.EnvVarPrefix + "_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}
