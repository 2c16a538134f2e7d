// Package tsconfig loads the path-alias configuration a project declares in
// tsconfig.json: compilerOptions.baseUrl and compilerOptions.paths.
package tsconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/skrulling/unused-buddy-go/domain"
	"github.com/skrulling/unused-buddy-go/internal/errs"
)

type tsconfigFile struct {
	CompilerOptions struct {
		BaseURL string              `json:"baseUrl"`
		Paths   map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
}

// Load reads tsconfig.json from root, if present, and returns the resulting
// PathMap. A missing file, or a present file with no compilerOptions, yields
// an empty PathMap — not an error. Malformed JSON is a ConfigError.
func Load(root string) (*domain.PathMap, error) {
	path := filepath.Join(root, "tsconfig.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &domain.PathMap{}, nil
		}
		return nil, &errs.IoError{Path: path, Err: err}
	}

	var cfg tsconfigFile
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, &errs.ConfigError{Path: path, Err: err}
	}

	pm := &domain.PathMap{}
	if cfg.CompilerOptions.BaseURL != "" {
		pm.BaseURL = filepath.Join(root, cfg.CompilerOptions.BaseURL)
	}
	pm.Rules = PathsToRules(cfg.CompilerOptions.Paths)

	return pm, nil
}

// PathsToRules converts a tsconfig-shaped paths map (or a config file's
// aliasPatterns field, same shape) into ordered alias rules. map iteration
// order is unspecified; keys are sorted for deterministic load order so
// resolver tie-breaks are reproducible across runs.
func PathsToRules(paths map[string][]string) []domain.AliasRule {
	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rules := make([]domain.AliasRule, 0, len(keys))
	for _, pattern := range keys {
		rules = append(rules, domain.AliasRule{Pattern: pattern, Targets: paths[pattern]})
	}
	return rules
}
