package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFallsBackToDefaultWhenNoFileFound(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load("", filepath.Join(dir, "src"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "human" {
		t.Errorf("expected default format human, got %q", cfg.Format)
	}
}

func TestLoadDiscoversFileUpwardFromTarget(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src", "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(root, ".unused-buddy.yaml")
	if err := os.WriteFile(cfgPath, []byte("format: ai\ncolor: never\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("", filepath.Join(root, "src", "nested"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "ai" || cfg.Color != "never" {
		t.Errorf("expected discovered config applied, got %+v", cfg)
	}
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestResolveOverridesLayerOverFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "human"
	eff := Resolve(cfg, Overrides{Format: "ai", Include: []string{"lib/**/*.ts"}})
	if eff.Format != "ai" {
		t.Errorf("expected CLI override to win, got %q", eff.Format)
	}
	if len(eff.Include) != 1 || eff.Include[0] != "lib/**/*.ts" {
		t.Errorf("expected include override applied, got %v", eff.Include)
	}
	if len(eff.Exclude) == 0 {
		t.Error("expected exclude to fall back to file/default config")
	}
}

func TestResolveMaxWorkersZeroMeansUnset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxWorkers = 4
	eff := Resolve(cfg, Overrides{})
	if eff.MaxWorkers != 4 {
		t.Errorf("expected file maxWorkers to survive, got %d", eff.MaxWorkers)
	}

	eff = Resolve(cfg, Overrides{MaxWorkers: 2})
	if eff.MaxWorkers != 2 {
		t.Errorf("expected CLI override to win, got %d", eff.MaxWorkers)
	}
}

func TestResolveFailOnFindingsIsOred(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FailOnFindings = true
	eff := Resolve(cfg, Overrides{})
	if !eff.FailOnFindings {
		t.Error("expected config-file failOnFindings to carry through with no CLI flag")
	}

	cfg.FailOnFindings = false
	eff = Resolve(cfg, Overrides{FailOnFindings: true})
	if !eff.FailOnFindings {
		t.Error("expected CLI --fail-on-findings to turn the gate on")
	}
}

func TestResolveFixModeDefaultsToFilesOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FixMode = ""
	eff := Resolve(cfg, Overrides{})
	if eff.FixMode != "files_only" {
		t.Errorf("expected fixMode to default to files_only, got %q", eff.FixMode)
	}
}

func TestValidateRejectsUnknownFixMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FixMode = "exports_too"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unrecognized fixMode")
	}
}

func TestResolveCarriesAliasPatterns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AliasPatterns = map[string][]string{"@app/*": {"src/app/*"}}
	eff := Resolve(cfg, Overrides{})
	if len(eff.AliasPatterns) != 1 || len(eff.AliasPatterns["@app/*"]) != 1 {
		t.Errorf("expected aliasPatterns to carry through, got %v", eff.AliasPatterns)
	}
}
