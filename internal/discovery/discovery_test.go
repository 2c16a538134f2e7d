package discovery

import (
	"path/filepath"
	"testing"

	"github.com/skrulling/unused-buddy-go/internal/testutil"
)

func TestDiscoverDefaultConventionFallback(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"src/index.ts":         "export const a = 1;",
		"src/util.ts":          "export const b = 2;",
		"node_modules/pkg/a.js": "module.exports = {};",
		"README.md":            "not source",
	})

	files, err := Discover(root, Options{
		Exclude:    []string{"node_modules/**"},
		Extensions: []string{"js", "ts", "jsx", "tsx"},
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{
		filepath.Join(root, "src/index.ts"),
		filepath.Join(root, "src/util.ts"),
	}
	if len(files) != len(want) {
		t.Fatalf("got %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("file[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestDiscoverIncludeGlob(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"lib/a.ts":     "export const a = 1;",
		"scripts/b.ts": "export const b = 2;",
	})

	files, err := Discover(root, Options{
		Include:    []string{"lib/**/*.ts"},
		Extensions: []string{"ts"},
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || files[0] != filepath.Join(root, "lib/a.ts") {
		t.Errorf("got %v, want only lib/a.ts", files)
	}
}

func TestDiscoverExtensionFilter(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"src/a.ts":  "export const a = 1;",
		"src/a.css": "body {}",
	})

	files, err := Discover(root, Options{Extensions: []string{"ts"}})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || files[0] != filepath.Join(root, "src/a.ts") {
		t.Errorf("got %v, want only src/a.ts", files)
	}
}

func TestDiscoverGitignoreRespected(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		".gitignore":   "ignored/\n",
		"src/a.ts":     "export const a = 1;",
		"ignored/b.ts": "export const b = 2;",
	})

	files, err := Discover(root, Options{Extensions: []string{"ts"}})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || files[0] != filepath.Join(root, "src/a.ts") {
		t.Errorf("got %v, want only src/a.ts", files)
	}
}

func TestDiscoverInvalidGlobIsConfigError(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"src/a.ts": ""})
	_, err := Discover(root, Options{Include: []string{"src/**/*.{js,ts"}, Extensions: []string{"ts"}})
	if err == nil {
		t.Fatal("expected error for invalid glob pattern")
	}
}
