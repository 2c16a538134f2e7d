package entry

import (
	"path/filepath"
	"testing"

	"github.com/skrulling/unused-buddy-go/internal/testutil"
)

func TestSelectExplicitEntries(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"a.ts": "", "b.ts": "",
	})
	got := Select(root, []string{"b.ts", "missing.ts"}, nil)
	want := []string{filepath.Join(root, "b.ts")}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSelectPackageJSONMainAndExports(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"package.json": `{"main": "lib/main.js", "exports": {".": "lib/alt.js", "./x": "lib/x.js"}}`,
		"lib/main.js":  "",
		"lib/alt.js":   "",
		"lib/x.js":     "",
	})
	got := Select(root, nil, nil)
	if len(got) != 3 {
		t.Fatalf("got %v, want 3 entries", got)
	}
}

func TestSelectConventionalDefault(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"src/index.ts": ""})
	got := Select(root, nil, nil)
	want := filepath.Join(root, "src/index.ts")
	if len(got) != 1 || got[0] != want {
		t.Errorf("got %v, want [%s]", got, want)
	}
}

func TestSelectFallsBackToFirstDiscovered(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"z.ts": "", "a.ts": ""})
	discovered := []string{filepath.Join(root, "a.ts"), filepath.Join(root, "z.ts")}
	got := Select(root, nil, discovered)
	if len(got) != 1 || got[0] != discovered[0] {
		t.Errorf("got %v, want [%s]", got, discovered[0])
	}
}
