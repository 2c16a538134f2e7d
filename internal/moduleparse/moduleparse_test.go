package moduleparse

import (
	"testing"

	"github.com/skrulling/unused-buddy-go/internal/parser"
)

func parseSource(t *testing.T, source string) *parser.Node {
	t.Helper()
	p := parser.NewParser()
	defer p.Close()
	ast, err := p.ParseString(source)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	return ast
}

func TestNilASTYieldsEmptyModuleInfo(t *testing.T) {
	info := Parse("broken.js", "not really js {{{", nil)
	if len(info.Exports) != 0 || len(info.Imports) != 0 {
		t.Fatalf("expected empty ModuleInfo for nil ast, got %+v", info)
	}
	if info.RawSource != "not really js {{{" {
		t.Errorf("RawSource not retained")
	}
}

func TestESMDefaultAndNamedImport(t *testing.T) {
	ast := parseSource(t, `import React from 'react';
import { useState, useEffect as fx } from 'react';`)
	info := Parse("a.ts", "", ast)

	if len(info.Imports) != 1 {
		t.Fatalf("expected imports merged into a single ref, got %d", len(info.Imports))
	}
	ref := info.Imports[0]
	if ref.Raw != "react" {
		t.Errorf("raw = %q, want react", ref.Raw)
	}
	for _, want := range []string{"default", "useState", "useEffect"} {
		if !ref.Symbols[want] {
			t.Errorf("missing symbol %q in %v", want, ref.SortedSymbols())
		}
	}
}

func TestNamespaceImportSetsWildcard(t *testing.T) {
	ast := parseSource(t, `import * as utils from './utils';`)
	info := Parse("a.ts", "", ast)

	ref := info.ImportRefFor("./utils", 0)
	if !ref.WildcardUse {
		t.Error("expected WildcardUse=true for namespace import")
	}
}

func TestSideEffectImportProducesEmptyRef(t *testing.T) {
	ast := parseSource(t, `import './polyfill';`)
	info := Parse("a.ts", "", ast)

	if len(info.Imports) != 1 {
		t.Fatalf("expected 1 import, got %d", len(info.Imports))
	}
	ref := info.Imports[0]
	if len(ref.Symbols) != 0 || ref.WildcardUse {
		t.Errorf("expected an edge-only ref, got %+v", ref)
	}
}

func TestLocalExports(t *testing.T) {
	ast := parseSource(t, `export const a = 1, b = 2;
export function foo() {}
export class Bar {}
export default 42;`)
	info := Parse("a.ts", "", ast)

	for _, want := range []string{"a", "b", "foo", "Bar", "default"} {
		if !info.Exports[want] {
			t.Errorf("missing export %q in %v", want, info.SortedExports())
		}
	}
}

func TestExportSpecifierLocalExport(t *testing.T) {
	ast := parseSource(t, `const x = 1;
export { x };
export { x as y };`)
	info := Parse("a.ts", "", ast)

	if !info.Exports["x"] || !info.Exports["y"] {
		t.Errorf("expected both x and y exported, got %v", info.SortedExports())
	}
}

func TestIndirectReExportAddsExportAndConsumerRecord(t *testing.T) {
	ast := parseSource(t, `export { x } from "m";
export { a as b } from "m";`)
	info := Parse("a.ts", "", ast)

	if !info.Exports["x"] || !info.Exports["b"] {
		t.Errorf("expected re-exported names in exports, got %v", info.SortedExports())
	}
	ref := info.ImportRefFor("m", 0)
	if !ref.Symbols["x"] || !ref.Symbols["a"] {
		t.Errorf("expected consumed names recorded against m, got %v", ref.SortedSymbols())
	}
}

func TestStarReExportSetsWildcardOnlyNotLocalExports(t *testing.T) {
	ast := parseSource(t, `export * from "m";`)
	info := Parse("a.ts", "", ast)

	if len(info.Exports) != 0 {
		t.Errorf("star re-export must not enumerate into this file's exports, got %v", info.SortedExports())
	}
	if !info.ImportRefFor("m", 0).WildcardUse {
		t.Error("expected wildcard_use set on m")
	}
}

func TestNamespaceReExportAlsoJustSetsWildcard(t *testing.T) {
	ast := parseSource(t, `export * as ns from "m";`)
	info := Parse("a.ts", "", ast)

	if len(info.Exports) != 0 {
		t.Errorf("namespace re-export must not enumerate into this file's exports, got %v", info.SortedExports())
	}
	if !info.ImportRefFor("m", 0).WildcardUse {
		t.Error("expected wildcard_use set on m")
	}
}

func TestDynamicImportLiteralIsNamespaceConsumer(t *testing.T) {
	ast := parseSource(t, `const mod = import("./lazy");`)
	info := Parse("a.ts", "", ast)

	ref := info.ImportRefFor("./lazy", 0)
	if !ref.WildcardUse || ref.IsDynamicNonLiteral {
		t.Errorf("expected literal dynamic import to be a plain wildcard consumer, got %+v", ref)
	}
}

func TestDynamicImportNonLiteralYieldsUncertainRef(t *testing.T) {
	ast := parseSource(t, `const mod = import(path);`)
	info := Parse("a.ts", "", ast)

	if len(info.Imports) != 1 {
		t.Fatalf("expected 1 import ref, got %d", len(info.Imports))
	}
	ref := info.Imports[0]
	if !ref.IsDynamicNonLiteral {
		t.Error("expected IsDynamicNonLiteral=true")
	}
	if ref.Raw != "path" {
		t.Errorf("raw = %q, want the expression text %q", ref.Raw, "path")
	}
}

func TestRequireCallIsWildcardConsumer(t *testing.T) {
	ast := parseSource(t, `const lib = require("lodash");`)
	info := Parse("a.ts", "", ast)

	ref := info.ImportRefFor("lodash", 0)
	if !ref.WildcardUse {
		t.Error("expected require() to set wildcard_use")
	}
}

func TestModuleExportsObjectLiteral(t *testing.T) {
	ast := parseSource(t, `const a = 1, x = 2, c = 3;
module.exports = { a, b: x, c };`)
	info := Parse("a.js", "", ast)

	for _, want := range []string{"a", "b", "c"} {
		if !info.Exports[want] {
			t.Errorf("missing export %q in %v", want, info.SortedExports())
		}
	}
}

func TestExportsDotPropertyAssignment(t *testing.T) {
	ast := parseSource(t, `exports.helper = function() {};`)
	info := Parse("a.js", "", ast)

	if !info.Exports["helper"] {
		t.Errorf("expected helper exported, got %v", info.SortedExports())
	}
}
