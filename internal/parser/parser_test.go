package parser

import "testing"

func TestParseForLanguagePicksGrammarByExtension(t *testing.T) {
	filenames := []string{"module.js", "module.jsx", "module.ts", "module.tsx", "module.mts", "module.cts"}
	for _, filename := range filenames {
		ast, err := ParseForLanguage(filename, []byte(`const x = 1;`))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", filename, err)
		}
		if ast == nil || ast.Type != NodeProgram {
			t.Fatalf("%s: expected a program node, got %v", filename, ast)
		}
	}
}

func TestParseStaticImports(t *testing.T) {
	src := `
import Default from "pkg-default";
import * as ns from "pkg-ns";
import { a, b as c } from "pkg-named";
import "pkg-side-effect";
`
	ast, err := NewParser().ParseString(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var imports []*Node
	ast.Walk(func(n *Node) bool {
		if n.Type == NodeImportDeclaration {
			imports = append(imports, n)
		}
		return true
	})
	if len(imports) != 4 {
		t.Fatalf("expected 4 import declarations, got %d", len(imports))
	}

	defaultImport := imports[0]
	if defaultImport.Source.Raw != `"pkg-default"` {
		t.Errorf("unexpected default import source: %q", defaultImport.Source.Raw)
	}
	if len(defaultImport.Specifiers) != 1 || defaultImport.Specifiers[0].Type != NodeImportDefaultSpecifier {
		t.Errorf("expected one default specifier, got %+v", defaultImport.Specifiers)
	}

	namespaceImport := imports[1]
	if len(namespaceImport.Specifiers) != 1 || namespaceImport.Specifiers[0].Type != NodeImportNamespaceSpecifier {
		t.Errorf("expected one namespace specifier, got %+v", namespaceImport.Specifiers)
	}
	if namespaceImport.Specifiers[0].Name != "ns" {
		t.Errorf("expected namespace binding %q, got %q", "ns", namespaceImport.Specifiers[0].Name)
	}

	namedImport := imports[2]
	if len(namedImport.Specifiers) != 2 {
		t.Fatalf("expected 2 named specifiers, got %d", len(namedImport.Specifiers))
	}
	if namedImport.Specifiers[0].Name != "a" {
		t.Errorf("expected first specifier %q, got %q", "a", namedImport.Specifiers[0].Name)
	}
	aliased := namedImport.Specifiers[1]
	if aliased.Name != "c" || aliased.Imported == nil || aliased.Imported.Name != "b" {
		t.Errorf("expected `b as c` to bind local %q to imported %q, got local=%q imported=%v",
			"c", "b", aliased.Name, aliased.Imported)
	}

	sideEffect := imports[3]
	if len(sideEffect.Specifiers) != 0 {
		t.Errorf("expected a bare side-effect import to have no specifiers, got %+v", sideEffect.Specifiers)
	}
}

func TestParseExportVarieties(t *testing.T) {
	src := `
export const a = 1, b = 2;
export function namedFn() {}
export default function () {}
export { a as aliasedA };
export * from "reexport-all";
`
	ast, err := NewParser().ParseString(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var kinds []NodeType
	ast.Walk(func(n *Node) bool {
		switch n.Type {
		case NodeExportNamedDeclaration, NodeExportDefaultDeclaration, NodeExportAllDeclaration:
			kinds = append(kinds, n.Type)
		}
		return true
	})

	want := []NodeType{
		NodeExportNamedDeclaration,   // export const a = 1, b = 2;
		NodeExportNamedDeclaration,   // export function namedFn() {}
		NodeExportDefaultDeclaration, // export default function () {}
		NodeExportNamedDeclaration,   // export { a as aliasedA };
		NodeExportAllDeclaration,     // export * from "reexport-all";
	}
	if len(kinds) != len(want) {
		t.Fatalf("expected export kinds %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("export #%d: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}

func TestParseDynamicImportAndRequire(t *testing.T) {
	src := `
const mod = require("commonjs-dep");
import("dynamic-dep").then(m => m.run());
import(someExpr);
`
	ast, err := NewParser().ParseString(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var callees []string
	dynamicImports := 0
	ast.Walk(func(n *Node) bool {
		if n.Type == NodeCallExpression && n.Callee != nil {
			callees = append(callees, n.Callee.Name)
			if n.Callee.Type == NodeType("import") || n.Callee.Raw == "import" {
				dynamicImports++
			}
		}
		return true
	})

	if dynamicImports != 2 {
		t.Errorf("expected both import(...) calls to be visible as CallExpressions, got %d", dynamicImports)
	}

	foundRequire := false
	for _, c := range callees {
		if c == "require" {
			foundRequire = true
		}
	}
	if !foundRequire {
		t.Errorf("expected a require() call to be visible as a CallExpression, got callees %v", callees)
	}
}

func TestParseCommonJSModuleExports(t *testing.T) {
	src := `module.exports = { a, b: renamed, c };`
	ast, err := NewParser().ParseString(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var assign *Node
	ast.Walk(func(n *Node) bool {
		if n.Type == NodeAssignmentExpression {
			assign = n
		}
		return true
	})
	if assign == nil {
		t.Fatal("expected an AssignmentExpression for module.exports = {...}")
	}
	if assign.Left == nil || assign.Left.Type != NodeMemberExpression {
		t.Fatalf("expected assignment's left side to be a MemberExpression, got %v", assign.Left)
	}
	if assign.Left.Object == nil || assign.Left.Object.Name != "module" {
		t.Errorf("expected left object %q, got %v", "module", assign.Left.Object)
	}
	if assign.Left.Property == nil || assign.Left.Property.Name != "exports" {
		t.Errorf("expected left property %q, got %v", "exports", assign.Left.Property)
	}
	if assign.Right == nil || assign.Right.Type != NodeType("object") {
		t.Fatalf("expected assignment's right side to be an object literal, got %v", assign.Right)
	}
}
