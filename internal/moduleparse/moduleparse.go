// Package moduleparse implements the module parser: it walks the AST of a
// single source file and merges its ESM, dynamic-import, and CommonJS
// surfaces into a domain.ModuleInfo.
package moduleparse

import (
	"github.com/skrulling/unused-buddy-go/domain"
	"github.com/skrulling/unused-buddy-go/internal/parser"
)

// raw tree-sitter node type strings that ast_builder passes through
// unmapped (no dedicated parser.NodeType constant exists for them).
const (
	tsObject = "object"
	tsPair   = "pair"
	// tsImportKeyword is the callee node type tree-sitter-javascript
	// produces for a dynamic import(...) call; distinct from the
	// import_statement rule used for static imports.
	tsImportKeyword = "import"
)

// Parse extracts exports and imports from ast into a ModuleInfo for path.
// text is kept verbatim as RawSource for the safety classifier. A nil ast
// (catastrophic parse failure) yields an empty, otherwise-valid ModuleInfo:
// the file contributes no edges and no exports, but the scan continues.
func Parse(path, text string, ast *parser.Node) *domain.ModuleInfo {
	info := domain.NewModuleInfo(path)
	info.RawSource = text
	if ast == nil {
		return info
	}

	ast.Walk(func(node *parser.Node) bool {
		switch node.Type {
		case parser.NodeImportDeclaration:
			processImportDeclaration(info, node)
			return false

		case parser.NodeExportNamedDeclaration, parser.NodeExportDefaultDeclaration, parser.NodeExportAllDeclaration:
			processExportStatement(info, node)
			return false

		case parser.NodeCallExpression:
			processCallExpression(info, node)

		case parser.NodeAssignmentExpression:
			processCommonJSExport(info, node)
		}
		return true
	})

	return info
}

// processImportDeclaration handles ESM static imports: named, default,
// namespace, and bare side-effect imports (`import "specifier"`).
func processImportDeclaration(info *domain.ModuleInfo, node *parser.Node) {
	if node.Source == nil {
		return
	}
	raw := extractSourceValue(node.Source)
	if raw == "" {
		return
	}

	ref := info.ImportRefFor(raw, node.Location.StartLine)
	for _, spec := range node.Specifiers {
		switch spec.Type {
		case parser.NodeImportDefaultSpecifier:
			ref.Symbols["default"] = true
		case parser.NodeImportNamespaceSpecifier:
			ref.WildcardUse = true
		case parser.NodeImportSpecifier:
			name := spec.Name
			if spec.Imported != nil && spec.Imported.Name != "" {
				name = spec.Imported.Name
			}
			ref.Symbols[name] = true
		}
	}
	// len(node.Specifiers) == 0: a bare `import "specifier"`. ImportRefFor
	// already created an edge-only ref with empty symbols; nothing else to do.
}

// processExportStatement handles local exports, indirect re-exports, star
// re-exports, and default exports.
func processExportStatement(info *domain.ModuleInfo, node *parser.Node) {
	switch node.Type {
	case parser.NodeExportDefaultDeclaration:
		info.Exports["default"] = true

	case parser.NodeExportAllDeclaration:
		// export * from "m" and export * as ns from "m" both reduce to:
		// set wildcard_use on m. Neither enumerates names into this
		// file's own exports (v1 limitation, shared with star re-exports).
		if node.Source != nil {
			if raw := extractSourceValue(node.Source); raw != "" {
				info.ImportRefFor(raw, node.Location.StartLine).WildcardUse = true
			}
		}

	case parser.NodeExportNamedDeclaration:
		processNamedExport(info, node)
	}
}

func processNamedExport(info *domain.ModuleInfo, node *parser.Node) {
	var reExportRef *domain.ImportRef
	if node.Source != nil {
		if raw := extractSourceValue(node.Source); raw != "" {
			reExportRef = info.ImportRefFor(raw, node.Location.StartLine)
		}
	}

	// export { x }, export { x as y } [from "m"]. Local is the name bound
	// in this module (or, for a re-export, the name consumed from m);
	// Name is what this file exports it as.
	for _, spec := range node.Specifiers {
		exportedAs := spec.Name
		consumedName := exportedAs
		if spec.Local != nil && spec.Local.Name != "" {
			consumedName = spec.Local.Name
		}
		info.Exports[exportedAs] = true
		if reExportRef != nil {
			reExportRef.Symbols[consumedName] = true
		}
	}

	// export const/let/var a = 1, b = 2; export function foo() {}; export class Foo {}
	if node.Declaration != nil {
		collectDeclarationNames(info, node.Declaration)
	}
}

func collectDeclarationNames(info *domain.ModuleInfo, decl *parser.Node) {
	if decl.Type == parser.NodeVariableDeclaration {
		for _, d := range decl.Declarations {
			if len(d.Children) > 0 {
				collectPatternNames(info, d.Children[0])
			}
		}
		return
	}
	if decl.Name != "" {
		info.Exports[decl.Name] = true
		return
	}
	// function/class/interface/enum declarations are generic nodes; their
	// bound name is the first identifier child.
	for _, c := range decl.Children {
		if c.Type == parser.NodeIdentifier && c.Name != "" {
			info.Exports[c.Name] = true
			return
		}
	}
}

// collectPatternNames recurses into destructuring patterns
// (`export const { a, b: c } = obj`) to find every bound identifier.
func collectPatternNames(info *domain.ModuleInfo, n *parser.Node) {
	if n == nil {
		return
	}
	if n.Type == parser.NodeIdentifier {
		if n.Name != "" {
			info.Exports[n.Name] = true
		}
		return
	}
	for _, c := range n.Children {
		collectPatternNames(info, c)
	}
}

// processCallExpression detects dynamic import(...) and CommonJS require(...).
func processCallExpression(info *domain.ModuleInfo, node *parser.Node) {
	if node.Callee == nil || len(node.Arguments) == 0 {
		return
	}

	isDynamicImport := node.Callee.Type == parser.NodeType(tsImportKeyword) ||
		(node.Callee.Type == parser.NodeIdentifier && node.Callee.Name == "import") ||
		node.Callee.Raw == "import"
	isRequire := node.Callee.Type == parser.NodeIdentifier && node.Callee.Name == "require"
	if !isDynamicImport && !isRequire {
		return
	}

	arg := node.Arguments[0]
	if isLiteralString(arg) {
		raw := extractSourceValue(arg)
		if raw == "" {
			return
		}
		// Both a resolved dynamic import and a require() are treated as a
		// full namespace consumer of the target.
		info.ImportRefFor(raw, node.Location.StartLine).WildcardUse = true
		return
	}

	if isDynamicImport {
		// Non-literal argument: no edge, an Uncertain finding instead.
		// Keyed separately from the literal-raw namespace so a dynamic
		// expression that happens to read the same as some other
		// specifier's text never merges with it.
		exprText := rawText(arg)
		nonLiteralDynamicRef(info, exprText, node.Location.StartLine)
	}
	// A non-literal require() argument isn't part of the pragmatic CJS
	// surface this parser recognizes; ignored.
}

func nonLiteralDynamicRef(info *domain.ModuleInfo, exprText string, line int) *domain.ImportRef {
	for _, ref := range info.Imports {
		if ref.IsDynamicNonLiteral && ref.Raw == exprText {
			return ref
		}
	}
	ref := &domain.ImportRef{Raw: exprText, Symbols: make(map[string]bool), IsDynamicNonLiteral: true, Line: line}
	info.Imports = append(info.Imports, ref)
	return ref
}

// processCommonJSExport recognizes `module.exports = { a, b: x, c }` and
// `exports.foo = ...`, the pragmatic CommonJS surface this parser supports.
func processCommonJSExport(info *domain.ModuleInfo, node *parser.Node) {
	if node.Left == nil || node.Left.Type != parser.NodeMemberExpression {
		return
	}
	obj, prop := node.Left.Object, node.Left.Property
	if obj == nil || prop == nil || obj.Type != parser.NodeIdentifier || prop.Type != parser.NodeIdentifier {
		return
	}

	switch {
	case obj.Name == "module" && prop.Name == "exports":
		if node.Right == nil || node.Right.Type != parser.NodeType(tsObject) {
			return
		}
		for _, child := range node.Right.Children {
			switch child.Type {
			case parser.NodeIdentifier:
				// shorthand property: { a }
				info.Exports[child.Name] = true
			case parser.NodeType(tsPair):
				// { b: x } — only the key names the export.
				if len(child.Children) > 0 && child.Children[0].Type == parser.NodeIdentifier {
					info.Exports[child.Children[0].Name] = true
				}
			}
		}

	case obj.Name == "exports":
		info.Exports[prop.Name] = true
	}
}

func isLiteralString(n *parser.Node) bool {
	if n == nil || n.Type != parser.NodeStringLiteral {
		return false
	}
	raw := n.Raw
	return len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'')
}

// rawText returns a node's literal source text for use in an Uncertain
// finding id, falling back to its syntactic name for plain identifiers.
func rawText(n *parser.Node) string {
	if n == nil {
		return ""
	}
	if n.Raw != "" {
		return n.Raw
	}
	return n.Name
}

// extractSourceValue strips the surrounding quotes from a string/template
// literal node, the way a `from "..."` or `require("...")` argument appears.
func extractSourceValue(n *parser.Node) string {
	if n == nil {
		return ""
	}
	raw := n.Raw
	if raw == "" {
		raw = n.Name
	}
	if len(raw) >= 2 {
		first, last := raw[0], raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') || (first == '`' && last == '`') {
			return raw[1 : len(raw)-1]
		}
	}
	return raw
}
