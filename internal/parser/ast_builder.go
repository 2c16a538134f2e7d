package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// astBuilder turns a tree-sitter CST into the reduced Node shape the
// module parser consumes. Every CST node type without a dedicated case
// below falls through to buildGeneric, which keeps the subtree walkable
// without requiring a case per tree-sitter grammar rule.
type astBuilder struct {
	filename string
	source   []byte
}

func newASTBuilder(filename string, source []byte) *astBuilder {
	return &astBuilder{filename: filename, source: source}
}

func (b *astBuilder) build(tsNode *sitter.Node) *Node {
	if tsNode == nil {
		return nil
	}
	return b.buildNode(tsNode)
}

func (b *astBuilder) buildNode(tsNode *sitter.Node) *Node {
	if tsNode == nil {
		return nil
	}

	switch tsNode.Type() {
	case "program":
		return b.buildProgram(tsNode)
	case "import_statement":
		return b.buildImportStatement(tsNode)
	case "export_statement":
		return b.buildExportStatement(tsNode)
	case "variable_declaration", "lexical_declaration":
		return b.buildVariableDeclaration(tsNode)
	case "expression_statement":
		return b.buildExpressionStatement(tsNode)
	case "call_expression":
		return b.buildCallExpression(tsNode)
	case "member_expression":
		return b.buildMemberExpression(tsNode)
	case "assignment_expression":
		return b.buildAssignmentExpression(tsNode)
	case "identifier", "property_identifier", "shorthand_property_identifier", "type_identifier":
		return b.buildIdentifier(tsNode)
	case "string":
		return b.buildStringLiteral(tsNode)
	default:
		return b.buildGeneric(tsNode)
	}
}

// buildProgram walks every non-trivia top-level statement into Children.
// Unlike a general-purpose AST, a module's top level is all this parser
// ever needs to enter from the root.
func (b *astBuilder) buildProgram(tsNode *sitter.Node) *Node {
	node := NewNode(NodeProgram)
	node.Location = b.location(tsNode)

	for i := 0; i < int(tsNode.ChildCount()); i++ {
		child := tsNode.Child(i)
		if child == nil || b.isTrivia(child) {
			continue
		}
		if childNode := b.buildNode(child); childNode != nil {
			node.AddChild(childNode)
		}
	}
	return node
}

// buildImportStatement builds static ESM imports: default, namespace,
// named, and bare side-effect imports.
func (b *astBuilder) buildImportStatement(tsNode *sitter.Node) *Node {
	node := NewNode(NodeImportDeclaration)
	node.Location = b.location(tsNode)

	if sourceNode := b.fieldChild(tsNode, "source"); sourceNode != nil {
		node.Source = b.buildNode(sourceNode)
	}

	for i := 0; i < int(tsNode.ChildCount()); i++ {
		child := tsNode.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "import_clause":
			b.collectImportClause(child, node)
		case "namespace_import":
			node.Specifiers = append(node.Specifiers, b.buildNamespaceImport(child))
		case "named_imports":
			b.collectNamedImports(child, node)
		case "import_specifier":
			if spec := b.buildImportSpecifier(child); spec != nil {
				node.Specifiers = append(node.Specifiers, spec)
			}
		}
	}
	return node
}

func (b *astBuilder) collectImportClause(clause *sitter.Node, node *Node) {
	for i := 0; i < int(clause.ChildCount()); i++ {
		child := clause.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "identifier":
			spec := NewNode(NodeImportDefaultSpecifier)
			spec.Location = b.location(child)
			spec.Name = child.Content(b.source)
			node.Specifiers = append(node.Specifiers, spec)
		case "namespace_import":
			node.Specifiers = append(node.Specifiers, b.buildNamespaceImport(child))
		case "named_imports":
			b.collectNamedImports(child, node)
		}
	}
}

func (b *astBuilder) collectNamedImports(namedImports *sitter.Node, node *Node) {
	for i := 0; i < int(namedImports.ChildCount()); i++ {
		child := namedImports.Child(i)
		if child != nil && child.Type() == "import_specifier" {
			if spec := b.buildImportSpecifier(child); spec != nil {
				node.Specifiers = append(node.Specifiers, spec)
			}
		}
	}
}

// buildNamespaceImport handles `import * as name from "m"`.
func (b *astBuilder) buildNamespaceImport(tsNode *sitter.Node) *Node {
	spec := NewNode(NodeImportNamespaceSpecifier)
	spec.Location = b.location(tsNode)
	for j := 0; j < int(tsNode.ChildCount()); j++ {
		if grandchild := tsNode.Child(j); grandchild != nil && grandchild.Type() == "identifier" {
			spec.Name = grandchild.Content(b.source)
		}
	}
	return spec
}

// buildImportSpecifier handles `{ foo }` and `{ foo as bar }`.
func (b *astBuilder) buildImportSpecifier(tsNode *sitter.Node) *Node {
	spec := NewNode(NodeImportSpecifier)
	spec.Location = b.location(tsNode)

	var identifiers []*sitter.Node
	for i := 0; i < int(tsNode.ChildCount()); i++ {
		if child := tsNode.Child(i); child != nil && child.Type() == "identifier" {
			identifiers = append(identifiers, child)
		}
	}

	switch len(identifiers) {
	case 1:
		spec.Name = identifiers[0].Content(b.source)
		spec.Imported = NewNode(NodeIdentifier)
		spec.Imported.Name = spec.Name
	case 2:
		spec.Imported = NewNode(NodeIdentifier)
		spec.Imported.Name = identifiers[0].Content(b.source)
		spec.Name = identifiers[1].Content(b.source)
	}
	return spec
}

// buildExportStatement builds named, default, and star exports/re-exports.
func (b *astBuilder) buildExportStatement(tsNode *sitter.Node) *Node {
	node := NewNode(NodeExportNamedDeclaration)
	node.Location = b.location(tsNode)

	hasDefault, hasWildcard := false, false
	for i := 0; i < int(tsNode.ChildCount()); i++ {
		child := tsNode.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "default":
			hasDefault = true
		case "*", "namespace_export":
			// `export * from "m"` has a bare "*" child; `export * as ns
			// from "m"` wraps it in a namespace_export node.
			hasWildcard = true
		case "export_clause":
			b.collectExportClause(child, node)
		}
	}

	switch {
	case hasDefault:
		node.Type = NodeExportDefaultDeclaration
	case hasWildcard:
		node.Type = NodeExportAllDeclaration
	}

	if declNode := b.fieldChild(tsNode, "declaration"); declNode != nil {
		node.Declaration = b.buildNode(declNode)
	}
	if valueNode := b.fieldChild(tsNode, "value"); valueNode != nil {
		node.Declaration = b.buildNode(valueNode)
	}
	if sourceNode := b.fieldChild(tsNode, "source"); sourceNode != nil {
		node.Source = b.buildNode(sourceNode)
	}
	return node
}

func (b *astBuilder) collectExportClause(clause *sitter.Node, node *Node) {
	for i := 0; i < int(clause.ChildCount()); i++ {
		child := clause.Child(i)
		if child == nil || child.Type() != "export_specifier" {
			continue
		}
		spec := NewNode(NodeExportSpecifier)
		spec.Location = b.location(child)

		var identifiers []*sitter.Node
		for j := 0; j < int(child.ChildCount()); j++ {
			if grandchild := child.Child(j); grandchild != nil && grandchild.Type() == "identifier" {
				identifiers = append(identifiers, grandchild)
			}
		}
		switch len(identifiers) {
		case 1:
			spec.Name = identifiers[0].Content(b.source)
			spec.Local = NewNode(NodeIdentifier)
			spec.Local.Name = spec.Name
		case 2:
			spec.Local = NewNode(NodeIdentifier)
			spec.Local.Name = identifiers[0].Content(b.source)
			spec.Name = identifiers[1].Content(b.source)
		}
		node.Specifiers = append(node.Specifiers, spec)
	}
}

// buildVariableDeclaration builds `var`/`let`/`const`, deferring each
// declarator (and its destructuring pattern, if any) to buildGeneric —
// the pattern shape only needs to be walkable, not individually modeled.
func (b *astBuilder) buildVariableDeclaration(tsNode *sitter.Node) *Node {
	node := NewNode(NodeVariableDeclaration)
	node.Location = b.location(tsNode)

	for i := 0; i < int(tsNode.ChildCount()); i++ {
		child := tsNode.Child(i)
		if child != nil && child.Type() == "variable_declarator" {
			if declNode := b.buildNode(child); declNode != nil {
				node.Declarations = append(node.Declarations, declNode)
			}
		}
	}
	return node
}

// buildExpressionStatement unwraps to the single expression it wraps;
// this parser has no separate ExpressionStatement node.
func (b *astBuilder) buildExpressionStatement(tsNode *sitter.Node) *Node {
	for i := 0; i < int(tsNode.ChildCount()); i++ {
		child := tsNode.Child(i)
		if child != nil && !b.isTrivia(child) && child.Type() != ";" {
			return b.buildNode(child)
		}
	}
	return nil
}

func (b *astBuilder) buildCallExpression(tsNode *sitter.Node) *Node {
	node := NewNode(NodeCallExpression)
	node.Location = b.location(tsNode)

	if fnNode := b.fieldChild(tsNode, "function"); fnNode != nil {
		node.Callee = b.buildNode(fnNode)
	}
	if argsNode := b.fieldChild(tsNode, "arguments"); argsNode != nil {
		for i := 0; i < int(argsNode.ChildCount()); i++ {
			child := argsNode.Child(i)
			if child == nil || b.isTrivia(child) {
				continue
			}
			switch child.Type() {
			case "(", ")", ",":
				continue
			}
			if argNode := b.buildNode(child); argNode != nil {
				node.Arguments = append(node.Arguments, argNode)
			}
		}
	}
	return node
}

func (b *astBuilder) buildMemberExpression(tsNode *sitter.Node) *Node {
	node := NewNode(NodeMemberExpression)
	node.Location = b.location(tsNode)

	if objNode := b.fieldChild(tsNode, "object"); objNode != nil {
		node.Object = b.buildNode(objNode)
	}
	if propNode := b.fieldChild(tsNode, "property"); propNode != nil {
		node.Property = b.buildNode(propNode)
	}
	return node
}

func (b *astBuilder) buildAssignmentExpression(tsNode *sitter.Node) *Node {
	node := NewNode(NodeAssignmentExpression)
	node.Location = b.location(tsNode)

	if leftNode := b.fieldChild(tsNode, "left"); leftNode != nil {
		node.Left = b.buildNode(leftNode)
	}
	if rightNode := b.fieldChild(tsNode, "right"); rightNode != nil {
		node.Right = b.buildNode(rightNode)
	}
	return node
}

func (b *astBuilder) buildIdentifier(tsNode *sitter.Node) *Node {
	node := NewNode(NodeIdentifier)
	node.Location = b.location(tsNode)
	node.Name = tsNode.Content(b.source)
	return node
}

func (b *astBuilder) buildStringLiteral(tsNode *sitter.Node) *Node {
	node := NewNode(NodeStringLiteral)
	node.Location = b.location(tsNode)
	node.Raw = tsNode.Content(b.source)
	return node
}

// buildGeneric handles every node type with no case of its own: object
// literals, object/array destructuring patterns, variable declarators,
// template literals, and any expression moduleparse doesn't special-case.
// Its Type is the raw tree-sitter node kind (e.g. "object", "pair"),
// which is how internal/moduleparse recognizes a CommonJS exports object.
func (b *astBuilder) buildGeneric(tsNode *sitter.Node) *Node {
	node := NewNode(NodeType(tsNode.Type()))
	node.Location = b.location(tsNode)
	node.Raw = tsNode.Content(b.source)

	for i := 0; i < int(tsNode.ChildCount()); i++ {
		child := tsNode.Child(i)
		if child == nil || b.isTrivia(child) {
			continue
		}
		if childNode := b.buildNode(child); childNode != nil {
			node.AddChild(childNode)
		}
	}
	return node
}

func (b *astBuilder) location(tsNode *sitter.Node) Location {
	return Location{
		File:      b.filename,
		StartLine: int(tsNode.StartPoint().Row) + 1,
		StartCol:  int(tsNode.StartPoint().Column),
		EndLine:   int(tsNode.EndPoint().Row) + 1,
		EndCol:    int(tsNode.EndPoint().Column),
	}
}

func (b *astBuilder) fieldChild(tsNode *sitter.Node, fieldName string) *sitter.Node {
	for i := 0; i < int(tsNode.ChildCount()); i++ {
		if child := tsNode.Child(i); child != nil && tsNode.FieldNameForChild(i) == fieldName {
			return child
		}
	}
	return nil
}

func (b *astBuilder) isTrivia(tsNode *sitter.Node) bool {
	switch tsNode.Type() {
	case "comment", "line_comment", "block_comment", "":
		return true
	}
	return false
}
