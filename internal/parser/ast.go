// Package parser wraps tree-sitter's JS/TS grammars behind a small AST
// tailored to what internal/moduleparse actually reads off it: import and
// export declarations, call expressions (require/dynamic import), member
// and assignment expressions (CommonJS exports), and variable
// declarations/destructuring patterns. It does not model control flow,
// function bodies, or classes — nothing downstream walks them, so there is
// no Node shape for them. Anything not in that list becomes a generic node
// whose only payload is its Children and Raw text, which keeps destructuring patterns
// and object literals walkable without a dedicated case for each one.
package parser

import "fmt"

// NodeType identifies the syntactic shape of a Node.
type NodeType string

const (
	NodeProgram NodeType = "program"

	NodeIdentifier    NodeType = "Identifier"
	NodeStringLiteral NodeType = "StringLiteral"

	NodeImportDeclaration        NodeType = "ImportDeclaration"
	NodeImportSpecifier          NodeType = "ImportSpecifier"
	NodeImportDefaultSpecifier   NodeType = "ImportDefaultSpecifier"
	NodeImportNamespaceSpecifier NodeType = "ImportNamespaceSpecifier"

	NodeExportNamedDeclaration   NodeType = "ExportNamedDeclaration"
	NodeExportDefaultDeclaration NodeType = "ExportDefaultDeclaration"
	NodeExportAllDeclaration     NodeType = "ExportAllDeclaration"
	NodeExportSpecifier          NodeType = "ExportSpecifier"

	NodeVariableDeclaration NodeType = "VariableDeclaration"

	NodeCallExpression       NodeType = "CallExpression"
	NodeMemberExpression     NodeType = "MemberExpression"
	NodeAssignmentExpression NodeType = "AssignmentExpression"
)

// Location is a node's position in its source file. Only StartLine is read
// downstream (it becomes a finding's reported line); the rest exists for
// String().
type Location struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.StartLine, l.StartCol)
}

// Node is one AST node. Only the fields relevant to its Type are
// populated; a generic (unmapped) node carries nothing but Children and Raw.
type Node struct {
	Type     NodeType
	Location Location
	Children []*Node

	Name string // identifier text, or a declaration's bound name
	Raw  string // literal source text, quotes included

	Source       *Node   // import/export source specifier
	Specifiers   []*Node // import/export specifiers
	Declaration  *Node   // an export statement's underlying declaration
	Declarations []*Node // a variable declaration's declarators
	Imported     *Node   // import specifier's imported-from name
	Local        *Node   // export specifier's local name

	Callee    *Node
	Arguments []*Node

	Left     *Node
	Right    *Node
	Object   *Node
	Property *Node
}

// NewNode creates an empty node of the given type.
func NewNode(nodeType NodeType) *Node {
	return &Node{Type: nodeType}
}

// AddChild appends child to n.Children, ignoring a nil child.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
}

// Walk visits n and every node reachable through its populated fields,
// depth-first. The visitor returning false skips that node's subtree.
func (n *Node) Walk(visitor func(*Node) bool) {
	if n == nil {
		return
	}
	if !visitor(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(visitor)
	}
	for _, decl := range n.Declarations {
		decl.Walk(visitor)
	}
	for _, spec := range n.Specifiers {
		spec.Walk(visitor)
	}
	for _, arg := range n.Arguments {
		arg.Walk(visitor)
	}
	if n.Source != nil {
		n.Source.Walk(visitor)
	}
	if n.Declaration != nil {
		n.Declaration.Walk(visitor)
	}
	if n.Callee != nil {
		n.Callee.Walk(visitor)
	}
	if n.Left != nil {
		n.Left.Walk(visitor)
	}
	if n.Right != nil {
		n.Right.Walk(visitor)
	}
	if n.Object != nil {
		n.Object.Walk(visitor)
	}
	if n.Property != nil {
		n.Property.Walk(visitor)
	}
}

func (n *Node) String() string {
	if n.Name != "" {
		return fmt.Sprintf("%s(%s) at %s", n.Type, n.Name, n.Location)
	}
	return fmt.Sprintf("%s at %s", n.Type, n.Location)
}
