package parser

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

// Parser wraps a tree-sitter grammar for one of JavaScript or TypeScript.
type Parser struct {
	parser   *sitter.Parser
	language *sitter.Language
	isTS     bool
}

// NewParser creates a JavaScript parser.
func NewParser() *Parser {
	lang := javascript.GetLanguage()
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return &Parser{parser: p, language: lang}
}

// NewTypeScriptParser creates a TypeScript (TSX-capable) parser.
func NewTypeScriptParser() *Parser {
	lang := tsx.GetLanguage()
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return &Parser{parser: p, language: lang, isTS: true}
}

// ParseFile parses source and reduces the tree-sitter CST to a *Node.
func (p *Parser) ParseFile(filename string, source []byte) (*Node, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("no root node in parse tree for %s", filename)
	}

	return newASTBuilder(filename, source).build(root), nil
}

// Parse parses source with no associated filename.
func (p *Parser) Parse(source []byte) (*Node, error) {
	return p.ParseFile("<input>", source)
}

// ParseString is Parse for a string argument.
func (p *Parser) ParseString(source string) (*Node, error) {
	return p.Parse([]byte(source))
}

// IsTypeScript reports whether this parser was built via NewTypeScriptParser.
func (p *Parser) IsTypeScript() bool {
	return p.isTS
}

// Close releases the underlying tree-sitter parser.
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// ParseForLanguage picks JavaScript or TypeScript by filename extension and
// parses source with it.
func ParseForLanguage(filename string, source []byte) (*Node, error) {
	p := NewParser()
	if isTypeScriptFile(filename) {
		p = NewTypeScriptParser()
	}
	defer p.Close()

	return p.ParseFile(filename, source)
}

func isTypeScriptFile(filename string) bool {
	for _, ext := range []string{".ts", ".tsx", ".mts", ".cts"} {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
