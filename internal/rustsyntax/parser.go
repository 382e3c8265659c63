// Package rustsyntax wraps tree-sitter parsing of Rust source into the
// syntax trees the dependency extractor walks. Uses the same
// github.com/smacker/go-tree-sitter parser/query plumbing as
// jinterlante1206-AleutianLocal's validate.SyntaxTool, against the rust
// grammar subpackage.
package rustsyntax

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
)

// Tree is a parsed Rust source file. Callers must call Close when done.
type Tree struct {
	sitter *sitter.Tree
	Source []byte
}

// Root returns the tree's root source_file node.
func (t *Tree) Root() *sitter.Node {
	return t.sitter.RootNode()
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	t.sitter.Close()
}

// Parser parses Rust source into syntax trees.
type Parser struct {
	parser *sitter.Parser
	lang   *sitter.Language
}

// New returns a Parser configured for Rust.
func New() *Parser {
	lang := rust.GetLanguage()
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return &Parser{parser: p, lang: lang}
}

// Parse parses source into a Tree.
func (p *Parser) Parse(source []byte) (*Tree, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("rustsyntax: parse: %w", err)
	}
	if tree == nil || tree.RootNode() == nil {
		return nil, fmt.Errorf("rustsyntax: parse produced no tree")
	}
	return &Tree{sitter: tree, Source: source}, nil
}

// ParseFile reads and parses a source file from disk.
func (p *Parser) ParseFile(path string) (*Tree, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rustsyntax: read %s: %w", path, err)
	}
	return p.Parse(content)
}
