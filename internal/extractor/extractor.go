// Package extractor implements the dependency extractor:
// a declaration scan over use-trees and inline modules, followed by a
// reference scan over qualified paths in expression and type position,
// sharing one alias table and emitting one order-preserving, deduplicated
// dependency list. Grounded line-for-line on
// original_source/src/dependency_parsing.rs (collect_dependencies_from_tree,
// DependencyVisitor, resolve_super_path, rejoin_alias_with_rest).
package extractor

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/archguard/archguard/internal/logicalpath"
	"github.com/archguard/archguard/internal/rustsyntax"
)

// Extract walks tree, the syntax tree of a file whose canonical location is
// currentModule, and returns its dependencies in first-occurrence order.
func Extract(tree *rustsyntax.Tree, currentModule logicalpath.Path) []logicalpath.Path {
	e := &extraction{
		source:  tree.Source,
		module:  currentModule,
		aliases: make(map[string]logicalpath.Path),
		seen:    make(map[logicalpath.Path]bool),
	}
	e.scanDeclarations(tree.Root(), currentModule)
	e.scanReferences(tree.Root())
	return e.ordered
}

type extraction struct {
	source  []byte
	module  logicalpath.Path
	aliases map[string]logicalpath.Path
	seen    map[logicalpath.Path]bool
	ordered []logicalpath.Path
}

func (e *extraction) emit(p logicalpath.Path) {
	if p == logicalpath.Empty || e.seen[p] {
		return
	}
	e.seen[p] = true
	e.ordered = append(e.ordered, p)
}

func (e *extraction) text(node *sitter.Node) string {
	return rustsyntax.Text(node, e.source)
}

// ---- declaration scan ----

// scanDeclarations walks container's item children, recursing into inline
// modules with their own enclosing logical path, exactly as
// parse_inline_module does.
func (e *extraction) scanDeclarations(container *sitter.Node, enclosing logicalpath.Path) {
	for i := 0; i < int(container.NamedChildCount()); i++ {
		item := container.NamedChild(i)
		switch item.Type() {
		case "use_declaration":
			if arg := item.ChildByFieldName("argument"); arg != nil {
				e.walkUseClause(arg, enclosing, nil)
			}
		case "mod_item":
			body := item.ChildByFieldName("body")
			name := item.ChildByFieldName("name")
			if body != nil && name != nil {
				e.scanDeclarations(body, enclosing.Child(e.text(name)))
			}
		}
	}
}

// walkUseClause implements the five UseTree variants over
// the tree-sitter Rust grammar's flattened scoped_identifier/use_list
// shapes.
func (e *extraction) walkUseClause(node *sitter.Node, enclosing logicalpath.Path, prefix []string) {
	switch node.Type() {
	case "scoped_identifier":
		name := node.ChildByFieldName("name")
		if name == nil {
			return
		}
		base := e.resolvePrefix(node.ChildByFieldName("path"), enclosing, prefix)
		full := append(append([]string{}, base...), e.text(name))
		e.emit(logicalpath.Join(full...))
		e.aliases[e.text(name)] = logicalpath.Join(full...)

	case "use_list":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			e.walkUseClause(node.NamedChild(i), enclosing, prefix)
		}

	case "scoped_use_list":
		newPrefix := prefix
		if path := node.ChildByFieldName("path"); path != nil {
			newPrefix = e.resolvePrefix(path, enclosing, prefix)
		}
		if list := node.ChildByFieldName("list"); list != nil {
			for i := 0; i < int(list.NamedChildCount()); i++ {
				e.walkUseClause(list.NamedChild(i), enclosing, newPrefix)
			}
		}

	case "use_wildcard":
		// when the path is not exposed as a "path" field, it is the
		// node's only named child (the part before "::*").
		newPrefix := prefix
		path := node.ChildByFieldName("path")
		if path == nil && node.NamedChildCount() > 0 {
			path = node.NamedChild(0)
		}
		if path != nil {
			newPrefix = e.resolvePrefix(path, enclosing, prefix)
		}
		e.emit(logicalpath.Join(append(append([]string{}, newPrefix...), "*")...))

	case "use_as_clause":
		path := node.ChildByFieldName("path")
		alias := node.ChildByFieldName("alias")
		if path == nil {
			return
		}
		full := e.resolveFullPath(path, enclosing, prefix)
		joined := logicalpath.Join(full...)
		e.emit(joined)
		if alias != nil {
			e.aliases[e.text(alias)] = joined
		}

	default:
		// a bare leaf clause: "use foo;" at the top, or a plain name
		// inside a group such as "use a::{b};". crate/super, and self
		// outside a group, would mean "use crate;" and friends, which
		// resolve to the enclosing module itself with no further leaf to
		// record. self inside a group ("use a::b::{self, C};") is recorded
		// like any other leaf, as a::b::self.
		text := e.text(node)
		switch {
		case text == "crate":
			e.emit(logicalpath.Path(e.module.Head()))
		case text == "super":
			e.emit(enclosing.Parent())
		case text == "self" && len(prefix) == 0:
			e.emit(enclosing)
		default:
			full := append(append([]string{}, prefix...), text)
			joined := logicalpath.Join(full...)
			e.emit(joined)
			e.aliases[text] = joined
		}
	}
}

// resolvePrefix resolves a pure path-prefix node (no leaf name of its
// own), applying crate/super/self substitution at the leftmost segment.
// Matching is by text, not tree-sitter node kind, so this is independent
// of whether the grammar models crate/self/super as dedicated node types
// or as plain identifiers spelled that way.
func (e *extraction) resolvePrefix(node *sitter.Node, enclosing logicalpath.Path, prefix []string) []string {
	if node == nil {
		return prefix
	}
	if node.Type() == "scoped_identifier" {
		name := node.ChildByFieldName("name")
		base := e.resolvePrefix(node.ChildByFieldName("path"), enclosing, prefix)
		if name != nil {
			base = append(base, e.text(name))
		}
		return base
	}
	switch e.text(node) {
	case "crate":
		return []string{e.module.Head()}
	case "super":
		return enclosing.Parent().Segments()
	case "self":
		return enclosing.Segments()
	default:
		return append(append([]string{}, prefix...), e.text(node))
	}
}

// resolveFullPath is resolvePrefix but for a node that may itself be the
// final leaf (used for use_as_clause's renamed target).
func (e *extraction) resolveFullPath(node *sitter.Node, enclosing logicalpath.Path, prefix []string) []string {
	if node.Type() == "scoped_identifier" {
		name := node.ChildByFieldName("name")
		base := e.resolvePrefix(node.ChildByFieldName("path"), enclosing, prefix)
		if name != nil {
			base = append(base, e.text(name))
		}
		return base
	}
	switch e.text(node) {
	case "crate":
		return []string{e.module.Head()}
	case "super":
		return enclosing.Parent().Segments()
	default:
		return append(append([]string{}, prefix...), e.text(node))
	}
}

// ---- reference scan ----

// scanReferences walks the whole tree for qualified paths in expression and
// type position, skipping use_declaration subtrees (already consumed by
// the declaration scan) and using the file-level module throughout: inline
// modules do not re-scope super (unlike the declaration scan).
func (e *extraction) scanReferences(node *sitter.Node) {
	if node == nil {
		return
	}
	switch node.Type() {
	case "use_declaration":
		return
	case "scoped_identifier", "scoped_type_identifier":
		e.emitReference(node, rustsyntax.IsTypePosition(node))
		return
	case "identifier":
		if !rustsyntax.IsDeclarationName(node) && !rustsyntax.IsTypePosition(node) {
			e.emitExprSegment(node)
		}
	case "type_identifier":
		// single-segment type paths are never external dependencies.
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		e.scanReferences(node.NamedChild(i))
	}
}

func (e *extraction) collectSegments(node *sitter.Node) []string {
	switch node.Type() {
	case "scoped_identifier", "scoped_type_identifier":
		var segs []string
		if path := node.ChildByFieldName("path"); path != nil {
			segs = e.collectSegments(path)
		}
		if name := node.ChildByFieldName("name"); name != nil {
			segs = append(segs, e.text(name))
		}
		return segs
	default:
		return []string{e.text(node)}
	}
}

// emitReference resolves a multi-segment scoped path found outside a
// use-declaration. typePosition controls the as-is fallback, which applies
// only to type paths: an unaliased, non-crate, non-super
// expression-position path is silently dropped.
func (e *extraction) emitReference(node *sitter.Node, typePosition bool) {
	segs := e.collectSegments(node)
	if len(segs) < 2 {
		return
	}
	switch segs[0] {
	case "crate":
		// emitted as-is: the literal "crate" segment is kept, unlike the
		// declaration scan which substitutes the package name.
		e.emit(logicalpath.Join(segs...))
	case "super":
		parent := e.module.Parent()
		rest := segs[1:]
		if len(rest) == 0 {
			e.emit(parent)
			return
		}
		e.emit(logicalpath.Join(append(parent.Segments(), rest...)...))
	default:
		if full, ok := e.aliases[segs[0]]; ok {
			rest := segs[1:]
			if len(rest) == 0 {
				e.emit(full)
				return
			}
			e.emit(logicalpath.Join(append(full.Segments(), rest...)...))
			return
		}
		if typePosition {
			e.emit(logicalpath.Join(segs...))
		}
	}
}

// emitExprSegment handles a bare single-segment expression path: it is
// only meaningful when it names a crate/super keyword or a known alias.
func (e *extraction) emitExprSegment(node *sitter.Node) {
	text := e.text(node)
	switch text {
	case "crate":
		e.emit(logicalpath.Path("crate"))
	case "super":
		e.emit(e.module.Parent())
	default:
		if full, ok := e.aliases[text]; ok {
			e.emit(full)
		}
	}
}
