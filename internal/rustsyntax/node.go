package rustsyntax

import sitter "github.com/smacker/go-tree-sitter"

// Text returns a node's source text.
func Text(node *sitter.Node, source []byte) string {
	return node.Content(source)
}

func sameNode(a, b *sitter.Node) bool {
	return a != nil && b != nil && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}

// typeOnlyParents are node kinds that exclusively hold type children: any
// direct child of one of these is always in type position.
var typeOnlyParents = map[string]bool{
	"generic_type":         true,
	"reference_type":       true,
	"pointer_type":         true,
	"array_type":           true,
	"tuple_type":           true,
	"type_arguments":       true,
	"bounded_type":         true,
	"dynamic_type":         true,
	"trait_bound":          true,
	"qualified_type":       true,
	"where_predicate":      true,
	"abstract_type":        true,
	"higher_ranked_trait_bound": true,
}

// IsTypePosition reports whether node occurs in a type annotation rather
// than an expression. tree-sitter's untyped CST has no ExprPath/TypePath
// distinction the way syn does, so this is a structural approximation:
// node kinds that only ever contain types, plus the specific typed fields
// (parameter/return/field/const types) of declaration nodes.
func IsTypePosition(node *sitter.Node) bool {
	parent := node.Parent()
	if parent == nil {
		return false
	}
	if typeOnlyParents[parent.Type()] {
		return true
	}
	switch parent.Type() {
	case "let_declaration", "parameter", "field_declaration", "const_item", "static_item", "type_cast_expression":
		return sameNode(parent.ChildByFieldName("type"), node)
	case "function_item", "function_signature_item", "closure_expression":
		return sameNode(parent.ChildByFieldName("return_type"), node)
	case "impl_item":
		return sameNode(parent.ChildByFieldName("trait"), node) || sameNode(parent.ChildByFieldName("type"), node)
	}
	return false
}

// declarationNameParents are item kinds whose "name" (or binding
// "pattern") field introduces a symbol rather than referencing one.
var declarationNameParents = map[string]bool{
	"mod_item":                true,
	"function_item":           true,
	"function_signature_item": true,
	"struct_item":             true,
	"enum_item":               true,
	"trait_item":              true,
	"const_item":              true,
	"static_item":             true,
	"type_item":                true,
	"enum_variant":            true,
	"macro_definition":        true,
	"field_declaration":       true,
}

// IsDeclarationName reports whether node is the binding name of a
// declaration (a function, type, or module's own name) rather than a use
// of some other path.
func IsDeclarationName(node *sitter.Node) bool {
	parent := node.Parent()
	if parent == nil {
		return false
	}
	if declarationNameParents[parent.Type()] {
		return sameNode(parent.ChildByFieldName("name"), node)
	}
	switch parent.Type() {
	case "parameter", "let_declaration", "closure_parameters":
		return sameNode(parent.ChildByFieldName("pattern"), node)
	}
	return false
}
