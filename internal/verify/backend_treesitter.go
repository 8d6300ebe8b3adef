package verify

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

// TreeSitterBackend parses with tree-sitter's Go grammar. Trees containing
// ERROR or MISSING nodes are rejected, since tree-sitter recovers from
// syntax errors instead of failing.
type TreeSitterBackend struct{}

func (TreeSitterBackend) Name() string { return "treesitter" }

func (b TreeSitterBackend) Parse(src []byte) (*Node, error) {
	// Parsers are not safe for concurrent use; one per call keeps the backend stateless.
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(golang.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, &ParseError{Backend: b.Name(), Msg: err.Error()}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, b.syntaxError(root)
	}

	w := tsWalker{src: src}

	var (
		pkgName  string
		pkgLine  int
		decls    []decl
		declSeen bool
	)

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)

		// The grammar accepts imports anywhere at file level; Go does not.
		switch child.Type() {
		case "import_declaration":
			if declSeen {
				pt := child.StartPoint()

				return nil, &ParseError{
					Backend: b.Name(),
					Line:    int(pt.Row) + 1,
					Column:  int(pt.Column) + 1,
					Msg:     "imports must appear before other declarations",
				}
			}
		case "type_declaration", "function_declaration", "method_declaration",
			"const_declaration", "var_declaration":
			declSeen = true
		}

		switch child.Type() {
		case "package_clause":
			if id := w.firstOfType(child, "package_identifier"); id != nil {
				pkgName, pkgLine = w.text(id), w.line(id)
			}

		case "type_declaration":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				spec := child.NamedChild(j)
				if spec.Type() == "type_spec" || spec.Type() == "type_alias" {
					decls = append(decls, decl{node: w.typeNode(spec)})
				}
			}

		case "function_declaration":
			name := child.ChildByFieldName("name")
			decls = append(decls, decl{node: &Node{Kind: KindFunc, Name: w.text(name), Line: w.line(name)}})

		case "method_declaration":
			name := child.ChildByFieldName("name")
			decls = append(decls, decl{
				node:     &Node{Kind: KindMethod, Name: w.text(name), Line: w.line(name)},
				receiver: w.receiverBase(child.ChildByFieldName("receiver")),
			})
		}
	}

	if pkgName == "" {
		return nil, &ParseError{Backend: b.Name(), Line: 1, Column: 1, Msg: "expected 'package' clause"}
	}

	return assemble(pkgName, pkgLine, decls), nil
}

func (b TreeSitterBackend) syntaxError(root *sitter.Node) error {
	bad := findNode(root, func(n *sitter.Node) bool { return n.Type() == "ERROR" || n.IsMissing() })
	if bad == nil {
		return &ParseError{Backend: b.Name(), Msg: "syntax error"}
	}

	msg := "unexpected input"
	if bad.IsMissing() {
		msg = fmt.Sprintf("missing %s", bad.Type())
	}

	pt := bad.StartPoint()

	return &ParseError{Backend: b.Name(), Line: int(pt.Row) + 1, Column: int(pt.Column) + 1, Msg: msg}
}

type tsWalker struct {
	src []byte
}

func (w tsWalker) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	return n.Content(w.src)
}

func (w tsWalker) line(n *sitter.Node) int {
	if n == nil {
		return 0
	}

	return int(n.StartPoint().Row) + 1
}

// firstOfType returns the first descendant of n (n included) of the given
// node type, depth first.
func (w tsWalker) firstOfType(n *sitter.Node, nodeType string) *sitter.Node {
	return findNode(n, func(c *sitter.Node) bool { return c.Type() == nodeType })
}

// receiverBase returns the base type name of a method receiver list:
// "(s *pkg.Set[T])" -> "Set".
func (w tsWalker) receiverBase(params *sitter.Node) string {
	if params == nil {
		return ""
	}

	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		if p.Type() != "parameter_declaration" {
			continue
		}

		return w.text(w.firstOfType(p.ChildByFieldName("type"), "type_identifier"))
	}

	return ""
}

func (w tsWalker) typeNode(spec *sitter.Node) *Node {
	name := spec.ChildByFieldName("name")
	n := &Node{Kind: KindType, Name: w.text(name), Line: w.line(name)}

	if spec.Type() == "type_alias" {
		return n
	}

	typ := spec.ChildByFieldName("type")
	if typ == nil {
		return n
	}

	switch typ.Type() {
	case "struct_type":
		n.Kind = KindStruct
		n.Children = w.structFields(typ)

	case "interface_type":
		n.Kind = KindInterface

		for i := 0; i < int(typ.NamedChildCount()); i++ {
			elem := typ.NamedChild(i)
			// method_spec in older grammar releases, method_elem in newer ones.
			if elem.Type() != "method_elem" && elem.Type() != "method_spec" {
				continue
			}

			mname := elem.ChildByFieldName("name")
			n.Children = append(n.Children, &Node{Kind: KindMethod, Name: w.text(mname), Line: w.line(mname)})
		}
	}

	return n
}

func (w tsWalker) structFields(structType *sitter.Node) []*Node {
	list := w.firstOfType(structType, "field_declaration_list")
	if list == nil {
		return nil
	}

	var fields []*Node

	for i := 0; i < int(list.NamedChildCount()); i++ {
		fd := list.NamedChild(i)
		if fd.Type() != "field_declaration" {
			continue
		}

		named := false

		for j := 0; j < int(fd.NamedChildCount()); j++ {
			c := fd.NamedChild(j)
			if c.Type() == "field_identifier" {
				named = true
				fields = append(fields, &Node{Kind: KindField, Name: w.text(c), Line: w.line(c)})
			}
		}

		if !named {
			typ := fd.ChildByFieldName("type")
			fields = append(fields, &Node{
				Kind: KindField,
				Name: w.text(w.firstOfType(typ, "type_identifier")),
				Line: w.line(typ),
			})
		}
	}

	return fields
}

func findNode(n *sitter.Node, pred func(*sitter.Node) bool) *sitter.Node {
	if n == nil {
		return nil
	}

	if pred(n) {
		return n
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		if found := findNode(n.Child(i), pred); found != nil {
			return found
		}
	}

	return nil
}
