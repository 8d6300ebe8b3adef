package verify

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
)

// GoBackend parses with the standard library's go/parser.
type GoBackend struct{}

func (GoBackend) Name() string { return "go" }

func (b GoBackend) Parse(src []byte) (*Node, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "source.go", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, b.parseError(err)
	}

	line := func(n ast.Node) int { return fset.Position(n.Pos()).Line }

	var decls []decl

	for _, d := range file.Decls {
		switch d := d.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}

			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					decls = append(decls, decl{node: goTypeNode(ts, line)})
				}
			}

		case *ast.FuncDecl:
			n := &Node{Kind: KindFunc, Name: d.Name.Name, Line: line(d.Name)}
			if d.Recv == nil || len(d.Recv.List) == 0 {
				decls = append(decls, decl{node: n})

				continue
			}

			n.Kind = KindMethod
			decls = append(decls, decl{node: n, receiver: goBaseTypeName(d.Recv.List[0].Type)})
		}
	}

	return assemble(file.Name.Name, line(file.Name), decls), nil
}

func (b GoBackend) parseError(err error) error {
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		return &ParseError{
			Backend: b.Name(),
			Line:    list[0].Pos.Line,
			Column:  list[0].Pos.Column,
			Msg:     list[0].Msg,
		}
	}

	return &ParseError{Backend: b.Name(), Msg: err.Error()}
}

func goTypeNode(ts *ast.TypeSpec, line func(ast.Node) int) *Node {
	n := &Node{Kind: KindType, Name: ts.Name.Name, Line: line(ts.Name)}
	if ts.Assign.IsValid() {
		return n
	}

	switch t := ts.Type.(type) {
	case *ast.StructType:
		n.Kind = KindStruct

		for _, f := range t.Fields.List {
			if len(f.Names) == 0 {
				n.Children = append(n.Children, &Node{Kind: KindField, Name: goBaseTypeName(f.Type), Line: line(f.Type)})

				continue
			}

			for _, name := range f.Names {
				n.Children = append(n.Children, &Node{Kind: KindField, Name: name.Name, Line: line(name)})
			}
		}

	case *ast.InterfaceType:
		n.Kind = KindInterface

		for _, m := range t.Methods.List {
			if _, ok := m.Type.(*ast.FuncType); !ok {
				continue
			}

			for _, name := range m.Names {
				n.Children = append(n.Children, &Node{Kind: KindMethod, Name: name.Name, Line: line(name)})
			}
		}
	}

	return n
}

// goBaseTypeName strips pointers, qualifiers and type arguments:
// "*pkg.List[T]" -> "List".
func goBaseTypeName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return goBaseTypeName(e.X)
	case *ast.ParenExpr:
		return goBaseTypeName(e.X)
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return goBaseTypeName(e.X)
	case *ast.IndexListExpr:
		return goBaseTypeName(e.X)
	default:
		return ""
	}
}
