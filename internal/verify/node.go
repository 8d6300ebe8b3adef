package verify

import "log-format-enforcer/internal/common"

// Kind classifies a declaration node.
type Kind int

const (
	KindFile Kind = iota + 1
	KindStruct
	KindInterface
	KindType // any other named type, including aliases
	KindMethod
	KindFunc
	KindField
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindStruct:
		return "struct"
	case KindInterface:
		return "interface"
	case KindType:
		return "type"
	case KindMethod:
		return "method"
	case KindFunc:
		return "func"
	case KindField:
		return "field"
	default:
		return common.UnknownStr
	}
}

// IsType reports whether k is a type declaration.
func (k Kind) IsType() bool {
	return k == KindStruct || k == KindInterface || k == KindType
}

// Node is one declaration. Children are the immediate members of the scope
// the node opens:
//   - file: type declarations, functions, and methods of undeclared receivers
//   - struct: fields, then methods in source order
//   - interface: method elements
type Node struct {
	Kind     Kind
	Name     string
	Line     int
	Children []*Node
}

// Members returns the children of kind k, in order.
func (n *Node) Members(k Kind) []*Node {
	return common.Filter(n.Children, func(c *Node) bool { return c.Kind == k })
}

// Types returns the type declarations among the children.
func (n *Node) Types() []*Node {
	return common.Filter(n.Children, func(c *Node) bool { return c.Kind.IsType() })
}

func nodeNames(nodes []*Node) []string {
	return common.Map(nodes, func(n *Node) string { return n.Name })
}

// decl is a top-level declaration as reported by a backend, before methods
// are attached to their receiver types.
type decl struct {
	node     *Node
	receiver string // base receiver type name, methods only
}

// assemble builds the file tree shared by all backends: type and function
// declarations stay in source order, and methods move under the first type
// declaration named like their receiver.
func assemble(pkgName string, line int, decls []decl) *Node {
	root := &Node{Kind: KindFile, Name: pkgName, Line: line}
	typesByName := make(map[string]*Node)

	for _, d := range decls {
		if d.node.Kind == KindMethod {
			continue
		}

		root.Children = append(root.Children, d.node)

		if _, dup := typesByName[d.node.Name]; d.node.Kind.IsType() && !dup {
			typesByName[d.node.Name] = d.node
		}
	}

	for _, d := range decls {
		if d.node.Kind != KindMethod {
			continue
		}

		owner, ok := typesByName[d.receiver]
		if !ok || owner.Kind == KindInterface {
			owner = root
		}

		owner.Children = append(owner.Children, d.node)
	}

	return root
}
