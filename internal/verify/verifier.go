package verify

import (
	"fmt"

	"log-format-enforcer/internal/common"
	"log-format-enforcer/internal/match"
)

// maxSuggestions bounds the "did you mean" list of a LookupError.
const maxSuggestions = 3

// Verifier parses source with one backend.
type Verifier struct {
	backend Backend
}

// New returns a Verifier using backend, or GoBackend when backend is nil.
func New(backend Backend) *Verifier {
	if backend == nil {
		backend = GoBackend{}
	}

	return &Verifier{backend: backend}
}

// Tree is a parsed source file. It is never modified after Parse.
type Tree struct {
	Root    *Node
	Backend string
}

// Parse parses src with the default backend.
func Parse(src []byte) (*Tree, error) {
	return New(nil).Parse(src)
}

// Parse parses src into a Tree. Errors wrap ErrParse.
func (v *Verifier) Parse(src []byte) (*Tree, error) {
	root, err := v.backend.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing source: %w", err)
	}

	return &Tree{Root: root, Backend: v.backend.Name()}, nil
}

// PrimaryType returns the first type declared in the file.
func (t *Tree) PrimaryType() (*Node, error) {
	if t == nil || t.Root == nil {
		return nil, fmt.Errorf("%w: primary type: nil tree", ErrLookup)
	}

	first, ok := common.First(t.Root.Types())
	if !ok {
		return nil, &LookupError{What: "type", Name: "<any>", Scope: t.Root.Name}
	}

	return first, nil
}

// FindType returns the unique type declared in the file under name.
func FindType(tree *Tree, name string) (*Node, error) {
	if tree == nil || tree.Root == nil {
		return nil, fmt.Errorf("%w: type %q: nil tree", ErrLookup, name)
	}

	return lookup(tree.Root, "type", name, func(n *Node) bool { return n.Kind.IsType() })
}

// FindMethod returns the unique method named name among the immediate
// members of scope.
func FindMethod(scope *Node, name string) (*Node, error) {
	if scope == nil {
		return nil, fmt.Errorf("%w: method %q: nil scope", ErrLookup, name)
	}

	return lookup(scope, "method", name, func(n *Node) bool { return n.Kind == KindMethod })
}

func lookup(scope *Node, what, name string, keep func(*Node) bool) (*Node, error) {
	candidates := common.Filter(scope.Children, keep)
	matches := common.Filter(candidates, func(n *Node) bool { return n.Name == name })

	if common.IsSingle(matches) {
		return matches[0], nil
	}

	err := &LookupError{
		What:      what,
		Name:      name,
		Scope:     scope.Name,
		Matches:   len(matches),
		Ambiguous: common.IsMultiple(matches),
	}
	if !err.Ambiguous {
		err.Suggestions = match.Suggest(name, nodeNames(candidates), maxSuggestions)
	}

	return nil, err
}
