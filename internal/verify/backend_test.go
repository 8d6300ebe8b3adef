package verify

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shapesSource = `package shapes

import (
	"fmt"
	"sync"
)

type (
	Point struct {
		X, Y int
	}

	Alias = Point
)

type Set[T comparable] struct {
	sync.Mutex
	*Point
	items map[T]struct{} ` + "`json:\"items\"`" + `
}

type Shape interface {
	fmt.Stringer
	Area() float64
	Perimeter() float64
}

type Level int

func NewSet[T comparable]() *Set[T] { return &Set[T]{} }

func (s *Set[T]) Add(v T) { s.items[v] = struct{}{} }

func (p Point) Area() float64 { return 0 }

func (l Level) String() string { return "" }

func (o *Orphan) Missing() {}
`

func field(name string) *Node { return &Node{Kind: KindField, Name: name} }
func method(name string) *Node { return &Node{Kind: KindMethod, Name: name} }

func expectedShapes() *Node {
	return &Node{Kind: KindFile, Name: "shapes", Children: []*Node{
		{Kind: KindStruct, Name: "Point", Children: []*Node{field("X"), field("Y"), method("Area")}},
		{Kind: KindType, Name: "Alias"},
		{Kind: KindStruct, Name: "Set", Children: []*Node{field("Mutex"), field("Point"), field("items"), method("Add")}},
		{Kind: KindInterface, Name: "Shape", Children: []*Node{method("Area"), method("Perimeter")}},
		{Kind: KindType, Name: "Level", Children: []*Node{method("String")}},
		{Kind: KindFunc, Name: "NewSet"},
		method("Missing"),
	}}
}

func TestBackends_Shape(t *testing.T) {
	t.Parallel()

	for _, name := range BackendNames() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			backend, err := BackendByName(name)
			require.NoError(t, err)

			root, err := backend.Parse([]byte(shapesSource))
			require.NoError(t, err)

			ignoreLines := cmpopts.IgnoreFields(Node{}, "Line")
			if diff := cmp.Diff(expectedShapes(), root, ignoreLines, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s\n%s", diff, spew.Sdump(root))
			}
		})
	}
}

func TestBackends_Parity(t *testing.T) {
	t.Parallel()

	goRoot, err := GoBackend{}.Parse([]byte(shapesSource))
	require.NoError(t, err)

	tsRoot, err := TreeSitterBackend{}.Parse([]byte(shapesSource))
	require.NoError(t, err)

	if diff := cmp.Diff(goRoot, tsRoot, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("backends disagree (-go +treesitter):\n%s", diff)
	}

	assert.Equal(t, 1, goRoot.Line)
	assert.Equal(t, 10, goRoot.Children[0].Children[0].Line, "X is declared on line 10")
}

func TestBackends_ParseError(t *testing.T) {
	t.Parallel()

	sources := map[string]string{
		"truncated":       "package broken\n\nfunc (\n",
		"missing package": "type T struct{}\n",
		"stray brace":     "package broken\n\ntype T struct {\n\tA int\n}}\n",
		"late import":     "package broken\n\nfunc f() {}\n\nimport \"fmt\"\n\nvar _ = fmt.Sprint\n",
	}

	for _, backend := range []Backend{GoBackend{}, TreeSitterBackend{}} {
		for name, src := range sources {
			t.Run(backend.Name()+"/"+name, func(t *testing.T) {
				t.Parallel()

				_, err := New(backend).Parse([]byte(src))
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrParse)

				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, backend.Name(), perr.Backend)
				assert.Positive(t, perr.Line)
			})
		}
	}
}

func TestBackends_LateImport(t *testing.T) {
	t.Parallel()

	src := []byte("package late\n\n// F does nothing.\nfunc F() {}\n\nimport \"fmt\"\n")

	for _, backend := range []Backend{GoBackend{}, TreeSitterBackend{}} {
		t.Run(backend.Name(), func(t *testing.T) {
			t.Parallel()

			_, err := backend.Parse(src)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, 6, perr.Line)
			assert.Equal(t, 1, perr.Column)
			assert.Contains(t, perr.Msg, "imports must appear before other declarations")
		})
	}

	// Imports after the package clause and comments are fine.
	_, err := TreeSitterBackend{}.Parse([]byte("package early\n\n// comment\nimport \"fmt\"\n\nvar _ = fmt.Sprint\n"))
	require.NoError(t, err)
}

func TestBackendByName_Unknown(t *testing.T) {
	t.Parallel()

	_, err := BackendByName("antlr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: go, treesitter")
}
