package verify_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-format-enforcer/internal/verify"
	"log-format-enforcer/internal/verify/verifytest"
)

func TestFindType(t *testing.T) {
	t.Parallel()

	tree := verifytest.ParseSource(t, []byte(verify.ShapesSource), nil)
	assert.Equal(t, "go", tree.Backend)

	set := verifytest.RequireType(t, tree, "Set")
	assert.Equal(t, verify.KindStruct, set.Kind)

	shape := verifytest.RequireType(t, tree, "Shape")
	assert.Equal(t, verify.KindInterface, shape.Kind)

	_, err := verify.FindType(tree, "NewSet")
	require.ErrorIs(t, err, verify.ErrLookup, "functions are not types")

	_, err = verify.FindType(tree, "Pointt")
	require.Error(t, err)
	assert.Equal(t, "type 'Pointt' not found under 'shapes' (did you mean 'Point'?)", err.Error())
}

func TestFindMethod(t *testing.T) {
	t.Parallel()

	tree := verifytest.ParseSource(t, []byte(verify.ShapesSource), verify.TreeSitterBackend{})
	assert.Equal(t, "treesitter", tree.Backend)

	point := verifytest.RequireType(t, tree, "Point")
	area := verifytest.RequireMethod(t, point, "Area")
	assert.Equal(t, verify.KindMethod, area.Kind)

	shape := verifytest.RequireType(t, tree, "Shape")
	verifytest.RequireMethod(t, shape, "Perimeter")
	assert.Equal(t, []string{"Area", "Perimeter"}, verifytest.MethodNames(shape))

	verifytest.RequireNoMethod(t, point, "X")
	verifytest.RequireNoMethod(t, point, "Add")

	_, err := verify.FindMethod(point, "Aera")

	var lerr *verify.LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "method", lerr.What)
	assert.Equal(t, "Aera", lerr.Name)
	assert.Equal(t, "Point", lerr.Scope)
	assert.Zero(t, lerr.Matches)
	assert.Equal(t, []string{"Area"}, lerr.Suggestions)

	orphan := verifytest.RequireMethod(t, tree.Root, "Missing")
	assert.Equal(t, "Missing", orphan.Name)
}

func TestLookup_Ambiguous(t *testing.T) {
	t.Parallel()

	src := []byte(`package dup

type T struct{}

type T struct{}

func (T) M() {}

func (T) M() {}
`)

	tree := verifytest.ParseSource(t, src, nil)

	_, err := verify.FindType(tree, "T")
	require.ErrorIs(t, err, verify.ErrLookup)
	assert.Equal(t, "type 'T' is ambiguous under 'dup': 2 matches", err.Error())

	first := tree.Root.Types()[0]
	_, err = verify.FindMethod(first, "M")
	require.ErrorIs(t, err, verify.ErrLookup)
	assert.Equal(t, "method 'M' is ambiguous under 'T': 2 matches", err.Error())

	var lerr *verify.LookupError
	require.ErrorAs(t, err, &lerr)
	assert.True(t, lerr.Ambiguous)
	assert.Empty(t, lerr.Suggestions)
	assert.Empty(t, tree.Root.Types()[1].Children, "methods attach to the first declaration")
}

func TestLookup_Idempotent(t *testing.T) {
	t.Parallel()

	tree := verifytest.ParseSource(t, []byte(verify.ShapesSource), nil)

	first, err := verify.FindType(tree, "Level")
	require.NoError(t, err)

	second, err := verify.FindType(tree, "Level")
	require.NoError(t, err)
	assert.Same(t, first, second)

	m1, err := verify.FindMethod(first, "String")
	require.NoError(t, err)

	m2, err := verify.FindMethod(first, "String")
	require.NoError(t, err)
	assert.Same(t, m1, m2)
}

func TestLookup_NilScope(t *testing.T) {
	t.Parallel()

	_, err := verify.FindMethod(nil, "Format")
	assert.ErrorIs(t, err, verify.ErrLookup)

	_, err = verify.FindType(nil, "LogEntry")
	assert.ErrorIs(t, err, verify.ErrLookup)

	var nilTree *verify.Tree
	_, err = nilTree.PrimaryType()
	assert.ErrorIs(t, err, verify.ErrLookup)

	_, err = (&verify.Tree{}).PrimaryType()
	assert.ErrorIs(t, err, verify.ErrLookup)
}

func TestTree_PrimaryType(t *testing.T) {
	t.Parallel()

	tree := verifytest.ParseSource(t, []byte(verify.ShapesSource), nil)

	primary, err := tree.PrimaryType()
	require.NoError(t, err)
	assert.Equal(t, "Point", primary.Name)

	empty := verifytest.ParseSource(t, []byte("package empty\n\nfunc F() {}\n"), nil)
	_, err = empty.PrimaryType()
	assert.ErrorIs(t, err, verify.ErrLookup)
}

func TestParse_ConcurrentScenarios(t *testing.T) {
	t.Parallel()

	for i := range 8 {
		for _, backend := range []verify.Backend{verify.GoBackend{}, verify.TreeSitterBackend{}} {
			t.Run(fmt.Sprintf("%s/%d", backend.Name(), i), func(t *testing.T) {
				t.Parallel()

				tree := verifytest.ParseSource(t, []byte(verify.ShapesSource), backend)
				set := verifytest.RequireType(t, tree, "Set")
				verifytest.RequireMethod(t, set, "Add")
			})
		}
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "interface", verify.KindInterface.String())
	assert.Equal(t, "unknown", verify.Kind(0).String())
	assert.True(t, verify.KindType.IsType())
	assert.False(t, verify.KindMethod.IsType())
}
