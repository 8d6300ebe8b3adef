// Package verifytest holds testify-based helpers for scenarios that generate
// source and assert on its declarations.
package verifytest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"log-format-enforcer/internal/verify"
)

// ParseSource parses src with backend (nil means the go/parser backend) and
// fails the test if it does not parse.
func ParseSource(t testing.TB, src []byte, backend verify.Backend) *verify.Tree {
	t.Helper()

	tree, err := verify.New(backend).Parse(src)
	require.NoError(t, err, "source does not parse:\n%s", src)

	return tree
}

// RequireType returns the unique type named name, failing the test otherwise.
func RequireType(t testing.TB, tree *verify.Tree, name string) *verify.Node {
	t.Helper()

	n, err := verify.FindType(tree, name)
	require.NoError(t, err)

	return n
}

// RequireMethod returns the unique method named name under scope, failing
// the test otherwise.
func RequireMethod(t testing.TB, scope *verify.Node, name string) *verify.Node {
	t.Helper()

	n, err := verify.FindMethod(scope, name)
	require.NoError(t, err)

	return n
}

// RequireNoMethod fails the test unless looking up name under scope is a
// lookup failure.
func RequireNoMethod(t testing.TB, scope *verify.Node, name string) {
	t.Helper()

	_, err := verify.FindMethod(scope, name)
	require.ErrorIs(t, err, verify.ErrLookup)
}

// MethodNames returns the method names under scope, in order.
func MethodNames(scope *verify.Node) []string {
	var names []string
	for _, m := range scope.Members(verify.KindMethod) {
		names = append(names, m.Name)
	}

	return names
}
