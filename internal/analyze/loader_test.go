package analyze

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-format-enforcer/internal/gen"
	"log-format-enforcer/internal/verify"
	"log-format-enforcer/internal/verify/verifytest"
	"log-format-enforcer/primitive"
)

func requireGoToolchain(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping type check in -short mode")
	}

	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}
}

func TestCheck_GeneratedCode(t *testing.T) {
	requireGoToolchain(t)

	cfg := gen.GeneratorConfig{
		PackageName:       "com.example",
		Fields:            []gen.FieldInfo{{Name: "user"}, {Name: "action"}, {Name: "took", Kind: primitive.KindDuration}},
		EntrySeparator:    ", ",
		ValuePrefix:       "[",
		ValueSuffix:       "]",
		KeyValueSeparator: "=",
	}

	src, err := gen.Generate(cfg)
	require.NoError(t, err)

	report, err := Check(t.Context(), "example", "log_format_enforcer.go", src)
	require.NoError(t, err)
	require.True(t, report.OK(), "type errors: %v", report.Errors)

	assert.Equal(t, "example", report.Name)
	assert.Equal(t, "lfe.sandbox/example", report.PkgPath)
	assert.Equal(t, []string{gen.ConstructorName}, report.Funcs)

	logger := report.Type(gen.LoggerInterfaceName)
	require.NotNil(t, logger)
	assert.Equal(t, TypeKindInterface, logger.Kind)
	assert.Equal(t, []string{"Log"}, logger.Methods)

	entry := report.Type(gen.EntryTypeName)
	require.NotNil(t, entry)
	assert.Equal(t, TypeKindStruct, entry.Kind)
	assert.True(t, entry.HasMethod(gen.FormatMethodName))
	assert.True(t, entry.HasMethod("Took"))

	// The type checker and the syntax tree agree on the method set.
	tree := verifytest.ParseSource(t, src, verify.TreeSitterBackend{})
	assert.ElementsMatch(t, entry.Methods, verifytest.MethodNames(verifytest.RequireType(t, tree, gen.EntryTypeName)))
}

func TestCheck_ReportsTypeErrors(t *testing.T) {
	requireGoToolchain(t)

	src := []byte(`package broken

func F() string { return 42 }
`)

	report, err := Check(t.Context(), "broken", "broken.go", src)
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.NotEmpty(t, report.Errors)
}

func TestSandbox_RejectsNestedNames(t *testing.T) {
	s, err := NewSandbox("nested")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.Equal(t, "lfe.sandbox/nested", s.ModulePath())
	assert.FileExists(t, s.Dir()+"/go.mod")

	_, err = s.Check(t.Context(), map[string][]byte{"sub/x.go": []byte("package nested\n")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bare file name")
}
