package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddError(CodeEmptyFieldName, "field name must not be empty", "fields[0].name")
	d.AddError(CodeUnknownLevel, `unknown level "inf"`, "levels[1]", "info")
	d.AddWarning(CodeAmbiguousKey, "key contains the entry separator", "fields[1].key")

	require.True(t, d.HasErrors())
	assert.Len(t, d.Warnings, 1)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"fields[0].name: [empty-field-name] field name must not be empty; "+
			`levels[1]: [unknown-level] unknown level "inf" (did you mean info?)`,
		err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo("note", "first", "")
	b.AddError(CodeInvalidPackage, "bad package", "package")
	b.AddWarning(CodeDuplicateLevel, "listed twice", "levels[1]")

	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
	assert.Equal(t, "[note] first", a.Infos[0].String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
