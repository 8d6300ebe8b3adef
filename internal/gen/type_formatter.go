package gen

import (
	"path"
	"slices"
	"strings"

	"log-format-enforcer/internal/common"
)

// baseImports are needed by every generated file.
var baseImports = []string{"context", "log/slog", "strings"}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// addImport adds an import to the imports map. The alias is only kept when
// it differs from the last path element.
func addImport(imports map[string]importSpec, pkgPath, alias string) {
	if pkgPath == "" {
		return
	}

	if alias == path.Base(pkgPath) {
		alias = ""
	}

	imports[pkgPath] = importSpec{
		Alias: alias,
		Path:  pkgPath,
	}
}

// sortedImports converts the imports map to a slice ordered by path.
func sortedImports(imports map[string]importSpec) []importSpec {
	out := make([]importSpec, 0, len(imports))
	for _, imp := range imports {
		out = append(out, imp)
	}

	slices.SortFunc(out, func(a, b importSpec) int {
		return strings.Compare(a.Path, b.Path)
	})

	return out
}

// packageClause returns the package clause for a configured package path.
func packageClause(pkgPath string) string {
	if pkgPath == "" {
		return DefaultPackageName
	}

	return common.PackageClause(pkgPath)
}
