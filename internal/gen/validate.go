package gen

import (
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/mod/module"

	"log-format-enforcer/internal/diagnostic"
	"log-format-enforcer/internal/match"
)

// reservedMethods are LogEntry methods a field setter must not shadow.
var reservedMethods = []string{ErrMethodName, FormatMethodName, LogMethodName}

// Validate checks cfg and reports every problem found. Errors make the
// config unusable; warnings flag layouts that render ambiguously and infos
// note defaults that were applied.
func Validate(cfg GeneratorConfig) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	validatePackage(cfg.PackageName, &diags)
	validateFields(cfg, &diags)
	validateLevels(cfg.Levels, &diags)

	return diags
}

func validatePackage(pkgPath string, diags *diagnostic.Diagnostics) {
	if pkgPath == "" {
		diags.AddInfo(diagnostic.CodeDefaultPackage,
			fmt.Sprintf("no package given, generating package %s", DefaultPackageName), "package")

		return
	}

	if err := module.CheckImportPath(pkgPath); err != nil {
		diags.AddError(diagnostic.CodeInvalidPackage, err.Error(), "package")

		return
	}

	clause := packageClause(pkgPath)
	if !token.IsIdentifier(clause) || clause == "_" {
		diags.AddError(diagnostic.CodeInvalidPackage,
			fmt.Sprintf("package %q yields %q, which is not a valid package name", pkgPath, clause),
			"package")
	}
}

func validateFields(cfg GeneratorConfig, diags *diagnostic.Diagnostics) {
	owners := make(map[string]string, len(cfg.Fields))

	for i, f := range cfg.Fields {
		path := fmt.Sprintf("fields[%d]", i)

		if f.Name == "" {
			diags.AddError(diagnostic.CodeEmptyFieldName, "field name must not be empty", path+".name")

			continue
		}

		method := match.ExportedName(f.Name)
		if !token.IsIdentifier(method) || !token.IsExported(method) {
			diags.AddError(diagnostic.CodeInvalidFieldName,
				fmt.Sprintf("field name %q does not form an exported Go identifier", f.Name),
				path+".name")

			continue
		}

		for _, reserved := range reservedMethods {
			if method == reserved {
				diags.AddError(diagnostic.CodeReservedName,
					fmt.Sprintf("field %q maps to %s, which is a reserved %s method", f.Name, method, EntryTypeName),
					path+".name")
			}
		}

		if owner, ok := owners[method]; ok {
			diags.AddError(diagnostic.CodeDuplicateField,
				fmt.Sprintf("field %q maps to setter %s, already used by field %q", f.Name, method, owner),
				path+".name")
		} else {
			owners[method] = f.Name
		}

		if f.Kind != 0 && !f.Kind.IsValid() {
			diags.AddError(diagnostic.CodeUnknownKind,
				fmt.Sprintf("field %q has unknown kind %s", f.Name, f.Kind),
				path+".kind")
		}

		key := f.RenderedKey()
		for _, sep := range []string{cfg.EntrySeparator, cfg.KeyValueSeparator} {
			if sep != "" && strings.Contains(key, sep) {
				diags.AddWarning(diagnostic.CodeAmbiguousKey,
					fmt.Sprintf("key %q contains separator %q; rendered entries may not parse back", key, sep),
					path+".key")
			}
		}
	}
}

func validateLevels(levels []Level, diags *diagnostic.Diagnostics) {
	seen := make(map[Level]bool, len(levels))

	for i, l := range levels {
		path := fmt.Sprintf("levels[%d]", i)

		if !l.IsValid() {
			diags.AddError(diagnostic.CodeUnknownLevel,
				fmt.Sprintf("unknown level %q", l), path,
				match.Suggest(string(l), levelNames(), 1)...)

			continue
		}

		if seen[l] {
			diags.AddError(diagnostic.CodeDuplicateLevel, fmt.Sprintf("level %q listed twice", l), path)
		}

		seen[l] = true
	}
}
