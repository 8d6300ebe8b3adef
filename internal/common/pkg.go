package common

import (
	"path"
	"strings"

	"golang.org/x/mod/module"
)

// UnknownStr is the String() value for out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// PackageClause returns the name used in the package clause for pkgPath.
// Dotted paths keep their last dotted segment, so both "com.example" and
// "github.com/acme/com.example" yield "example". A major version suffix is
// dropped: "github.com/acme/logs/v2" yields "logs".
func PackageClause(pkgPath string) string {
	pkgPath = strings.TrimSuffix(pkgPath, "/")
	if prefix, _, ok := module.SplitPathVersion(pkgPath); ok && prefix != "" {
		pkgPath = prefix
	}

	alias := PkgAlias(pkgPath)
	if i := strings.LastIndexByte(alias, '.'); i >= 0 {
		alias = alias[i+1:]
	}

	return alias
}
