package analyze

import (
	"slices"

	"log-format-enforcer/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "lfe.sandbox/example"
	Name    string // e.g., "LogEntry"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a declared type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindStruct             // struct type
	TypeKindInterface          // interface type
	TypeKindOther              // any other named type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindOther:
		return "other"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a declared type as the type checker sees it.
type TypeInfo struct {
	ID   TypeID
	Kind TypeKind
	// Methods holds the names of the explicitly declared methods, sorted.
	// For a named type this is the method set of *T.
	Methods []string
}

// HasMethod reports whether the type declares a method called name.
func (t *TypeInfo) HasMethod(name string) bool {
	_, found := slices.BinarySearch(t.Methods, name)

	return found
}

// Report is the outcome of a type check.
type Report struct {
	// PkgPath and Name identify the loaded package.
	PkgPath string
	Name    string
	// Types are the package-level type declarations, sorted by name.
	Types []*TypeInfo
	// Funcs are the package-level function names, sorted.
	Funcs []string
	// Errors are the parse and type errors reported by the loader.
	Errors []error
}

// OK reports whether the package type-checked without errors.
func (r *Report) OK() bool {
	return len(r.Errors) == 0
}

// Type returns the declared type called name, or nil.
func (r *Report) Type(name string) *TypeInfo {
	for _, t := range r.Types {
		if t.ID.Name == name {
			return t
		}
	}

	return nil
}
