package analyze

import (
	"context"
	"fmt"
	"go/types"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Sandbox type-checks generated files in a temporary module.
type Sandbox struct {
	dir        string
	modulePath string
}

// NewSandbox creates a sandbox module under a fresh temp directory.
// pkgName names the module path element; Close removes the directory.
func NewSandbox(pkgName string) (*Sandbox, error) {
	dir, err := os.MkdirTemp("", "lfe-sandbox-")
	if err != nil {
		return nil, fmt.Errorf("creating sandbox dir: %w", err)
	}

	s := &Sandbox{dir: dir, modulePath: sandboxModulePrefix + "/" + pkgName}

	gomod, err := synthesizeGoMod(s.modulePath)
	if err != nil {
		_ = s.Close()

		return nil, err
	}

	if err := os.WriteFile(filepath.Join(dir, "go.mod"), gomod, 0o644); err != nil {
		_ = s.Close()

		return nil, fmt.Errorf("writing sandbox go.mod: %w", err)
	}

	return s, nil
}

// Dir returns the sandbox module root.
func (s *Sandbox) Dir() string {
	return s.dir
}

// ModulePath returns the sandbox module path.
func (s *Sandbox) ModulePath() string {
	return s.modulePath
}

// Close removes the sandbox directory.
func (s *Sandbox) Close() error {
	return os.RemoveAll(s.dir)
}

// Check writes files into the sandbox root and type-checks the package they
// form. Package errors are reported in the Report; the error result is only
// set when loading itself fails.
func (s *Sandbox) Check(ctx context.Context, files map[string][]byte) (*Report, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		if filepath.Base(name) != name {
			return nil, fmt.Errorf("sandbox file %q must be a bare file name", name)
		}

		if err := os.WriteFile(filepath.Join(s.dir, name), files[name], 0o644); err != nil {
			return nil, fmt.Errorf("writing sandbox file %s: %w", name, err)
		}
	}

	cfg := &packages.Config{
		Mode:    LoadMode,
		Context: ctx,
		Dir:     s.dir,
		Env:     append(os.Environ(), "GOWORK=off", "GOFLAGS=-mod=mod"),
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one sandbox package, got %d", len(pkgs))
	}

	return buildReport(pkgs[0]), nil
}

// Check type-checks a single generated file in a throwaway sandbox.
func Check(ctx context.Context, pkgName, filename string, src []byte) (*Report, error) {
	s, err := NewSandbox(pkgName)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.Check(ctx, map[string][]byte{filename: src})
}

// buildReport extracts errors and declarations from a loaded package.
func buildReport(pkg *packages.Package) *Report {
	report := &Report{
		PkgPath: pkg.PkgPath,
		Name:    pkg.Name,
	}

	for _, e := range pkg.Errors {
		report.Errors = append(report.Errors, e)
	}

	if pkg.Types == nil {
		return report
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		switch obj := scope.Lookup(name).(type) {
		case *types.TypeName:
			report.Types = append(report.Types, analyzeTypeName(pkg.PkgPath, obj))
		case *types.Func:
			report.Funcs = append(report.Funcs, name)
		}
	}

	return report
}

// analyzeTypeName describes one package-level type.
func analyzeTypeName(pkgPath string, obj *types.TypeName) *TypeInfo {
	info := &TypeInfo{ID: TypeID{PkgPath: pkgPath, Name: obj.Name()}}

	switch ut := obj.Type().Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
	case *types.Interface:
		info.Kind = TypeKindInterface

		for i := range ut.NumExplicitMethods() {
			info.Methods = append(info.Methods, ut.ExplicitMethod(i).Name())
		}
	default:
		info.Kind = TypeKindOther
	}

	if named, ok := obj.Type().(*types.Named); ok && info.Kind != TypeKindInterface {
		for i := range named.NumMethods() {
			info.Methods = append(info.Methods, named.Method(i).Name())
		}
	}

	slices.Sort(info.Methods)

	return info
}
