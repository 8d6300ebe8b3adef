package analyze

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// ErrNoModule is returned when no go.mod encloses a directory.
var ErrNoModule = errors.New("go.mod not found")

// sandboxModulePrefix is the module path root of sandbox modules.
const sandboxModulePrefix = "lfe.sandbox"

// sandboxGoVersion is the language version declared by sandbox modules.
const sandboxGoVersion = "1.24"

// synthesizeGoMod returns the go.mod content of a sandbox module.
func synthesizeGoMod(modulePath string) ([]byte, error) {
	if err := module.CheckPath(modulePath); err != nil {
		return nil, fmt.Errorf("sandbox module path: %w", err)
	}

	f := new(modfile.File)
	if err := f.AddModuleStmt(modulePath); err != nil {
		return nil, err
	}

	if err := f.AddGoStmt(sandboxGoVersion); err != nil {
		return nil, err
	}

	return modfile.Format(f.Syntax), nil
}

// FindModule walks up from dir to the closest go.mod and returns the module
// path and the module root directory.
func FindModule(dir string) (string, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", "", err
	}

	for {
		path := filepath.Join(dir, "go.mod")
		if data, err := os.ReadFile(path); err == nil {
			modPath := modfile.ModulePath(data)
			if modPath == "" {
				return "", "", fmt.Errorf("%s: no module directive", path)
			}

			return modPath, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", "", ErrNoModule
}

// PackagePath returns the import path a directory has inside its module.
// The directory need not exist yet.
func PackagePath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	existing := abs
	for {
		if _, err := os.Stat(existing); err == nil {
			break
		}

		parent := filepath.Dir(existing)
		if parent == existing {
			break
		}

		existing = parent
	}

	modPath, root, err := FindModule(existing)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}

	if rel == "." {
		return modPath, nil
	}

	return modPath + "/" + filepath.ToSlash(rel), nil
}
