package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes a generated file into outputDir and returns its path.
// It creates the directory if it doesn't exist.
func WriteFile(file *GeneratedFile, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, file.Filename)
	if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	return outputPath, nil
}
