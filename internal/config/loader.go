package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML configuration file from the given path.
// A relative output directory is resolved against the file's directory.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if f.Output.Dir != "" && !filepath.IsAbs(f.Output.Dir) {
		f.Output.Dir = filepath.Join(filepath.Dir(path), f.Output.Dir)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	setDefault(&f.EntrySeparator, DefaultEntrySeparator)
	setDefault(&f.ValuePrefix, DefaultValuePrefix)
	setDefault(&f.ValueSuffix, DefaultValueSuffix)
	setDefault(&f.KeyValueSeparator, DefaultKeyValueSeparator)
}

func setDefault(s **string, value string) {
	if *s == nil {
		*s = &value
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// Default returns a File holding the default layout with no fields.
func Default() *File {
	f := &File{}
	applyDefaults(f)

	return f
}
