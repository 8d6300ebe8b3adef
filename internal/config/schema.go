package config

import (
	"log-format-enforcer/internal/gen"
	"log-format-enforcer/primitive"
)

// Default separators applied when a file leaves them out.
const (
	DefaultEntrySeparator    = ", "
	DefaultValuePrefix       = "["
	DefaultValueSuffix       = "]"
	DefaultKeyValueSeparator = "="
)

// CurrentVersion is the schema version written by Marshal.
const CurrentVersion = "1"

// File represents the root of a generator configuration file.
type File struct {
	// Version of the configuration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the package path of the generated file.
	Package string `yaml:"package,omitempty"`

	// Fields are rendered in the listed order.
	Fields []Field `yaml:"fields"`

	// Separators are pointers so an explicit "" can be told apart from an
	// absent key. After Parse they are never nil.
	EntrySeparator    *string `yaml:"entry_separator,omitempty"`
	ValuePrefix       *string `yaml:"value_prefix,omitempty"`
	ValueSuffix       *string `yaml:"value_suffix,omitempty"`
	KeyValueSeparator *string `yaml:"key_value_separator,omitempty"`

	// Levels selects the level methods to generate.
	Levels []gen.Level `yaml:"levels,omitempty,flow"`

	// Output controls where and how the file is written.
	Output Output `yaml:"output,omitempty"`
}

// Field is one entry of the fields list.
type Field struct {
	Name string
	Kind primitive.KindEnum
	Key  string
}

// fieldSpec is the full YAML form of a Field.
type fieldSpec struct {
	Name string             `yaml:"name"`
	Kind primitive.KindEnum `yaml:"kind,omitempty"`
	Key  string             `yaml:"key,omitempty"`
}

// Output describes the generated file on disk.
type Output struct {
	// Dir is the output directory, relative to the configuration file.
	Dir string `yaml:"dir,omitempty"`

	// Filename overrides the default generated file name.
	Filename string `yaml:"filename,omitempty"`

	// Comments toggles doc comments in generated code. Defaults to true.
	Comments *bool `yaml:"comments,omitempty"`
}

// GeneratorConfig converts the file into generator input.
// Parse has already applied defaults, so nil separators only occur for
// hand-built values and are read as empty.
func (f *File) GeneratorConfig() gen.GeneratorConfig {
	fields := make([]gen.FieldInfo, 0, len(f.Fields))
	for _, fld := range f.Fields {
		fields = append(fields, gen.FieldInfo{Name: fld.Name, Kind: fld.Kind, Key: fld.Key})
	}

	return gen.GeneratorConfig{
		PackageName:       f.Package,
		Fields:            fields,
		EntrySeparator:    deref(f.EntrySeparator),
		ValuePrefix:       deref(f.ValuePrefix),
		ValueSuffix:       deref(f.ValueSuffix),
		KeyValueSeparator: deref(f.KeyValueSeparator),
		Levels:            f.Levels,
	}
}

// GeneratorOptions returns the generator options described by Output.
// outputDir is the resolved output directory used for debug sidecars.
func (f *File) GeneratorOptions(outputDir string) gen.Options {
	opts := gen.DefaultOptions()
	opts.OutputDir = outputDir

	if f.Output.Filename != "" {
		opts.Filename = f.Output.Filename
	}

	if f.Output.Comments != nil {
		opts.GenerateComments = *f.Output.Comments
	}

	return opts
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
