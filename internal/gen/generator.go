package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"text/template"

	"log-format-enforcer/internal/diagnostic"
	"log-format-enforcer/primitive"
)

// DefaultPackageName is used when the configuration leaves the package empty.
const DefaultPackageName = "logformat"

// Names of the declarations every generated file contains.
const (
	LoggerInterfaceName = "Logger"
	EnforcerTypeName    = "LogFormatEnforcer"
	EntryTypeName       = "LogEntry"
	ConstructorName     = "LoggerFor"
	ErrMethodName       = "Err"
	FormatMethodName    = "Format"
	LogMethodName       = "Log"
)

// ErrInvalidConfiguration is returned when a GeneratorConfig is malformed.
// No output is produced in that case.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// FieldInfo describes one field of the log layout.
type FieldInfo struct {
	// Name identifies the field and names its setter ("user_id" -> UserID).
	Name string
	// Kind is the semantic type tag. The zero value means primitive.KindString.
	Kind primitive.KindEnum
	// Key is the label rendered before the value. Defaults to Name.
	Key string
}

// RenderedKey returns the label rendered in front of the field value.
func (f FieldInfo) RenderedKey() string {
	if f.Key != "" {
		return f.Key
	}

	return f.Name
}

// EffectiveKind returns the field kind with the string default applied.
func (f FieldInfo) EffectiveKind() primitive.KindEnum {
	if f.Kind == 0 {
		return primitive.KindString
	}

	return f.Kind
}

// GeneratorConfig holds the layout a log format enforcer is generated for.
// Every string is used verbatim; empty strings are valid.
type GeneratorConfig struct {
	// PackageName is the package path of the generated file, e.g. "com.example"
	// or "github.com/acme/logs". Empty means DefaultPackageName.
	PackageName string
	// Fields are rendered in this order.
	Fields []FieldInfo
	// EntrySeparator is placed between successive rendered fields.
	EntrySeparator string
	// ValuePrefix and ValueSuffix wrap every rendered value.
	ValuePrefix string
	ValueSuffix string
	// KeyValueSeparator is placed between a field key and its value.
	KeyValueSeparator string
	// Levels selects the level methods of the enforcer. Empty means AllLevels.
	Levels []Level
}

// Options holds configuration for code generation.
type Options struct {
	// Filename is the name of the generated file.
	Filename string
	// OutputDir receives an unformatted sidecar file when formatting fails.
	// Empty disables the sidecar.
	OutputDir string
	// GenerateComments enables doc comments in the generated code.
	GenerateComments bool
}

// DefaultOptions returns the default generator options.
func DefaultOptions() Options {
	return Options{
		Filename:         "log_format_enforcer.go",
		GenerateComments: true,
	}
}

// Generator generates Go code for log format enforcers.
type Generator struct {
	opts Options
}

// NewGenerator creates a new Generator with the given options.
func NewGenerator(opts Options) *Generator {
	if opts.Filename == "" {
		opts.Filename = DefaultOptions().Filename
	}

	return &Generator{opts: opts}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "log_format_enforcer.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
	// Warnings are non-fatal configuration diagnostics.
	Warnings []diagnostic.Diagnostic
	// Infos note defaults applied to the configuration.
	Infos []diagnostic.Diagnostic
}

// Generate produces the source of a log format enforcer with default options.
// It has no side effects: the same config always yields the same bytes.
func Generate(cfg GeneratorConfig) ([]byte, error) {
	file, err := NewGenerator(DefaultOptions()).Generate(cfg)
	if err != nil {
		return nil, err
	}

	return file.Content, nil
}

// Generate generates the enforcer file for cfg.
func (g *Generator) Generate(cfg GeneratorConfig) (*GeneratedFile, error) {
	diags := Validate(cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, diags.Error())
	}

	data := g.buildTemplateData(cfg)

	var buf bytes.Buffer
	if err := enforcerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.opts.OutputDir != "" {
			_ = writeDebugUnformatted(g.opts.OutputDir, g.opts.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: g.opts.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: g.opts.Filename,
		Content:  formatted,
		Warnings: diags.Warnings,
		Infos:    diags.Infos,
	}, nil
}

// Template for the enforcer file

var enforcerTemplate = template.Must(template.New("enforcer").Parse(`// Code generated by lfe-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

{{if .GenerateComments}}// LogFormatEnforcer creates log entries that always render their fields
// in the same order and layout.
{{end}}type LogFormatEnforcer struct {
	logger Logger
}

{{if .GenerateComments}}// Logger receives formatted log entries. *slog.Logger satisfies it.
{{end}}type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
}

{{if .GenerateComments}}// LoggerFor returns a LogFormatEnforcer writing to logger.
// A nil logger falls back to slog.Default().
{{end}}func LoggerFor(logger Logger) *LogFormatEnforcer {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogFormatEnforcer{logger: logger}
}
{{range .Levels}}
{{if $.GenerateComments}}// {{.Method}} starts an entry logged at {{.SlogLevel}}.
{{end}}func (l *LogFormatEnforcer) {{.Method}}() *LogEntry {
	return &LogEntry{logger: l.logger, level: {{.SlogLevel}}}
}
{{end}}
{{if .GenerateComments}}// LogEntry accumulates the field values of a single log line.
{{end}}type LogEntry struct {
	logger Logger
	level  slog.Level
	err    error
	values [{{.FieldCount}}]string
	set    [{{.FieldCount}}]bool
}
{{range .Fields}}
{{if $.GenerateComments}}// {{.Method}} sets the {{.QuotedKey}} field.
{{end}}func (e *LogEntry) {{.Method}}(value {{.GoType}}) *LogEntry {
	e.values[{{.Index}}] = {{.FormatExpr}}
	e.set[{{.Index}}] = true

	return e
}
{{end}}
{{if .GenerateComments}}// Err attaches an error, logged as the "error" attribute.
{{end}}func (e *LogEntry) Err(err error) *LogEntry {
	e.err = err

	return e
}

{{if .GenerateComments}}// Format renders the fields set on the entry in declaration order.
{{end}}func (e *LogEntry) Format() string {
	keys := [...]string{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.QuotedKey}}{{end -}} }

	var b strings.Builder

	written := false
	for i, key := range keys {
		if !e.set[i] {
			continue
		}

		if written {
			b.WriteString({{.EntrySeparator}})
		}

		written = true

		b.WriteString(key)
		b.WriteString({{.KeyValueSeparator}})
		b.WriteString({{.ValuePrefix}})
		b.WriteString(e.values[i])
		b.WriteString({{.ValueSuffix}})
	}

	return b.String()
}

{{if .GenerateComments}}// Log writes the formatted entry at the entry level.
{{end}}func (e *LogEntry) Log(ctx context.Context) {
	if e.err != nil {
		e.logger.Log(ctx, e.level, e.Format(), slog.Any("error", e.err))

		return
	}

	e.logger.Log(ctx, e.level, e.Format())
}
`))
