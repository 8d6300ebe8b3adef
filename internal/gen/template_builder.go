package gen

import (
	"strconv"

	"log-format-enforcer/internal/match"
	"log-format-enforcer/primitive"
)

// templateData holds all data needed for the enforcer template.
type templateData struct {
	PackageName      string
	Imports          []importSpec
	GenerateComments bool
	Levels           []levelData
	Fields           []fieldData
	FieldCount       int

	// Separators are stored as quoted Go string literals.
	EntrySeparator    string
	ValuePrefix       string
	ValueSuffix       string
	KeyValueSeparator string
}

// levelData represents one level method of the enforcer.
type levelData struct {
	Method    string
	SlogLevel string
}

// fieldData represents one setter of the entry type.
type fieldData struct {
	Index      int
	Method     string
	QuotedKey  string
	GoType     string
	FormatExpr string
}

// buildTemplateData constructs the template data from a validated config.
func (g *Generator) buildTemplateData(cfg GeneratorConfig) *templateData {
	data := &templateData{
		PackageName:       packageClause(cfg.PackageName),
		GenerateComments:  g.opts.GenerateComments,
		FieldCount:        len(cfg.Fields),
		EntrySeparator:    strconv.Quote(cfg.EntrySeparator),
		ValuePrefix:       strconv.Quote(cfg.ValuePrefix),
		ValueSuffix:       strconv.Quote(cfg.ValueSuffix),
		KeyValueSeparator: strconv.Quote(cfg.KeyValueSeparator),
	}

	imports := make(map[string]importSpec)
	for _, p := range baseImports {
		addImport(imports, p, "")
	}

	levels := cfg.Levels
	if len(levels) == 0 {
		levels = AllLevels
	}

	for _, l := range levels {
		data.Levels = append(data.Levels, levelData{
			Method:    l.Method(),
			SlogLevel: l.SlogLevel(),
		})
	}

	for i, f := range cfg.Fields {
		kind := f.EffectiveKind()
		for _, p := range kind.Imports() {
			addImport(imports, p, "")
		}

		data.Fields = append(data.Fields, fieldData{
			Index:      i,
			Method:     match.ExportedName(f.Name),
			QuotedKey:  strconv.Quote(f.RenderedKey()),
			GoType:     kind.GoType(),
			FormatExpr: primitive.FormatExpr(kind, "value"),
		})
	}

	data.Imports = sortedImports(imports)

	return data
}
