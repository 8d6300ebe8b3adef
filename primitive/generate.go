package primitive

import (
	"bytes"
	"text/template"
)

// FormatExpr returns the Go expression that renders the variable named value
// of kind k as a string. It panics for invalid kinds; callers validate first.
func FormatExpr(k KindEnum, value string) string {
	line, ok := templates[k]
	if !ok {
		panic("no format template for kind: " + k.String())
	}

	tmpl, err := template.New("format").Parse(line)
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer

	err = tmpl.Execute(&buf, map[string]any{
		"value": value,
	})
	if err != nil {
		panic(err)
	}

	return buf.String()
}
