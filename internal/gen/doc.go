// Package gen provides deterministic Go code generation for log format
// enforcers.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code. Given a package path, an ordered field list and
// the separators of the log layout, the generator emits one file declaring:
//   - Logger: the sink interface, satisfied by *slog.Logger
//   - LogFormatEnforcer: the formatter, with one method per log level
//   - LogEntry: one typed setter per field, plus Err, Format and Log
//
// Format renders the fields that were set in declaration order, regardless
// of the order the setters were called in.
package gen
