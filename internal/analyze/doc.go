// Package analyze type-checks generated code.
//
// Generated sources are written into a throwaway module (go.mod synthesized
// with golang.org/x/mod/modfile) and loaded with golang.org/x/tools/go/packages,
// so a successful check means the code compiles, not merely parses.
//
// Key types:
//   - Sandbox: the temporary module and its loader configuration
//   - Report: package errors plus a summary of the declared types
//   - TypeInfo: a declared type with its kind and method set
package analyze
