// Package match provides identifier normalization and name similarity
// helpers used by the generator and the structural verifier.
//
// Key functions:
//   - TokenizeIdent: splits field names on separators and CamelCase boundaries
//   - ExportedName: derives the exported Go identifier for a field setter
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks near-miss names for "did you mean" hints
package match
