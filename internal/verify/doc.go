// Package verify parses Go source into a neutral declaration tree and looks
// up declarations in it.
//
// Parsing is delegated to a Backend. GoBackend uses go/parser and
// TreeSitterBackend uses tree-sitter's Go grammar; both produce the same
// tree for the same valid source. Lookups scan the immediate members of one
// scope and succeed only when exactly one declaration matches.
package verify
