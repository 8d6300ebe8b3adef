package verify

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse is returned when source text is not valid Go.
	ErrParse = errors.New("parse error")
	// ErrLookup is returned when a lookup does not resolve to exactly one node.
	ErrLookup = errors.New("lookup failure")
)

// LookupError describes a lookup that matched zero or several declarations.
type LookupError struct {
	// What is the kind of declaration sought ("type" or "method").
	What string
	// Name is the sought identifier.
	Name string
	// Scope is the name of the scope that was searched.
	Scope string
	// Matches is the number of declarations found.
	Matches int
	// Ambiguous is set when more than one declaration matched.
	Ambiguous bool
	// Suggestions are similarly named declarations in the scope.
	Suggestions []string
}

func (e *LookupError) Error() string {
	if e.Ambiguous {
		return fmt.Sprintf("%s '%s' is ambiguous under '%s': %d matches", e.What, e.Name, e.Scope, e.Matches)
	}

	msg := fmt.Sprintf("%s '%s' not found under '%s'", e.What, e.Name, e.Scope)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean '%s'?)", strings.Join(e.Suggestions, "', '"))
	}

	return msg
}

// Is makes errors.Is(err, ErrLookup) hold for every LookupError.
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}

// ParseError reports where a backend rejected the source.
type ParseError struct {
	Backend string
	Line    int
	Column  int
	Msg     string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s backend: %d:%d: %s", e.Backend, e.Line, e.Column, e.Msg)
	}

	return fmt.Sprintf("%s backend: %s", e.Backend, e.Msg)
}

// Is makes errors.Is(err, ErrParse) hold for every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
