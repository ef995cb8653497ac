package inline

import (
	"fmt"
	"unicode/utf8"
)

// DiagnosticKind classifies a problem found while transforming a template.
type DiagnosticKind int

const (
	// UnresolvedKey means a well-formed call names a key with no leaf in the table.
	// The call is left in the output unchanged.
	UnresolvedKey DiagnosticKind = iota + 1
	// MalformedCall means a call marker has no closing key quote or closing
	// parenthesis. The rest of the template is left unchanged and scanning stops.
	MalformedCall
	// DuplicateParameter means a call binds the same parameter name twice.
	// The first binding is used.
	DuplicateParameter
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnresolvedKey:
		return "unresolved-key"
	case MalformedCall:
		return "malformed-call"
	case DuplicateParameter:
		return "duplicate-parameter"
	default:
		return "unknown"
	}
}

// Diagnostic records one problem at a position in the template.
type Diagnostic struct {
	Kind DiagnosticKind
	// Key is the translation key of the call, empty when it could not be read.
	Key string
	// Param is the repeated parameter name for DuplicateParameter.
	Param string
	// Offset is the byte offset of the call marker.
	Offset int
	// Line and Column are 1-based; Column counts runes.
	Line   int
	Column int
	// Err carries scanner detail for MalformedCall.
	Err error
}

func newDiagnostic(src string, kind DiagnosticKind, site CallSite) Diagnostic {
	line, col := Position(src, site.Start)
	return Diagnostic{
		Kind:   kind,
		Key:    site.Key,
		Offset: site.Start,
		Line:   line,
		Column: col,
	}
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case UnresolvedKey:
		return fmt.Sprintf("%d:%d: translation key not found: %s", d.Line, d.Column, d.Key)
	case MalformedCall:
		return fmt.Sprintf("%d:%d: %v", d.Line, d.Column, d.Err)
	case DuplicateParameter:
		return fmt.Sprintf("%d:%d: parameter %q bound more than once in call to %s", d.Line, d.Column, d.Param, d.Key)
	default:
		return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Kind)
	}
}

// Position converts a byte offset in src to a 1-based line and rune column.
func Position(src string, offset int) (line, column int) {
	if offset > len(src) {
		offset = len(src)
	}
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, utf8.RuneCountInString(src[lineStart:offset]) + 1
}
