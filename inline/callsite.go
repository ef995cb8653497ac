package inline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/napalu/goopt/v2/types/orderedmap"
)

// callMarker opens a translation call: function name, open paren, key quote.
const callMarker = "t('"

var (
	// ErrNoCallSite is returned by NextCallSite when the rest of the text holds no call.
	ErrNoCallSite = errors.New("no call site")
	// ErrMalformedCall is returned when a call marker has no closing key quote or
	// no matching closing parenthesis before the end of the text.
	ErrMalformedCall = errors.New("malformed call")
)

// CallSite is one translation call located in a template.
type CallSite struct {
	// Start is the offset of the call marker.
	Start int
	// End is the offset just past the closing parenthesis.
	End int
	// Key is the dotted translation key, verbatim.
	Key string
	// Params maps parameter names to the verbatim source expressions bound to them,
	// in the order they appear in the call.
	Params *orderedmap.OrderedMap[string, string]
	// Duplicates lists parameter names bound more than once; only the first
	// binding is kept in Params.
	Duplicates []string
}

// HasParams reports whether the call binds at least one parameter.
func (c CallSite) HasParams() bool {
	return c.Params != nil && c.Params.Len() > 0
}

// Text returns the source text of the call.
func (c CallSite) Text(src string) string {
	return src[c.Start:c.End]
}

// NextCallSite locates the first call site at or after from. When a marker is found but
// the call cannot be completed, the returned CallSite carries the marker offset in Start
// and the error wraps ErrMalformedCall.
func NextCallSite(src string, from int) (CallSite, error) {
	start := findMarker(src, from)
	if start < 0 {
		return CallSite{}, ErrNoCallSite
	}
	site := CallSite{Start: start, End: -1}

	keyStart := start + len(callMarker)
	keyEnd := closingQuote(src, keyStart, '\'')
	if keyEnd < 0 {
		return site, fmt.Errorf("%w: unterminated key at offset %d", ErrMalformedCall, start)
	}
	site.Key = src[keyStart:keyEnd]

	paren := closingParen(src, keyEnd+1)
	if paren < 0 {
		return site, fmt.Errorf("%w: unbalanced parentheses in call to %q at offset %d", ErrMalformedCall, site.Key, start)
	}
	site.End = paren + 1

	args := strings.TrimSpace(src[keyEnd+1 : paren])
	if strings.HasPrefix(args, ",") {
		site.Params, site.Duplicates = parseParams(strings.TrimSpace(args[1:]))
	} else {
		site.Params = orderedmap.NewOrderedMap[string, string]()
	}

	return site, nil
}

// findMarker returns the offset of the next call marker whose function name is not the
// tail of a longer identifier or a method selector, or -1.
func findMarker(src string, from int) int {
	for from <= len(src) {
		idx := strings.Index(src[from:], callMarker)
		if idx < 0 {
			return -1
		}
		pos := from + idx
		if pos == 0 || (!isIdentByte(src[pos-1]) && src[pos-1] != '.') {
			return pos
		}
		from = pos + 1
	}
	return -1
}

// closingQuote returns the offset of the next quote byte not escaped by a backslash.
func closingQuote(src string, from int, quote byte) int {
	for i := from; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case quote:
			return i
		}
	}
	return -1
}

// closingParen returns the offset of the parenthesis closing a call whose opening
// parenthesis precedes from. Parentheses inside quoted literals are not counted.
func closingParen(src string, from int) int {
	depth := 1
	var quote byte
	for i := from; i < len(src); i++ {
		c := src[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

type paramState int

const (
	readingName paramState = iota
	readingValue
)

// parseParams splits a keyword-argument list into name/expression bindings. Separators
// only count at bracket depth 0 and outside quoted literals. Arguments without a name
// are ignored.
func parseParams(args string) (*orderedmap.OrderedMap[string, string], []string) {
	params := orderedmap.NewOrderedMap[string, string]()
	var duplicates []string

	state := readingName
	depth := 0
	var quote byte
	nameStart, valueStart := 0, 0
	name := ""

	bind := func(end int) {
		if name == "" {
			return
		}
		if _, exists := params.Get(name); exists {
			duplicates = append(duplicates, name)
			return
		}
		params.Set(name, strings.TrimSpace(args[valueStart:end]))
	}

	for i := 0; i < len(args); i++ {
		c := args[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}

		switch c {
		case '"', '\'':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '=':
			if state == readingName && depth == 0 {
				name = strings.TrimSpace(args[nameStart:i])
				valueStart = i + 1
				state = readingValue
			}
		case ',':
			if depth != 0 {
				continue
			}
			if state == readingValue {
				bind(i)
			}
			state = readingName
			nameStart = i + 1
			name = ""
		}
	}
	if state == readingValue {
		bind(len(args))
	}

	return params, duplicates
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
