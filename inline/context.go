package inline

// Context describes where a call site sits in the host script.
type Context int

const (
	// Bare is a call used directly as an expression, e.g. log(t('k')).
	Bare Context = iota
	// InterpolatedLiteral is a call inside the {...} hole of an f"..." literal.
	InterpolatedLiteral
)

// literalMarker prefixes an interpolated string literal in the host language.
const literalMarker = 'f'

func (c Context) String() string {
	switch c {
	case Bare:
		return "bare"
	case InterpolatedLiteral:
		return "interpolated-literal"
	default:
		return "unknown"
	}
}

// Classify scans backward from callStart to determine the lexical context of the call
// starting there. For InterpolatedLiteral it also returns the offset of the enclosing
// opening brace and the quote byte delimiting the surrounding literal; for Bare the
// offset is -1 and the quote is '"'.
func Classify(src string, callStart int) (Context, int, byte) {
	depth := 0
	for i := callStart - 1; i >= 0; i-- {
		switch c := src[i]; c {
		case '}':
			depth++
		case '{':
			if depth > 0 {
				depth--
				continue
			}
			if quote, ok := literalOpensAt(src, i); ok {
				return InterpolatedLiteral, i, quote
			}
			return Bare, -1, '"'
		case '"', '\'':
			if depth == 0 {
				return Bare, -1, '"'
			}
		}
	}
	return Bare, -1, '"'
}

// literalOpensAt reports whether the brace at offset brace is preceded, after optional
// whitespace, by the marker and a quote.
func literalOpensAt(src string, brace int) (byte, bool) {
	j := brace - 1
	for j >= 0 && isSpace(src[j]) {
		j--
	}
	if j < 1 {
		return 0, false
	}
	if q := src[j]; (q == '"' || q == '\'') && src[j-1] == literalMarker {
		return q, true
	}
	return 0, false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
