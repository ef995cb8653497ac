package inline

import (
	"strings"

	"github.com/napalu/goopt/v2/types/orderedmap"
)

// Substitute renders the localized text of a call for the given context. text is the
// translation's format string, params the call's bindings (may be nil) and quote the
// delimiter of the literal the result is emitted into; quote only matters for
// InterpolatedLiteral since Bare results are always wrapped in double quotes.
func Substitute(text string, params *orderedmap.OrderedMap[string, string], ctx Context, quote byte) string {
	if ctx != InterpolatedLiteral {
		quote = '"'
	}

	if params == nil || params.Len() == 0 {
		escaped := escapeLiteral(text, quote)
		if ctx == InterpolatedLiteral {
			return escaped
		}
		return `"` + escaped + `"`
	}

	rewritten := rewritePlaceholders(text, params, quote)
	if ctx == InterpolatedLiteral {
		return rewritten
	}
	if strings.IndexByte(rewritten, '{') >= 0 {
		return string(literalMarker) + `"` + rewritten + `"`
	}
	return `"` + rewritten + `"`
}

// rewritePlaceholders turns every {name} bound in params into an interpolation hole
// carrying the bound expression, in one pass over text. Unbound placeholders and other
// braces pass through untouched.
func rewritePlaceholders(text string, params *orderedmap.OrderedMap[string, string], quote byte) string {
	var b strings.Builder
	b.Grow(len(text) + 16)

	for i := 0; i < len(text); {
		if text[i] == '{' {
			if end := placeholderEnd(text, i); end > 0 {
				if expr, ok := params.Get(text[i+1 : end]); ok {
					if inner, ok := interpolatedContent(expr); ok {
						b.WriteString(inner)
					} else {
						b.WriteByte('{')
						b.WriteString(expr)
						b.WriteByte('}')
					}
					i = end + 1
					continue
				}
			}
		}
		writeEscaped(&b, text[i], quote)
		i++
	}

	return b.String()
}

// placeholderEnd returns the offset of the brace closing an {identifier} placeholder
// opened at open, or -1.
func placeholderEnd(text string, open int) int {
	i := open + 1
	if i >= len(text) || text[i] >= '0' && text[i] <= '9' {
		return -1
	}
	for ; i < len(text) && isIdentByte(text[i]); i++ {
	}
	if i == open+1 || i >= len(text) || text[i] != '}' {
		return -1
	}
	return i
}

// interpolatedContent returns the body of expr when expr is itself an interpolated
// literal such as f"{x} items". Only the marker, the opening quote and a matching final
// quote are checked; the body is not parsed.
func interpolatedContent(expr string) (string, bool) {
	if len(expr) < 3 || expr[0] != literalMarker {
		return "", false
	}
	q := expr[1]
	if (q != '"' && q != '\'') || expr[len(expr)-1] != q {
		return "", false
	}
	return expr[2 : len(expr)-1], true
}

func escapeLiteral(s string, quote byte) string {
	if !strings.ContainsAny(s, "\\\n\r\t") && strings.IndexByte(s, quote) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		writeEscaped(&b, s[i], quote)
	}
	return b.String()
}

func writeEscaped(b *strings.Builder, c, quote byte) {
	switch c {
	case '\\':
		b.WriteString(`\\`)
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\t':
		b.WriteString(`\t`)
	case quote:
		b.WriteByte('\\')
		b.WriteByte(c)
	default:
		b.WriteByte(c)
	}
}
