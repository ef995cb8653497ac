// Package render fills {{dotted.key}} placeholders in configuration templates with
// translated text.
package render

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/napalu/hookloc/inline"
)

// LanguageKey is replaced with the language code rather than looked up.
const LanguageKey = "language"

var templateKey = regexp.MustCompile(`\{\{([^}]+)\}\}`)

type config struct {
	escapeJSON bool
}

// Option configures Render.
type Option func(*config)

// EscapeJSON escapes substituted values for use inside a JSON string literal.
func EscapeJSON() Option {
	return func(c *config) {
		c.escapeJSON = true
	}
}

// Render replaces every {{key}} in template with the value tr holds for key, and
// {{language}} with lang. Keys tr cannot resolve are left in place and reported with
// kind inline.UnresolvedKey.
func Render(template string, tr inline.Translations, lang string, opts ...Option) (string, []inline.Diagnostic) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		out   strings.Builder
		diags []inline.Diagnostic
		last  int
	)
	for _, m := range templateKey.FindAllStringSubmatchIndex(template, -1) {
		start, end := m[0], m[1]
		key := template[m[2]:m[3]]

		out.WriteString(template[last:start])
		last = end

		var value string
		if key == LanguageKey {
			value = lang
		} else if v, ok := tr.Lookup(key); ok {
			value = v
		} else {
			line, col := inline.Position(template, start)
			diags = append(diags, inline.Diagnostic{
				Kind:   inline.UnresolvedKey,
				Key:    key,
				Offset: start,
				Line:   line,
				Column: col,
			})
			out.WriteString(template[start:end])
			continue
		}

		if cfg.escapeJSON {
			value = jsonEscape(value)
		}
		out.WriteString(value)
	}
	out.WriteString(template[last:])

	return out.String(), diags
}

// jsonEscape returns s encoded as the body of a JSON string.
func jsonEscape(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return s
	}
	return string(b[1 : len(b)-1])
}
