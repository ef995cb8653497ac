// Package inline replaces runtime translation calls in a script template with the
// localized text they would produce.
//
// A template calls t('dotted.key', name=expr, ...) wherever it needs a message, either
// as a plain expression or inside the interpolation hole of an f"..." literal:
//
//	log_debug(t('hook.log.processing', event='Stop'))
//	log_debug(f"  {t('hook.log.workingDir', dir=work_dir)}")
//
// Transform rewrites both into literals carrying the translated text, turning bound
// placeholders into interpolation holes:
//
//	log_debug(f"Processing {'Stop'} event")
//	log_debug(f"  Working directory: {work_dir}")
//
// Text outside call sites is copied byte for byte. Problems never abort a pass; they
// leave the affected text unchanged and are reported as Diagnostic values.
package inline

import (
	"errors"
	"log/slog"
	"strings"
)

// Translations resolves a dotted key to its format string.
type Translations interface {
	Lookup(key string) (string, bool)
}

// Transform inlines every call site in src using tr.
func Transform(src string, tr Translations) (string, []Diagnostic) {
	var (
		out    strings.Builder
		diags  []Diagnostic
		cursor int
	)
	out.Grow(len(src))

	for {
		site, err := NextCallSite(src, cursor)
		if errors.Is(err, ErrNoCallSite) {
			break
		}
		if err != nil {
			d := newDiagnostic(src, MalformedCall, site)
			d.Err = err
			diags = append(diags, d)
			break
		}

		for _, name := range site.Duplicates {
			d := newDiagnostic(src, DuplicateParameter, site)
			d.Param = name
			diags = append(diags, d)
		}

		text, ok := tr.Lookup(site.Key)
		if !ok {
			diags = append(diags, newDiagnostic(src, UnresolvedKey, site))
			out.WriteString(src[cursor:site.End])
			cursor = site.End
			continue
		}

		ctx, brace, quote := Classify(src, site.Start)
		if ctx == InterpolatedLiteral && brace < cursor {
			// the enclosing brace was already copied for an earlier call
			ctx, quote = Bare, '"'
		}

		if ctx == InterpolatedLiteral {
			out.WriteString(src[cursor:brace])
		} else {
			out.WriteString(src[cursor:site.Start])
		}
		out.WriteString(Substitute(text, site.Params, ctx, quote))

		cursor = site.End
		if ctx == InterpolatedLiteral {
			cursor = skipHoleClose(src, site.End)
		}
	}

	out.WriteString(src[cursor:])
	return out.String(), diags
}

// skipHoleClose returns the offset past the brace closing an interpolation hole when
// only whitespace separates it from end, otherwise end itself.
func skipHoleClose(src string, end int) int {
	i := end
	for i < len(src) && isSpace(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '}' {
		return i + 1
	}
	return end
}

// CallSites lists every well-formed call site in src in order. Scanning stops at the
// first malformed call, which is reported as a diagnostic.
func CallSites(src string) ([]CallSite, []Diagnostic) {
	var (
		sites []CallSite
		diags []Diagnostic
	)
	for cursor := 0; ; {
		site, err := NextCallSite(src, cursor)
		if errors.Is(err, ErrNoCallSite) {
			return sites, diags
		}
		if err != nil {
			d := newDiagnostic(src, MalformedCall, site)
			d.Err = err
			return sites, append(diags, d)
		}
		for _, name := range site.Duplicates {
			d := newDiagnostic(src, DuplicateParameter, site)
			d.Param = name
			diags = append(diags, d)
		}
		sites = append(sites, site)
		cursor = site.End
	}
}

// Transformer binds a translation table to a pass and reports diagnostics to a logger.
type Transformer struct {
	tr     Translations
	logger *slog.Logger
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithLogger logs each diagnostic at warning level.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transformer) {
		t.logger = logger
	}
}

// NewTransformer returns a Transformer resolving keys against tr.
func NewTransformer(tr Translations, opts ...Option) *Transformer {
	t := &Transformer{tr: tr}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform runs one pass over src. name identifies the template in log records.
func (t *Transformer) Transform(name, src string) (string, []Diagnostic) {
	out, diags := Transform(src, t.tr)
	if t.logger != nil {
		for _, d := range diags {
			t.logger.Warn("inline translation problem",
				slog.String("template", name),
				slog.String("kind", d.Kind.String()),
				slog.String("key", d.Key),
				slog.Int("line", d.Line),
				slog.Int("column", d.Column),
			)
		}
	}
	return out, diags
}
