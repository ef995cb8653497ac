// Package generate composes a template tree and a locale into the localized hook
// script and configuration files of one language.
//
// The tree is laid out as:
//
//	hooks/unified-hook.py
//	permissions.json
//	settings_mac.json
//	settings_windows.json
//	locales/<lang>.json|yaml|yml|toml
package generate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/napalu/hookloc/inline"
	"github.com/napalu/hookloc/locale"
	"github.com/napalu/hookloc/render"
	"golang.org/x/text/language"
)

const (
	HookScriptPath  = "hooks/unified-hook.py"
	PermissionsPath = "permissions.json"
	LocalesDir      = "locales"
)

var (
	// ErrUnknownLanguage is returned when no locale file matches a language.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrUnknownPlatform is returned for a platform with no settings template.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrInvalidJSON is returned when a rendered configuration is not valid JSON.
	ErrInvalidJSON = errors.New("rendered configuration is not valid JSON")
)

// Platform selects a settings template.
type Platform string

const (
	Mac     Platform = "mac"
	Windows Platform = "windows"
)

// ParsePlatform validates a platform name.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(strings.ToLower(s)); p {
	case Mac, Windows:
		return p, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownPlatform, s)
}

// SettingsPath returns the settings template of a platform.
func SettingsPath(p Platform) string {
	return "settings_" + string(p) + ".json"
}

// Result is one generated artifact.
type Result struct {
	Content     []byte
	Diagnostics []inline.Diagnostic
}

// Generator reads templates and locales from a file system on every call.
type Generator struct {
	fsys   fs.FS
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger reports diagnostics and resolved languages to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New returns a Generator over fsys.
func New(fsys fs.FS, opts ...Option) *Generator {
	g := &Generator{fsys: fsys}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Languages lists the locale names found under locales/, sorted.
func (g *Generator) Languages() ([]string, error) {
	entries, err := fs.ReadDir(g.fsys, LocalesDir)
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	var langs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := locale.FormatOf(e.Name()); err != nil {
			continue
		}
		langs = append(langs, locale.Name(e.Name()))
	}
	sort.Strings(langs)
	return langs, nil
}

// Match returns the available locale closest to requested, which may use either
// "zh_CN" or "zh-CN" spelling.
func (g *Generator) Match(requested string) (string, error) {
	langs, err := g.Languages()
	if err != nil {
		return "", err
	}
	for _, l := range langs {
		if l == requested {
			return l, nil
		}
	}

	want, err := language.Parse(toBCP47(requested))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownLanguage, requested)
	}

	var (
		tags  []language.Tag
		names []string
	)
	for _, l := range langs {
		tag, err := language.Parse(toBCP47(l))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, l)
	}
	if len(tags) == 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownLanguage, requested)
	}

	_, idx, conf := language.NewMatcher(tags).Match(want)
	if conf == language.No {
		return "", fmt.Errorf("%w: %s", ErrUnknownLanguage, requested)
	}
	return names[idx], nil
}

func toBCP47(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// HookScript inlines the translations of lang into the hook script template.
func (g *Generator) HookScript(lang string) (Result, error) {
	name, table, err := g.table(lang)
	if err != nil {
		return Result{}, err
	}
	src, err := fs.ReadFile(g.fsys, HookScriptPath)
	if err != nil {
		return Result{}, fmt.Errorf("read hook template: %w", err)
	}

	tr := inline.NewTransformer(table, inline.WithLogger(g.log()))
	out, diags := tr.Transform(HookScriptPath, string(src))
	g.log().Debug("hook script generated", slog.String("language", name), slog.Int("diagnostics", len(diags)))
	return Result{Content: []byte(out), Diagnostics: diags}, nil
}

// Permissions renders the permissions template for lang.
func (g *Generator) Permissions(lang string) (Result, error) {
	return g.renderJSON(lang, PermissionsPath)
}

// Settings renders the settings template of platform for lang.
func (g *Generator) Settings(lang string, platform Platform) (Result, error) {
	if _, err := ParsePlatform(string(platform)); err != nil {
		return Result{}, err
	}
	return g.renderJSON(lang, SettingsPath(platform))
}

func (g *Generator) renderJSON(lang, file string) (Result, error) {
	name, table, err := g.table(lang)
	if err != nil {
		return Result{}, err
	}
	tpl, err := fs.ReadFile(g.fsys, file)
	if err != nil {
		return Result{}, fmt.Errorf("read template %s: %w", file, err)
	}

	out, diags := render.Render(string(tpl), table, name, render.EscapeJSON())
	for _, d := range diags {
		g.log().Warn("template key not found",
			slog.String("template", file),
			slog.String("key", d.Key),
			slog.Int("line", d.Line),
			slog.Int("column", d.Column),
		)
	}
	if !json.Valid([]byte(out)) {
		return Result{Diagnostics: diags}, fmt.Errorf("%s: %w", file, ErrInvalidJSON)
	}
	return Result{Content: []byte(out), Diagnostics: diags}, nil
}

// table resolves lang to a locale name and loads its table.
func (g *Generator) table(lang string) (string, *locale.Table, error) {
	name, err := g.Match(lang)
	if err != nil {
		return "", nil, err
	}
	if name != lang {
		g.log().Debug("language matched", slog.String("requested", lang), slog.String("locale", name))
	}

	entries, err := fs.ReadDir(g.fsys, LocalesDir)
	if err != nil {
		return "", nil, fmt.Errorf("read locales: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || locale.Name(e.Name()) != name {
			continue
		}
		if _, err := locale.FormatOf(e.Name()); err != nil {
			continue
		}
		table, err := locale.LoadFS(g.fsys, path.Join(LocalesDir, e.Name()))
		if err != nil {
			return "", nil, err
		}
		return name, table, nil
	}
	return "", nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
}

func (g *Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return discardLogger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
