package commands

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/napalu/hookloc/inline"
	"github.com/napalu/hookloc/internal/errors"
	"github.com/napalu/hookloc/internal/logging"
	"github.com/napalu/hookloc/internal/messages"
	"github.com/napalu/hookloc/internal/options"
	"github.com/napalu/hookloc/locale"
)

// namedTable is a loaded locale and the file it came from.
type namedTable struct {
	File  string
	Table *locale.Table
}

// expandInputFiles expands wildcards in input paths, including ** for recursive
// matching, and returns every matching file once
func expandInputFiles(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		var (
			matches []string
			err     error
		)
		if strings.Contains(pattern, "**") {
			matches, err = expandRecursivePattern(pattern)
		} else {
			matches, err = filepath.Glob(pattern)
		}
		if err != nil {
			return nil, errors.ErrFailedToExpandInput.WithArgs(pattern, err)
		}

		// If no matches, treat as literal file
		if len(matches) == 0 && !strings.ContainsAny(pattern, "*?[") {
			matches = []string{pattern}
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}

	if len(files) == 0 {
		return nil, errors.ErrNoFiles.WithArgs(strings.Join(patterns, ", "))
	}

	return files, nil
}

// expandRecursivePattern handles a single ** by walking the directory before it and
// matching base names against the pattern after it
func expandRecursivePattern(pattern string) ([]string, error) {
	parts := strings.SplitN(pattern, "**", 2)
	base := strings.TrimSuffix(parts[0], string(filepath.Separator))
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		base = "."
	}
	suffix := strings.TrimLeft(parts[1], `/\`)
	if _, err := filepath.Match(suffix, ""); err != nil {
		return nil, err
	}

	var matches []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != base && (strings.HasPrefix(name, ".") || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if ok, _ := filepath.Match(suffix, d.Name()); suffix == "" || ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// loadLocales expands and loads every -i locale file
func loadLocales(cfg *options.AppConfig) ([]namedTable, error) {
	if len(cfg.Input) == 0 {
		return nil, errors.ErrNoLocale
	}
	files, err := expandInputFiles(cfg.Input)
	if err != nil {
		return nil, err
	}

	tables := make([]namedTable, 0, len(files))
	for _, file := range files {
		table, err := locale.LoadFile(file)
		if err != nil {
			return nil, errors.ErrFailedToLoadLocale.WithArgs(file, err)
		}
		logger(cfg).Debug("locale loaded", slog.String("file", file), slog.Int("keys", table.Len()))
		tables = append(tables, namedTable{File: file, Table: table})
	}
	return tables, nil
}

// loadSingleLocale is loadLocales for commands that work with exactly one locale
func loadSingleLocale(cfg *options.AppConfig, command string) (namedTable, error) {
	tables, err := loadLocales(cfg)
	if err != nil {
		return namedTable{}, err
	}
	if len(tables) != 1 {
		return namedTable{}, errors.ErrTooManyLocales.WithArgs(command, len(tables))
	}
	return tables[0], nil
}

// writeOutput writes content to path, or to stdout when path is empty
func writeOutput(cfg *options.AppConfig, path string, content []byte) error {
	if path == "" {
		_, err := stdout(cfg).Write(content)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.ErrFailedToWriteFile.WithArgs(path, err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return errors.ErrFailedToWriteFile.WithArgs(path, err)
	}
	if cfg.Verbose {
		writeLine(stderr(cfg), cfg.TR.T(messages.Keys.AppOutput.Wrote, path))
	}
	return nil
}

// diagnosticMessage renders d for the template named file in the current language
func diagnosticMessage(cfg *options.AppConfig, file string, d inline.Diagnostic) string {
	switch d.Kind {
	case inline.UnresolvedKey:
		return cfg.TR.T(messages.Keys.AppDiagnostic.UnresolvedKey, file, d.Line, d.Column, d.Key)
	case inline.MalformedCall:
		return cfg.TR.T(messages.Keys.AppDiagnostic.MalformedCall, file, d.Line, d.Column)
	case inline.DuplicateParameter:
		return cfg.TR.T(messages.Keys.AppDiagnostic.DuplicateParameter, file, d.Line, d.Column, d.Param, d.Key)
	default:
		return file + ":" + d.String()
	}
}

func writeLine(w io.Writer, line string) {
	_, _ = io.WriteString(w, line+"\n")
}

func stdout(cfg *options.AppConfig) io.Writer {
	if cfg.Stdout != nil {
		return cfg.Stdout
	}
	return os.Stdout
}

func stderr(cfg *options.AppConfig) io.Writer {
	if cfg.Stderr != nil {
		return cfg.Stderr
	}
	return os.Stderr
}

func logger(cfg *options.AppConfig) *slog.Logger {
	if cfg.Logger == nil {
		cfg.Logger = logging.New(stderr(cfg), cfg.Verbose)
	}
	return cfg.Logger
}
