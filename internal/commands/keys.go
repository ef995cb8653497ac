package commands

import (
	"log/slog"
	"os"
	"sort"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/hookloc/inline"
	"github.com/napalu/hookloc/internal/errors"
	"github.com/napalu/hookloc/internal/options"
)

// Keys prints every translation key referenced by the templates, sorted and once each.
func Keys(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return errors.ErrFailedToGetConfig
	}

	files, err := expandInputFiles(cfg.Keys.Templates)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	var keys []string
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return errors.ErrFailedToReadFile.WithArgs(file, err)
		}
		sites, diags := inline.CallSites(string(src))
		for _, d := range diags {
			logger(cfg).Warn(diagnosticMessage(cfg, file, d), slog.String("kind", d.Kind.String()))
		}
		for _, site := range sites {
			if !seen[site.Key] {
				seen[site.Key] = true
				keys = append(keys, site.Key)
			}
		}
	}

	sort.Strings(keys)
	for _, key := range keys {
		writeLine(stdout(cfg), key)
	}
	return nil
}
