package commands

import (
	"log/slog"
	"os"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/hookloc/inline"
	"github.com/napalu/hookloc/internal/errors"
	"github.com/napalu/hookloc/internal/messages"
	"github.com/napalu/hookloc/internal/options"
)

type templateSites struct {
	file  string
	src   string
	sites []inline.CallSite
}

// Check verifies that every key referenced by the templates resolves in every locale.
// Malformed calls and missing keys fail the check; duplicate parameters and, with
// --unused, unreferenced locale keys are reported without failing it.
func Check(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return errors.ErrFailedToGetConfig
	}

	tables, err := loadLocales(cfg)
	if err != nil {
		return err
	}
	files, err := expandInputFiles(cfg.Check.Templates)
	if err != nil {
		return err
	}

	problems := 0
	siteCount := 0
	referenced := make(map[string]bool)
	templates := make([]templateSites, 0, len(files))

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return errors.ErrFailedToReadFile.WithArgs(file, err)
		}
		src := string(data)
		sites, diags := inline.CallSites(src)
		for _, d := range diags {
			writeLine(stderr(cfg), diagnosticMessage(cfg, file, d))
			if d.Kind == inline.MalformedCall {
				problems++
			}
		}
		for _, site := range sites {
			referenced[site.Key] = true
		}
		siteCount += len(sites)
		templates = append(templates, templateSites{file: file, src: src, sites: sites})
	}

	for _, loc := range tables {
		for _, t := range templates {
			for _, site := range t.sites {
				if _, ok := loc.Table.Lookup(site.Key); ok {
					continue
				}
				line, col := inline.Position(t.src, site.Start)
				writeLine(stderr(cfg), cfg.TR.T(messages.Keys.AppCheck.MissingKey, t.file, line, col, site.Key, loc.File))
				problems++
			}
		}

		if cfg.Check.Unused {
			for _, key := range loc.Table.Keys() {
				if !referenced[key] {
					writeLine(stdout(cfg), cfg.TR.T(messages.Keys.AppCheck.UnusedKey, loc.File, key))
				}
			}
		}
	}

	writeLine(stdout(cfg), cfg.TR.T(messages.Keys.AppCheck.Summary, siteCount, len(templates), len(tables)))
	logger(cfg).Debug("check finished", slog.Int("problems", problems))

	if problems > 0 {
		return errors.ErrCheckFailed.WithArgs(problems)
	}
	writeLine(stdout(cfg), cfg.TR.T(messages.Keys.AppCheck.AllKeysPresent))
	return nil
}
