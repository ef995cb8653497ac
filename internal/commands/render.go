package commands

import (
	"os"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/hookloc/internal/errors"
	"github.com/napalu/hookloc/internal/options"
	"github.com/napalu/hookloc/locale"
	"github.com/napalu/hookloc/render"
)

// Render fills the {{key}} placeholders of a configuration template from one locale.
func Render(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return errors.ErrFailedToGetConfig
	}

	loc, err := loadSingleLocale(cfg, "render")
	if err != nil {
		return err
	}

	tpl, err := os.ReadFile(cfg.Render.Template)
	if err != nil {
		return errors.ErrFailedToReadFile.WithArgs(cfg.Render.Template, err)
	}

	lang := cfg.Render.Locale
	if lang == "" {
		lang = locale.Name(loc.File)
	}

	var opts []render.Option
	if cfg.Render.EscapeJson {
		opts = append(opts, render.EscapeJSON())
	}
	out, diags := render.Render(string(tpl), loc.Table, lang, opts...)
	for _, d := range diags {
		logger(cfg).Warn(diagnosticMessage(cfg, cfg.Render.Template, d))
	}

	return writeOutput(cfg, cfg.Render.Output, []byte(out))
}
