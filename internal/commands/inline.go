package commands

import (
	"os"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/hookloc/inline"
	"github.com/napalu/hookloc/internal/errors"
	"github.com/napalu/hookloc/internal/options"
)

// Inline replaces the translation calls of one template with the text of one locale.
func Inline(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return errors.ErrFailedToGetConfig
	}

	loc, err := loadSingleLocale(cfg, "inline")
	if err != nil {
		return err
	}

	src, err := os.ReadFile(cfg.Inline.Template)
	if err != nil {
		return errors.ErrFailedToReadFile.WithArgs(cfg.Inline.Template, err)
	}

	tr := inline.NewTransformer(loc.Table, inline.WithLogger(logger(cfg)))
	out, diags := tr.Transform(cfg.Inline.Template, string(src))

	if cfg.Inline.Strict && len(diags) > 0 {
		for _, d := range diags {
			writeLine(stderr(cfg), diagnosticMessage(cfg, cfg.Inline.Template, d))
		}
		return errors.ErrStrictFailed.WithArgs(len(diags), cfg.Inline.Template)
	}

	return writeOutput(cfg, cfg.Inline.Output, []byte(out))
}
