package commands

import (
	"os"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/hookloc/generate"
	"github.com/napalu/hookloc/internal/errors"
	"github.com/napalu/hookloc/internal/options"
)

const (
	artifactHook        = "hook"
	artifactPermissions = "permissions"
	artifactSettings    = "settings"
)

// Generate produces one localized artifact from a template directory. Without
// --locale it lists the locales the directory provides.
func Generate(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return errors.ErrFailedToGetConfig
	}

	gen := generate.New(os.DirFS(cfg.Generate.Dir), generate.WithLogger(logger(cfg)))

	if cfg.Generate.Locale == "" {
		langs, err := gen.Languages()
		if err != nil {
			return errors.ErrGenerateFailed.WithArgs(cfg.Generate.Dir, err)
		}
		for _, l := range langs {
			writeLine(stdout(cfg), l)
		}
		return nil
	}

	var (
		res generate.Result
		err error
	)
	switch cfg.Generate.Artifact {
	case artifactHook:
		res, err = gen.HookScript(cfg.Generate.Locale)
	case artifactPermissions:
		res, err = gen.Permissions(cfg.Generate.Locale)
	case artifactSettings:
		platform, perr := generate.ParsePlatform(cfg.Generate.Platform)
		if perr != nil {
			return errors.ErrGenerateFailed.WithArgs(cfg.Generate.Artifact, perr)
		}
		res, err = gen.Settings(cfg.Generate.Locale, platform)
	default:
		return errors.ErrUnknownArtifact.WithArgs(cfg.Generate.Artifact)
	}
	if err != nil {
		return errors.ErrGenerateFailed.WithArgs(cfg.Generate.Artifact, err)
	}

	return writeOutput(cfg, cfg.Generate.Output, res.Content)
}
