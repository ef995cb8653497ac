package commands

import (
	"os"
	"path/filepath"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/completion"
	"github.com/napalu/hookloc/internal/errors"
	"github.com/napalu/hookloc/internal/options"
)

var shells = map[string]bool{"bash": true, "zsh": true, "fish": true, "powershell": true}

// Completion prints the completion script of the running program for one shell.
func Completion(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return errors.ErrFailedToGetConfig
	}
	if !shells[cfg.Completion.Shell] {
		return errors.ErrUnknownShell.WithArgs(cfg.Completion.Shell)
	}

	program := "hookloc"
	if len(os.Args) > 0 {
		program = filepath.Base(os.Args[0])
	}
	script := completion.GetGenerator(cfg.Completion.Shell).Generate(program, parser.GetCompletionData())
	return writeOutput(cfg, "", []byte(script))
}
