package main

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/hookloc/internal/commands"
	"github.com/napalu/hookloc/internal/logging"
	"github.com/napalu/hookloc/internal/messages"
	"github.com/napalu/hookloc/internal/options"
	"golang.org/x/text/language"
)

// envPrefix marks environment variables that set flags, e.g. HOOKLOC_INPUT.
const envPrefix = "HOOKLOC_"

//go:embed locales/*.json
var localesFS embed.FS

func main() {
	// a missing .env is not an error
	_ = godotenv.Load()

	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := &options.AppConfig{}

	cfg.Inline.Exec = commands.Inline
	cfg.Check.Exec = commands.Check
	cfg.Keys.Exec = commands.Keys
	cfg.Render.Exec = commands.Render
	cfg.Generate.Exec = commands.Generate
	cfg.Completion.Exec = commands.Completion

	bundle, err := i18n.NewBundleWithFS(localesFS, "locales")
	if err != nil {
		log.Printf("Failed to create i18n bundle: %v", err)
		return 1
	}
	cfg.TR = bundle
	cfg.Stdout = stdout
	cfg.Stderr = stderr

	parser, err := goopt.NewParserFromStruct(cfg,
		goopt.WithFlagNameConverter(goopt.ToKebabCase),
		goopt.WithEnvNameConverter(envToFlag),
		goopt.WithCommandNameConverter(goopt.ToKebabCase),
		goopt.WithUserBundle(bundle))
	if err != nil {
		log.Printf("Failed to create parser: %v", err)
		return 1
	}

	success := parser.Parse(args)

	if cfg.Lang != "" && cfg.Lang != bundle.GetDefaultLanguage().String() {
		if lang := parseLanguage(cfg.Lang); lang != language.Und {
			bundle.SetDefaultLanguage(lang)
			i18n.Default().SetDefaultLanguage(lang)
		}
	}

	cfg.Logger = logging.New(stderr, cfg.Verbose)

	if cfg.Help {
		parser.PrintUsageWithGroups(stdout)
		return 0
	}

	if !success {
		for _, err := range parser.GetErrors() {
			fmt.Fprintln(stderr, cfg.TR.T(messages.Keys.AppError.ParseError, err))
			fmt.Fprintln(stderr)
		}
		parser.PrintUsageWithGroups(stderr)
		return 1
	}

	if errCount := parser.ExecuteCommands(); errCount > 0 {
		for _, cmdErr := range parser.GetCommandExecutionErrors() {
			fmt.Fprintln(stderr, cfg.TR.T(messages.Keys.AppError.CommandFailed, cmdErr.Key, translateError(bundle, cmdErr.Value)))
		}
		return 1
	}
	return 0
}

// envToFlag maps HOOKLOC_SOME_FLAG to some-flag and ignores other variables.
func envToFlag(name string) string {
	if !strings.HasPrefix(name, envPrefix) {
		return ""
	}
	return strcase.ToKebab(strings.TrimPrefix(name, envPrefix))
}

// translateError renders err in the bundle's language when it carries a message key.
func translateError(tr i18n.Translator, err error) string {
	var te i18n.TranslatableError
	if !errors.As(err, &te) {
		return err.Error()
	}
	msg := tr.T(te.Key(), te.Args()...)
	if wrapped := te.Unwrap(); wrapped != nil {
		msg = fmt.Sprintf("%s: %s", msg, translateError(tr, wrapped))
	}
	return msg
}

func parseLanguage(lang string) language.Tag {
	switch strings.ToLower(lang) {
	case "en":
		return language.English
	case "de":
		return language.German
	case "fr":
		return language.French
	default:
		return language.Und
	}
}
