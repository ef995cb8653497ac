package options

import (
	"io"
	"log/slog"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/i18n"
)

// InlineCmd command configuration
type InlineCmd struct {
	Template string `goopt:"short:t;desc:Hook script template;required:true;descKey:app.inline_cmd.template_desc"`
	Output   string `goopt:"short:o;desc:Output file (default: stdout);descKey:app.inline_cmd.output_desc"`
	Strict   bool   `goopt:"desc:Fail when any call cannot be inlined;descKey:app.inline_cmd.strict_desc"`
	Exec     goopt.CommandFunc
}

// CheckCmd command configuration
type CheckCmd struct {
	Templates []string `goopt:"short:t;desc:Hook script templates to check (supports wildcards);required:true;descKey:app.check_cmd.templates_desc"`
	Unused    bool     `goopt:"short:u;desc:Also report locale keys no template references;descKey:app.check_cmd.unused_desc"`
	Exec      goopt.CommandFunc
}

// KeysCmd command configuration
type KeysCmd struct {
	Templates []string `goopt:"short:t;desc:Hook script templates to scan (supports wildcards);required:true;descKey:app.keys_cmd.templates_desc"`
	Exec      goopt.CommandFunc
}

// RenderCmd command configuration
type RenderCmd struct {
	Template   string `goopt:"short:t;desc:Configuration template;required:true;descKey:app.render_cmd.template_desc"`
	Locale     string `goopt:"short:L;desc:Value of the language placeholder (default: locale file name);descKey:app.render_cmd.locale_desc"`
	EscapeJson bool   `goopt:"short:j;desc:Escape values for JSON string literals;descKey:app.render_cmd.escape_json_desc"`
	Output     string `goopt:"short:o;desc:Output file (default: stdout);descKey:app.render_cmd.output_desc"`
	Exec       goopt.CommandFunc
}

// GenerateCmd command configuration
type GenerateCmd struct {
	Dir      string `goopt:"short:d;desc:Template directory;required:true;descKey:app.generate_cmd.dir_desc"`
	Locale   string `goopt:"short:L;desc:Locale to generate for, lists available locales when empty;descKey:app.generate_cmd.locale_desc"`
	Platform string `goopt:"short:p;desc:Settings platform (mac, windows);default:mac;descKey:app.generate_cmd.platform_desc"`
	Artifact string `goopt:"short:a;desc:Artifact to generate (hook, permissions, settings);default:hook;descKey:app.generate_cmd.artifact_desc"`
	Output   string `goopt:"short:o;desc:Output file (default: stdout);descKey:app.generate_cmd.output_desc"`
	Exec     goopt.CommandFunc
}

// CompletionCmd command configuration
type CompletionCmd struct {
	Shell string `goopt:"short:s;desc:Target shell (bash, zsh, fish, powershell);default:bash;descKey:app.completion_cmd.shell_desc"`
	Exec  goopt.CommandFunc
}

// AppConfig main application configuration
type AppConfig struct {
	Input      []string      `goopt:"short:i;desc:Locale files, JSON, YAML or TOML (supports wildcards);descKey:app.app_config.input_desc"`
	Verbose    bool          `goopt:"short:v;desc:Enable verbose output;descKey:app.app_config.verbose_desc"`
	Lang       string        `goopt:"short:l;desc:Language for output (en, de, fr);descKey:app.app_config.lang_desc"`
	Help       bool          `goopt:"short:h;desc:Show help;descKey:app.app_config.help_desc"`
	Inline     InlineCmd     `goopt:"kind:command;name:inline;desc:Inline translations into a hook script template;descKey:app.app_config.inline_desc"`
	Check      CheckCmd      `goopt:"kind:command;name:check;desc:Check that every referenced key exists in every locale;descKey:app.app_config.check_desc"`
	Keys       KeysCmd       `goopt:"kind:command;name:keys;desc:List the translation keys referenced by templates;descKey:app.app_config.keys_desc"`
	Render     RenderCmd     `goopt:"kind:command;name:render;desc:Fill key placeholders in a configuration template;descKey:app.app_config.render_desc"`
	Generate   GenerateCmd   `goopt:"kind:command;name:generate;desc:Generate a localized artifact from a template directory;descKey:app.app_config.generate_desc"`
	Completion CompletionCmd `goopt:"kind:command;name:completion;desc:Print a shell completion script;descKey:app.app_config.completion_desc"`

	TR     i18n.Translator `ignore:"true"` // Translator for messages
	Logger *slog.Logger    `ignore:"true"`
	Stdout io.Writer       `ignore:"true"`
	Stderr io.Writer       `ignore:"true"`
}
