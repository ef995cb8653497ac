// Package messages holds the translation keys of the command line tool's own
// messages, as found in cmd/hookloc/locales.
package messages

// Keys groups message keys by the part of the tool that uses them.
var Keys struct {
	AppConfig struct {
		InputDesc      string
		VerboseDesc    string
		LangDesc       string
		HelpDesc       string
		InlineDesc     string
		CheckDesc      string
		KeysDesc       string
		RenderDesc     string
		GenerateDesc   string
		CompletionDesc string
	}
	InlineCmd struct {
		TemplateDesc string
		OutputDesc   string
		StrictDesc   string
	}
	CheckCmd struct {
		TemplatesDesc string
		UnusedDesc    string
	}
	KeysCmd struct {
		TemplatesDesc string
	}
	RenderCmd struct {
		TemplateDesc   string
		LocaleDesc     string
		EscapeJsonDesc string
		OutputDesc     string
	}
	GenerateCmd struct {
		DirDesc      string
		LocaleDesc   string
		PlatformDesc string
		ArtifactDesc string
		OutputDesc   string
	}
	CompletionCmd struct {
		ShellDesc string
	}
	AppError struct {
		ParseError          string
		CommandFailed       string
		FailedToGetConfig   string
		FailedToExpandInput string
		NoFiles             string
		NoLocale            string
		TooManyLocales      string
		FailedToReadFile    string
		FailedToLoadLocale  string
		FailedToWriteFile   string
		StrictFailed        string
		CheckFailed         string
		UnknownArtifact     string
		UnknownShell        string
		GenerateFailed      string
	}
	AppDiagnostic struct {
		UnresolvedKey      string
		MalformedCall      string
		DuplicateParameter string
	}
	AppCheck struct {
		MissingKey     string
		UnusedKey      string
		Summary        string
		AllKeysPresent string
	}
	AppOutput struct {
		Wrote string
	}
}

func init() {
	Keys.AppConfig.InputDesc = "app.app_config.input_desc"
	Keys.AppConfig.VerboseDesc = "app.app_config.verbose_desc"
	Keys.AppConfig.LangDesc = "app.app_config.lang_desc"
	Keys.AppConfig.HelpDesc = "app.app_config.help_desc"
	Keys.AppConfig.InlineDesc = "app.app_config.inline_desc"
	Keys.AppConfig.CheckDesc = "app.app_config.check_desc"
	Keys.AppConfig.KeysDesc = "app.app_config.keys_desc"
	Keys.AppConfig.RenderDesc = "app.app_config.render_desc"
	Keys.AppConfig.GenerateDesc = "app.app_config.generate_desc"
	Keys.AppConfig.CompletionDesc = "app.app_config.completion_desc"

	Keys.InlineCmd.TemplateDesc = "app.inline_cmd.template_desc"
	Keys.InlineCmd.OutputDesc = "app.inline_cmd.output_desc"
	Keys.InlineCmd.StrictDesc = "app.inline_cmd.strict_desc"

	Keys.CheckCmd.TemplatesDesc = "app.check_cmd.templates_desc"
	Keys.CheckCmd.UnusedDesc = "app.check_cmd.unused_desc"

	Keys.KeysCmd.TemplatesDesc = "app.keys_cmd.templates_desc"

	Keys.RenderCmd.TemplateDesc = "app.render_cmd.template_desc"
	Keys.RenderCmd.LocaleDesc = "app.render_cmd.locale_desc"
	Keys.RenderCmd.EscapeJsonDesc = "app.render_cmd.escape_json_desc"
	Keys.RenderCmd.OutputDesc = "app.render_cmd.output_desc"

	Keys.GenerateCmd.DirDesc = "app.generate_cmd.dir_desc"
	Keys.GenerateCmd.LocaleDesc = "app.generate_cmd.locale_desc"
	Keys.GenerateCmd.PlatformDesc = "app.generate_cmd.platform_desc"
	Keys.GenerateCmd.ArtifactDesc = "app.generate_cmd.artifact_desc"
	Keys.GenerateCmd.OutputDesc = "app.generate_cmd.output_desc"

	Keys.CompletionCmd.ShellDesc = "app.completion_cmd.shell_desc"

	Keys.AppError.ParseError = "app.error.parse_error"
	Keys.AppError.CommandFailed = "app.error.command_failed"
	Keys.AppError.FailedToGetConfig = "app.error.failed_to_get_config"
	Keys.AppError.FailedToExpandInput = "app.error.failed_to_expand_input"
	Keys.AppError.NoFiles = "app.error.no_files"
	Keys.AppError.NoLocale = "app.error.no_locale"
	Keys.AppError.TooManyLocales = "app.error.too_many_locales"
	Keys.AppError.FailedToReadFile = "app.error.failed_to_read_file"
	Keys.AppError.FailedToLoadLocale = "app.error.failed_to_load_locale"
	Keys.AppError.FailedToWriteFile = "app.error.failed_to_write_file"
	Keys.AppError.StrictFailed = "app.error.strict_failed"
	Keys.AppError.CheckFailed = "app.error.check_failed"
	Keys.AppError.UnknownArtifact = "app.error.unknown_artifact"
	Keys.AppError.UnknownShell = "app.error.unknown_shell"
	Keys.AppError.GenerateFailed = "app.error.generate_failed"

	Keys.AppDiagnostic.UnresolvedKey = "app.diagnostic.unresolved_key"
	Keys.AppDiagnostic.MalformedCall = "app.diagnostic.malformed_call"
	Keys.AppDiagnostic.DuplicateParameter = "app.diagnostic.duplicate_parameter"

	Keys.AppCheck.MissingKey = "app.check.missing_key"
	Keys.AppCheck.UnusedKey = "app.check.unused_key"
	Keys.AppCheck.Summary = "app.check.summary"
	Keys.AppCheck.AllKeysPresent = "app.check.all_keys_present"

	Keys.AppOutput.Wrote = "app.output.wrote"
}
