// Package errors declares the translatable errors returned by hookloc commands.
package errors

import (
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/hookloc/internal/messages"
)

var (
	// ErrFailedToGetConfig is returned when a command runs without an AppConfig
	ErrFailedToGetConfig = i18n.NewError(messages.Keys.AppError.FailedToGetConfig)

	// ErrFailedToExpandInput is returned when a file pattern is invalid
	ErrFailedToExpandInput = i18n.NewError(messages.Keys.AppError.FailedToExpandInput)

	// ErrNoFiles is returned when patterns match no files
	ErrNoFiles = i18n.NewError(messages.Keys.AppError.NoFiles)

	// ErrNoLocale is returned when a command needs a locale and -i was not given
	ErrNoLocale = i18n.NewError(messages.Keys.AppError.NoLocale)

	// ErrTooManyLocales is returned when a single-locale command gets several
	ErrTooManyLocales = i18n.NewError(messages.Keys.AppError.TooManyLocales)

	// ErrFailedToReadFile is returned when a template cannot be read
	ErrFailedToReadFile = i18n.NewError(messages.Keys.AppError.FailedToReadFile)

	// ErrFailedToLoadLocale is returned when a locale file cannot be read or decoded
	ErrFailedToLoadLocale = i18n.NewError(messages.Keys.AppError.FailedToLoadLocale)

	// ErrFailedToWriteFile is returned when output cannot be written
	ErrFailedToWriteFile = i18n.NewError(messages.Keys.AppError.FailedToWriteFile)

	// ErrStrictFailed is returned by inline --strict when a call could not be inlined
	ErrStrictFailed = i18n.NewError(messages.Keys.AppError.StrictFailed)

	// ErrCheckFailed is returned when check finds missing keys or malformed calls
	ErrCheckFailed = i18n.NewError(messages.Keys.AppError.CheckFailed)

	// ErrUnknownArtifact is returned for an unsupported generate --artifact
	ErrUnknownArtifact = i18n.NewError(messages.Keys.AppError.UnknownArtifact)

	// ErrUnknownShell is returned for a completion shell goopt has no generator for
	ErrUnknownShell = i18n.NewError(messages.Keys.AppError.UnknownShell)

	// ErrGenerateFailed is returned when an artifact cannot be generated
	ErrGenerateFailed = i18n.NewError(messages.Keys.AppError.GenerateFailed)
)
