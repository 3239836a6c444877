package i18n

import "errors"

var (
	ErrNilSource           = errors.New("translation source is nil")
	ErrLoadingCancelled    = errors.New("loading translations cancelled")
	ErrFailedToReadLocales = errors.New("failed to read locales")
	ErrFailedToParseYAML   = errors.New("failed to parse YAML content")
	ErrInvalidStructure    = errors.New("invalid translations structure")
	ErrNoTranslations      = errors.New("no translations found")
)
