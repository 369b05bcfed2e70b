package i18n

import "errors"

var (
	ErrNoSupportedLocales = errors.New("no supported locales configured")
	ErrEmptyBaseLocale    = errors.New("base locale is empty")
	ErrBaseNotSupported   = errors.New("base locale is not in the supported set")

	ErrFailedToReadCatalog  = errors.New("failed to read translation catalog")
	ErrFailedToParseCatalog = errors.New("failed to parse translation catalog")
	ErrNoCatalogs           = errors.New("no translation catalogs found")
)
