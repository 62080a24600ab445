package i18n

import "errors"

var (
	ErrEmptyLanguage    = errors.New("i18n: language cannot be empty")
	ErrInvalidLanguage  = errors.New("i18n: invalid language tag")
	ErrNilFormat        = errors.New("i18n: locale format cannot be nil")
	ErrDefaultNotListed = errors.New("i18n: default language has no format")
)
