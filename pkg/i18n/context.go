package i18n

import "context"

type localeKey struct{}

type locale struct {
	format *LocaleFormat
	lang   string
}

// WithLocale returns a copy of ctx carrying the resolved language and its format.
func WithLocale(ctx context.Context, lang string, format *LocaleFormat) context.Context {
	return context.WithValue(ctx, localeKey{}, locale{lang: lang, format: format})
}

// LocaleFromContext returns the locale stored by WithLocale.
// Falls back to DefaultLang with FormatEnUS when none is set.
func LocaleFromContext(ctx context.Context) (string, *LocaleFormat) {
	if l, ok := ctx.Value(localeKey{}).(locale); ok && l.format != nil {
		return l.lang, l.format
	}
	return DefaultLang, FormatEnUS()
}

type languagesKey struct{}

// WithLanguages returns a copy of ctx carrying the languages a user can switch to.
func WithLanguages(ctx context.Context, langs []string) context.Context {
	return context.WithValue(ctx, languagesKey{}, langs)
}

// LanguagesFromContext returns the languages stored by WithLanguages.
// Falls back to DefaultLang alone.
func LanguagesFromContext(ctx context.Context) []string {
	if langs, ok := ctx.Value(languagesKey{}).([]string); ok && len(langs) > 0 {
		return langs
	}
	return []string{DefaultLang}
}
