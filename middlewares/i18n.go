package middlewares

import (
	"github.com/insomniacure/insomnia/internal"
	"github.com/insomniacure/insomnia/pkg/i18n"
	"github.com/insomniacure/insomnia/pkg/utils"
)

// LanguageCookie is the cookie the language switcher writes.
const LanguageCookie = "lang"

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	Extractor    internal.Extractor
	extractorSet bool
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithI18nExtractor replaces the explicit-language sources.
// Accept-Language is always consulted last.
func WithI18nExtractor(ext internal.Extractor) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// I18n returns middleware that resolves the request locale and stores it,
// together with a template utils namespace bound to it, in the request context.
//
// Resolution order: ?lang= query, lang cookie, Accept-Language header, registry default.
// Unsupported or malformed explicit values fall through to the next source.
func I18n(reg *i18n.Registry, opts ...I18nOption) internal.Middleware {
	cfg := &I18nConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.extractorSet {
		cfg.Extractor = internal.NewExtractor(
			internal.FromQuery(LanguageCookie),
			internal.FromCookie(LanguageCookie),
		)
	}

	langs := reg.Languages()

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			lang, format := resolveLocale(c, reg, cfg.Extractor)

			ctx := i18n.WithLocale(c.Context(), lang, format)
			ctx = i18n.WithLanguages(ctx, langs)
			ctx = utils.NewContext(ctx, utils.New(format))
			c.SetContext(ctx)

			return next(c)
		}
	}
}

func resolveLocale(c internal.Context, reg *i18n.Registry, ext internal.Extractor) (string, *i18n.LocaleFormat) {
	if raw, ok := ext.Extract(c); ok {
		if lang, format, ok := reg.Lookup(raw); ok {
			return lang, format
		}
	}
	return reg.Match(c.Header("Accept-Language"))
}

// GetLanguage returns the resolved language, or i18n.DefaultLang without the middleware.
func GetLanguage(c internal.Context) string {
	lang, _ := i18n.LocaleFromContext(c)
	return lang
}
