// Package i18n provides locale-aware formatting of numbers, percentages and
// dates for server-rendered pages.
//
// A LocaleFormat is immutable after creation and safe for concurrent use.
// Predefined formats cover the locales the tracker ships with:
//
//	i18n.FormatEnUS()  // 1,234.5  50%   Jan 5, 2024
//	i18n.FormatEnGB()  // 1,234.5  50%   5 Jan 2024
//	i18n.FormatDeDE()  // 1.234,5  50 %  5. Jan. 2024
//	i18n.FormatFrFR()  // 1 234,5  50 %  5 janv. 2024
//
// Custom formats are built with functional options:
//
//	lf := i18n.NewLocaleFormat(
//		i18n.WithDecimalSeparator(","),
//		i18n.WithMediumDateFormat("2 Jan 2006"),
//	)
//
// # Medium dates
//
// FormatMediumDate renders a 4-digit year, abbreviated month and numeric day.
// The "Jan" token of the medium layout is replaced with the locale's own
// month abbreviation, so layouts stay ordinary Go time layouts.
//
// # Locale resolution
//
// A Registry maps BCP 47 tags to formats and resolves Accept-Language headers
// with golang.org/x/text/language matching:
//
//	reg := i18n.MustRegistry("en-US", i18n.DefaultFormats())
//	tag, format := reg.Match("de-CH,de;q=0.9,en;q=0.8") // "de-DE"
//
// Unknown or malformed input resolves to the default locale.
package i18n
