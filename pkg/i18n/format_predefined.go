package i18n

// FormatEnUS returns a LocaleFormat configured for US English (en-US).
func FormatEnUS() *LocaleFormat {
	return NewLocaleFormat()
}

// FormatEnGB returns a LocaleFormat configured for British English (en-GB).
func FormatEnGB() *LocaleFormat {
	return NewLocaleFormat(
		WithDateFormat("02/01/2006"),
		WithMediumDateFormat("2 Jan 2006"),
		WithTimeFormat("15:04"),
	)
}

// FormatDeDE returns a LocaleFormat configured for German (de-DE).
func FormatDeDE() *LocaleFormat {
	return NewLocaleFormat(
		WithDecimalSeparator(","),
		WithThousandSeparator("."),
		WithPercentSymbol("\u00a0%"),
		WithDateFormat("02.01.2006"),
		WithMediumDateFormat("2. Jan 2006"),
		WithTimeFormat("15:04"),
		WithMonthNames([12]string{
			"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
			"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez.",
		}),
	)
}

// FormatFrFR returns a LocaleFormat configured for French (fr-FR).
func FormatFrFR() *LocaleFormat {
	return NewLocaleFormat(
		WithDecimalSeparator(","),
		WithThousandSeparator(" "),
		WithPercentSymbol("\u202f%"),
		WithDateFormat("02/01/2006"),
		WithMediumDateFormat("2 Jan 2006"),
		WithTimeFormat("15:04"),
		WithMonthNames([12]string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc.",
		}),
	)
}

// FormatEsES returns a LocaleFormat configured for Spanish (es-ES).
func FormatEsES() *LocaleFormat {
	return NewLocaleFormat(
		WithDecimalSeparator(","),
		WithThousandSeparator("."),
		WithPercentSymbol("\u00a0%"),
		WithDateFormat("02/01/2006"),
		WithMediumDateFormat("2 Jan 2006"),
		WithTimeFormat("15:04"),
		WithMonthNames([12]string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sept", "oct", "nov", "dic",
		}),
	)
}

// FormatPlPL returns a LocaleFormat configured for Polish (pl-PL).
func FormatPlPL() *LocaleFormat {
	return NewLocaleFormat(
		WithDecimalSeparator(","),
		WithThousandSeparator(" "),
		WithDateFormat("02.01.2006"),
		WithMediumDateFormat("2 Jan 2006"),
		WithTimeFormat("15:04"),
		WithMonthNames([12]string{
			"sty", "lut", "mar", "kwi", "maj", "cze",
			"lip", "sie", "wrz", "paź", "lis", "gru",
		}),
	)
}

// DefaultFormats returns the predefined formats keyed by BCP 47 tag.
// The first supported tag of a Registry built from it is "en-US".
func DefaultFormats() map[string]*LocaleFormat {
	return map[string]*LocaleFormat{
		"en-US": FormatEnUS(),
		"en-GB": FormatEnGB(),
		"de-DE": FormatDeDE(),
		"fr-FR": FormatFrFR(),
		"es-ES": FormatEsES(),
		"pl-PL": FormatPlPL(),
	}
}
